package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
)

type uploadResult struct {
	Success           bool   `json:"success"`
	Message           string `json:"message"`
	DuplicatesSkipped int    `json:"duplicatesSkipped"`
	Error             string `json:"error"`
}

// importer bulk-uploads a local CSV or JSON asset file through the API's
// upload endpoint, so imports go through the same parse/validate/dedupe
// pipeline as interactive uploads.
func main() {
	file := flag.String("file", "", "Path to the CSV or JSON file to import")
	company := flag.String("company", "", "Company identifier to import the assets under")
	server := flag.String("server", "http://localhost:8080", "Base URL of the asset catalog API")
	flag.Parse()

	if *file == "" || *company == "" {
		fmt.Println("Error: --file and --company flags are required")
		os.Exit(1)
	}

	fmt.Printf("Starting import from file: %s\n", *file)

	result, err := uploadFile(*server, *company, *file)
	if err != nil {
		fmt.Printf("Error uploading file: %v\n", err)
		os.Exit(1)
	}

	if !result.Success {
		fmt.Printf("Import rejected: %s\n", result.Error)
		os.Exit(1)
	}

	fmt.Println(result.Message)
	if result.DuplicatesSkipped > 0 {
		fmt.Printf("Skipped %d duplicate(s)\n", result.DuplicatesSkipped)
	}
}

func uploadFile(server, company, path string) (*uploadResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if err := writer.WriteField("companyId", company); err != nil {
		return nil, fmt.Errorf("failed to build form: %w", err)
	}
	part, err := writer.CreateFormFile("assetFile", filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("failed to build form file: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("failed to write form file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize form: %w", err)
	}

	resp, err := http.Post(server+"/assets/upload", writer.FormDataContentType(), &body)
	if err != nil {
		return nil, fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var result uploadResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, fmt.Errorf("unexpected response (status %d): %s", resp.StatusCode, payload)
	}
	return &result, nil
}
