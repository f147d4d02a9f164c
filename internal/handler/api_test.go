package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"asset-catalog-api/internal/service"
	"asset-catalog-api/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer wires a real store through real services, so these tests
// exercise the full upload/list/delete pipeline end to end.
func newTestServer(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	assetStore := store.NewStore()
	assetService := service.NewAssetService(assetStore)
	uploadService := service.NewUploadService(assetStore)

	r := NewRouter(
		NewAssetsHandler(assetService),
		NewUploadHandler(uploadService, 50*1024*1024),
		NewDeleteHandler(assetService),
		NewCompaniesHandler(assetService),
	)
	return r, assetStore
}

func doUpload(t *testing.T, r *gin.Engine, companyID, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	body, contentType := multipartBody(t, companyID, filename, content)
	req := httptest.NewRequest(http.MethodPost, "/assets/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAPI_UploadThenListThenDelete(t *testing.T) {
	r, assetStore := newTestServer(t)

	// Upload one CSV record for acme.
	w := doUpload(t, r, "acme", "assets.csv", []byte("address,latitude,longitude\n\"1 Main St\",40.0,-74.0\n"))
	require.Equal(t, http.StatusOK, w.Code)

	var uploadBody struct {
		Success           bool   `json:"success"`
		Message           string `json:"message"`
		Assets            []any  `json:"assets"`
		DuplicatesSkipped int    `json:"duplicatesSkipped"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &uploadBody))
	assert.True(t, uploadBody.Success)
	assert.Len(t, uploadBody.Assets, 1)
	assert.Equal(t, 0, uploadBody.DuplicatesSkipped)
	assert.Contains(t, uploadBody.Message, "acme")

	// The record is visible on the read path.
	req := httptest.NewRequest(http.MethodGet, "/assets?companyId=acme", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var listBody struct {
		Success bool `json:"success"`
		Assets  []struct {
			Address   string  `json:"address"`
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
			CompanyID string  `json:"companyId"`
		} `json:"assets"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listBody))
	require.Equal(t, 1, listBody.Total)
	assert.Equal(t, "1 Main St", listBody.Assets[0].Address)
	assert.Equal(t, "acme", listBody.Assets[0].CompanyID)

	// Delete within tolerance of the stored coordinates.
	deleteReq := bytes.NewBufferString(`{"companyId":"acme","latitude":40.00005,"longitude":-74.00005}`)
	req = httptest.NewRequest(http.MethodDelete, "/assets/delete", deleteReq)
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var deleteBody struct {
		Success      bool `json:"success"`
		DeletedAsset struct {
			Address   string `json:"address"`
			CompanyID string `json:"companyId"`
		} `json:"deletedAsset"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &deleteBody))
	assert.True(t, deleteBody.Success)
	assert.Equal(t, "1 Main St", deleteBody.DeletedAsset.Address)

	// The emptied bucket is gone entirely.
	assert.Empty(t, assetStore.List("acme"))
	assert.NotContains(t, assetStore.Companies(), "acme")

	req = httptest.NewRequest(http.MethodGet, "/assets?companyId=acme", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":0`)
}

func TestAPI_UploadRejectsInvalidBatch(t *testing.T) {
	r, assetStore := newTestServer(t)

	w := doUpload(t, r, "acme", "assets.json", []byte(`[{"address":"X","latitude":200,"longitude":0}]`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "latitude must be between -90 and 90")

	// No partial commit.
	assert.Equal(t, 0, assetStore.TotalCount())
}

func TestAPI_UploadDuplicateSuppression(t *testing.T) {
	r, _ := newTestServer(t)

	content := []byte("address,latitude,longitude\n\"1 Main St\",40.0,-74.0\n")
	w := doUpload(t, r, "acme", "assets.csv", content)
	require.Equal(t, http.StatusOK, w.Code)

	w = doUpload(t, r, "acme", "assets.csv", content)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"duplicatesSkipped":1`)
	assert.Contains(t, w.Body.String(), `"assets":[]`)
}

func TestAPI_ListCompanies(t *testing.T) {
	r, _ := newTestServer(t)

	doUpload(t, r, "acme", "assets.csv", []byte("address,latitude,longitude\nA,1.0,2.0\n"))
	doUpload(t, r, "globex", "assets.csv", []byte("address,latitude,longitude\nB,3.0,4.0\n"))

	req := httptest.NewRequest(http.MethodGet, "/assets/companies", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Success   bool     `json:"success"`
		Companies []string `json:"companies"`
		Total     int      `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, []string{"acme", "globex"}, body.Companies)
	assert.Equal(t, 2, body.Total)
}

func TestAPI_MethodNotAllowed(t *testing.T) {
	r, _ := newTestServer(t)

	tests := []struct {
		name     string
		method   string
		path     string
		expected string
	}{
		{
			name:     "POST to list endpoint",
			method:   http.MethodPost,
			path:     "/assets",
			expected: `{"success":false,"assets":[],"total":0,"error":"Method not allowed"}`,
		},
		{
			name:     "GET to upload endpoint",
			method:   http.MethodGet,
			path:     "/assets/upload",
			expected: `{"success":false,"message":"Method not allowed","error":"Method not allowed"}`,
		},
		{
			name:     "POST to delete endpoint",
			method:   http.MethodPost,
			path:     "/assets/delete",
			expected: `{"success":false,"message":"Method not allowed","error":"Method not allowed"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
			assert.JSONEq(t, tt.expected, w.Body.String())
		})
	}
}

func TestAPI_Health(t *testing.T) {
	r, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
