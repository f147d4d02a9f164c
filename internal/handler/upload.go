package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"asset-catalog-api/internal/models"
	"asset-catalog-api/internal/parser"
	"asset-catalog-api/internal/service"
	"asset-catalog-api/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// UploadHandler handles asset file upload requests
type UploadHandler struct {
	service        AssetUploader
	maxUploadBytes int64
}

// Service interface for dependency injection
type AssetUploader interface {
	UploadAssets(ctx context.Context, companyID, filename string, data []byte) (*models.UploadSummary, error)
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(svc AssetUploader, maxUploadBytes int64) *UploadHandler {
	return &UploadHandler{service: svc, maxUploadBytes: maxUploadBytes}
}

type uploadResponse struct {
	Success           bool                 `json:"success"`
	Message           string               `json:"message"`
	Assets            []models.AssetRecord `json:"assets"`
	DuplicatesSkipped int                  `json:"duplicatesSkipped"`
}

type uploadErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// UploadAssets godoc
// @Summary      Upload an asset file
// @Description  Ingests a CSV or JSON file of asset records for one company. The batch is all-or-nothing: one invalid record rejects the whole file.
// @Tags         assets
// @Accept       multipart/form-data
// @Produce      json
// @Param        companyId  formData  string  true  "Company identifier"
// @Param        assetFile  formData  file    true  "Asset file (.csv or .json, max 50MB)"
// @Success      200  {object}  uploadResponse
// @Failure      400  {object}  uploadErrorResponse
// @Failure      500  {object}  uploadErrorResponse
// @Router       /assets/upload [post]
func (h *UploadHandler) UploadAssets(c *gin.Context) {
	companyID := c.PostForm("companyId")
	if companyID == "" {
		uploadError(c, http.StatusBadRequest, "companyId is required")
		return
	}

	fileHeader, err := c.FormFile("assetFile")
	if err != nil {
		uploadError(c, http.StatusBadRequest, "no asset file provided")
		return
	}
	if fileHeader.Size > h.maxUploadBytes {
		uploadError(c, http.StatusBadRequest,
			fmt.Sprintf("file exceeds the %d byte upload limit", h.maxUploadBytes))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Error().Err(err).Str("filename", fileHeader.Filename).Msg("failed to open uploaded file")
		uploadError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Error().Err(err).Str("filename", fileHeader.Filename).Msg("failed to read uploaded file")
		uploadError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	summary, err := h.service.UploadAssets(c.Request.Context(), companyID, fileHeader.Filename, data)
	if err != nil {
		var parseErr *parser.ParseError
		var validationErr *validator.ValidationError
		var inputErr *service.InvalidInputError
		if errors.As(err, &parseErr) || errors.As(err, &validationErr) || errors.As(err, &inputErr) {
			uploadError(c, http.StatusBadRequest, err.Error())
			return
		}
		log.Error().Err(err).Str("companyId", companyID).Msg("upload failed")
		uploadError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, uploadResponse{
		Success:           true,
		Message:           summary.Message,
		Assets:            summary.Added,
		DuplicatesSkipped: summary.DuplicatesSkipped,
	})
}

func uploadError(c *gin.Context, status int, detail string) {
	c.JSON(status, uploadErrorResponse{
		Message: "Failed to upload assets",
		Error:   detail,
	})
}
