package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"asset-catalog-api/internal/models"
	"asset-catalog-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// DeleteHandler handles asset deletion requests
type DeleteHandler struct {
	service AssetDeleter
}

// Service interface for dependency injection
type AssetDeleter interface {
	DeleteAsset(ctx context.Context, companyID string, latitude, longitude float64) (*models.DeletedAsset, error)
}

// NewDeleteHandler creates a new delete handler
func NewDeleteHandler(svc AssetDeleter) *DeleteHandler {
	return &DeleteHandler{service: svc}
}

// Coordinates are pointers so "missing" and "zero" bind differently.
type deleteAssetRequest struct {
	CompanyID string   `json:"companyId" binding:"required"`
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
}

type deleteAssetResponse struct {
	Success      bool                 `json:"success"`
	Message      string               `json:"message"`
	DeletedAsset *models.DeletedAsset `json:"deletedAsset,omitempty"`
	Error        string               `json:"error,omitempty"`
}

// DeleteAsset godoc
// @Summary      Delete an asset
// @Description  Removes the stored asset whose coordinates fall within tolerance of the given point.
// @Tags         assets
// @Accept       json
// @Produce      json
// @Param        request  body  deleteAssetRequest  true  "Asset to delete"
// @Success      200  {object}  deleteAssetResponse
// @Failure      400  {object}  deleteAssetResponse
// @Failure      404  {object}  deleteAssetResponse
// @Failure      500  {object}  deleteAssetResponse
// @Router       /assets/delete [delete]
func (h *DeleteHandler) DeleteAsset(c *gin.Context) {
	var req deleteAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, deleteAssetResponse{
			Message: "Invalid delete request",
			Error:   "companyId, latitude and longitude are required; coordinates must be numbers",
		})
		return
	}

	deleted, err := h.service.DeleteAsset(c.Request.Context(), req.CompanyID, *req.Latitude, *req.Longitude)
	if err != nil {
		var inputErr *service.InvalidInputError
		if errors.As(err, &inputErr) {
			c.JSON(http.StatusBadRequest, deleteAssetResponse{
				Message: "Invalid delete request",
				Error:   err.Error(),
			})
			return
		}
		log.Error().Err(err).Str("companyId", req.CompanyID).Msg("delete failed")
		c.JSON(http.StatusInternalServerError, deleteAssetResponse{
			Message: "Failed to delete asset",
			Error:   "Internal server error",
		})
		return
	}

	if deleted == nil {
		c.JSON(http.StatusNotFound, deleteAssetResponse{
			Message: "Asset not found",
			Error: fmt.Sprintf("no asset for company %q within tolerance of (%v, %v)",
				req.CompanyID, *req.Latitude, *req.Longitude),
		})
		return
	}

	c.JSON(http.StatusOK, deleteAssetResponse{
		Success:      true,
		Message:      "Asset deleted successfully",
		DeletedAsset: deleted,
	})
}
