package handler

import (
	"context"
	"net/http"

	"asset-catalog-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// AssetsHandler handles asset listing requests
type AssetsHandler struct {
	service AssetLister
}

// Service interface for dependency injection
type AssetLister interface {
	ListAssets(ctx context.Context, companyFilter string) ([]models.CompanyAsset, error)
}

// NewAssetsHandler creates a new assets handler
func NewAssetsHandler(svc AssetLister) *AssetsHandler {
	return &AssetsHandler{service: svc}
}

type listAssetsResponse struct {
	Success bool                  `json:"success"`
	Assets  []models.CompanyAsset `json:"assets"`
	Total   int                   `json:"total"`
	Error   string                `json:"error,omitempty"`
}

// ListAssets godoc
// @Summary      List assets
// @Description  Returns every stored asset, optionally filtered by a case-insensitive substring match on the company identifier.
// @Tags         assets
// @Produce      json
// @Param        companyId  query  string  false  "Company identifier filter (substring match)"
// @Success      200  {object}  listAssetsResponse
// @Failure      500  {object}  listAssetsResponse
// @Router       /assets [get]
func (h *AssetsHandler) ListAssets(c *gin.Context) {
	assets, err := h.service.ListAssets(c.Request.Context(), c.Query("companyId"))
	if err != nil {
		log.Error().Err(err).Msg("failed to list assets")
		c.JSON(http.StatusInternalServerError, listAssetsResponse{
			Assets: []models.CompanyAsset{},
			Error:  "Internal server error",
		})
		return
	}

	if assets == nil {
		assets = []models.CompanyAsset{}
	}
	c.JSON(http.StatusOK, listAssetsResponse{
		Success: true,
		Assets:  assets,
		Total:   len(assets),
	})
}
