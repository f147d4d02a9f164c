package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// CompaniesHandler handles company listing requests
type CompaniesHandler struct {
	service CompanyLister
}

// Service interface for dependency injection
type CompanyLister interface {
	ListCompanies(ctx context.Context) ([]string, int, error)
}

// NewCompaniesHandler creates a new companies handler
func NewCompaniesHandler(svc CompanyLister) *CompaniesHandler {
	return &CompaniesHandler{service: svc}
}

type listCompaniesResponse struct {
	Success   bool     `json:"success"`
	Companies []string `json:"companies"`
	Total     int      `json:"total"`
	Error     string   `json:"error,omitempty"`
}

// ListCompanies godoc
// @Summary      List companies
// @Description  Returns the company identifiers that currently hold at least one asset, with the total asset count.
// @Tags         assets
// @Produce      json
// @Success      200  {object}  listCompaniesResponse
// @Failure      500  {object}  listCompaniesResponse
// @Router       /assets/companies [get]
func (h *CompaniesHandler) ListCompanies(c *gin.Context) {
	companies, total, err := h.service.ListCompanies(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list companies")
		c.JSON(http.StatusInternalServerError, listCompaniesResponse{
			Companies: []string{},
			Error:     "Internal server error",
		})
		return
	}

	if companies == nil {
		companies = []string{}
	}
	c.JSON(http.StatusOK, listCompaniesResponse{
		Success:   true,
		Companies: companies,
		Total:     total,
	})
}
