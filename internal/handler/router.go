package handler

import (
	"net/http"

	"asset-catalog-api/internal/middleware"
	"asset-catalog-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter wires every endpoint onto a gin engine. Unexpected panics and
// wrong-method requests are turned into the structured JSON bodies each
// endpoint promises.
func NewRouter(assets *AssetsHandler, upload *UploadHandler, del *DeleteHandler, companies *CompaniesHandler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, err any) {
		log.Error().Interface("panic", err).Str("path", c.Request.URL.Path).Msg("recovered from panic")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Internal server error",
		})
	}))
	r.HandleMethodNotAllowed = true
	r.NoMethod(methodNotAllowed)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/assets", assets.ListAssets)
	r.GET("/assets/companies", companies.ListCompanies)
	r.POST("/assets/upload", upload.UploadAssets)
	r.DELETE("/assets/delete", del.DeleteAsset)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// methodNotAllowed answers 405 in the response shape of the endpoint that was
// hit with the wrong verb.
func methodNotAllowed(c *gin.Context) {
	switch c.Request.URL.Path {
	case "/assets":
		c.JSON(http.StatusMethodNotAllowed, listAssetsResponse{
			Assets: []models.CompanyAsset{},
			Error:  "Method not allowed",
		})
	case "/assets/upload", "/assets/delete":
		c.JSON(http.StatusMethodNotAllowed, uploadErrorResponse{
			Message: "Method not allowed",
			Error:   "Method not allowed",
		})
	default:
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	}
}
