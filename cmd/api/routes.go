package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Map page
	app.router.GET("/", app.handleIndex)

	// Health check endpoints
	app.router.GET("/ping", app.handlePing)
	app.router.GET("/version", app.handleVersion)

	api := app.router.Group("/api/v1")
	{
		// Location endpoints
		api.GET("/location", app.handleGetLocation)
		api.GET("/tiers", app.handleGetTiers)

		// Prediction endpoints
		api.POST("/predict", app.handlePredict)
		api.GET("/model", app.handleGetModel)
		api.GET("/predictions", app.handleListPredictions)
	}

	if app.cfg.Metrics.Enabled {
		app.router.GET(app.cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})

	app.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	})
}
