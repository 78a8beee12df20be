package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// PingResponse represents the response for the ping endpoint
type PingResponse struct {
	Message string `json:"message" example:"pong"` // Response message
}

// VersionResponse describes the running build
type VersionResponse struct {
	Version   string `json:"version" example:"dev"`
	BuildTime string `json:"build_time" example:"unknown"`
	GitCommit string `json:"git_commit" example:"unknown"`
}

// handlePing godoc
// @Summary Ping health check
// @Description Check if the API is running
// @Tags health
// @Produce json
// @Success 200 {object} PingResponse
// @Router /ping [get]
func (app *App) handlePing(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{
		Message: "pong",
	})
}

// handleVersion godoc
// @Summary Build information
// @Tags health
// @Produce json
// @Success 200 {object} VersionResponse
// @Router /version [get]
func (app *App) handleVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		Version:   Version,
		BuildTime: BuildTime,
		GitCommit: GitCommit,
	})
}
