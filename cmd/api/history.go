package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListPredictionsInput defines the query parameters for the history endpoint
type ListPredictionsInput struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=200"`
}

// handleListPredictions godoc
// @Summary Recent predictions
// @Description Newest served predictions first; only available when history is enabled
// @Tags prediction
// @Produce json
// @Param limit query int false "Number of predictions" minimum(1) maximum(200) default(20)
// @Success 200 {array} history.Entry
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/predictions [get]
func (app *App) handleListPredictions(c *gin.Context) {
	if app.history == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "prediction history is disabled"})
		return
	}

	var input ListPredictionsInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	entries, err := app.history.Recent(c.Request.Context(), input.Limit)
	if err != nil {
		app.logger.Error("failed to list predictions", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list predictions"})
		return
	}

	c.JSON(http.StatusOK, entries)
}
