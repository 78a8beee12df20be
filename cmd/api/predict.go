package main

import (
	"errors"
	"net/http"
	"strings"

	"house-price/internal/location"
	"house-price/internal/prediction"
	"house-price/internal/types"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error" example:"Please provide valid inputs for all fields."`
}

// PredictRequest is the form submitted by "Predict Price"
type PredictRequest struct {
	Latitude    *float64 `json:"latitude" binding:"required" example:"19.076"`
	Longitude   *float64 `json:"longitude" binding:"required" example:"72.8777"`
	AreaSqft    float64  `json:"area_sqft" example:"1200"`
	Bedrooms    int      `json:"bedrooms" example:"3"`
	ReadyToMove int      `json:"ready_to_move" binding:"oneof=0 1" example:"1"`
}

// handlePredict godoc
// @Summary Predict a house price
// @Description Resolve the clicked location, assemble the feature row and run the model
// @Tags prediction
// @Accept json
// @Produce json
// @Param request body PredictRequest true "Location and property details"
// @Success 200 {object} prediction.Result
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/predict [post]
func (app *App) handlePredict(c *gin.Context) {
	var req PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	coords := types.NewCoords(*req.Latitude, *req.Longitude)
	result, err := app.predictionService.Predict(c.Request.Context(), prediction.Request{
		Coordinates: coords,
		Input: prediction.Input{
			AreaSqft:    req.AreaSqft,
			Bedrooms:    req.Bedrooms,
			ReadyToMove: req.ReadyToMove == 1,
		},
	})
	if err != nil {
		switch {
		case errors.Is(err, prediction.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: prediction.InvalidInputMessage})
		case errors.Is(err, prediction.ErrPrediction):
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: predictionErrorMessage(err)})
		case errors.Is(err, location.ErrLookupFailed),
			errors.Is(err, types.ErrInvalidLatitude),
			errors.Is(err, types.ErrInvalidLongitude):
			app.writeLocationError(c, coords, err)
		default:
			app.logger.Error("prediction failed", "error", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "prediction failed"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// predictionErrorMessage renders an inference failure for the user
func predictionErrorMessage(err error) string {
	cause := strings.TrimPrefix(err.Error(), prediction.ErrPrediction.Error()+": ")
	return "Error in prediction: " + cause
}
