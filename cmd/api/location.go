package main

import (
	"errors"
	"net/http"

	"house-price/internal/location"
	"house-price/internal/tier"
	"house-price/internal/types"

	"github.com/gin-gonic/gin"
)

// GetLocationInput defines the query parameters for the location endpoint
type GetLocationInput struct {
	Latitude  *float64 `form:"latitude" binding:"required"`  // Latitude in decimal degrees
	Longitude *float64 `form:"longitude" binding:"required"` // Longitude in decimal degrees
}

// LocationResponse is what the page shows after a map click
type LocationResponse struct {
	Coordinates types.Coords       `json:"coordinates"`
	Location    types.LocationInfo `json:"location"`
	Tier        tier.Tier          `json:"tier" example:"0"`
	TierLabel   string             `json:"tier_label" example:"Tier 1 (metro)"`
	CacheHit    bool               `json:"cache_hit"`
	Warning     string             `json:"warning,omitempty"`
}

// handleGetLocation godoc
// @Summary Resolve a map click
// @Description Reverse-geocode a coordinate to a city name and its tier
// @Tags location
// @Produce json
// @Param latitude query number true "Latitude in decimal degrees" minimum(-90) maximum(90) example(19.076)
// @Param longitude query number true "Longitude in decimal degrees" minimum(-180) maximum(180) example(72.8777)
// @Success 200 {object} LocationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/location [get]
func (app *App) handleGetLocation(c *gin.Context) {
	var input GetLocationInput

	// Bind and validate query parameters
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	// Delegate to business layer
	coords := types.NewCoords(*input.Latitude, *input.Longitude)
	resolution, err := app.locationService.Resolve(c.Request.Context(), coords)
	if err != nil {
		app.writeLocationError(c, coords, err)
		return
	}

	t := tier.Classify(resolution.Location.Name)
	c.JSON(http.StatusOK, LocationResponse{
		Coordinates: resolution.Coordinates,
		Location:    resolution.Location,
		Tier:        t,
		TierLabel:   t.String(),
		CacheHit:    resolution.CacheHit,
		Warning:     resolution.Warning,
	})
}

func (app *App) writeLocationError(c *gin.Context, coords types.Coords, err error) {
	// Check if it's a validation error from business layer
	if errors.Is(err, types.ErrInvalidLatitude) || errors.Is(err, types.ErrInvalidLongitude) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if errors.Is(err, location.ErrLookupFailed) {
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "failed to resolve location, please try again"})
		return
	}

	// Other errors are internal server errors
	app.logger.Error("failed to resolve location",
		"latitude", coords.Latitude,
		"longitude", coords.Longitude,
		"error", err,
	)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to resolve location"})
}
