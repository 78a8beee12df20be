package main

import (
	"net/http"

	"house-price/internal/prediction"
	"house-price/internal/tier"

	"github.com/gin-gonic/gin"
)

// ModelResponse describes the loaded model
type ModelResponse struct {
	Name            string   `json:"name" example:"house-price-linear"`
	Version         string   `json:"version" example:"1"`
	Kind            string   `json:"kind" example:"linear"`
	Features        []string `json:"features"`
	FormColumns     []string `json:"form_columns"`
	PriceMultiplier float64  `json:"price_multiplier" example:"100000"`
}

// TierGroup lists the places in one tier
type TierGroup struct {
	Tier   tier.Tier `json:"tier" example:"0"`
	Label  string    `json:"label" example:"Tier 1 (metro)"`
	Places []string  `json:"places"`
}

// handleGetModel godoc
// @Summary Loaded model
// @Description Name, version and feature columns of the regression artifact
// @Tags prediction
// @Produce json
// @Success 200 {object} ModelResponse
// @Router /api/v1/model [get]
func (app *App) handleGetModel(c *gin.Context) {
	c.JSON(http.StatusOK, ModelResponse{
		Name:            app.modelInfo.Name,
		Version:         app.modelInfo.Version,
		Kind:            app.modelInfo.Kind,
		Features:        app.modelInfo.Features,
		FormColumns:     prediction.FeatureColumns,
		PriceMultiplier: app.cfg.App.PriceMultiplier,
	})
}

// handleGetTiers godoc
// @Summary City tiers
// @Description Places in each tier; anything unlisted is in the last tier
// @Tags location
// @Produce json
// @Success 200 {array} TierGroup
// @Router /api/v1/tiers [get]
func (app *App) handleGetTiers(c *gin.Context) {
	groups := make([]TierGroup, 0, 3)
	for _, t := range []tier.Tier{tier.Metro, tier.Secondary, tier.Other} {
		places := tier.Members(t)
		if places == nil {
			places = []string{}
		}
		groups = append(groups, TierGroup{Tier: t, Label: t.String(), Places: places})
	}
	c.JSON(http.StatusOK, groups)
}
