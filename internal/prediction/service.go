package prediction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"house-price/internal/config"
	"house-price/internal/location"
	"house-price/internal/metrics"
	"house-price/internal/model"
	"house-price/internal/tier"
	"house-price/internal/types"

	"github.com/google/uuid"
)

var ErrPrediction = errors.New("error in prediction")

// Request is one press of "Predict Price"
type Request struct {
	Coordinates types.Coords
	Input       Input
}

// Result is a served prediction
type Result struct {
	ID          string             `json:"id"`
	Coordinates types.Coords       `json:"coordinates"`
	Location    types.LocationInfo `json:"location"`
	Tier        tier.Tier          `json:"tier"`
	Features    FeatureRow         `json:"features"`
	RawOutput   float64            `json:"raw_output"`
	Price       types.Price        `json:"price"`
	Formatted   string             `json:"formatted"`
	Warning     string             `json:"warning,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
}

// Recorder persists served predictions
type Recorder interface {
	Record(ctx context.Context, result *Result) error
}

// Service turns a map click and form input into a price
type Service interface {
	Predict(ctx context.Context, req Request) (*Result, error)
}

type predictionService struct {
	locations location.Service
	regressor model.Regressor
	recorder  Recorder
	cfg       config.AppConfig
	logger    *slog.Logger
}

// NewPredictionService wires the pipeline. recorder may be nil.
func NewPredictionService(
	locations location.Service,
	regressor model.Regressor,
	recorder Recorder,
	cfg config.AppConfig,
	logger *slog.Logger,
) Service {
	return &predictionService{
		locations: locations,
		regressor: regressor,
		recorder:  recorder,
		cfg:       cfg,
		logger:    logger.With("component", "prediction-service"),
	}
}

func (s *predictionService) Predict(ctx context.Context, req Request) (*Result, error) {
	// Validation runs before any network call or inference
	if _, err := Assemble(req.Input, tier.Other); err != nil {
		metrics.Predictions.WithLabelValues(metrics.PredictionInvalid).Inc()
		s.logger.Info("rejected prediction input", "error", err)
		return nil, err
	}

	resolution, err := s.locations.Resolve(ctx, req.Coordinates)
	if err != nil {
		metrics.Predictions.WithLabelValues(metrics.PredictionError).Inc()
		return nil, err
	}

	t := tier.Classify(resolution.Location.Name)
	row, err := Assemble(req.Input, t)
	if err != nil {
		return nil, err
	}

	raw, err := Infer(s.regressor, row)
	if err != nil {
		metrics.Predictions.WithLabelValues(metrics.PredictionError).Inc()
		s.logger.Error("inference failed",
			"location", resolution.Location.Name,
			"tier", int(t),
			"error", err,
		)
		return nil, err
	}

	price := types.Price{
		Amount:   raw * s.cfg.PriceMultiplier,
		Symbol:   s.cfg.CurrencySymbol,
		Currency: s.cfg.CurrencyCode,
	}

	result := &Result{
		ID:          uuid.NewString(),
		Coordinates: req.Coordinates,
		Location:    resolution.Location,
		Tier:        t,
		Features:    row,
		RawOutput:   raw,
		Price:       price,
		Formatted:   price.Format(),
		Warning:     resolution.Warning,
		CreatedAt:   time.Now().UTC(),
	}

	metrics.Predictions.WithLabelValues(metrics.PredictionSuccess).Inc()
	metrics.PredictionsByTier.WithLabelValues(strconv.Itoa(int(t))).Inc()

	s.logger.Info("price predicted",
		"id", result.ID,
		"location", result.Location.Name,
		"tier", int(t),
		"area_sqft", row.SquareFt,
		"bedrooms", row.BHKNo,
		"price", result.Formatted,
	)

	if s.recorder != nil {
		if err := s.recorder.Record(ctx, result); err != nil {
			// History is best effort; the user still gets the price
			s.logger.Warn("failed to record prediction", "id", result.ID, "error", err)
		}
	}

	return result, nil
}

// Infer runs the model on a single row and returns its first output.
// Errors and panics from the model are returned as ErrPrediction.
func Infer(r model.Regressor, row FeatureRow) (out float64, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: %v", ErrPrediction, p)
		}
	}()

	outputs, err := r.Predict([]model.Row{row.Row()})
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrPrediction, err)
	}
	if len(outputs) == 0 {
		return 0, fmt.Errorf("%w: model returned no output", ErrPrediction)
	}
	return outputs[0], nil
}
