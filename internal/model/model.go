// Package model loads the serialized price regression and runs inference on it.
package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

var (
	ErrInvalidArtifact = errors.New("invalid model artifact")
	ErrMissingFeature  = errors.New("missing feature column")
)

// Row is one named-column input to a model
type Row map[string]float64

// Regressor is a trained model that maps rows to numeric outputs
type Regressor interface {
	// Predict returns one output per row, in row order
	Predict(rows []Row) ([]float64, error)
	// Features lists the columns the model was trained on, in training order
	Features() []string
}

// Info describes a loaded artifact
type Info struct {
	Name     string   `json:"name" example:"house-price-linear"`
	Version  string   `json:"version" example:"1"`
	Kind     string   `json:"kind" example:"linear"`
	Features []string `json:"features"`
}

type artifact struct {
	Name         string    `json:"name"`
	Version      string    `json:"version"`
	Kind         string    `json:"kind"`
	Features     []string  `json:"features"`
	Intercept    float64   `json:"intercept"`
	Coefficients []float64 `json:"coefficients"`
}

// Linear is an ordinary least squares style model: intercept + sum(coef * x)
type Linear struct {
	info         Info
	intercept    float64
	coefficients []float64
}

func (m *Linear) Features() []string {
	return append([]string(nil), m.info.Features...)
}

func (m *Linear) Info() Info {
	info := m.info
	info.Features = m.Features()
	return info
}

func (m *Linear) Predict(rows []Row) ([]float64, error) {
	out := make([]float64, len(rows))
	for i, row := range rows {
		y := m.intercept
		for j, name := range m.info.Features {
			x, ok := row[name]
			if !ok {
				return nil, fmt.Errorf("row %d: %w %q", i, ErrMissingFeature, name)
			}
			y += m.coefficients[j] * x
		}
		out[i] = y
	}
	return out, nil
}

// Decode parses and validates an artifact document
func Decode(raw []byte) (*Linear, error) {
	if err := validateArtifact(raw); err != nil {
		return nil, err
	}

	var a artifact
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArtifact, err)
	}

	if len(a.Coefficients) != len(a.Features) {
		return nil, fmt.Errorf("%w: %d coefficients for %d features",
			ErrInvalidArtifact, len(a.Coefficients), len(a.Features))
	}

	return &Linear{
		info: Info{
			Name:     a.Name,
			Version:  a.Version,
			Kind:     a.Kind,
			Features: a.Features,
		},
		intercept:    a.Intercept,
		coefficients: a.Coefficients,
	}, nil
}

// LoadFile reads and decodes the artifact at path
func LoadFile(path string) (*Linear, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model %s: %w", path, err)
	}

	m, err := Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to load model %s: %w", path, err)
	}
	return m, nil
}
