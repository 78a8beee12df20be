package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"house-price/internal/config"
	"house-price/internal/history"
	"house-price/internal/location"
	"house-price/internal/model"
	"house-price/internal/prediction"
	"house-price/internal/providers/openstreetmap"
	"house-price/internal/tier"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockGeocoder struct {
	response *openstreetmap.LookupAPIResponse
	err      error
	calls    int
}

func (m *mockGeocoder) Lookup(ctx context.Context, latitude, longitude float64) (*openstreetmap.LookupAPIResponse, error) {
	m.calls++
	return m.response, m.err
}

type constantModel struct {
	output float64
	err    error
	calls  int
}

func (m *constantModel) Predict(rows []model.Row) ([]float64, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return []float64{m.output}, nil
}

func (m *constantModel) Features() []string {
	return prediction.FeatureColumns
}

type mockHistory struct {
	entries []history.Entry
	limit   int
}

func (m *mockHistory) Recent(ctx context.Context, limit int) ([]history.Entry, error) {
	m.limit = limit
	return m.entries, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Server:  config.ServerConfig{Port: 8080, GinMode: "test", AllowedOrigins: []string{"*"}},
		App:     config.AppConfig{PriceMultiplier: 100000, CurrencySymbol: "₹", CurrencyCode: "INR"},
		Metrics: config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}
}

type testApp struct {
	app      *App
	geocoder *mockGeocoder
	model    *constantModel
}

func newTestApp(t *testing.T, city string, lister HistoryLister) *testApp {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	geocoder := &mockGeocoder{response: &openstreetmap.LookupAPIResponse{
		DisplayName: city + ", India",
		Address:     openstreetmap.Address{City: city, State: "Maharashtra", Country: "India", CountryCode: "in"},
	}}
	regressor := &constantModel{output: 0.45}
	cfg := testConfig()

	locations := location.NewLocationServiceWithProviders(geocoder, nil, time.Second, logger)
	services := Services{
		Locations:   locations,
		Predictions: prediction.NewPredictionService(locations, regressor, nil, cfg.App, logger),
		Model:       model.Info{Name: "test", Version: "1", Kind: "linear", Features: prediction.FeatureColumns},
		History:     lister,
	}

	return &testApp{
		app:      NewAppWithServices(cfg, logger, services),
		geocoder: geocoder,
		model:    regressor,
	}
}

func (ta *testApp) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	ta.app.Handler().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestHealthEndpoints(t *testing.T) {
	ta := newTestApp(t, "Mumbai", nil)

	rec := ta.do(t, http.MethodGet, "/ping", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", decode[PingResponse](t, rec).Message)
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))

	rec = ta.do(t, http.MethodGet, "/version", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, Version, decode[VersionResponse](t, rec).Version)
}

func TestRequestIDIsEchoed(t *testing.T) {
	ta := newTestApp(t, "Mumbai", nil)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	ta.app.Handler().ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(requestIDHeader))
}

func TestIndexServesMap(t *testing.T) {
	ta := newTestApp(t, "Mumbai", nil)

	rec := ta.do(t, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	body := rec.Body.String()
	assert.Contains(t, body, "[20.5937, 78.9629], 5")
	assert.Contains(t, body, "Predict Price")
	assert.Contains(t, body, "Please select a location on the map by clicking on it.")
}

func TestGetLocation(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		geocodeErr error
		wantStatus int
	}{
		{name: "mumbai", query: "?latitude=19.076&longitude=72.8777", wantStatus: http.StatusOK},
		{name: "missing longitude", query: "?latitude=19.076", wantStatus: http.StatusBadRequest},
		{name: "not a number", query: "?latitude=north&longitude=72.8777", wantStatus: http.StatusBadRequest},
		{name: "latitude out of range", query: "?latitude=91&longitude=72.8777", wantStatus: http.StatusBadRequest},
		{name: "geocoder down", query: "?latitude=19.076&longitude=72.8777", geocodeErr: errors.New("connection refused"), wantStatus: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestApp(t, "Mumbai", nil)
			ta.geocoder.err = tt.geocodeErr

			rec := ta.do(t, http.MethodGet, "/api/v1/location"+tt.query, "")
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())

			if tt.wantStatus != http.StatusOK {
				assert.NotEmpty(t, decode[ErrorResponse](t, rec).Error)
				return
			}
			resp := decode[LocationResponse](t, rec)
			assert.Equal(t, "Mumbai", resp.Location.Name)
			assert.Equal(t, tier.Metro, resp.Tier)
			assert.Equal(t, "Tier 1 (metro)", resp.TierLabel)
			assert.False(t, resp.CacheHit)
		})
	}
}

func TestGetLocation_SecondClickIsCached(t *testing.T) {
	ta := newTestApp(t, "Nagpur", nil)

	first := ta.do(t, http.MethodGet, "/api/v1/location?latitude=21.1458&longitude=79.0882", "")
	second := ta.do(t, http.MethodGet, "/api/v1/location?latitude=21.1458&longitude=79.0882", "")

	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, 1, ta.geocoder.calls)
	assert.True(t, decode[LocationResponse](t, second).CacheHit)
	assert.Equal(t, tier.Secondary, decode[LocationResponse](t, second).Tier)
}

func TestPredict(t *testing.T) {
	ta := newTestApp(t, "Mumbai", nil)

	rec := ta.do(t, http.MethodPost, "/api/v1/predict",
		`{"latitude":19.076,"longitude":72.8777,"area_sqft":1200,"bedrooms":3,"ready_to_move":1}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	result := decode[prediction.Result](t, rec)
	assert.Equal(t, "₹45,000.00 INR", result.Formatted)
	assert.Equal(t, "Mumbai", result.Location.Name)
	assert.Equal(t, tier.Metro, result.Tier)
	assert.Equal(t, prediction.FeatureRow{
		SquareFt:    1200,
		BHKNo:       3,
		CityTier:    0,
		ReadyToMove: 1,
	}, result.Features)
	assert.NotEmpty(t, result.ID)
}

func TestPredict_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{
			name:    "zero area",
			body:    `{"latitude":19.076,"longitude":72.8777,"area_sqft":0,"bedrooms":3,"ready_to_move":1}`,
			wantMsg: prediction.InvalidInputMessage,
		},
		{
			name:    "negative bedrooms",
			body:    `{"latitude":19.076,"longitude":72.8777,"area_sqft":1200,"bedrooms":-1,"ready_to_move":0}`,
			wantMsg: prediction.InvalidInputMessage,
		},
		{
			name: "ready to move out of range",
			body: `{"latitude":19.076,"longitude":72.8777,"area_sqft":1200,"bedrooms":3,"ready_to_move":2}`,
		},
		{
			name: "no location selected",
			body: `{"area_sqft":1200,"bedrooms":3,"ready_to_move":1}`,
		},
		{
			name: "malformed body",
			body: `{"latitude":`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestApp(t, "Mumbai", nil)

			rec := ta.do(t, http.MethodPost, "/api/v1/predict", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, decode[ErrorResponse](t, rec).Error)
			}
			assert.Zero(t, ta.model.calls, "inference must not run")
			assert.Zero(t, ta.geocoder.calls, "geocoder must not run")
		})
	}
}

func TestPredict_InferenceFailure(t *testing.T) {
	ta := newTestApp(t, "Mumbai", nil)
	ta.model.err = errors.New("feature names mismatch")

	rec := ta.do(t, http.MethodPost, "/api/v1/predict",
		`{"latitude":19.076,"longitude":72.8777,"area_sqft":1200,"bedrooms":3,"ready_to_move":1}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Error in prediction: feature names mismatch", decode[ErrorResponse](t, rec).Error)
}

func TestPredict_GeocoderFailure(t *testing.T) {
	ta := newTestApp(t, "Mumbai", nil)
	ta.geocoder.err = errors.New("connection refused")

	rec := ta.do(t, http.MethodPost, "/api/v1/predict",
		`{"latitude":19.076,"longitude":72.8777,"area_sqft":1200,"bedrooms":3,"ready_to_move":1}`)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Zero(t, ta.model.calls)
}

func TestGetModel(t *testing.T) {
	ta := newTestApp(t, "Mumbai", nil)

	rec := ta.do(t, http.MethodGet, "/api/v1/model", "")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[ModelResponse](t, rec)
	assert.Equal(t, "linear", resp.Kind)
	assert.Equal(t, prediction.FeatureColumns, resp.Features)
	assert.Equal(t, prediction.FeatureColumns, resp.FormColumns)
	assert.Equal(t, 100000.0, resp.PriceMultiplier)
}

func TestGetTiers(t *testing.T) {
	ta := newTestApp(t, "Mumbai", nil)

	rec := ta.do(t, http.MethodGet, "/api/v1/tiers", "")
	require.Equal(t, http.StatusOK, rec.Code)

	groups := decode[[]TierGroup](t, rec)
	require.Len(t, groups, 3)
	assert.Contains(t, groups[0].Places, "Mumbai")
	assert.Contains(t, groups[1].Places, "Nagpur")
	assert.Empty(t, groups[2].Places)
	assert.Equal(t, "Tier 3", groups[2].Label)
}

func TestListPredictions(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		ta := newTestApp(t, "Mumbai", nil)
		rec := ta.do(t, http.MethodGet, "/api/v1/predictions", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("enabled", func(t *testing.T) {
		lister := &mockHistory{entries: []history.Entry{{ID: "p1", Place: "Mumbai", Formatted: "₹45,000.00 INR"}}}
		ta := newTestApp(t, "Mumbai", lister)

		rec := ta.do(t, http.MethodGet, "/api/v1/predictions?limit=5", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 5, lister.limit)

		entries := decode[[]history.Entry](t, rec)
		require.Len(t, entries, 1)
		assert.Equal(t, "p1", entries[0].ID)
	})

	t.Run("limit too large", func(t *testing.T) {
		ta := newTestApp(t, "Mumbai", &mockHistory{})
		rec := ta.do(t, http.MethodGet, "/api/v1/predictions?limit=500", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestMetricsEndpoint(t *testing.T) {
	ta := newTestApp(t, "Mumbai", nil)
	ta.do(t, http.MethodGet, "/ping", "")

	rec := ta.do(t, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "house_price_http_requests_total")
}

func TestNoRoute(t *testing.T) {
	ta := newTestApp(t, "Mumbai", nil)

	rec := ta.do(t, http.MethodGet, "/does-not-exist", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
