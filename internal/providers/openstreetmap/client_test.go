package openstreetmap

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const mumbaiResponse = `{
  "place_id": 12345,
  "lat": "19.0759",
  "lon": "72.8776",
  "name": "Mumbai",
  "display_name": "Mumbai, Mumbai Suburban, Maharashtra, 400001, India",
  "address": {
    "city": "Mumbai",
    "state_district": "Mumbai Suburban",
    "state": "Maharashtra",
    "postcode": "400001",
    "country": "India",
    "country_code": "in"
  },
  "boundingbox": ["18.89", "19.27", "72.77", "72.98"]
}`

func TestClient_Lookup(t *testing.T) {
	var gotQuery, gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, mumbaiResponse)
	}))
	defer server.Close()

	client := NewClient(testLogger(),
		WithBaseURL(server.URL+"/reverse"),
		WithUserAgent("house-price-test"),
		WithLanguage("en"),
	)

	resp, err := client.Lookup(context.Background(), 19.0760, 72.8777)
	if err != nil {
		t.Fatalf("Lookup() unexpected error = %v", err)
	}

	if resp.Address.City != "Mumbai" {
		t.Errorf("Address.City = %q, want Mumbai", resp.Address.City)
	}
	if resp.Address.State != "Maharashtra" {
		t.Errorf("Address.State = %q, want Maharashtra", resp.Address.State)
	}
	if gotUA != "house-price-test" {
		t.Errorf("User-Agent = %q, want house-price-test", gotUA)
	}
	for _, want := range []string{"lat=19.076000", "lon=72.877700", "format=json", "addressdetails=1", "accept-language=en"} {
		if !strings.Contains(gotQuery, want) {
			t.Errorf("query %q missing %q", gotQuery, want)
		}
	}
}

func TestClient_Lookup_Errors(t *testing.T) {
	tests := []struct {
		name        string
		handler     http.HandlerFunc
		errContains string
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = io.WriteString(w, "overloaded")
			},
			errContains: "status 503",
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, "{not json")
			},
			errContains: "failed to decode response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := NewClient(testLogger(), WithBaseURL(server.URL))
			_, err := client.Lookup(context.Background(), 19.0760, 72.8777)
			if err == nil {
				t.Fatal("Lookup() expected error")
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("Lookup() error = %v, want error containing %q", err, tt.errContains)
			}
		})
	}
}

func TestClient_Lookup_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"error":"Unable to geocode"}`)
	}))
	defer server.Close()

	client := NewClient(testLogger(), WithBaseURL(server.URL))
	resp, err := client.Lookup(context.Background(), 10.0, 65.0)
	if err != nil {
		t.Fatalf("Lookup() unexpected error = %v", err)
	}
	if resp.Error != "Unable to geocode" {
		t.Errorf("Error = %q, want Unable to geocode", resp.Error)
	}
	if resp.Address.City != "" {
		t.Errorf("Address.City = %q, want empty", resp.Address.City)
	}
}

func TestClient_Lookup_ContextDeadline(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	client := NewClient(testLogger(), WithBaseURL(server.URL))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Lookup(ctx, 19.0760, 72.8777)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Lookup() error = %v, want context.DeadlineExceeded", err)
	}
}
