//go:build integration

package openstreetmap

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"
)

func TestClient_Lookup_Integration(t *testing.T) {
	// Test coordinates: Mumbai
	lat := 19.0760
	lon := 72.8777

	client := NewClient(slog.New(slog.NewTextHandler(os.Stdout, nil)), WithLanguage("en"))

	t.Logf("Making API call to OpenStreetMap Nominatim API...")
	t.Logf("Coordinates: lat=%f, lon=%f", lat, lon)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	resp, err := client.Lookup(ctx, lat, lon)
	if err != nil {
		t.Fatalf("Failed to get location data: %v", err)
	}

	// Pretty print the raw response
	rawJSON, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}

	t.Logf("Raw API Response:\n%s", string(rawJSON))

	if resp.DisplayName == "" {
		t.Error("DisplayName is empty")
	}
	if resp.Address.CountryCode != "in" {
		t.Errorf("CountryCode = %q, want in", resp.Address.CountryCode)
	}

	t.Logf("  City: %s", resp.Address.City)
	t.Logf("  Town: %s", resp.Address.Town)
	t.Logf("  State: %s", resp.Address.State)
}
