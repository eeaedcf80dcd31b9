package geo

import (
	"context"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"towdispatch/internal/domain/entities"
)

func loc(lat, lng float64) entities.Location {
	return entities.Location{Address: "somewhere", Lat: &lat, Lng: &lng}
}

func TestRoutingDistanceProvider_DistanceKm(t *testing.T) {
	t.Run("missing coordinates", func(t *testing.T) {
		p := &RoutingDistanceProvider{httpClient: http.DefaultClient}
		_, err := p.DistanceKm(context.Background(), entities.Location{Address: "no coords"}, nil, loc(-33.86, 151.21))
		if !errors.Is(err, ErrMissingCoordinates) {
			t.Fatalf("expected ErrMissingCoordinates, got %v", err)
		}
	})

	t.Run("great-circle fallback without endpoint", func(t *testing.T) {
		p := &RoutingDistanceProvider{httpClient: http.DefaultClient}

		// Sydney CBD to Parramatta, roughly 20km apart.
		km, err := p.DistanceKm(context.Background(), loc(-33.8688, 151.2093), nil, loc(-33.8150, 151.0011))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if km < 15 || km > 25 {
			t.Fatalf("implausible great-circle distance: %f", km)
		}
	})

	t.Run("via points extend the route", func(t *testing.T) {
		p := &RoutingDistanceProvider{httpClient: http.DefaultClient}

		direct, err := p.DistanceKm(context.Background(), loc(-33.8688, 151.2093), nil, loc(-33.8150, 151.0011))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		detour, err := p.DistanceKm(context.Background(), loc(-33.8688, 151.2093), []entities.Location{loc(-33.7, 151.1)}, loc(-33.8150, 151.0011))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if detour <= direct {
			t.Fatalf("expected detour %f to exceed direct %f", detour, direct)
		}
	})

	t.Run("routed distance from endpoint", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"routes":[{"distance":38000}]}`))
		}))
		defer srv.Close()

		p := &RoutingDistanceProvider{endpoint: srv.URL, httpClient: &http.Client{Timeout: time.Second}}
		km, err := p.DistanceKm(context.Background(), loc(-33.8688, 151.2093), nil, loc(-33.8150, 151.0011))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if math.Abs(km-38) > 0.001 {
			t.Fatalf("expected 38km, got %f", km)
		}
	})

	t.Run("endpoint error surfaces", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		p := &RoutingDistanceProvider{endpoint: srv.URL, httpClient: &http.Client{Timeout: time.Second}}
		if _, err := p.DistanceKm(context.Background(), loc(-33.8688, 151.2093), nil, loc(-33.8150, 151.0011)); err == nil {
			t.Fatal("expected an error")
		}
	})

	t.Run("no route in response", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"routes":[]}`))
		}))
		defer srv.Close()

		p := &RoutingDistanceProvider{endpoint: srv.URL, httpClient: &http.Client{Timeout: time.Second}}
		if _, err := p.DistanceKm(context.Background(), loc(-33.8688, 151.2093), nil, loc(-33.8150, 151.0011)); err == nil {
			t.Fatal("expected an error")
		}
	})
}
