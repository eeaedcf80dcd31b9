package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"os"
	"strings"
	"time"

	"towdispatch/internal/domain/entities"
	"towdispatch/internal/usecase/interfaces"
)

var ErrMissingCoordinates = errors.New("location coordinates are required for distance lookup")

// RoutingDistanceProvider resolves road distances through an OSRM-compatible
// routing endpoint (GEO_ROUTING_ENDPOINT). Without an endpoint it falls back
// to great-circle distance, which is good enough for quoting in mock/local
// setups. Either way the caller must have geocoded the locations first.
type RoutingDistanceProvider struct {
	endpoint   string
	httpClient *http.Client
}

var _ interfaces.IGeoDistanceProvider = (*RoutingDistanceProvider)(nil)

func NewRoutingDistanceProvider() *RoutingDistanceProvider {
	endpoint := strings.TrimRight(os.Getenv("GEO_ROUTING_ENDPOINT"), "/")
	if endpoint == "" {
		log.Printf("[geo][provider] GEO_ROUTING_ENDPOINT not set; using great-circle fallback")
	}
	return &RoutingDistanceProvider{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (p *RoutingDistanceProvider) DistanceKm(ctx context.Context, from entities.Location, via []entities.Location, to entities.Location) (float64, error) {
	points := make([]entities.Location, 0, len(via)+2)
	points = append(points, from)
	points = append(points, via...)
	points = append(points, to)

	for _, pt := range points {
		if pt.Lat == nil || pt.Lng == nil {
			return 0, ErrMissingCoordinates
		}
	}

	if p.endpoint == "" {
		return greatCircleKm(points), nil
	}
	return p.routedKm(ctx, points)
}

func (p *RoutingDistanceProvider) routedKm(ctx context.Context, points []entities.Location) (float64, error) {
	coords := make([]string, len(points))
	for i, pt := range points {
		coords[i] = fmt.Sprintf("%f,%f", *pt.Lng, *pt.Lat)
	}
	url := fmt.Sprintf("%s/route/v1/driving/%s?overview=false", p.endpoint, strings.Join(coords, ";"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}
	resp, err := p.httpClient.Do(req)
	if err != nil {
		log.Printf("[geo][provider] routing request failed err=%v", err)
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("routing endpoint returned status %d", resp.StatusCode)
	}

	var body struct {
		Routes []struct {
			Distance float64 `json:"distance"`
		} `json:"routes"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, err
	}
	if len(body.Routes) == 0 {
		return 0, errors.New("routing endpoint returned no route")
	}
	return body.Routes[0].Distance / 1000, nil
}

const earthRadiusKm = 6371.0

func greatCircleKm(points []entities.Location) float64 {
	var total float64
	for i := 1; i < len(points); i++ {
		total += haversineKm(*points[i-1].Lat, *points[i-1].Lng, *points[i].Lat, *points[i].Lng)
	}
	return total
}

func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
