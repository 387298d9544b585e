package services

import (
	"context"
	"errors"
	"math"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

var ErrLocationUnknown = errors.New("no live location for driver")

// DriverLocation is the live position a driver app reports while on shift.
type DriverLocation struct {
	DriverID    string  `json:"driverId"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	IsAvailable bool    `json:"isAvailable"`
	LastUpdate  int64   `json:"lastUpdate"`
}

// LocationStore keeps live driver positions in Redis hashes keyed
// driver:<id>. Mongo keeps the last persisted position; this store is the
// hot path the driver app writes to every few seconds.
type LocationStore struct {
	rdb *redis.Client
}

func NewLocationStore(rdb *redis.Client) *LocationStore {
	return &LocationStore{rdb: rdb}
}

func (s *LocationStore) Update(ctx context.Context, driverID string, latitude float64, longitude float64) error {
	return s.rdb.HSet(ctx, "driver:"+driverID, map[string]interface{}{
		"latitude":    latitude,
		"longitude":   longitude,
		"last_update": time.Now().Unix(),
	}).Err()
}

func (s *LocationStore) SetAvailable(ctx context.Context, driverID string, available bool) error {
	return s.rdb.HSet(ctx, "driver:"+driverID, "is_available", strconv.FormatBool(available)).Err()
}

func (s *LocationStore) Get(ctx context.Context, driverID string) (*DriverLocation, error) {
	data, err := s.rdb.HGetAll(ctx, "driver:"+driverID).Result()
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrLocationUnknown
	}

	latitude, _ := strconv.ParseFloat(data["latitude"], 64)
	longitude, _ := strconv.ParseFloat(data["longitude"], 64)
	lastUpdate, _ := strconv.ParseInt(data["last_update"], 10, 64)

	return &DriverLocation{
		DriverID:    driverID,
		Latitude:    latitude,
		Longitude:   longitude,
		IsAvailable: data["is_available"] == "true",
		LastUpdate:  lastUpdate,
	}, nil
}

// Haversine returns the great-circle distance between two points in
// kilometers.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	const R = 6371 // Earth radius in kilometers

	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	deltaLat := (lat2 - lat1) * math.Pi / 180
	deltaLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return R * c
}
