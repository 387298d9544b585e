package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversine(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		wantKM                 float64
		tolerance              float64
	}{
		{
			name:   "same point",
			lat1:   13.7563, lon1: 100.5018,
			lat2: 13.7563, lon2: 100.5018,
			wantKM: 0, tolerance: 0.001,
		},
		{
			name:   "bangkok to chiang mai",
			lat1:   13.7563, lon1: 100.5018,
			lat2: 18.7883, lon2: 98.9853,
			wantKM: 581, tolerance: 10,
		},
		{
			name:   "short hop across town",
			lat1:   13.7563, lon1: 100.5018,
			lat2: 13.7650, lon2: 100.5380,
			wantKM: 4.03, tolerance: 0.2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Haversine(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			assert.InDelta(t, tt.wantKM, got, tt.tolerance)
		})
	}
}
