package models

import "testing"

func TestGDPBandBoundaries(t *testing.T) {
	cases := []struct {
		gdp  float64
		want string
	}{
		{0, BandLow},
		{9_999_999_999, BandLow},
		{10_000_000_000, BandMedium}, // exact lower boundary is medium
		{50_000_000_000, BandMedium},
		{100_000_000_000, BandMedium}, // exact upper boundary is medium
		{100_000_000_001, BandHigh},
		{1e13, BandHigh},
	}

	for _, tc := range cases {
		if got := GDPBand(tc.gdp); got != tc.want {
			t.Errorf("GDPBand(%v) = %q, want %q", tc.gdp, got, tc.want)
		}
	}
}
