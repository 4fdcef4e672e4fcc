package osmocore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestEncLatKnownValues tests latitude encoding against hand-checked codes
func TestEncLatKnownValues(t *testing.T) {
	tests := []struct {
		name        string
		latMicroDeg int32
		expected    uint32
	}{
		{"equator", 0, 0x000000},
		{"north mid latitude", 23000006, 0x20b60c},
		{"south mid latitude", -23000006, 0xa0b60c},
		{"45 degrees north", 45000000, 0x400000},
		{"just below north pole", 89999999, 0x7fffff},
		{"just above south pole", -89999999, 0xffffff},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GadEncLat(tt.latMicroDeg))
		})
	}
}

// TestDecLatKnownValues tests latitude decoding against hand-checked values
func TestDecLatKnownValues(t *testing.T) {
	tests := []struct {
		name     string
		lat      int32
		expected int32
	}{
		{"zero", 0x000000, 0},
		{"north mid latitude", 0x20b60c, 23000006},
		{"south mid latitude", 0xa0b60c, -23000006},
		{"maximum magnitude", 0x7fffff, 89999989},
		{"negative zero", 0x800000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GadDecLat(tt.lat))
		})
	}
}

// TestLatNegativeZero tests that the sign-bit-only pattern collapses to
// the all-zero encoding instead of reproducing itself
func TestLatNegativeZero(t *testing.T) {
	assert.Equal(t, int32(0), GadDecLat(0x800000))
	assert.Equal(t, uint32(0), GadEncLat(GadDecLat(0x800000)))
}

// TestEncLonKnownValues tests longitude encoding against hand-checked codes
func TestEncLonKnownValues(t *testing.T) {
	tests := []struct {
		name        string
		lonMicroDeg int32
		expected    uint32
	}{
		{"prime meridian", 0, 0x000000},
		{"east mid longitude", 42000002, 0x1dddde},
		{"west mid longitude", -42000002, 0xe22222},
		{"90 degrees east", 90000000, 0x400000},
		{"just below date line east", 179999999, 0x7fffff},
		{"just above date line west", -179999999, 0x800001},
		{"date line west", -180000000, 0x800000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GadEncLon(tt.lonMicroDeg))
		})
	}
}

// TestDecLonKnownValues tests longitude decoding against hand-checked values
func TestDecLonKnownValues(t *testing.T) {
	tests := []struct {
		name     string
		lon      int32
		expected int32
	}{
		{"zero", 0x000000, 0},
		{"east mid longitude", 0x1dddde, 42000002},
		{"west mid longitude", 0xe22222, -42000002},
		{"date line west", 0x800000, -180000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GadDecLon(tt.lon))
		})
	}
}

// TestLatDecEncStability walks every 24 bit latitude code and checks
// that decode followed by encode reproduces it.  The single exception
// is "negative zero": the sign bit over a zero magnitude re-encodes to
// the all-zero pattern.
func TestLatDecEncStability(t *testing.T) {
	for latEnc := int32(0); latEnc <= 0xffffff; latEnc++ {
		var latDec = GadDecLat(latEnc)
		var enc2 = GadEncLat(latDec)

		var wantEnc = uint32(latEnc)
		// "-0" == 0, because the highest bit is defined as a sign bit.
		if latEnc == 0x800000 {
			wantEnc = 0
		}

		if enc2 != wantEnc {
			t.Fatalf("lat=%#x --> %d --> %#x", latEnc, latDec, enc2)
		}
	}
}

// TestLonDecEncStability walks every 24 bit longitude code; two's
// complement has no negative zero, so there is no exception.
func TestLonDecEncStability(t *testing.T) {
	for lonEnc := int32(0); lonEnc <= 0xffffff; lonEnc++ {
		var lonDec = GadDecLon(lonEnc)
		var enc2 = GadEncLon(lonDec)

		if enc2 != uint32(lonEnc) {
			t.Fatalf("lon=%#x --> %d --> %#x", lonEnc, lonDec, enc2)
		}
	}
}
