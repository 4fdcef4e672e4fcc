package osmocore

/*------------------------------------------------------------------
 *
 * Purpose:   	Fixed point conversion between latitude / longitude in
 *		micro degrees and the TS 23.032 bit field codes.
 *
 * Description:	Latitude maps to a 23 bit magnitude with a separate
 *		sign bit (bit 23); longitude maps the full -180..180
 *		range onto a signed 24 bit two's complement value.
 *		Encoding rounds up ("N <= code-units(X) < N+1"),
 *		decoding truncates, which makes every code a fixed point
 *		of decode-then-encode.
 *
 *---------------------------------------------------------------*/

// GadEncLat encodes a latitude value according to 3GPP TS 23.032.
// Normally encoding and decoding is done via GadEnc and GadDec for
// entire PDUs, but calling this directly is useful to clamp a latitude
// to an actually encodable accuracy:
//
//	setLat := GadDecLat(int32(GadEncLat(origLat)))
//
// latMicroDeg is micro degrees (degrees * 1e6),
// -90'000'000 (S) .. 90'000'000 (N).
func GadEncLat(latMicroDeg int32) uint32 {
	// N <= ((2**23)/90)*X < N+1
	// N: encoded latitude
	// X: latitude in degrees
	var sign uint32
	if latMicroDeg < 0 {
		sign = 1 << 23
		latMicroDeg = -latMicroDeg
	}

	var x = int64(latMicroDeg)
	x <<= 23
	x += (1 << 23) - 1
	x /= 90 * 1000000

	return sign | uint32(x&0x7fffff)
}

// GadDecLat decodes an encoded latitude back to micro degrees.
// A set bit 23 negates the 23 bit magnitude, so "-0" (0x800000)
// decodes to 0 and re-encodes as 0.
func GadDecLat(lat int32) int32 {
	var sign int64 = 1
	if lat&0x800000 != 0 {
		sign = -1
		lat &= 0x7fffff
	}

	var x = int64(lat)
	x *= 90 * 1000000
	x >>= 23
	x *= sign

	return int32(x)
}

// GadEncLon encodes a longitude value according to 3GPP TS 23.032.
// lonMicroDeg is micro degrees (degrees * 1e6),
// -180'000'000 (W) .. 180'000'000 (E).
func GadEncLon(lonMicroDeg int32) uint32 {
	// -180 .. 180 degrees mapped to a signed 24 bit integer.
	// N <= ((2**24)/360) * X < N+1
	// N: encoded longitude
	// X: longitude in degrees
	var x = int64(lonMicroDeg)
	x *= 1 << 24
	if lonMicroDeg >= 0 {
		x += (1 << 24) - 1
	} else {
		x -= (1 << 24) - 1
	}
	x /= 360 * 1000000

	return uint32(x) & 0xffffff
}

// GadDecLon decodes an encoded longitude back to micro degrees.
func GadDecLon(lon int32) int32 {
	if lon&0x800000 != 0 {
		// Make the 24 bit negative number a 32 bit negative number.
		lon |= ^0xffffff
	}

	var x = int64(lon)
	x *= 360 * 1000000
	x /= 1 << 24

	return int32(x)
}
