package osmocore

/*------------------------------------------------------------------
 *
 * Purpose:   	Message encoding and decoding for 3GPP TS 23.032 GAD.
 *
 * Description:	The first byte of every PDU carries the shape type in
 *		its high nibble; the low nibble is spare (written 0,
 *		ignored on decode).  Only the ellipsoid point with
 *		uncertainty circle has a full field encoding so far,
 *		matching what the cellular location stack actually
 *		emits.  Every other discriminator is recognized for
 *		dispatch and diagnostics only.
 *
 *---------------------------------------------------------------*/

import "fmt"

// appendU24BE appends the low 24 bits of val in big endian byte order.
func appendU24BE(dst []byte, val uint32) []byte {
	return append(dst, byte(val>>16), byte(val>>8), byte(val))
}

// loadU24BE reads a 24 bit big endian integer from the first three
// bytes of b.
func loadU24BE(b []byte) uint32 {
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
}

func gadEncEllPointUncCircle(dst []byte, v GadEllPointUncCircle) []byte {
	dst = append(dst, byte(GAD_TYPE_ELL_POINT_UNC_CIRCLE)<<4)
	dst = appendU24BE(dst, GadEncLat(v.Lat))
	dst = appendU24BE(dst, GadEncLon(v.Lon))
	dst = append(dst, GadEncUnc(v.Unc))

	return dst
}

func gadDecEllPointUncCircle(data []byte) (GadEllPointUncCircle, error) {
	var v GadEllPointUncCircle

	if len(data) != 8 {
		return v, gadDecErr(ErrInvalidLength, GAD_TYPE_ELL_POINT_UNC_CIRCLE,
			"Expecting length of 8 bytes, got %d", len(data))
	}

	v.Lat = GadDecLat(int32(loadU24BE(data[1:4])))
	v.Lon = GadDecLon(int32(loadU24BE(data[4:7])))

	var unc = data[7]
	if unc&0x80 != 0 {
		return GadEllPointUncCircle{}, gadDecErr(ErrReservedBitSet, GAD_TYPE_ELL_POINT_UNC_CIRCLE,
			"Bit 8 of Uncertainty code should be zero (unc = 0x%x)", unc)
	}
	v.Unc = GadDecUnc(unc)

	return v, nil
}

// GadEnc encodes a GAD shape and appends it to dst, returning the
// extended slice.  On error dst is returned unchanged: a PDU is always
// appended whole or not at all.  Multiple PDUs may be appended to the
// same buffer in sequence.
func GadEnc(dst []byte, shape GadShape) ([]byte, error) {
	switch v := shape.(type) {
	case GadEllPointUncCircle:
		return gadEncEllPointUncCircle(dst, v), nil
	default:
		return dst, fmt.Errorf("cannot encode GAD type %s: %w", GadTypeName(shape.Type()), ErrNotSupported)
	}
}

// GadDec decodes one GAD PDU.  The returned shape is freshly
// constructed and fully populated; on failure no shape is returned, so
// a failed decode can never expose partial or stale fields.
func GadDec(data []byte) (GadShape, error) {
	if len(data) < 1 {
		return nil, gadDecErrNoType(ErrEmptyInput, "zero length")
	}

	var gadType = GadType(data[0] >> 4) // low nibble is spare

	switch gadType {
	case GAD_TYPE_ELL_POINT_UNC_CIRCLE:
		var v, err = gadDecEllPointUncCircle(data)
		if err != nil {
			return nil, err
		}

		return v, nil
	default:
		return nil, gadDecErr(ErrNotSupported, gadType, "unsupported GAD type")
	}
}
