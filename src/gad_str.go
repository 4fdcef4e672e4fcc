package osmocore

/*------------------------------------------------------------------
 *
 * Purpose:   	Human readable rendering of GAD location estimates for
 *		logging and debugging.
 *
 *---------------------------------------------------------------*/

import (
	"fmt"
	"strings"
)

// microsToFloatStr renders a micro degree value as decimal degrees
// with trailing zeros trimmed: 23000006 -> "23.000006", 42000000 ->
// "42", -500 -> "-0.0005".
func microsToFloatStr(v int32) string {
	var sign = ""
	var uv = int64(v)
	if uv < 0 {
		sign = "-"
		uv = -uv
	}

	var s = fmt.Sprintf("%s%d.%06d", sign, uv/1000000, uv%1000000)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")

	return s
}

// GadToStr returns a human readable representation of a location
// estimate, e.g.
//
//	Ellipsoid-point-with-uncertainty-circle{lat=23.000006,lon=42.000002,unc=442592mm}
//
// A nil shape renders as "null".  Every shape gets its own branch;
// shapes without a field encoding yet render a fixed placeholder
// instead of their fields.
func GadToStr(shape GadShape) string {
	if shape == nil {
		return "null"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s{", GadTypeName(shape.Type()))

	switch v := shape.(type) {
	case GadEllPoint:
		fmt.Fprintf(&sb, "lat=%s,lon=%s", microsToFloatStr(v.Lat), microsToFloatStr(v.Lon))
	case GadEllPointUncCircle:
		fmt.Fprintf(&sb, "lat=%s,lon=%s,unc=%dmm", microsToFloatStr(v.Lat), microsToFloatStr(v.Lon), v.Unc)
	default:
		sb.WriteString("to-str-not-implemented")
	}

	sb.WriteString("}")

	return sb.String()
}
