package osmocore

/*------------------------------------------------------------------
 *
 * Purpose:	Types for 3GPP TS 23.032 GAD: Universal Geographical
 *		Area Description.
 *
 * Description:	A GAD PDU carries one of nine standardized location
 *		shapes.  The C original stores them in a union inside
 *		struct gad_pdu; here each shape is its own struct and
 *		GadShape is a sealed sum over them, so code handling one
 *		shape can never read another shape's fields.
 *
 *		Latitude and longitude are kept in micro degrees
 *		(degrees * 1e6) to stay clear of floating point;
 *		distances are millimeters (m * 1e3).
 *
 *------------------------------------------------------------------*/

import "fmt"

type GadType int

// Shape type codes from TS 23.032 section 5.  The code space has gaps:
// 2, 4, 6 and 7 are unassigned and must not dispatch to a neighbour.
const (
	GAD_TYPE_ELL_POINT                GadType = 0
	GAD_TYPE_ELL_POINT_UNC_CIRCLE     GadType = 1
	GAD_TYPE_ELL_POINT_UNC_ELLIPSE    GadType = 3
	GAD_TYPE_POLYGON                  GadType = 5
	GAD_TYPE_ELL_POINT_ALT            GadType = 8
	GAD_TYPE_ELL_POINT_ALT_UNC_ELL    GadType = 9
	GAD_TYPE_ELL_ARC                  GadType = 10
	GAD_TYPE_HA_ELL_POINT_UNC_ELLIPSE GadType = 11
	GAD_TYPE_HA_ELL_POINT_ALT_UNC_ELL GadType = 12
)

var gadTypeNames = map[GadType]string{
	GAD_TYPE_ELL_POINT:                "Ellipsoid-point",
	GAD_TYPE_ELL_POINT_UNC_CIRCLE:     "Ellipsoid-point-with-uncertainty-circle",
	GAD_TYPE_ELL_POINT_UNC_ELLIPSE:    "Ellipsoid-point-with-uncertainty-ellipse",
	GAD_TYPE_POLYGON:                  "Polygon",
	GAD_TYPE_ELL_POINT_ALT:            "Ellipsoid-point-with-altitude",
	GAD_TYPE_ELL_POINT_ALT_UNC_ELL:    "Ellipsoid-point-with-altitude-and-uncertainty-ellipsoid",
	GAD_TYPE_ELL_ARC:                  "Ellipsoid-arc",
	GAD_TYPE_HA_ELL_POINT_UNC_ELLIPSE: "High-accuracy-ellipsoid-point-with-uncertainty-ellipse",
	GAD_TYPE_HA_ELL_POINT_ALT_UNC_ELL: "High-accuracy-ellipsoid-point-with-altitude-and-uncertainty-ellipsoid",
}

// GadTypeName returns the human readable name of a shape type code,
// for diagnostics only.
func GadTypeName(t GadType) string {
	if name, ok := gadTypeNames[t]; ok {
		return name
	}

	return fmt.Sprintf("unknown 0x%x", int(t))
}

// GadShape is one decoded GAD location estimate.  The shape set is
// closed: exactly the nine structs below implement it.
type GadShape interface {
	Type() GadType

	gadShape()
}

// GadEllPoint is an ellipsoid point.
type GadEllPoint struct {
	Lat int32 // micro degrees, -90'000'000 (S) .. 90'000'000 (N)
	Lon int32 // micro degrees, -180'000'000 (W) .. 180'000'000 (E)
}

// GadEllPointUncCircle is an ellipsoid point with uncertainty circle.
type GadEllPointUncCircle struct {
	Lat int32  // micro degrees
	Lon int32  // micro degrees
	Unc uint32 // uncertainty circle radius in mm
}

// GadEllPointUncEllipse is an ellipsoid point with uncertainty ellipse.
type GadEllPointUncEllipse struct {
	Lat          int32  // micro degrees
	Lon          int32  // micro degrees
	UncSemiMajor uint32 // mm
	UncSemiMinor uint32 // mm
	MajorOri     int16  // degrees
	Confidence   uint8  // percent
}

// GadPolygon is an ordered list of ellipsoid points.  Vertex order is
// significant.  TS 23.032 allows at most 15 points.
type GadPolygon struct {
	Points []GadEllPoint
}

// GadEllPointAlt is an ellipsoid point with altitude.
type GadEllPointAlt struct {
	Lat int32 // micro degrees
	Lon int32 // micro degrees
	Alt int32 // mm
}

// GadEllPointAltUncEll is an ellipsoid point with altitude and
// uncertainty ellipsoid.
type GadEllPointAltUncEll struct {
	Lat          int32  // micro degrees
	Lon          int32  // micro degrees
	Alt          int32  // mm
	UncSemiMajor uint32 // mm
	UncSemiMinor uint32 // mm
	MajorOri     int16  // degrees
	UncAlt       int32  // mm
	Confidence   uint8  // percent
}

// GadEllArc is an ellipsoid arc.
type GadEllArc struct {
	Lat        int32  // micro degrees
	Lon        int32  // micro degrees
	InnerR     uint32 // inner circle radius in mm
	UncR       uint32 // uncertainty circle radius in mm
	OfsAngle   int16  // degrees
	InclAngle  int16  // degrees
	Confidence uint8  // percent
}

// GadHaEllPointUncEllipse is a high accuracy ellipsoid point with
// uncertainty ellipse.
type GadHaEllPointUncEllipse struct {
	Lat          int32  // micro degrees
	Lon          int32  // micro degrees
	UncSemiMajor uint32 // mm
	UncSemiMinor uint32 // mm
	MajorOri     int16  // degrees
	Confidence   uint8  // percent
}

// GadHaEllPointAltUncEll is a high accuracy ellipsoid point with
// altitude and uncertainty ellipsoid.
type GadHaEllPointAltUncEll struct {
	Lat          int32  // micro degrees
	Lon          int32  // micro degrees
	Alt          int32  // mm
	UncSemiMajor uint32 // mm
	UncSemiMinor uint32 // mm
	MajorOri     int16  // degrees
	HConfidence  uint8  // percent
	UncAlt       int32  // mm
	VConfidence  uint8  // percent
}

func (GadEllPoint) Type() GadType             { return GAD_TYPE_ELL_POINT }
func (GadEllPointUncCircle) Type() GadType    { return GAD_TYPE_ELL_POINT_UNC_CIRCLE }
func (GadEllPointUncEllipse) Type() GadType   { return GAD_TYPE_ELL_POINT_UNC_ELLIPSE }
func (GadPolygon) Type() GadType              { return GAD_TYPE_POLYGON }
func (GadEllPointAlt) Type() GadType          { return GAD_TYPE_ELL_POINT_ALT }
func (GadEllPointAltUncEll) Type() GadType    { return GAD_TYPE_ELL_POINT_ALT_UNC_ELL }
func (GadEllArc) Type() GadType               { return GAD_TYPE_ELL_ARC }
func (GadHaEllPointUncEllipse) Type() GadType { return GAD_TYPE_HA_ELL_POINT_UNC_ELLIPSE }
func (GadHaEllPointAltUncEll) Type() GadType  { return GAD_TYPE_HA_ELL_POINT_ALT_UNC_ELL }

func (GadEllPoint) gadShape()             {}
func (GadEllPointUncCircle) gadShape()    {}
func (GadEllPointUncEllipse) gadShape()   {}
func (GadPolygon) gadShape()              {}
func (GadEllPointAlt) gadShape()          {}
func (GadEllPointAltUncEll) gadShape()    {}
func (GadEllArc) gadShape()               {}
func (GadHaEllPointUncEllipse) gadShape() {}
func (GadHaEllPointAltUncEll) gadShape()  {}

func (v GadEllPoint) String() string             { return GadToStr(v) }
func (v GadEllPointUncCircle) String() string    { return GadToStr(v) }
func (v GadEllPointUncEllipse) String() string   { return GadToStr(v) }
func (v GadPolygon) String() string              { return GadToStr(v) }
func (v GadEllPointAlt) String() string          { return GadToStr(v) }
func (v GadEllPointAltUncEll) String() string    { return GadToStr(v) }
func (v GadEllArc) String() string               { return GadToStr(v) }
func (v GadHaEllPointUncEllipse) String() string { return GadToStr(v) }
func (v GadHaEllPointAltUncEll) String() string  { return GadToStr(v) }
