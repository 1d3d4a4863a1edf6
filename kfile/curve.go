package kfile

// CurvePoint is one (abscissa, ordinate) pair of a load curve.
type CurvePoint struct {
	A float64
	O float64
}

// Curve is a *DEFINE_CURVE block: a header card followed by data cards of
// two 20-wide columns, one point per line.
type Curve struct {
	LCID   int32
	SIDR   int32
	Sfa    float64 // abscissa scale factor
	Sfo    float64 // ordinate scale factor
	Offa   float64
	Offo   float64
	Dattyp int32
	Title  string

	Points []CurvePoint
}

// NewCurve returns a Curve with the unit scale factors applied.
func NewCurve() Curve {
	return Curve{Sfa: 1.0, Sfo: 1.0}
}

// AddPoint appends one data point.
func (c *Curve) AddPoint(a, o float64) {
	c.Points = append(c.Points, CurvePoint{A: a, O: o})
}

// NumPoints returns the number of stored points.
func (c *Curve) NumPoints() int {
	return len(c.Points)
}

func decodeCurveHeader(cd *card, c *Curve) {
	c.LCID = cd.int32At(0, 10, "lcid")
	c.SIDR = cd.int32At(10, 10, "sidr")
	c.Sfa = cd.floatAt(20, 10, "sfa")
	c.Sfo = cd.floatAt(30, 10, "sfo")
	c.Offa = cd.floatAt(40, 10, "offa")
	c.Offo = cd.floatAt(50, 10, "offo")
	c.Dattyp = cd.int32At(60, 10, "dattyp")
}
