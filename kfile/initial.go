package kfile

// InitialVelocityType tags the initial velocity variants.
type InitialVelocityType int8

const (
	InitialVelocityOther InitialVelocityType = iota
	InitialVelocityNode
	InitialVelocitySet
	InitialVelocityGeneration
)

// InitialVelocity covers *INITIAL_VELOCITY[_NODE|_SET] and
// *INITIAL_VELOCITY_GENERATION.
//
// The non-generation card is decoded through the vxr column; Vyr and Vzr
// exist for completeness and stay zero.
type InitialVelocity struct {
	Type   InitialVelocityType
	NSID   int32
	NSIDEx int32
	BoxID  int32
	IRigid int32

	Vx, Vy, Vz    float64
	Vxr, Vyr, Vzr float64

	// Generation variant
	Omega      float64
	Xc, Yc, Zc float64
}

func decodeInitialVelocity(c *card, typ InitialVelocityType) InitialVelocity {
	return InitialVelocity{
		Type:   typ,
		NSID:   c.int32At(0, 10, "nsid"),
		NSIDEx: c.int32At(10, 10, "nsidex"),
		BoxID:  c.int32At(20, 10, "boxid"),
		IRigid: c.int32At(30, 10, "irigid"),
		Vx:     c.floatAt(40, 10, "vx"),
		Vy:     c.floatAt(50, 10, "vy"),
		Vz:     c.floatAt(60, 10, "vz"),
		Vxr:    c.floatAt(70, 10, "vxr"),
	}
}

func decodeInitialVelocityGeneration(c *card) InitialVelocity {
	return InitialVelocity{
		Type:  InitialVelocityGeneration,
		NSID:  c.int32At(0, 10, "nsid"),
		Omega: c.floatAt(10, 10, "omega"),
		Vx:    c.floatAt(20, 10, "vx"),
		Vy:    c.floatAt(30, 10, "vy"),
		Vz:    c.floatAt(40, 10, "vz"),
		Xc:    c.floatAt(50, 10, "xc"),
		Yc:    c.floatAt(60, 10, "yc"),
		Zc:    c.floatAt(70, 10, "zc"),
	}
}
