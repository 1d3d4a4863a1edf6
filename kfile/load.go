package kfile

// LoadType tags the load families.
type LoadType int8

const (
	LoadOther LoadType = iota
	LoadTypeNode
	LoadTypeSegment
	LoadTypeShellSet
	LoadTypeBody
	LoadTypeRigidBody
	LoadTypeThermal
)

// LoadNode is a *LOAD_NODE_POINT or *LOAD_NODE_SET card.
type LoadNode struct {
	Type       LoadType
	NID        int32 // node id or node set id
	Dof        int8
	LCID       int32
	Sf         float64
	CID        int32
	M1, M2, M3 int32
	IsSet      bool
}

func decodeLoadNode(c *card, isSet bool) LoadNode {
	return LoadNode{
		Type:  LoadTypeNode,
		NID:   c.int32At(0, 10, "nid"),
		Dof:   int8(c.int32At(10, 10, "dof")),
		LCID:  c.int32At(20, 10, "lcid"),
		Sf:    c.floatAt(30, 10, "sf"),
		CID:   c.int32At(40, 10, "cid"),
		M1:    c.int32At(50, 10, "m1"),
		M2:    c.int32At(60, 10, "m2"),
		M3:    c.int32At(70, 10, "m3"),
		IsSet: isSet,
	}
}

// LoadSegment is one *LOAD_SEGMENT card: a pressure load over a 4-node
// face.
type LoadSegment struct {
	LCID           int32
	Sf             float64
	At             float64 // arrival time
	N1, N2, N3, N4 int32
}

func decodeLoadSegment(c *card) LoadSegment {
	return LoadSegment{
		LCID: c.int32At(0, 10, "lcid"),
		Sf:   c.floatAt(10, 10, "sf"),
		At:   c.floatAt(20, 10, "at"),
		N1:   c.int32At(30, 10, "n1"),
		N2:   c.int32At(40, 10, "n2"),
		N3:   c.int32At(50, 10, "n3"),
		N4:   c.int32At(60, 10, "n4"),
	}
}

// LoadBody is a *LOAD_BODY_X/Y/Z card. Direction is 1, 2 or 3 for the
// axis named by the keyword suffix.
type LoadBody struct {
	Direction  int8
	LCID       int32
	Sf         float64
	LCIDDr     int32
	Xc, Yc, Zc float64
	CID        int32
}

func decodeLoadBody(c *card, direction int8) LoadBody {
	return LoadBody{
		Direction: direction,
		LCID:      c.int32At(0, 10, "lcid"),
		Sf:        c.floatAt(10, 10, "sf"),
		LCIDDr:    c.int32At(20, 10, "lciddr"),
		Xc:        c.floatAt(30, 10, "xc"),
		Yc:        c.floatAt(40, 10, "yc"),
		Zc:        c.floatAt(50, 10, "zc"),
		CID:       c.int32At(60, 10, "cid"),
	}
}
