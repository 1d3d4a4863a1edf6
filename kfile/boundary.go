package kfile

// BoundaryType tags the boundary condition variants.
type BoundaryType int8

const (
	BoundaryOther BoundaryType = iota
	BoundarySpcNode
	BoundarySpcSet
	BoundaryMotionNode
	BoundaryMotionSet
)

// BoundarySPC is a *BOUNDARY_SPC_NODE or *BOUNDARY_SPC_SET card.
//
// The node form carries a packed dof code; the set form carries one flag
// per degree of freedom.
type BoundarySPC struct {
	Type BoundaryType
	NID  int32 // node id, or node set id for the set form
	CID  int32

	DofX, DofY, DofZ    int8
	DofRX, DofRY, DofRZ int8

	Dof int8 // node form: packed dof code 1-7
	Vad int8
}

func decodeBoundarySpcSet(c *card) BoundarySPC {
	return BoundarySPC{
		Type:  BoundarySpcSet,
		NID:   c.int32At(0, 10, "nsid"),
		CID:   c.int32At(10, 10, "cid"),
		DofX:  int8(c.int32At(20, 10, "dofx")),
		DofY:  int8(c.int32At(30, 10, "dofy")),
		DofZ:  int8(c.int32At(40, 10, "dofz")),
		DofRX: int8(c.int32At(50, 10, "dofrx")),
		DofRY: int8(c.int32At(60, 10, "dofry")),
		DofRZ: int8(c.int32At(70, 10, "dofrz")),
	}
}

func decodeBoundarySpcNode(c *card) BoundarySPC {
	return BoundarySPC{
		Type: BoundarySpcNode,
		NID:  c.int32At(0, 10, "nid"),
		Dof:  int8(c.int32At(10, 10, "dof")),
		Vad:  int8(c.int32At(20, 10, "vad")),
	}
}

// BoundaryPrescribedMotion is a *BOUNDARY_PRESCRIBED_MOTION_* card.
type BoundaryPrescribedMotion struct {
	Type  BoundaryType
	NID   int32 // node id or set id
	Dof   int8
	Vad   int8 // 0=displacement 1=velocity 2=acceleration
	LCID  int32
	Sf    float64
	VID   int32
	Death float64
	Birth float64
}

func decodeBoundaryMotion(c *card, typ BoundaryType) BoundaryPrescribedMotion {
	return BoundaryPrescribedMotion{
		Type:  typ,
		NID:   c.int32At(0, 10, "nid"),
		Dof:   int8(c.int32At(10, 10, "dof")),
		Vad:   int8(c.int32At(20, 10, "vad")),
		LCID:  c.int32At(30, 10, "lcid"),
		Sf:    c.floatAt(40, 10, "sf"),
		VID:   c.int32At(50, 10, "vid"),
		Death: c.floatAt(60, 10, "death"),
		Birth: c.floatAt(70, 10, "birth"),
	}
}
