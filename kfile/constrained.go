package kfile

// ConstrainedType tags constrained keyword variants, chiefly the joint
// subtypes.
type ConstrainedType int8

const (
	ConstrainedOther ConstrainedType = iota
	JointRevolute
	JointSpherical
	JointCylindrical
	JointTranslational
	JointUniversal
	JointPlanar
)

// ConstrainedNodalRigidBody is a *CONSTRAINED_NODAL_RIGID_BODY card.
// HasInertia marks the _INERTIA variant, whose trailing inertia cards are
// not decoded.
type ConstrainedNodalRigidBody struct {
	PID        int32
	CID        int32
	NSID       int32
	PNode      int32
	IPrt       int32
	DrFlag     int32
	RrFlag     int32
	HasInertia bool
}

func decodeConstrainedNodalRigidBody(c *card, inertia bool) ConstrainedNodalRigidBody {
	b := ConstrainedNodalRigidBody{
		HasInertia: inertia,
		PID:        c.int32At(0, 10, "pid"),
		CID:        c.int32At(10, 10, "cid"),
		NSID:       c.int32At(20, 10, "nsid"),
		PNode:      c.int32At(30, 10, "pnode"),
	}
	if !inertia {
		b.IPrt = c.int32At(40, 10, "iprt")
		b.DrFlag = c.int32At(50, 10, "drflag")
		b.RrFlag = c.int32At(60, 10, "rrflag")
	}
	return b
}

// ConstrainedExtraNodes attaches extra nodes to a rigid body. The SET
// form is a single (pid, nsid) card; the NODE form reads pid from its
// first card and accumulates node ids from the following cards.
type ConstrainedExtraNodes struct {
	PID     int32
	NSID    int32
	NodeIDs []int32
	IsSet   bool
}

// AddNode appends one node id.
func (e *ConstrainedExtraNodes) AddNode(nid int32) {
	e.NodeIDs = append(e.NodeIDs, nid)
}

// NumNodes returns the number of attached nodes.
func (e *ConstrainedExtraNodes) NumNodes() int {
	return len(e.NodeIDs)
}

// ConstrainedJoint is a *CONSTRAINED_JOINT_* card of six node ids plus
// the rps and damp flags.
type ConstrainedJoint struct {
	JointType              ConstrainedType
	N1, N2, N3, N4, N5, N6 int32
	Rps                    int32
	Damp                   int32
}

func decodeConstrainedJoint(c *card, typ ConstrainedType) ConstrainedJoint {
	return ConstrainedJoint{
		JointType: typ,
		N1:        c.int32At(0, 10, "n1"),
		N2:        c.int32At(10, 10, "n2"),
		N3:        c.int32At(20, 10, "n3"),
		N4:        c.int32At(30, 10, "n4"),
		N5:        c.int32At(40, 10, "n5"),
		N6:        c.int32At(50, 10, "n6"),
		Rps:       c.int32At(60, 10, "rps"),
		Damp:      c.int32At(70, 10, "damp"),
	}
}

// ConstrainedSpotweld is a *CONSTRAINED_SPOTWELD card.
type ConstrainedSpotweld struct {
	N1, N2 int32
	Sn     float64 // normal failure force
	Ss     float64 // shear failure force
	N, M   int32
	Tf     float64
}

func decodeConstrainedSpotweld(c *card) ConstrainedSpotweld {
	return ConstrainedSpotweld{
		N1: c.int32At(0, 10, "n1"),
		N2: c.int32At(10, 10, "n2"),
		Sn: c.floatAt(20, 10, "sn"),
		Ss: c.floatAt(30, 10, "ss"),
		N:  c.int32At(40, 10, "n"),
		M:  c.int32At(50, 10, "m"),
		Tf: c.floatAt(60, 10, "tf"),
	}
}
