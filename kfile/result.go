package kfile

import "time"

// ParseResult aggregates everything one parse produced. Entity slices
// preserve source order. Warnings hold recoverable per-card problems;
// Errors is non-empty only when the input could not be read at all.
type ParseResult struct {
	Nodes     []Node
	Parts     []Part
	Elements  []Element
	Sets      []Set
	Sections  []Section
	Contacts  []Contact
	Materials []Material
	Includes  []Include
	Curves    []Curve

	BoundarySPCs    []BoundarySPC
	BoundaryMotions []BoundaryPrescribedMotion
	LoadNodes       []LoadNode
	LoadSegments    []LoadSegment
	LoadBodies      []LoadBody

	ControlTerminations    []ControlTermination
	ControlTimesteps       []ControlTimestep
	ControlEnergies        []ControlEnergy
	ControlOutputs         []ControlOutput
	ControlShells          []ControlShell
	ControlContacts        []ControlContact
	ControlHourglasses     []ControlHourglass
	ControlBulkViscosities []ControlBulkViscosity

	DatabaseBinaries        []DatabaseBinary
	DatabaseASCIIs          []DatabaseASCII
	DatabaseHistoryNodes    []DatabaseHistoryNode
	DatabaseHistoryElements []DatabaseHistoryElement
	DatabaseCrossSections   []DatabaseCrossSection

	InitialVelocities []InitialVelocity

	ConstrainedNodalRigidBodies []ConstrainedNodalRigidBody
	ConstrainedExtraNodes       []ConstrainedExtraNodes
	ConstrainedJoints           []ConstrainedJoint
	ConstrainedSpotwelds        []ConstrainedSpotweld

	TotalLines int
	ParseTime  time.Duration
	Warnings   []string
	Errors     []string

	nodeIndex     map[int32]int
	partIndex     map[int32]int
	elementIndex  map[int32]int
	setIndex      map[int32]int
	sectionIndex  map[int32]int
	contactIndex  map[int32]int // keyed by ssid
	materialIndex map[int32]int
	curveIndex    map[int32]int
}

// BuildIndices rebuilds the id → position lookup maps from scratch. On
// duplicate ids the last occurrence wins. Building twice yields the same
// maps.
func (r *ParseResult) BuildIndices() {
	r.nodeIndex = make(map[int32]int, len(r.Nodes))
	for i, n := range r.Nodes {
		r.nodeIndex[n.NID] = i
	}
	r.partIndex = make(map[int32]int, len(r.Parts))
	for i, p := range r.Parts {
		r.partIndex[p.PID] = i
	}
	r.elementIndex = make(map[int32]int, len(r.Elements))
	for i, e := range r.Elements {
		r.elementIndex[e.EID] = i
	}
	r.setIndex = make(map[int32]int, len(r.Sets))
	for i, s := range r.Sets {
		r.setIndex[s.SID] = i
	}
	r.sectionIndex = make(map[int32]int, len(r.Sections))
	for i, s := range r.Sections {
		r.sectionIndex[s.SecID] = i
	}
	r.contactIndex = make(map[int32]int, len(r.Contacts))
	for i, c := range r.Contacts {
		r.contactIndex[c.SSID] = i
	}
	r.materialIndex = make(map[int32]int, len(r.Materials))
	for i, m := range r.Materials {
		r.materialIndex[m.MID] = i
	}
	r.curveIndex = make(map[int32]int, len(r.Curves))
	for i, c := range r.Curves {
		r.curveIndex[c.LCID] = i
	}
}

// NodeByID looks a node up by id. Requires built indices.
func (r *ParseResult) NodeByID(nid int32) (Node, bool) {
	if i, ok := r.nodeIndex[nid]; ok {
		return r.Nodes[i], true
	}
	return Node{}, false
}

// PartByID looks a part up by id.
func (r *ParseResult) PartByID(pid int32) (Part, bool) {
	if i, ok := r.partIndex[pid]; ok {
		return r.Parts[i], true
	}
	return Part{}, false
}

// ElementByID looks an element up by id.
func (r *ParseResult) ElementByID(eid int32) (Element, bool) {
	if i, ok := r.elementIndex[eid]; ok {
		return r.Elements[i], true
	}
	return Element{}, false
}

// SetByID looks a set up by id.
func (r *ParseResult) SetByID(sid int32) (Set, bool) {
	if i, ok := r.setIndex[sid]; ok {
		return r.Sets[i], true
	}
	return Set{}, false
}

// SectionByID looks a section up by id.
func (r *ParseResult) SectionByID(secid int32) (Section, bool) {
	if i, ok := r.sectionIndex[secid]; ok {
		return r.Sections[i], true
	}
	return Section{}, false
}

// ContactBySlaveSet looks a contact up by its slave set id.
func (r *ParseResult) ContactBySlaveSet(ssid int32) (Contact, bool) {
	if i, ok := r.contactIndex[ssid]; ok {
		return r.Contacts[i], true
	}
	return Contact{}, false
}

// MaterialByID looks a material up by id.
func (r *ParseResult) MaterialByID(mid int32) (Material, bool) {
	if i, ok := r.materialIndex[mid]; ok {
		return r.Materials[i], true
	}
	return Material{}, false
}

// CurveByID looks a curve up by id.
func (r *ParseResult) CurveByID(lcid int32) (Curve, bool) {
	if i, ok := r.curveIndex[lcid]; ok {
		return r.Curves[i], true
	}
	return Curve{}, false
}

// PartNames returns a pid → name digest of the parsed parts.
func (r *ParseResult) PartNames() map[int32]string {
	names := make(map[int32]string, len(r.Parts))
	for _, p := range r.Parts {
		names[p.PID] = p.Name
	}
	return names
}
