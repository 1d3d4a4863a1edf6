package kfile

// SetType tags the set variant.
type SetType int8

const (
	SetNodeList SetType = iota
	SetPartList
	SetSegment
	SetShell
	SetSolid
)

func (t SetType) String() string {
	switch t {
	case SetNodeList:
		return "node_list"
	case SetPartList:
		return "part_list"
	case SetSegment:
		return "segment"
	case SetShell:
		return "shell"
	case SetSolid:
		return "solid"
	}
	return "unknown"
}

// Set is a *SET_* block: one header card followed by id cards (eight
// 10-wide ids per line) or, for SET_SEGMENT, 4-node segment cards.
type Set struct {
	SID                int32
	Type               SetType
	DA1, DA2, DA3, DA4 float64
	Solver             string

	// IDs for node/part/shell/solid lists.
	IDs []int32

	// Segments for SET_SEGMENT, four node ids each.
	Segments [][4]int32
}

// NewSet returns a Set with the solver default applied.
func NewSet(typ SetType) Set {
	return Set{Type: typ, Solver: "MECH"}
}

// Count returns the number of segments for segment sets and the number of
// stored ids otherwise.
func (s *Set) Count() int {
	if s.Type == SetSegment {
		return len(s.Segments)
	}
	return len(s.IDs)
}

// AddID appends an id, ignoring zero (an unused slot) and negative values.
func (s *Set) AddID(id int32) {
	if id > 0 {
		s.IDs = append(s.IDs, id)
	}
}

// AddSegment appends a segment if any of its four node slots is set.
func (s *Set) AddSegment(n1, n2, n3, n4 int32) {
	if n1 > 0 || n2 > 0 || n3 > 0 || n4 > 0 {
		s.Segments = append(s.Segments, [4]int32{n1, n2, n3, n4})
	}
}

// ParseSetHeader decodes the header card shared by every set variant:
//
//	$#     sid       da1       da2       da3       da4    solver
//	         1       0.0       0.0       0.0       0.0MECH
func ParseSetHeader(line string, typ SetType) Set {
	s := NewSet(typ)
	s.SID = readInt(line, 0, 10)
	s.DA1 = readFloat(line, 10, 10)
	s.DA2 = readFloat(line, 20, 10)
	s.DA3 = readFloat(line, 30, 10)
	s.DA4 = readFloat(line, 40, 10)
	if solver := readText(line, 50, 10); solver != "" {
		s.Solver = solver
	}
	return s
}

// ParseSetDataLine decodes up to eight 10-wide ids and appends the
// positive ones.
func ParseSetDataLine(line string, s *Set) {
	for i := 0; i < 8; i++ {
		s.AddID(readInt(line, i*10, 10))
	}
}

// ParseSegmentDataLine decodes one 4-node segment card.
func ParseSegmentDataLine(line string, s *Set) {
	s.AddSegment(
		readInt(line, 0, 10),
		readInt(line, 10, 10),
		readInt(line, 20, 10),
		readInt(line, 30, 10),
	)
}
