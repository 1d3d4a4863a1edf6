package kfile

// SectionType tags the section variant.
type SectionType int8

const (
	SectionShell SectionType = iota
	SectionSolid
	SectionBeam
)

func (t SectionType) String() string {
	switch t {
	case SectionShell:
		return "shell"
	case SectionSolid:
		return "solid"
	case SectionBeam:
		return "beam"
	}
	return "unknown"
}

// Section covers *SECTION_SHELL (two cards), *SECTION_SOLID (one card)
// and *SECTION_BEAM (two cards). Fields unused by a variant stay at their
// defaults.
type Section struct {
	SecID  int32
	Type   SectionType
	ElForm int32

	// Shell
	Shrf      float64
	Nip       int32
	Propt     float64
	QrIrid    int32
	Icomp     int32
	Setyp     int32
	Thickness [4]float64
	Nloc      float64
	Marea     float64
	Idof      float64
	Edgset    float64

	// Solid
	Aet int32 // ambient element type

	// Beam
	Cst   float64
	Scoor float64
	Ts    [2]float64
	Tt    [2]float64
	Nsloc float64
	Ntloc float64
}

// NewSection returns a Section with the shell-card defaults applied.
func NewSection(typ SectionType) Section {
	return Section{
		Type:  typ,
		Shrf:  1.0,
		Nip:   2,
		Propt: 1.0,
		Setyp: 1,
	}
}

func decodeSectionShellHeader(c *card, s *Section) {
	s.SecID = c.int32At(0, 10, "secid")
	s.ElForm = c.int32At(10, 10, "elform")
	s.Shrf = c.floatAt(20, 10, "shrf")
	s.Nip = c.int32At(30, 10, "nip")
	s.Propt = c.floatAt(40, 10, "propt")
	s.QrIrid = c.int32At(50, 10, "qr_irid")
	s.Icomp = c.int32At(60, 10, "icomp")
	s.Setyp = c.int32At(70, 10, "setyp")
}

func decodeSectionShellData(c *card, s *Section) {
	s.Thickness[0] = c.floatAt(0, 10, "t1")
	s.Thickness[1] = c.floatAt(10, 10, "t2")
	s.Thickness[2] = c.floatAt(20, 10, "t3")
	s.Thickness[3] = c.floatAt(30, 10, "t4")
	s.Nloc = c.floatAt(40, 10, "nloc")
	s.Marea = c.floatAt(50, 10, "marea")
	s.Idof = c.floatAt(60, 10, "idof")
	s.Edgset = c.floatAt(70, 10, "edgset")
}

func decodeSectionSolid(c *card, s *Section) {
	s.SecID = c.int32At(0, 10, "secid")
	s.ElForm = c.int32At(10, 10, "elform")
	s.Aet = c.int32At(20, 10, "aet")
}

func decodeSectionBeamHeader(c *card, s *Section) {
	s.SecID = c.int32At(0, 10, "secid")
	s.ElForm = c.int32At(10, 10, "elform")
	s.Shrf = c.floatAt(20, 10, "shrf")
	s.QrIrid = c.int32At(30, 10, "qr_irid")
	s.Cst = c.floatAt(40, 10, "cst")
	s.Scoor = c.floatAt(50, 10, "scoor")
}

func decodeSectionBeamData(c *card, s *Section) {
	s.Ts[0] = c.floatAt(0, 10, "ts1")
	s.Ts[1] = c.floatAt(10, 10, "ts2")
	s.Tt[0] = c.floatAt(20, 10, "tt1")
	s.Tt[1] = c.floatAt(30, 10, "tt2")
	s.Nsloc = c.floatAt(40, 10, "nsloc")
	s.Ntloc = c.floatAt(50, 10, "ntloc")
}
