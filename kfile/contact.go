package kfile

// ContactType tags the common contact families. Anything else keeps its
// raw keyword text in TypeName and is tagged ContactOther.
type ContactType int8

const (
	ContactAutomaticSingleSurface ContactType = iota
	ContactAutomaticSurfaceToSurface
	ContactAutomaticNodesToSurface
	ContactAutomaticGeneral
	ContactTiedSurfaceToSurface
	ContactTiedNodesToSurface
	ContactTiedShellEdgeToSurface
	ContactSurfaceToSurface
	ContactNodesToSurface
	ContactOther ContactType = 99
)

// Contact is a *CONTACT_* block of exactly three 8-column cards, with an
// optional leading id or title card depending on the keyword suffix.
type Contact struct {
	Type     ContactType
	TypeName string // keyword text after *CONTACT_, options stripped

	// Card 1
	SSID   int32 // slave segment set id
	MSID   int32 // master segment set id
	SStyp  int32
	MStyp  int32
	SBoxID int32
	MBoxID int32
	Spr    int32
	Mpr    int32

	// Card 2
	Fs     float64 // static friction coefficient
	Fd     float64 // dynamic friction coefficient
	Dc     float64
	Vc     float64
	Vdc    float64
	Penchk int32
	Bt     float64 // birth time
	Dt     float64 // death time

	// Card 3
	Sfs  float64
	Sfm  float64
	Sst  float64
	Mst  float64
	Sfst float64
	Sfmt float64
	Fsf  float64
	Vsf  float64

	// CardsParsed counts the data cards decoded without error, 0 through 3.
	CardsParsed int8
}

// NewContact returns a Contact with the card 2 and 3 defaults applied.
func NewContact(typ ContactType, name string) Contact {
	return Contact{
		Type:     typ,
		TypeName: name,
		Dt:       1.0e20,
		Sfs:      1.0,
		Sfm:      1.0,
		Sfst:     1.0,
		Sfmt:     1.0,
		Fsf:      1.0,
		Vsf:      1.0,
	}
}

func decodeContactCard1(c *card, ct *Contact) {
	ct.SSID = c.int32At(0, 10, "ssid")
	ct.MSID = c.int32At(10, 10, "msid")
	ct.SStyp = c.int32At(20, 10, "sstyp")
	ct.MStyp = c.int32At(30, 10, "mstyp")
	ct.SBoxID = c.int32At(40, 10, "sboxid")
	ct.MBoxID = c.int32At(50, 10, "mboxid")
	ct.Spr = c.int32At(60, 10, "spr")
	ct.Mpr = c.int32At(70, 10, "mpr")
}

func decodeContactCard2(c *card, ct *Contact) {
	ct.Fs = c.floatAt(0, 10, "fs")
	ct.Fd = c.floatAt(10, 10, "fd")
	ct.Dc = c.floatAt(20, 10, "dc")
	ct.Vc = c.floatAt(30, 10, "vc")
	ct.Vdc = c.floatAt(40, 10, "vdc")
	ct.Penchk = c.int32At(50, 10, "penchk")
	ct.Bt = c.floatAt(60, 10, "bt")
	ct.Dt = c.floatAt(70, 10, "dt")
}

func decodeContactCard3(c *card, ct *Contact) {
	ct.Sfs = c.floatAt(0, 10, "sfs")
	ct.Sfm = c.floatAt(10, 10, "sfm")
	ct.Sst = c.floatAt(20, 10, "sst")
	ct.Mst = c.floatAt(30, 10, "mst")
	ct.Sfst = c.floatAt(40, 10, "sfst")
	ct.Sfmt = c.floatAt(50, 10, "sfmt")
	ct.Fsf = c.floatAt(60, 10, "fsf")
	ct.Vsf = c.floatAt(70, 10, "vsf")
}
