package kfile

// Part is a *PART entry: a free-text name card followed by one data card
// of eight 10-wide integers.
type Part struct {
	Name   string // up to 80 characters
	PID    int32
	SecID  int32
	MID    int32
	EosID  int32
	HgID   int32
	Grav   int32
	AdpOpt int32
	TmID   int32
}

// ParsePartLines decodes the two cards of a *PART block.
func ParsePartLines(nameLine, dataLine string) Part {
	return Part{
		Name:   readText(nameLine, 0, 80),
		PID:    readInt(dataLine, 0, 10),
		SecID:  readInt(dataLine, 10, 10),
		MID:    readInt(dataLine, 20, 10),
		EosID:  readInt(dataLine, 30, 10),
		HgID:   readInt(dataLine, 40, 10),
		Grav:   readInt(dataLine, 50, 10),
		AdpOpt: readInt(dataLine, 60, 10),
		TmID:   readInt(dataLine, 70, 10),
	}
}

func decodePartData(name string, c *card) Part {
	return Part{
		Name:   name,
		PID:    c.int32At(0, 10, "pid"),
		SecID:  c.int32At(10, 10, "secid"),
		MID:    c.int32At(20, 10, "mid"),
		EosID:  c.int32At(30, 10, "eosid"),
		HgID:   c.int32At(40, 10, "hgid"),
		Grav:   c.int32At(50, 10, "grav"),
		AdpOpt: c.int32At(60, 10, "adpopt"),
		TmID:   c.int32At(70, 10, "tmid"),
	}
}
