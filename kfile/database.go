package kfile

// DatabaseType tags the database output families.
type DatabaseType int8

const (
	DatabaseOther        DatabaseType = 0
	DatabaseBinaryD3Plot DatabaseType = 1
	DatabaseBinaryD3Thdt DatabaseType = 2
	DatabaseGlstat       DatabaseType = 10
	DatabaseMatsum       DatabaseType = 11
	DatabaseNodout       DatabaseType = 12
	DatabaseElout        DatabaseType = 13
	DatabaseRcforc       DatabaseType = 14
	DatabaseSecforc      DatabaseType = 17
	DatabaseSpcforc      DatabaseType = 21
)

// DatabaseBinary is a *DATABASE_BINARY_* card.
type DatabaseBinary struct {
	Type   DatabaseType
	Dt     float64
	Lcdt   int32
	Beam   int32
	Npltc  int32
	Psetid int32
}

func decodeDatabaseBinary(c *card, typ DatabaseType) DatabaseBinary {
	return DatabaseBinary{
		Type:   typ,
		Dt:     c.floatAt(0, 10, "dt"),
		Lcdt:   c.int32At(10, 10, "lcdt"),
		Beam:   c.int32At(20, 10, "beam"),
		Npltc:  c.int32At(30, 10, "npltc"),
		Psetid: c.int32At(40, 10, "psetid"),
	}
}

// DatabaseASCII is a *DATABASE_<GLSTAT|MATSUM|...> card.
type DatabaseASCII struct {
	Type   DatabaseType
	Dt     float64
	Lcdt   int32
	Binary int32
	Lcur   int32
	Ioopt  int32
}

func decodeDatabaseASCII(c *card, typ DatabaseType) DatabaseASCII {
	return DatabaseASCII{
		Type:   typ,
		Dt:     c.floatAt(0, 10, "dt"),
		Lcdt:   c.int32At(10, 10, "lcdt"),
		Binary: c.int32At(20, 10, "binary"),
		Lcur:   c.int32At(30, 10, "lcur"),
		Ioopt:  c.int32At(40, 10, "ioopt"),
	}
}

// DatabaseHistoryNode is a *DATABASE_HISTORY_NODE block: node ids, up to
// eight per line, accumulated until the next keyword.
type DatabaseHistoryNode struct {
	NodeIDs []int32
}

// AddNode appends one node id.
func (d *DatabaseHistoryNode) AddNode(nid int32) {
	d.NodeIDs = append(d.NodeIDs, nid)
}

// NumNodes returns the number of tracked nodes.
func (d *DatabaseHistoryNode) NumNodes() int {
	return len(d.NodeIDs)
}

// DatabaseHistoryElement is a *DATABASE_HISTORY_SHELL/SOLID/BEAM block.
// ElementType is 1 for shell, 2 for solid, 3 for beam.
type DatabaseHistoryElement struct {
	ElementIDs  []int32
	ElementType int8
}

// AddElement appends one element id.
func (d *DatabaseHistoryElement) AddElement(eid int32) {
	d.ElementIDs = append(d.ElementIDs, eid)
}

// NumElements returns the number of tracked elements.
func (d *DatabaseHistoryElement) NumElements() int {
	return len(d.ElementIDs)
}

// DatabaseCrossSection is a *DATABASE_CROSS_SECTION_SET card.
type DatabaseCrossSection struct {
	CSID int32
	PSID int32
	SSID int32
	TSID int32
	DSID int32
}

func decodeDatabaseCrossSection(c *card) DatabaseCrossSection {
	return DatabaseCrossSection{
		CSID: c.int32At(0, 10, "csid"),
		PSID: c.int32At(10, 10, "psid"),
		SSID: c.int32At(20, 10, "ssid"),
		TSID: c.int32At(30, 10, "tsid"),
		DSID: c.int32At(40, 10, "dsid"),
	}
}
