package kfile

// ControlTermination is *CONTROL_TERMINATION. Endcyc is a float for
// compatibility even though cycle counts are integral.
type ControlTermination struct {
	Endtim float64
	Endcyc float64
	Dtmin  float64
	Endeng float64
	Endmas float64
	Nosol  int32
}

func decodeControlTermination(c *card) ControlTermination {
	return ControlTermination{
		Endtim: c.floatAt(0, 10, "endtim"),
		Endcyc: c.floatAt(10, 10, "endcyc"),
		Dtmin:  c.floatAt(20, 10, "dtmin"),
		Endeng: c.floatAt(30, 10, "endeng"),
		Endmas: c.floatAt(40, 10, "endmas"),
		Nosol:  c.int32At(50, 10, "nosol"),
	}
}

// ControlTimestep is *CONTROL_TIMESTEP.
type ControlTimestep struct {
	Dtinit float64
	Tssfac float64
	Isdo   int32
	Tslimt float64
	Dt2ms  float64
	Lctm   int32
	Erode  int32
	Ms1st  int32
}

func decodeControlTimestep(c *card) ControlTimestep {
	return ControlTimestep{
		Dtinit: c.floatAt(0, 10, "dtinit"),
		Tssfac: c.floatAt(10, 10, "tssfac"),
		Isdo:   c.int32At(20, 10, "isdo"),
		Tslimt: c.floatAt(30, 10, "tslimt"),
		Dt2ms:  c.floatAt(40, 10, "dt2ms"),
		Lctm:   c.int32At(50, 10, "lctm"),
		Erode:  c.int32At(60, 10, "erode"),
		Ms1st:  c.int32At(70, 10, "ms1st"),
	}
}

// ControlEnergy is *CONTROL_ENERGY.
type ControlEnergy struct {
	Hgen   int32
	Rwen   int32
	Slnten int32
	Rylen  int32
}

func decodeControlEnergy(c *card) ControlEnergy {
	return ControlEnergy{
		Hgen:   c.int32At(0, 10, "hgen"),
		Rwen:   c.int32At(10, 10, "rwen"),
		Slnten: c.int32At(20, 10, "slnten"),
		Rylen:  c.int32At(30, 10, "rylen"),
	}
}

// ControlOutput is *CONTROL_OUTPUT.
type ControlOutput struct {
	Npopt  int32
	Netefm int32
	Nflcit int32
	Nprint int32
	Ikedit int32
	Iflush int32
	Iprtf  int32
	Ierode int32
}

func decodeControlOutput(c *card) ControlOutput {
	return ControlOutput{
		Npopt:  c.int32At(0, 10, "npopt"),
		Netefm: c.int32At(10, 10, "netefm"),
		Nflcit: c.int32At(20, 10, "nflcit"),
		Nprint: c.int32At(30, 10, "nprint"),
		Ikedit: c.int32At(40, 10, "ikedit"),
		Iflush: c.int32At(50, 10, "iflush"),
		Iprtf:  c.int32At(60, 10, "iprtf"),
		Ierode: c.int32At(70, 10, "ierode"),
	}
}

// ControlShell is *CONTROL_SHELL.
type ControlShell struct {
	Wrpang float64
	Esort  int32
	Irnxx  int32
	Istupd int32
	Theory int32
	Bwc    int32
	Miter  int32
	Proj   int32
}

func decodeControlShell(c *card) ControlShell {
	return ControlShell{
		Wrpang: c.floatAt(0, 10, "wrpang"),
		Esort:  c.int32At(10, 10, "esort"),
		Irnxx:  c.int32At(20, 10, "irnxx"),
		Istupd: c.int32At(30, 10, "istupd"),
		Theory: c.int32At(40, 10, "theory"),
		Bwc:    c.int32At(50, 10, "bwc"),
		Miter:  c.int32At(60, 10, "miter"),
		Proj:   c.int32At(70, 10, "proj"),
	}
}

// ControlContact is *CONTROL_CONTACT.
type ControlContact struct {
	Slsfac float64
	Rwpnal float64
	Islchk int32
	Shlthk int32
	Penopt int32
	Thkchg float64
	Otefm  int32
	Enmass int32
}

func decodeControlContact(c *card) ControlContact {
	return ControlContact{
		Slsfac: c.floatAt(0, 10, "slsfac"),
		Rwpnal: c.floatAt(10, 10, "rwpnal"),
		Islchk: c.int32At(20, 10, "islchk"),
		Shlthk: c.int32At(30, 10, "shlthk"),
		Penopt: c.int32At(40, 10, "penopt"),
		Thkchg: c.floatAt(50, 10, "thkchg"),
		Otefm:  c.int32At(60, 10, "otefm"),
		Enmass: c.int32At(70, 10, "enmass"),
	}
}

// ControlHourglass is *CONTROL_HOURGLASS.
type ControlHourglass struct {
	Ihq int32
	Qh  float64
}

func decodeControlHourglass(c *card) ControlHourglass {
	return ControlHourglass{
		Ihq: c.int32At(0, 10, "ihq"),
		Qh:  c.floatAt(10, 10, "qh"),
	}
}

// ControlBulkViscosity is *CONTROL_BULK_VISCOSITY.
type ControlBulkViscosity struct {
	Q1   float64
	Q2   float64
	Type int32
}

func decodeControlBulkViscosity(c *card) ControlBulkViscosity {
	return ControlBulkViscosity{
		Q1:   c.floatAt(0, 10, "q1"),
		Q2:   c.floatAt(10, 10, "q2"),
		Type: c.int32At(20, 10, "type"),
	}
}
