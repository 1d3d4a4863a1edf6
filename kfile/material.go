package kfile

// MaterialType tags the common material models by their LS-DYNA number.
type MaterialType int8

const (
	MaterialOther                     MaterialType = 0
	MaterialElastic                   MaterialType = 1
	MaterialOrthotropicElastic        MaterialType = 2
	MaterialPlasticKinematic          MaterialType = 3
	MaterialRigid                     MaterialType = 20
	MaterialPiecewiseLinearPlasticity MaterialType = 24
	MaterialFabric                    MaterialType = 34
	MaterialCompositeDamage           MaterialType = 54
	MaterialLaminatedCompositeFabric  MaterialType = 58
	MaterialCompositeFailure          MaterialType = 59
)

// Material is a *MAT_* block. Every data card is retained verbatim in
// Cards as eight 10-wide floats; the typed fields below are projections
// of the slots the common models share.
type Material struct {
	MID      int32
	Type     MaterialType
	TypeName string // keyword text after *MAT_, _TITLE stripped
	Title    string

	// Card 1 commons
	Ro float64 // mass density
	E  float64 // Young's modulus (EA for orthotropic models)
	Pr float64 // Poisson's ratio (PRBA for orthotropic models)

	// Orthotropic / composite moduli
	Eb, Ec     float64
	Prca, Prcb float64
	Gab        float64
	Gbc        float64
	Gca        float64

	// Plasticity
	Sigy float64
	Etan float64
	Fail float64
	Tdel float64

	// Rigid constraints
	Cmo  float64
	Con1 float64
	Con2 float64

	// Composite strengths
	Xc, Xt float64
	Yc, Yt float64
	Sc     float64

	Aopt int32

	// Cards holds every decoded card row, eight values each.
	Cards [][]float64

	// CardsParsed counts the consumed data cards.
	CardsParsed int32
}

// CardValue returns the value at (card, column), or zero when out of
// range.
func (m *Material) CardValue(cardIdx, col int) float64 {
	if cardIdx < 0 || cardIdx >= len(m.Cards) {
		return 0
	}
	row := m.Cards[cardIdx]
	if col < 0 || col >= len(row) {
		return 0
	}
	return row[col]
}

// NumCards returns the number of stored cards.
func (m *Material) NumCards() int {
	return len(m.Cards)
}

func (m *Material) isComposite() bool {
	switch m.Type {
	case MaterialCompositeDamage, MaterialLaminatedCompositeFabric, MaterialCompositeFailure:
		return true
	}
	return false
}

// absorbCard stores one decoded card row and projects the typed slots
// the material model defines for that card position.
func (m *Material) absorbCard(values []float64) {
	m.Cards = append(m.Cards, values)
	m.CardsParsed++

	switch m.CardsParsed {
	case 1:
		m.MID = int32(values[0])
		m.Ro = values[1]
		m.E = values[2]
		m.Pr = values[3]

		switch {
		case m.Type == MaterialPlasticKinematic || m.Type == MaterialPiecewiseLinearPlasticity:
			m.Sigy = values[4]
			m.Etan = values[5]
			m.Fail = values[6]
			m.Tdel = values[7]
		case m.Type == MaterialOrthotropicElastic:
			m.Eb = values[3]
			m.Ec = values[4]
			m.Pr = values[5] // prba
			m.Prca = values[6]
			m.Prcb = values[7]
		case m.isComposite():
			m.Eb = values[3]
			m.Ec = values[4]
			m.Pr = values[5] // prba
		}
	case 2:
		switch {
		case m.Type == MaterialOrthotropicElastic:
			m.Gab = values[0]
			m.Gbc = values[1]
			m.Gca = values[2]
			m.Aopt = int32(values[3])
		case m.isComposite():
			m.Gab = values[0]
			m.Gbc = values[1]
			m.Gca = values[2]
		case m.Type == MaterialRigid:
			m.Cmo = values[0]
			m.Con1 = values[1]
			m.Con2 = values[2]
		}
	case 3:
		if m.isComposite() {
			m.Xc = values[0]
			m.Xt = values[1]
			m.Yc = values[2]
			m.Yt = values[3]
			m.Sc = values[4]
		}
	}
}
