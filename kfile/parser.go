package kfile

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// parseState identifies the active card handler, with one variant per
// handler and ordinal sub-states for multi-card handlers.
type parseState int

const (
	stateIdle parseState = iota
	stateNode
	statePartName
	statePartData
	stateElement
	stateSetTitle
	stateSetHeader
	stateSetData
	stateSectionTitle
	stateSectionShellHeader
	stateSectionShellData
	stateSectionSolid
	stateSectionBeamHeader
	stateSectionBeamData
	stateContactPrefix // the _ID or _TITLE card before card 1
	stateContactCard1
	stateContactCard2
	stateContactCard3
	stateMaterialTitle
	stateMaterialData
	stateInclude
	stateCurveTitle
	stateCurveHeader
	stateCurveData
	stateBoundarySPC
	stateBoundaryMotion
	stateLoadNode
	stateLoadSegment
	stateLoadBody
	stateControlTermination
	stateControlTimestep
	stateControlEnergy
	stateControlOutput
	stateControlShell
	stateControlContact
	stateControlHourglass
	stateControlBulkViscosity
	stateDatabaseBinary
	stateDatabaseASCII
	stateDatabaseHistoryNode
	stateDatabaseHistoryElement
	stateDatabaseCrossSection
	stateInitialVelocity
	stateInitialVelocityGeneration
	stateConstrainedNodalRigidBody
	stateConstrainedExtraNodes
	stateConstrainedJoint
	stateConstrainedSpotweld
)

// Parser is a single-pass K-file parser. A Parser is not safe for
// concurrent use; construct a fresh one per parse.
type Parser struct {
	parseNodes        bool
	parseParts        bool
	parseElements     bool
	parseSets         bool
	parseSections     bool
	parseContacts     bool
	parseMaterials    bool
	parseIncludes     bool
	parseCurves       bool
	parseBoundaries   bool
	parseLoads        bool
	parseControls     bool
	parseDatabases    bool
	parseInitials     bool
	parseConstraineds bool
	buildIndex        bool

	state   parseState
	keyword string // uppercased text of the active keyword line
	lineno  int

	// In-flight entities for handlers that span multiple cards.
	partName    string
	elementType ElementType
	set         Set
	section     Section
	contact     Contact
	material    Material
	matExpected int32
	curve       Curve
	histNode    DatabaseHistoryNode
	histElem    DatabaseHistoryElement
	extraNodes  ConstrainedExtraNodes

	// Variant selectors latched from the keyword line.
	spcType     BoundaryType
	motionType  BoundaryType
	loadIsSet   bool
	loadBodyDir int8
	dbType      DatabaseType
	ivType      InitialVelocityType
	nrbInertia  bool
	jointType   ConstrainedType
	incPathOnly bool
	incRelative bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithNodes toggles *NODE parsing.
func WithNodes(enabled bool) Option { return func(p *Parser) { p.parseNodes = enabled } }

// WithParts toggles *PART parsing.
func WithParts(enabled bool) Option { return func(p *Parser) { p.parseParts = enabled } }

// WithElements toggles *ELEMENT_* parsing.
func WithElements(enabled bool) Option { return func(p *Parser) { p.parseElements = enabled } }

// WithSets toggles *SET_* parsing.
func WithSets(enabled bool) Option { return func(p *Parser) { p.parseSets = enabled } }

// WithSections toggles *SECTION_* parsing.
func WithSections(enabled bool) Option { return func(p *Parser) { p.parseSections = enabled } }

// WithContacts toggles *CONTACT_* parsing.
func WithContacts(enabled bool) Option { return func(p *Parser) { p.parseContacts = enabled } }

// WithMaterials toggles *MAT_* parsing.
func WithMaterials(enabled bool) Option { return func(p *Parser) { p.parseMaterials = enabled } }

// WithIncludes toggles *INCLUDE parsing.
func WithIncludes(enabled bool) Option { return func(p *Parser) { p.parseIncludes = enabled } }

// WithCurves toggles *DEFINE_CURVE parsing.
func WithCurves(enabled bool) Option { return func(p *Parser) { p.parseCurves = enabled } }

// WithBoundaries toggles *BOUNDARY_* parsing.
func WithBoundaries(enabled bool) Option { return func(p *Parser) { p.parseBoundaries = enabled } }

// WithLoads toggles *LOAD_* parsing.
func WithLoads(enabled bool) Option { return func(p *Parser) { p.parseLoads = enabled } }

// WithControls toggles *CONTROL_* parsing.
func WithControls(enabled bool) Option { return func(p *Parser) { p.parseControls = enabled } }

// WithDatabases toggles *DATABASE_* parsing.
func WithDatabases(enabled bool) Option { return func(p *Parser) { p.parseDatabases = enabled } }

// WithInitials toggles *INITIAL_* parsing.
func WithInitials(enabled bool) Option { return func(p *Parser) { p.parseInitials = enabled } }

// WithConstraineds toggles *CONSTRAINED_* parsing.
func WithConstraineds(enabled bool) Option { return func(p *Parser) { p.parseConstraineds = enabled } }

// WithIndex toggles building the id lookup maps after the parse.
func WithIndex(enabled bool) Option { return func(p *Parser) { p.buildIndex = enabled } }

// NewParser returns a Parser with every family and the indexer enabled.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		parseNodes:        true,
		parseParts:        true,
		parseElements:     true,
		parseSets:         true,
		parseSections:     true,
		parseContacts:     true,
		parseMaterials:    true,
		parseIncludes:     true,
		parseCurves:       true,
		parseBoundaries:   true,
		parseLoads:        true,
		parseControls:     true,
		parseDatabases:    true,
		parseInitials:     true,
		parseConstraineds: true,
		buildIndex:        true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseFile reads the file at path and parses it. A read failure is
// recorded in the result's Errors and yields an otherwise empty result.
func (p *Parser) ParseFile(path string) *ParseResult {
	content, err := os.ReadFile(path)
	if err != nil {
		result := &ParseResult{}
		result.Errors = append(result.Errors, fmt.Sprintf("failed to open file %s: %v", path, err))
		return result
	}
	return p.ParseString(string(content))
}

// ParseString parses K-file content in one forward pass.
func (p *Parser) ParseString(content string) *ParseResult {
	start := time.Now()
	result := &ParseResult{}

	p.state = stateIdle
	p.lineno = 0

	for pos := 0; pos < len(content); {
		var line string
		if nl := strings.IndexByte(content[pos:], '\n'); nl >= 0 {
			line = content[pos : pos+nl]
			pos += nl + 1
		} else {
			line = content[pos:]
			pos = len(content)
		}
		line = strings.TrimSuffix(line, "\r")
		p.lineno++
		p.processLine(line, result)
	}
	result.TotalLines = p.lineno

	p.commitInFlight(result)

	if p.buildIndex {
		result.BuildIndices()
	}
	result.ParseTime = time.Since(start)
	return result
}

func (p *Parser) processLine(line string, result *ParseResult) {
	switch classifyLine(line) {
	case lineBlank, lineComment:
		return
	case lineKeyword:
		p.handleKeyword(line, result)
	case lineData:
		p.handleData(line, result)
	}
}

// commitInFlight flushes entities that have no explicit terminator. Only
// entities with a positive primary key (or a non-empty id list) are kept.
func (p *Parser) commitInFlight(result *ParseResult) {
	if p.set.SID > 0 && p.set.Count() > 0 {
		result.Sets = append(result.Sets, p.set)
	}
	p.set = Set{}

	if p.material.MID > 0 {
		result.Materials = append(result.Materials, p.material)
	}
	p.material = Material{}

	if p.curve.LCID > 0 {
		result.Curves = append(result.Curves, p.curve)
	}
	p.curve = Curve{}

	if p.histNode.NumNodes() > 0 {
		result.DatabaseHistoryNodes = append(result.DatabaseHistoryNodes, p.histNode)
	}
	p.histNode = DatabaseHistoryNode{}

	if p.histElem.NumElements() > 0 {
		result.DatabaseHistoryElements = append(result.DatabaseHistoryElements, p.histElem)
	}
	p.histElem = DatabaseHistoryElement{}

	if !p.extraNodes.IsSet && p.extraNodes.PID > 0 {
		result.ConstrainedExtraNodes = append(result.ConstrainedExtraNodes, p.extraNodes)
	}
	p.extraNodes = ConstrainedExtraNodes{}
}

func (p *Parser) handleKeyword(line string, result *ParseResult) {
	p.commitInFlight(result)

	kw := RecognizeKeyword(line)
	p.keyword = strings.ToUpper(strings.TrimSpace(line))

	switch kw.Kind {
	case KwNode:
		p.state = when(p.parseNodes, stateNode)

	case KwPart:
		p.partName = ""
		p.state = when(p.parseParts, statePartName)

	case KwElementShell:
		p.elementType = ElementShell
		p.state = when(p.parseElements, stateElement)
	case KwElementSolid:
		p.elementType = ElementSolid
		p.state = when(p.parseElements, stateElement)
	case KwElementBeam:
		p.elementType = ElementBeam
		p.state = when(p.parseElements, stateElement)

	case KwSetNodeList, KwSetPartList, KwSetSegment, KwSetShell, KwSetSolid:
		if !p.parseSets {
			p.state = stateIdle
			return
		}
		p.set = NewSet(setTypeFor(kw.Kind))
		if kw.Title {
			p.state = stateSetTitle
		} else {
			p.state = stateSetHeader
		}

	case KwSectionShell:
		p.beginSection(SectionShell, kw.Title, stateSectionShellHeader)
	case KwSectionSolid:
		p.beginSection(SectionSolid, kw.Title, stateSectionSolid)
	case KwSectionBeam:
		p.beginSection(SectionBeam, kw.Title, stateSectionBeamHeader)

	case KwContact:
		if !p.parseContacts {
			p.state = stateIdle
			return
		}
		p.contact = NewContact(kw.Contact, kw.ContactName)
		if kw.ID || kw.Title {
			p.state = stateContactPrefix
		} else {
			p.state = stateContactCard1
		}

	case KwMaterial:
		if !p.parseMaterials {
			p.state = stateIdle
			return
		}
		p.material = Material{Type: kw.Material, TypeName: kw.MaterialName}
		p.matExpected = kw.MaterialCards
		if kw.Title {
			p.state = stateMaterialTitle
		} else {
			p.state = stateMaterialData
		}

	case KwInclude:
		p.incPathOnly = kw.PathOnly
		p.incRelative = kw.Relative
		p.state = when(p.parseIncludes, stateInclude)

	case KwDefineCurve:
		if !p.parseCurves {
			p.state = stateIdle
			return
		}
		p.curve = NewCurve()
		if kw.Title {
			p.state = stateCurveTitle
		} else {
			p.state = stateCurveHeader
		}

	case KwBoundarySPC:
		if kw.Set {
			p.spcType = BoundarySpcSet
		} else {
			p.spcType = BoundarySpcNode
		}
		p.state = when(p.parseBoundaries, stateBoundarySPC)

	case KwBoundaryPrescribedMotion:
		if kw.Set {
			p.motionType = BoundaryMotionSet
		} else {
			p.motionType = BoundaryMotionNode
		}
		p.state = when(p.parseBoundaries, stateBoundaryMotion)

	case KwLoadNode:
		p.loadIsSet = kw.Set
		p.state = when(p.parseLoads, stateLoadNode)
	case KwLoadSegment:
		p.state = when(p.parseLoads, stateLoadSegment)
	case KwLoadBody:
		p.loadBodyDir = kw.Direction
		p.state = when(p.parseLoads, stateLoadBody)

	case KwControlTermination:
		p.state = when(p.parseControls, stateControlTermination)
	case KwControlTimestep:
		p.state = when(p.parseControls, stateControlTimestep)
	case KwControlEnergy:
		p.state = when(p.parseControls, stateControlEnergy)
	case KwControlOutput:
		p.state = when(p.parseControls, stateControlOutput)
	case KwControlShell:
		p.state = when(p.parseControls, stateControlShell)
	case KwControlContact:
		p.state = when(p.parseControls, stateControlContact)
	case KwControlHourglass:
		p.state = when(p.parseControls, stateControlHourglass)
	case KwControlBulkViscosity:
		p.state = when(p.parseControls, stateControlBulkViscosity)

	case KwDatabaseBinary:
		p.dbType = kw.Database
		p.state = when(p.parseDatabases, stateDatabaseBinary)
	case KwDatabaseASCII:
		p.dbType = kw.Database
		p.state = when(p.parseDatabases, stateDatabaseASCII)
	case KwDatabaseHistoryNode:
		p.histNode = DatabaseHistoryNode{}
		p.state = when(p.parseDatabases, stateDatabaseHistoryNode)
	case KwDatabaseHistoryElement:
		p.histElem = DatabaseHistoryElement{ElementType: kw.HistoryElem}
		p.state = when(p.parseDatabases, stateDatabaseHistoryElement)
	case KwDatabaseCrossSection:
		p.state = when(p.parseDatabases, stateDatabaseCrossSection)

	case KwInitialVelocityGeneration:
		p.state = when(p.parseInitials, stateInitialVelocityGeneration)
	case KwInitialVelocity:
		if kw.Set {
			p.ivType = InitialVelocitySet
		} else {
			p.ivType = InitialVelocityNode
		}
		p.state = when(p.parseInitials, stateInitialVelocity)

	case KwConstrainedNodalRigidBody:
		p.nrbInertia = kw.Inertia
		p.state = when(p.parseConstraineds, stateConstrainedNodalRigidBody)
	case KwConstrainedExtraNodes:
		p.extraNodes = ConstrainedExtraNodes{IsSet: kw.Set}
		p.state = when(p.parseConstraineds, stateConstrainedExtraNodes)
	case KwConstrainedJoint:
		p.jointType = kw.Joint
		p.state = when(p.parseConstraineds, stateConstrainedJoint)
	case KwConstrainedSpotweld:
		p.state = when(p.parseConstraineds, stateConstrainedSpotweld)

	default:
		// Vendor-specific or otherwise unrecognized keyword: already
		// committed in-flight entities above, wait for the next one.
		p.state = stateIdle
	}
}

func (p *Parser) beginSection(typ SectionType, title bool, header parseState) {
	if !p.parseSections {
		p.state = stateIdle
		return
	}
	p.section = NewSection(typ)
	if title {
		p.state = stateSectionTitle
	} else {
		p.state = header
	}
}

func setTypeFor(kind KeywordKind) SetType {
	switch kind {
	case KwSetPartList:
		return SetPartList
	case KwSetSegment:
		return SetSegment
	case KwSetShell:
		return SetShell
	case KwSetSolid:
		return SetSolid
	}
	return SetNodeList
}

// when picks the handler state when the family is enabled, else idle.
func when(enabled bool, s parseState) parseState {
	if enabled {
		return s
	}
	return stateIdle
}

// warnCard records one warning per field the card could not decode.
func (p *Parser) warnCard(result *ParseResult, c *card) {
	for _, f := range c.bad {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("line %d: %s: cannot decode field %s", p.lineno, p.keyword, f))
	}
}

func (p *Parser) handleData(line string, result *ParseResult) {
	switch p.state {
	case stateIdle:
		return

	case stateNode:
		c := newCard(line)
		result.Nodes = append(result.Nodes, decodeNode(c))
		p.warnCard(result, c)

	case statePartName:
		p.partName = readText(line, 0, 80)
		p.state = statePartData

	case statePartData:
		c := newCard(line)
		result.Parts = append(result.Parts, decodePartData(p.partName, c))
		p.warnCard(result, c)
		p.state = stateIdle

	case stateElement:
		c := newCard(line)
		result.Elements = append(result.Elements, decodeElement(c, p.elementType))
		p.warnCard(result, c)

	case stateSetTitle:
		// The title line is consumed but not stored.
		p.state = stateSetHeader

	case stateSetHeader:
		typ := p.set.Type
		c := newCard(line)
		p.set = NewSet(typ)
		p.set.SID = c.int32At(0, 10, "sid")
		p.set.DA1 = c.floatAt(10, 10, "da1")
		p.set.DA2 = c.floatAt(20, 10, "da2")
		p.set.DA3 = c.floatAt(30, 10, "da3")
		p.set.DA4 = c.floatAt(40, 10, "da4")
		if solver := c.textAt(50, 10); solver != "" {
			p.set.Solver = solver
		}
		p.warnCard(result, c)
		p.state = stateSetData

	case stateSetData:
		c := newCard(line)
		if p.set.Type == SetSegment {
			p.set.AddSegment(
				c.int32At(0, 10, "n1"),
				c.int32At(10, 10, "n2"),
				c.int32At(20, 10, "n3"),
				c.int32At(30, 10, "n4"),
			)
		} else {
			for i := 0; i < 8; i++ {
				p.set.AddID(c.int32At(i*10, 10, "id"))
			}
		}
		p.warnCard(result, c)

	case stateSectionTitle:
		switch p.section.Type {
		case SectionSolid:
			p.state = stateSectionSolid
		case SectionBeam:
			p.state = stateSectionBeamHeader
		default:
			p.state = stateSectionShellHeader
		}

	case stateSectionShellHeader:
		c := newCard(line)
		decodeSectionShellHeader(c, &p.section)
		p.warnCard(result, c)
		p.state = stateSectionShellData

	case stateSectionShellData:
		c := newCard(line)
		decodeSectionShellData(c, &p.section)
		p.warnCard(result, c)
		result.Sections = append(result.Sections, p.section)
		p.section = Section{}
		p.state = stateIdle

	case stateSectionSolid:
		c := newCard(line)
		decodeSectionSolid(c, &p.section)
		p.warnCard(result, c)
		result.Sections = append(result.Sections, p.section)
		p.section = Section{}
		p.state = stateIdle

	case stateSectionBeamHeader:
		c := newCard(line)
		decodeSectionBeamHeader(c, &p.section)
		p.warnCard(result, c)
		p.state = stateSectionBeamData

	case stateSectionBeamData:
		c := newCard(line)
		decodeSectionBeamData(c, &p.section)
		p.warnCard(result, c)
		result.Sections = append(result.Sections, p.section)
		p.section = Section{}
		p.state = stateIdle

	case stateContactPrefix:
		// The id or title card is consumed but not stored.
		p.state = stateContactCard1

	case stateContactCard1:
		c := newCard(line)
		decodeContactCard1(c, &p.contact)
		p.warnCard(result, c)
		if len(c.bad) > 0 {
			p.state = stateIdle
			return
		}
		p.contact.CardsParsed = 1
		p.state = stateContactCard2

	case stateContactCard2:
		c := newCard(line)
		decodeContactCard2(c, &p.contact)
		p.warnCard(result, c)
		if len(c.bad) > 0 {
			// Keep what card 1 produced.
			result.Contacts = append(result.Contacts, p.contact)
			p.contact = Contact{}
			p.state = stateIdle
			return
		}
		p.contact.CardsParsed = 2
		p.state = stateContactCard3

	case stateContactCard3:
		c := newCard(line)
		decodeContactCard3(c, &p.contact)
		p.warnCard(result, c)
		if len(c.bad) == 0 {
			p.contact.CardsParsed = 3
		}
		result.Contacts = append(result.Contacts, p.contact)
		p.contact = Contact{}
		p.state = stateIdle

	case stateMaterialTitle:
		p.material.Title = strings.TrimSpace(line)
		p.state = stateMaterialData

	case stateMaterialData:
		c := newCard(line)
		values := make([]float64, 8)
		for i := 0; i < 8; i++ {
			values[i] = c.floatAt(i*10, 10, "card value")
		}
		p.warnCard(result, c)
		p.material.absorbCard(values)
		if p.material.CardsParsed >= p.matExpected {
			result.Materials = append(result.Materials, p.material)
			p.material = Material{}
			p.state = stateIdle
		}

	case stateInclude:
		result.Includes = append(result.Includes, Include{
			Filepath: strings.TrimSpace(line),
			PathOnly: p.incPathOnly,
			Relative: p.incRelative,
		})
		p.state = stateIdle

	case stateCurveTitle:
		p.curve.Title = strings.TrimSpace(line)
		p.state = stateCurveHeader

	case stateCurveHeader:
		c := newCard(line)
		decodeCurveHeader(c, &p.curve)
		p.warnCard(result, c)
		p.state = stateCurveData

	case stateCurveData:
		c := newCard(line)
		a := c.floatAt(0, 20, "abscissa")
		o := c.floatAt(20, 20, "ordinate")
		p.warnCard(result, c)
		p.curve.AddPoint(a, o)

	case stateBoundarySPC:
		c := newCard(line)
		if p.spcType == BoundarySpcSet {
			result.BoundarySPCs = append(result.BoundarySPCs, decodeBoundarySpcSet(c))
		} else {
			result.BoundarySPCs = append(result.BoundarySPCs, decodeBoundarySpcNode(c))
		}
		p.warnCard(result, c)

	case stateBoundaryMotion:
		c := newCard(line)
		result.BoundaryMotions = append(result.BoundaryMotions, decodeBoundaryMotion(c, p.motionType))
		p.warnCard(result, c)

	case stateLoadNode:
		c := newCard(line)
		result.LoadNodes = append(result.LoadNodes, decodeLoadNode(c, p.loadIsSet))
		p.warnCard(result, c)

	case stateLoadSegment:
		c := newCard(line)
		result.LoadSegments = append(result.LoadSegments, decodeLoadSegment(c))
		p.warnCard(result, c)

	case stateLoadBody:
		c := newCard(line)
		result.LoadBodies = append(result.LoadBodies, decodeLoadBody(c, p.loadBodyDir))
		p.warnCard(result, c)
		p.state = stateIdle

	case stateControlTermination:
		c := newCard(line)
		result.ControlTerminations = append(result.ControlTerminations, decodeControlTermination(c))
		p.warnCard(result, c)
		p.state = stateIdle

	case stateControlTimestep:
		c := newCard(line)
		result.ControlTimesteps = append(result.ControlTimesteps, decodeControlTimestep(c))
		p.warnCard(result, c)
		p.state = stateIdle

	case stateControlEnergy:
		c := newCard(line)
		result.ControlEnergies = append(result.ControlEnergies, decodeControlEnergy(c))
		p.warnCard(result, c)
		p.state = stateIdle

	case stateControlOutput:
		c := newCard(line)
		result.ControlOutputs = append(result.ControlOutputs, decodeControlOutput(c))
		p.warnCard(result, c)
		p.state = stateIdle

	case stateControlShell:
		c := newCard(line)
		result.ControlShells = append(result.ControlShells, decodeControlShell(c))
		p.warnCard(result, c)
		p.state = stateIdle

	case stateControlContact:
		c := newCard(line)
		result.ControlContacts = append(result.ControlContacts, decodeControlContact(c))
		p.warnCard(result, c)
		p.state = stateIdle

	case stateControlHourglass:
		c := newCard(line)
		result.ControlHourglasses = append(result.ControlHourglasses, decodeControlHourglass(c))
		p.warnCard(result, c)
		p.state = stateIdle

	case stateControlBulkViscosity:
		c := newCard(line)
		result.ControlBulkViscosities = append(result.ControlBulkViscosities, decodeControlBulkViscosity(c))
		p.warnCard(result, c)
		p.state = stateIdle

	case stateDatabaseBinary:
		c := newCard(line)
		result.DatabaseBinaries = append(result.DatabaseBinaries, decodeDatabaseBinary(c, p.dbType))
		p.warnCard(result, c)
		p.state = stateIdle

	case stateDatabaseASCII:
		c := newCard(line)
		result.DatabaseASCIIs = append(result.DatabaseASCIIs, decodeDatabaseASCII(c, p.dbType))
		p.warnCard(result, c)
		p.state = stateIdle

	case stateDatabaseHistoryNode:
		c := newCard(line)
		for i := 0; i < 8; i++ {
			if nid := c.int32At(i*10, 10, "nid"); nid > 0 {
				p.histNode.AddNode(nid)
			}
		}
		p.warnCard(result, c)

	case stateDatabaseHistoryElement:
		c := newCard(line)
		for i := 0; i < 8; i++ {
			if eid := c.int32At(i*10, 10, "eid"); eid > 0 {
				p.histElem.AddElement(eid)
			}
		}
		p.warnCard(result, c)

	case stateDatabaseCrossSection:
		c := newCard(line)
		result.DatabaseCrossSections = append(result.DatabaseCrossSections, decodeDatabaseCrossSection(c))
		p.warnCard(result, c)
		p.state = stateIdle

	case stateInitialVelocity:
		c := newCard(line)
		result.InitialVelocities = append(result.InitialVelocities, decodeInitialVelocity(c, p.ivType))
		p.warnCard(result, c)
		p.state = stateIdle

	case stateInitialVelocityGeneration:
		c := newCard(line)
		result.InitialVelocities = append(result.InitialVelocities, decodeInitialVelocityGeneration(c))
		p.warnCard(result, c)
		p.state = stateIdle

	case stateConstrainedNodalRigidBody:
		c := newCard(line)
		result.ConstrainedNodalRigidBodies = append(result.ConstrainedNodalRigidBodies,
			decodeConstrainedNodalRigidBody(c, p.nrbInertia))
		p.warnCard(result, c)
		p.state = stateIdle

	case stateConstrainedExtraNodes:
		c := newCard(line)
		if p.extraNodes.IsSet {
			p.extraNodes.PID = c.int32At(0, 10, "pid")
			p.extraNodes.NSID = c.int32At(10, 10, "nsid")
			result.ConstrainedExtraNodes = append(result.ConstrainedExtraNodes, p.extraNodes)
			p.extraNodes = ConstrainedExtraNodes{}
			p.state = stateIdle
		} else if p.extraNodes.PID == 0 {
			p.extraNodes.PID = c.int32At(0, 10, "pid")
		} else {
			for i := 0; i < 8; i++ {
				if nid := c.int32At(i*10, 10, "nid"); nid > 0 {
					p.extraNodes.AddNode(nid)
				}
			}
		}
		p.warnCard(result, c)

	case stateConstrainedJoint:
		c := newCard(line)
		result.ConstrainedJoints = append(result.ConstrainedJoints, decodeConstrainedJoint(c, p.jointType))
		p.warnCard(result, c)
		p.state = stateIdle

	case stateConstrainedSpotweld:
		c := newCard(line)
		result.ConstrainedSpotwelds = append(result.ConstrainedSpotwelds, decodeConstrainedSpotweld(c))
		p.warnCard(result, c)
		p.state = stateIdle
	}
}
