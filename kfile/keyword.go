package kfile

import "strings"

// KeywordKind enumerates the keyword families the parser understands.
type KeywordKind int

const (
	KwUnknown KeywordKind = iota
	KwNode
	KwPart
	KwElementShell
	KwElementSolid
	KwElementBeam
	KwSetNodeList
	KwSetPartList
	KwSetSegment
	KwSetShell
	KwSetSolid
	KwSectionShell
	KwSectionSolid
	KwSectionBeam
	KwContact
	KwMaterial
	KwInclude
	KwDefineCurve
	KwBoundarySPC
	KwBoundaryPrescribedMotion
	KwLoadNode
	KwLoadSegment
	KwLoadBody
	KwControlTermination
	KwControlTimestep
	KwControlEnergy
	KwControlOutput
	KwControlShell
	KwControlContact
	KwControlHourglass
	KwControlBulkViscosity
	KwDatabaseBinary
	KwDatabaseASCII
	KwDatabaseHistoryNode
	KwDatabaseHistoryElement
	KwDatabaseCrossSection
	KwInitialVelocity
	KwInitialVelocityGeneration
	KwConstrainedNodalRigidBody
	KwConstrainedExtraNodes
	KwConstrainedJoint
	KwConstrainedSpotweld
)

// Keyword is the outcome of recognizing one keyword line: the family plus
// every option the suffix carried. Fields beyond Kind are only meaningful
// for the families that use them.
type Keyword struct {
	Kind KeywordKind

	Title   bool
	ID      bool
	Set     bool // _SET suffix (boundary motion, load node, extra nodes, initial velocity)
	Node    bool // _NODE suffix
	Inertia bool // _INERTIA suffix (nodal rigid body)

	PathOnly bool // *INCLUDE_PATH
	Relative bool // *INCLUDE_PATH_RELATIVE

	Direction int8            // load body: 1=X 2=Y 3=Z
	Joint     ConstrainedType // joint subtype

	Contact     ContactType
	ContactName string

	Material      MaterialType
	MaterialName  string
	MaterialCards int32

	Database    DatabaseType
	HistoryElem int8 // 1=shell 2=solid 3=beam
}

// RecognizeKeyword resolves a keyword line to its family and options.
// Matching is prefix-major: the longest recognized head wins, then the
// remaining suffix is scanned for option atoms. Unrecognized lines map to
// KwUnknown. The input need not be uppercased or trimmed.
func RecognizeKeyword(line string) Keyword {
	up := strings.ToUpper(strings.TrimSpace(line))

	switch {
	case strings.HasPrefix(up, "*NODE") && !strings.HasPrefix(up, "*NODE_"):
		return Keyword{Kind: KwNode}
	case strings.HasPrefix(up, "*PART") && !strings.HasPrefix(up, "*PART_"):
		return Keyword{Kind: KwPart}
	case strings.HasPrefix(up, "*ELEMENT_SHELL"):
		return Keyword{Kind: KwElementShell}
	case strings.HasPrefix(up, "*ELEMENT_SOLID"):
		return Keyword{Kind: KwElementSolid}
	case strings.HasPrefix(up, "*ELEMENT_BEAM"):
		return Keyword{Kind: KwElementBeam}
	case strings.HasPrefix(up, "*SET_NODE_LIST"):
		return Keyword{Kind: KwSetNodeList, Title: hasAtom(up, "TITLE")}
	case strings.HasPrefix(up, "*SET_PART_LIST"):
		return Keyword{Kind: KwSetPartList, Title: hasAtom(up, "TITLE")}
	case strings.HasPrefix(up, "*SET_SEGMENT"):
		return Keyword{Kind: KwSetSegment, Title: hasAtom(up, "TITLE")}
	case strings.HasPrefix(up, "*SET_SHELL"):
		return Keyword{Kind: KwSetShell, Title: hasAtom(up, "TITLE")}
	case strings.HasPrefix(up, "*SET_SOLID"):
		return Keyword{Kind: KwSetSolid, Title: hasAtom(up, "TITLE")}
	case strings.HasPrefix(up, "*SECTION_SHELL"):
		return Keyword{Kind: KwSectionShell, Title: hasAtom(up, "TITLE")}
	case strings.HasPrefix(up, "*SECTION_SOLID"):
		return Keyword{Kind: KwSectionSolid, Title: hasAtom(up, "TITLE")}
	case strings.HasPrefix(up, "*SECTION_BEAM"):
		return Keyword{Kind: KwSectionBeam, Title: hasAtom(up, "TITLE")}
	case strings.HasPrefix(up, "*CONTACT_"):
		return recognizeContact(up)
	case strings.HasPrefix(up, "*MAT_"):
		return recognizeMaterial(up)
	case strings.HasPrefix(up, "*INCLUDE"):
		return Keyword{
			Kind:     KwInclude,
			PathOnly: strings.HasPrefix(up, "*INCLUDE_PATH"),
			Relative: strings.HasPrefix(up, "*INCLUDE_PATH_RELATIVE"),
		}
	case strings.HasPrefix(up, "*DEFINE_CURVE"):
		return Keyword{Kind: KwDefineCurve, Title: hasAtom(up, "TITLE")}
	case strings.HasPrefix(up, "*BOUNDARY_SPC"):
		return Keyword{
			Kind: KwBoundarySPC,
			Set:  strings.HasPrefix(up, "*BOUNDARY_SPC_SET"),
			Node: strings.HasPrefix(up, "*BOUNDARY_SPC_NODE"),
		}
	case strings.HasPrefix(up, "*BOUNDARY_PRESCRIBED_MOTION"):
		return Keyword{Kind: KwBoundaryPrescribedMotion, Set: hasAtom(up, "SET")}
	case strings.HasPrefix(up, "*LOAD_NODE"):
		return Keyword{Kind: KwLoadNode, Set: hasAtom(up, "SET")}
	case strings.HasPrefix(up, "*LOAD_SEGMENT"):
		return Keyword{Kind: KwLoadSegment}
	case strings.HasPrefix(up, "*LOAD_BODY_X"):
		return Keyword{Kind: KwLoadBody, Direction: 1}
	case strings.HasPrefix(up, "*LOAD_BODY_Y"):
		return Keyword{Kind: KwLoadBody, Direction: 2}
	case strings.HasPrefix(up, "*LOAD_BODY_Z"):
		return Keyword{Kind: KwLoadBody, Direction: 3}
	case strings.HasPrefix(up, "*CONTROL_TERMINATION"):
		return Keyword{Kind: KwControlTermination}
	case strings.HasPrefix(up, "*CONTROL_TIMESTEP"):
		return Keyword{Kind: KwControlTimestep}
	case strings.HasPrefix(up, "*CONTROL_ENERGY"):
		return Keyword{Kind: KwControlEnergy}
	case strings.HasPrefix(up, "*CONTROL_OUTPUT"):
		return Keyword{Kind: KwControlOutput}
	case strings.HasPrefix(up, "*CONTROL_SHELL"):
		return Keyword{Kind: KwControlShell}
	case strings.HasPrefix(up, "*CONTROL_CONTACT"):
		return Keyword{Kind: KwControlContact}
	case strings.HasPrefix(up, "*CONTROL_HOURGLASS"):
		return Keyword{Kind: KwControlHourglass}
	case strings.HasPrefix(up, "*CONTROL_BULK_VISCOSITY"):
		return Keyword{Kind: KwControlBulkViscosity}
	case strings.HasPrefix(up, "*DATABASE_BINARY_D3PLOT"):
		return Keyword{Kind: KwDatabaseBinary, Database: DatabaseBinaryD3Plot}
	case strings.HasPrefix(up, "*DATABASE_BINARY_D3THDT"):
		return Keyword{Kind: KwDatabaseBinary, Database: DatabaseBinaryD3Thdt}
	case strings.HasPrefix(up, "*DATABASE_GLSTAT"):
		return Keyword{Kind: KwDatabaseASCII, Database: DatabaseGlstat}
	case strings.HasPrefix(up, "*DATABASE_MATSUM"):
		return Keyword{Kind: KwDatabaseASCII, Database: DatabaseMatsum}
	case strings.HasPrefix(up, "*DATABASE_NODOUT"):
		return Keyword{Kind: KwDatabaseASCII, Database: DatabaseNodout}
	case strings.HasPrefix(up, "*DATABASE_ELOUT"):
		return Keyword{Kind: KwDatabaseASCII, Database: DatabaseElout}
	case strings.HasPrefix(up, "*DATABASE_RCFORC"):
		return Keyword{Kind: KwDatabaseASCII, Database: DatabaseRcforc}
	case strings.HasPrefix(up, "*DATABASE_SECFORC"):
		return Keyword{Kind: KwDatabaseASCII, Database: DatabaseSecforc}
	case strings.HasPrefix(up, "*DATABASE_SPCFORC"):
		return Keyword{Kind: KwDatabaseASCII, Database: DatabaseSpcforc}
	case strings.HasPrefix(up, "*DATABASE_HISTORY_NODE"):
		return Keyword{Kind: KwDatabaseHistoryNode}
	case strings.HasPrefix(up, "*DATABASE_HISTORY_SHELL"):
		return Keyword{Kind: KwDatabaseHistoryElement, HistoryElem: 1}
	case strings.HasPrefix(up, "*DATABASE_HISTORY_SOLID"):
		return Keyword{Kind: KwDatabaseHistoryElement, HistoryElem: 2}
	case strings.HasPrefix(up, "*DATABASE_HISTORY_BEAM"):
		return Keyword{Kind: KwDatabaseHistoryElement, HistoryElem: 3}
	case strings.HasPrefix(up, "*DATABASE_CROSS_SECTION"):
		return Keyword{Kind: KwDatabaseCrossSection}
	case strings.HasPrefix(up, "*INITIAL_VELOCITY_GENERATION"):
		return Keyword{Kind: KwInitialVelocityGeneration}
	case strings.HasPrefix(up, "*INITIAL_VELOCITY"):
		return Keyword{
			Kind: KwInitialVelocity,
			Set:  hasAtom(up, "SET"),
			Node: hasAtom(up, "NODE"),
		}
	case strings.HasPrefix(up, "*CONSTRAINED_NODAL_RIGID_BODY"):
		return Keyword{Kind: KwConstrainedNodalRigidBody, Inertia: hasAtom(up, "INERTIA")}
	case strings.HasPrefix(up, "*CONSTRAINED_EXTRA_NODES"):
		return Keyword{Kind: KwConstrainedExtraNodes, Set: hasAtom(up, "SET")}
	case strings.HasPrefix(up, "*CONSTRAINED_JOINT"):
		return Keyword{Kind: KwConstrainedJoint, Joint: jointSubtype(up)}
	case strings.HasPrefix(up, "*CONSTRAINED_SPOTWELD"):
		return Keyword{Kind: KwConstrainedSpotweld}
	}
	return Keyword{Kind: KwUnknown}
}

// hasAtom reports whether "_"+atom occurs anywhere in the keyword. It is a
// plain substring test: the head is searched too, and the atom need not
// be followed by '_' or the end of the line.
func hasAtom(up, atom string) bool {
	return strings.Contains(up, "_"+atom)
}

func jointSubtype(up string) ConstrainedType {
	switch {
	case hasAtom(up, "REVOLUTE"):
		return JointRevolute
	case hasAtom(up, "SPHERICAL"):
		return JointSpherical
	case hasAtom(up, "CYLINDRICAL"):
		return JointCylindrical
	case hasAtom(up, "TRANSLATIONAL"):
		return JointTranslational
	case hasAtom(up, "UNIVERSAL"):
		return JointUniversal
	case hasAtom(up, "PLANAR"):
		return JointPlanar
	}
	return ConstrainedOther
}

// recognizeContact splits "*CONTACT_<TYPE>[_ID|_TITLE|_MPP...]" into the
// contact family and its prefix-card options. Option atoms are searched
// underscore by underscore so type names containing '_' stay intact.
func recognizeContact(up string) Keyword {
	kw := Keyword{Kind: KwContact}
	typeName := up[len("*CONTACT_"):]

	for pos := strings.IndexByte(typeName, '_'); pos >= 0; {
		suffix := typeName[pos+1:]
		if strings.HasPrefix(suffix, "ID") {
			kw.ID = true
			typeName = typeName[:pos]
			break
		}
		if strings.HasPrefix(suffix, "TITLE") {
			kw.Title = true
			typeName = typeName[:pos]
			break
		}
		if strings.HasPrefix(suffix, "MPP") {
			typeName = typeName[:pos]
			break
		}
		next := strings.IndexByte(suffix, '_')
		if next < 0 {
			break
		}
		pos += 1 + next
	}
	kw.ContactName = typeName

	switch {
	case strings.HasPrefix(typeName, "AUTOMATIC_SINGLE_SURFACE"):
		kw.Contact = ContactAutomaticSingleSurface
	case strings.HasPrefix(typeName, "AUTOMATIC_SURFACE_TO_SURFACE"):
		kw.Contact = ContactAutomaticSurfaceToSurface
	case strings.HasPrefix(typeName, "AUTOMATIC_NODES_TO_SURFACE"):
		kw.Contact = ContactAutomaticNodesToSurface
	case strings.HasPrefix(typeName, "AUTOMATIC_GENERAL"):
		kw.Contact = ContactAutomaticGeneral
	case strings.HasPrefix(typeName, "TIED_SURFACE_TO_SURFACE"):
		kw.Contact = ContactTiedSurfaceToSurface
	case strings.HasPrefix(typeName, "TIED_NODES_TO_SURFACE"):
		kw.Contact = ContactTiedNodesToSurface
	case strings.HasPrefix(typeName, "TIED_SHELL_EDGE_TO_SURFACE"):
		kw.Contact = ContactTiedShellEdgeToSurface
	case strings.HasPrefix(typeName, "SURFACE_TO_SURFACE"):
		kw.Contact = ContactSurfaceToSurface
	case strings.HasPrefix(typeName, "NODES_TO_SURFACE"):
		kw.Contact = ContactNodesToSurface
	default:
		kw.Contact = ContactOther
	}
	return kw
}

// recognizeMaterial classifies "*MAT_<TYPE>[_TITLE]" against the closed
// table of common material codes. Unknown heads map to MaterialOther,
// which accepts up to ten data cards.
func recognizeMaterial(up string) Keyword {
	kw := Keyword{Kind: KwMaterial}
	typeName := up[len("*MAT_"):]

	if pos := strings.Index(typeName, "_TITLE"); pos >= 0 {
		kw.Title = true
		typeName = typeName[:pos]
	}
	kw.MaterialName = typeName

	switch typeName {
	case "ELASTIC", "001":
		kw.Material, kw.MaterialCards = MaterialElastic, 1
	case "ORTHOTROPIC_ELASTIC", "002":
		kw.Material, kw.MaterialCards = MaterialOrthotropicElastic, 2
	case "PLASTIC_KINEMATIC", "003":
		kw.Material, kw.MaterialCards = MaterialPlasticKinematic, 1
	case "RIGID", "020":
		kw.Material, kw.MaterialCards = MaterialRigid, 3
	case "PIECEWISE_LINEAR_PLASTICITY", "024":
		kw.Material, kw.MaterialCards = MaterialPiecewiseLinearPlasticity, 2
	case "FABRIC", "034":
		kw.Material, kw.MaterialCards = MaterialFabric, 4
	case "COMPOSITE_DAMAGE", "054", "055":
		kw.Material, kw.MaterialCards = MaterialCompositeDamage, 6
	case "LAMINATED_COMPOSITE_FABRIC", "058":
		kw.Material, kw.MaterialCards = MaterialLaminatedCompositeFabric, 5
	case "COMPOSITE_FAILURE", "ENHANCED_COMPOSITE_DAMAGE", "059":
		kw.Material, kw.MaterialCards = MaterialCompositeFailure, 5
	default:
		kw.Material, kw.MaterialCards = MaterialOther, 10
	}
	return kw
}
