package kfile

import (
	"math"
	"reflect"
	"strings"
	"testing"
)

func parse(t *testing.T, content string, opts ...Option) *ParseResult {
	t.Helper()
	return NewParser(opts...).ParseString(content)
}

func TestParseNode(t *testing.T) {
	result := parse(t, "*NODE\n       1     100.0           200.0           300.0     0       0\n")
	if len(result.Nodes) != 1 {
		t.Fatalf("got %d nodes, want 1", len(result.Nodes))
	}
	n := result.Nodes[0]
	if n.NID != 1 || n.X != 100.0 || n.Y != 200.0 || n.Z != 300.0 || n.TC != 0 || n.RC != 0 {
		t.Errorf("node = %+v", n)
	}
}

func TestParsePart(t *testing.T) {
	content := "*PART\n" +
		"Roof panel\n" +
		"         7         2         3         0         0         0         0         0\n"
	result := parse(t, content)
	if len(result.Parts) != 1 {
		t.Fatalf("got %d parts, want 1", len(result.Parts))
	}
	p := result.Parts[0]
	if p.Name != "Roof panel" {
		t.Errorf("Name = %q, want %q", p.Name, "Roof panel")
	}
	if p.PID != 7 || p.SecID != 2 || p.MID != 3 {
		t.Errorf("part = %+v", p)
	}
	if p.EosID != 0 || p.HgID != 0 || p.Grav != 0 || p.AdpOpt != 0 || p.TmID != 0 {
		t.Errorf("expected zero trailing fields, got %+v", p)
	}
}

func TestParseElementShell(t *testing.T) {
	content := "*ELEMENT_SHELL\n" +
		"       1       1       1       2       3       4       0       0       0       0\n" +
		"       2       1       1       2       3       4       5       0       0       0\n"
	result := parse(t, content)
	if len(result.Elements) != 2 {
		t.Fatalf("got %d elements, want 2", len(result.Elements))
	}
	for i, want := range []int8{4, 5} {
		e := result.Elements[i]
		if e.Type != ElementShell || e.PID != 1 {
			t.Errorf("element %d = %+v", i, e)
		}
		if e.NodeCount != want {
			t.Errorf("element %d NodeCount = %d, want %d", i, e.NodeCount, want)
		}
	}
}

// NodeCount clamps to zero when the highest set node slot is below the
// third, and slots at or above NodeCount stay zero.
func TestElementNodeCountClamp(t *testing.T) {
	e := ParseElementLine("       9       1       5       6", ElementBeam)
	if e.NodeCount != 0 {
		t.Errorf("NodeCount = %d, want 0", e.NodeCount)
	}
	e = ParseElementLine("       9       1       5       6       7", ElementBeam)
	if e.NodeCount != 3 {
		t.Errorf("NodeCount = %d, want 3", e.NodeCount)
	}
	for i := int(e.NodeCount); i < 8; i++ {
		if e.Nodes[i] != 0 {
			t.Errorf("Nodes[%d] = %d, want 0", i, e.Nodes[i])
		}
	}
}

func TestParseSetNodeList(t *testing.T) {
	content := "*SET_NODE_LIST\n" +
		"         5       0.0       0.0       0.0       0.0MECH\n" +
		"         1         2         3         0         0         0         0         0\n" +
		"         4         0         0         0         0         0         0         0\n" +
		"*NODE\n"
	result := parse(t, content)
	if len(result.Sets) != 1 {
		t.Fatalf("got %d sets, want 1", len(result.Sets))
	}
	s := result.Sets[0]
	if s.SID != 5 || s.Type != SetNodeList || s.Solver != "MECH" {
		t.Errorf("set = %+v", s)
	}
	if !reflect.DeepEqual(s.IDs, []int32{1, 2, 3, 4}) {
		t.Errorf("IDs = %v, want [1 2 3 4]", s.IDs)
	}
}

func TestParseSetTitleDiscarded(t *testing.T) {
	content := "*SET_NODE_LIST_TITLE\n" +
		"My node set\n" +
		"         9       0.0       0.0       0.0       0.0\n" +
		"        11        12         0         0         0         0         0         0\n"
	result := parse(t, content)
	if len(result.Sets) != 1 {
		t.Fatalf("got %d sets, want 1", len(result.Sets))
	}
	s := result.Sets[0]
	if s.SID != 9 {
		t.Errorf("SID = %d, want 9 (title line must not be read as header)", s.SID)
	}
	if s.Solver != "MECH" {
		t.Errorf("Solver = %q, want default MECH", s.Solver)
	}
	if !reflect.DeepEqual(s.IDs, []int32{11, 12}) {
		t.Errorf("IDs = %v", s.IDs)
	}
}

func TestParseSetSegment(t *testing.T) {
	content := "*SET_SEGMENT\n" +
		"         3       0.0       0.0       0.0       0.0\n" +
		"         1         2         3         4\n" +
		"         5         6         7         8\n" +
		"         0         0         0         0\n"
	result := parse(t, content)
	if len(result.Sets) != 1 {
		t.Fatalf("got %d sets, want 1", len(result.Sets))
	}
	s := result.Sets[0]
	if s.Type != SetSegment {
		t.Fatalf("Type = %v, want SetSegment", s.Type)
	}
	if s.Count() != 2 || len(s.Segments) != 2 {
		t.Errorf("Count() = %d, Segments = %v", s.Count(), s.Segments)
	}
	if s.Segments[0] != [4]int32{1, 2, 3, 4} || s.Segments[1] != [4]int32{5, 6, 7, 8} {
		t.Errorf("Segments = %v", s.Segments)
	}
}

func TestParseMatElastic(t *testing.T) {
	content := "*MAT_ELASTIC\n" +
		"         1  7.85e-9     210.0       0.3       0.0       0.0       0.0       0.0\n"
	result := parse(t, content)
	if len(result.Materials) != 1 {
		t.Fatalf("got %d materials, want 1", len(result.Materials))
	}
	m := result.Materials[0]
	if m.MID != 1 || m.Type != MaterialElastic {
		t.Errorf("material = %+v", m)
	}
	if math.Abs(m.Ro-7.85e-9) > 1e-20 || m.E != 210.0 || m.Pr != 0.3 {
		t.Errorf("ro/e/pr = %g/%g/%g", m.Ro, m.E, m.Pr)
	}
	if len(m.Cards) != 1 || m.CardsParsed != 1 {
		t.Errorf("Cards = %d, CardsParsed = %d", len(m.Cards), m.CardsParsed)
	}
}

func TestParseMatRigid(t *testing.T) {
	content := "*MAT_RIGID\n" +
		"         2  7.85e-9     210.0       0.3       0.0       0.0       0.0       0.0\n" +
		"       1.0       4.0       7.0       0.0       0.0       0.0       0.0       0.0\n" +
		"       0.0         0       0.0       0.0       0.0       0.0       0.0       0.0\n"
	result := parse(t, content)
	if len(result.Materials) != 1 {
		t.Fatalf("got %d materials, want 1", len(result.Materials))
	}
	m := result.Materials[0]
	if m.Type != MaterialRigid || m.CardsParsed != 3 {
		t.Fatalf("material = %+v", m)
	}
	if m.Cmo != 1.0 || m.Con1 != 4.0 || m.Con2 != 7.0 {
		t.Errorf("cmo/con1/con2 = %g/%g/%g", m.Cmo, m.Con1, m.Con2)
	}
}

func TestParseMatOrthotropic(t *testing.T) {
	content := "*MAT_ORTHOTROPIC_ELASTIC\n" +
		"         3  1.80e-9  130.0e3    9.0e3    9.0e3      0.02      0.30      0.30\n" +
		"     5.2e3     3.0e3     5.2e3       2.0       0.0       0.0       0.0       0.0\n"
	result := parse(t, content)
	if len(result.Materials) != 1 {
		t.Fatalf("got %d materials, want 1", len(result.Materials))
	}
	m := result.Materials[0]
	if m.Type != MaterialOrthotropicElastic {
		t.Fatalf("Type = %v", m.Type)
	}
	if m.E != 130.0e3 || m.Eb != 9.0e3 || m.Ec != 9.0e3 {
		t.Errorf("moduli = %g/%g/%g", m.E, m.Eb, m.Ec)
	}
	if m.Pr != 0.02 {
		t.Errorf("Pr (prba) = %g, want 0.02", m.Pr)
	}
	if m.Gab != 5.2e3 || m.Gbc != 3.0e3 || m.Gca != 5.2e3 || m.Aopt != 2 {
		t.Errorf("card 2 = %g/%g/%g aopt=%d", m.Gab, m.Gbc, m.Gca, m.Aopt)
	}
}

func TestParseMatCompositeStrengths(t *testing.T) {
	content := "*MAT_054\n" +
		"         4  1.80e-9  130.0e3    9.0e3       0.0      0.02       0.0       0.0\n" +
		"     5.2e3     3.0e3     5.2e3       0.0       0.0       0.0       0.0       0.0\n" +
		"    1100.0    2000.0     180.0      60.0     120.0       0.0       0.0       0.0\n" +
		"       0.0       0.0       0.0       0.0       0.0       0.0       0.0       0.0\n" +
		"       0.0       0.0       0.0       0.0       0.0       0.0       0.0       0.0\n" +
		"       0.0       0.0       0.0       0.0       0.0       0.0       0.0       0.0\n"
	result := parse(t, content)
	if len(result.Materials) != 1 {
		t.Fatalf("got %d materials, want 1", len(result.Materials))
	}
	m := result.Materials[0]
	if m.CardsParsed != 6 {
		t.Fatalf("CardsParsed = %d, want 6", m.CardsParsed)
	}
	if m.Xc != 1100.0 || m.Xt != 2000.0 || m.Yc != 180.0 || m.Yt != 60.0 || m.Sc != 120.0 {
		t.Errorf("strengths = %g/%g/%g/%g/%g", m.Xc, m.Xt, m.Yc, m.Yt, m.Sc)
	}
}

func TestMaterialTitleAndRawCards(t *testing.T) {
	content := "*MAT_ELASTIC_TITLE\n" +
		"steel 210\n" +
		"         1  7.85e-9     210.0       0.3       0.0       0.0       0.0       0.0\n"
	result := parse(t, content)
	if len(result.Materials) != 1 {
		t.Fatalf("got %d materials, want 1", len(result.Materials))
	}
	m := result.Materials[0]
	if m.Title != "steel 210" {
		t.Errorf("Title = %q", m.Title)
	}
	if len(m.Cards) != 1 || len(m.Cards[0]) != 8 {
		t.Fatalf("Cards = %v", m.Cards)
	}
	if m.CardValue(0, 2) != 210.0 {
		t.Errorf("CardValue(0,2) = %g", m.CardValue(0, 2))
	}
	if m.CardValue(3, 0) != 0 || m.CardValue(0, 12) != 0 {
		t.Error("out-of-range CardValue must be 0")
	}
}

func TestParseContact(t *testing.T) {
	content := "*CONTACT_AUTOMATIC_SURFACE_TO_SURFACE\n" +
		"         1         2         0         0         0         0         0         0\n" +
		"       0.2       0.1       0.0       0.0       0.0         0       0.0     1e+20\n" +
		"       1.0       1.0       0.0       0.0       1.0       1.0       1.0       1.0\n"
	result := parse(t, content)
	if len(result.Contacts) != 1 {
		t.Fatalf("got %d contacts, want 1", len(result.Contacts))
	}
	c := result.Contacts[0]
	if c.Type != ContactAutomaticSurfaceToSurface {
		t.Errorf("Type = %v", c.Type)
	}
	if c.SSID != 1 || c.MSID != 2 {
		t.Errorf("ssid/msid = %d/%d", c.SSID, c.MSID)
	}
	if c.Fs != 0.2 || c.Fd != 0.1 || c.Dt != 1e20 {
		t.Errorf("fs/fd/dt = %g/%g/%g", c.Fs, c.Fd, c.Dt)
	}
	if c.CardsParsed != 3 {
		t.Errorf("CardsParsed = %d, want 3", c.CardsParsed)
	}
}

func TestParseContactTitlePrefix(t *testing.T) {
	content := "*CONTACT_AUTOMATIC_SINGLE_SURFACE_TITLE\n" +
		"main vehicle contact\n" +
		"         4         0         0         0         0         0         0         0\n" +
		"       0.0       0.0       0.0       0.0       0.0         0       0.0     1e+20\n" +
		"       1.0       1.0       0.0       0.0       1.0       1.0       1.0       1.0\n"
	result := parse(t, content)
	if len(result.Contacts) != 1 {
		t.Fatalf("got %d contacts, want 1", len(result.Contacts))
	}
	c := result.Contacts[0]
	if c.SSID != 4 {
		t.Errorf("SSID = %d, want 4 (title card must be skipped)", c.SSID)
	}
	if c.TypeName != "AUTOMATIC_SINGLE_SURFACE" {
		t.Errorf("TypeName = %q", c.TypeName)
	}
}

// A contact whose second card fails to decode is committed with the
// cards it completed (partial commit) and a warning is recorded.
func TestParseContactPartial(t *testing.T) {
	content := "*CONTACT_SURFACE_TO_SURFACE\n" +
		"         1         2         0         0         0         0         0         0\n" +
		"       bad       0.1       0.0       0.0       0.0         0       0.0       0.0\n"
	result := parse(t, content)
	if len(result.Contacts) != 1 {
		t.Fatalf("got %d contacts, want 1", len(result.Contacts))
	}
	c := result.Contacts[0]
	if c.CardsParsed != 1 {
		t.Errorf("CardsParsed = %d, want 1", c.CardsParsed)
	}
	if c.SSID != 1 {
		t.Errorf("SSID = %d", c.SSID)
	}
	if len(result.Warnings) == 0 {
		t.Error("expected a warning for the bad card")
	}
}

func TestParseCurve(t *testing.T) {
	content := "*DEFINE_CURVE_TITLE\n" +
		"load history\n" +
		"         1         0       1.0       1.0       0.0       0.0         0\n" +
		"                 0.0                 0.0\n" +
		"                 1.0               100.0\n" +
		"                 2.0               200.0\n"
	result := parse(t, content)
	if len(result.Curves) != 1 {
		t.Fatalf("got %d curves, want 1", len(result.Curves))
	}
	c := result.Curves[0]
	if c.LCID != 1 || c.Title != "load history" {
		t.Errorf("curve = %+v", c)
	}
	if c.Sfa != 1.0 || c.Sfo != 1.0 {
		t.Errorf("sfa/sfo = %g/%g", c.Sfa, c.Sfo)
	}
	if c.NumPoints() != 3 {
		t.Fatalf("NumPoints = %d, want 3", c.NumPoints())
	}
	if c.Points[2] != (CurvePoint{A: 2.0, O: 200.0}) {
		t.Errorf("Points[2] = %+v", c.Points[2])
	}
}

func TestParseSectionShell(t *testing.T) {
	content := "*SECTION_SHELL\n" +
		"         1         2       1.0         2       1.0         0         0         1\n" +
		"       1.5       1.5       1.5       1.5       0.0       0.0       0.0       0.0\n"
	result := parse(t, content)
	if len(result.Sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(result.Sections))
	}
	s := result.Sections[0]
	if s.Type != SectionShell || s.SecID != 1 || s.ElForm != 2 || s.Nip != 2 {
		t.Errorf("section = %+v", s)
	}
	if s.Thickness != [4]float64{1.5, 1.5, 1.5, 1.5} {
		t.Errorf("Thickness = %v", s.Thickness)
	}
}

func TestParseSectionSolidAndBeam(t *testing.T) {
	content := "*SECTION_SOLID\n" +
		"         2         1         0\n" +
		"*SECTION_BEAM\n" +
		"         3         1       1.0         0       0.0       0.0\n" +
		"       2.0       2.0       3.0       3.0       0.0       0.0\n"
	result := parse(t, content)
	if len(result.Sections) != 2 {
		t.Fatalf("got %d sections, want 2", len(result.Sections))
	}
	solid := result.Sections[0]
	if solid.Type != SectionSolid || solid.SecID != 2 || solid.ElForm != 1 {
		t.Errorf("solid = %+v", solid)
	}
	beam := result.Sections[1]
	if beam.Type != SectionBeam || beam.SecID != 3 {
		t.Errorf("beam = %+v", beam)
	}
	if beam.Ts != [2]float64{2.0, 2.0} || beam.Tt != [2]float64{3.0, 3.0} {
		t.Errorf("ts/tt = %v/%v", beam.Ts, beam.Tt)
	}
}

func TestParseBoundarySPC(t *testing.T) {
	content := "*BOUNDARY_SPC_NODE\n" +
		"        12         4         0\n" +
		"*BOUNDARY_SPC_SET\n" +
		"         5         0         1         1         1         0         0         0\n"
	result := parse(t, content)
	if len(result.BoundarySPCs) != 2 {
		t.Fatalf("got %d boundary spcs, want 2", len(result.BoundarySPCs))
	}
	node := result.BoundarySPCs[0]
	if node.Type != BoundarySpcNode || node.NID != 12 || node.Dof != 4 {
		t.Errorf("node spc = %+v", node)
	}
	set := result.BoundarySPCs[1]
	if set.Type != BoundarySpcSet || set.NID != 5 {
		t.Errorf("set spc = %+v", set)
	}
	if set.DofX != 1 || set.DofY != 1 || set.DofZ != 1 || set.DofRX != 0 {
		t.Errorf("dofs = %+v", set)
	}
}

func TestParseBoundaryMotion(t *testing.T) {
	content := "*BOUNDARY_PRESCRIBED_MOTION_SET\n" +
		"         7         1         2         9       2.5         0       0.0       0.1\n"
	result := parse(t, content)
	if len(result.BoundaryMotions) != 1 {
		t.Fatalf("got %d motions, want 1", len(result.BoundaryMotions))
	}
	m := result.BoundaryMotions[0]
	if m.Type != BoundaryMotionSet || m.NID != 7 || m.Dof != 1 || m.Vad != 2 {
		t.Errorf("motion = %+v", m)
	}
	if m.LCID != 9 || m.Sf != 2.5 || m.Birth != 0.1 {
		t.Errorf("lcid/sf/birth = %d/%g/%g", m.LCID, m.Sf, m.Birth)
	}
}

func TestParseLoads(t *testing.T) {
	content := "*LOAD_NODE_SET\n" +
		"         3         3         1       1.0         0         0         0         0\n" +
		"*LOAD_SEGMENT\n" +
		"         1       1.0       0.0        10        11        12        13\n" +
		"*LOAD_BODY_Z\n" +
		"         2      9.81         0       0.0       0.0       0.0         0\n"
	result := parse(t, content)
	if len(result.LoadNodes) != 1 || !result.LoadNodes[0].IsSet || result.LoadNodes[0].Dof != 3 {
		t.Errorf("load nodes = %+v", result.LoadNodes)
	}
	if len(result.LoadSegments) != 1 {
		t.Fatalf("load segments = %+v", result.LoadSegments)
	}
	seg := result.LoadSegments[0]
	if seg.N1 != 10 || seg.N4 != 13 {
		t.Errorf("segment = %+v", seg)
	}
	if len(result.LoadBodies) != 1 {
		t.Fatalf("load bodies = %+v", result.LoadBodies)
	}
	body := result.LoadBodies[0]
	if body.Direction != 3 || body.Sf != 9.81 {
		t.Errorf("body = %+v", body)
	}
}

func TestParseControls(t *testing.T) {
	content := "*CONTROL_TERMINATION\n" +
		"      0.15         0       0.0       0.0       0.0         0\n" +
		"*CONTROL_TIMESTEP\n" +
		"       0.0       0.9         0       0.0   -1.0e-6         0         0         1\n" +
		"*CONTROL_HOURGLASS\n" +
		"         4       0.1\n"
	result := parse(t, content)
	if len(result.ControlTerminations) != 1 || result.ControlTerminations[0].Endtim != 0.15 {
		t.Errorf("terminations = %+v", result.ControlTerminations)
	}
	ts := result.ControlTimesteps
	if len(ts) != 1 || ts[0].Tssfac != 0.9 || ts[0].Dt2ms != -1.0e-6 || ts[0].Ms1st != 1 {
		t.Errorf("timesteps = %+v", ts)
	}
	hg := result.ControlHourglasses
	if len(hg) != 1 || hg[0].Ihq != 4 || hg[0].Qh != 0.1 {
		t.Errorf("hourglasses = %+v", hg)
	}
}

func TestParseDatabases(t *testing.T) {
	content := "*DATABASE_BINARY_D3PLOT\n" +
		"     0.001         0         0         0         0\n" +
		"*DATABASE_GLSTAT\n" +
		"    0.0001         0         0         0         0\n" +
		"*DATABASE_HISTORY_NODE\n" +
		"         1         2         3         0         0         0         0         0\n" +
		"         4         5\n" +
		"*DATABASE_HISTORY_SHELL\n" +
		"        10        20\n" +
		"*DATABASE_CROSS_SECTION_SET\n" +
		"         1         2         0         0         0\n"
	result := parse(t, content)
	if len(result.DatabaseBinaries) != 1 || result.DatabaseBinaries[0].Type != DatabaseBinaryD3Plot {
		t.Errorf("binaries = %+v", result.DatabaseBinaries)
	}
	if result.DatabaseBinaries[0].Dt != 0.001 {
		t.Errorf("dt = %g", result.DatabaseBinaries[0].Dt)
	}
	if len(result.DatabaseASCIIs) != 1 || result.DatabaseASCIIs[0].Type != DatabaseGlstat {
		t.Errorf("asciis = %+v", result.DatabaseASCIIs)
	}
	if len(result.DatabaseHistoryNodes) != 1 {
		t.Fatalf("history nodes = %+v", result.DatabaseHistoryNodes)
	}
	if !reflect.DeepEqual(result.DatabaseHistoryNodes[0].NodeIDs, []int32{1, 2, 3, 4, 5}) {
		t.Errorf("NodeIDs = %v", result.DatabaseHistoryNodes[0].NodeIDs)
	}
	if len(result.DatabaseHistoryElements) != 1 {
		t.Fatalf("history elements = %+v", result.DatabaseHistoryElements)
	}
	he := result.DatabaseHistoryElements[0]
	if he.ElementType != 1 || !reflect.DeepEqual(he.ElementIDs, []int32{10, 20}) {
		t.Errorf("history element = %+v", he)
	}
	if len(result.DatabaseCrossSections) != 1 || result.DatabaseCrossSections[0].PSID != 2 {
		t.Errorf("cross sections = %+v", result.DatabaseCrossSections)
	}
}

func TestParseInitialVelocity(t *testing.T) {
	content := "*INITIAL_VELOCITY_SET\n" +
		"         1         0         0         0      13.9       0.0       0.0       0.0\n" +
		"*INITIAL_VELOCITY_GENERATION\n" +
		"         2      31.4       0.0       0.0       0.0     100.0     200.0     300.0\n"
	result := parse(t, content)
	if len(result.InitialVelocities) != 2 {
		t.Fatalf("got %d initial velocities, want 2", len(result.InitialVelocities))
	}
	set := result.InitialVelocities[0]
	if set.Type != InitialVelocitySet || set.NSID != 1 || set.Vx != 13.9 {
		t.Errorf("set variant = %+v", set)
	}
	gen := result.InitialVelocities[1]
	if gen.Type != InitialVelocityGeneration || gen.Omega != 31.4 || gen.Xc != 100.0 {
		t.Errorf("generation variant = %+v", gen)
	}
}

func TestParseConstrained(t *testing.T) {
	content := "*CONSTRAINED_NODAL_RIGID_BODY\n" +
		"         1         0         2         0         0         0         0\n" +
		"*CONSTRAINED_EXTRA_NODES_SET\n" +
		"         3         4\n" +
		"*CONSTRAINED_JOINT_REVOLUTE\n" +
		"         1         2         3         4         0         0         0         0\n" +
		"*CONSTRAINED_SPOTWELD\n" +
		"        10        11     500.0     300.0         2         2       0.0\n"
	result := parse(t, content)
	if len(result.ConstrainedNodalRigidBodies) != 1 {
		t.Fatalf("nrbs = %+v", result.ConstrainedNodalRigidBodies)
	}
	nrb := result.ConstrainedNodalRigidBodies[0]
	if nrb.PID != 1 || nrb.NSID != 2 || nrb.HasInertia {
		t.Errorf("nrb = %+v", nrb)
	}
	if len(result.ConstrainedExtraNodes) != 1 {
		t.Fatalf("extra nodes = %+v", result.ConstrainedExtraNodes)
	}
	en := result.ConstrainedExtraNodes[0]
	if !en.IsSet || en.PID != 3 || en.NSID != 4 {
		t.Errorf("extra nodes = %+v", en)
	}
	if len(result.ConstrainedJoints) != 1 {
		t.Fatalf("joints = %+v", result.ConstrainedJoints)
	}
	j := result.ConstrainedJoints[0]
	if j.JointType != JointRevolute || j.N1 != 1 || j.N4 != 4 {
		t.Errorf("joint = %+v", j)
	}
	if len(result.ConstrainedSpotwelds) != 1 {
		t.Fatalf("spotwelds = %+v", result.ConstrainedSpotwelds)
	}
	sw := result.ConstrainedSpotwelds[0]
	if sw.N1 != 10 || sw.Sn != 500.0 || sw.N != 2 {
		t.Errorf("spotweld = %+v", sw)
	}
}

func TestParseConstrainedExtraNodesNode(t *testing.T) {
	content := "*CONSTRAINED_EXTRA_NODES_NODE\n" +
		"         5\n" +
		"       100       101       102         0         0         0         0         0\n" +
		"       103\n"
	result := parse(t, content)
	if len(result.ConstrainedExtraNodes) != 1 {
		t.Fatalf("extra nodes = %+v", result.ConstrainedExtraNodes)
	}
	en := result.ConstrainedExtraNodes[0]
	if en.IsSet {
		t.Error("IsSet = true, want false")
	}
	if en.PID != 5 {
		t.Errorf("PID = %d, want 5", en.PID)
	}
	if !reflect.DeepEqual(en.NodeIDs, []int32{100, 101, 102, 103}) {
		t.Errorf("NodeIDs = %v", en.NodeIDs)
	}
}

func TestParseInclude(t *testing.T) {
	content := "*INCLUDE\n" +
		"parts/body.k\n" +
		"*INCLUDE_PATH_RELATIVE\n" +
		"../common\n"
	result := parse(t, content)
	if len(result.Includes) != 2 {
		t.Fatalf("includes = %+v", result.Includes)
	}
	if result.Includes[0].Filepath != "parts/body.k" || result.Includes[0].PathOnly {
		t.Errorf("includes[0] = %+v", result.Includes[0])
	}
	inc := result.Includes[1]
	if inc.Filepath != "../common" || !inc.PathOnly || !inc.Relative {
		t.Errorf("includes[1] = %+v", inc)
	}
}

func TestCommentsAndBlanksInterleaved(t *testing.T) {
	content := "$ header comment\n" +
		"*NODE\n" +
		"$# nid x y z\n" +
		"       1     100.0           200.0           300.0\n" +
		"\n" +
		"       2     110.0           210.0           310.0\n" +
		"$ trailing comment\n"
	result := parse(t, content)
	if len(result.Nodes) != 2 {
		t.Fatalf("got %d nodes, want 2", len(result.Nodes))
	}
	if result.Nodes[1].NID != 2 || result.Nodes[1].X != 110.0 {
		t.Errorf("node 2 = %+v", result.Nodes[1])
	}
	if result.TotalLines != 7 {
		t.Errorf("TotalLines = %d, want 7", result.TotalLines)
	}
}

func TestUnknownKeywordCommitsInFlight(t *testing.T) {
	content := "*SET_NODE_LIST\n" +
		"         5       0.0       0.0       0.0       0.0\n" +
		"         1         2         0         0         0         0         0         0\n" +
		"*RIGIDWALL_PLANAR\n" +
		"         3         4         5         0         0         0         0         0\n"
	result := parse(t, content)
	if len(result.Sets) != 1 {
		t.Fatalf("got %d sets, want 1", len(result.Sets))
	}
	if !reflect.DeepEqual(result.Sets[0].IDs, []int32{1, 2}) {
		t.Errorf("IDs = %v (data after the unknown keyword must be ignored)", result.Sets[0].IDs)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("unknown keywords must not warn, got %v", result.Warnings)
	}
}

func TestCommitAtEOF(t *testing.T) {
	content := "*DEFINE_CURVE\n" +
		"         8         0       1.0       1.0       0.0       0.0         0\n" +
		"                 0.0                 1.0\n"
	result := parse(t, content)
	if len(result.Curves) != 1 {
		t.Fatalf("curve not committed at end of input: %+v", result.Curves)
	}
	if result.Curves[0].LCID != 8 || result.Curves[0].NumPoints() != 1 {
		t.Errorf("curve = %+v", result.Curves[0])
	}
}

// Disabling one family removes exactly that family and leaves the rest
// untouched.
func TestFamilyEnableFlags(t *testing.T) {
	content := "*NODE\n" +
		"       1     100.0           200.0           300.0\n" +
		"*PART\n" +
		"bumper\n" +
		"         1         1         1         0         0         0         0         0\n"
	full := parse(t, content)
	noNodes := parse(t, content, WithNodes(false))
	if len(noNodes.Nodes) != 0 {
		t.Errorf("nodes still parsed: %+v", noNodes.Nodes)
	}
	if !reflect.DeepEqual(noNodes.Parts, full.Parts) {
		t.Errorf("parts differ: %+v vs %+v", noNodes.Parts, full.Parts)
	}
	noParts := parse(t, content, WithParts(false))
	if len(noParts.Parts) != 0 {
		t.Errorf("parts still parsed: %+v", noParts.Parts)
	}
	if !reflect.DeepEqual(noParts.Nodes, full.Nodes) {
		t.Errorf("nodes differ: %+v vs %+v", noParts.Nodes, full.Nodes)
	}
}

// Parsing the concatenation of two fragments yields the concatenation of
// their per-family results.
func TestOrderPreservation(t *testing.T) {
	fragA := "*NODE\n       1     100.0           200.0           300.0\n"
	fragB := "*NODE\n       2     110.0           210.0           310.0\n" +
		"*PART\nfloor\n         9         1         1         0         0         0         0         0\n"
	a := parse(t, fragA)
	b := parse(t, fragB)
	ab := parse(t, fragA+fragB)
	if len(ab.Nodes) != len(a.Nodes)+len(b.Nodes) {
		t.Fatalf("nodes = %d, want %d", len(ab.Nodes), len(a.Nodes)+len(b.Nodes))
	}
	if !reflect.DeepEqual(ab.Nodes[:len(a.Nodes)], a.Nodes) {
		t.Errorf("fragment A nodes not preserved")
	}
	if !reflect.DeepEqual(ab.Nodes[len(a.Nodes):], b.Nodes) {
		t.Errorf("fragment B nodes not preserved")
	}
	if !reflect.DeepEqual(ab.Parts, b.Parts) {
		t.Errorf("parts = %+v", ab.Parts)
	}
}

func TestIndexer(t *testing.T) {
	content := "*NODE\n" +
		"       1     100.0           200.0           300.0\n" +
		"       2     110.0           210.0           310.0\n" +
		"       1     999.0           999.0           999.0\n"
	result := parse(t, content)

	if len(result.Nodes) != 3 {
		t.Fatalf("all occurrences must stay in the slice, got %d", len(result.Nodes))
	}
	n, ok := result.NodeByID(1)
	if !ok {
		t.Fatal("node 1 not indexed")
	}
	if n.X != 999.0 {
		t.Errorf("duplicate id: got X=%g, want the last occurrence", n.X)
	}
	if _, ok := result.NodeByID(42); ok {
		t.Error("lookup of an absent id succeeded")
	}

	before := map[int32]Node{}
	for _, id := range []int32{1, 2} {
		before[id], _ = result.NodeByID(id)
	}
	result.BuildIndices()
	for id, want := range before {
		if n, _ := result.NodeByID(id); n != want {
			t.Errorf("rebuild changed lookup for %d: %+v vs %+v", id, n, want)
		}
	}
}

func TestParseFileMissing(t *testing.T) {
	result := NewParser().ParseFile("testdata/does-not-exist.k")
	if len(result.Errors) != 1 {
		t.Fatalf("Errors = %v, want one entry", result.Errors)
	}
	if len(result.Nodes) != 0 || len(result.Warnings) != 0 {
		t.Error("result must be empty apart from the error")
	}
}

func TestPartNames(t *testing.T) {
	content := "*PART\nroof\n         1         1         1         0         0         0         0         0\n" +
		"*PART\ndoor\n         2         1         1         0         0         0         0         0\n"
	result := parse(t, content)
	names := result.PartNames()
	if names[1] != "roof" || names[2] != "door" {
		t.Errorf("PartNames = %v", names)
	}
}

func TestStaticHelpers(t *testing.T) {
	n := ParseNodeLine("       1           100.0           200.0           300.0       1       2")
	if n.NID != 1 || n.TC != 1 || n.RC != 2 {
		t.Errorf("node = %+v", n)
	}

	p := ParsePartLines("  hood  ", "         4         2         3")
	if p.Name != "hood" || p.PID != 4 || p.SecID != 2 || p.MID != 3 {
		t.Errorf("part = %+v", p)
	}

	s := ParseSetHeader("         5       0.0       0.0       0.0       0.0MECH", SetShell)
	if s.SID != 5 || s.Type != SetShell || s.Solver != "MECH" {
		t.Errorf("set = %+v", s)
	}

	ParseSetDataLine("         1         2", &s)
	if !reflect.DeepEqual(s.IDs, []int32{1, 2}) {
		t.Errorf("IDs = %v", s.IDs)
	}

	seg := ParseSetHeader("         6       0.0       0.0       0.0       0.0", SetSegment)
	ParseSegmentDataLine("         1         2         3         4", &seg)
	if seg.Count() != 1 {
		t.Errorf("Count = %d", seg.Count())
	}
}

func TestWarningsNameKeywordAndField(t *testing.T) {
	content := "*NODE\n" +
		"       x     100.0           200.0           300.0\n"
	result := parse(t, content)
	if len(result.Warnings) != 1 {
		t.Fatalf("Warnings = %v, want one entry", result.Warnings)
	}
	w := result.Warnings[0]
	if !strings.Contains(w, "*NODE") || !strings.Contains(w, "nid") {
		t.Errorf("warning %q must name the keyword and field", w)
	}
}
