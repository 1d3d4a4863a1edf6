package format

import (
	"bytes"
	"fmt"
	"io"

	"github.com/squall321/AdvancedModeller/kfile"
)

// TextEncoder renders a human-readable summary of a parse result.
type TextEncoder struct {
	w      io.Writer
	result *kfile.ParseResult
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w}
}

func (e *TextEncoder) Encode(result *kfile.ParseResult) error {
	e.result = result
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TextEncoder) MarshalText() ([]byte, error) {
	r := e.result
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "lines scanned: %d (%s)\n", r.TotalLines, r.ParseTime)

	counts := []struct {
		name  string
		count int
	}{
		{"nodes", len(r.Nodes)},
		{"parts", len(r.Parts)},
		{"elements", len(r.Elements)},
		{"sets", len(r.Sets)},
		{"sections", len(r.Sections)},
		{"contacts", len(r.Contacts)},
		{"materials", len(r.Materials)},
		{"curves", len(r.Curves)},
		{"includes", len(r.Includes)},
		{"boundary spcs", len(r.BoundarySPCs)},
		{"boundary motions", len(r.BoundaryMotions)},
		{"load nodes", len(r.LoadNodes)},
		{"load segments", len(r.LoadSegments)},
		{"load bodies", len(r.LoadBodies)},
		{"initial velocities", len(r.InitialVelocities)},
	}
	for _, c := range counts {
		if c.count > 0 {
			fmt.Fprintf(&buf, "%-20s %d\n", c.name, c.count)
		}
	}

	controls := len(r.ControlTerminations) + len(r.ControlTimesteps) + len(r.ControlEnergies) +
		len(r.ControlOutputs) + len(r.ControlShells) + len(r.ControlContacts) +
		len(r.ControlHourglasses) + len(r.ControlBulkViscosities)
	if controls > 0 {
		fmt.Fprintf(&buf, "%-20s %d\n", "control cards", controls)
	}
	databases := len(r.DatabaseBinaries) + len(r.DatabaseASCIIs) + len(r.DatabaseHistoryNodes) +
		len(r.DatabaseHistoryElements) + len(r.DatabaseCrossSections)
	if databases > 0 {
		fmt.Fprintf(&buf, "%-20s %d\n", "database cards", databases)
	}
	constraineds := len(r.ConstrainedNodalRigidBodies) + len(r.ConstrainedExtraNodes) +
		len(r.ConstrainedJoints) + len(r.ConstrainedSpotwelds)
	if constraineds > 0 {
		fmt.Fprintf(&buf, "%-20s %d\n", "constrained cards", constraineds)
	}

	if len(r.Warnings) > 0 {
		fmt.Fprintf(&buf, "warnings: %d\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Fprintf(&buf, "  - %s\n", w)
		}
	}
	for _, err := range r.Errors {
		fmt.Fprintf(&buf, "error: %s\n", err)
	}

	return buf.Bytes(), nil
}
