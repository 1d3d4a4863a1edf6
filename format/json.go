package format

import (
	"encoding/json"
	"io"

	"github.com/squall321/AdvancedModeller/kfile"
)

// JSONEncoder renders a parse result as indented JSON.
type JSONEncoder struct {
	w      io.Writer
	result *kfile.ParseResult
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(result *kfile.ParseResult) error {
	e.result = result
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(e.buildResultData(), "", "  ")
}

type jsonResult struct {
	Summary   jsonSummary    `json:"summary"`
	Nodes     []jsonNode     `json:"nodes,omitempty"`
	Parts     []jsonPart     `json:"parts,omitempty"`
	Elements  []jsonElement  `json:"elements,omitempty"`
	Sets      []jsonSet      `json:"sets,omitempty"`
	Sections  []jsonSection  `json:"sections,omitempty"`
	Contacts  []jsonContact  `json:"contacts,omitempty"`
	Materials []jsonMaterial `json:"materials,omitempty"`
	Curves    []jsonCurve    `json:"curves,omitempty"`
	Includes  []jsonInclude  `json:"includes,omitempty"`
	Warnings  []string       `json:"warnings,omitempty"`
	Errors    []string       `json:"errors,omitempty"`
}

type jsonSummary struct {
	TotalLines  int   `json:"totalLines"`
	ParseTimeMs int64 `json:"parseTimeMs"`
	Nodes       int   `json:"nodes"`
	Parts       int   `json:"parts"`
	Elements    int   `json:"elements"`
	Sets        int   `json:"sets"`
	Sections    int   `json:"sections"`
	Contacts    int   `json:"contacts"`
	Materials   int   `json:"materials"`
	Curves      int   `json:"curves"`
	Includes    int   `json:"includes"`
}

type jsonNode struct {
	NID int32   `json:"nid"`
	X   float64 `json:"x"`
	Y   float64 `json:"y"`
	Z   float64 `json:"z"`
	TC  int32   `json:"tc,omitempty"`
	RC  int32   `json:"rc,omitempty"`
}

type jsonPart struct {
	PID   int32  `json:"pid"`
	Name  string `json:"name"`
	SecID int32  `json:"secid"`
	MID   int32  `json:"mid"`
}

type jsonElement struct {
	EID       int32   `json:"eid"`
	PID       int32   `json:"pid"`
	Type      string  `json:"type"`
	Nodes     []int32 `json:"nodes"`
	NodeCount int8    `json:"nodeCount"`
}

type jsonSet struct {
	SID      int32      `json:"sid"`
	Type     string     `json:"type"`
	Solver   string     `json:"solver,omitempty"`
	IDs      []int32    `json:"ids,omitempty"`
	Segments [][4]int32 `json:"segments,omitempty"`
}

type jsonSection struct {
	SecID  int32  `json:"secid"`
	Type   string `json:"type"`
	ElForm int32  `json:"elform"`
}

type jsonContact struct {
	Type        string  `json:"type"`
	SSID        int32   `json:"ssid"`
	MSID        int32   `json:"msid"`
	Fs          float64 `json:"fs"`
	Fd          float64 `json:"fd"`
	CardsParsed int8    `json:"cardsParsed"`
}

type jsonMaterial struct {
	MID   int32   `json:"mid"`
	Type  string  `json:"type"`
	Title string  `json:"title,omitempty"`
	Ro    float64 `json:"ro"`
	E     float64 `json:"e"`
	Pr    float64 `json:"pr"`
	Cards int     `json:"cards"`
}

type jsonCurve struct {
	LCID   int32  `json:"lcid"`
	Title  string `json:"title,omitempty"`
	Points int    `json:"points"`
}

type jsonInclude struct {
	Filepath string `json:"filepath"`
	PathOnly bool   `json:"pathOnly,omitempty"`
	Relative bool   `json:"relative,omitempty"`
}

func (e *JSONEncoder) buildResultData() jsonResult {
	r := e.result
	data := jsonResult{
		Summary: jsonSummary{
			TotalLines:  r.TotalLines,
			ParseTimeMs: r.ParseTime.Milliseconds(),
			Nodes:       len(r.Nodes),
			Parts:       len(r.Parts),
			Elements:    len(r.Elements),
			Sets:        len(r.Sets),
			Sections:    len(r.Sections),
			Contacts:    len(r.Contacts),
			Materials:   len(r.Materials),
			Curves:      len(r.Curves),
			Includes:    len(r.Includes),
		},
		Warnings: r.Warnings,
		Errors:   r.Errors,
	}

	for _, n := range r.Nodes {
		data.Nodes = append(data.Nodes, jsonNode{NID: n.NID, X: n.X, Y: n.Y, Z: n.Z, TC: n.TC, RC: n.RC})
	}
	for _, p := range r.Parts {
		data.Parts = append(data.Parts, jsonPart{PID: p.PID, Name: p.Name, SecID: p.SecID, MID: p.MID})
	}
	for _, el := range r.Elements {
		nodes := make([]int32, el.NodeCount)
		copy(nodes, el.Nodes[:el.NodeCount])
		data.Elements = append(data.Elements, jsonElement{
			EID:       el.EID,
			PID:       el.PID,
			Type:      el.Type.String(),
			Nodes:     nodes,
			NodeCount: el.NodeCount,
		})
	}
	for _, s := range r.Sets {
		data.Sets = append(data.Sets, jsonSet{
			SID:      s.SID,
			Type:     s.Type.String(),
			Solver:   s.Solver,
			IDs:      s.IDs,
			Segments: s.Segments,
		})
	}
	for _, s := range r.Sections {
		data.Sections = append(data.Sections, jsonSection{SecID: s.SecID, Type: s.Type.String(), ElForm: s.ElForm})
	}
	for _, c := range r.Contacts {
		data.Contacts = append(data.Contacts, jsonContact{
			Type:        c.TypeName,
			SSID:        c.SSID,
			MSID:        c.MSID,
			Fs:          c.Fs,
			Fd:          c.Fd,
			CardsParsed: c.CardsParsed,
		})
	}
	for _, m := range r.Materials {
		data.Materials = append(data.Materials, jsonMaterial{
			MID:   m.MID,
			Type:  m.TypeName,
			Title: m.Title,
			Ro:    m.Ro,
			E:     m.E,
			Pr:    m.Pr,
			Cards: m.NumCards(),
		})
	}
	for _, c := range r.Curves {
		data.Curves = append(data.Curves, jsonCurve{LCID: c.LCID, Title: c.Title, Points: c.NumPoints()})
	}
	for _, inc := range r.Includes {
		data.Includes = append(data.Includes, jsonInclude{Filepath: inc.Filepath, PathOnly: inc.PathOnly, Relative: inc.Relative})
	}
	return data
}
