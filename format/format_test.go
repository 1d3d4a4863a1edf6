package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/squall321/AdvancedModeller/kfile"
)

const sample = `*NODE
       1     100.0           200.0           300.0
       2     110.0           210.0           310.0
*PART
hood
         7         2         3         0         0         0         0         0
*MAT_ELASTIC
         3  7.85e-9     210.0       0.3       0.0       0.0       0.0       0.0
`

func TestJSONEncoder(t *testing.T) {
	result := kfile.NewParser().ParseString(sample)

	var buf bytes.Buffer
	if err := NewJSONEncoder(&buf).Encode(result); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	summary, ok := decoded["summary"].(map[string]any)
	if !ok {
		t.Fatal("missing summary object")
	}
	if summary["nodes"].(float64) != 2 {
		t.Errorf("summary.nodes = %v, want 2", summary["nodes"])
	}
	if summary["parts"].(float64) != 1 {
		t.Errorf("summary.parts = %v, want 1", summary["parts"])
	}

	parts, ok := decoded["parts"].([]any)
	if !ok || len(parts) != 1 {
		t.Fatalf("parts = %v", decoded["parts"])
	}
	part := parts[0].(map[string]any)
	if part["name"] != "hood" || part["pid"].(float64) != 7 {
		t.Errorf("part = %v", part)
	}

	materials := decoded["materials"].([]any)
	mat := materials[0].(map[string]any)
	if mat["type"] != "ELASTIC" || mat["mid"].(float64) != 3 {
		t.Errorf("material = %v", mat)
	}
}

func TestTextEncoder(t *testing.T) {
	result := kfile.NewParser().ParseString(sample)

	var buf bytes.Buffer
	if err := NewTextEncoder(&buf).Encode(result); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	out := buf.String()

	for _, want := range []string{"nodes", "parts", "materials", "lines scanned: 8"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "contacts") {
		t.Errorf("empty families must be omitted:\n%s", out)
	}
}
