package kfile

import "testing"

func TestReadInt(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		start int
		width int
		want  int32
	}{
		{"simple", "       1", 0, 8, 1},
		{"right justified", "         7", 0, 10, 7},
		{"negative", "      -42 ", 0, 10, -42},
		{"blank field", "          ", 0, 10, 0},
		{"empty line", "", 0, 10, 0},
		{"start beyond end", "12", 10, 10, 0},
		{"short field clipped", "       123", 5, 10, 123},
		{"garbage", "   abc    ", 0, 10, 0},
		{"numeric prefix kept", "      12.5", 0, 10, 12},
		{"misaligned trailing junk", " 300     0", 0, 10, 300},
		{"second column", "         1         2", 10, 10, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := readInt(tt.line, tt.start, tt.width); got != tt.want {
				t.Errorf("readInt(%q, %d, %d) = %d, want %d", tt.line, tt.start, tt.width, got, tt.want)
			}
		})
	}
}

func TestReadFloat(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		start int
		width int
		want  float64
	}{
		{"plain", "     100.0", 0, 10, 100.0},
		{"scientific", "   7.85e-9", 0, 10, 7.85e-9},
		{"exponent no sign", "      1e20", 0, 10, 1e20},
		{"exponent plus", "     1e+20", 0, 10, 1e20},
		{"negative", "  -7.85e-9", 0, 10, -7.85e-9},
		{"integer text", "         3", 0, 10, 3.0},
		{"blank", "          ", 0, 10, 0},
		{"start beyond end", "1.0", 20, 10, 0},
		{"garbage", "   x1.0   ", 0, 10, 0},
		{"misaligned trailing junk", "300.0     0", 0, 16, 300.0},
		{"exponent without digits", "        1e", 0, 10, 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := readFloat(tt.line, tt.start, tt.width); got != tt.want {
				t.Errorf("readFloat(%q, %d, %d) = %g, want %g", tt.line, tt.start, tt.width, got, tt.want)
			}
		})
	}
}

func TestReadText(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		start int
		width int
		want  string
	}{
		{"trimmed", "  Roof panel  ", 0, 80, "Roof panel"},
		{"clipped to width", "MECHANICS", 0, 4, "MECH"},
		{"offset column", "       0.0MECH", 10, 10, "MECH"},
		{"beyond end", "abc", 10, 10, ""},
		{"empty", "", 0, 10, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := readText(tt.line, tt.start, tt.width); got != tt.want {
				t.Errorf("readText(%q, %d, %d) = %q, want %q", tt.line, tt.start, tt.width, got, tt.want)
			}
		})
	}
}

// Decoders must tolerate any (start, width) on any line without panicking.
func TestDecodersShortLines(t *testing.T) {
	lines := []string{"", "1", "       1", "       1     100.0"}
	for _, line := range lines {
		for start := 0; start < 40; start += 7 {
			for width := 1; width <= 20; width += 6 {
				readInt(line, start, width)
				readFloat(line, start, width)
				readText(line, start, width)
			}
		}
	}
}

func TestCardRecordsBadFields(t *testing.T) {
	c := newCard("   abc          12")
	if got := c.int32At(0, 10, "first"); got != 0 {
		t.Errorf("bad field decoded to %d, want 0", got)
	}
	if got := c.int32At(10, 10, "second"); got != 12 {
		t.Errorf("second field = %d, want 12", got)
	}
	if len(c.bad) != 1 || c.bad[0] != "first" {
		t.Errorf("bad = %v, want [first]", c.bad)
	}
}
