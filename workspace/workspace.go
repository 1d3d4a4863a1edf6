// Package workspace tracks open K-file documents and serves them over
// the Language Server Protocol.
package workspace

import (
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/squall321/AdvancedModeller/kfile"
)

// Document is one tracked K-file with its latest parse.
type Document struct {
	Path    string
	Content []byte
	Result  *kfile.ParseResult
}

// Block is one keyword block in a document: the keyword text and the
// 1-based line range it covers, including its data cards.
type Block struct {
	Keyword string
	Kind    kfile.KeywordKind
	Line    int
	EndLine int
}

// Workspace holds the parsed state of every open document. Safe for use
// from the LSP's handler goroutine alongside direct callers.
type Workspace struct {
	mu   sync.Mutex
	docs map[string]*Document
}

func New() *Workspace {
	return &Workspace{docs: make(map[string]*Document)}
}

// UpdateFile replaces a document's content and reparses it.
func (w *Workspace) UpdateFile(path string, content []byte) *Document {
	doc := &Document{
		Path:    path,
		Content: content,
		Result:  kfile.NewParser().ParseString(string(content)),
	}
	w.mu.Lock()
	w.docs[path] = doc
	w.mu.Unlock()
	return doc
}

// ScanFile reads a document from disk and tracks it. Unreadable files
// are ignored.
func (w *Workspace) ScanFile(path string) *Document {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	return w.UpdateFile(path, content)
}

// Document returns the tracked document at path, or nil.
func (w *Workspace) Document(path string) *Document {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.docs[path]
}

// Remove drops a document from the workspace.
func (w *Workspace) Remove(path string) {
	w.mu.Lock()
	delete(w.docs, path)
	w.mu.Unlock()
}

// Outline lists the document's keyword blocks in source order. A block
// runs from its keyword line to the line before the next keyword.
func (d *Document) Outline() []Block {
	var blocks []Block
	lines := strings.Split(string(d.Content), "\n")
	for i, line := range lines {
		if !kfile.IsKeywordLine(line) {
			continue
		}
		if n := len(blocks); n > 0 {
			blocks[n-1].EndLine = i
		}
		kw := kfile.RecognizeKeyword(line)
		blocks = append(blocks, Block{
			Keyword: strings.ToUpper(strings.TrimSpace(line)),
			Kind:    kw.Kind,
			Line:    i + 1,
			EndLine: len(lines),
		})
	}
	return blocks
}

// Diagnostic is one parse warning located in the document.
type Diagnostic struct {
	Line    int // 1-based, 0 when the warning carries no position
	Message string
}

// Diagnostics converts the parse warnings into located diagnostics.
func (d *Document) Diagnostics() []Diagnostic {
	var diags []Diagnostic
	for _, w := range d.Result.Warnings {
		diags = append(diags, Diagnostic{Line: warningLine(w), Message: w})
	}
	return diags
}

// warningLine extracts the line number from a "line N: ..." warning.
func warningLine(warning string) int {
	rest, ok := strings.CutPrefix(warning, "line ")
	if !ok {
		return 0
	}
	num, _, ok := strings.Cut(rest, ":")
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(num)
	if err != nil {
		return 0
	}
	return n
}
