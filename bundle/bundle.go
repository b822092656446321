package bundle

import "strings"

type fragment struct {
	// filename is empty for unmapped wrapper text
	filename string
	code     string
}

func (f fragment) lines() int {
	return strings.Count(f.code, "\n") + 1
}

// Bundle is an ordered list of code fragments, each starting on a fresh
// line. Not safe for concurrent use.
type Bundle struct {
	frags []fragment
}

// New returns an empty bundle
func New() *Bundle {
	return &Bundle{}
}

// AddSource appends a fragment backed by an original file
func (b *Bundle) AddSource(filename, code string) {
	b.frags = append(b.frags, fragment{filename: filename, code: code})
}

// AddRaw appends unmapped text
func (b *Bundle) AddRaw(code string) {
	b.frags = append(b.frags, fragment{code: code})
}

// Prepend inserts unmapped text before everything added so far
func (b *Bundle) Prepend(code string) {
	b.frags = append([]fragment{{code: code}}, b.frags...)
}

// Append appends unmapped text
func (b *Bundle) Append(code string) {
	b.AddRaw(code)
}

// Len returns the number of fragments
func (b *Bundle) Len() int {
	return len(b.frags)
}

// Lines returns the total line count of the joined output
func (b *Bundle) Lines() int {
	if len(b.frags) == 0 {
		return 0
	}
	n := 0
	for _, f := range b.frags {
		n += f.lines()
	}
	return n
}

// String joins all fragments with newlines
func (b *Bundle) String() string {
	codes := make([]string, len(b.frags))
	for i, f := range b.frags {
		codes[i] = f.code
	}
	return strings.Join(codes, "\n")
}

// GenerateMap builds a source map for the current layout. Every line of a
// source fragment maps to the same line of its file at column zero;
// wrapper text stays unmapped.
func (b *Bundle) GenerateMap(opts MapOptions) (*SourceMap, error) {
	m := &SourceMap{
		Version:  3,
		File:     opts.File,
		Sources:  []string{},
		Names:    []string{},
		Mappings: "",
	}
	if opts.IncludeContent {
		m.SourcesContent = []string{}
	}

	srcIndex := map[string]int{}
	var mappings strings.Builder
	prevSrc, prevLine, prevCol := 0, 0, 0

	genLine := 0
	for _, f := range b.frags {
		lines := f.lines()
		if f.filename == "" {
			for i := 0; i < lines; i++ {
				if genLine > 0 {
					mappings.WriteByte(';')
				}
				genLine++
			}
			continue
		}

		idx, ok := srcIndex[f.filename]
		if !ok {
			idx = len(m.Sources)
			srcIndex[f.filename] = idx
			name := f.filename
			if opts.RemapSource != nil {
				name = opts.RemapSource(name)
			}
			m.Sources = append(m.Sources, name)
			if opts.IncludeContent {
				m.SourcesContent = append(m.SourcesContent, f.code)
			}
		}

		for i := 0; i < lines; i++ {
			if genLine > 0 {
				mappings.WriteByte(';')
			}
			writeVLQ(&mappings, 0)
			writeVLQ(&mappings, idx-prevSrc)
			writeVLQ(&mappings, i-prevLine)
			writeVLQ(&mappings, 0-prevCol)
			prevSrc, prevLine, prevCol = idx, i, 0
			genLine++
		}
	}

	m.Mappings = mappings.String()
	return m, nil
}
