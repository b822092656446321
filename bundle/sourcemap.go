package bundle

import "encoding/json"

// SourceMap is a source map v3 document
type SourceMap struct {
	Version        int      `json:"version"`
	File           string   `json:"file,omitempty"`
	Sources        []string `json:"sources"`
	SourcesContent []string `json:"sourcesContent,omitempty"`
	Names          []string `json:"names"`
	Mappings       string   `json:"mappings"`
}

// JSON serializes the map
func (m *SourceMap) JSON() (string, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// MapOptions controls GenerateMap
type MapOptions struct {
	// File names the generated file the map describes
	File string
	// IncludeContent embeds each source's content in sourcesContent
	IncludeContent bool
	// RemapSource rewrites source paths before they enter the map;
	// nil keeps them as-is
	RemapSource func(string) string
}
