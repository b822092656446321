// Package bundle concatenates rendered code fragments and generates source
// maps for the result.
//
// # Fragments
//
// A Bundle is an ordered list of fragments, each starting on a fresh line.
// AddSource appends a fragment backed by an original file, mapped line by
// line; AddRaw, Prepend, and Append add unmapped wrapper text. Prepend
// shifts every existing mapping down, which GenerateMap accounts for.
//
//	b := bundle.New()
//	b.AddSource("src/a.js", code)
//	b.Prepend("(function (modules) {")
//	b.Append("})();")
//
// # Source Maps
//
// GenerateMap produces a source map v3 object with line-level granularity:
// every line of a source fragment maps to the same line of its original
// file at column zero. Mappings use standard base64 VLQ delta encoding.
package bundle
