package script

// SpecifierKind distinguishes the binding forms of an import declaration
type SpecifierKind uint8

const (
	// SpecifierNamed binds one exported name: import { a } from "m"
	SpecifierNamed SpecifierKind = iota
	// SpecifierDefault binds the default export: import a from "m"
	SpecifierDefault
	// SpecifierNamespace binds the whole namespace: import * as a from "m"
	SpecifierNamespace
)

func (k SpecifierKind) String() string {
	switch k {
	case SpecifierNamed:
		return "named"
	case SpecifierDefault:
		return "default"
	case SpecifierNamespace:
		return "namespace"
	}
	return "unknown"
}

// Stmt is one top-level statement of a script module
type Stmt interface {
	stmt()
}

// ImportSpecifier is a single binding introduced by an import declaration
type ImportSpecifier struct {
	Kind SpecifierKind
	// Local is the name bound in module scope
	Local string
	// Imported is the exported name for named specifiers; empty otherwise
	Imported string
}

// ImportDecl is an import declaration: import ... from Source
type ImportDecl struct {
	Source     string
	Specifiers []ImportSpecifier
}

func (*ImportDecl) stmt() {}

// Has reports whether the declaration carries a specifier of the given kind
func (d *ImportDecl) Has(kind SpecifierKind) bool {
	for _, s := range d.Specifiers {
		if s.Kind == kind {
			return true
		}
	}
	return false
}

// ExportAllDecl re-exports every binding of Source: export * from Source
type ExportAllDecl struct {
	Source string
}

func (*ExportAllDecl) stmt() {}

// ExportNamedDecl exports named bindings, optionally re-exported from Source
type ExportNamedDecl struct {
	// Source is empty for local exports
	Source string
	Names  []string
}

func (*ExportNamedDecl) stmt() {}

// RawStmt is any statement the bundler has no interest in
type RawStmt struct {
	Text string
}

func (*RawStmt) stmt() {}

// Convenience constructors, used heavily in tests and fixtures.

// Import builds an import declaration with named specifiers
func Import(source string, names ...string) *ImportDecl {
	specs := make([]ImportSpecifier, 0, len(names))
	for _, n := range names {
		specs = append(specs, ImportSpecifier{Kind: SpecifierNamed, Local: n, Imported: n})
	}
	return &ImportDecl{Source: source, Specifiers: specs}
}

// ImportDefault builds a default-import declaration
func ImportDefault(source, local string) *ImportDecl {
	return &ImportDecl{
		Source:     source,
		Specifiers: []ImportSpecifier{{Kind: SpecifierDefault, Local: local}},
	}
}

// ImportNamespace builds a namespace-import declaration
func ImportNamespace(source, local string) *ImportDecl {
	return &ImportDecl{
		Source:     source,
		Specifiers: []ImportSpecifier{{Kind: SpecifierNamespace, Local: local}},
	}
}

// ExportAll builds an export-all declaration
func ExportAll(source string) *ExportAllDecl {
	return &ExportAllDecl{Source: source}
}
