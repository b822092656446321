package module

import (
	"path"
	"strings"
)

// ModuleType classifies what a module's content is
type ModuleType string

const (
	TypeJs    ModuleType = "js"
	TypeJsx   ModuleType = "jsx"
	TypeTs    ModuleType = "ts"
	TypeTsx   ModuleType = "tsx"
	TypeCss   ModuleType = "css"
	TypeHtml  ModuleType = "html"
	TypeAsset ModuleType = "asset"
	// TypeRuntime marks modules belonging to the synthetic runtime subgraph
	TypeRuntime ModuleType = "runtime"
)

// IsScript reports whether the type holds executable script content
func (t ModuleType) IsScript() bool {
	switch t {
	case TypeJs, TypeJsx, TypeTs, TypeTsx, TypeRuntime:
		return true
	}
	return false
}

// TypeFromPath infers a module type from a path's extension. A trailing
// query string is ignored. ok is false when the extension maps to no known
// type; callers decide whether that is fatal.
func TypeFromPath(p string) (ModuleType, bool) {
	if i := strings.IndexByte(p, '?'); i >= 0 {
		p = p[:i]
	}
	ext := strings.TrimPrefix(path.Ext(p), ".")
	switch ext {
	case "js", "mjs", "cjs":
		return TypeJs, true
	case "jsx":
		return TypeJsx, true
	case "ts", "mts", "cts":
		return TypeTs, true
	case "tsx":
		return TypeTsx, true
	case "css":
		return TypeCss, true
	case "html", "htm":
		return TypeHtml, true
	}
	return "", false
}

// ModuleSystem classifies how a script module imports and exports
type ModuleSystem string

const (
	SystemEsModule ModuleSystem = "es-module"
	SystemCommonJs ModuleSystem = "commonjs"
	// SystemHybrid marks modules mixing ESM and CommonJS forms
	SystemHybrid ModuleSystem = "hybrid"
)

// ResolveKind says which syntactic form produced a dependency
type ResolveKind string

const (
	KindImport        ResolveKind = "import"
	KindRequire       ResolveKind = "require"
	KindDynamicImport ResolveKind = "dynamic-import"
	KindExportFrom    ResolveKind = "export-from"
	// KindEntry marks compilation entry points; not produced by analysis
	KindEntry ResolveKind = "entry"
)

// SystemFromKinds derives a module system from dependency kinds. Modules
// with no classifiable dependencies are ES modules.
func SystemFromKinds(kinds []ResolveKind) ModuleSystem {
	var es, cjs bool
	for _, k := range kinds {
		switch k {
		case KindImport, KindDynamicImport, KindExportFrom:
			es = true
		case KindRequire:
			cjs = true
		}
	}
	switch {
	case es && cjs:
		return SystemHybrid
	case cjs:
		return SystemCommonJs
	default:
		return SystemEsModule
	}
}
