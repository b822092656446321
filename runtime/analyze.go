package runtime

import (
	"go.uber.org/zap"

	"github.com/wippyai/farm-bundler/module"
	"github.com/wippyai/farm-bundler/plugin"
	"github.com/wippyai/farm-bundler/script"
)

// AnalyzeDeps scans a runtime-scoped script module's top-level statements
// and appends the interop helper dependencies its emitted code will need:
// the wildcard helper for namespace imports, the default helper for
// default imports, and the export-star helper for export-all declarations.
// Appends are idempotent; re-analysis never duplicates entries.
func (p *Plugin) AnalyzeDeps(param *plugin.AnalyzeDepsParam, ctx *plugin.Context) (bool, error) {
	if !param.Module.ID.IsRuntime() {
		return false, nil
	}
	meta, ok := param.Module.AsScript()
	if !ok {
		return false, nil
	}

	var wildcard, deflt, exportStar bool
	for _, stmt := range meta.Statements {
		switch s := stmt.(type) {
		case *script.ImportDecl:
			if s.Has(script.SpecifierNamespace) {
				wildcard = true
			}
			if s.Has(script.SpecifierDefault) {
				deflt = true
			}
		case *script.ExportAllDecl:
			exportStar = true
		}
	}

	added := 0
	for _, h := range []struct {
		need   bool
		source string
	}{
		{wildcard, HelperWildcard},
		{deflt, HelperDefault},
		{exportStar, HelperExportStar},
	} {
		if h.need && !param.Deps.Contains(h.source) {
			param.Deps.Add(module.Dependency{Source: h.source, Kind: module.KindImport})
			added++
		}
	}

	if added > 0 {
		Logger().Debug("added interop helper dependencies",
			zap.String("module", param.Module.ID.String()),
			zap.Int("count", added))
	}
	return true, nil
}
