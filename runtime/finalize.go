package runtime

import (
	"github.com/wippyai/farm-bundler/module"
	"github.com/wippyai/farm-bundler/plugin"
)

// FinalizeModule seals runtime-scoped modules: the module type becomes
// Runtime and the script module system is classified from the settled
// dependency kinds. A module with no dependencies is an ES module.
func (p *Plugin) FinalizeModule(param *plugin.FinalizeParam, ctx *plugin.Context) (bool, error) {
	if !param.Module.ID.IsRuntime() {
		return false, nil
	}

	param.Module.Type = module.TypeRuntime

	if meta, ok := param.Module.AsScript(); ok {
		kinds := make([]module.ResolveKind, len(param.Deps))
		for i, d := range param.Deps {
			kinds[i] = d.Kind
		}
		meta.ModuleSystem = module.SystemFromKinds(kinds)
	}
	return true, nil
}
