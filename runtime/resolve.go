package runtime

import (
	"strings"

	"github.com/wippyai/farm-bundler/module"
	"github.com/wippyai/farm-bundler/plugin"
)

// Resolve handles runtime-scoped resolution: requests whose source carries
// the reserved suffix, and requests imported from runtime-scoped modules.
// The suffix is stripped, resolution delegates to the full chain under the
// plugin's caller tag, and the result is re-marked runtime-scoped.
func (p *Plugin) Resolve(param *plugin.ResolveParam, ctx *plugin.Context, hookCtx *plugin.HookContext) (*plugin.ResolveResult, error) {
	if hookCtx.CalledBy(PluginName) {
		return nil, nil
	}

	sourceScoped := strings.HasSuffix(param.Source, module.RuntimeSuffix)
	importerScoped := param.Importer != nil && param.Importer.IsRuntime()
	if !sourceScoped && !importerScoped {
		return nil, nil
	}

	delegated := &plugin.ResolveParam{
		Source:   strings.TrimSuffix(param.Source, module.RuntimeSuffix),
		Importer: param.Importer,
		Kind:     param.Kind,
	}
	caller := &plugin.HookContext{Caller: PluginName}
	if hookCtx != nil {
		caller.Meta = hookCtx.Meta
	}

	res, err := ctx.Resolve(delegated, caller)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, nil
	}

	res.ID = res.ID.WithRuntime(true)
	return res, nil
}
