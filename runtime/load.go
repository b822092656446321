package runtime

import (
	"github.com/wippyai/farm-bundler/errors"
	"github.com/wippyai/farm-bundler/module"
	"github.com/wippyai/farm-bundler/plugin"
)

// Load reads runtime-scoped module sources from their real path and infers
// the module type from the extension. An extension that maps to no known
// type aborts the compilation.
func (p *Plugin) Load(param *plugin.LoadParam, ctx *plugin.Context, hookCtx *plugin.HookContext) (*plugin.LoadResult, error) {
	if !param.ID.IsRuntime() {
		return nil, nil
	}

	content, err := p.reader.ReadUTF8(param.ID.Path())
	if err != nil {
		return nil, errors.ReadFailed(param.ID.String(), err)
	}

	mt, ok := module.TypeFromPath(param.ID.Path())
	if !ok {
		return nil, errors.UnknownModuleType(param.ID.Path())
	}

	return &plugin.LoadResult{Content: content, Type: mt}, nil
}
