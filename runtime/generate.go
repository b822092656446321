package runtime

import (
	"github.com/wippyai/farm-bundler/errors"
	"github.com/wippyai/farm-bundler/plugin"
	"github.com/wippyai/farm-bundler/resource"
)

// GenerateResources turns the rendered runtime pot into a resource. The
// resource is not emitted as a standalone file; downstream stages inline
// its bytes into entry resources. Re-entrant calls and non-runtime pots
// are declined.
func (p *Plugin) GenerateResources(pot *resource.Pot, ctx *plugin.Context, hookCtx *plugin.HookContext) (*plugin.GenerateResourcesResult, error) {
	if hookCtx.CalledBy(PluginName) {
		return nil, nil
	}
	if pot.Type != resource.PotRuntime {
		return nil, nil
	}
	if pot.Meta == nil {
		return nil, errors.New(errors.PhaseGenerate, errors.KindInvalidInput).
			Pot(pot.ID).
			Detail("runtime pot has no rendered meta").
			Build()
	}

	return &plugin.GenerateResourcesResult{
		Resource: resource.Resource{
			Name:   pot.ID,
			Bytes:  []byte(pot.Meta.RenderedContent),
			Emit:   false,
			Type:   resource.ResourceRuntime,
			Origin: resource.PotOrigin(pot.ID),
		},
	}, nil
}
