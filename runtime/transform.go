package runtime

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/farm-bundler/plugin"
)

// Transform injects the configured runtime plugins into the runtime entry
// module. Imports and the registration call go before the original content
// so plugins are registered before the runtime body runs. Other modules
// pass through untouched.
func (p *Plugin) Transform(param *plugin.TransformParam, ctx *plugin.Context) (*plugin.TransformResult, error) {
	if param.ID != entryID(ctx.Config) {
		return nil, nil
	}

	plugins := ctx.Config.Runtime.Plugins
	if len(plugins) > 0 {
		Logger().Debug("injecting runtime plugins",
			zap.String("module", param.ID.String()),
			zap.Int("count", len(plugins)))
	}

	return &plugin.TransformResult{
		Content: insertRuntimePlugins(param.Content, plugins),
	}, nil
}

// insertRuntimePlugins prepends one import per plugin path and a single
// setPlugins call handing them to the module system
func insertRuntimePlugins(content string, plugins []string) string {
	if len(plugins) == 0 {
		return content
	}

	var b strings.Builder
	vars := make([]string, len(plugins))
	for i, path := range plugins {
		vars[i] = fmt.Sprintf("%s%d", pluginVarPrefix, i)
		fmt.Fprintf(&b, "import %s from %q;\n", vars[i], path)
	}
	fmt.Fprintf(&b, "setPlugins([%s]);\n", strings.Join(vars, ", "))
	b.WriteString(content)
	return b.String()
}
