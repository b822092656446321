package farmbundler

import (
	"github.com/wippyai/farm-bundler/config"
	"github.com/wippyai/farm-bundler/module"
	"github.com/wippyai/farm-bundler/plugin"
	"github.com/wippyai/farm-bundler/runtime"
)

// New assembles a compilation context: the runtime plugin registered first,
// any extra plugins behind it, all Config hooks applied to cfg, and an empty
// module graph. The returned context serves exactly one compilation.
func New(cfg *config.Config, extra ...plugin.Plugin) (*plugin.Context, error) {
	plugins := append([]plugin.Plugin{runtime.New()}, extra...)

	driver, err := plugin.NewDriver(plugins...)
	if err != nil {
		return nil, err
	}
	if err := driver.Configure(cfg); err != nil {
		return nil, err
	}

	return plugin.NewContext(cfg, module.NewGraph(), driver), nil
}
