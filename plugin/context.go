package plugin

import (
	"github.com/wippyai/farm-bundler/config"
	"github.com/wippyai/farm-bundler/module"
)

// Context is one compilation's shared state. Construct a fresh Context per
// compilation; plugins must not carry state across contexts.
type Context struct {
	Config *config.Config
	Graph  *module.Graph

	driver *Driver
}

// NewContext binds a configuration, a module graph, and a driver
func NewContext(cfg *config.Config, graph *module.Graph, driver *Driver) *Context {
	return &Context{Config: cfg, Graph: graph, driver: driver}
}

// Driver returns the plugin driver
func (c *Context) Driver() *Driver {
	return c.driver
}

// Resolve re-enters the full resolve chain. Plugins delegate resolution
// here, tagging hookCtx.Caller with their own name so they can skip their
// own re-entrant call.
func (c *Context) Resolve(param *ResolveParam, hookCtx *HookContext) (*ResolveResult, error) {
	return c.driver.Resolve(param, c, hookCtx)
}
