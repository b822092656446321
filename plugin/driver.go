package plugin

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/wippyai/farm-bundler/config"
	"github.com/wippyai/farm-bundler/errors"
	"github.com/wippyai/farm-bundler/resource"
)

// Driver dispatches hooks across plugins in registration order
type Driver struct {
	plugins []Plugin
}

// NewDriver registers plugins. Plugin names must be unique.
func NewDriver(plugins ...Plugin) (*Driver, error) {
	seen := make(map[string]struct{}, len(plugins))
	for _, p := range plugins {
		name := p.Name()
		if name == "" {
			return nil, errors.Registration(name, fmt.Errorf("empty plugin name"))
		}
		if _, dup := seen[name]; dup {
			return nil, errors.Registration(name, fmt.Errorf("duplicate plugin name"))
		}
		seen[name] = struct{}{}
	}
	return &Driver{plugins: plugins}, nil
}

// Plugins returns the registered plugins in order
func (d *Driver) Plugins() []Plugin {
	out := make([]Plugin, len(d.plugins))
	copy(out, d.plugins)
	return out
}

// Configure runs every plugin's Config hook against cfg
func (d *Driver) Configure(cfg *config.Config) error {
	for _, p := range d.plugins {
		if err := p.Config(cfg); err != nil {
			return err
		}
	}
	return nil
}

// Resolve dispatches first-wins
func (d *Driver) Resolve(param *ResolveParam, ctx *Context, hookCtx *HookContext) (*ResolveResult, error) {
	if hookCtx == nil {
		hookCtx = &HookContext{}
	}
	for _, p := range d.plugins {
		res, err := p.Resolve(param, ctx, hookCtx)
		if err != nil {
			return nil, err
		}
		if res != nil {
			return res, nil
		}
	}
	return nil, nil
}

// Load dispatches first-wins
func (d *Driver) Load(param *LoadParam, ctx *Context, hookCtx *HookContext) (*LoadResult, error) {
	if hookCtx == nil {
		hookCtx = &HookContext{}
	}
	for _, p := range d.plugins {
		res, err := p.Load(param, ctx, hookCtx)
		if err != nil {
			return nil, err
		}
		if res != nil {
			return res, nil
		}
	}
	return nil, nil
}

// Transform chains every handling plugin, feeding each the previous output.
// Source maps collect into the chain oldest-first.
func (d *Driver) Transform(param *TransformParam, ctx *Context) (*TransformPipelineResult, error) {
	out := &TransformPipelineResult{
		Content: param.Content,
		Type:    param.Type,
	}
	cur := &TransformParam{ID: param.ID, Content: param.Content, Type: param.Type}

	for _, p := range d.plugins {
		res, err := p.Transform(cur, ctx)
		if err != nil {
			return nil, err
		}
		if res == nil {
			continue
		}
		out.Content = res.Content
		if res.Type != "" {
			out.Type = res.Type
		}
		if res.SourceMap != "" {
			out.SourceMapChain = append(out.SourceMapChain, res.SourceMap)
		}
		cur = &TransformParam{ID: param.ID, Content: out.Content, Type: out.Type}
	}
	return out, nil
}

// AnalyzeDeps runs every plugin; each may append to the dependency list
func (d *Driver) AnalyzeDeps(param *AnalyzeDepsParam, ctx *Context) error {
	for _, p := range d.plugins {
		if _, err := p.AnalyzeDeps(param, ctx); err != nil {
			return err
		}
	}
	return nil
}

// FinalizeModule runs every plugin
func (d *Driver) FinalizeModule(param *FinalizeParam, ctx *Context) error {
	for _, p := range d.plugins {
		if _, err := p.FinalizeModule(param, ctx); err != nil {
			return err
		}
	}
	return nil
}

// ProcessPots runs every plugin over the full pot slice
func (d *Driver) ProcessPots(pots []*resource.Pot, ctx *Context) error {
	for _, p := range d.plugins {
		if _, err := p.ProcessPots(pots, ctx); err != nil {
			return err
		}
	}
	return nil
}

// RenderPotModules dispatches first-wins
func (d *Driver) RenderPotModules(pot *resource.Pot, ctx *Context, hookCtx *HookContext) (*resource.PotMeta, error) {
	if hookCtx == nil {
		hookCtx = &HookContext{}
	}
	for _, p := range d.plugins {
		meta, err := p.RenderPotModules(pot, ctx, hookCtx)
		if err != nil {
			return nil, err
		}
		if meta != nil {
			Logger().Debug("render hook handled",
				zap.String("plugin", p.Name()),
				zap.String("pot", pot.ID))
			return meta, nil
		}
	}
	return nil, nil
}

// GenerateResources dispatches first-wins
func (d *Driver) GenerateResources(pot *resource.Pot, ctx *Context, hookCtx *HookContext) (*GenerateResourcesResult, error) {
	if hookCtx == nil {
		hookCtx = &HookContext{}
	}
	for _, p := range d.plugins {
		res, err := p.GenerateResources(pot, ctx, hookCtx)
		if err != nil {
			return nil, err
		}
		if res != nil {
			return res, nil
		}
	}
	return nil, nil
}
