package runtime

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/farm-bundler/bundle"
	"github.com/wippyai/farm-bundler/errors"
	"github.com/wippyai/farm-bundler/module"
	"github.com/wippyai/farm-bundler/plugin"
	"github.com/wippyai/farm-bundler/resource"
)

// bootstrapHeader opens the self-invoking loader the runtime pot renders
// into. The module object follows, then bootstrapEntry closes the call.
const bootstrapHeader = `(function (modules, entryModule) {
  var cache = {};

  function require(id) {
    if (cache[id]) return cache[id].exports;

    var module = {
      id: id,
      exports: {}
    };

    modules[id](module, module.exports, require);
    cache[id] = module;
    return module.exports;
  }

  require(entryModule);
})(`

// registerHeader opens the registration wrapper script pots render into.
// Factories are handed to the module system without being executed.
const registerHeader = `(function (modules) {
  for (var key in modules) {
    var __farm_global_this__ = (globalThis || window || global || self)[
      __farm_namespace__
    ];
    __farm_global_this__.__farm_module_system__.register(key, modules[key]);
  }
})(`

// ProcessPots renders the runtime pot into the bootstrap bundle. The check,
// the render, and the cache write all happen under one lock acquisition, so
// concurrent calls agree on a single render. Later calls decline.
func (p *Plugin) ProcessPots(pots []*resource.Pot, ctx *plugin.Context) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.bootstrap != "" {
		return false, nil
	}

	var runtimePot *resource.Pot
	for _, pot := range pots {
		if pot.Type == resource.PotRuntime {
			runtimePot = pot
			break
		}
	}
	if runtimePot == nil {
		return false, nil
	}
	if runtimePot.Entry == nil {
		return false, errors.New(errors.PhaseRender, errors.KindInvalidInput).
			Pot(runtimePot.ID).
			Detail("runtime pot has no entry module").
			Build()
	}

	rendered, err := p.renderer.RenderPot(runtimePot, ctx.Graph, ctx.Config)
	if err != nil {
		return false, err
	}

	b := rendered.Bundle
	b.Prepend(bootstrapHeader)
	b.Append(fmt.Sprintf(", %q);", runtimePot.Entry.ID(ctx.Config.Mode)))
	p.bootstrap = b.String()

	Logger().Debug("rendered runtime bootstrap",
		zap.String("pot", runtimePot.ID),
		zap.Int("bytes", len(p.bootstrap)))
	return true, nil
}

// RenderPotModules serves the cached bootstrap for the runtime pot and
// renders script pots into the registration form, with a source map when
// the configuration enables one for the pot's mutability. Non-script pots
// are declined.
func (p *Plugin) RenderPotModules(pot *resource.Pot, ctx *plugin.Context, hookCtx *plugin.HookContext) (*resource.PotMeta, error) {
	switch pot.Type {
	case resource.PotRuntime:
		p.mu.Lock()
		defer p.mu.Unlock()
		return &resource.PotMeta{
			RenderedModules:  map[module.ID]resource.RenderedModule{},
			RenderedContent:  p.bootstrap,
			RenderedMapChain: []string{},
		}, nil
	case resource.PotJs:
		return p.renderScriptPot(pot, ctx)
	default:
		return nil, nil
	}
}

func (p *Plugin) renderScriptPot(pot *resource.Pot, ctx *plugin.Context) (*resource.PotMeta, error) {
	rendered, err := p.renderer.RenderPot(pot, ctx.Graph, ctx.Config)
	if err != nil {
		return nil, err
	}

	b := rendered.Bundle
	b.Prepend(registerHeader)
	b.Append(");")

	meta := &resource.PotMeta{
		RenderedModules: rendered.Modules,
		RenderedContent: b.String(),
	}

	if ctx.Config.Sourcemap.Enabled(pot.Immutable) {
		root := ctx.Config.Root
		m, err := b.GenerateMap(bundle.MapOptions{
			File:           pot.Name,
			IncludeContent: true,
			RemapSource:    func(src string) string { return remapSource(root, src) },
		})
		if err != nil {
			return nil, errors.SourceMapFailed(pot.ID, err)
		}
		data, err := m.JSON()
		if err != nil {
			return nil, errors.SourceMapFailed(pot.ID, err)
		}
		meta.RenderedMapChain = append(meta.RenderedMapChain, data)
	}

	return meta, nil
}

// remapSource rewrites a module's real path into the root-relative form
// source maps expose, "/" + relative(root, src)
func remapSource(root, src string) string {
	if root != "" {
		if rel, err := filepath.Rel(root, src); err == nil && !strings.HasPrefix(rel, "..") {
			return "/" + filepath.ToSlash(rel)
		}
	}
	return "/" + strings.TrimPrefix(filepath.ToSlash(src), "/")
}
