package render

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/farm-bundler/bundle"
	"github.com/wippyai/farm-bundler/config"
	"github.com/wippyai/farm-bundler/errors"
	"github.com/wippyai/farm-bundler/module"
	"github.com/wippyai/farm-bundler/resource"
)

// Rendered is the output of rendering one pot: the bundle holding the
// object literal and the per-module fragments it was built from
type Rendered struct {
	Bundle  *bundle.Bundle
	Modules map[module.ID]resource.RenderedModule
}

// PotRenderer renders a pot's members into an object-literal bundle
type PotRenderer interface {
	RenderPot(pot *resource.Pot, graph *module.Graph, cfg *config.Config) (*Rendered, error)
}

// ObjectRenderer is the default PotRenderer
type ObjectRenderer struct{}

// RenderPot renders every member as a factory entry of one object literal.
// Members must be script modules already present in the graph.
func (ObjectRenderer) RenderPot(pot *resource.Pot, graph *module.Graph, cfg *config.Config) (*Rendered, error) {
	members, err := graph.PotModules(pot.Modules)
	if err != nil {
		return nil, errors.RenderFailed(pot.ID, err)
	}

	b := bundle.New()
	rendered := make(map[module.ID]resource.RenderedModule, len(members))

	b.AddRaw("{")
	for i, m := range members {
		meta, ok := m.AsScript()
		if !ok {
			return nil, errors.New(errors.PhaseRender, errors.KindRender).
				Pot(pot.ID).
				Module(m.ID.String()).
				Detail("module has no script content").
				Build()
		}

		b.AddRaw(fmt.Sprintf("%q: function(module, exports, require) {", m.ID.ID(cfg.Mode)))
		b.AddSource(m.ID.Path(), meta.Code)
		if i == len(members)-1 {
			b.AddRaw("}")
		} else {
			b.AddRaw("},")
		}

		rendered[m.ID] = resource.RenderedModule{
			Code:  meta.Code,
			Lines: strings.Count(meta.Code, "\n") + 1,
		}
	}
	b.AddRaw("}")

	Logger().Debug("rendered pot modules",
		zap.String("pot", pot.ID),
		zap.Int("modules", len(members)))

	return &Rendered{Bundle: b, Modules: rendered}, nil
}
