package runtime

import (
	"sync"

	"github.com/wippyai/farm-bundler/config"
	"github.com/wippyai/farm-bundler/errors"
	"github.com/wippyai/farm-bundler/module"
	"github.com/wippyai/farm-bundler/plugin"
	"github.com/wippyai/farm-bundler/render"
)

// Plugin is the runtime plugin. One instance serves one compilation; the
// bootstrap cache must not leak across builds.
type Plugin struct {
	reader   FileReader
	renderer render.PotRenderer

	// mu guards bootstrap; the pot render and the cache write happen
	// under one acquisition
	mu        sync.Mutex
	bootstrap string
}

var _ plugin.Plugin = (*Plugin)(nil)

// Options configures a Plugin's collaborators
type Options struct {
	// Reader loads runtime module sources; defaults to the filesystem
	Reader FileReader
	// Renderer renders pot members into object literals
	Renderer render.PotRenderer
}

// DefaultOptions returns the production collaborators
func DefaultOptions() Options {
	return Options{
		Reader:   OSFileReader{},
		Renderer: render.ObjectRenderer{},
	}
}

// New returns a plugin with default collaborators
func New() *Plugin {
	return NewWithOptions(DefaultOptions())
}

// NewWithOptions returns a plugin with the given collaborators, falling
// back to defaults for nil fields
func NewWithOptions(opts Options) *Plugin {
	if opts.Reader == nil {
		opts.Reader = OSFileReader{}
	}
	if opts.Renderer == nil {
		opts.Renderer = render.ObjectRenderer{}
	}
	return &Plugin{reader: opts.Reader, renderer: opts.Renderer}
}

// Name returns the plugin's identity
func (p *Plugin) Name() string {
	return PluginName
}

// Config registers the synthetic runtime entry, the helper alias, and the
// enforce rule that pins runtime-scoped modules into their own pot
func (p *Plugin) Config(cfg *config.Config) error {
	if cfg.Runtime.Path == "" {
		return errors.InvalidInput(errors.PhaseConfig, "runtime entry path is not configured")
	}

	if cfg.Input == nil {
		cfg.Input = map[string]string{}
	}
	cfg.Input[RuntimeInputKey] = cfg.Runtime.Path + module.RuntimeSuffix

	if cfg.Runtime.SwcHelpersPath != "" {
		if cfg.Resolve.Alias == nil {
			cfg.Resolve.Alias = map[string]string{}
		}
		cfg.Resolve.Alias[swcHelpersAlias] = cfg.Runtime.SwcHelpersPath
	}

	cfg.PartialBundling.InsertEnforceResource(0, config.EnforceResourceConfig{
		Name: RuntimePotName,
		Test: []string{RuntimePotTest},
	})
	return nil
}

// entryID returns the runtime entry's runtime-scoped id
func entryID(cfg *config.Config) module.ID {
	return module.RuntimeID(cfg.Runtime.Path)
}
