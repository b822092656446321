package config

// Mode selects development or production output conventions
type Mode string

const (
	Development Mode = "development"
	Production  Mode = "production"
)

// DefaultNamespace is the global namespace the module system registers
// itself under when the user configures none.
const DefaultNamespace = "__farm_default_namespace__"

// SourcemapConfig controls when source maps are generated for rendered pots
type SourcemapConfig string

const (
	// SourcemapAll generates maps for every pot, immutable ones included
	SourcemapAll SourcemapConfig = "all"
	// SourcemapInline generates maps for every pot, inlined downstream
	SourcemapInline SourcemapConfig = "inline"
	// SourcemapMutableOnly generates maps only for mutable pots (the default)
	SourcemapMutableOnly SourcemapConfig = "mutable-only"
	// SourcemapNone disables source map generation
	SourcemapNone SourcemapConfig = "none"
)

// Enabled reports whether a pot with the given mutability gets a source map
func (s SourcemapConfig) Enabled(immutable bool) bool {
	switch s {
	case SourcemapAll, SourcemapInline:
		return true
	case SourcemapNone:
		return false
	default:
		return !immutable
	}
}

// ResolveConfig carries resolution settings shared by all plugins
type ResolveConfig struct {
	// Alias maps a bare specifier prefix to a replacement path
	Alias map[string]string
}

// RuntimeConfig describes the synthetic runtime entry and its plugins
type RuntimeConfig struct {
	// Path is the real filesystem path of the runtime entry module
	Path string
	// Plugins lists the runtime plugin module paths injected into the entry
	Plugins []string
	// SwcHelpersPath is the location interop helper imports resolve to
	SwcHelpersPath string
	// Namespace is the global the module system registers under
	Namespace string
}

// EnforceResourceConfig forces modules matching Test into the named pot
type EnforceResourceConfig struct {
	Name string
	// Test holds regexp sources matched against module ids
	Test []string
}

// PartialBundlingConfig carries the subset of bundling settings plugins touch
type PartialBundlingConfig struct {
	EnforceResources []EnforceResourceConfig
}

// InsertEnforceResource inserts a rule at index i, shifting later rules back.
// Out-of-range indexes clamp to the nearest end.
func (p *PartialBundlingConfig) InsertEnforceResource(i int, rule EnforceResourceConfig) {
	if i < 0 {
		i = 0
	}
	if i > len(p.EnforceResources) {
		i = len(p.EnforceResources)
	}
	p.EnforceResources = append(p.EnforceResources, EnforceResourceConfig{})
	copy(p.EnforceResources[i+1:], p.EnforceResources[i:])
	p.EnforceResources[i] = rule
}

// Config is one compilation's configuration
type Config struct {
	// Root is the project root all relative paths resolve against
	Root string
	Mode Mode
	// Input maps entry names to entry specifiers
	Input           map[string]string
	Resolve         ResolveConfig
	Runtime         RuntimeConfig
	PartialBundling PartialBundlingConfig
	Sourcemap       SourcemapConfig
}

// Default returns a configuration with initialized maps and the defaults
// plugins rely on
func Default() *Config {
	return &Config{
		Mode:  Development,
		Input: map[string]string{},
		Resolve: ResolveConfig{
			Alias: map[string]string{},
		},
		Runtime: RuntimeConfig{
			Namespace: DefaultNamespace,
		},
		Sourcemap: SourcemapMutableOnly,
	}
}
