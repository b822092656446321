// Package config defines the compilation configuration consumed by the
// bundler's plugins.
//
// Configuration is plain data: the package performs no file loading, CLI
// parsing, or validation beyond what Default provides. Plugins receive a
// *Config during the setup stage and may mutate it before the module graph
// is built; after setup the configuration is treated as read-only.
//
// SourcemapConfig gates per-pot source map generation by pot mutability:
//
//	cfg.Sourcemap.Enabled(pot.Immutable)
package config
