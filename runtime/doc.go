// Package runtime implements the bundler's runtime plugin: the stage that
// pulls the module-system runtime into every compilation and renders
// runtime-flavored resource pots into executable bundles.
//
// # Runtime Subgraph
//
// The plugin reserves the ".farm-runtime" id suffix. During setup it
// registers a synthetic entry ("runtime") pointing at the configured
// runtime implementation, and an enforce-resources rule that corrals every
// runtime-scoped module into the FARM_RUNTIME pot. Resolution keeps the
// subgraph closed: anything imported from a runtime-scoped module becomes
// runtime-scoped itself.
//
// # Hooks
//
// One Plugin instance serves one compilation:
//
//	p := runtime.New()
//	driver, err := plugin.NewDriver(p)
//
// Resolve strips the reserved suffix, delegates to the full resolve chain
// with the plugin's own caller tag (so it skips its re-entrant call), and
// re-marks the result as runtime-scoped. Load reads runtime module sources
// from disk. Transform injects configured runtime plugins into the runtime
// entry. AnalyzeDeps appends the @swc/helpers interop imports the emitted
// code needs. FinalizeModule stamps the Runtime module type and classifies
// the module system. ProcessPots renders the runtime pot into the
// bootstrap bundle exactly once, under a single critical section;
// RenderPotModules serves the cached bootstrap for the runtime pot and
// wraps script pots in the registration form. GenerateResources turns the
// rendered runtime pot into a non-emitted resource whose bytes downstream
// stages inline into entry resources.
//
// # Bundle Forms
//
// The runtime pot renders as a self-invoking loader that boots the entry:
//
//	(function (modules, entryModule) { ... require(entryModule); })({...}, "entry");
//
// Script pots render as a registration call that hands every factory to
// the already-booted module system without executing any of them:
//
//	(function (modules) { ... register(key, modules[key]); })({...});
package runtime
