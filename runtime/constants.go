package runtime

// PluginName is the plugin's stable identity, used as the caller tag on
// re-entrant hook calls
const PluginName = "FarmPluginRuntime"

// RuntimePotName names the enforced pot holding the runtime subgraph
const RuntimePotName = "FARM_RUNTIME"

// RuntimePotTest is the enforce-resources pattern matching runtime-scoped ids
const RuntimePotTest = `.+\.farm-runtime`

// RuntimeInputKey is the synthetic entry registered during setup
const RuntimeInputKey = "runtime"

// Interop helper sources the emitted code imports
const (
	HelperWildcard   = "@swc/helpers/_/_interop_require_wildcard"
	HelperDefault    = "@swc/helpers/_/_interop_require_default"
	HelperExportStar = "@swc/helpers/_/_export_star"
)

// swcHelpersAlias is the bare specifier aliased to the configured helper path
const swcHelpersAlias = "@swc/helpers"

// pluginVarPrefix names the bindings injected for configured runtime plugins
const pluginVarPrefix = "__farm_runtime_plugin_"
