// Package plugin defines the compilation hook surface and the driver that
// dispatches hooks across registered plugins.
//
// # Hooks
//
// Every hook returns a three-way result. A typed hook returns (nil, nil)
// when the plugin declines its input, a non-nil result when it handled it,
// and an error to abort the compilation. Side-effect hooks return a bool
// instead of a result pointer. Declining is never an error.
//
// # Dispatch
//
// The Driver dispatches resolve, load, render, and generate hooks
// first-wins: plugins run in registration order and the first non-nil
// result ends the chain. Transform chains instead: each handling plugin
// receives the previous plugin's output, and source maps collect into a
// chain. Analysis, finalization, and pot processing run on every plugin.
//
// # Hook Context
//
// HookContext carries the caller tag plugins use to recognize their own
// re-entrant calls and break recursion:
//
//	if hookCtx.CalledBy(pluginName) {
//		return nil, nil
//	}
//
// # Context
//
// Context is one compilation's shared state: the configuration, the module
// graph, and the driver. Context.Resolve re-enters the full resolve chain,
// which is how a plugin delegates resolution to everyone else.
package plugin
