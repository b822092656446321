// Package resource defines resource pots and emitted resources.
//
// # Resource Pots
//
// A Pot groups modules destined for one output resource. Pots are produced
// by partial bundling (outside this library) and consumed by render hooks.
// The synthetic runtime subgraph always lands in a dedicated pot of type
// PotRuntime whose Entry names the runtime entry module.
//
//	pot := resource.NewPot("FARM_RUNTIME", resource.PotRuntime)
//	pot.AddModule(entryID)
//	pot.Entry = &entryID
//
// # Rendered Metadata
//
// PotMeta is the mutable slot a render hook fills: the per-module rendered
// fragments, the final rendered content, and the source map chain (oldest
// link first). The orchestrator assigns the returned meta to Pot.Meta.
//
// # Emitted Resources
//
// Resource is a generated artifact. Emit controls whether the write stage
// produces a standalone file; the runtime resource keeps Emit false because
// its bytes are inlined into entry resources downstream. Origin records
// which pot or module produced the resource.
package resource
