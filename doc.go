// Package farmbundler implements the runtime injection and bundle rendering
// stage of a Farm-style JavaScript bundler.
//
// The bundler's runtime (module system, plugin container, interop helpers) is
// itself JavaScript. This library pulls those sources into the compilation as
// a synthetic, suffix-scoped module subgraph, renders them into a
// self-bootstrapping script, and renders ordinary script output into
// registration bundles the bootstrap can load.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	farmbundler/         Root package assembling compilations
//	├── runtime/         The runtime plugin: injection, rendering, emission hooks
//	├── plugin/          Hook surface, hook context, and the dispatching driver
//	├── render/          Resource pot rendering into module-keyed object literals
//	├── bundle/          String bundles with prepend/append and source map output
//	├── module/          Module identity, metadata, dependencies, and the graph
//	├── script/          Top-level statement model and a minimal declaration scanner
//	├── resource/        Resource pots, rendered metadata, and emitted resources
//	├── config/          Compilation configuration shared across plugins
//	└── errors/          Structured compilation errors with phase and kind
//
// # Quick Start
//
// Assemble a compilation and resolve the synthetic runtime entry:
//
//	cfg := config.Default()
//	cfg.Runtime.Path = "/proj/node_modules/@farmfe/runtime/index.js"
//
//	ctx, err := farmbundler.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := ctx.Resolve(&plugin.ResolveParam{
//	    Source: cfg.Input["runtime"],
//	    Kind:   module.KindEntry,
//	}, nil)
//
// The resolved id is runtime-scoped: its string form carries the reserved
// ".farm-runtime" suffix while its path points at the real file. Loading,
// transforming, and rendering flow through the same driver; see the runtime
// package for the full hook set.
//
// # Module Identity
//
// A module id is either real or runtime-scoped. The scope travels with the
// id value, not with the string: parse once at the boundary, compare ids
// everywhere else. Rendered output keys modules by the mode-specific form,
// the full string in development and a short stable hash in production.
//
// # Thread Safety
//
// The module graph and the runtime plugin's pot processing are safe for
// concurrent use. A Context and its Config belong to a single compilation
// and are not synchronized; construct a fresh Context per compilation.
package farmbundler
