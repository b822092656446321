// Package render turns a resource pot's modules into a module-keyed object
// literal, the form both the runtime bootstrap and the registration wrapper
// consume.
//
// The object maps each member's mode-specific id to a factory function:
//
//	{
//	"src/a.js": function(module, exports, require) {
//	<module code>
//	},
//	"src/b.js": function(module, exports, require) {
//	<module code>
//	}
//	}
//
// Members render in deterministic graph order (dependency-first,
// lexicographic tie-break), so identical inputs produce byte-identical
// output. The object carries no trailing executable code; wrapping it into
// something that runs is the caller's business.
package render
