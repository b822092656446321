// Package script models the top-level statement structure of parsed script
// modules.
//
// Only the statement-level shape matters to the bundler: which specifiers an
// import declaration carries, and whether a statement re-exports another
// module wholesale. Everything below the statement level is opaque and kept
// as raw text. Producing this structure from source text is the parser's
// job, which lives outside this library.
package script
