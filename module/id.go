package module

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/wippyai/farm-bundler/config"
)

// RuntimeSuffix is the reserved marker appended to the string form of
// runtime-scoped module ids. User modules must never carry it.
const RuntimeSuffix = ".farm-runtime"

// ID identifies a module. The zero value is an empty real-module id.
//
// An ID is either real (backed by a source file as-is) or runtime-scoped
// (the same file pulled into the synthetic runtime subgraph). The string
// form of a runtime id carries RuntimeSuffix; Path always returns the
// underlying path without it.
type ID struct {
	path    string
	runtime bool
}

// NewID returns a real-module id for path
func NewID(path string) ID {
	return ID{path: path}
}

// RuntimeID returns a runtime-scoped id for path
func RuntimeID(path string) ID {
	return ID{path: path, runtime: true}
}

// ParseID parses a string form, detecting and stripping the reserved suffix
func ParseID(s string) ID {
	if strings.HasSuffix(s, RuntimeSuffix) {
		return ID{path: strings.TrimSuffix(s, RuntimeSuffix), runtime: true}
	}
	return ID{path: s}
}

// Path returns the underlying path without the reserved suffix
func (id ID) Path() string {
	return id.path
}

// IsRuntime reports whether the id is runtime-scoped
func (id ID) IsRuntime() bool {
	return id.runtime
}

// WithRuntime returns a copy of the id with the runtime tag set to r
func (id ID) WithRuntime(r bool) ID {
	id.runtime = r
	return id
}

// String returns the full string form, suffix included for runtime ids
func (id ID) String() string {
	if id.runtime {
		return id.path + RuntimeSuffix
	}
	return id.path
}

// ID returns the mode-specific identifier used as a module key in rendered
// output: the full string form in development, a short stable hash of it in
// production.
func (id ID) ID(mode config.Mode) string {
	if mode == config.Production {
		sum := sha256.Sum256([]byte(id.String()))
		return hex.EncodeToString(sum[:])[:8]
	}
	return id.String()
}

// IsZero reports whether the id is the zero value
func (id ID) IsZero() bool {
	return id.path == "" && !id.runtime
}
