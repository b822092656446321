package module

import "github.com/wippyai/farm-bundler/script"

// Metadata is the per-type payload attached to a module. Implementations
// live in this package; the interface exists only to tag them.
type Metadata interface {
	meta()
}

// ScriptMeta is the metadata of script modules: the parsed top-level
// statements, the code the renderer emits, and the classified module system
type ScriptMeta struct {
	Statements   []script.Stmt
	Code         string
	ModuleSystem ModuleSystem
}

func (*ScriptMeta) meta() {}

// RawMeta holds unparsed content for non-script modules
type RawMeta struct {
	Content string
}

func (*RawMeta) meta() {}

// Module is one node of the module graph. Load creates it, transform and
// analysis enrich it, finalization stamps Type and the script ModuleSystem.
type Module struct {
	ID   ID
	Type ModuleType
	Meta Metadata
}

// New returns a module with the given id and no metadata
func New(id ID) *Module {
	return &Module{ID: id}
}

// AsScript returns the script metadata, or ok=false for non-script modules
func (m *Module) AsScript() (*ScriptMeta, bool) {
	s, ok := m.Meta.(*ScriptMeta)
	return s, ok
}
