package resource

import "github.com/wippyai/farm-bundler/module"

// PotType classifies the output a pot renders to
type PotType string

const (
	// PotRuntime holds the synthetic runtime subgraph
	PotRuntime PotType = "runtime"
	PotJs      PotType = "js"
	PotCss     PotType = "css"
	PotHtml    PotType = "html"
	PotAsset   PotType = "asset"
)

// PotTypeFromModuleType maps a module type to the pot type it bundles into.
// Script types all bundle as js.
func PotTypeFromModuleType(t module.ModuleType) PotType {
	switch t {
	case module.TypeRuntime:
		return PotRuntime
	case module.TypeCss:
		return PotCss
	case module.TypeHtml:
		return PotHtml
	case module.TypeAsset:
		return PotAsset
	default:
		return PotJs
	}
}

// Pot is a group of modules rendered into one resource
type Pot struct {
	// ID is unique across one compilation's pots
	ID   string
	Name string
	Type PotType
	// Modules lists the member ids; ordering queries go through the graph
	Modules []module.ID
	// Entry is set for pots that boot an entry module, the runtime pot
	// in particular
	Entry *module.ID
	// Immutable marks pots whose content is cache-stable across builds
	Immutable bool
	// Meta is filled by the render stage
	Meta *PotMeta
}

// NewPot returns an empty pot with Name defaulted to the id
func NewPot(id string, t PotType) *Pot {
	return &Pot{ID: id, Name: id, Type: t}
}

// AddModule appends a member id
func (p *Pot) AddModule(id module.ID) {
	p.Modules = append(p.Modules, id)
}

// RenderedModule is one module's rendered fragment inside a pot
type RenderedModule struct {
	Code string
	// Lines counts the newline-separated lines of Code
	Lines int
}

// PotMeta is the rendered state of a pot
type PotMeta struct {
	RenderedModules map[module.ID]RenderedModule
	RenderedContent string
	// RenderedMapChain holds serialized source maps, oldest link first
	RenderedMapChain []string
}
