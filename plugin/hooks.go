package plugin

import (
	"github.com/wippyai/farm-bundler/config"
	"github.com/wippyai/farm-bundler/module"
	"github.com/wippyai/farm-bundler/resource"
)

// HookContext carries per-call metadata between plugins
type HookContext struct {
	// Caller names the plugin that initiated a re-entrant hook call;
	// empty when the orchestrator calls directly
	Caller string
	Meta   map[string]string
}

// CalledBy reports whether the call was initiated by the named plugin.
// Safe on a nil context.
func (h *HookContext) CalledBy(name string) bool {
	return h != nil && h.Caller == name
}

// ResolveParam asks plugins to resolve a specifier
type ResolveParam struct {
	Source string
	// Importer is nil for compilation entries
	Importer *module.ID
	Kind     module.ResolveKind
}

// ResolveResult is a successful resolution
type ResolveResult struct {
	ID          module.ID
	External    bool
	SideEffects bool
	Meta        map[string]string
}

// LoadParam asks plugins to load a resolved module's content
type LoadParam struct {
	ID module.ID
}

// LoadResult is loaded content with its inferred type
type LoadResult struct {
	Content string
	Type    module.ModuleType
}

// TransformParam feeds one plugin's transform with the previous output
type TransformParam struct {
	ID      module.ID
	Content string
	Type    module.ModuleType
}

// TransformResult is one plugin's transform output. SourceMap is a
// serialized map for this step, empty when the step did not track one.
type TransformResult struct {
	Content   string
	Type      module.ModuleType
	SourceMap string
}

// TransformPipelineResult is the driver's aggregate over the transform
// chain: final content and type plus the collected source map chain,
// oldest link first
type TransformPipelineResult struct {
	Content        string
	Type           module.ModuleType
	SourceMapChain []string
}

// AnalyzeDepsParam exposes a module and its mutable dependency list to
// analysis hooks
type AnalyzeDepsParam struct {
	Module *module.Module
	Deps   *module.DependencyList
}

// FinalizeParam exposes a module and its settled dependencies to
// finalization hooks
type FinalizeParam struct {
	Module *module.Module
	Deps   []module.Dependency
}

// GenerateResourcesResult is a generated resource with an optional
// companion source map resource
type GenerateResourcesResult struct {
	Resource  resource.Resource
	SourceMap *resource.Resource
}

// Plugin is the full hook surface. Embed Base and override the hooks the
// plugin participates in.
type Plugin interface {
	// Name returns the plugin's stable identity, used as the caller tag
	Name() string

	// Config mutates the configuration during the setup stage
	Config(cfg *config.Config) error

	Resolve(param *ResolveParam, ctx *Context, hookCtx *HookContext) (*ResolveResult, error)
	Load(param *LoadParam, ctx *Context, hookCtx *HookContext) (*LoadResult, error)
	Transform(param *TransformParam, ctx *Context) (*TransformResult, error)
	AnalyzeDeps(param *AnalyzeDepsParam, ctx *Context) (bool, error)
	FinalizeModule(param *FinalizeParam, ctx *Context) (bool, error)

	ProcessPots(pots []*resource.Pot, ctx *Context) (bool, error)
	RenderPotModules(pot *resource.Pot, ctx *Context, hookCtx *HookContext) (*resource.PotMeta, error)
	GenerateResources(pot *resource.Pot, ctx *Context, hookCtx *HookContext) (*GenerateResourcesResult, error)
}

// Base declines every hook. Embedding it keeps plugins source-compatible
// when the hook surface grows. Base deliberately lacks Name.
type Base struct{}

func (Base) Config(*config.Config) error { return nil }

func (Base) Resolve(*ResolveParam, *Context, *HookContext) (*ResolveResult, error) {
	return nil, nil
}

func (Base) Load(*LoadParam, *Context, *HookContext) (*LoadResult, error) {
	return nil, nil
}

func (Base) Transform(*TransformParam, *Context) (*TransformResult, error) {
	return nil, nil
}

func (Base) AnalyzeDeps(*AnalyzeDepsParam, *Context) (bool, error) {
	return false, nil
}

func (Base) FinalizeModule(*FinalizeParam, *Context) (bool, error) {
	return false, nil
}

func (Base) ProcessPots([]*resource.Pot, *Context) (bool, error) {
	return false, nil
}

func (Base) RenderPotModules(*resource.Pot, *Context, *HookContext) (*resource.PotMeta, error) {
	return nil, nil
}

func (Base) GenerateResources(*resource.Pot, *Context, *HookContext) (*GenerateResourcesResult, error) {
	return nil, nil
}
