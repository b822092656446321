package resource

import "github.com/wippyai/farm-bundler/module"

// ResourceType classifies a generated artifact
type ResourceType string

const (
	ResourceRuntime   ResourceType = "runtime"
	ResourceJs        ResourceType = "js"
	ResourceCss       ResourceType = "css"
	ResourceHtml      ResourceType = "html"
	ResourceAsset     ResourceType = "asset"
	ResourceSourceMap ResourceType = "sourcemap"
)

// OriginKind says what produced a resource
type OriginKind string

const (
	OriginPot    OriginKind = "resource-pot"
	OriginModule OriginKind = "module"
)

// Origin records the producer of a resource
type Origin struct {
	Kind OriginKind
	ID   string
}

// PotOrigin returns an origin naming a resource pot
func PotOrigin(potID string) Origin {
	return Origin{Kind: OriginPot, ID: potID}
}

// ModuleOrigin returns an origin naming a module
func ModuleOrigin(id module.ID) Origin {
	return Origin{Kind: OriginModule, ID: id.String()}
}

// Resource is one generated artifact of a compilation
type Resource struct {
	Name  string
	Bytes []byte
	// Emit controls whether the write stage produces a standalone file
	Emit   bool
	Type   ResourceType
	Origin Origin
}
