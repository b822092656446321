package resource

import (
	"testing"

	"github.com/wippyai/farm-bundler/module"
)

func TestPotTypeFromModuleType(t *testing.T) {
	tests := []struct {
		in   module.ModuleType
		want PotType
	}{
		{module.TypeRuntime, PotRuntime},
		{module.TypeJs, PotJs},
		{module.TypeJsx, PotJs},
		{module.TypeTs, PotJs},
		{module.TypeTsx, PotJs},
		{module.TypeCss, PotCss},
		{module.TypeHtml, PotHtml},
		{module.TypeAsset, PotAsset},
	}

	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			if got := PotTypeFromModuleType(tt.in); got != tt.want {
				t.Errorf("PotTypeFromModuleType(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewPot(t *testing.T) {
	pot := NewPot("FARM_RUNTIME", PotRuntime)

	if pot.Name != "FARM_RUNTIME" {
		t.Errorf("Name = %q, want id as default", pot.Name)
	}
	if pot.Meta != nil {
		t.Error("fresh pot should have no rendered meta")
	}

	entry := module.RuntimeID("src/main.ts")
	pot.AddModule(entry)
	if len(pot.Modules) != 1 || pot.Modules[0] != entry {
		t.Errorf("Modules = %v, want [%v]", pot.Modules, entry)
	}
}

func TestOrigins(t *testing.T) {
	po := PotOrigin("index_js")
	if po.Kind != OriginPot || po.ID != "index_js" {
		t.Errorf("PotOrigin = %+v", po)
	}

	mo := ModuleOrigin(module.RuntimeID("src/main.ts"))
	if mo.Kind != OriginModule {
		t.Errorf("Kind = %q, want %q", mo.Kind, OriginModule)
	}
	if mo.ID != "src/main.ts"+module.RuntimeSuffix {
		t.Errorf("ID = %q, want suffixed string form", mo.ID)
	}
}
