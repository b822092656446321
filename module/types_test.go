package module

import "testing"

func TestTypeFromPath(t *testing.T) {
	tests := []struct {
		path string
		want ModuleType
		ok   bool
	}{
		{"src/index.js", TypeJs, true},
		{"src/index.mjs", TypeJs, true},
		{"src/index.cjs", TypeJs, true},
		{"src/App.jsx", TypeJsx, true},
		{"src/main.ts", TypeTs, true},
		{"src/main.mts", TypeTs, true},
		{"src/App.tsx", TypeTsx, true},
		{"styles/app.css", TypeCss, true},
		{"index.html", TypeHtml, true},
		{"index.htm", TypeHtml, true},
		{"src/main.ts?inline", TypeTs, true},
		{"logo.vue", "", false},
		{"README.md", "", false},
		{"no-extension", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := TypeFromPath(tt.path)
			if ok != tt.ok || got != tt.want {
				t.Errorf("TypeFromPath(%q) = (%q, %v), want (%q, %v)",
					tt.path, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestModuleType_IsScript(t *testing.T) {
	script := []ModuleType{TypeJs, TypeJsx, TypeTs, TypeTsx, TypeRuntime}
	for _, mt := range script {
		if !mt.IsScript() {
			t.Errorf("%q should be script", mt)
		}
	}
	for _, mt := range []ModuleType{TypeCss, TypeHtml, TypeAsset} {
		if mt.IsScript() {
			t.Errorf("%q should not be script", mt)
		}
	}
}

func TestSystemFromKinds(t *testing.T) {
	tests := []struct {
		name  string
		kinds []ResolveKind
		want  ModuleSystem
	}{
		{"no deps defaults to es module", nil, SystemEsModule},
		{"imports only", []ResolveKind{KindImport, KindImport}, SystemEsModule},
		{"dynamic import is esm", []ResolveKind{KindDynamicImport}, SystemEsModule},
		{"export from is esm", []ResolveKind{KindExportFrom}, SystemEsModule},
		{"require only", []ResolveKind{KindRequire}, SystemCommonJs},
		{"mixed is hybrid", []ResolveKind{KindImport, KindRequire}, SystemHybrid},
		{"entry kind is neutral", []ResolveKind{KindEntry}, SystemEsModule},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SystemFromKinds(tt.kinds); got != tt.want {
				t.Errorf("SystemFromKinds(%v) = %q, want %q", tt.kinds, got, tt.want)
			}
		})
	}
}
