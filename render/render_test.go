package render

import (
	"testing"

	"github.com/grafana/sobek"

	"github.com/wippyai/farm-bundler/config"
	"github.com/wippyai/farm-bundler/errors"
	"github.com/wippyai/farm-bundler/module"
	"github.com/wippyai/farm-bundler/resource"
)

func scriptModule(id module.ID, code string) *module.Module {
	return &module.Module{
		ID:   id,
		Type: module.TypeJs,
		Meta: &module.ScriptMeta{Code: code, ModuleSystem: module.SystemEsModule},
	}
}

func twoModulePot(t *testing.T) (*resource.Pot, *module.Graph) {
	t.Helper()
	g := module.NewGraph()
	a, b := module.NewID("a.js"), module.NewID("b.js")
	if err := g.AddModule(scriptModule(a, `module.exports = "A";`)); err != nil {
		t.Fatal(err)
	}
	if err := g.AddModule(scriptModule(b, `module.exports = "B";`)); err != nil {
		t.Fatal(err)
	}
	// a imports b, so b renders first.
	if err := g.AddEdge(a, b); err != nil {
		t.Fatal(err)
	}

	pot := resource.NewPot("index_js", resource.PotJs)
	pot.AddModule(a)
	pot.AddModule(b)
	return pot, g
}

func TestObjectRenderer_ObjectShape(t *testing.T) {
	pot, g := twoModulePot(t)

	rendered, err := ObjectRenderer{}.RenderPot(pot, g, config.Default())
	if err != nil {
		t.Fatalf("RenderPot: %v", err)
	}

	want := `{
"b.js": function(module, exports, require) {
module.exports = "B";
},
"a.js": function(module, exports, require) {
module.exports = "A";
}
}`
	if got := rendered.Bundle.String(); got != want {
		t.Errorf("object = %q, want %q", got, want)
	}

	if len(rendered.Modules) != 2 {
		t.Fatalf("Modules has %d entries, want 2", len(rendered.Modules))
	}
	rm := rendered.Modules[module.NewID("a.js")]
	if rm.Code != `module.exports = "A";` || rm.Lines != 1 {
		t.Errorf("rendered fragment = %+v", rm)
	}
}

func TestObjectRenderer_FactoriesEvaluate(t *testing.T) {
	pot, g := twoModulePot(t)

	rendered, err := ObjectRenderer{}.RenderPot(pot, g, config.Default())
	if err != nil {
		t.Fatalf("RenderPot: %v", err)
	}

	vm := sobek.New()
	if _, err := vm.RunString("var modules = " + rendered.Bundle.String() + ";"); err != nil {
		t.Fatalf("object literal does not evaluate: %v", err)
	}

	v, err := vm.RunString(`(function () {
		var m = { id: "a.js", exports: {} };
		modules["a.js"](m, m.exports, null);
		return m.exports;
	})()`)
	if err != nil {
		t.Fatalf("factory call failed: %v", err)
	}
	if got := v.Export(); got != "A" {
		t.Errorf("factory produced %v, want \"A\"", got)
	}
}

func TestObjectRenderer_ProductionKeys(t *testing.T) {
	pot, g := twoModulePot(t)
	cfg := config.Default()
	cfg.Mode = config.Production

	rendered, err := ObjectRenderer{}.RenderPot(pot, g, cfg)
	if err != nil {
		t.Fatalf("RenderPot: %v", err)
	}

	vm := sobek.New()
	if _, err := vm.RunString("var modules = " + rendered.Bundle.String() + ";"); err != nil {
		t.Fatalf("object literal does not evaluate: %v", err)
	}
	v, err := vm.RunString("Object.keys(modules)")
	if err != nil {
		t.Fatalf("Object.keys: %v", err)
	}
	keys, ok := v.Export().([]any)
	if !ok || len(keys) != 2 {
		t.Fatalf("keys = %v, want 2 entries", v.Export())
	}
	for _, k := range keys {
		s, _ := k.(string)
		if len(s) != 8 {
			t.Errorf("production key %q should be an 8 character hash", s)
		}
	}
}

func TestObjectRenderer_EmptyPot(t *testing.T) {
	pot := resource.NewPot("empty", resource.PotJs)

	rendered, err := ObjectRenderer{}.RenderPot(pot, module.NewGraph(), config.Default())
	if err != nil {
		t.Fatalf("RenderPot: %v", err)
	}
	if got := rendered.Bundle.String(); got != "{\n}" {
		t.Errorf("empty object = %q, want {\\n}", got)
	}

	vm := sobek.New()
	v, err := vm.RunString("Object.keys(" + rendered.Bundle.String() + ").length")
	if err != nil {
		t.Fatalf("empty object does not evaluate: %v", err)
	}
	if got := v.Export(); got != int64(0) {
		t.Errorf("key count = %v, want 0", got)
	}
}

func TestObjectRenderer_NonScriptMember(t *testing.T) {
	g := module.NewGraph()
	css := module.NewID("style.css")
	if err := g.AddModule(&module.Module{
		ID:   css,
		Type: module.TypeCss,
		Meta: &module.RawMeta{Content: "body {}"},
	}); err != nil {
		t.Fatal(err)
	}

	pot := resource.NewPot("mixed", resource.PotJs)
	pot.AddModule(css)

	_, err := ObjectRenderer{}.RenderPot(pot, g, config.Default())
	if err == nil {
		t.Fatal("RenderPot accepted a non-script member")
	}
	e, ok := err.(*errors.Error)
	if !ok {
		t.Fatalf("error type = %T, want *errors.Error", err)
	}
	if e.Phase != errors.PhaseRender || e.Pot != "mixed" {
		t.Errorf("error = %+v, want render phase carrying the pot id", e)
	}
}

func TestObjectRenderer_MissingMember(t *testing.T) {
	pot := resource.NewPot("broken", resource.PotJs)
	pot.AddModule(module.NewID("ghost.js"))

	_, err := ObjectRenderer{}.RenderPot(pot, module.NewGraph(), config.Default())
	if err == nil {
		t.Fatal("RenderPot accepted a member missing from the graph")
	}
}
