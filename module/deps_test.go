package module

import "testing"

func TestDependencyList_AddDeduplicates(t *testing.T) {
	var l DependencyList

	if !l.Add(Dependency{Source: "./a", Kind: KindImport}) {
		t.Error("first Add should report true")
	}
	if l.Add(Dependency{Source: "./a", Kind: KindImport}) {
		t.Error("duplicate (source, kind) should report false")
	}
	if !l.Add(Dependency{Source: "./a", Kind: KindRequire}) {
		t.Error("same source with different kind is a distinct entry")
	}
	if l.Len() != 2 {
		t.Errorf("Len() = %d, want 2", l.Len())
	}
}

func TestDependencyList_Contains(t *testing.T) {
	var l DependencyList
	l.Add(Dependency{Source: "./a", Kind: KindImport})

	if !l.Contains("./a") {
		t.Error("Contains should match regardless of kind")
	}
	if l.Contains("./b") {
		t.Error("Contains matched an absent source")
	}
}

func TestDependencyList_OrderPreserved(t *testing.T) {
	var l DependencyList
	l.Add(Dependency{Source: "./c", Kind: KindImport})
	l.Add(Dependency{Source: "./a", Kind: KindRequire})
	l.Add(Dependency{Source: "./b", Kind: KindImport})

	entries := l.Entries()
	wantSources := []string{"./c", "./a", "./b"}
	for i, want := range wantSources {
		if entries[i].Source != want {
			t.Fatalf("Entries()[%d].Source = %q, want %q", i, entries[i].Source, want)
		}
	}

	kinds := l.Kinds()
	wantKinds := []ResolveKind{KindImport, KindRequire, KindImport}
	for i, want := range wantKinds {
		if kinds[i] != want {
			t.Fatalf("Kinds()[%d] = %q, want %q", i, kinds[i], want)
		}
	}
}

func TestDependencyList_EntriesIsACopy(t *testing.T) {
	var l DependencyList
	l.Add(Dependency{Source: "./a", Kind: KindImport})

	entries := l.Entries()
	entries[0].Source = "mutated"

	if l.Entries()[0].Source != "./a" {
		t.Error("mutating the returned slice changed the list")
	}
}
