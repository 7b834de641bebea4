package engine

import "testing"

func TestExpandQueries(t *testing.T) {
	contains := func(list []string, want string) bool {
		for _, v := range list {
			if v == want {
				return true
			}
		}
		return false
	}

	t.Run("plural toggle appends s", func(t *testing.T) {
		got := ExpandQueries("rocket")
		if !contains(got, "rocket") || !contains(got, "rockets") {
			t.Errorf("want both singular and plural, got %v", got)
		}
	})

	t.Run("plural toggle strips s", func(t *testing.T) {
		got := ExpandQueries("rockets")
		if !contains(got, "rockets") || !contains(got, "rocket") {
			t.Errorf("want both forms, got %v", got)
		}
	})

	t.Run("synonym table", func(t *testing.T) {
		got := ExpandQueries("Space")
		if !contains(got, "astronomy") {
			t.Errorf("want synonym astronomy, got %v", got)
		}
	})

	t.Run("topic always first", func(t *testing.T) {
		got := ExpandQueries("  stoicism ")
		if got[0] != "stoicism" {
			t.Errorf("trimmed topic should lead, got %v", got)
		}
		if !contains(got, "stoic philosophy") {
			t.Errorf("want synonym expansion, got %v", got)
		}
	})

	t.Run("no duplicate variants", func(t *testing.T) {
		got := ExpandQueries("as") // "as" → strip s → "a"; synonym miss
		seen := map[string]bool{}
		for _, v := range got {
			if seen[v] {
				t.Errorf("duplicate variant %q in %v", v, got)
			}
			seen[v] = true
		}
	})

	t.Run("blank topic maps to single empty variant", func(t *testing.T) {
		got := ExpandQueries("   ")
		if len(got) != 1 || got[0] != "" {
			t.Errorf("want [\"\"], got %v", got)
		}
	})
}
