package lujvo

import (
	"strings"
	"testing"
)

func FuzzDecompose(f *testing.F) {
	f.Add("cmebangu")
	f.Add("sampyfa'i")
	f.Add("bangncme")
	f.Add("")
	f.Add("'''''''")
	f.Add("\xff\xfe")
	f.Fuzz(func(t *testing.T, compound string) {
		segs := Decompose(compound)
		if segs == nil {
			return
		}
		if strings.Join(segs, "") != compound {
			t.Fatalf("segments %v do not reconstruct %q", segs, compound)
		}
		if len(compound) < 6 {
			t.Fatalf("%q is too short to decompose, got %v", compound, segs)
		}
	})
}

func FuzzCanonical(f *testing.F) {
	f.Add("Fa'i.")
	f.Add("fahi")
	f.Add("\x00")
	f.Fuzz(func(t *testing.T, input string) {
		s, ok := Canonical(input)
		if !ok {
			return
		}
		if again, ok2 := Canonical(s); !ok2 || again != s {
			t.Fatalf("Canonical not idempotent: %q -> %q -> %q", input, s, again)
		}
	})
}
