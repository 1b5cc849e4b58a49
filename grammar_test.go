package lujvo

import (
	"reflect"
	"testing"
)

func TestClassMembership(t *testing.T) {
	if Cluster.Width() != 2 || Diphthong.Width() != 2 || Consonant.Width() != 1 {
		t.Fatalf("unexpected class widths: CC=%d VV=%d C=%d",
			Cluster.Width(), Diphthong.Width(), Consonant.Width())
	}
	if n := len(Cluster.Members()); n != 48 {
		t.Fatalf("expected 48 initial consonant pairs, have %d", n)
	}
	for _, m := range []string{"bl", "cf", "tc", "zv"} {
		if !Cluster.Contains(m) {
			t.Fatalf("%q should be a permissible initial pair", m)
		}
	}
	for _, m := range []string{"lb", "gn", "tl", "bb"} {
		if Cluster.Contains(m) {
			t.Fatalf("%q should not be a permissible initial pair", m)
		}
	}
	if Consonant.Contains("y") || Vowel.Contains("y") {
		t.Fatalf("y must be neither consonant nor vowel")
	}
	if Diphthong.Contains("ia") {
		t.Fatalf("ia is not a diphthong")
	}
}

func TestClassMatchAtBounds(t *testing.T) {
	if Cluster.MatchAt("b", 0) {
		t.Fatalf("cluster must not match past end of input")
	}
	if Vowel.MatchAt("a", -1) {
		t.Fatalf("negative offsets never match")
	}
	if !Cluster.MatchAt("abl", 1) {
		t.Fatalf("expected cluster at offset 1 of abl")
	}
}

func TestMembersIsACopy(t *testing.T) {
	mm := Vowel.Members()
	mm[0] = "x"
	if !Vowel.Contains("a") || Vowel.Members()[0] != "a" {
		t.Fatalf("modifying Members() must not change the class")
	}
}

func TestUnitShapes(t *testing.T) {
	tests := []struct {
		shape Shape
		unit  string
		want  bool
	}{
		{ShortVowelFinal, "cme", true},
		{ShortVowelFinal, "bau", true},
		{ShortVowelFinal, "fa'i", true},
		{ShortVowelFinal, "ban", false},
		{ShortVowelFinal, "fa'", false},
		{Short, "ban", true},
		{Short, "jbo", true},
		{Short, "bia", false},
		{Long, "bang", true},
		{Long, "vlas", true},
		{Long, "bangu", false},
		{Long, "lbas", false},
		{LongVowelFinal, "bangu", true},
		{LongVowelFinal, "jikca", true},
		{LongVowelFinal, "jmive", true},
		{LongVowelFinal, "bang", false},
		{Terminal, "cme", true},
		{Terminal, "bangu", true},
		{Terminal, "ban", false},
		{Terminal, "bang", false},
	}
	for _, tt := range tests {
		if got := tt.shape.Match(tt.unit); got != tt.want {
			t.Fatalf("%s.Match(%q) = %v, want %v", tt.shape.Name, tt.unit, got, tt.want)
		}
	}
}

func TestShapeAlternativeOrder(t *testing.T) {
	// cluster alternatives come before single-consonant alternatives
	want := []string{"CC V", "C VV", "C V ' V", "C V C"}
	got := make([]string, len(Short.Alternatives))
	for i, q := range Short.Alternatives {
		got[i] = q.String()
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("rafsi3 alternatives: got %v, want %v", got, want)
	}
	want = []string{"C V C C V", "CC V C V"}
	got = got[:0]
	for _, q := range LongVowelFinal.Alternatives {
		got = append(got, q.String())
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("rafsi5 alternatives: got %v, want %v", got, want)
	}
}

func TestInteriorStepOrder(t *testing.T) {
	// 4 short alternatives with and without hyphen, 2 long ones with y
	if len(interiorSteps) != 10 {
		t.Fatalf("expected 10 interior steps, have %d", len(interiorSteps))
	}
	if interiorSteps[0].hyphen != nil || interiorSteps[1].hyphen == nil {
		t.Fatalf("hyphen-less variant must be tried before the hyphenated one")
	}
	for _, st := range interiorSteps[8:] {
		if st.kind != LongUnit || st.hyphen == nil || st.hyphen.Name != "y" {
			t.Fatalf("long units must be followed by y, have %v", st)
		}
	}
}
