package nameset_test

import (
	"testing"

	"scoremerge/internal/nameset"
)

func TestNormalizeFoldsCaseAccentsAndSeparators(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Jean Dupont", "dupont jean"},
		{"accents", "Marie-Ève Côté", "cote eve marie"},
		{"hyphen and underscore", "Anne-Sophie_Le Gall", "anne gall le sophie"},
		{"duplicate tokens collapse", "Jean Jean", "jean"},
		{"cedilla and tilde", "François Muñoz", "francois munoz"},
		{"mixed case", "JEAN dupont", "dupont jean"},
		{"extra whitespace", "  Jean \t Dupont  ", "dupont jean"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := nameset.Normalize(tc.in).String()
			if got != tc.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeIsPure(t *testing.T) {
	const in = "Marie-Ève Côté"
	first := nameset.Normalize(in)
	second := nameset.Normalize(in)
	if !first.Equal(second) {
		t.Fatalf("repeated Normalize calls differ: %q vs %q", first, second)
	}
	if first.Len() != 3 {
		t.Fatalf("expected 3 tokens, got %d (%q)", first.Len(), first)
	}
}

func TestTokensEqualIgnoresOrder(t *testing.T) {
	if !nameset.TokensEqual("Jean Dupont", "Dupont Jean") {
		t.Fatal("expected reordered name to compare equal")
	}
	if !nameset.TokensEqual("Marie-Ève Côté", "Marie Eve Cote") {
		t.Fatal("expected accent-folded name to compare equal")
	}
	if nameset.TokensEqual("Jean Dupont", "Jean Durand") {
		t.Fatal("expected different surnames to compare unequal")
	}
}

func TestTokensContain(t *testing.T) {
	if !nameset.TokensContain("Jean Paul Martin", "Jean Martin") {
		t.Fatal("expected subset to hold for dropped middle name")
	}
	if !nameset.TokensContain("Jean Martin", "Jean Paul Martin") {
		t.Fatal("expected containment to be symmetric")
	}
	if nameset.TokensContain("Jean Martin", "Paul Durand") {
		t.Fatal("expected disjoint names not to contain each other")
	}
}

func TestTokensIntersect(t *testing.T) {
	if !nameset.TokensIntersect("Paul Martin", "Paul Durand") {
		t.Fatal("expected shared first name to intersect")
	}
	if nameset.TokensIntersect("Alice Bernard", "Bob Charlie") {
		t.Fatal("expected disjoint names not to intersect")
	}
}

func TestEmptyNameNeverContainsOrIntersects(t *testing.T) {
	for _, blank := range []string{"", "   ", "\t"} {
		if nameset.TokensContain(blank, "Jean Dupont") {
			t.Fatalf("blank %q must not contain any name", blank)
		}
		if nameset.TokensContain("Jean Dupont", blank) {
			t.Fatalf("no name may contain blank %q", blank)
		}
		if nameset.TokensIntersect(blank, "Jean Dupont") {
			t.Fatalf("blank %q must not intersect any name", blank)
		}
	}
	if nameset.TokensContain("", "") {
		t.Fatal("two blanks must not contain each other")
	}
	if nameset.TokensIntersect("", "") {
		t.Fatal("two blanks must not intersect")
	}
}

func TestExactEqualsIsRawIdentity(t *testing.T) {
	if !nameset.ExactEquals("Jean Dupont", "Jean Dupont") {
		t.Fatal("identical strings must compare equal")
	}
	if nameset.ExactEquals("Jean Dupont", "jean dupont") {
		t.Fatal("ExactEquals must not normalize case")
	}
	if nameset.ExactEquals("Marie-Ève Côté", "Marie Eve Cote") {
		t.Fatal("ExactEquals must not fold accents")
	}
}
