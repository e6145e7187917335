package token

import "testing"

func TestKindString(t *testing.T) {
	for k := ILLEGAL; k < maxKind; k++ {
		if k.String() == "" {
			t.Errorf("missing string representation for kind %d", k)
		}
	}
}

func TestKeywordsRoundTrip(t *testing.T) {
	for word, kind := range Keywords {
		if got := kind.String(); got != word {
			t.Errorf("Keywords[%q] = %v, String() = %q", word, kind, got)
		}
	}
}
