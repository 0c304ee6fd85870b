package offerhash_test

import (
	"testing"

	"github.com/shashankpendyala3549-commits/backend/pkg/offerhash"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"already normal", "pay now", "pay now"},
		{"run of spaces", "Pay  NOW", "pay now"},
		{"tabs and newlines", "Pay\t\nNOW", "pay now"},
		{"leading and trailing", "  Pay NOW  ", "pay now"},
		{"empty", "", ""},
		{"whitespace only", " \t\n ", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := offerhash.Normalize(tc.in); got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestOfferHash_KnownVector(t *testing.T) {
	// sha256("pay now")
	const want = "092a9f539ee1e8746ce51cbda8ebc1e8ff4bfecfdff6e3e1902562524151acab"
	if got := offerhash.OfferHash("pay now"); got != want {
		t.Errorf("OfferHash(\"pay now\") = %s, want %s", got, want)
	}
}

func TestOfferHash_WhitespaceAndCaseInsensitive(t *testing.T) {
	a := offerhash.OfferHash("Pay  NOW")
	b := offerhash.OfferHash("pay now")
	if a != b {
		t.Errorf("hashes differ for equivalent texts: %s vs %s", a, b)
	}
}

func TestOfferHash_Deterministic(t *testing.T) {
	text := "Dear candidate, congratulations on your offer."
	const want = "a4d8ca73b3f03ce51b07d7215a8716b5fba8a258188095ae5e9ce40c91bfd43e"
	for i := 0; i < 3; i++ {
		if got := offerhash.OfferHash(text); got != want {
			t.Errorf("OfferHash() = %s, want %s", got, want)
		}
	}
}

func TestOfferHash_DistinctTexts(t *testing.T) {
	if offerhash.OfferHash("pay now") == offerhash.OfferHash("pay later") {
		t.Error("distinct texts must not collide")
	}
}
