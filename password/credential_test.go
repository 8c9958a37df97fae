package password

import (
	"errors"
	"testing"
)

const helloCredential = "sha1:000000000000:32a961f563e05c274ac67ede8a7eed3761a98738"

func TestParseValid(t *testing.T) {
	cred, err := Parse(helloCredential)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if cred.Algorithm != Algorithm || cred.Salt != "000000000000" {
		t.Fatalf("unexpected fields: %+v", cred)
	}
	if cred.String() != helloCredential {
		t.Fatalf("String() = %s, want %s", cred.String(), helloCredential)
	}
}

func TestParseRejects(t *testing.T) {
	cases := []struct {
		name    string
		encoded string
		want    error
	}{
		{"empty", "", ErrInvalidCredential},
		{"two fields", "sha1:000000000000", ErrInvalidCredential},
		{"four fields", helloCredential + ":extra", ErrInvalidCredential},
		{"missing algorithm", ":000000000000:32a961f563e05c274ac67ede8a7eed3761a98738", ErrInvalidCredential},
		{"other algorithm", "md5:000000000000:32a961f563e05c274ac67ede8a7eed3761a98738", ErrUnsupportedAlgorithm},
		{"short salt", "sha1:00000000000:32a961f563e05c274ac67ede8a7eed3761a98738", ErrInvalidCredential},
		{"uppercase salt", "sha1:00000000000A:32a961f563e05c274ac67ede8a7eed3761a98738", ErrInvalidCredential},
		{"short digest", "sha1:000000000000:32a961f563e05c274ac67ede8a7eed3761a9873", ErrInvalidCredential},
		{"non-hex digest", "sha1:000000000000:32a961f563e05c274ac67ede8a7eed3761a9873z", ErrInvalidCredential},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse(tc.encoded); !errors.Is(err, tc.want) {
				t.Fatalf("Parse(%q) error = %v, want %v", tc.encoded, err, tc.want)
			}
		})
	}
}
