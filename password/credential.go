package password

import "strings"

const (
	// Algorithm is the identifier written in the first credential field.
	Algorithm = "sha1"
	// SaltLength is the width of the salt field in hex characters.
	SaltLength = 12
	// DigestLength is the width of the digest field in hex characters.
	DigestLength = 40

	separator = ":"
)

// Credential is a parsed sha1:<salt>:<digest> string.
type Credential struct {
	Algorithm string
	Salt      string
	Digest    string
}

// String renders the credential in its stored form.
func (c Credential) String() string {
	var b strings.Builder
	b.Grow(len(c.Algorithm) + len(c.Salt) + len(c.Digest) + 2)
	b.WriteString(c.Algorithm)
	b.WriteString(separator)
	b.WriteString(c.Salt)
	b.WriteString(separator)
	b.WriteString(c.Digest)
	return b.String()
}

// Parse splits an encoded credential into its fields.
//
// Parse returns ErrUnsupportedAlgorithm when the first field is well-formed but
// names another algorithm, and ErrInvalidCredential for any other shape error.
func Parse(encoded string) (Credential, error) {
	parts := strings.Split(encoded, separator)
	if len(parts) != 3 {
		return Credential{}, ErrInvalidCredential
	}

	if parts[0] == "" {
		return Credential{}, ErrInvalidCredential
	}
	if parts[0] != Algorithm {
		return Credential{}, ErrUnsupportedAlgorithm
	}
	if len(parts[1]) != SaltLength || !isLowerHex(parts[1]) {
		return Credential{}, ErrInvalidCredential
	}
	if len(parts[2]) != DigestLength || !isLowerHex(parts[2]) {
		return Credential{}, ErrInvalidCredential
	}

	return Credential{
		Algorithm: parts[0],
		Salt:      parts[1],
		Digest:    parts[2],
	}, nil
}

func isLowerHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
