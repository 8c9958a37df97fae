package password

import (
	"crypto/sha1" //nolint:gosec
	"encoding/hex"
	"math/rand/v2"
	"strconv"
	"strings"
)

// saltMask keeps the low 48 bits of a draw so the salt never exceeds
// SaltLength hex characters.
const saltMask = 1<<(4*SaltLength) - 1

// Source supplies salt entropy. Every math/rand/v2 source (PCG, ChaCha8) and
// *rand.Rand satisfy it.
type Source interface {
	Uint64() uint64
}

type globalSource struct{}

func (globalSource) Uint64() uint64 { return rand.Uint64() }

// SHA1 hashes passphrases into sha1:<salt>:<digest> credentials.
//
// A SHA1 holds no mutable state of its own; it is safe for concurrent use
// whenever its Source is.
type SHA1 struct {
	source Source
}

// NewSHA1 returns a hasher drawing salts from source. A nil source selects the
// process-wide math/rand/v2 generator.
func NewSHA1(source Source) *SHA1 {
	if source == nil {
		source = globalSource{}
	}
	return &SHA1{source: source}
}

// Hash salts and digests passphrase.
//
// Hash returns an *EncodingError when passphrase is not valid UTF-8. Empty
// passphrases are hashed like any other input.
func (h *SHA1) Hash(passphrase string) (string, error) {
	if err := checkEncoding(passphrase); err != nil {
		return "", err
	}

	salt := h.newSalt()
	return Credential{
		Algorithm: Algorithm,
		Salt:      salt,
		Digest:    digest(passphrase, salt),
	}.String(), nil
}

// Verify reports whether passphrase produced the encoded credential.
//
// Verify returns an error for malformed credentials, unsupported algorithms and
// passphrases that are not valid UTF-8. A well-formed credential that does not
// match yields false and a nil error.
func (h *SHA1) Verify(passphrase, encoded string) (bool, error) {
	if err := checkEncoding(passphrase); err != nil {
		return false, err
	}

	cred, err := Parse(encoded)
	if err != nil {
		return false, err
	}

	return digest(passphrase, cred.Salt) == cred.Digest, nil
}

func (h *SHA1) newSalt() string {
	raw := strconv.FormatUint(h.source.Uint64()&saltMask, 16)
	if len(raw) == SaltLength {
		return raw
	}
	return strings.Repeat("0", SaltLength-len(raw)) + raw
}

func digest(passphrase, salt string) string {
	buf := make([]byte, 0, len(passphrase)+len(salt))
	buf = append(buf, passphrase...)
	buf = append(buf, salt...)

	sum := sha1.Sum(buf) //nolint:gosec
	return hex.EncodeToString(sum[:])
}
