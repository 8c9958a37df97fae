package password

import (
	"errors"
	"strconv"
	"unicode/utf8"
)

var (
	// ErrInvalidCredential is returned when an encoded credential does not have
	// the sha1:<salt>:<digest> shape.
	ErrInvalidCredential = errors.New("invalid credential format")
	// ErrUnsupportedAlgorithm is returned when the algorithm field is not sha1.
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")
)

// EncodingError reports a passphrase that is not a valid UTF-8 byte sequence.
type EncodingError struct {
	// Offset is the byte offset of the first invalid sequence.
	Offset int
}

func (e *EncodingError) Error() string {
	return "passphrase is not valid UTF-8 at byte " + strconv.Itoa(e.Offset)
}

func checkEncoding(passphrase string) error {
	if utf8.ValidString(passphrase) {
		return nil
	}
	for i := 0; i < len(passphrase); {
		r, size := utf8.DecodeRuneInString(passphrase[i:])
		if r == utf8.RuneError && size == 1 {
			return &EncodingError{Offset: i}
		}
		i += size
	}
	return &EncodingError{Offset: len(passphrase)}
}
