package hashpass

import (
	"errors"

	"github.com/MrEthical07/hashpass/password"
)

var (
	// ErrInvalidConfig is returned by New and Config.Validate.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrInvalidCredential is returned by Verify for malformed credentials.
	ErrInvalidCredential = password.ErrInvalidCredential
	// ErrUnsupportedAlgorithm is returned by Verify when the credential names an
	// algorithm other than sha1.
	ErrUnsupportedAlgorithm = password.ErrUnsupportedAlgorithm
)

// EncodingError reports a passphrase that is not valid UTF-8.
type EncodingError = password.EncodingError
