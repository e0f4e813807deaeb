package proof

import (
	"errors"

	"github.com/takakv/triptych/params"
)

// ErrInvalidParameter is re-exported from params so callers of this package
// never need to import params just to check errors.Is.
var ErrInvalidParameter = params.ErrInvalidParameter

// ErrInvalidChallenge is returned by Prove (never by Verify, which instead
// returns false) when a Fiat-Shamir challenge power is zero. This occurs
// with probability roughly 2^-256 and is not retried internally.
var ErrInvalidChallenge = errors.New("triptych: invalid challenge: zero power")
