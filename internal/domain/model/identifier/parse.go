package identifier

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// ErrInvalidIdentifier is matched by every error returned from Parse
var ErrInvalidIdentifier = errors.New("invalid identifier")

// Parse decodes s from either text form and reports which one it was.
// ULID text is parsed strictly (Crockford alphabet, case-insensitive);
// anything else must be a hyphenated UUID.
func Parse(s string) (ulid.ULID, Format, error) {
	if len(s) == ulid.EncodedSize {
		id, err := ulid.ParseStrict(s)
		if err != nil {
			return ulid.ULID{}, "", fmt.Errorf("%w %q: %v", ErrInvalidIdentifier, s, err)
		}
		return id, FormatNative, nil
	}

	if len(s) != 36 {
		return ulid.ULID{}, "", fmt.Errorf("%w %q: expected %d-character ULID or 36-character UUID", ErrInvalidIdentifier, s, ulid.EncodedSize)
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return ulid.ULID{}, "", fmt.Errorf("%w %q: %v", ErrInvalidIdentifier, s, err)
	}
	return ulid.ULID(u), FormatUUID, nil
}
