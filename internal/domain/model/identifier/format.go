package identifier

// Format selects the text rendering of an identifier
type Format string

const (
	// FormatNative is the 26-character Crockford Base32 ULID text
	FormatNative Format = "ulid"
	// FormatUUID is the 36-character hyphenated hex UUID text
	FormatUUID Format = "uuid"
)

// String returns the string representation
func (f Format) String() string {
	return string(f)
}

// IsValid validates the format
func (f Format) IsValid() bool {
	switch f {
	case FormatNative, FormatUUID:
		return true
	default:
		return false
	}
}
