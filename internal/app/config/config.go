package config

import (
	"fmt"

	"github.com/YoshitsuguKoike/ulidgen/internal/domain/model/identifier"
	"github.com/YoshitsuguKoike/ulidgen/internal/domain/model/seed"
)

// Config provides read-only access to a validated run configuration.
// It decouples flag parsing from generation.
type Config interface {
	Count() uint               // Number of identifiers to print (--nb)
	Format() identifier.Format // Text rendering (--uuid)
	Date() *seed.DateSeed      // Fixed date, nil for the system clock (--date)
	Monotonic() bool           // Monotonic sequence within the run (--monotonic)
}

// Flags holds raw command-line values before validation
type Flags struct {
	Count     uint
	UUID      bool
	Date      *string // nil when --date was not given
	Monotonic bool
}

// AppConfig is the concrete implementation of Config interface.
type AppConfig struct {
	count     uint
	format    identifier.Format
	date      *seed.DateSeed
	monotonic bool
}

// Load validates raw flags into an AppConfig.
// A given date is always parsed, even when empty.
// Date errors are returned unwrapped so callers can match
// *seed.ParseError and *seed.RangeError.
func Load(f Flags) (*AppConfig, error) {
	format := identifier.FormatNative
	if f.UUID {
		format = identifier.FormatUUID
	}

	var date *seed.DateSeed
	if f.Date != nil {
		d, err := seed.Parse(*f.Date)
		if err != nil {
			return nil, err
		}
		date = &d
	}

	return NewAppConfig(f.Count, format, date, f.Monotonic)
}

// NewAppConfig creates an AppConfig from already-typed values
func NewAppConfig(count uint, format identifier.Format, date *seed.DateSeed, monotonic bool) (*AppConfig, error) {
	if !format.IsValid() {
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	return &AppConfig{count: count, format: format, date: date, monotonic: monotonic}, nil
}

// Count returns the number of identifiers to generate
func (c *AppConfig) Count() uint {
	return c.count
}

// Format returns the text rendering
func (c *AppConfig) Format() identifier.Format {
	return c.format
}

// Date returns the date seed, or nil when the system clock is used
func (c *AppConfig) Date() *seed.DateSeed {
	return c.date
}

// Monotonic returns whether identifiers form a monotonic sequence
func (c *AppConfig) Monotonic() bool {
	return c.monotonic
}
