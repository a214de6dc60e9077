// Package identifier generates ULIDs, either fresh or as the monotonic
// successor of a previous value, and decodes them from text.
package identifier

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/YoshitsuguKoike/ulidgen/internal/domain/model/seed"
)

// ErrMonotonicOverflow is returned when a successor would need a timestamp
// beyond ulid.MaxTime.
var ErrMonotonicOverflow = errors.New("monotonic successor overflows the maximum ULID timestamp")

// entropy bytes occupy ulid.ULID[6:16]
const entropyOffset = 6

// Request describes a single generation call
type Request struct {
	Monotonic bool
	Date      *seed.DateSeed // nil means the current clock
	Previous  *ulid.ULID     // nil on the first iteration
}

// Generator produces ULIDs from an injected clock and random source
type Generator struct {
	Now     func() time.Time // Time provider (for testing)
	Entropy io.Reader        // Random source for fresh entropy (for testing)
}

// NewGenerator returns a Generator backed by the system clock and crypto/rand
func NewGenerator() *Generator {
	return &Generator{Now: time.Now, Entropy: rand.Reader}
}

// Generate returns the next identifier for req.
//
// With Monotonic set and a Previous value, the result is strictly greater
// than Previous. When the requested timestamp is not ahead of Previous, the
// timestamp of Previous is kept and its entropy is incremented by one. If the
// entropy is already at its maximum, the timestamp advances by one
// millisecond and fresh entropy is drawn.
//
// Otherwise a fresh identifier is drawn at the requested timestamp.
func (g *Generator) Generate(req Request) (ulid.ULID, error) {
	ms := g.timestamp(req.Date)

	if req.Monotonic && req.Previous != nil {
		return g.successor(*req.Previous, ms)
	}
	return g.fresh(ms)
}

func (g *Generator) timestamp(date *seed.DateSeed) uint64 {
	now := g.Now()
	if date != nil {
		return date.Timestamp(now)
	}
	return ulid.Timestamp(now)
}

func (g *Generator) fresh(ms uint64) (ulid.ULID, error) {
	id, err := ulid.New(ms, g.Entropy)
	if err != nil {
		return ulid.ULID{}, fmt.Errorf("failed to generate ULID: %w", err)
	}
	return id, nil
}

func (g *Generator) successor(prev ulid.ULID, ms uint64) (ulid.ULID, error) {
	if ms > prev.Time() {
		return g.fresh(ms)
	}

	next := prev
	if incrementEntropy(&next) {
		return next, nil
	}

	tick := prev.Time() + 1
	if tick > ulid.MaxTime() {
		return ulid.ULID{}, ErrMonotonicOverflow
	}
	return g.fresh(tick)
}

// incrementEntropy adds one to the 80-bit entropy of id with carry.
// It reports false when the entropy wrapped around to zero.
func incrementEntropy(id *ulid.ULID) bool {
	for i := len(*id) - 1; i >= entropyOffset; i-- {
		(*id)[i]++
		if (*id)[i] != 0 {
			return true
		}
	}
	return false
}
