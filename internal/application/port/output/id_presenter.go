package output

import (
	"github.com/oklog/ulid/v2"

	"github.com/YoshitsuguKoike/ulidgen/internal/domain/model/identifier"
)

// IDPresenter writes generated identifiers, one per call
type IDPresenter interface {
	// PresentID renders a single identifier
	PresentID(id ulid.ULID) error

	// Flush writes out anything still buffered
	Flush() error
}

// InspectionPresenter writes decoded identifiers
type InspectionPresenter interface {
	// PresentInspection renders the decoded form of one input
	PresentInspection(in Inspection) error

	// Close finishes the output stream
	Close() error
}

// Inspection is one decoded identifier together with the text it came from
type Inspection struct {
	Input  string
	Format identifier.Format
	ID     ulid.ULID
}
