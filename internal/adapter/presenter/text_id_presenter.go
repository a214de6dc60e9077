package presenter

import (
	"bufio"
	"io"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/YoshitsuguKoike/ulidgen/internal/application/port/output"
	"github.com/YoshitsuguKoike/ulidgen/internal/domain/model/identifier"
)

// Render returns id in the requested text form.
// The UUID form writes the 128 bits through unchanged; no version or
// variant bits are set.
func Render(id ulid.ULID, format identifier.Format) string {
	if format == identifier.FormatUUID {
		return uuid.UUID(id).String()
	}
	return id.String()
}

// TextIDPresenter implements output.IDPresenter as one identifier per line
type TextIDPresenter struct {
	output *bufio.Writer
	format identifier.Format
}

// NewTextIDPresenter creates a new line-oriented identifier presenter
func NewTextIDPresenter(w io.Writer, format identifier.Format) output.IDPresenter {
	return &TextIDPresenter{output: bufio.NewWriter(w), format: format}
}

// PresentID writes the rendered identifier followed by a newline
func (p *TextIDPresenter) PresentID(id ulid.ULID) error {
	if _, err := p.output.WriteString(Render(id, p.format)); err != nil {
		return err
	}
	return p.output.WriteByte('\n')
}

// Flush writes any buffered lines to the underlying writer
func (p *TextIDPresenter) Flush() error {
	return p.output.Flush()
}
