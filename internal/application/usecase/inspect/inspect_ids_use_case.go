// Package inspect decodes identifiers given in either text form.
package inspect

import (
	"context"

	"github.com/YoshitsuguKoike/ulidgen/internal/application/port/output"
	"github.com/YoshitsuguKoike/ulidgen/internal/domain/model/identifier"
)

// InspectIDsUseCase decodes every input before presenting any of them,
// so a bad argument produces no partial output.
type InspectIDsUseCase struct {
	Presenter output.InspectionPresenter
}

// NewInspectIDsUseCase creates a new use case
func NewInspectIDsUseCase(presenter output.InspectionPresenter) *InspectIDsUseCase {
	return &InspectIDsUseCase{Presenter: presenter}
}

// Execute decodes inputs and presents them in order
func (uc *InspectIDsUseCase) Execute(ctx context.Context, inputs []string) error {
	decoded := make([]output.Inspection, 0, len(inputs))
	for _, in := range inputs {
		id, format, err := identifier.Parse(in)
		if err != nil {
			return err
		}
		decoded = append(decoded, output.Inspection{Input: in, Format: format, ID: id})
	}

	for _, in := range decoded {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := uc.Presenter.PresentInspection(in); err != nil {
			return err
		}
	}
	return uc.Presenter.Close()
}
