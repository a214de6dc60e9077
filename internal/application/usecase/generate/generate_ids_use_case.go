// Package generate runs the identifier generation loop for one invocation.
package generate

import (
	"context"
	"fmt"

	"github.com/oklog/ulid/v2"

	"github.com/YoshitsuguKoike/ulidgen/internal/app/config"
	"github.com/YoshitsuguKoike/ulidgen/internal/application/port/output"
	"github.com/YoshitsuguKoike/ulidgen/internal/domain/model/identifier"
)

// IDGenerator produces one identifier per request
type IDGenerator interface {
	Generate(req identifier.Request) (ulid.ULID, error)
}

// GenerateIDsUseCase generates cfg.Count() identifiers and hands each one
// to the presenter. The previous identifier is threaded into the next
// request so monotonic runs never go backwards.
type GenerateIDsUseCase struct {
	Generator IDGenerator
	Presenter output.IDPresenter
}

// NewGenerateIDsUseCase creates a new use case
func NewGenerateIDsUseCase(gen IDGenerator, presenter output.IDPresenter) *GenerateIDsUseCase {
	return &GenerateIDsUseCase{Generator: gen, Presenter: presenter}
}

// Execute runs the loop. A count of zero presents nothing.
func (uc *GenerateIDsUseCase) Execute(ctx context.Context, cfg config.Config) error {
	var previous *ulid.ULID

	for i := uint(0); i < cfg.Count(); i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		id, err := uc.Generator.Generate(identifier.Request{
			Monotonic: cfg.Monotonic(),
			Date:      cfg.Date(),
			Previous:  previous,
		})
		if err != nil {
			return fmt.Errorf("identifier %d of %d: %w", i+1, cfg.Count(), err)
		}

		if err := uc.Presenter.PresentID(id); err != nil {
			return fmt.Errorf("failed to write identifier: %w", err)
		}
		previous = &id
	}

	if err := uc.Presenter.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}
