package inspect_test

import (
	"context"
	"errors"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YoshitsuguKoike/ulidgen/internal/application/port/output"
	"github.com/YoshitsuguKoike/ulidgen/internal/application/usecase/inspect"
	"github.com/YoshitsuguKoike/ulidgen/internal/domain/model/identifier"
)

type MockInspectionPresenter struct {
	Inspections []output.Inspection
	Closed      bool
}

func (m *MockInspectionPresenter) PresentInspection(in output.Inspection) error {
	m.Inspections = append(m.Inspections, in)
	return nil
}

func (m *MockInspectionPresenter) Close() error {
	m.Closed = true
	return nil
}

func TestExecute_DecodesBothForms(t *testing.T) {
	p := &MockInspectionPresenter{}
	uc := inspect.NewInspectIDsUseCase(p)

	err := uc.Execute(context.Background(), []string{
		"01ARZ3NDEKTSV4RRFFQ69G5FAV",
		"01563e3a-b5d3-d676-4c61-efb99302bd5b",
	})
	require.NoError(t, err)

	require.Len(t, p.Inspections, 2)
	want := ulid.MustParse("01ARZ3NDEKTSV4RRFFQ69G5FAV")
	assert.Equal(t, identifier.FormatNative, p.Inspections[0].Format)
	assert.Equal(t, identifier.FormatUUID, p.Inspections[1].Format)
	assert.Equal(t, want, p.Inspections[0].ID)
	assert.Equal(t, want, p.Inspections[1].ID)
	assert.True(t, p.Closed)
}

func TestExecute_InvalidInputPresentsNothing(t *testing.T) {
	p := &MockInspectionPresenter{}
	uc := inspect.NewInspectIDsUseCase(p)

	err := uc.Execute(context.Background(), []string{"01ARZ3NDEKTSV4RRFFQ69G5FAV", "bogus"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, identifier.ErrInvalidIdentifier))
	assert.Empty(t, p.Inspections)
	assert.False(t, p.Closed)
}
