package presenter

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"gopkg.in/yaml.v3"

	"github.com/YoshitsuguKoike/ulidgen/internal/application/port/output"
)

const inspectionTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// inspectionDocument is the YAML shape of a decoded identifier
type inspectionDocument struct {
	Input       string `yaml:"input"`
	Format      string `yaml:"format"`
	ULID        string `yaml:"ulid"`
	UUID        string `yaml:"uuid"`
	TimestampMs uint64 `yaml:"timestamp_ms"`
	Time        string `yaml:"time"`
	Entropy     string `yaml:"entropy"`
}

// YAMLInspectionPresenter implements output.InspectionPresenter,
// writing one YAML document per identifier
type YAMLInspectionPresenter struct {
	encoder *yaml.Encoder
}

// NewYAMLInspectionPresenter creates a new YAML inspection presenter
func NewYAMLInspectionPresenter(w io.Writer) output.InspectionPresenter {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	return &YAMLInspectionPresenter{encoder: enc}
}

// PresentInspection encodes a single decoded identifier
func (p *YAMLInspectionPresenter) PresentInspection(in output.Inspection) error {
	if err := p.encoder.Encode(newInspectionDocument(in)); err != nil {
		return fmt.Errorf("failed to encode inspection of %s: %w", in.Input, err)
	}
	return nil
}

// Close flushes the YAML stream
func (p *YAMLInspectionPresenter) Close() error {
	return p.encoder.Close()
}

func newInspectionDocument(in output.Inspection) inspectionDocument {
	return inspectionDocument{
		Input:       in.Input,
		Format:      in.Format.String(),
		ULID:        in.ID.String(),
		UUID:        uuid.UUID(in.ID).String(),
		TimestampMs: in.ID.Time(),
		Time:        ulid.Time(in.ID.Time()).UTC().Format(inspectionTimeLayout),
		Entropy:     hex.EncodeToString(in.ID.Entropy()),
	}
}
