// Package eventfile loads event documents and portfolios from YAML or JSON.
//
// An event document names the event, classifies it (event type, format,
// region) and carries the configuration the engine evaluates. Optional
// sections hold traditional costs for savings analysis and full profiles for
// a detailed footprint.
package eventfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/rshade/greenevent/internal/engine"
	"github.com/rshade/greenevent/internal/factors"
)

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

const (
	// ErrUnsupportedSchema is returned for a schema_version outside SupportedSchemaRange.
	ErrUnsupportedSchema = constError("unsupported schema version")
	// ErrInvalidDocument is returned for a document that cannot be evaluated.
	ErrInvalidDocument = constError("invalid event document")
)

const (
	// CurrentSchemaVersion is written by `config init` templates and assumed when absent.
	CurrentSchemaVersion = "1.0.0"
	// SupportedSchemaRange is the semver constraint documents must satisfy.
	SupportedSchemaRange = "^1.0"
)

// Encoding selects the document syntax.
type Encoding string

const (
	EncodingYAML Encoding = "yaml"
	EncodingJSON Encoding = "json"
)

// EncodingForPath picks JSON for .json files and YAML otherwise.
func EncodingForPath(path string) Encoding {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return EncodingJSON
	}
	return EncodingYAML
}

// Costs are the traditional (unoptimised) spend per category. Region,
// attendees, days and adoption come from the surrounding document.
type Costs struct {
	Venue         float64 `json:"venue"          yaml:"venue"`
	Energy        float64 `json:"energy"         yaml:"energy"`
	Catering      float64 `json:"catering"       yaml:"catering"`
	Transport     float64 `json:"transport"      yaml:"transport"`
	Materials     float64 `json:"materials"      yaml:"materials"`
	WasteDisposal float64 `json:"waste_disposal" yaml:"waste_disposal"`
}

// Document is one event.
type Document struct {
	SchemaVersion string                    `json:"schema_version"     yaml:"schema_version"`
	Name          string                    `json:"name"               yaml:"name"`
	EventType     factors.EventType         `json:"event_type"         yaml:"event_type"`
	Format        factors.EventFormat       `json:"format"             yaml:"format"`
	Region        factors.Region            `json:"region,omitempty"   yaml:"region,omitempty"`
	Adoption      factors.AdoptionTier      `json:"adoption,omitempty" yaml:"adoption,omitempty"`
	Configuration engine.EventConfiguration `json:"configuration"      yaml:"configuration"`
	Costs         *Costs                    `json:"costs,omitempty"    yaml:"costs,omitempty"`
	Detailed      *engine.DetailedEvent     `json:"detailed,omitempty" yaml:"detailed,omitempty"`
}

// CheckSchemaVersion accepts "" (treated as CurrentSchemaVersion) and any
// version satisfying SupportedSchemaRange.
func CheckSchemaVersion(v string) error {
	if v == "" {
		return nil
	}
	version, err := semver.NewVersion(v)
	if err != nil {
		return fmt.Errorf("%w: %q is not a semantic version", ErrUnsupportedSchema, v)
	}
	constraint, err := semver.NewConstraint(SupportedSchemaRange)
	if err != nil {
		return fmt.Errorf("parsing schema constraint: %w", err)
	}
	if !constraint.Check(version) {
		return fmt.Errorf("%w: %s does not satisfy %s", ErrUnsupportedSchema, v, SupportedSchemaRange)
	}
	return nil
}

// HasConfiguration reports whether the coarse configuration section is set.
func (d *Document) HasConfiguration() bool {
	return d.Configuration != (engine.EventConfiguration{})
}

// Validate checks the schema version, the classification enums and the
// configuration. Region and adoption are optional. A document carrying only a
// detailed section skips the coarse configuration check.
func (d *Document) Validate() error {
	if err := CheckSchemaVersion(d.SchemaVersion); err != nil {
		return err
	}
	if _, ok := factors.BenchmarkFor(d.EventType); !ok {
		return fmt.Errorf("%w: unknown event_type %q", ErrInvalidDocument, d.EventType)
	}
	if _, ok := factors.FormatExperience(d.Format); !ok {
		return fmt.Errorf("%w: unknown format %q", ErrInvalidDocument, d.Format)
	}
	if d.Region != "" {
		if _, ok := factors.PricingFor(d.Region); !ok {
			return fmt.Errorf("%w: unknown region %q", ErrInvalidDocument, d.Region)
		}
	}
	if d.Adoption != "" {
		if _, ok := factors.AdoptionMultiplier(d.Adoption); !ok {
			return fmt.Errorf("%w: unknown adoption %q", ErrInvalidDocument, d.Adoption)
		}
	}
	if d.Detailed != nil && !d.HasConfiguration() {
		return nil
	}
	if err := d.Configuration.Validate(); err != nil {
		return fmt.Errorf("configuration: %w", err)
	}
	return nil
}

// CostInputs combines the costs section with the document's classification.
// Empty region and adoption fall back to the given defaults.
func (d *Document) CostInputs(defaultRegion factors.Region, defaultAdoption factors.AdoptionTier) (engine.CostInputs, error) {
	if d.Costs == nil {
		return engine.CostInputs{}, fmt.Errorf("%w: document %q has no costs section", ErrInvalidDocument, d.Name)
	}
	region := d.Region
	if region == "" {
		region = defaultRegion
	}
	adoption := d.Adoption
	if adoption == "" {
		adoption = defaultAdoption
	}
	return engine.CostInputs{
		Venue:         d.Costs.Venue,
		Energy:        d.Costs.Energy,
		Catering:      d.Costs.Catering,
		Transport:     d.Costs.Transport,
		Materials:     d.Costs.Materials,
		WasteDisposal: d.Costs.WasteDisposal,
		Region:        region,
		Attendees:     d.Configuration.Transport.Attendees,
		Days:          d.Configuration.Venue.Days,
		Adoption:      adoption,
	}, nil
}

// Load reads and validates a document from path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading event document: %w", err)
	}
	doc, err := Parse(data, EncodingForPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes and validates a document. Unknown fields are rejected.
func Parse(data []byte, enc Encoding) (*Document, error) {
	var doc Document
	if err := decode(data, enc, &doc); err != nil {
		return nil, err
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Decode decodes a document from r without validating it. The server uses it
// so validation failures can be reported separately from syntax errors.
func Decode(r io.Reader, enc Encoding, v any) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading body: %w", err)
	}
	return decode(data, enc, v)
}

func decode(data []byte, enc Encoding, v any) error {
	switch enc {
	case EncodingJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(v); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
		}
	case EncodingYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(v); err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("%w: empty document", ErrInvalidDocument)
			}
			return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
		}
	default:
		return fmt.Errorf("unknown encoding %q", enc)
	}
	return nil
}
