package eventfile

import (
	"fmt"
	"os"

	"github.com/rshade/greenevent/internal/engine"
	"github.com/rshade/greenevent/internal/engine/batch"
)

// Portfolio is a set of events evaluated together.
type Portfolio struct {
	SchemaVersion string     `json:"schema_version" yaml:"schema_version"`
	Name          string     `json:"name"           yaml:"name"`
	Events        []Document `json:"events"         yaml:"events"`
}

// LoadPortfolio reads a portfolio from path. Events are not validated here:
// batch evaluation reports each invalid event in its own result.
func LoadPortfolio(path string) (*Portfolio, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading portfolio: %w", err)
	}
	var p Portfolio
	if err := decode(data, EncodingForPath(path), &p); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := CheckSchemaVersion(p.SchemaVersion); err != nil {
		return nil, err
	}
	if len(p.Events) == 0 {
		return nil, fmt.Errorf("%w: portfolio %q has no events", ErrInvalidDocument, p.Name)
	}
	return &p, nil
}

// Entries converts the portfolio into batch entries in file order. Unnamed
// events are called "event-<n>", counting from 1. Each entry validates its own
// document when evaluated, and travel applies to detailed-only events.
func (p *Portfolio) Entries(travel engine.TravelOptions) []batch.Entry {
	entries := make([]batch.Entry, len(p.Events))
	for i := range p.Events {
		doc := &p.Events[i]
		name := doc.Name
		if name == "" {
			name = fmt.Sprintf("event-%d", i+1)
		}
		entries[i] = batch.Entry{
			Name:          name,
			EventType:     doc.EventType,
			Format:        doc.Format,
			Configuration: doc.Configuration,
			Detailed:      doc.Detailed,
			Travel:        travel,
			Validate:      doc.Validate,
		}
	}
	return entries
}
