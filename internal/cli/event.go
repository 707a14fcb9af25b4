package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/rshade/greenevent/internal/config"
	"github.com/rshade/greenevent/internal/engine"
	"github.com/rshade/greenevent/internal/eventfile"
	"github.com/rshade/greenevent/internal/factors"
	"github.com/rshade/greenevent/internal/logging"
)

// errNoDetailed is returned by --detailed for a document without a detailed section.
var errNoDetailed = errors.New("document has no detailed section")

// loadDocument reads and validates an event document.
func loadDocument(ctx context.Context, path string) (*eventfile.Document, error) {
	log := logging.FromContext(ctx)

	doc, err := eventfile.Load(path)
	if err != nil {
		log.Error().Ctx(ctx).Err(err).Str("path", path).Msg("failed to load event document")
		return nil, err
	}
	log.Debug().Ctx(ctx).
		Str("path", path).
		Str("event", doc.Name).
		Str("event_type", string(doc.EventType)).
		Str("format", string(doc.Format)).
		Bool("detailed", doc.Detailed != nil).
		Msg("event document loaded")
	return doc, nil
}

// computeFootprint computes the footprint of doc. The detailed section is used
// when asked for, or when it is the only one present.
func computeFootprint(ctx context.Context, doc *eventfile.Document, detailed bool) (engine.FootprintResult, error) {
	log := logging.FromContext(ctx)
	cfg := config.GetGlobalConfig()

	var (
		fp  engine.FootprintResult
		err error
	)
	switch {
	case detailed || !doc.HasConfiguration():
		if doc.Detailed == nil {
			return engine.FootprintResult{}, fmt.Errorf("%s: %w", doc.Name, errNoDetailed)
		}
		fp, err = engine.CalculateDetailedFootprint(*doc.Detailed, cfg.TravelOptions())
	default:
		fp, err = engine.CalculateFootprint(doc.Configuration)
	}
	if err != nil {
		log.Error().Ctx(ctx).Err(err).Str("event", doc.Name).Msg("footprint calculation failed")
		return engine.FootprintResult{}, fmt.Errorf("calculating footprint: %w", err)
	}

	for _, w := range fp.Warnings {
		log.Warn().Ctx(ctx).Str("event", doc.Name).Msg(w)
	}
	log.Debug().Ctx(ctx).
		Float64("total_carbon_kg", fp.TotalCarbonKg).
		Float64("green_score", fp.GreenScore).
		Msg("footprint calculated")
	return fp, nil
}

// documentRegion is the document region, or the configured default.
func documentRegion(doc *eventfile.Document) factors.Region {
	if doc.Region != "" {
		return doc.Region
	}
	return factors.Region(config.GetGlobalConfig().Engine.Region)
}
