package batch

import (
	"context"
	"math"

	"github.com/rshade/greenevent/internal/engine"
	"github.com/rshade/greenevent/internal/factors"
	"github.com/rshade/greenevent/internal/logging"
)

// Entry is one event of a portfolio. An entry with a Detailed section and no
// Configuration is evaluated with the detailed calculator.
type Entry struct {
	Name          string                    `json:"name"`
	EventType     factors.EventType         `json:"event_type"`
	Format        factors.EventFormat       `json:"format"`
	Configuration engine.EventConfiguration `json:"configuration"`
	Detailed      *engine.DetailedEvent     `json:"detailed,omitempty"`

	// Travel applies to the detailed calculator only.
	Travel engine.TravelOptions `json:"-"`

	// Validate, when set, runs before the footprint and fails only this entry.
	Validate func() error `json:"-"`
}

// usesDetailed reports whether the entry carries only a detailed section.
func (e Entry) usesDetailed() bool {
	return e.Detailed != nil && e.Configuration == (engine.EventConfiguration{})
}

// Result is the evaluation of one entry. Exactly one of Footprint and Error is set.
type Result struct {
	Index           int                     `json:"index"`
	Name            string                  `json:"name"`
	Footprint       *engine.FootprintResult `json:"footprint,omitempty"`
	Benchmark       *engine.BenchmarkResult `json:"benchmark,omitempty"`
	Recommendations []engine.Recommendation `json:"recommendations,omitempty"`
	Error           string                  `json:"error,omitempty"`
	Err             error                   `json:"-"`
}

// Summary aggregates the successful results of a portfolio.
type Summary struct {
	Events           int     `json:"events"`
	Failed           int     `json:"failed"`
	TotalCarbonKg    float64 `json:"total_carbon_kg"`
	TotalAttendees   int     `json:"total_attendees"`
	PerAttendeeKg    float64 `json:"per_attendee_kg"`
	AverageScore     float64 `json:"average_green_score"`
	BestEvent        string  `json:"best_event,omitempty"`
	WorstEvent       string  `json:"worst_event,omitempty"`
	PotentialSavings float64 `json:"potential_savings_kg"`
}

// Options tunes portfolio evaluation. Zero values select the defaults.
type Options struct {
	ChunkSize   int
	Concurrency int
	OnProgress  ProgressCallback
}

// Evaluate computes footprint, benchmark and recommendations for every entry.
// Results are returned in input order. An invalid entry fails only its own result;
// the returned error is non-nil only for bad options or cancellation.
func Evaluate(ctx context.Context, entries []Entry, opts Options) ([]Result, Summary, error) {
	logger := logging.FromContext(ctx).With().
		Str("component", "batch").
		Str("operation", "evaluate_portfolio").
		Logger()

	if len(entries) == 0 {
		return nil, Summary{}, ErrEmptyItems
	}
	chunkSize := opts.ChunkSize
	if chunkSize == 0 {
		chunkSize = DefaultChunkSize
	}
	concurrency := opts.Concurrency
	if concurrency == 0 {
		concurrency = DefaultConcurrency
	}
	proc, err := NewProcessor[Entry](chunkSize)
	if err != nil {
		return nil, Summary{}, err
	}
	proc.WithProgressCallback(opts.OnProgress)

	logger.Debug().Ctx(ctx).
		Int("events", len(entries)).
		Int("chunk_size", proc.ChunkSize()).
		Int("concurrency", concurrency).
		Msg("evaluating portfolio")

	// Each chunk writes a disjoint range of results.
	results := make([]Result, len(entries))
	err = proc.Process(ctx, entries, func(ctx context.Context, chunk []Entry, offset int) error {
		for i, e := range chunk {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[offset+i] = evaluateEntry(offset+i, e)
		}
		return nil
	}, concurrency)
	if err != nil {
		return nil, Summary{}, err
	}

	summary := Summarize(results)
	logger.Info().Ctx(ctx).
		Int("events", summary.Events).
		Int("failed", summary.Failed).
		Float64("total_carbon_kg", summary.TotalCarbonKg).
		Msg("portfolio evaluated")
	return results, summary, nil
}

func evaluateEntry(index int, e Entry) Result {
	r := Result{Index: index, Name: e.Name}
	fail := func(err error) Result {
		r.Footprint, r.Benchmark, r.Recommendations = nil, nil, nil
		r.Err = err
		r.Error = err.Error()
		return r
	}

	if e.Validate != nil {
		if err := e.Validate(); err != nil {
			return fail(err)
		}
	}

	var (
		fp  engine.FootprintResult
		err error
	)
	if e.usesDetailed() {
		fp, err = engine.CalculateDetailedFootprint(*e.Detailed, e.Travel)
	} else {
		fp, err = engine.CalculateFootprint(e.Configuration)
	}
	if err != nil {
		return fail(err)
	}
	r.Footprint = &fp

	bench, err := engine.BenchmarkFootprint(fp, fp.Attendees, e.EventType)
	if err != nil {
		return fail(err)
	}
	r.Benchmark = &bench

	recs, err := engine.GenerateRecommendations(fp.Breakdown, e.EventType, e.Format)
	if err != nil {
		return fail(err)
	}
	r.Recommendations = recs
	return r
}

// Summarize aggregates results; failed entries are counted but not summed.
func Summarize(results []Result) Summary {
	s := Summary{Events: len(results)}
	best, worst := math.Inf(1), math.Inf(-1)
	var scoreSum float64
	for _, r := range results {
		if r.Footprint == nil {
			s.Failed++
			continue
		}
		fp := r.Footprint
		s.TotalCarbonKg += fp.TotalCarbonKg
		s.TotalAttendees += fp.Attendees
		scoreSum += fp.GreenScore
		if fp.PerAttendeeKg < best {
			best, s.BestEvent = fp.PerAttendeeKg, r.Name
		}
		if fp.PerAttendeeKg > worst {
			worst, s.WorstEvent = fp.PerAttendeeKg, r.Name
		}
		for _, rec := range r.Recommendations {
			s.PotentialSavings += rec.EstimatedSavingsKg
		}
	}
	if ok := s.Events - s.Failed; ok > 0 {
		s.AverageScore = scoreSum / float64(ok)
	}
	if s.TotalAttendees > 0 {
		s.PerAttendeeKg = s.TotalCarbonKg / float64(s.TotalAttendees)
	}
	return s
}
