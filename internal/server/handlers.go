package server

import (
	"fmt"
	"net/http"

	"github.com/rshade/greenevent/internal/engine"
	"github.com/rshade/greenevent/internal/engine/batch"
	"github.com/rshade/greenevent/internal/eventfile"
	"github.com/rshade/greenevent/internal/factors"
	"github.com/rshade/greenevent/internal/greenops"
)

// FootprintResponse is returned by the footprint endpoints.
type FootprintResponse struct {
	Footprint     engine.FootprintResult      `json:"footprint"`
	Benchmark     engine.BenchmarkResult      `json:"benchmark"`
	Equivalencies *greenops.EquivalencyOutput `json:"equivalencies,omitempty"`
}

// DetailedRequest is the body of POST /v1/footprint/detailed.
type DetailedRequest struct {
	EventType factors.EventType    `json:"event_type"`
	Event     engine.DetailedEvent `json:"event"`
}

// FormatsRequest is the body of POST /v1/formats. A nil InPersonShare selects
// the configured default.
type FormatsRequest struct {
	Attendees     int      `json:"attendees"`
	AvgTravelKm   float64  `json:"avg_travel_km"`
	Days          int      `json:"days"`
	InPersonShare *float64 `json:"in_person_share,omitempty"`
}

// SavingsResponse is returned by POST /v1/savings.
type SavingsResponse struct {
	Savings       engine.CostSavingsResult    `json:"savings"`
	Equivalencies *greenops.EquivalencyOutput `json:"equivalencies,omitempty"`
}

// IncentivesResponse is returned by POST /v1/incentives.
type IncentivesResponse struct {
	Region     factors.Region        `json:"region"`
	GreenScore float64               `json:"green_score"`
	Incentives []engine.TaxIncentive `json:"incentives"`
	TotalValue float64               `json:"total_value"`
}

// PortfolioResponse is returned by POST /v1/portfolio.
type PortfolioResponse struct {
	Name    string         `json:"name,omitempty"`
	Results []batch.Result `json:"results"`
	Summary batch.Summary  `json:"summary"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// decodeDocument decodes and validates an event document body.
func decodeDocument(r *http.Request) (*eventfile.Document, error) {
	var doc eventfile.Document
	if err := eventfile.Decode(r.Body, eventfile.EncodingJSON, &doc); err != nil {
		return nil, err
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// footprintOf computes the coarse footprint, or the detailed one when the
// document carries only a detailed section.
func (s *Server) footprintOf(doc *eventfile.Document) (engine.FootprintResult, error) {
	if doc.Detailed != nil && !doc.HasConfiguration() {
		return engine.CalculateDetailedFootprint(*doc.Detailed, s.cfg.TravelOptions())
	}
	return engine.CalculateFootprint(doc.Configuration)
}

func (s *Server) footprintResponse(fp engine.FootprintResult, t factors.EventType) (FootprintResponse, error) {
	bench, err := engine.BenchmarkFootprint(fp, fp.Attendees, t)
	if err != nil {
		return FootprintResponse{}, err
	}
	resp := FootprintResponse{Footprint: fp, Benchmark: bench}
	eq, err := greenops.ForFootprint(fp)
	if err != nil {
		return FootprintResponse{}, err
	}
	if !eq.IsEmpty {
		resp.Equivalencies = &eq
	}
	return resp, nil
}

func (s *Server) handleFootprint(w http.ResponseWriter, r *http.Request) {
	doc, err := decodeDocument(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	fp, err := s.footprintOf(doc)
	if err != nil {
		respondError(w, r, err)
		return
	}
	resp, err := s.footprintResponse(fp, doc.EventType)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDetailedFootprint(w http.ResponseWriter, r *http.Request) {
	var req DetailedRequest
	if err := eventfile.Decode(r.Body, eventfile.EncodingJSON, &req); err != nil {
		respondError(w, r, err)
		return
	}
	fp, err := engine.CalculateDetailedFootprint(req.Event, s.cfg.TravelOptions())
	if err != nil {
		respondError(w, r, err)
		return
	}
	resp, err := s.footprintResponse(fp, req.EventType)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleBenchmark(w http.ResponseWriter, r *http.Request) {
	doc, err := decodeDocument(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	fp, err := s.footprintOf(doc)
	if err != nil {
		respondError(w, r, err)
		return
	}
	bench, err := engine.BenchmarkFootprint(fp, fp.Attendees, doc.EventType)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, bench)
}

func (s *Server) handleAssess(w http.ResponseWriter, r *http.Request) {
	var profile engine.EventProfile
	if err := eventfile.Decode(r.Body, eventfile.EncodingJSON, &profile); err != nil {
		respondError(w, r, err)
		return
	}
	est, err := engine.PreAssess(profile)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, est)
}

func (s *Server) handleFormats(w http.ResponseWriter, r *http.Request) {
	var req FormatsRequest
	if err := eventfile.Decode(r.Body, eventfile.EncodingJSON, &req); err != nil {
		respondError(w, r, err)
		return
	}
	share := s.cfg.Engine.InPersonShare
	if req.InPersonShare != nil {
		share = *req.InPersonShare
	}
	cmp, err := engine.CompareFormatsWithShare(req.Attendees, req.AvgTravelKm, req.Days, share)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cmp)
}

func (s *Server) handleSavings(w http.ResponseWriter, r *http.Request) {
	doc, err := decodeDocument(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if !doc.HasConfiguration() {
		respondError(w, r, fmt.Errorf("%w: savings need a configuration section", eventfile.ErrInvalidDocument))
		return
	}
	in, err := doc.CostInputs(factors.Region(s.cfg.Engine.Region), factors.AdoptionTier(s.cfg.Engine.Adoption))
	if err != nil {
		respondError(w, r, err)
		return
	}
	fp, err := engine.CalculateFootprint(doc.Configuration)
	if err != nil {
		respondError(w, r, err)
		return
	}
	res, err := engine.CalculateCostSavings(doc.Configuration, fp, in)
	if err != nil {
		respondError(w, r, err)
		return
	}
	resp := SavingsResponse{Savings: res}
	if eq, eqErr := greenops.ForSavings(res); eqErr == nil && !eq.IsEmpty {
		resp.Equivalencies = &eq
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleIncentives(w http.ResponseWriter, r *http.Request) {
	doc, err := decodeDocument(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	fp, err := s.footprintOf(doc)
	if err != nil {
		respondError(w, r, err)
		return
	}
	region := doc.Region
	if region == "" {
		region = factors.Region(s.cfg.Engine.Region)
	}
	incentives, err := engine.ApplicableTaxIncentives(region, fp)
	if err != nil {
		respondError(w, r, err)
		return
	}
	resp := IncentivesResponse{Region: region, GreenScore: fp.GreenScore, Incentives: incentives}
	for _, inc := range incentives {
		resp.TotalValue += inc.EstimatedValue
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	doc, err := decodeDocument(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	fp, err := s.footprintOf(doc)
	if err != nil {
		respondError(w, r, err)
		return
	}
	recs, err := engine.GenerateRecommendations(fp.Breakdown, doc.EventType, doc.Format)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, recs)
}

func (s *Server) handlePortfolio(w http.ResponseWriter, r *http.Request) {
	var p eventfile.Portfolio
	if err := eventfile.Decode(r.Body, eventfile.EncodingJSON, &p); err != nil {
		respondError(w, r, err)
		return
	}
	if err := eventfile.CheckSchemaVersion(p.SchemaVersion); err != nil {
		respondError(w, r, err)
		return
	}
	if len(p.Events) == 0 {
		respondError(w, r, fmt.Errorf("%w: portfolio has no events", eventfile.ErrInvalidDocument))
		return
	}
	results, summary, err := batch.Evaluate(r.Context(), p.Entries(s.cfg.TravelOptions()), batch.Options{
		ChunkSize:   s.cfg.Engine.ChunkSize,
		Concurrency: s.cfg.Engine.Concurrency,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, PortfolioResponse{Name: p.Name, Results: results, Summary: summary})
}
