package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/greenevent/internal/config"
	"github.com/rshade/greenevent/internal/engine"
	"github.com/rshade/greenevent/internal/eventfile"
	"github.com/rshade/greenevent/internal/server"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := server.New(config.Default(), zerolog.Nop())
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func testdata(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "eventfile", "testdata", name))
	require.NoError(t, err)
	return data
}

func post(t *testing.T, ts *httptest.Server, path string, body []byte) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Post(ts.URL+path, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp, buf.Bytes()
}

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
	Field string `json:"field"`
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
}

func TestFootprint(t *testing.T) {
	ts := newTestServer(t)
	resp, body := post(t, ts, "/v1/footprint", testdata(t, "conference.json"))
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var got server.FootprintResponse
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, 100, got.Footprint.Attendees)
	assert.InDelta(t, got.Footprint.Breakdown.Total(), got.Footprint.TotalCarbonKg, 1e-6)
	assert.Equal(t, got.Footprint.PerAttendeeKg, got.Benchmark.PerAttendeeKg)
	require.NotNil(t, got.Equivalencies)
}

func TestFootprint_Validation(t *testing.T) {
	ts := newTestServer(t)
	body := strings.Replace(string(testdata(t, "conference.json")), `"attendees": 100`, `"attendees": 0`, 1)

	resp, raw := post(t, ts, "/v1/footprint", []byte(body))
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var e errorBody
	require.NoError(t, json.Unmarshal(raw, &e))
	assert.Equal(t, "validation_failed", e.Code)
	assert.Contains(t, e.Field, "attendees")
}

func TestFootprint_MalformedAndUnsupported(t *testing.T) {
	ts := newTestServer(t)

	resp, raw := post(t, ts, "/v1/footprint", []byte(`{"name": "x", "bogus": 1}`))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var e errorBody
	require.NoError(t, json.Unmarshal(raw, &e))
	assert.Equal(t, "invalid_request", e.Code)

	body := strings.Replace(string(testdata(t, "conference.json")), `"1.2.0"`, `"2.0.0"`, 1)
	resp, raw = post(t, ts, "/v1/footprint", []byte(body))
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	require.NoError(t, json.Unmarshal(raw, &e))
	assert.Equal(t, "unsupported_schema", e.Code)
}

func TestBodyTooLarge(t *testing.T) {
	cfg := config.Default()
	cfg.Server.MaxBodyBytes = 16
	ts := httptest.NewServer(server.New(cfg, zerolog.Nop()).Handler())
	defer ts.Close()

	resp, raw := post(t, ts, "/v1/footprint", testdata(t, "conference.json"))
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode, string(raw))
}

func TestDetailedFootprint(t *testing.T) {
	ts := newTestServer(t)
	doc, err := eventfile.Load(filepath.Join("..", "eventfile", "testdata", "hybrid_detailed.yaml"))
	require.NoError(t, err)

	body, err := json.Marshal(server.DetailedRequest{EventType: doc.EventType, Event: *doc.Detailed})
	require.NoError(t, err)
	resp, raw := post(t, ts, "/v1/footprint/detailed", body)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))

	var got server.FootprintResponse
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, 200, got.Footprint.Attendees)
	assert.Positive(t, got.Footprint.Breakdown.Venue)
}

func TestDetailedFootprint_Distribution(t *testing.T) {
	cfg := config.Default()
	cfg.Engine.DistributionPolicy = string(engine.DistributionReject)
	ts := httptest.NewServer(server.New(cfg, zerolog.Nop()).Handler())
	defer ts.Close()

	doc, err := eventfile.Load(filepath.Join("..", "eventfile", "testdata", "hybrid_detailed.yaml"))
	require.NoError(t, err)
	doc.Detailed.Travel.Cohorts[0].SharePct = 20

	body, err := json.Marshal(server.DetailedRequest{EventType: doc.EventType, Event: *doc.Detailed})
	require.NoError(t, err)
	resp, raw := post(t, ts, "/v1/footprint/detailed", body)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	var e errorBody
	require.NoError(t, json.Unmarshal(raw, &e))
	assert.Equal(t, "invalid_distribution", e.Code)
}

func TestAssessAndFormats(t *testing.T) {
	ts := newTestServer(t)

	resp, raw := post(t, ts, "/v1/assess", []byte(`{"event_type":"conference","format":"hybrid",
		"attendees":250,"days":2,"hours_per_day":8,"sector":"technology","international":true}`))
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	var est engine.EarlyEstimate
	require.NoError(t, json.Unmarshal(raw, &est))
	assert.Positive(t, est.TotalCarbonKg)

	resp, raw = post(t, ts, "/v1/formats", []byte(`{"attendees":100,"avg_travel_km":500,"days":2}`))
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	var cmp engine.FormatComparison
	require.NoError(t, json.Unmarshal(raw, &cmp))
	assert.Len(t, cmp.Results, 3)
	assert.InDelta(t, 0.5, cmp.InPersonShare, 1e-9)
}

func TestSavingsAndIncentives(t *testing.T) {
	ts := newTestServer(t)
	doc, err := eventfile.Load(filepath.Join("..", "eventfile", "testdata", "conference.yaml"))
	require.NoError(t, err)
	body, err := json.Marshal(doc)
	require.NoError(t, err)

	resp, raw := post(t, ts, "/v1/savings", body)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	var savings server.SavingsResponse
	require.NoError(t, json.Unmarshal(raw, &savings))
	assert.InDelta(t, 6000, savings.Savings.TraditionalTotal, 1e-6)
	assert.LessOrEqual(t, savings.Savings.SustainableTotal, savings.Savings.TraditionalTotal)

	resp, raw = post(t, ts, "/v1/incentives", body)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	var inc server.IncentivesResponse
	require.NoError(t, json.Unmarshal(raw, &inc))
	assert.Equal(t, "us", string(inc.Region))
}

func TestSavings_MissingCosts(t *testing.T) {
	ts := newTestServer(t)
	resp, raw := post(t, ts, "/v1/savings", testdata(t, "conference.json"))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, string(raw))
}

func TestRecommendations(t *testing.T) {
	ts := newTestServer(t)
	resp, raw := post(t, ts, "/v1/recommendations", testdata(t, "conference.json"))
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))

	var recs []engine.Recommendation
	require.NoError(t, json.Unmarshal(raw, &recs))
	require.NotEmpty(t, recs)
	for i := 1; i < len(recs); i++ {
		assert.GreaterOrEqual(t, recs[i-1].Priority, recs[i].Priority)
		assert.Equal(t, i+1, recs[i].Rank)
	}
}

func TestPortfolio(t *testing.T) {
	ts := newTestServer(t)
	p, err := eventfile.LoadPortfolio(filepath.Join("..", "eventfile", "testdata", "portfolio.yaml"))
	require.NoError(t, err)
	body, err := json.Marshal(p)
	require.NoError(t, err)

	resp, raw := post(t, ts, "/v1/portfolio", body)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	var got server.PortfolioResponse
	require.NoError(t, json.Unmarshal(raw, &got))
	require.Len(t, got.Results, 2)
	assert.Equal(t, "kickoff", got.Results[0].Name)
	assert.NotEmpty(t, got.Results[1].Error)
	assert.Equal(t, 1, got.Summary.Failed)
}

func TestNotFoundAndMethod(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/v1/footprint")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/nope")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.New(config.Default(), zerolog.Nop()).Serve(ctx, ln) }()

	require.Eventually(t, func() bool {
		resp, getErr := http.Get("http://" + ln.Addr().String() + "/healthz")
		if getErr != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
