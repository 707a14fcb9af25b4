package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/rshade/greenevent/internal/config"
	"github.com/rshade/greenevent/internal/logging"
	"github.com/rshade/greenevent/internal/tui"
)

// tabPadding is the minimum column padding for tabwriter output.
const tabPadding = 2

// ErrUnsupportedOutput is returned for an --output value other than table, json or ndjson.
var ErrUnsupportedOutput = errors.New("unsupported output format")

// ExitError asks main to exit with a specific code after the command's output
// has been written.
type ExitError struct {
	ExitCode int
	Reason   string
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Reason
}

// Report is the JSON envelope of every json-formatted command result.
type Report struct {
	ReportID    string    `json:"report_id"`
	Kind        string    `json:"kind"`
	Name        string    `json:"name,omitempty"`
	GeneratedAt time.Time `json:"generated_at"`
	TraceID     string    `json:"trace_id,omitempty"`
	Data        any       `json:"data"`
}

// newReport wraps data in an envelope with a fresh ULID report ID.
func newReport(ctx context.Context, kind, name string, data any) Report {
	return Report{
		ReportID:    logging.NewID(),
		Kind:        kind,
		Name:        name,
		GeneratedAt: time.Now().UTC(),
		TraceID:     logging.TraceIDFromContext(ctx),
		Data:        data,
	}
}

// ndjsonRecord is one line of ndjson output. Every line of one invocation
// shares the report ID.
type ndjsonRecord struct {
	ReportID string `json:"report_id"`
	Kind     string `json:"kind"`
	Data     any    `json:"data"`
}

// addOutputFlag registers --output with the configured default.
func addOutputFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVar(target, "output", config.GetDefaultOutputFormat(), "output format: table, json or ndjson")
}

// addFileFlag registers the required --file/-f event document flag.
func addFileFlag(cmd *cobra.Command, target *string, usage string) {
	cmd.Flags().StringVarP(target, "file", "f", "", usage)
	_ = cmd.MarkFlagRequired("file")
}

// resolveOutputFormat validates an --output value, falling back to the
// configured default when the flag was not set explicitly.
func resolveOutputFormat(cmd *cobra.Command, value string) (string, error) {
	if !cmd.Flags().Changed("output") {
		value = config.GetDefaultOutputFormat()
	}
	switch value {
	case config.FormatTable, config.FormatJSON, config.FormatNDJSON:
		return value, nil
	default:
		return "", fmt.Errorf("%w: %q (want table, json or ndjson)", ErrUnsupportedOutput, value)
	}
}

// outputMode picks plain, styled or interactive rendering for table output.
// Anything other than a terminal on stdout is plain.
func outputMode(cmd *cobra.Command, wantInteractive bool) tui.OutputMode {
	plain, _ := cmd.Flags().GetBool("plain")
	f, ok := cmd.OutOrStdout().(*os.File)
	if !ok {
		return tui.OutputModePlain
	}
	return tui.ResolveOutputMode(tui.IsTerminal(f), wantInteractive, plain, os.Getenv)
}

// renderJSON writes an indented report.
func renderJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}

// renderNDJSON writes one compact line per item. A reader that closes the pipe
// early is not an error.
func renderNDJSON[T any](ctx context.Context, w io.Writer, kind string, items []T) error {
	id := logging.NewID()
	enc := json.NewEncoder(w)
	for _, item := range items {
		if err := enc.Encode(ndjsonRecord{ReportID: id, Kind: kind, Data: item}); err != nil {
			if isBrokenPipe(err) {
				logging.FromContext(ctx).Debug().Ctx(ctx).Msg("output pipe closed early")
				return nil
			}
			return fmt.Errorf("encoding ndjson: %w", err)
		}
	}
	return nil
}

// isBrokenPipe checks if an error is a broken pipe error (SIGPIPE).
// This occurs when output is piped to commands like `head` that close the pipe early.
func isBrokenPipe(err error) bool {
	if err == nil {
		return false
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno == syscall.EPIPE
	}
	return strings.Contains(err.Error(), "broken pipe")
}

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
}
