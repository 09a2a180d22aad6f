package layout

import (
	"context"
	"fmt"
	"io"
)

const (
	// SuccessPrefix starts the stdout line of a successful report.
	SuccessPrefix = "Current keyboard layout: "
	// FailureMessage is the only line written on a failed query.
	FailureMessage = "Failed to get the current keyboard layout"
)

// Result is the outcome of Report. Err holds the query error, which Report
// never prints.
type Result struct {
	ID  string
	OK  bool
	Err error
}

// SuccessLine formats the report line for id, verbatim.
func SuccessLine(id string) string { return SuccessPrefix + id }

// Report queries q once and writes exactly one line: the identifier to
// stdout, or FailureMessage to stderr. The returned error is a write error.
func Report(ctx context.Context, q Querier, stdout, stderr io.Writer) (Result, error) {
	if q == nil {
		q = QuerierFunc(func(context.Context) (string, error) {
			return "", queryFailure("", ErrUnsupported)
		})
	}
	id, err := q.CurrentLayoutID(ctx)
	if err != nil {
		_, werr := fmt.Fprintln(stderr, FailureMessage)
		return Result{Err: err}, werr
	}
	_, werr := fmt.Fprintln(stdout, SuccessLine(id))
	return Result{ID: id, OK: true}, werr
}
