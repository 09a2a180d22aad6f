package layout

import "errors"

var (
	// ErrQueryFailed is the single failure kind of a layout query. Every
	// backend error matches it through errors.Is.
	ErrQueryFailed = errors.New("layout query failed")
	// ErrUnsupported means no backend is available on this platform.
	ErrUnsupported = errors.New("no layout backend for this platform")
)

// QueryError carries the backend name and the underlying cause of a failed
// query. The cause never reaches the default report line.
type QueryError struct {
	Backend string
	Err     error
}

func (e *QueryError) Error() string {
	if e.Backend == "" {
		return ErrQueryFailed.Error() + ": " + e.Err.Error()
	}
	return e.Backend + ": " + e.Err.Error()
}

func (e *QueryError) Unwrap() []error { return []error{ErrQueryFailed, e.Err} }

func queryFailure(backend string, err error) error {
	if err == nil {
		err = errors.New("no layout name returned")
	}
	return &QueryError{Backend: backend, Err: err}
}

// ErrUnknownBackend is returned when a backend name is not registered.
type ErrUnknownBackend struct{ name string }

func (e ErrUnknownBackend) Error() string { return "unknown backend: " + e.name }
