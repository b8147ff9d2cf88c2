package health

import "context"

// Prober runs one known-answer check and returns an error when the result drifts.
type Prober interface {
	Name() string
	Probe(ctx context.Context) error
}
