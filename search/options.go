package search

import (
	"context"
	"fmt"
	"math"
)

// Option configures search behavior via functional arguments.
// An invalid Option (e.g. negative depth) is recorded internally and
// surfaced as ErrOptionViolation when the algorithm is invoked.
type Option func(*Options)

// Options holds parameters shared by all five algorithms. Each algorithm
// reads only the fields relevant to it.
type Options struct {
	// Ctx allows advisory cancellation: the iterative algorithms check it
	// once per expansion, the recursive ones once per call. A search that
	// never yields (a hostile domain) is still only stoppable by the
	// caller abandoning it.
	Ctx context.Context

	// MaxDepth caps depth-limited strategies (DFS, iterative deepening).
	// 0 defers to the domain's DepthBounder, then to a hard default.
	MaxDepth int

	// MaxCost caps the IDA* threshold. 0 leaves the threshold unbounded;
	// finite spaces still terminate through exhaustion.
	MaxCost float64

	// Counters receives node accounting for the run. When nil a private
	// Counters is allocated; callers that need live visibility (the
	// timeout supervisor) pass their own.
	Counters *Counters

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: background context,
// bounds deferred to the domain, private counters.
func DefaultOptions() Options {
	return Options{
		Ctx: context.Background(),
	}
}

// WithContext sets a custom context for advisory cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth caps the search depth for DFS and iterative deepening.
//
//	d > 0:  limit to depth d
//	d == 0: defer to the domain bound
//	d < 0:  invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithMaxCost caps the IDA* cost threshold.
//
//	c > 0:  stop once the next threshold would exceed c
//	c == 0: no cap; exhaustion is the only stop condition
//	c < 0:  invalid option → ErrOptionViolation
func WithMaxCost(c float64) Option {
	return func(o *Options) {
		if c < 0 {
			o.err = fmt.Errorf("%w: MaxCost cannot be negative (%g)", ErrOptionViolation, c)
			return
		}
		o.MaxCost = c
	}
}

// WithCounters threads a caller-owned Counters through the run.
func WithCounters(c *Counters) Option {
	return func(o *Options) {
		if c != nil {
			o.Counters = c
		}
	}
}

// buildOptions applies opts over the defaults and validates them.
// It also resolves the Counters so algorithms never nil-check.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if o.Counters == nil {
		o.Counters = &Counters{}
	}
	return o, nil
}

// depthBound resolves the effective depth cap: explicit option first,
// then the domain's DepthBounder, then the hard default.
func depthBound[S comparable](sp Space[S], o Options) int {
	if o.MaxDepth > 0 {
		return o.MaxDepth
	}
	if db, ok := sp.(DepthBounder); ok {
		if d := db.MaxDepth(); d > 0 {
			return d
		}
	}
	return defaultDepthBound
}

// costBound resolves the effective IDA* threshold cap. Without an
// explicit cap the threshold is unbounded: thresholds track f values,
// and any depth-derived ceiling falsely exhausts weighted domains whose
// cheapest paths cost more than their depth. Finite spaces terminate
// through the exhaustion check instead (no branch pruned), with the
// path-local cycle set keeping each pass finite.
func costBound(o Options) float64 {
	if o.MaxCost > 0 {
		return o.MaxCost
	}
	return math.Inf(1)
}

// cancelled reports the context error, if any, without blocking.
func cancelled(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
