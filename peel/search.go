package peel

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/densest/matrix"
	"github.com/katalvlaran/densest/weighting"
)

// SchemeResult pairs a weighting scheme with the block it produced.
type SchemeResult struct {
	Scheme weighting.Scheme
	Result *Result
}

// SearchSchemes runs one bipartite pass per scheme concurrently. Every pass
// gets its own clone of m and its own indices. The OnDelete hook is shared by
// all passes, so calls to it are serialized behind a mutex; steps of
// different passes may interleave. Results come back in the order of schemes;
// if any pass fails, the error of the earliest failing scheme is returned.
func SearchSchemes(m *matrix.Sparse, schemes []weighting.Scheme, opts ...Option) ([]SchemeResult, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("peel: SearchSchemes: %w", err)
	}
	cfg := gatherOptions(opts...)
	if cfg.err != nil {
		return nil, cfg.err
	}
	if len(schemes) == 0 {
		schemes = weighting.Schemes()
	}

	var mu sync.Mutex
	hook := cfg.OnDelete
	opts = append(append([]Option(nil), opts...), WithOnDelete(func(st Step) {
		mu.Lock()
		defer mu.Unlock()
		hook(st)
	}))

	out := make([]SchemeResult, len(schemes))
	errs := make([]error, len(schemes))
	var wg sync.WaitGroup
	for k, s := range schemes {
		wg.Add(1)
		go func(k int, s weighting.Scheme, own *matrix.Sparse) {
			defer wg.Done()
			res, err := Detect(own, s, opts...)
			out[k] = SchemeResult{Scheme: s, Result: res}
			errs[k] = err
		}(k, s, m.Clone())
	}
	wg.Wait()

	for k, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("peel: SearchSchemes(%v): %w", schemes[k], err)
		}
	}

	return out, nil
}

// Best returns the entry with the highest score; ties keep the earlier one.
// It returns nil for an empty slice.
func Best(results []SchemeResult) *SchemeResult {
	var best *SchemeResult
	for k := range results {
		if results[k].Result == nil {
			continue
		}
		if best == nil || results[k].Result.Score > best.Result.Score {
			best = &results[k]
		}
	}

	return best
}
