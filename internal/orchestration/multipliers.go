package orchestration

import (
	"context"
	"slices"
	"strings"

	"github.com/agbru/algebra/internal/bigint"
	apperrors "github.com/agbru/algebra/internal/errors"
)

// algorithmMultiplier runs one fixed dispatch strategy.
type algorithmMultiplier struct {
	alg bigint.Algorithm
}

// NewMultiplier returns a Multiplier that always uses alg.
func NewMultiplier(alg bigint.Algorithm) Multiplier {
	return algorithmMultiplier{alg: alg}
}

func (m algorithmMultiplier) Name() string { return m.alg.String() }

// Multiply runs the product on its own goroutine so that a canceled context
// is honored promptly. The abandoned computation finishes in the background
// and its result is discarded.
func (m algorithmMultiplier) Multiply(ctx context.Context, a, b bigint.Int) (bigint.Int, error) {
	if err := ctx.Err(); err != nil {
		return bigint.Int{}, err
	}
	done := make(chan bigint.Int, 1)
	go func() { done <- a.MulWith(b, m.alg) }()
	select {
	case z := <-done:
		return z, nil
	case <-ctx.Done():
		return bigint.Int{}, ctx.Err()
	}
}

// explicitAlgorithms lists the strategies run by "all", in name order.
var explicitAlgorithms = []bigint.Algorithm{bigint.FFT, bigint.Karatsuba, bigint.Schoolbook}

// MultipliersFor determines which multipliers should be executed for the
// algorithm selection. "all" returns every explicit strategy in
// alphabetical order for consistent, reproducible behavior.
//
// Parameters:
//   - algo: "all", "auto" or an algorithm name.
//
// Returns:
//   - []Multiplier: The multipliers to execute.
//   - error: A ConfigError for an unknown name.
func MultipliersFor(algo string) ([]Multiplier, error) {
	algo = strings.ToLower(strings.TrimSpace(algo))
	if algo == "all" || algo == "" {
		out := make([]Multiplier, 0, len(explicitAlgorithms))
		for _, alg := range explicitAlgorithms {
			out = append(out, NewMultiplier(alg))
		}
		return out, nil
	}
	alg, err := bigint.ParseAlgorithm(algo)
	if err != nil {
		return nil, apperrors.NewConfigError("unknown algorithm %q (want all, auto, %s)", algo, strings.Join(names(), ", "))
	}
	return []Multiplier{NewMultiplier(alg)}, nil
}

func names() []string {
	out := make([]string, 0, len(explicitAlgorithms))
	for _, alg := range explicitAlgorithms {
		out = append(out, alg.String())
	}
	slices.Sort(out)
	return out
}
