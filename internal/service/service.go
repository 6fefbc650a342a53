package service

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/agbru/algebra/internal/bigint"
	apperrors "github.com/agbru/algebra/internal/errors"
	"github.com/agbru/algebra/internal/field"
	"github.com/agbru/algebra/internal/logging"
	"github.com/agbru/algebra/internal/poly"
	"github.com/agbru/algebra/internal/rational"
)

// Operation names accepted by EvaluatePoly.
const (
	OpNorm   = "norm"
	OpMul    = "mul"
	OpDivMod = "divmod"
	OpGCD    = "gcd"
	OpDiff   = "diff"
	OpSubs   = "subs"
	OpPow    = "pow"
)

// Coefficient domains accepted by EvaluatePoly.
const (
	CoefInt   = "int"
	CoefRat   = "rat"
	CoefField = "field"
)

// MaxPowExponent bounds the exponent accepted by the pow operation.
const MaxPowExponent = 1 << 12

// MulResult is the outcome of one multiplication.
type MulResult struct {
	Product   bigint.Int
	Algorithm string
	Duration  time.Duration
}

// PolyRequest describes one polynomial operation.
type PolyRequest struct {
	// Op is one of the Op* constants. Empty means OpNorm.
	Op string
	// Expr is the first operand in polynomial notation.
	Expr string
	// Arg is the second operand: a polynomial for mul, divmod and gcd, a
	// coefficient for subs and a non-negative exponent for pow.
	Arg string
	// Coef selects the coefficient domain. Empty means CoefInt.
	Coef string
	// Variable is the indeterminate used for parsing and rendering.
	// Empty means "x".
	Variable string
}

// PolyResult is the rendered outcome of a polynomial operation.
type PolyResult struct {
	Op        string        `json:"op"`
	Coef      string        `json:"coef"`
	Result    string        `json:"result"`
	Remainder string        `json:"remainder,omitempty"`
	Degree    int64         `json:"degree"` // -1 for the zero polynomial
	Terms     int           `json:"terms"`
	Duration  time.Duration `json:"duration_ns"`
}

// PolyObserver receives one notification per evaluated polynomial
// operation.
type PolyObserver interface {
	ObservePoly(op, coef string, elapsed time.Duration, err error)
}

// Service defines the operations exposed to the application surfaces.
type Service interface {
	// Multiply computes a*b with the named algorithm ("auto" or empty
	// selects by operand size).
	//
	// Parameters:
	//   - ctx: The context for cancellation.
	//   - a, b: Decimal (or 0x/0o/0b prefixed) integer operands.
	//   - algo: The algorithm name.
	//
	// Returns:
	//   - MulResult: The product and the algorithm that computed it.
	//   - error: A ParseError, ConfigError or context error.
	Multiply(ctx context.Context, a, b, algo string) (MulResult, error)

	// EvaluatePoly parses the request operands and runs the operation.
	EvaluatePoly(ctx context.Context, req PolyRequest) (PolyResult, error)
}

// AlgebraService is the default Service implementation.
type AlgebraService struct {
	logger   logging.Logger
	observer PolyObserver
}

// Ensure AlgebraService implements Service interface.
var _ Service = (*AlgebraService)(nil)

// Option configures an AlgebraService.
type Option func(*AlgebraService)

// WithLogger sets the logger. The default discards output.
func WithLogger(l logging.Logger) Option {
	return func(s *AlgebraService) { s.logger = l }
}

// WithPolyObserver installs an observer for polynomial operations.
func WithPolyObserver(o PolyObserver) Option {
	return func(s *AlgebraService) { s.observer = o }
}

// New creates an AlgebraService.
func New(opts ...Option) *AlgebraService {
	s := &AlgebraService{logger: logging.NewNopLogger()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Multiply implements Service.
func (s *AlgebraService) Multiply(ctx context.Context, a, b, algo string) (MulResult, error) {
	if err := ctx.Err(); err != nil {
		return MulResult{}, err
	}
	x, err := bigint.Parse(strings.TrimSpace(a))
	if err != nil {
		return MulResult{}, err
	}
	y, err := bigint.Parse(strings.TrimSpace(b))
	if err != nil {
		return MulResult{}, err
	}
	alg := bigint.Auto
	if algo != "" {
		if alg, err = bigint.ParseAlgorithm(algo); err != nil {
			return MulResult{}, apperrors.NewConfigError("unknown algorithm %q", algo)
		}
	}
	if alg == bigint.Auto {
		alg = bigint.SelectAlgorithm(x, y)
	}

	start := time.Now()
	z := x.MulWith(y, alg)
	elapsed := time.Since(start)
	s.logger.Debug("multiplied",
		logging.Algorithm(alg.String()),
		logging.Operand("a", a), logging.Operand("b", b),
		logging.Int("bits", x.BitLen()+y.BitLen()),
		logging.Duration("elapsed", elapsed))
	return MulResult{Product: z, Algorithm: alg.String(), Duration: elapsed}, nil
}

// EvaluatePoly implements Service.
func (s *AlgebraService) EvaluatePoly(ctx context.Context, req PolyRequest) (PolyResult, error) {
	if err := ctx.Err(); err != nil {
		return PolyResult{}, err
	}
	req = withDefaults(req)

	start := time.Now()
	var (
		res PolyResult
		err error
	)
	switch req.Coef {
	case CoefInt:
		res, err = evaluate(req, bigint.Parse)
	case CoefRat:
		res, err = evaluate(req, rational.Parse)
	case CoefField:
		res, err = evaluate(req, field.Parse)
	default:
		err = apperrors.NewConfigError("unknown coefficient domain %q (want int, rat or field)", req.Coef)
	}
	elapsed := time.Since(start)
	res.Duration = elapsed

	if s.observer != nil {
		s.observer.ObservePoly(req.Op, req.Coef, elapsed, err)
	}
	if err != nil {
		s.logger.Debug("polynomial operation failed",
			logging.String("op", req.Op), logging.String("coef", req.Coef),
			logging.Operand("expr", req.Expr), logging.Err(err))
		return PolyResult{}, err
	}
	s.logger.Debug("polynomial operation",
		logging.String("op", req.Op), logging.String("coef", req.Coef),
		logging.Operand("expr", req.Expr), logging.Degree(res.Degree),
		logging.Int("terms", res.Terms), logging.Duration("elapsed", elapsed))
	return res, nil
}

func withDefaults(req PolyRequest) PolyRequest {
	req.Op = strings.ToLower(strings.TrimSpace(req.Op))
	req.Coef = strings.ToLower(strings.TrimSpace(req.Coef))
	if req.Op == "" {
		req.Op = OpNorm
	}
	if req.Coef == "" {
		req.Coef = CoefInt
	}
	if req.Variable == "" {
		req.Variable = "x"
	}
	return req
}

// ─── Generic evaluation ─────────────────────────────────────────────────────

func evaluate[F poly.Scalar[F]](req PolyRequest, parseCoef func(string) (F, error)) (PolyResult, error) {
	parse := func(s string) (poly.Poly[F, int64], error) {
		return poly.ParseVar[F, int64](s, req.Variable, parseCoef)
	}
	p, err := parse(req.Expr)
	if err != nil {
		return PolyResult{}, err
	}

	res := PolyResult{Op: req.Op, Coef: req.Coef}
	var out poly.Poly[F, int64]
	switch req.Op {
	case OpNorm:
		out = p
	case OpDiff:
		out = p.Diff()
	case OpMul, OpDivMod, OpGCD:
		q, err := parse(req.Arg)
		if err != nil {
			return PolyResult{}, err
		}
		switch req.Op {
		case OpMul:
			out = p.Mul(q)
		case OpDivMod:
			quo, rem, err := poly.DivMod(p, q)
			if err != nil {
				return PolyResult{}, err
			}
			out = quo
			res.Remainder = rem.FormatVar(req.Variable)
		case OpGCD:
			if out, err = poly.GCD(p, q); err != nil {
				return PolyResult{}, err
			}
		}
	case OpSubs:
		x, err := parseCoef(strings.TrimSpace(req.Arg))
		if err != nil {
			return PolyResult{}, err
		}
		v, err := p.Eval(x)
		if err != nil {
			return PolyResult{}, err
		}
		res.Result = v.String()
		return res, nil
	case OpPow:
		n, err := strconv.ParseUint(strings.TrimSpace(req.Arg), 10, 32)
		if err != nil {
			return PolyResult{}, apperrors.NewParseError("exponent", req.Arg, err)
		}
		if n > MaxPowExponent {
			return PolyResult{}, apperrors.ValidationError{
				Field:   "arg",
				Message: fmt.Sprintf("exponent %d exceeds %d", n, MaxPowExponent),
			}
		}
		out = p.Pow(uint(n))
	default:
		return PolyResult{}, apperrors.NewConfigError("unknown polynomial operation %q", req.Op)
	}

	res.Result = out.FormatVar(req.Variable)
	res.Terms = out.Size()
	res.Degree = out.Degree()
	return res, nil
}
