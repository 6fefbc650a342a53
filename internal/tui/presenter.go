package tui

import (
	"io"
	"time"

	apperrors "github.com/agbru/algebra/internal/errors"
	"github.com/agbru/algebra/internal/orchestration"
)

// capturePresenter records the outcome of AnalyzeComparisonResults for
// the dashboard instead of printing it.
type capturePresenter struct {
	result *orchestration.CalculationResult
	err    error
}

var (
	_ orchestration.ResultPresenter = (*capturePresenter)(nil)
	_ orchestration.ErrorHandler    = (*capturePresenter)(nil)
)

func (c *capturePresenter) PresentComparisonTable([]orchestration.CalculationResult, io.Writer) {}

func (c *capturePresenter) PresentResult(result orchestration.CalculationResult, _ orchestration.PresentationOptions, _ io.Writer) {
	c.result = &result
}

func (c *capturePresenter) HandleError(err error, _ time.Duration, _ io.Writer) int {
	c.err = err
	return apperrors.ExitCodeFor(err)
}
