package orchestration

import "time"

// ProgressUpdate reports that one multiplier finished.
type ProgressUpdate struct {
	// CalculatorIndex is the position of the multiplier in the input slice.
	CalculatorIndex int
	// Name is the multiplier name.
	Name string
	// Duration is the time the multiplier took.
	Duration time.Duration
	// Err is the multiplier's error, if any.
	Err error
}

// ProgressAggregator counts finished multipliers. Both the spinner and the
// JSON output use it to avoid duplicating the bookkeeping.
type ProgressAggregator struct {
	done           []bool
	completed      int
	failed         int
	numCalculators int
}

// NewProgressAggregator creates a new aggregator for the given number
// of multipliers. Returns nil if numCalculators <= 0.
func NewProgressAggregator(numCalculators int) *ProgressAggregator {
	if numCalculators <= 0 {
		return nil
	}
	return &ProgressAggregator{
		done:           make([]bool, numCalculators),
		numCalculators: numCalculators,
	}
}

// AggregatedProgress holds the result of processing a single progress update.
type AggregatedProgress struct {
	// CalculatorIndex is the index of the multiplier that sent the update.
	CalculatorIndex int
	// Completed is the number of distinct multipliers that finished.
	Completed int
	// Failed is how many of them returned an error.
	Failed int
	// Fraction is Completed over the number of multipliers.
	Fraction float64
}

// Update processes a single progress update and returns the aggregated
// result. Repeated or out-of-range indexes are ignored.
func (a *ProgressAggregator) Update(update ProgressUpdate) AggregatedProgress {
	i := update.CalculatorIndex
	if i >= 0 && i < len(a.done) && !a.done[i] {
		a.done[i] = true
		a.completed++
		if update.Err != nil {
			a.failed++
		}
	}
	return AggregatedProgress{
		CalculatorIndex: i,
		Completed:       a.completed,
		Failed:          a.failed,
		Fraction:        a.Fraction(),
	}
}

// Fraction returns the share of finished multipliers without updating.
func (a *ProgressAggregator) Fraction() float64 {
	return float64(a.completed) / float64(a.numCalculators)
}

// NumCalculators returns the number of multipliers being tracked.
func (a *ProgressAggregator) NumCalculators() int {
	return a.numCalculators
}

// IsMultiCalculator returns true if tracking more than one multiplier.
func (a *ProgressAggregator) IsMultiCalculator() bool {
	return a.numCalculators > 1
}

// DrainChannel reads all updates from the channel without processing.
func DrainChannel(progressChan <-chan ProgressUpdate) {
	for range progressChan {
	}
}
