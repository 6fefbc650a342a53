// Package format holds pure string formatting helpers shared by the CLI,
// the REPL and the calibration report: durations, byte counts, digit
// grouping and truncation of very long numbers.
package format
