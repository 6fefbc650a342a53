// Package logging provides the logging interface shared by the algebra
// components. It hides the backend so the engine, the orchestrator and the
// HTTP server log the same structured fields whether they run on zerolog
// or on the standard library logger.
package logging
