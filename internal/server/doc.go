// Package server exposes the algebra service over HTTP.
//
// Endpoints:
//
//	GET|POST /v1/mul        multiply two integers (a, b, algo)
//	GET|POST /v1/poly       run a polynomial operation (op, expr, arg, coef, var)
//	GET      /v1/algorithms list the multiplication strategies
//	GET      /health        liveness check
//	GET      /metrics       Prometheus exposition
//
// Every route runs through the same middleware chain: security headers,
// per-client rate limiting, request logging and request metrics.
package server
