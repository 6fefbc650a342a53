// Package polyparse tokenises the textual notation of sparse polynomials.
//
// Two notations are recognised:
//
//	2*x^2+5*x-7          variable notation
//	(3)*x^-1 - (y+1)*x   parenthesised coefficients, signed exponents
//	((-7,0),(5,1),(2,2)) list notation of (coefficient, degree) pairs
//
// The package only splits text into terms; it never interprets a
// coefficient. Coefficient and degree text is handed back raw so that the
// caller can parse it with whatever coefficient type it is instantiated
// with.
package polyparse
