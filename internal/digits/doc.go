// Package digits implements the unsigned magnitude engine underneath the
// signed big integer: little-endian word vectors, carry-propagating vector
// primitives, three interchangeable multiplication algorithms (schoolbook,
// Karatsuba and a three-prime number theoretic transform), Knuth division
// and radix conversion.
//
// All exported functions treat their operands as read-only and return
// freshly allocated, normalized results. Scratch space is drawn from
// size-classed pools (see pool.go).
package digits
