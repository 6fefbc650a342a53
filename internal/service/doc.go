// Package service evaluates multiplication and polynomial requests. It is
// the single entry point shared by the command line, the REPL and the HTTP
// server, so every surface parses, validates and reports operations the
// same way.
package service
