package server

// MulRequest is the body of POST /v1/mul. GET requests use the same names
// as query parameters.
type MulRequest struct {
	A    string `json:"a"`
	B    string `json:"b"`
	Algo string `json:"algo,omitempty"`
}

// MulResponse is the JSON answer of /v1/mul.
type MulResponse struct {
	// Product is the decimal product.
	Product string `json:"product"`
	// Bits is the bit length of the product.
	Bits int `json:"bits"`
	// Algorithm is the strategy that computed the product.
	Algorithm string `json:"algorithm"`
	// Duration is the formatted multiplication time.
	Duration string `json:"duration"`
}

// PolyRequest is the body of POST /v1/poly.
type PolyRequest struct {
	Op       string `json:"op,omitempty"`
	Expr     string `json:"expr"`
	Arg      string `json:"arg,omitempty"`
	Coef     string `json:"coef,omitempty"`
	Variable string `json:"var,omitempty"`
}

// ErrorResponse represents the standardized JSON response for an API error.
type ErrorResponse struct {
	// Error is the short error code or status text.
	Error string `json:"error"`
	// Message is a descriptive error message.
	Message string `json:"message,omitempty"`
}
