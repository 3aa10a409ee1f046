package model

// QuoteError records a failed request line.
type QuoteError struct {
	Line  int    `json:"line"`
	ID    string `json:"id,omitempty"`
	Error string `json:"error"`
}
