package handler

const (
	oopsErr       = "Oops! Something went wrong. Please try again later."
	unexpectedErr = "unexpected error occurred"
)

// Response is the body of every failed request. Successful requests return
// the bare record or list.
type Response struct {
	Message string `json:"message,omitempty"` // short message for humans
	Error   string `json:"error,omitempty"`   // error detail (if any)
}
