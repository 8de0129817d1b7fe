package types

// ErrorBody is the JSON shape of every non-2xx API response.
type ErrorBody struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// Ack is returned by write endpoints that have nothing else to report.
type Ack struct {
	Success bool `json:"success"`
}
