package types

// DataResponse is the success envelope: every 2xx body wraps its payload in
// a single data field
type DataResponse struct {
	Data interface{} `json:"data"`
}

// ErrorResponse is the error envelope: a human-readable message plus
// optional per-field detail strings
type ErrorResponse struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// HealthResponse for the health check endpoint
type HealthResponse struct {
	Status   string                 `json:"status"`
	Version  string                 `json:"version,omitempty"`
	Services map[string]interface{} `json:"services,omitempty"`
}
