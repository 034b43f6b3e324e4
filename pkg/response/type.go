package response

// Resp is the standard JSON error envelope.
// Success responses write the resource payload as-is (the API contract
// promises the resource body itself), so Resp only appears on failures.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}
