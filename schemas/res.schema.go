package schemas

// Res is the response envelope returned by every handler, the HTTP status
// is mirrored in the body
type Res struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data,omitempty"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

// Ok is a helper that is used to build a success response envelope
func Ok(statusCode int, data interface{}, message string) Res {
	return Res{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
		Success:    true,
	}
}
