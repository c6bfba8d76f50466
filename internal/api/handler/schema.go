package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse is the envelope for plain acknowledgements.
type messageResponse struct {
	Message string `json:"message"`
}
