package schema

import (
	"encoding/json"
)

// ResponseError is the fixed-shape mapping returned for any non-200 upstream response.
type ResponseError struct {
	Success    bool   `json:"success"`
	StatusCode int    `json:"status code"`
	Response   string `json:"response"`
}

func NewResponseError(statusCode int, body string) ResponseError {
	return ResponseError{
		Success:    false,
		StatusCode: statusCode,
		Response:   body,
	}
}

// NormalizedResponse carries either the upstream body unchanged or a ResponseError.
type NormalizedResponse struct {
	Body  json.RawMessage
	Error *ResponseError
}

func (n NormalizedResponse) Ok() bool {
	return n.Error == nil
}

func (n NormalizedResponse) MarshalJSON() ([]byte, error) {
	if n.Error != nil {
		return json.Marshal(n.Error)
	}

	if len(n.Body) == 0 {
		return []byte("null"), nil
	}

	return n.Body, nil
}
