// Package fopbridge provides the standard response envelopes shared by the
// HTTP bridges.
package fopbridge

import "encoding/json"

// MessageResponse is the envelope for operations that only confirm an
// outcome, like register and logout.
type MessageResponse struct {
	Message string `json:"message"`
}

func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Message: message}
}

func (m MessageResponse) Encode() ([]byte, string, error) {
	data, err := json.Marshal(m)
	return data, "application/json", err
}

// RecordsResponse serializes a list of records as a bare JSON array. An
// empty page encodes as [] rather than null.
type RecordsResponse[T any] struct {
	Records []T
}

func NewRecordsResponse[T any](records []T) RecordsResponse[T] {
	if records == nil {
		records = []T{}
	}
	return RecordsResponse[T]{Records: records}
}

func (r RecordsResponse[T]) Encode() ([]byte, string, error) {
	data, err := json.Marshal(r.Records)
	return data, "application/json", err
}
