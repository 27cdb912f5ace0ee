package model

import "net/http"

// ApiResponse is the envelope every API payload travels in.
type ApiResponse[T any] struct {
	Data       T      `json:"data"`
	Status     int    `json:"status"`
	StatusText string `json:"statusText"`
	IsOk       bool   `json:"isOk"`
}

// NewApiResponse wraps data and derives StatusText and IsOk from status.
func NewApiResponse[T any](data T, status int) ApiResponse[T] {
	return ApiResponse[T]{
		Data:       data,
		Status:     status,
		StatusText: http.StatusText(status),
		IsOk:       IsSuccessStatus(status),
	}
}

// IsSuccessStatus reports whether status is in the 2xx range.
func IsSuccessStatus(status int) bool {
	return status >= 200 && status <= 299
}

// Consistent reports whether IsOk agrees with Status.
func (r ApiResponse[T]) Consistent() bool {
	return r.IsOk == IsSuccessStatus(r.Status)
}
