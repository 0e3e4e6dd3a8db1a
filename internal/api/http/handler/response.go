// Package handler implements the HTTP resource handlers and the response
// envelope shared by all of them.
package handler

import (
	"encoding/json"
	"net/http"
)

// SuccessResponse is the envelope for every successful reply. Data is
// always present, explicitly null for replies with no payload; pagination
// appears only on list replies.
type SuccessResponse struct {
	Code       int                 `json:"code"`
	Message    string              `json:"message"`
	Data       any                 `json:"data"`
	Pagination *PaginationResponse `json:"pagination,omitempty"`
}

// ErrorResponse is the envelope for every failed reply. Cause carries field
// violations for validation failures and is omitted otherwise.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Cause   any    `json:"cause,omitempty"`
}

// PaginationResponse carries the paging totals for a list reply.
type PaginationResponse struct {
	Page        int  `json:"page"`
	PerPage     int  `json:"perPage"`
	Size        int  `json:"size"`
	TotalPage   int  `json:"totalPage"`
	HasNextPage bool `json:"hasNextPage"`
}

func newPagination(page, perPage, size, totalPages int) *PaginationResponse {
	return &PaginationResponse{
		Page:        page,
		PerPage:     perPage,
		Size:        size,
		TotalPage:   totalPages,
		HasNextPage: page < totalPages,
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeSuccess(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, SuccessResponse{
		Code:    status,
		Message: message,
		Data:    data,
	})
}

func writePaginated(w http.ResponseWriter, items any, pagination *PaginationResponse) {
	writeJSON(w, http.StatusOK, SuccessResponse{
		Code:       http.StatusOK,
		Message:    "Success",
		Data:       items,
		Pagination: pagination,
	})
}
