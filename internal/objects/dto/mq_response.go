package dto

import (
	"net/http"
)

type MQResponse struct {
	Status int    `json:"status"`
	Error  string `json:"error,omitempty"`
}

func NewOkResponse() MQResponse {
	return MQResponse{Status: http.StatusOK}
}

func NewNotFoundResponse(errMsg string) MQResponse {
	return MQResponse{Status: http.StatusNotFound, Error: errMsg}
}

func NewInternalErrorResponse(errMsg string) MQResponse {
	return MQResponse{Status: http.StatusInternalServerError, Error: errMsg}
}
