package http

import (
	"encoding/json"
	"net/http"

	"github.com/Mukhsinh/JEMPOL-sub007/pkg/apperror"
)

// Envelope is the JSON body of every API response
type Envelope struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Code    string      `json:"code,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, envelope Envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(envelope)
}

func writeSuccess(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	writeJSON(w, statusCode, Envelope{Status: true, Message: message, Data: data})
}

func writeError(w http.ResponseWriter, appErr *apperror.AppError) {
	writeJSON(w, appErr.Status, Envelope{Status: false, Message: appErr.Message, Code: appErr.Code})
}
