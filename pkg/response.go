package pkg

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

var ContentType = struct {
	JSON string
}{
	JSON: "application/json",
}

type MessageResponse struct {
	Message string `json:"message"`
}

func WriteResponseBytes(w http.ResponseWriter, contentType string, message []byte, statusCode int) {
	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	w.WriteHeader(statusCode)

	if _, err := w.Write(message); err != nil {
		log.Errorf("failed to write response [%s]: %s", message, err)
	}
}

// WriteJSON marshals v and writes it with the given status code.
// A marshalling failure is reported as a 500, never as a partial body.
func WriteJSON(w http.ResponseWriter, v any, statusCode int) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Errorf("marshal response of type %T: %s", v, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	WriteResponseBytes(w, ContentType.JSON, body, statusCode)
}

// WriteJSONMessage writes {"message": msg}, the shape used by all mutation endpoints.
func WriteJSONMessage(w http.ResponseWriter, msg string, statusCode int) {
	WriteJSON(w, MessageResponse{Message: msg}, statusCode)
}

// WriteJSONError is http.Error for JSON clients.
func WriteJSONError(w http.ResponseWriter, msg string, statusCode int) {
	WriteJSONMessage(w, msg, statusCode)
}
