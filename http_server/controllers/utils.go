package controllers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/voyage-finance/ask-server/models"
)

func ReturnHttpJSON(rw http.ResponseWriter, status int, body any) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)
	if err := json.NewEncoder(rw).Encode(body); err != nil {
		slog.Error("writing response", "error", err)
	}
}

func ReturnHttpBadResponse(rw http.ResponseWriter, response string) {
	ReturnHttpJSON(rw, http.StatusBadRequest, models.AnswerResult{Error: response})
}
