package controllers

import (
	"net/http"

	"github.com/voyage-finance/ask-server/http_server/web"
)

func Health() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ReturnHttpJSON(rw, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// Page serves the single-page client.
func Page() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		rw.Header().Set("Content-Type", "text/html; charset=utf-8")
		rw.WriteHeader(http.StatusOK)
		_, _ = rw.Write(web.Index)
	}
}
