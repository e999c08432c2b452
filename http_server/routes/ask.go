package routes

import (
	"github.com/gorilla/mux"
	"github.com/voyage-finance/ask-server/http_server/controllers"
	"github.com/voyage-finance/ask-server/service"
)

func AskRoute(router *mux.Router, s *service.Service) {
	router.HandleFunc("/api/ask", controllers.AskQuestion(s)).Methods("POST")
}
