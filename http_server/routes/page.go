package routes

import (
	"github.com/gorilla/mux"
	"github.com/voyage-finance/ask-server/http_server/controllers"
)

func PageRoute(router *mux.Router) {
	router.HandleFunc("/", controllers.Page()).Methods("GET")
	router.HandleFunc("/health", controllers.Health()).Methods("GET")
}
