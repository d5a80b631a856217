package web

import (
	"net/http"

	"github.com/PauloHFS/pagelinks/internal/routes"
)

func RegisterRoutes(mux *http.ServeMux, deps HandlerDeps) {
	mux.HandleFunc("GET "+routes.Links, Handle(deps, handleLinks))
	mux.HandleFunc("GET "+routes.Items, Handle(deps, handleItems))
	mux.HandleFunc("GET "+routes.Health, Handle(deps, handleHealth))
}
