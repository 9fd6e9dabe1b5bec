package api

import (
	"aldosafaris/pkg/contracts"

	"github.com/julienschmidt/httprouter"
)

// Router aggregates every domain handler behind one route table.
type Router struct {
	handlers []contracts.Handler
}

func NewRouter(handlers ...contracts.Handler) *Router {
	return &Router{handlers: handlers}
}

func (r *Router) RegisterRoutes(router *httprouter.Router) {
	for _, h := range r.handlers {
		h.RegisterRoutes(router)
	}
}
