package routes

import (
	"wayfarer/auth"
	"wayfarer/location"
	"wayfarer/middleware"
	"wayfarer/ratelim"
	"wayfarer/tours"
	"wayfarer/usertours"

	"github.com/julienschmidt/httprouter"
)

func AddAuthRoutes(router *httprouter.Router, h *auth.Handler, mw *middleware.Auth, rl *ratelim.RateLimiter) {
	router.POST("/api/signup", rl.Limit(h.Signup))
	router.POST("/api/auth/login", rl.Limit(h.Login))
	router.GET("/api/auth/me", mw.Authenticate(h.Me))
}

func AddTourRoutes(router *httprouter.Router, h *tours.Handler, mw *middleware.Auth) {
	router.GET("/api/tours", mw.Authenticate(h.List))
	router.GET("/api/tours/:id", mw.Authenticate(h.Get))
	router.POST("/api/tours", mw.Authenticate(h.Create))

	// development seed route, unauthenticated like the rest of the dev tooling
	router.POST("/api/seed-tours", h.Seed)
}

func AddUserTourRoutes(router *httprouter.Router, h *usertours.Handler, mw *middleware.Auth) {
	router.POST("/api/user-tours/enroll", mw.Authenticate(h.Enroll))
	router.GET("/api/user-tours", mw.Authenticate(h.List))
}

func AddLocationRoutes(router *httprouter.Router, h *location.Handler, mw *middleware.Auth) {
	router.POST("/api/location/update", mw.Authenticate(h.Update))
}
