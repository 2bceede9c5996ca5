package routers

import (
	"ehr-client/internal/app/delivery/http/controllers"
	"ehr-client/internal/app/delivery/http/middlewares"
	"ehr-client/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, loginLimiter *middlewares.RateLimiter, authController *controllers.AuthController) {
	router.Get(constvars.PageLogin, authController.ShowLogin)
	router.With(loginLimiter.LimitWith(authController.LoginRejected)).Post(constvars.PageLogin, authController.Login)
	router.Get("/logout", authController.Logout)
}
