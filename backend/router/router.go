package router

import (
	"net/http"

	"hanviet-cards/backend/app/controllers"
	"hanviet-cards/backend/app/middleware"
)

func NewRouter(httpCtrl *controllers.HTTPController, authCtrl *controllers.AuthController, cardCtrl *controllers.CardController, adminCtrl *controllers.AdminController, mw *middleware.Auth) http.Handler {
	mux := http.NewServeMux()

	// public
	mux.HandleFunc("GET /healthz", httpCtrl.Healthz)
	mux.HandleFunc("POST /auth/register", authCtrl.Register)
	mux.HandleFunc("POST /auth/login", authCtrl.Login)
	mux.HandleFunc("GET /cards", cardCtrl.List)
	mux.HandleFunc("GET /cards/{id}", cardCtrl.Get)

	// authenticated
	mux.Handle("POST /cards", mw.RequireAuth(http.HandlerFunc(cardCtrl.Create)))
	mux.Handle("PUT /cards/{id}", mw.RequireAuth(http.HandlerFunc(cardCtrl.Update)))
	mux.Handle("DELETE /cards/{id}", mw.RequireAuth(http.HandlerFunc(cardCtrl.Delete)))

	// admin only
	mux.Handle("POST /admin/seed", mw.RequireAdmin(http.HandlerFunc(adminCtrl.Seed)))

	return mux
}
