package accounts

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"people-directory/internal/middleware"
	"people-directory/internal/platform/apperr"
	"people-directory/internal/platform/respond"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/signup", signupHandler(svc))
	r.Post("/login", loginHandler(svc))
	r.Get("/me", meHandler())
}

type savedResponse struct {
	ID string `json:"id"`
}

// signupHandler godoc
// @Summary      Registrar cuenta
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        account  body  NewAccount  true  "email y password"
// @Success      200  {object}  savedResponse
// @Failure      409  {string}  string  "account already registered"
// @Router       /signup [post]
func signupHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req NewAccount
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.BadBody(w, err)
			return
		}

		id, err := svc.AddAccount(r.Context(), req)
		if err != nil {
			respond.Error(w, err)
			return
		}

		respond.JSON(w, http.StatusOK, savedResponse{ID: id})
	}
}

// loginHandler godoc
// @Summary      Login
// @Description  devuelve un token firmado (string JSON) válido por 2 horas
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        login  body  Login  true  "credenciales"
// @Success      200  {string}  string
// @Failure      401  {string}  string  "invalid email or password"
// @Router       /login [post]
func loginHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req Login
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.BadBody(w, err)
			return
		}

		token, err := svc.Login(r.Context(), req)
		if err != nil {
			respond.Error(w, err)
			return
		}

		respond.JSON(w, http.StatusOK, token)
	}
}

// meHandler godoc
// @Summary      Cuenta del token
// @Tags         accounts
// @Produce      json
// @Param        Authorization  header  string  true  "Bearer <token>"
// @Success      200  {object}  auth.Claims
// @Failure      401  {string}  string  "unauthorized"
// @Router       /me [get]
func meHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || claims.AccountID == "" {
			respond.Error(w, apperr.New(apperr.KindUnauthorized, "unauthorized"))
			return
		}
		respond.JSON(w, http.StatusOK, claims)
	}
}
