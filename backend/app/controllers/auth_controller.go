package controllers

import (
	"encoding/json"
	"net/http"

	"hanviet-cards/backend/app/dto"
	jwtutil "hanviet-cards/backend/app/jwt"
	"hanviet-cards/backend/app/models"
	"hanviet-cards/backend/app/services"
)

type AuthController struct {
	Users  *services.UserService
	Signer *jwtutil.Signer
}

func NewAuthController(users *services.UserService, signer *jwtutil.Signer) *AuthController {
	return &AuthController{Users: users, Signer: signer}
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Username == "" || req.Password == "" {
		writeJSONError(w, http.StatusBadRequest, "username and password are required")
		return
	}
	u, err := c.Users.Register(req.Username, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	c.respondWithToken(w, http.StatusCreated, u)
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Username == "" || req.Password == "" {
		writeJSONError(w, http.StatusBadRequest, "missing credentials")
		return
	}
	u, err := c.Users.ValidateCredentials(req.Username, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	c.respondWithToken(w, http.StatusOK, u)
}

func (c *AuthController) respondWithToken(w http.ResponseWriter, status int, u *models.User) {
	token, err := c.Signer.Sign(u.ID, u.Username)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "token error")
		return
	}
	writeJSON(w, status, dto.AuthResponse{AccessToken: token, User: dto.NewPublicUser(u)})
}
