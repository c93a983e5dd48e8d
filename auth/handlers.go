package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/mail"
	"time"

	"wayfarer/cache"
	"wayfarer/events"
	"wayfarer/middleware"
	"wayfarer/models"
	"wayfarer/store"
	"wayfarer/utils"

	"github.com/julienschmidt/httprouter"
)

// UserStore is the slice of the persistence gateway the auth handlers use.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, user *models.User) (string, error)
}

type Handler struct {
	users  UserStore
	tokens *middleware.TokenService
	cache  *cache.Cache
	events *events.Emitter
}

func NewHandler(users UserStore, tokens *middleware.TokenService, c *cache.Cache, e *events.Emitter) *Handler {
	return &Handler{users: users, tokens: tokens, cache: c, events: e}
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup handles POST /api/signup.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name, email and password are required")
		return
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid email address")
		return
	}

	ctx := r.Context()
	_, err := h.users.FindByEmail(ctx, req.Email)
	if err == nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Email already registered")
		return
	}
	if !errors.Is(err, store.ErrNotFound) {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		log.Printf("signup: hash error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not process password")
		return
	}

	user := &models.User{
		Name:      req.Name,
		Email:     req.Email,
		Password:  hashed,
		CreatedAt: time.Now().UTC(),
	}
	userID, err := h.users.Insert(ctx, user)
	if err != nil {
		log.Printf("signup: insert error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	token, err := h.tokens.Issue(userID)
	if err != nil {
		log.Printf("signup: token error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	if err := h.cache.Set(ctx, fmt.Sprintf("users:%s", userID), user.Name); err != nil {
		log.Printf("signup: cache user name: %v", err)
	}
	h.events.Emit(ctx, events.Event{Name: "user-registered", EntityID: userID})

	utils.RespondWithJSON(w, http.StatusOK, models.AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user.Response(),
	})
}

// Login handles POST /api/auth/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if req.Email == "" || req.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	ctx := r.Context()
	user, err := h.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithError(w, http.StatusUnauthorized, "Incorrect email or password")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !VerifyPassword(req.Password, user.Password) {
		utils.RespondWithError(w, http.StatusUnauthorized, "Incorrect email or password")
		return
	}

	token, err := h.tokens.Issue(user.ID.Hex())
	if err != nil {
		log.Printf("login: token error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, models.AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user.Response(),
	})
}

// Me handles GET /api/auth/me. The user has already been resolved by the
// authentication middleware.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Could not validate credentials")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, user.Response())
}
