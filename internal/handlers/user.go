package handlers

import (
	"MediaHost/internal/middleware"
	"MediaHost/internal/service"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// UserHandler обрабатывает регистрацию и удаление пользователей.
type UserHandler struct {
	UserService *service.UserService
	Logger      *zap.SugaredLogger
}

// NewUserHandler создаёт хендлер users
func NewUserHandler(userService *service.UserService, logger *zap.SugaredLogger) *UserHandler {
	return &UserHandler{UserService: userService, Logger: logger}
}

// RegisterRequest — тело запроса регистрации: имя и инвайт-ключ.
type RegisterRequest struct {
	Username string `json:"username"`
	Key      string `json:"key"`
}

// Register регистрирует пользователя и возвращает его ключ доступа.
// Ключ показывается только здесь, восстановить или сменить его нельзя.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Register: invalid request body", "error", err)
		writeMsg(w, http.StatusBadRequest, "invalid request body.")
		return
	}

	accessKey, err := h.UserService.Register(r.Context(), req.Username, req.Key)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}

	writeMsg(w, http.StatusOK, accessKey)
}

// DeleteSelf удаляет вызывающего пользователя и все его файлы.
func (h *UserHandler) DeleteSelf(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeUnauthorized(w)
		return
	}

	if err := h.UserService.DeleteSelf(r.Context(), user); err != nil {
		writeError(w, h.Logger, err)
		return
	}

	h.Logger.Infow("user deleted", "user_id", user.ID, "by", user.ID)
	writeMsg(w, http.StatusOK, "user deleted.")
}

// DeleteByID удаляет пользователя по id. Только для админов.
func (h *UserHandler) DeleteByID(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeUnauthorized(w)
		return
	}

	targetID := chi.URLParam(r, "user")
	if err := h.UserService.DeleteByID(r.Context(), user, targetID); err != nil {
		writeError(w, h.Logger, err)
		return
	}

	h.Logger.Infow("user deleted", "user_id", targetID, "by", user.ID)
	writeMsg(w, http.StatusOK, "user deleted.")
}
