package handlers

import (
	"MediaHost/internal/middleware"
	"MediaHost/internal/service"
	"net/http"

	"go.uber.org/zap"
)

// AdminHandler — админские списки пользователей и файлов.
type AdminHandler struct {
	UserService  *service.UserService
	MediaService *service.MediaService
	Logger       *zap.SugaredLogger
}

func NewAdminHandler(userService *service.UserService, mediaService *service.MediaService, logger *zap.SugaredLogger) *AdminHandler {
	return &AdminHandler{UserService: userService, MediaService: mediaService, Logger: logger}
}

// Users возвращает всех пользователей (включая их ключи доступа).
func (h *AdminHandler) Users(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeUnauthorized(w)
		return
	}

	users, err := h.UserService.ListUsers(r.Context(), user)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}

	writeJSON(w, http.StatusOK, users)
}

// Media возвращает метаданные всех файлов, без содержимого.
func (h *AdminHandler) Media(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeUnauthorized(w)
		return
	}

	infos, err := h.MediaService.ListInfo(r.Context(), user)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}

	writeJSON(w, http.StatusOK, infos)
}
