package handlers

import (
	"MediaHost/internal/config"
	"MediaHost/internal/middleware"
	"MediaHost/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	mediaService *service.MediaService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(userService))

	// Handlers
	userHandler := NewUserHandler(userService, logger)
	mediaHandler := NewMediaHandler(mediaService, logger, config)
	adminHandler := NewAdminHandler(userService, mediaService, logger)

	// Media routes
	r.Post("/media/upload", mediaHandler.Upload)
	r.Get("/media/{name}", mediaHandler.Get)
	r.Get("/media/{name}/embed", mediaHandler.GetEmbed)
	r.Delete("/media/delete/{name}", mediaHandler.Delete)

	// User routes
	r.Post("/user/register", userHandler.Register)
	r.Delete("/user/delete/{user}", userHandler.DeleteByID)
	r.Delete("/user/delete/", userHandler.DeleteSelf)

	// Admin routes
	r.Get("/admin/users", adminHandler.Users)
	r.Get("/admin/media", adminHandler.Media)

	return &Handler{Router: r}
}
