package handlers

import (
	"MediaHost/internal/config"
	"MediaHost/internal/middleware"
	"MediaHost/internal/service"
	"html/template"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// MediaHandler обрабатывает загрузку, выдачу и удаление файлов.
type MediaHandler struct {
	MediaService *service.MediaService
	Logger       *zap.SugaredLogger
	Config       *config.Config
}

// NewMediaHandler создаёт хендлер media
func NewMediaHandler(mediaService *service.MediaService, logger *zap.SugaredLogger, cfg *config.Config) *MediaHandler {
	return &MediaHandler{MediaService: mediaService, Logger: logger, Config: cfg}
}

// Upload принимает multipart-часть `file`, сохраняет содержимое
// под сгенерированным именем и возвращает имя в конверте {msg}.
// Остальные части формы игнорируются.
func (h *MediaHandler) Upload(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeUnauthorized(w)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		writeMsg(w, http.StatusBadRequest, "unable to find multipart field `file`.")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		writeMsg(w, http.StatusBadRequest, "error getting the bytes from field `file`.")
		return
	}

	fileName, upErr := h.MediaService.Upload(r.Context(), user, content)
	if upErr != nil {
		writeError(w, h.Logger, upErr)
		return
	}

	h.Logger.Infow("media uploaded", "file_name", fileName, "user_id", user.ID, "size", len(content))
	writeMsg(w, http.StatusOK, fileName)
}

// Get отдаёт сырые байты файла с его MIME-типом.
// Аутентификации нет: ссылки на media публичные.
func (h *MediaHandler) Get(w http.ResponseWriter, r *http.Request) {
	m, err := h.MediaService.Get(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}

	w.Header().Set("Content-Type", m.MimeType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(m.Content)
}

// embedTmpl — Open Graph / Twitter Card разметка для превью ссылок
// в мессенджерах. Чисто презентационный вид поверх того же поиска по имени.
var embedTmpl = template.Must(template.New("embed").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta property="og:title" content="{{.FileName}}">
<meta property="og:url" content="{{.URL}}">
<meta property="og:description" content="uploaded {{.CreatedAt}}">
{{- if .IsImage}}
<meta property="og:image" content="{{.URL}}">
<meta name="twitter:card" content="summary_large_image">
<meta name="twitter:image" content="{{.URL}}">
{{- else if .IsVideo}}
<meta property="og:video" content="{{.URL}}">
<meta property="og:video:type" content="{{.MimeType}}">
<meta name="twitter:card" content="player">
{{- end}}
</head>
</html>
`))

type embedData struct {
	FileName  string
	URL       string
	MimeType  string
	CreatedAt string
	IsImage   bool
	IsVideo   bool
}

// GetEmbed отдаёт HTML-страницу с метаданными файла.
// Падает с теми же ошибками, что и Get.
func (h *MediaHandler) GetEmbed(w http.ResponseWriter, r *http.Request) {
	m, err := h.MediaService.Get(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}

	data := embedData{
		FileName:  m.FileName,
		URL:       h.Config.ServerURL + "/media/" + m.FileName,
		MimeType:  m.MimeType,
		CreatedAt: m.CreatedAt.UTC().Format(time.RFC3339),
		IsImage:   strings.HasPrefix(m.MimeType, "image/"),
		IsVideo:   strings.HasPrefix(m.MimeType, "video/"),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := embedTmpl.Execute(w, data); err != nil {
		h.Logger.Errorw("GetEmbed: template error", "file_name", m.FileName, "error", err)
	}
}

// Delete удаляет файл по имени. Разрешено владельцу и админам.
func (h *MediaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeUnauthorized(w)
		return
	}

	name := chi.URLParam(r, "name")
	if err := h.MediaService.Delete(r.Context(), user, name); err != nil {
		writeError(w, h.Logger, err)
		return
	}

	h.Logger.Infow("media deleted", "file_name", name, "by", user.ID)
	writeMsg(w, http.StatusOK, "media deleted.")
}
