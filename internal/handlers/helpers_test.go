package handlers_test

import (
	"MediaHost/internal/config"
	"MediaHost/internal/handlers"
	"MediaHost/internal/model"
	"MediaHost/internal/repo"
	"MediaHost/internal/service"
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// сигнатура PNG + кусок заголовка IHDR
var pngBytes = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D, 'I', 'H', 'D', 'R'}

// newTestServer поднимает роутер поверх реальных репозиториев на in-memory SQLite.
func newTestServer(t *testing.T) (http.Handler, *gorm.DB, *config.Config) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	db, err := gorm.Open(dial, &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.Media{}); err != nil {
		t.Fatalf("failed to automigrate: %v", err)
	}

	cfg := &config.Config{InviteKey: "test-invite", ServerURL: "http://localhost:8081"}
	logger := zap.NewNop().Sugar()

	userSvc := service.NewUserService(repo.NewUserRepository(db), cfg)
	mediaSvc := service.NewMediaService(repo.NewMediaRepository(db))

	h := handlers.NewHandler(userSvc, mediaSvc, logger, cfg)
	return h.Router, db, cfg
}

// seedUser вставляет пользователя напрямую в БД и возвращает его.
func seedUser(t *testing.T, db *gorm.DB, username, accessKey string, isAdmin bool) *model.User {
	t.Helper()
	u := &model.User{
		ID:        uuid.NewString(),
		Username:  username,
		AccessKey: accessKey,
		IsAdmin:   isAdmin,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("failed to seed user %q: %v", username, err)
	}
	return u
}

// multipartFile собирает multipart-тело с одной частью заданного имени.
func multipartFile(t *testing.T, field string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, "upload.bin")
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	_, _ = fw.Write(content)
	_ = mw.Close()
	return &buf, mw.FormDataContentType()
}

// doRequest выполняет запрос к роутеру, опционально с bearer-токеном.
func doRequest(t *testing.T, router http.Handler, method, target, token string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	if body == nil {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// decodeMsg разбирает конверт {"msg": ...}
func decodeMsg(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Msg string `json:"msg"`
	}
	assert.NoError(t, json.NewDecoder(bytes.NewReader(rr.Body.Bytes())).Decode(&resp))
	return resp.Msg
}

// uploadPNG загружает pngBytes от имени token и возвращает сгенерированное имя.
func uploadPNG(t *testing.T, router http.Handler, token string) string {
	t.Helper()
	body, ct := multipartFile(t, "file", pngBytes)
	rr := doRequest(t, router, http.MethodPost, "/media/upload", token, body, ct)
	assert.Equal(t, http.StatusOK, rr.Code)
	name := decodeMsg(t, rr)
	assert.True(t, strings.HasSuffix(name, ".png"), "uploaded name %q must end in .png", name)
	return name
}
