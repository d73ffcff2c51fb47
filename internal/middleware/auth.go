package middleware

import (
	"MediaHost/internal/model"
	"MediaHost/internal/service"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

// Authenticator резолвит bearer-токен в пользователя.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*model.User, error)
}

type contextKey string

const userContextKey contextKey = "auth_user"

// WithAuth извлекает bearer-токен из Authorization и кладёт пользователя
// в контекст запроса. Отсутствующий или невалидный токен оставляет запрос
// анонимным — решение об отказе принимает хендлер. Сбой хранилища
// завершает запрос статусом 500 сразу.
func WithAuth(auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			user, err := auth.Authenticate(r.Context(), token)
			if err != nil {
				var se *service.Error
				if errors.As(err, &se) && se.Kind == service.KindUnauthorized {
					next.ServeHTTP(w, r)
					return
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(map[string]string{"msg": err.Error()})
				return
			}

			next.ServeHTTP(w, r.WithContext(
				context.WithValue(r.Context(), userContextKey, user),
			))
		})
	}
}

// GetUserFromContext возвращает аутентифицированного пользователя запроса.
func GetUserFromContext(ctx context.Context) (*model.User, bool) {
	u, ok := ctx.Value(userContextKey).(*model.User)
	return u, ok
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	// токен может приходить как "Bearer x", отрезаем префикс
	return strings.TrimPrefix(h, "Bearer ")
}
