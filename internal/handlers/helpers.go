package handlers

import (
	"MediaHost/internal/service"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// Response — единый конверт для небинарных ответов:
// msg несёт либо полезную нагрузку, либо текст ошибки.
type Response struct {
	Msg string `json:"msg"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMsg(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, Response{Msg: msg})
}

// writeError маппит ошибку сервиса на HTTP-статус и конверт {msg}.
// Ошибки по вине клиента (400/401/404) фолтами не считаются и не логируются.
func writeError(w http.ResponseWriter, logger *zap.SugaredLogger, err error) {
	var se *service.Error
	if !errors.As(err, &se) {
		se = service.ErrInternal(err)
	}

	switch se.Kind {
	case service.KindNotFound:
		writeMsg(w, http.StatusNotFound, se.Msg)
	case service.KindBadRequest:
		writeMsg(w, http.StatusBadRequest, se.Msg)
	case service.KindUnauthorized:
		writeMsg(w, http.StatusUnauthorized, se.Msg)
	default:
		logger.Errorw("store failure", "error", se.Msg)
		writeMsg(w, http.StatusInternalServerError, se.Msg)
	}
}

// writeUnauthorized — отказ для запросов без валидного bearer-токена.
func writeUnauthorized(w http.ResponseWriter) {
	writeMsg(w, http.StatusUnauthorized, "authorization key is invalid.")
}
