package service

// Kind классифицирует ошибки бизнес-логики; хендлеры маппят их на HTTP-статусы.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindBadRequest
	KindUnauthorized
)

// Error — единый тип ошибки слоя сервисов. Msg отдаётся клиенту как есть
// в конверте {"msg": ...}.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

// ErrNotFound — запрошенный ресурс не существует.
func ErrNotFound() *Error {
	return &Error{Kind: KindNotFound, Msg: "resource not found."}
}

// ErrBadRequest — ошибка по вине клиента.
func ErrBadRequest(msg string) *Error {
	return &Error{Kind: KindBadRequest, Msg: msg}
}

// ErrUnauthorized — нет прав на операцию.
func ErrUnauthorized(msg string) *Error {
	return &Error{Kind: KindUnauthorized, Msg: msg}
}

// ErrInternal оборачивает ошибку хранилища; сообщение отдаётся наружу,
// повторов не делаем — любой сбой БД терминален для запроса.
func ErrInternal(err error) *Error {
	return &Error{Kind: KindInternal, Msg: err.Error()}
}
