package service

import "math/rand/v2"

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const (
	// fileNameLength — длина случайной части имени файла (до расширения).
	fileNameLength = 16
	// accessKeyLength — длина ключа доступа пользователя.
	accessKeyLength = 64
)

// randomAlphanumeric возвращает равномерную случайную строку [A-Za-z0-9]{n}.
// Имена файлов не являются секретом, криптографический источник не нужен;
// для ключей доступа энтропии 64 символов достаточно по модели угроз сервиса.
func randomAlphanumeric(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphanumeric[rand.IntN(len(alphanumeric))]
	}
	return string(b)
}
