package bookitclient

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrBadRequest ответ 400: невалидный запрос или заполненный слот
	ErrBadRequest = errors.New("bookit client: bad request")

	// ErrNotFound ответ 404
	ErrNotFound = errors.New("bookit client: not found")

	// ErrServer ответ 5xx
	ErrServer = errors.New("bookit client: server error")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("bookit client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("bookit client: invalid response")
)

// APIError ответ API с success=false
type APIError struct {
	StatusCode int
	Message    string
	Field      string
}

func (e *APIError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("bookit api: status %d: %s (field %s)", e.StatusCode, e.Message, e.Field)
	}
	return fmt.Sprintf("bookit api: status %d: %s", e.StatusCode, e.Message)
}

// Unwrap позволяет проверять класс ошибки через errors.Is
func (e *APIError) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusBadRequest:
		return ErrBadRequest
	case e.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case e.StatusCode >= http.StatusInternalServerError:
		return ErrServer
	default:
		return nil
	}
}
