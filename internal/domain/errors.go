package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Базовые (sentinel) ошибки. Типизированные ошибки ниже разворачиваются в них через errors.Is.
var (
	// ErrConfig — нет учётных данных Shopify; ни один запрос не может пройти.
	ErrConfig = errors.New("missing Shopify env vars")
	// ErrUpstream — ошибка транспорта, не-2xx или GraphQL errors от Shopify.
	ErrUpstream = errors.New("shopify storefront error")
	// ErrBadRequest — не хватает обязательного поля или оно некорректно.
	ErrBadRequest = errors.New("bad request")
	// ErrUnknownAction — неизвестное значение action.
	ErrUnknownAction = errors.New("unknown action")
	// ErrValidation — мутация вернула непустой userErrors.
	ErrValidation = errors.New("cart validation failed")
)

// UpstreamError — ошибка от Storefront API с первым сообщением из errors.
type UpstreamError struct {
	Message    string
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return ErrUpstream.Error()
}

func (e *UpstreamError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrUpstream, e.Err}
	}
	return []error{ErrUpstream}
}

// NewUpstreamError — конструктор; пустое сообщение заменяется общим.
func NewUpstreamError(status int, message string, cause error) *UpstreamError {
	if message == "" {
		message = "Shopify Storefront error"
	}
	return &UpstreamError{Message: message, StatusCode: status, Err: cause}
}

// BadRequestError — ошибка валидации запроса до обращения к Shopify.
type BadRequestError struct {
	Field  string
	Reason string
}

func (e *BadRequestError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("Invalid %s: %s", e.Field, e.Reason)
	}
	return "Missing " + e.Field
}

func (e *BadRequestError) Unwrap() error { return ErrBadRequest }

// ValidationError — userErrors из ответа мутации.
type ValidationError struct {
	UserErrors []UserError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.UserErrors))
	for _, ue := range e.UserErrors {
		msgs = append(msgs, ue.Message)
	}
	if len(msgs) == 0 {
		return ErrValidation.Error()
	}
	return strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }
