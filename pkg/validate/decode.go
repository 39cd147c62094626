package validate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/Gunvolt24/tma_shop/internal/domain"
)

// ErrInvalidJSON — тело запроса не разбирается как JSON-объект команды.
var ErrInvalidJSON = errors.New("invalid json")

// DecodeCartCommand — разбор команды из тела запроса. Поля проверяет CartCommandValidator.
// Лишние поля игнорируются, данные после объекта — ошибка.
func DecodeCartCommand(raw []byte) (*domain.CartCommand, error) {
	var cmd domain.CartCommand
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(&cmd); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	// гарантируем отсутствие данных после объекта
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data", ErrInvalidJSON)
	}
	return &cmd, nil
}
