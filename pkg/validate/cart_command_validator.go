package validate

import (
	"context"
	"fmt"
	"strings"

	"github.com/Gunvolt24/tma_shop/internal/domain"
	"github.com/Gunvolt24/tma_shop/internal/ports"
)

// Проверка, что CartCommandValidator удовлетворяет интерфейсу порта.
var _ ports.CartCommandValidator = (*CartCommandValidator)(nil)

// CartCommandValidator — проверка команды /api/cart до обращения к Shopify.
// Ошибки: *domain.BadRequestError с именем поля или domain.ErrUnknownAction.
type CartCommandValidator struct{}

// NewCartCommandValidator — конструктор CartCommandValidator.
func NewCartCommandValidator() *CartCommandValidator { return &CartCommandValidator{} }

// Validate — проверяет обязательные поля для действия команды.
func (v *CartCommandValidator) Validate(_ context.Context, cmd *domain.CartCommand) error {
	if cmd == nil {
		return &domain.BadRequestError{Field: "action"}
	}

	switch cmd.Action {
	case domain.CartActionCreate:
		return nil

	case domain.CartActionAdd:
		if err := required("cartId", cmd.CartID); err != nil {
			return err
		}
		if err := required("merchandiseId", cmd.MerchandiseID); err != nil {
			return err
		}
		// quantity необязателен, но если передан — только число
		if _, _, err := cmd.ParseQuantity(); err != nil {
			return &domain.BadRequestError{Field: "quantity", Reason: err.Error()}
		}
		return nil

	case domain.CartActionGet:
		return required("cartId", cmd.CartID)

	case domain.CartActionUpdate:
		if err := required("cartId", cmd.CartID); err != nil {
			return err
		}
		if err := required("lineId", cmd.LineID); err != nil {
			return err
		}
		_, present, err := cmd.ParseQuantity()
		if err != nil {
			return &domain.BadRequestError{Field: "quantity", Reason: err.Error()}
		}
		if !present {
			return &domain.BadRequestError{Field: "quantity"}
		}
		return nil

	case domain.CartActionRemove:
		if err := required("cartId", cmd.CartID); err != nil {
			return err
		}
		return required("lineId", cmd.LineID)

	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownAction, cmd.Action)
	}
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &domain.BadRequestError{Field: field}
	}
	return nil
}
