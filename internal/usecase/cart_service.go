package usecase

import (
	"context"
	"time"

	"github.com/Gunvolt24/tma_shop/internal/domain"
	"github.com/Gunvolt24/tma_shop/internal/ports"
	"github.com/Gunvolt24/tma_shop/pkg/ctxmeta"
	"github.com/Gunvolt24/tma_shop/pkg/metrics"
)

// Проверка, что CartService удовлетворяет порту диспетчера.
var _ ports.CartDispatcher = (*CartService)(nil)

// CartService — диспетчер действий над корзиной (без знаний о транспорте).
type CartService struct {
	gateway   ports.CartGateway          // операции Storefront API
	validator ports.CartCommandValidator // проверка полей до запроса в Shopify
	events    ports.CartEventPublisher   // может быть nil — события не публикуются
	log       ports.Logger
	now       func() time.Time
}

// NewCartService — DI-конструктор.
func NewCartService(
	gateway ports.CartGateway,
	validator ports.CartCommandValidator,
	events ports.CartEventPublisher,
	log ports.Logger,
) *CartService {
	return &CartService{
		gateway:   gateway,
		validator: validator,
		events:    events,
		log:       log,
		now:       time.Now,
	}
}

// Dispatch — выполнить команду и вернуть корзину из ответа (на уровень ниже обёртки мутации).
// Ошибки:
//   - *domain.BadRequestError / domain.ErrUnknownAction — команда отклонена без сетевого запроса;
//   - *domain.ValidationError — мутация вернула userErrors;
//   - domain.ErrConfig / *domain.UpstreamError — от шлюза.
//
// get несуществующей корзины — (nil, nil).
func (s *CartService) Dispatch(ctx context.Context, cmd domain.CartCommand) (*domain.Cart, error) {
	label := actionLabel(cmd.Action)

	if err := s.validator.Validate(ctx, &cmd); err != nil {
		metrics.CartActions.WithLabelValues(label, metrics.OutcomeRejected).Inc()
		s.log.Warnf(ctx, "cart command rejected action=%q err=%v", cmd.Action, err)
		return nil, err
	}

	start := time.Now()
	cart, userErrs, err := s.execute(ctx, cmd)
	if err != nil {
		metrics.CartActions.WithLabelValues(label, metrics.OutcomeError).Inc()
		s.log.Errorf(ctx, "cart %s failed cart_id=%s err=%v", cmd.Action, cmd.CartID, err)
		return nil, err
	}
	if len(userErrs) > 0 {
		metrics.CartActions.WithLabelValues(label, metrics.OutcomeRejected).Inc()
		verr := &domain.ValidationError{UserErrors: userErrs}
		s.log.Warnf(ctx, "cart %s user errors cart_id=%s err=%v", cmd.Action, cmd.CartID, verr)
		return nil, verr
	}
	if cmd.Action.Mutates() && cart == nil {
		metrics.CartActions.WithLabelValues(label, metrics.OutcomeError).Inc()
		s.log.Errorf(ctx, "cart %s returned no cart cart_id=%s", cmd.Action, cmd.CartID)
		return nil, domain.NewUpstreamError(0, "Shopify returned no cart", nil)
	}

	metrics.CartActions.WithLabelValues(label, metrics.OutcomeOK).Inc()
	s.log.Infof(ctx, "cart %s ok cart_id=%s took=%s", cmd.Action, cartID(cart, cmd), time.Since(start))

	if cmd.Action.Mutates() {
		s.publish(ctx, cmd.Action, cart)
	}
	return cart, nil
}

// execute — сопоставление действия и операции Storefront API.
func (s *CartService) execute(ctx context.Context, cmd domain.CartCommand) (*domain.Cart, []domain.UserError, error) {
	switch cmd.Action {
	case domain.CartActionCreate:
		return s.gateway.CreateCart(ctx)

	case domain.CartActionAdd:
		qty, _, _ := cmd.ParseQuantity()
		if qty == 0 {
			qty = 1
		}
		return s.gateway.AddLine(ctx, cmd.CartID, cmd.MerchandiseID, qty)

	case domain.CartActionGet:
		cart, err := s.gateway.GetCart(ctx, cmd.CartID)
		return cart, nil, err

	case domain.CartActionUpdate:
		// 0 пропускается: Shopify удаляет строку
		qty, _, _ := cmd.ParseQuantity()
		return s.gateway.UpdateLine(ctx, cmd.CartID, cmd.LineID, qty)

	case domain.CartActionRemove:
		return s.gateway.RemoveLine(ctx, cmd.CartID, cmd.LineID)

	default:
		return nil, nil, domain.ErrUnknownAction
	}
}

// publish — событие об изменении корзины. Ошибка публикации запрос не ломает.
func (s *CartService) publish(ctx context.Context, action domain.CartAction, cart *domain.Cart) {
	if s.events == nil {
		return
	}

	event := domain.CartEvent{
		Action:        action,
		CartID:        cart.ID,
		TotalQuantity: cart.TotalQuantity,
		OccurredAt:    s.now().UTC(),
	}
	if rid, ok := ctxmeta.RequestIDFromContext(ctx); ok {
		event.RequestID = rid
	}

	if err := s.events.Publish(ctx, event); err != nil {
		metrics.CartEventsPublished.WithLabelValues(metrics.OutcomeError).Inc()
		s.log.Warnf(ctx, "publish cart event failed action=%s cart_id=%s err=%v", action, cart.ID, err)
		return
	}
	metrics.CartEventsPublished.WithLabelValues(metrics.OutcomeOK).Inc()
}

func actionLabel(a domain.CartAction) string {
	switch a {
	case domain.CartActionCreate, domain.CartActionAdd, domain.CartActionGet,
		domain.CartActionUpdate, domain.CartActionRemove:
		return string(a)
	default:
		return "unknown"
	}
}

func cartID(cart *domain.Cart, cmd domain.CartCommand) string {
	if cart != nil {
		return cart.ID
	}
	return cmd.CartID
}
