package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/Gunvolt24/tma_shop/internal/domain"
	"github.com/Gunvolt24/tma_shop/internal/ports/mocks"
	"github.com/Gunvolt24/tma_shop/internal/usecase"
	"github.com/Gunvolt24/tma_shop/pkg/ctxmeta"
	"github.com/Gunvolt24/tma_shop/pkg/validate"
	"github.com/golang/mock/gomock"
)

const (
	cartGID    = "gid://shopify/Cart/c1"
	variantGID = "gid://shopify/ProductVariant/v1"
	lineGID    = "gid://shopify/CartLine/l1"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func cartWithLine(qty int) *domain.Cart {
	return &domain.Cart{
		ID:            cartGID,
		CheckoutURL:   "https://demo/checkout",
		TotalQuantity: qty,
		Lines: &domain.CartLineConnection{Edges: []domain.CartLineEdge{
			{Node: domain.CartLine{ID: lineGID, Quantity: qty, Merchandise: domain.Merchandise{ID: variantGID}}},
		}},
	}
}

func TestDispatch_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockCartGateway(ctrl)
	events := mocks.NewMockCartEventPublisher(ctrl)

	empty := &domain.Cart{ID: cartGID, CheckoutURL: "https://demo/checkout"}
	gw.EXPECT().CreateCart(gomock.Any()).Return(empty, nil, nil)
	events.EXPECT().Publish(gomock.Any(), gomock.AssignableToTypeOf(domain.CartEvent{})).
		DoAndReturn(func(_ context.Context, e domain.CartEvent) error {
			if e.Action != domain.CartActionCreate || e.CartID != cartGID || e.TotalQuantity != 0 || e.RequestID != "rid-1" {
				t.Fatalf("unexpected event: %+v", e)
			}
			return nil
		})

	svc := usecase.NewCartService(gw, validate.NewCartCommandValidator(), events, noopLogger{})

	ctx := ctxmeta.WithRequestID(context.Background(), "rid-1")
	got, err := svc.Dispatch(ctx, domain.CartCommand{Action: domain.CartActionCreate})
	if err != nil || got == nil || got.ID != cartGID || got.TotalQuantity != 0 || got.CheckoutURL == "" {
		t.Fatalf("unexpected result: cart=%+v err=%v", got, err)
	}
}

func TestDispatch_Add_SingleLine(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockCartGateway(ctrl)

	gw.EXPECT().AddLine(gomock.Any(), cartGID, variantGID, 2).Return(cartWithLine(2), nil, nil).Times(1)

	svc := usecase.NewCartService(gw, validate.NewCartCommandValidator(), nil, noopLogger{})

	got, err := svc.Dispatch(context.Background(), domain.CartCommand{
		Action: domain.CartActionAdd, CartID: cartGID, MerchandiseID: variantGID, Quantity: domain.QuantityJSON(2),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.TotalQuantity != 2 || len(got.LineNodes()) != 1 || got.LineNodes()[0].Quantity != 2 {
		t.Fatalf("unexpected cart: %+v", got)
	}
}

func TestDispatch_Add_DefaultsQuantityToOne(t *testing.T) {
	for _, raw := range []json.RawMessage{nil, json.RawMessage("0"), json.RawMessage("null")} {
		ctrl := gomock.NewController(t)
		gw := mocks.NewMockCartGateway(ctrl)
		gw.EXPECT().AddLine(gomock.Any(), cartGID, variantGID, 1).Return(cartWithLine(1), nil, nil)

		svc := usecase.NewCartService(gw, validate.NewCartCommandValidator(), nil, noopLogger{})
		if _, err := svc.Dispatch(context.Background(), domain.CartCommand{
			Action: domain.CartActionAdd, CartID: cartGID, MerchandiseID: variantGID, Quantity: raw,
		}); err != nil {
			t.Fatalf("quantity %q: unexpected error: %v", raw, err)
		}
		ctrl.Finish()
	}
}

func TestDispatch_Update_ZeroForwarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockCartGateway(ctrl)

	emptied := &domain.Cart{ID: cartGID, CheckoutURL: "https://demo/checkout", Lines: &domain.CartLineConnection{}}
	gw.EXPECT().UpdateLine(gomock.Any(), cartGID, lineGID, 0).Return(emptied, nil, nil)

	svc := usecase.NewCartService(gw, validate.NewCartCommandValidator(), nil, noopLogger{})

	got, err := svc.Dispatch(context.Background(), domain.CartCommand{
		Action: domain.CartActionUpdate, CartID: cartGID, LineID: lineGID, Quantity: domain.QuantityJSON(0),
	})
	if err != nil || got.TotalQuantity != 0 {
		t.Fatalf("unexpected result: cart=%+v err=%v", got, err)
	}
}

func TestDispatch_Remove(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockCartGateway(ctrl)
	gw.EXPECT().RemoveLine(gomock.Any(), cartGID, lineGID).Return(&domain.Cart{ID: cartGID}, nil, nil)

	svc := usecase.NewCartService(gw, validate.NewCartCommandValidator(), nil, noopLogger{})
	if _, err := svc.Dispatch(context.Background(), domain.CartCommand{
		Action: domain.CartActionRemove, CartID: cartGID, LineID: lineGID,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDispatch_Get_UnknownCart(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockCartGateway(ctrl)
	events := mocks.NewMockCartEventPublisher(ctrl)

	gw.EXPECT().GetCart(gomock.Any(), cartGID).Return(nil, nil)
	events.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	svc := usecase.NewCartService(gw, validate.NewCartCommandValidator(), events, noopLogger{})

	got, err := svc.Dispatch(context.Background(), domain.CartCommand{Action: domain.CartActionGet, CartID: cartGID})
	if err != nil || got != nil {
		t.Fatalf("want (nil, nil), got (%+v, %v)", got, err)
	}
}

func TestDispatch_ValidationFailed_NoUpstreamCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockCartGateway(ctrl)
	validator := mocks.NewMockCartCommandValidator(ctrl)

	want := &domain.BadRequestError{Field: "cartId"}
	validator.EXPECT().Validate(gomock.Any(), gomock.AssignableToTypeOf(&domain.CartCommand{})).Return(want)
	// шлюз не должен вызываться вовсе — gomock упадёт на неожиданном вызове

	svc := usecase.NewCartService(gw, validator, nil, noopLogger{})

	_, err := svc.Dispatch(context.Background(), domain.CartCommand{Action: domain.CartActionGet})
	if !errors.Is(err, domain.ErrBadRequest) {
		t.Fatalf("want ErrBadRequest, got %v", err)
	}
}

func TestDispatch_UnknownAction(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockCartGateway(ctrl)

	svc := usecase.NewCartService(gw, validate.NewCartCommandValidator(), nil, noopLogger{})

	_, err := svc.Dispatch(context.Background(), domain.CartCommand{Action: "checkout"})
	if !errors.Is(err, domain.ErrUnknownAction) {
		t.Fatalf("want ErrUnknownAction, got %v", err)
	}
}

func TestDispatch_UserErrorsSurface(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockCartGateway(ctrl)
	events := mocks.NewMockCartEventPublisher(ctrl)

	userErrs := []domain.UserError{{Field: []string{"lines", "0", "merchandiseId"}, Message: "The merchandise does not exist"}}
	gw.EXPECT().AddLine(gomock.Any(), cartGID, "gid://bad", 1).Return(nil, userErrs, nil)
	events.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	svc := usecase.NewCartService(gw, validate.NewCartCommandValidator(), events, noopLogger{})

	_, err := svc.Dispatch(context.Background(), domain.CartCommand{
		Action: domain.CartActionAdd, CartID: cartGID, MerchandiseID: "gid://bad",
	})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) || !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("want ValidationError, got %v", err)
	}
	if len(verr.UserErrors) != 1 || verr.Error() != "The merchandise does not exist" {
		t.Fatalf("unexpected user errors: %+v", verr.UserErrors)
	}
}

func TestDispatch_UpstreamError(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockCartGateway(ctrl)

	gw.EXPECT().GetCart(gomock.Any(), cartGID).Return(nil, domain.NewUpstreamError(502, "Bad gateway", nil))

	svc := usecase.NewCartService(gw, validate.NewCartCommandValidator(), nil, noopLogger{})

	_, err := svc.Dispatch(context.Background(), domain.CartCommand{Action: domain.CartActionGet, CartID: cartGID})
	if !errors.Is(err, domain.ErrUpstream) {
		t.Fatalf("want ErrUpstream, got %v", err)
	}
}

func TestDispatch_MutationWithoutCart(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockCartGateway(ctrl)
	gw.EXPECT().CreateCart(gomock.Any()).Return(nil, nil, nil)

	svc := usecase.NewCartService(gw, validate.NewCartCommandValidator(), nil, noopLogger{})

	if _, err := svc.Dispatch(context.Background(), domain.CartCommand{Action: domain.CartActionCreate}); !errors.Is(err, domain.ErrUpstream) {
		t.Fatalf("want ErrUpstream, got %v", err)
	}
}

func TestDispatch_PublishFailureIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockCartGateway(ctrl)
	events := mocks.NewMockCartEventPublisher(ctrl)

	gw.EXPECT().RemoveLine(gomock.Any(), cartGID, lineGID).Return(&domain.Cart{ID: cartGID}, nil, nil)
	events.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	svc := usecase.NewCartService(gw, validate.NewCartCommandValidator(), events, noopLogger{})

	got, err := svc.Dispatch(context.Background(), domain.CartCommand{
		Action: domain.CartActionRemove, CartID: cartGID, LineID: lineGID,
	})
	if err != nil || got == nil {
		t.Fatalf("publish failure must not fail request: cart=%+v err=%v", got, err)
	}
}
