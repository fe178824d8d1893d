package services

import (
	"context"
	"strings"
	"time"

	"aliccedress/apperror"
	"aliccedress/models"

	"github.com/google/uuid"
)

// CheckoutHandler turns the cart contents into a confirmed order.
type CheckoutHandler interface {
	Checkout(ctx context.Context, order models.OrderRequest) (*models.OrderConfirmation, error)
}

// CheckoutFunc adapts a function to CheckoutHandler.
type CheckoutFunc func(ctx context.Context, order models.OrderRequest) (*models.OrderConfirmation, error)

func (f CheckoutFunc) Checkout(ctx context.Context, order models.OrderRequest) (*models.OrderConfirmation, error) {
	return f(ctx, order)
}

// OrderNotifier tells the customer about a confirmed order.
type OrderNotifier interface {
	SendOrderConfirmation(ctx context.Context, to string, order models.OrderConfirmation) error
}

// ConfirmationCheckout is the default handler. Receipts are skipped when
// no signer is configured.
type ConfirmationCheckout struct {
	receipts *ReceiptSigner
	now      func() time.Time
}

func NewConfirmationCheckout(receipts *ReceiptSigner) *ConfirmationCheckout {
	return &ConfirmationCheckout{receipts: receipts, now: time.Now}
}

func (c *ConfirmationCheckout) Checkout(_ context.Context, order models.OrderRequest) (*models.OrderConfirmation, error) {
	items := make([]models.CartLineItem, len(order.Items))
	copy(items, order.Items)

	confirmation := &models.OrderConfirmation{
		OrderNumber: newOrderNumber(),
		Total:       order.Total,
		ItemCount:   order.ItemCount,
		Items:       items,
		CreatedAt:   c.now().UTC(),
	}
	if order.Customer != nil {
		confirmation.CustomerEmail = order.Customer.Email
	}

	if c.receipts != nil {
		receipt, err := c.receipts.Sign(*confirmation)
		if err != nil {
			return nil, apperror.Wrap(apperror.CodeInternal, err, "failed to sign receipt")
		}
		confirmation.Receipt = receipt
	}

	return confirmation, nil
}

func newOrderNumber() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "ORD-" + strings.ToUpper(id[:8])
}
