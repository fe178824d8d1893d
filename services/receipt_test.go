package services

import (
	"testing"
	"time"

	"aliccedress/apperror"
	"aliccedress/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReceiptRoundTrip(t *testing.T) {
	signer := NewReceiptSigner("receipt-secret", time.Hour)

	token, err := signer.Sign(models.OrderConfirmation{OrderNumber: "ORD-1", Total: 17197, ItemCount: 3, CustomerEmail: "a@b.com"})
	require.NoError(t, err)

	claims, err := signer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, models.ReceiptClaims{OrderNumber: "ORD-1", Total: 17197, ItemCount: 3, CustomerEmail: "a@b.com"}, *claims)
}

func TestReceiptRejectsOtherSecret(t *testing.T) {
	token, err := NewReceiptSigner("one", time.Hour).Sign(models.OrderConfirmation{OrderNumber: "ORD-1"})
	require.NoError(t, err)

	_, err = NewReceiptSigner("two", time.Hour).Verify(token)

	assert.Equal(t, apperror.CodeValidation, apperror.CodeOf(err))
}

func TestReceiptExpires(t *testing.T) {
	signer := NewReceiptSigner("receipt-secret", time.Hour)
	issued := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	signer.now = func() time.Time { return issued }

	token, err := signer.Sign(models.OrderConfirmation{OrderNumber: "ORD-1"})
	require.NoError(t, err)

	signer.now = func() time.Time { return issued.Add(2 * time.Hour) }
	_, err = signer.Verify(token)

	require.Error(t, err)
	assert.Equal(t, "receipt expired", apperror.As(err).Message())
}

func TestReceiptRejectsGarbage(t *testing.T) {
	_, err := NewReceiptSigner("s", time.Hour).Verify("not-a-token")

	assert.Equal(t, apperror.CodeValidation, apperror.CodeOf(err))
}
