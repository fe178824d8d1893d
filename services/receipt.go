package services

import (
	"errors"
	"time"

	"aliccedress/apperror"
	"aliccedress/models"

	"github.com/golang-jwt/jwt/v5"
)

const receiptIssuer = "aliccedress"

var ErrInvalidReceipt = apperror.New(apperror.CodeValidation, "invalid or expired receipt")

type receiptClaims struct {
	models.ReceiptClaims
	jwt.RegisteredClaims
}

// ReceiptSigner issues and verifies HS256 order receipts.
type ReceiptSigner struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

func NewReceiptSigner(secret string, expiry time.Duration) *ReceiptSigner {
	return &ReceiptSigner{secret: []byte(secret), expiry: expiry, now: time.Now}
}

func (s *ReceiptSigner) Sign(order models.OrderConfirmation) (string, error) {
	issuedAt := s.now()
	claims := receiptClaims{
		ReceiptClaims: models.ReceiptClaims{
			OrderNumber:   order.OrderNumber,
			Total:         order.Total,
			ItemCount:     order.ItemCount,
			CustomerEmail: order.CustomerEmail,
		},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   receiptIssuer,
			Subject:  order.OrderNumber,
			IssuedAt: jwt.NewNumericDate(issuedAt),
		},
	}
	if s.expiry > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(issuedAt.Add(s.expiry))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *ReceiptSigner) Verify(tokenString string) (*models.ReceiptClaims, error) {
	claims := &receiptClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(receiptIssuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperror.Wrap(apperror.CodeValidation, err, "receipt expired")
		}
		return nil, apperror.Wrap(apperror.CodeValidation, err, ErrInvalidReceipt.Message())
	}
	return &claims.ReceiptClaims, nil
}
