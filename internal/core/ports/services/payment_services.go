package services

import (
	"context"

	"github.com/quickway/travels_backoffice/internal/core/domain"
	"github.com/quickway/travels_backoffice/internal/dto"
)

// PaymentReaderSvc defines read operations for payments
type PaymentReaderSvc interface {
	GetPayment(ctx context.Context, p domain.Principal, id string) (*domain.Payment, error)
	ListPayments(ctx context.Context, p domain.Principal) ([]domain.Payment, error)
}

// PaymentWriterSvc defines write operations for payments
type PaymentWriterSvc interface {
	CreatePayment(ctx context.Context, p domain.Principal, req dto.PaymentRequest) (*domain.Payment, error)
	UpdatePayment(ctx context.Context, p domain.Principal, id string, req dto.UpdatePaymentRequest) (*domain.Payment, error)
	DeletePayment(ctx context.Context, p domain.Principal, id string) error
}

// PaymentSvcFacade combines all payment-related service interfaces
type PaymentSvcFacade interface {
	PaymentReaderSvc
	PaymentWriterSvc
}
