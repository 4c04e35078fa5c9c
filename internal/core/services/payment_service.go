package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/quickway/travels_backoffice/internal/apperrors"
	"github.com/quickway/travels_backoffice/internal/core/domain"
	portsrepo "github.com/quickway/travels_backoffice/internal/core/ports/repositories"
	portssvc "github.com/quickway/travels_backoffice/internal/core/ports/services"
	"github.com/quickway/travels_backoffice/internal/dto"
	"github.com/quickway/travels_backoffice/internal/platform/events"
	"github.com/shopspring/decimal"
)

type paymentService struct {
	BaseService
	paymentRepo portsrepo.PaymentRepositoryFacade
}

// NewPaymentService creates the supplier payment service.
func NewPaymentService(paymentRepo portsrepo.PaymentRepositoryFacade, policy portssvc.AccessPolicySvc, publisher events.Publisher) portssvc.PaymentSvcFacade {
	return &paymentService{
		BaseService: BaseService{Policy: policy, Publisher: publisher},
		paymentRepo: paymentRepo,
	}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

func (s *paymentService) load(ctx context.Context, p domain.Principal, id string, action domain.Action) (*domain.Payment, error) {
	if err := s.Authorize(ctx, p, domain.ResourcePayment, action); err != nil {
		return nil, err
	}
	if err := ValidateID(id); err != nil {
		return nil, err
	}
	payment, err := s.paymentRepo.FindPaymentByID(ctx, id)
	if err != nil {
		s.logUnlessNotFound(ctx, err, "Failed to find payment by ID", slog.String("payment_id", id))
		return nil, err
	}
	if err := s.AuthorizeRecord(ctx, p, domain.ResourcePayment, action, payment.Provenance); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *paymentService) GetPayment(ctx context.Context, p domain.Principal, id string) (*domain.Payment, error) {
	return s.load(ctx, p, id, domain.ActionRead)
}

func (s *paymentService) ListPayments(ctx context.Context, p domain.Principal) ([]domain.Payment, error) {
	scope, err := s.ListScope(ctx, p, domain.ResourcePayment)
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.ListPayments(ctx, scope)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments")
		return nil, err
	}
	return payments, nil
}

func checkPaymentAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return apperrors.NewValidationError("amount must be positive")
	}
	return domain.CheckMoney("amount", amount)
}

func parsePaymentDate(raw string) (time.Time, error) {
	parsed, err := dto.ParseDate(raw)
	if err != nil || parsed == nil {
		return time.Time{}, apperrors.NewValidationError("paymentDate must be YYYY-MM-DD")
	}
	return *parsed, nil
}

func (s *paymentService) CreatePayment(ctx context.Context, p domain.Principal, req dto.PaymentRequest) (*domain.Payment, error) {
	if err := s.Authorize(ctx, p, domain.ResourcePayment, domain.ActionCreate); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.SupplierName)
	if name == "" {
		return nil, apperrors.NewValidationError("supplierName must not be blank")
	}
	if err := checkPaymentAmount(req.Amount); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	paymentDate := now.Truncate(24 * time.Hour)
	if req.PaymentDate != "" {
		parsed, err := parsePaymentDate(req.PaymentDate)
		if err != nil {
			return nil, err
		}
		paymentDate = parsed
	}

	payment := domain.Payment{
		ID:            uuid.NewString(),
		SupplierName:  name,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		PaymentDate:   paymentDate,
		Reference:     req.Reference,
		Remarks:       req.Remarks,
		Provenance:    domain.NewProvenance(p, now),
		UpdatedAt:     now,
	}

	if err := s.paymentRepo.SavePayment(ctx, payment); err != nil {
		s.LogError(ctx, err, "Failed to save payment", slog.String("supplier_name", payment.SupplierName))
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	s.LogInfo(ctx, "Payment created",
		slog.String("payment_id", payment.ID),
		slog.String("office_id", payment.OfficeID),
		slog.String("amount", payment.Amount.StringFixed(2)))
	s.Publish(ctx, events.Event{
		Type:       events.PaymentCreated,
		Key:        payment.ID,
		OfficeID:   payment.OfficeID,
		Actor:      p.Email,
		OccurredAt: now,
		Payload:    payment,
	})
	return &payment, nil
}

// applyPaymentUpdate copies the fields present in req onto payment and reports whether anything changed.
func applyPaymentUpdate(payment *domain.Payment, req dto.UpdatePaymentRequest) (bool, error) {
	changed := false
	if req.SupplierName != nil {
		name := strings.TrimSpace(*req.SupplierName)
		if name == "" {
			return false, apperrors.NewValidationError("supplierName must not be blank")
		}
		if name != payment.SupplierName {
			payment.SupplierName = name
			changed = true
		}
	}
	if req.Amount != nil {
		if err := checkPaymentAmount(*req.Amount); err != nil {
			return false, err
		}
		if !req.Amount.Equal(payment.Amount) {
			payment.Amount = *req.Amount
			changed = true
		}
	}
	if req.PaymentDate != nil {
		date, err := parsePaymentDate(*req.PaymentDate)
		if err != nil {
			return false, err
		}
		if !date.Equal(payment.PaymentDate) {
			payment.PaymentDate = date
			changed = true
		}
	}
	if req.PaymentMethod != nil && *req.PaymentMethod != payment.PaymentMethod {
		payment.PaymentMethod = *req.PaymentMethod
		changed = true
	}
	if req.Reference != nil && *req.Reference != payment.Reference {
		payment.Reference = *req.Reference
		changed = true
	}
	if req.Remarks != nil && *req.Remarks != payment.Remarks {
		payment.Remarks = *req.Remarks
		changed = true
	}
	return changed, nil
}

func (s *paymentService) UpdatePayment(ctx context.Context, p domain.Principal, id string, req dto.UpdatePaymentRequest) (*domain.Payment, error) {
	payment, err := s.load(ctx, p, id, domain.ActionUpdate)
	if err != nil {
		return nil, err
	}
	changed, err := applyPaymentUpdate(payment, req)
	if err != nil {
		return nil, err
	}
	if !changed {
		return nil, apperrors.ErrNoChange
	}
	payment.UpdatedAt = time.Now().UTC()
	if err := s.paymentRepo.UpdatePayment(ctx, *payment); err != nil {
		s.LogError(ctx, err, "Failed to update payment", slog.String("payment_id", id))
		return nil, fmt.Errorf("failed to update payment: %w", err)
	}
	return payment, nil
}

func (s *paymentService) DeletePayment(ctx context.Context, p domain.Principal, id string) error {
	if _, err := s.load(ctx, p, id, domain.ActionDelete); err != nil {
		return err
	}
	if err := s.paymentRepo.DeletePayment(ctx, id); err != nil {
		s.logUnlessNotFound(ctx, err, "Failed to delete payment", slog.String("payment_id", id))
		return err
	}
	s.LogInfo(ctx, "Payment deleted", slog.String("payment_id", id))
	return nil
}
