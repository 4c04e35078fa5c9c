package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/quickway/travels_backoffice/internal/apperrors"
	"github.com/quickway/travels_backoffice/internal/core/domain"
	portssvc "github.com/quickway/travels_backoffice/internal/core/ports/services"
	"github.com/quickway/travels_backoffice/internal/core/services"
	"github.com/quickway/travels_backoffice/internal/dto"
	"github.com/quickway/travels_backoffice/internal/platform/events"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PaymentServiceTestSuite struct {
	suite.Suite
	mockRepo  *MockPaymentRepository
	publisher *MockPublisher
	service   portssvc.PaymentSvcFacade
}

func (s *PaymentServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockPaymentRepository)
	s.publisher = new(MockPublisher)
	s.service = services.NewPaymentService(s.mockRepo, services.NewAccessPolicy(), s.publisher)
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}

func (s *PaymentServiceTestSuite) TestCreatePayment_SalesMayRecord() {
	ctx := context.Background()
	req := dto.PaymentRequest{SupplierName: "Sky Tours", Amount: decimal.NewFromInt(1200), PaymentDate: "2024-03-02"}
	s.mockRepo.On("SavePayment", ctx, mock.MatchedBy(func(p domain.Payment) bool {
		return p.OfficeID == "A" && p.CreatedBy == salesA.Email && p.Amount.Equal(req.Amount)
	})).Return(nil).Once()
	s.publisher.On("Publish", ctx, mock.MatchedBy(func(e events.Event) bool {
		return e.Type == events.PaymentCreated && e.OfficeID == "A"
	})).Return(nil).Once()

	payment, err := s.service.CreatePayment(ctx, salesA, req)

	s.Require().NoError(err)
	s.Equal("2024-03-02", payment.PaymentDate.Format("2006-01-02"))
	s.mockRepo.AssertExpectations(s.T())
	s.publisher.AssertExpectations(s.T())
}

func (s *PaymentServiceTestSuite) TestCreatePayment_PublishFailureIsNotReturned() {
	ctx := context.Background()
	req := dto.PaymentRequest{SupplierName: "Sky Tours", Amount: decimal.NewFromInt(5)}
	s.mockRepo.On("SavePayment", ctx, mock.AnythingOfType("domain.Payment")).Return(nil).Once()
	s.publisher.On("Publish", ctx, mock.AnythingOfType("events.Event")).Return(errors.New("broker down")).Once()

	_, err := s.service.CreatePayment(ctx, adminA, req)

	s.NoError(err)
}

func (s *PaymentServiceTestSuite) TestCreatePayment_RejectsNonPositiveAmount() {
	req := dto.PaymentRequest{SupplierName: "Sky Tours", Amount: decimal.Zero}

	_, err := s.service.CreatePayment(context.Background(), adminA, req)

	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockRepo.AssertNotCalled(s.T(), "SavePayment", mock.Anything, mock.Anything)
}

func (s *PaymentServiceTestSuite) TestListPayments_SalesDenied() {
	_, err := s.service.ListPayments(context.Background(), salesA)

	s.ErrorIs(err, apperrors.ErrForbidden)
	s.mockRepo.AssertNotCalled(s.T(), "ListPayments", mock.Anything, mock.Anything)
}

func (s *PaymentServiceTestSuite) TestGetPayment_CrossTenantForbidden() {
	ctx := context.Background()
	id := uuid.NewString()
	payment := &domain.Payment{ID: id, SupplierName: "Sky Tours", Provenance: domain.Provenance{OfficeID: "B"}}
	s.mockRepo.On("FindPaymentByID", ctx, id).Return(payment, nil).Once()

	_, err := s.service.GetPayment(ctx, adminA, id)

	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *PaymentServiceTestSuite) TestDeletePayment_Success() {
	ctx := context.Background()
	id := uuid.NewString()
	payment := &domain.Payment{ID: id, Provenance: domain.Provenance{OfficeID: "A"}}
	s.mockRepo.On("FindPaymentByID", ctx, id).Return(payment, nil).Once()
	s.mockRepo.On("DeletePayment", ctx, id).Return(nil).Once()

	s.Require().NoError(s.service.DeletePayment(ctx, adminA, id))
	s.mockRepo.AssertExpectations(s.T())
}

func storedPayment(office string) *domain.Payment {
	return &domain.Payment{
		ID:            uuid.NewString(),
		SupplierName:  "Sky Tours",
		Amount:        decimal.NewFromInt(100),
		PaymentMethod: "bank",
		PaymentDate:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Reference:     "TRX-77",
		Remarks:       "January settlement",
		Provenance:    domain.Provenance{OfficeID: office, CreatedBy: adminA.Email},
	}
}

func (s *PaymentServiceTestSuite) TestUpdatePayment_KeepsOmittedFields() {
	ctx := context.Background()
	payment := storedPayment("A")
	amount := decimal.NewFromInt(150)
	s.mockRepo.On("FindPaymentByID", ctx, payment.ID).Return(payment, nil).Once()
	s.mockRepo.On("UpdatePayment", ctx, mock.MatchedBy(func(p domain.Payment) bool {
		return p.Amount.Equal(amount) &&
			p.PaymentDate.Equal(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)) &&
			p.PaymentMethod == "bank" &&
			p.Reference == "TRX-77" &&
			p.Remarks == "January settlement"
	})).Return(nil).Once()

	updated, err := s.service.UpdatePayment(ctx, adminA, payment.ID, dto.UpdatePaymentRequest{
		SupplierName: strPtr("Sky Tours"),
		Amount:       &amount,
	})

	s.Require().NoError(err)
	s.Equal("2024-01-15", updated.PaymentDate.Format("2006-01-02"))
	s.mockRepo.AssertExpectations(s.T())
}

func (s *PaymentServiceTestSuite) TestUpdatePayment_ChangesDate() {
	ctx := context.Background()
	payment := storedPayment("A")
	s.mockRepo.On("FindPaymentByID", ctx, payment.ID).Return(payment, nil).Once()
	s.mockRepo.On("UpdatePayment", ctx, mock.MatchedBy(func(p domain.Payment) bool {
		return p.PaymentDate.Format("2006-01-02") == "2024-02-01" && p.Amount.Equal(decimal.NewFromInt(100))
	})).Return(nil).Once()

	_, err := s.service.UpdatePayment(ctx, adminA, payment.ID, dto.UpdatePaymentRequest{PaymentDate: strPtr("2024-02-01")})

	s.Require().NoError(err)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *PaymentServiceTestSuite) TestUpdatePayment_NoChange() {
	ctx := context.Background()
	payment := storedPayment("A")
	same := decimal.RequireFromString("100.00")
	s.mockRepo.On("FindPaymentByID", ctx, payment.ID).Return(payment, nil).Once()

	_, err := s.service.UpdatePayment(ctx, adminA, payment.ID, dto.UpdatePaymentRequest{
		Amount:      &same,
		PaymentDate: strPtr("2024-01-15"),
	})

	s.ErrorIs(err, apperrors.ErrNoChange)
	s.mockRepo.AssertNotCalled(s.T(), "UpdatePayment", mock.Anything, mock.Anything)
}

func (s *PaymentServiceTestSuite) TestUpdatePayment_RejectsSubCentAmount() {
	ctx := context.Background()
	payment := storedPayment("A")
	amount := decimal.RequireFromString("99.999")
	s.mockRepo.On("FindPaymentByID", ctx, payment.ID).Return(payment, nil).Once()

	_, err := s.service.UpdatePayment(ctx, adminA, payment.ID, dto.UpdatePaymentRequest{Amount: &amount})

	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockRepo.AssertNotCalled(s.T(), "UpdatePayment", mock.Anything, mock.Anything)
}

func (s *PaymentServiceTestSuite) TestCreatePayment_RejectsOversizedAmount() {
	req := dto.PaymentRequest{SupplierName: "Sky Tours", Amount: decimal.RequireFromString("1000000000000")}

	_, err := s.service.CreatePayment(context.Background(), adminA, req)

	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockRepo.AssertNotCalled(s.T(), "SavePayment", mock.Anything, mock.Anything)
}
