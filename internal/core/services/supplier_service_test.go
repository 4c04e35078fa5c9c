package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/quickway/travels_backoffice/internal/apperrors"
	"github.com/quickway/travels_backoffice/internal/core/domain"
	portssvc "github.com/quickway/travels_backoffice/internal/core/ports/services"
	"github.com/quickway/travels_backoffice/internal/core/services"
	"github.com/quickway/travels_backoffice/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type SupplierServiceTestSuite struct {
	suite.Suite
	mockRepo *MockSupplierRepository
	service  portssvc.SupplierSvcFacade
}

func (s *SupplierServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockSupplierRepository)
	s.service = services.NewSupplierService(s.mockRepo, services.NewAccessPolicy())
}

func TestSupplierServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SupplierServiceTestSuite))
}

func officeScope(officeID string) any {
	return mock.MatchedBy(func(scope domain.Scope) bool {
		return scope.OfficeID != nil && *scope.OfficeID == officeID && scope.CreatedBy == nil
	})
}

func supplierIn(office string, due int64) *domain.Supplier {
	return &domain.Supplier{
		ID:           uuid.NewString(),
		SupplierName: "Sky Tours",
		TotalDue:     decimal.NewFromInt(due),
		Status:       domain.StatusActive,
		Provenance:   domain.Provenance{OfficeID: office, CreatedBy: "someone@" + office + ".test"},
	}
}

func (s *SupplierServiceTestSuite) TestCreateSupplier_StampsCallerOffice() {
	ctx := context.Background()
	s.mockRepo.On("SaveSupplier", ctx, mock.MatchedBy(func(sp domain.Supplier) bool {
		return sp.OfficeID == "A" && sp.CreatedBy == salesA.Email && sp.Status == domain.StatusActive
	})).Return(nil).Once()

	supplier, err := s.service.CreateSupplier(ctx, salesA, dto.CreateSupplierRequest{SupplierName: "  Sky Tours "})

	s.Require().NoError(err)
	s.Equal("Sky Tours", supplier.SupplierName)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *SupplierServiceTestSuite) TestCreateSupplier_BlankName() {
	_, err := s.service.CreateSupplier(context.Background(), adminA, dto.CreateSupplierRequest{SupplierName: "   "})

	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockRepo.AssertNotCalled(s.T(), "SaveSupplier", mock.Anything, mock.Anything)
}

func (s *SupplierServiceTestSuite) TestListSuppliers_ScopedToOffice() {
	ctx := context.Background()
	s.mockRepo.On("ListSuppliers", ctx, officeScope("A")).Return([]domain.Supplier{*supplierIn("A", 0)}, nil).Once()

	suppliers, err := s.service.ListSuppliers(ctx, salesA)

	s.Require().NoError(err)
	s.Len(suppliers, 1)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *SupplierServiceTestSuite) TestGetSupplier_CrossTenant() {
	ctx := context.Background()
	supplier := supplierIn("B", 0)
	s.mockRepo.On("FindSupplierByID", ctx, supplier.ID).Return(supplier, nil).Once()

	_, err := s.service.GetSupplier(ctx, adminA, supplier.ID)

	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *SupplierServiceTestSuite) TestUpdateTotalDue() {
	ctx := context.Background()
	supplier := supplierIn("A", 100)
	s.mockRepo.On("FindSupplierByName", ctx, officeScope("A"), "Sky Tours").Return(supplier, nil).Once()
	s.mockRepo.On("UpdateSupplier", ctx, mock.MatchedBy(func(sp domain.Supplier) bool {
		return sp.ID == supplier.ID && sp.TotalDue.Equal(decimal.RequireFromString("250.75"))
	})).Return(nil).Once()

	err := s.service.UpdateTotalDue(ctx, salesA, "Sky Tours", decimal.RequireFromString("250.75"))

	s.Require().NoError(err)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *SupplierServiceTestSuite) TestUpdateTotalDue_SameValue() {
	ctx := context.Background()
	supplier := supplierIn("A", 100)
	s.mockRepo.On("FindSupplierByName", ctx, officeScope("A"), "Sky Tours").Return(supplier, nil).Once()

	err := s.service.UpdateTotalDue(ctx, adminA, "Sky Tours", decimal.RequireFromString("100.00"))

	s.ErrorIs(err, apperrors.ErrNoChange)
	s.mockRepo.AssertNotCalled(s.T(), "UpdateSupplier", mock.Anything, mock.Anything)
}

func (s *SupplierServiceTestSuite) TestUpdateTotalDue_UnknownName() {
	ctx := context.Background()
	s.mockRepo.On("FindSupplierByName", ctx, officeScope("B"), "Ghost").Return(nil, apperrors.ErrNotFound).Once()

	err := s.service.UpdateTotalDue(ctx, adminB, "Ghost", decimal.NewFromInt(1))

	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *SupplierServiceTestSuite) TestUpdateSupplier_NoChange() {
	ctx := context.Background()
	supplier := supplierIn("A", 10)
	s.mockRepo.On("FindSupplierByID", ctx, supplier.ID).Return(supplier, nil).Once()

	_, err := s.service.UpdateSupplier(ctx, adminA, supplier.ID, dto.UpdateSupplierRequest{SupplierName: strPtr("Sky Tours")})

	s.ErrorIs(err, apperrors.ErrNoChange)
}

func (s *SupplierServiceTestSuite) TestDeleteSupplier_SalesDenied() {
	err := s.service.DeleteSupplier(context.Background(), salesA, uuid.NewString())

	s.ErrorIs(err, apperrors.ErrForbidden)
	s.mockRepo.AssertNotCalled(s.T(), "FindSupplierByID", mock.Anything, mock.Anything)
}

func (s *SupplierServiceTestSuite) TestDeleteSupplier_SuperAdminAnyOffice() {
	ctx := context.Background()
	supplier := supplierIn("B", 0)
	s.mockRepo.On("FindSupplierByID", ctx, supplier.ID).Return(supplier, nil).Once()
	s.mockRepo.On("DeleteSupplier", ctx, supplier.ID).Return(nil).Once()

	s.NoError(s.service.DeleteSupplier(ctx, root, supplier.ID))
	s.mockRepo.AssertExpectations(s.T())
}

func (s *SupplierServiceTestSuite) TestUpdateTotalDue_RejectsSubCentValue() {
	err := s.service.UpdateTotalDue(context.Background(), adminA, "Sky Tours", decimal.RequireFromString("10.125"))

	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockRepo.AssertNotCalled(s.T(), "FindSupplierByName", mock.Anything, mock.Anything, mock.Anything)
}

func (s *SupplierServiceTestSuite) TestCreateSupplier_RejectsOversizedDue() {
	_, err := s.service.CreateSupplier(context.Background(), adminA, dto.CreateSupplierRequest{
		SupplierName: "Sky Tours",
		TotalDue:     decimal.RequireFromString("1000000000000"),
	})

	s.ErrorIs(err, apperrors.ErrValidation)
}
