package services_test

import (
	"context"
	"sync"
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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// counterSaleRepo is an in-memory sale store with a monotonic RV counter.
type counterSaleRepo struct {
	mu      sync.Mutex
	counter int64
	sales   map[string]domain.Sale
}

func newCounterSaleRepo() *counterSaleRepo {
	return &counterSaleRepo{sales: map[string]domain.Sale{}}
}

func (r *counterSaleRepo) FindSaleByID(_ context.Context, id string) (*domain.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sales[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &s, nil
}

func (r *counterSaleRepo) ListSales(_ context.Context, filter domain.SaleFilter) ([]domain.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Sale
	for _, s := range r.sales {
		if filter.Scope.Allows(s.Provenance) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *counterSaleRepo) CheckDocumentNumber(_ context.Context, documentNumber string) (bool, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.sales {
		if s.DocumentNumber == documentNumber {
			return true, r.counter, nil
		}
	}
	return false, r.counter, nil
}

func (r *counterSaleRepo) CreateSale(_ context.Context, sale domain.Sale) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counter++
	sale.RVNumber = domain.FormatRVNumber(r.counter)
	r.sales[sale.ID] = sale
	return sale.RVNumber, nil
}

func (r *counterSaleRepo) UpdateSale(_ context.Context, sale domain.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sales[sale.ID]; !ok {
		return apperrors.ErrNotFound
	}
	r.sales[sale.ID] = sale
	return nil
}

func (r *counterSaleRepo) DeleteSale(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sales, id)
	return nil
}

func saleRequest(doc string) dto.SaleRequest {
	return dto.SaleRequest{
		DocumentNumber: doc,
		AirlineCode:    "ek",
		SupplierName:   "Sky Tours",
		SellPrice:      decimal.RequireFromString("500.00"),
		BuyingPrice:    decimal.RequireFromString("420.50"),
		PassengerName:  "J. Doe",
		Sector:         "DAC-DXB",
		Date:           "2024-03-01",
		PaymentStatus:  domain.PaymentStatusDue,
	}
}

type SaleServiceTestSuite struct {
	suite.Suite
	repo      *counterSaleRepo
	publisher *MockPublisher
	service   portssvc.SaleSvcFacade
	now       time.Time
}

func (s *SaleServiceTestSuite) SetupTest() {
	s.repo = newCounterSaleRepo()
	s.publisher = new(MockPublisher)
	s.publisher.On("Publish", mock.Anything, mock.AnythingOfType("events.Event")).Return(nil)
	s.now = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	s.service = services.NewSaleService(s.repo,
		services.WithEventPublisher(s.publisher),
		services.WithClock(func() time.Time { return s.now }))
}

func TestSaleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SaleServiceTestSuite))
}

func (s *SaleServiceTestSuite) TestCreateSale_StampsCallerAndAssignsRV() {
	ctx := context.Background()

	sale, err := s.service.CreateSale(ctx, salesA, saleRequest("TKT-1"))

	s.Require().NoError(err)
	s.Equal("RV-0001", sale.RVNumber)
	s.Equal("A", sale.OfficeID)
	s.Equal(salesA.Email, sale.CreatedBy)
	s.Equal(s.now, sale.CreatedAt)
	s.Equal("EK", sale.AirlineCode)
	s.True(sale.Profit().Equal(decimal.RequireFromString("79.50")))
	s.publisher.AssertCalled(s.T(), "Publish", mock.Anything, mock.MatchedBy(func(e events.Event) bool {
		return e.Type == events.SaleCreated && e.Key == sale.ID
	}))
}

func (s *SaleServiceTestSuite) TestCreateSale_RejectsBlankDocumentNumber() {
	_, err := s.service.CreateSale(context.Background(), salesA, saleRequest("   "))

	s.ErrorIs(err, apperrors.ErrValidation)
	s.Zero(s.repo.counter)
}

func (s *SaleServiceTestSuite) TestValidateDocumentNumber_PreviewDoesNotConsume() {
	ctx := context.Background()

	first, err := s.service.ValidateDocumentNumber(ctx, salesA, "TKT-9")
	s.Require().NoError(err)
	second, err := s.service.ValidateDocumentNumber(ctx, salesA, "TKT-9")
	s.Require().NoError(err)

	s.Equal("RV-0001", first.LastRVNumber)
	s.Equal(first.LastRVNumber, second.LastRVNumber)
	s.False(first.Exists)

	created, err := s.service.CreateSale(ctx, salesA, saleRequest("TKT-9"))
	s.Require().NoError(err)
	s.Equal(first.LastRVNumber, created.RVNumber)

	after, err := s.service.ValidateDocumentNumber(ctx, salesA, "TKT-9")
	s.Require().NoError(err)
	s.True(after.Exists)
	s.Equal("RV-0002", after.LastRVNumber)
}

func (s *SaleServiceTestSuite) TestCreateSale_RVNumbersAreUniqueUnderConcurrency() {
	ctx := context.Background()
	const n = 25

	var wg sync.WaitGroup
	rvs := make(chan string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sale, err := s.service.CreateSale(ctx, salesA, saleRequest(uuid.NewString()))
			if err == nil {
				rvs <- sale.RVNumber
			}
		}(i)
	}
	wg.Wait()
	close(rvs)

	seen := map[string]bool{}
	for rv := range rvs {
		s.False(seen[rv], "duplicate %s", rv)
		seen[rv] = true
	}
	s.Len(seen, n)
	s.Equal(int64(n), s.repo.counter)
}

func (s *SaleServiceTestSuite) TestListSales_SalesRoleSeesOwnOnly() {
	ctx := context.Background()
	_, err := s.service.CreateSale(ctx, salesA, saleRequest("TKT-A1"))
	s.Require().NoError(err)
	_, err = s.service.CreateSale(ctx, adminA, saleRequest("TKT-A2"))
	s.Require().NoError(err)
	_, err = s.service.CreateSale(ctx, salesB, saleRequest("TKT-B1"))
	s.Require().NoError(err)

	own, err := s.service.ListSales(ctx, salesA, dto.ListSalesParams{})
	s.Require().NoError(err)
	s.Len(own, 1)

	office, err := s.service.ListSales(ctx, adminA, dto.ListSalesParams{})
	s.Require().NoError(err)
	s.Len(office, 2)

	all, err := s.service.ListSales(ctx, root, dto.ListSalesParams{})
	s.Require().NoError(err)
	s.Len(all, 3)
}

func (s *SaleServiceTestSuite) TestListSales_RejectsInvertedRange() {
	_, err := s.service.ListSales(context.Background(), adminA, dto.ListSalesParams{From: "2024-03-10", To: "2024-03-01"})

	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *SaleServiceTestSuite) TestEditSale_OwnershipAndNoChange() {
	ctx := context.Background()
	sale, err := s.service.CreateSale(ctx, salesA, saleRequest("TKT-E1"))
	s.Require().NoError(err)

	_, err = s.service.EditSale(ctx, salesA, sale.ID, saleRequest("TKT-E1"))
	s.ErrorIs(err, apperrors.ErrNoChange)

	colleague := salesA
	colleague.Email = "colleague@a.test"
	_, err = s.service.EditSale(ctx, colleague, sale.ID, saleRequest("TKT-E2"))
	s.ErrorIs(err, apperrors.ErrForbidden)

	_, err = s.service.EditSale(ctx, adminB, sale.ID, saleRequest("TKT-E2"))
	s.ErrorIs(err, apperrors.ErrForbidden)

	edited, err := s.service.EditSale(ctx, adminA, sale.ID, saleRequest("TKT-E2"))
	s.Require().NoError(err)
	s.Equal("TKT-E2", edited.DocumentNumber)
	s.Equal(sale.RVNumber, edited.RVNumber)
	s.Equal(salesA.Email, edited.CreatedBy)
}

func (s *SaleServiceTestSuite) TestRefundSale_RecordsRefundOnce() {
	ctx := context.Background()
	sale, err := s.service.CreateSale(ctx, salesA, saleRequest("TKT-R1"))
	s.Require().NoError(err)

	req := dto.RefundSaleRequest{
		RefundDate:        "2024-03-05",
		RefundCharge:      decimal.NewFromInt(50),
		ServiceCharge:     decimal.NewFromInt(10),
		RefundFromAirline: decimal.NewFromInt(400),
		RefundAmount:      decimal.NewFromInt(340),
	}
	refunded, err := s.service.RefundSale(ctx, salesA, sale.ID, req)
	s.Require().NoError(err)
	s.True(refunded.IsRefunded)
	s.Equal("2024-03-05", refunded.RefundDate.Format("2006-01-02"))

	_, err = s.service.RefundSale(ctx, salesA, sale.ID, req)
	s.ErrorIs(err, apperrors.ErrNoChange)

	s.Require().NoError(s.service.SetRefunded(ctx, salesA, sale.ID, false))
	stored, err := s.service.GetSale(ctx, salesA, sale.ID)
	s.Require().NoError(err)
	s.False(stored.IsRefunded)
}

func (s *SaleServiceTestSuite) TestDeleteSale_AdminOnly() {
	ctx := context.Background()
	sale, err := s.service.CreateSale(ctx, salesA, saleRequest("TKT-D1"))
	s.Require().NoError(err)

	s.ErrorIs(s.service.DeleteSale(ctx, salesA, sale.ID), apperrors.ErrForbidden)
	s.Require().NoError(s.service.DeleteSale(ctx, adminA, sale.ID))

	_, err = s.service.GetSale(ctx, adminA, sale.ID)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.publisher.AssertCalled(s.T(), "Publish", mock.Anything, mock.MatchedBy(func(e events.Event) bool {
		return e.Type == events.SaleDeleted
	}))
}

func TestSupplierLedger(t *testing.T) {
	ctx := context.Background()
	repo := new(MockSaleRepository)
	svc := services.NewSaleService(repo)

	_, err := svc.SupplierLedger(ctx, adminA, " ")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	repo.On("ListSales", ctx, mock.MatchedBy(func(f domain.SaleFilter) bool {
		return f.SupplierName == "Nobody" && len(f.PaymentStatuses) == 2
	})).Return([]domain.Sale{}, nil).Once()

	_, err = svc.SupplierLedger(ctx, adminA, "Nobody")
	require.ErrorIs(t, err, apperrors.ErrNotFound)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "No sales found for this supplier", appErr.Message)

	repo.On("ListSales", ctx, mock.MatchedBy(func(f domain.SaleFilter) bool {
		return f.SupplierName == "Sky Tours" && *f.Scope.OfficeID == "A"
	})).Return([]domain.Sale{{ID: "1"}, {ID: "2"}}, nil).Once()

	sales, err := svc.SupplierLedger(ctx, adminA, "Sky Tours")
	require.NoError(t, err)
	assert.Len(t, sales, 2)
	repo.AssertExpectations(t)
}

func (s *SaleServiceTestSuite) TestUpdatePaymentStatus() {
	ctx := context.Background()
	sale, err := s.service.CreateSale(ctx, salesA, saleRequest("TKT-P1"))
	s.Require().NoError(err)

	s.ErrorIs(s.service.UpdatePaymentStatus(ctx, salesB, sale.ID, domain.PaymentStatusPaid), apperrors.ErrForbidden)
	s.Require().NoError(s.service.UpdatePaymentStatus(ctx, salesA, sale.ID, domain.PaymentStatusPaid))
	s.ErrorIs(s.service.UpdatePaymentStatus(ctx, salesA, sale.ID, domain.PaymentStatusPaid), apperrors.ErrNoChange)

	stored, err := s.service.GetSale(ctx, adminA, sale.ID)
	s.Require().NoError(err)
	s.Equal(domain.PaymentStatusPaid, stored.PaymentStatus)
}

func (s *SaleServiceTestSuite) TestCreateSale_RejectsUnstorablePrices() {
	ctx := context.Background()

	req := saleRequest("TKT-M1")
	req.SellPrice = decimal.RequireFromString("120.005")
	_, err := s.service.CreateSale(ctx, salesA, req)
	s.ErrorIs(err, apperrors.ErrValidation)

	req = saleRequest("TKT-M2")
	req.BuyingPrice = decimal.RequireFromString("1000000000000")
	_, err = s.service.CreateSale(ctx, salesA, req)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *SaleServiceTestSuite) TestRefundSale_RejectsSubCentAmount() {
	ctx := context.Background()
	sale, err := s.service.CreateSale(ctx, salesA, saleRequest("TKT-M3"))
	s.Require().NoError(err)

	_, err = s.service.RefundSale(ctx, salesA, sale.ID, dto.RefundSaleRequest{
		RefundDate:   "2024-03-05",
		RefundAmount: decimal.RequireFromString("10.001"),
	})

	s.ErrorIs(err, apperrors.ErrValidation)
}
