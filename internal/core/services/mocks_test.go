package services_test

import (
	"context"

	"github.com/quickway/travels_backoffice/internal/core/domain"
	"github.com/quickway/travels_backoffice/internal/platform/events"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context, scope domain.Scope) ([]domain.User, error) {
	args := m.Called(ctx, scope)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

// --- Mock SaleRepository ---
type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) FindSaleByID(ctx context.Context, id string) (*domain.Sale, error) {
	args := m.Called(ctx, id)
	var sale *domain.Sale
	if args.Get(0) != nil {
		sale = args.Get(0).(*domain.Sale)
	}
	return sale, args.Error(1)
}

func (m *MockSaleRepository) ListSales(ctx context.Context, filter domain.SaleFilter) ([]domain.Sale, error) {
	args := m.Called(ctx, filter)
	var sales []domain.Sale
	if args.Get(0) != nil {
		sales = args.Get(0).([]domain.Sale)
	}
	return sales, args.Error(1)
}

func (m *MockSaleRepository) CheckDocumentNumber(ctx context.Context, documentNumber string) (bool, int64, error) {
	args := m.Called(ctx, documentNumber)
	return args.Bool(0), args.Get(1).(int64), args.Error(2)
}

func (m *MockSaleRepository) CreateSale(ctx context.Context, sale domain.Sale) (string, error) {
	args := m.Called(ctx, sale)
	return args.String(0), args.Error(1)
}

func (m *MockSaleRepository) UpdateSale(ctx context.Context, sale domain.Sale) error {
	return m.Called(ctx, sale).Error(0)
}

func (m *MockSaleRepository) DeleteSale(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// --- Mock PaymentRepository ---
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, id string) (*domain.Payment, error) {
	args := m.Called(ctx, id)
	var payment *domain.Payment
	if args.Get(0) != nil {
		payment = args.Get(0).(*domain.Payment)
	}
	return payment, args.Error(1)
}

func (m *MockPaymentRepository) ListPayments(ctx context.Context, scope domain.Scope) ([]domain.Payment, error) {
	args := m.Called(ctx, scope)
	var payments []domain.Payment
	if args.Get(0) != nil {
		payments = args.Get(0).([]domain.Payment)
	}
	return payments, args.Error(1)
}

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	return m.Called(ctx, payment).Error(0)
}

func (m *MockPaymentRepository) UpdatePayment(ctx context.Context, payment domain.Payment) error {
	return m.Called(ctx, payment).Error(0)
}

func (m *MockPaymentRepository) DeletePayment(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// --- Mock Publisher ---
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, event events.Event) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockPublisher) Close() error {
	return m.Called().Error(0)
}

// --- Mock IdentityVerifier ---
type MockIdentityVerifier struct {
	mock.Mock
}

func (m *MockIdentityVerifier) VerifyIDToken(ctx context.Context, idToken string) (string, error) {
	args := m.Called(ctx, idToken)
	return args.String(0), args.Error(1)
}

// principals shared by the suites
var (
	salesA = domain.Principal{Email: "sales@a.test", Role: domain.RoleSales, Status: domain.StatusActive, OfficeID: "A"}
	salesB = domain.Principal{Email: "sales@b.test", Role: domain.RoleSales, Status: domain.StatusActive, OfficeID: "B"}
	adminA = domain.Principal{Email: "admin@a.test", Role: domain.RoleAdmin, Status: domain.StatusActive, OfficeID: "A"}
	adminB = domain.Principal{Email: "admin@b.test", Role: domain.RoleAdmin, Status: domain.StatusActive, OfficeID: "B"}
	root   = domain.Principal{Email: "root@hq.test", Role: domain.RoleSuperAdmin, Status: domain.StatusActive, OfficeID: "HQ"}
)

func strPtr(s string) *string { return &s }

// --- Mock SupplierRepository ---
type MockSupplierRepository struct {
	mock.Mock
}

func (m *MockSupplierRepository) FindSupplierByID(ctx context.Context, id string) (*domain.Supplier, error) {
	args := m.Called(ctx, id)
	var supplier *domain.Supplier
	if args.Get(0) != nil {
		supplier = args.Get(0).(*domain.Supplier)
	}
	return supplier, args.Error(1)
}

func (m *MockSupplierRepository) FindSupplierByName(ctx context.Context, scope domain.Scope, name string) (*domain.Supplier, error) {
	args := m.Called(ctx, scope, name)
	var supplier *domain.Supplier
	if args.Get(0) != nil {
		supplier = args.Get(0).(*domain.Supplier)
	}
	return supplier, args.Error(1)
}

func (m *MockSupplierRepository) ListSuppliers(ctx context.Context, scope domain.Scope) ([]domain.Supplier, error) {
	args := m.Called(ctx, scope)
	var suppliers []domain.Supplier
	if args.Get(0) != nil {
		suppliers = args.Get(0).([]domain.Supplier)
	}
	return suppliers, args.Error(1)
}

func (m *MockSupplierRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) error {
	return m.Called(ctx, supplier).Error(0)
}

func (m *MockSupplierRepository) UpdateSupplier(ctx context.Context, supplier domain.Supplier) error {
	return m.Called(ctx, supplier).Error(0)
}

func (m *MockSupplierRepository) DeleteSupplier(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// --- Mock AirlineRepository ---
type MockAirlineRepository struct {
	mock.Mock
}

func (m *MockAirlineRepository) FindAirlineByID(ctx context.Context, id string) (*domain.Airline, error) {
	args := m.Called(ctx, id)
	var airline *domain.Airline
	if args.Get(0) != nil {
		airline = args.Get(0).(*domain.Airline)
	}
	return airline, args.Error(1)
}

func (m *MockAirlineRepository) ListAirlines(ctx context.Context) ([]domain.Airline, error) {
	args := m.Called(ctx)
	var airlines []domain.Airline
	if args.Get(0) != nil {
		airlines = args.Get(0).([]domain.Airline)
	}
	return airlines, args.Error(1)
}

func (m *MockAirlineRepository) SaveAirline(ctx context.Context, airline domain.Airline) error {
	return m.Called(ctx, airline).Error(0)
}

func (m *MockAirlineRepository) UpdateAirline(ctx context.Context, airline domain.Airline) error {
	return m.Called(ctx, airline).Error(0)
}

func (m *MockAirlineRepository) DeleteAirline(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// --- Mock OfficeRepository ---
type MockOfficeRepository struct {
	mock.Mock
}

func (m *MockOfficeRepository) FindOfficeByID(ctx context.Context, id string) (*domain.Office, error) {
	args := m.Called(ctx, id)
	var office *domain.Office
	if args.Get(0) != nil {
		office = args.Get(0).(*domain.Office)
	}
	return office, args.Error(1)
}

func (m *MockOfficeRepository) ListOffices(ctx context.Context) ([]domain.Office, error) {
	args := m.Called(ctx)
	var offices []domain.Office
	if args.Get(0) != nil {
		offices = args.Get(0).([]domain.Office)
	}
	return offices, args.Error(1)
}

func (m *MockOfficeRepository) SaveOffice(ctx context.Context, office domain.Office) error {
	return m.Called(ctx, office).Error(0)
}

func (m *MockOfficeRepository) UpdateOfficeStatus(ctx context.Context, id string, status domain.Status) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockOfficeRepository) DeleteOffice(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
