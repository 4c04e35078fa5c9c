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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// Airlines and offices are global records; these suites cover their role gates.

type AirlineServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAirlineRepository
	service  portssvc.AirlineSvcFacade
}

func (s *AirlineServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockAirlineRepository)
	s.service = services.NewAirlineService(s.mockRepo, services.NewAccessPolicy())
}

func TestAirlineServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AirlineServiceTestSuite))
}

func (s *AirlineServiceTestSuite) TestListAirlines_AnyRole() {
	ctx := context.Background()
	s.mockRepo.On("ListAirlines", ctx).Return([]domain.Airline{{Code: "EK"}}, nil).Once()

	airlines, err := s.service.ListAirlines(ctx, salesA)

	s.Require().NoError(err)
	s.Len(airlines, 1)
}

func (s *AirlineServiceTestSuite) TestCreateAirline_NormalisesCode() {
	ctx := context.Background()
	s.mockRepo.On("SaveAirline", ctx, mock.MatchedBy(func(a domain.Airline) bool {
		return a.Code == "EK" && a.Status == domain.StatusActive
	})).Return(nil).Once()

	airline, err := s.service.CreateAirline(ctx, adminA, dto.CreateAirlineRequest{Code: " ek ", Name: "Emirates"})

	s.Require().NoError(err)
	s.Equal("EK", airline.Code)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *AirlineServiceTestSuite) TestCreateAirline_SalesDenied() {
	_, err := s.service.CreateAirline(context.Background(), salesA, dto.CreateAirlineRequest{Code: "EK", Name: "Emirates"})

	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *AirlineServiceTestSuite) TestUpdateAirlineStatus_SameStatus() {
	ctx := context.Background()
	airline := &domain.Airline{ID: uuid.NewString(), Code: "EK", Status: domain.StatusActive}
	s.mockRepo.On("FindAirlineByID", ctx, airline.ID).Return(airline, nil).Once()

	err := s.service.UpdateAirlineStatus(ctx, adminB, airline.ID, domain.StatusActive)

	s.ErrorIs(err, apperrors.ErrNoChange)
}

type OfficeServiceTestSuite struct {
	suite.Suite
	mockRepo *MockOfficeRepository
	service  portssvc.OfficeSvcFacade
}

func (s *OfficeServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockOfficeRepository)
	s.service = services.NewOfficeService(s.mockRepo, services.NewAccessPolicy())
}

func TestOfficeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OfficeServiceTestSuite))
}

func (s *OfficeServiceTestSuite) TestCreateOffice_AdminDenied() {
	_, err := s.service.CreateOffice(context.Background(), adminA, dto.CreateOfficeRequest{OfficeName: "Dhaka", OfficeID: "DAC"})

	s.ErrorIs(err, apperrors.ErrForbidden)
	s.mockRepo.AssertNotCalled(s.T(), "SaveOffice", mock.Anything, mock.Anything)
}

func (s *OfficeServiceTestSuite) TestCreateOffice_SuperAdmin() {
	ctx := context.Background()
	s.mockRepo.On("SaveOffice", ctx, mock.MatchedBy(func(o domain.Office) bool {
		return o.OfficeID == "DAC" && o.CreatedBy == root.Email && o.Status == domain.StatusActive
	})).Return(nil).Once()

	office, err := s.service.CreateOffice(ctx, root, dto.CreateOfficeRequest{OfficeName: "Dhaka", OfficeID: " DAC "})

	s.Require().NoError(err)
	s.Equal("DAC", office.OfficeID)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *OfficeServiceTestSuite) TestCreateOffice_DuplicateBusinessKey() {
	ctx := context.Background()
	s.mockRepo.On("SaveOffice", ctx, mock.AnythingOfType("domain.Office")).Return(apperrors.ErrDuplicate).Once()

	_, err := s.service.CreateOffice(ctx, root, dto.CreateOfficeRequest{OfficeName: "Dhaka", OfficeID: "DAC"})

	s.ErrorIs(err, apperrors.ErrDuplicate)
}

func (s *OfficeServiceTestSuite) TestUpdateOfficeStatus() {
	ctx := context.Background()
	office := &domain.Office{ID: uuid.NewString(), OfficeID: "DAC", Status: domain.StatusActive}
	s.mockRepo.On("FindOfficeByID", ctx, office.ID).Return(office, nil).Once()
	s.mockRepo.On("UpdateOfficeStatus", ctx, office.ID, domain.StatusInactive).Return(nil).Once()

	s.NoError(s.service.UpdateOfficeStatus(ctx, root, office.ID, domain.StatusInactive))
	s.mockRepo.AssertExpectations(s.T())
}

func (s *OfficeServiceTestSuite) TestDeleteOffice_NotFound() {
	ctx := context.Background()
	id := uuid.NewString()
	s.mockRepo.On("DeleteOffice", ctx, id).Return(apperrors.ErrNotFound).Once()

	s.ErrorIs(s.service.DeleteOffice(ctx, root, id), apperrors.ErrNotFound)
}
