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

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
}

func (s *UserServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockUserRepository)
	s.service = services.NewUserService(s.mockRepo, services.NewAccessPolicy())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func newUser(role domain.Role, office string) *domain.User {
	id := uuid.NewString()
	return &domain.User{
		ID:       id,
		Name:     "User " + id[:4],
		Email:    id[:8] + "@" + office + ".test",
		Role:     role,
		Status:   domain.StatusActive,
		OfficeID: office,
	}
}

func (s *UserServiceTestSuite) TestCreateUser_AdminIsPinnedToOwnOffice() {
	ctx := context.Background()
	req := dto.CreateUserRequest{Name: "New Agent", Email: "New@Agent.test", Role: domain.RoleSales, OfficeID: "B"}

	s.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.OfficeID == "A" && u.Email == "new@agent.test" && u.Status == domain.StatusActive
	})).Return(nil).Once()

	user, err := s.service.CreateUser(ctx, adminA, req)

	s.Require().NoError(err)
	s.Equal("A", user.OfficeID)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestCreateUser_SuperAdminChoosesOffice() {
	ctx := context.Background()
	req := dto.CreateUserRequest{Name: "Branch Admin", Email: "branch@b.test", Role: domain.RoleAdmin, OfficeID: "B"}
	s.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool { return u.OfficeID == "B" })).Return(nil).Once()

	user, err := s.service.CreateUser(ctx, root, req)

	s.Require().NoError(err)
	s.Equal("B", user.OfficeID)
}

func (s *UserServiceTestSuite) TestCreateUser_OnlySuperAdminAssignsSuperAdmin() {
	req := dto.CreateUserRequest{Name: "Sneaky", Email: "sneaky@a.test", Role: domain.RoleSuperAdmin}

	_, err := s.service.CreateUser(context.Background(), adminA, req)

	s.ErrorIs(err, apperrors.ErrForbidden)
	s.mockRepo.AssertNotCalled(s.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestCreateUser_SalesDenied() {
	req := dto.CreateUserRequest{Name: "X", Email: "x@a.test", Role: domain.RoleSales}

	_, err := s.service.CreateUser(context.Background(), salesA, req)

	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *UserServiceTestSuite) TestCreateUser_DuplicateEmail() {
	ctx := context.Background()
	req := dto.CreateUserRequest{Name: "Dup", Email: "dup@a.test", Role: domain.RoleSales}
	s.mockRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(apperrors.ErrDuplicate).Once()

	_, err := s.service.CreateUser(ctx, adminA, req)

	s.ErrorIs(err, apperrors.ErrDuplicate)
}

func (s *UserServiceTestSuite) TestGetUserByID_CrossTenantForbidden() {
	ctx := context.Background()
	target := newUser(domain.RoleSales, "B")
	s.mockRepo.On("FindUserByID", ctx, target.ID).Return(target, nil).Twice()

	_, err := s.service.GetUserByID(ctx, adminA, target.ID)
	s.ErrorIs(err, apperrors.ErrForbidden)

	got, err := s.service.GetUserByID(ctx, root, target.ID)
	s.Require().NoError(err)
	s.Equal(target.ID, got.ID)
}

func (s *UserServiceTestSuite) TestGetUserByID_MalformedID() {
	_, err := s.service.GetUserByID(context.Background(), adminA, "not-a-uuid")

	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockRepo.AssertNotCalled(s.T(), "FindUserByID", mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestListAllUsers_SuperAdminOnly() {
	ctx := context.Background()
	_, err := s.service.ListAllUsers(ctx, adminA)
	s.ErrorIs(err, apperrors.ErrForbidden)

	s.mockRepo.On("ListUsers", ctx, domain.Scope{}).Return([]domain.User{*newUser(domain.RoleSales, "A")}, nil).Once()
	users, err := s.service.ListAllUsers(ctx, root)
	s.Require().NoError(err)
	s.Len(users, 1)
}

func (s *UserServiceTestSuite) TestListOfficeUsers_DefaultsToCallerOffice() {
	ctx := context.Background()
	s.mockRepo.On("ListUsers", ctx, mock.MatchedBy(func(sc domain.Scope) bool {
		return sc.OfficeID != nil && *sc.OfficeID == "A"
	})).Return([]domain.User{}, nil).Once()

	_, err := s.service.ListOfficeUsers(ctx, adminA, "")
	s.Require().NoError(err)

	_, err = s.service.ListOfficeUsers(ctx, adminA, "B")
	s.ErrorIs(err, apperrors.ErrForbidden)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestIsAdmin_SelfOrSuperAdminOnly() {
	ctx := context.Background()
	self := &domain.User{Email: adminA.Email, Role: domain.RoleAdmin, Status: domain.StatusActive, OfficeID: "A"}
	s.mockRepo.On("FindUserByEmail", ctx, adminA.Email).Return(self, nil)

	admin, err := s.service.IsAdmin(ctx, adminA, adminA.Email)
	s.Require().NoError(err)
	s.True(admin)

	_, err = s.service.IsAdmin(ctx, salesA, adminA.Email)
	s.ErrorIs(err, apperrors.ErrForbidden)

	super, err := s.service.IsSuperAdmin(ctx, root, adminA.Email)
	s.Require().NoError(err)
	s.False(super)
}

func (s *UserServiceTestSuite) TestUpdateUser_NoChange() {
	ctx := context.Background()
	target := newUser(domain.RoleSales, "A")
	s.mockRepo.On("FindUserByID", ctx, target.ID).Return(target, nil).Once()

	_, err := s.service.UpdateUser(ctx, adminA, target.ID, dto.UpdateUserRequest{Name: strPtr(target.Name)})

	s.ErrorIs(err, apperrors.ErrNoChange)
	s.mockRepo.AssertNotCalled(s.T(), "UpdateUser", mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestUpdateUser_AdminCannotMoveOffice() {
	ctx := context.Background()
	target := newUser(domain.RoleSales, "A")
	s.mockRepo.On("FindUserByID", ctx, target.ID).Return(target, nil).Once()

	_, err := s.service.UpdateUser(ctx, adminA, target.ID, dto.UpdateUserRequest{OfficeID: strPtr("B")})

	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *UserServiceTestSuite) TestUpdateUserStatus_AdminCannotTouchSuperAdmin() {
	ctx := context.Background()
	target := newUser(domain.RoleSuperAdmin, "A")
	s.mockRepo.On("FindUserByID", ctx, target.ID).Return(target, nil).Once()

	err := s.service.UpdateUserStatus(ctx, adminA, target.ID, domain.StatusInactive)

	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *UserServiceTestSuite) TestUpdateUserStatus_Success() {
	ctx := context.Background()
	target := newUser(domain.RoleSales, "A")
	s.mockRepo.On("FindUserByID", ctx, target.ID).Return(target, nil).Once()
	s.mockRepo.On("UpdateUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.ID == target.ID && u.Status == domain.StatusInactive
	})).Return(nil).Once()

	err := s.service.UpdateUserStatus(ctx, adminA, target.ID, domain.StatusInactive)

	s.Require().NoError(err)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestDeleteUser_NotFound() {
	ctx := context.Background()
	id := uuid.NewString()
	s.mockRepo.On("FindUserByID", ctx, id).Return(nil, apperrors.ErrNotFound).Once()

	err := s.service.DeleteUser(ctx, adminA, id)

	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *UserServiceTestSuite) TestUpdateUserStatus_CrossTenant() {
	ctx := context.Background()
	target := newUser(domain.RoleSales, "B")
	s.mockRepo.On("FindUserByID", ctx, target.ID).Return(target, nil).Twice()
	s.mockRepo.On("UpdateUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.ID == target.ID && u.Status == domain.StatusInactive
	})).Return(nil).Once()

	err := s.service.UpdateUserStatus(ctx, adminA, target.ID, domain.StatusInactive)
	s.ErrorIs(err, apperrors.ErrForbidden)

	err = s.service.UpdateUserStatus(ctx, root, target.ID, domain.StatusInactive)
	s.Require().NoError(err)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestGetOwnProfile() {
	ctx := context.Background()
	me := newUser(domain.RoleSales, "A")
	me.Email = salesA.Email
	s.mockRepo.On("FindUserByEmail", ctx, salesA.Email).Return(me, nil).Once()

	user, err := s.service.GetOwnProfile(ctx, salesA)

	s.Require().NoError(err)
	s.Equal(me.ID, user.ID)
}

func (s *UserServiceTestSuite) TestGetOwnProfile_MovedOffice() {
	ctx := context.Background()
	me := newUser(domain.RoleSales, "B")
	me.Email = salesA.Email
	s.mockRepo.On("FindUserByEmail", ctx, salesA.Email).Return(me, nil).Once()

	_, err := s.service.GetOwnProfile(ctx, salesA)

	s.ErrorIs(err, apperrors.ErrForbidden)
}
