package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/quickway/travels_backoffice/internal/core/ports/services"
	"github.com/quickway/travels_backoffice/internal/dto"
	"github.com/quickway/travels_backoffice/internal/middleware"
)

// userHandler handles HTTP requests related to the user directory.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

// registerUserRoutes registers routes related to users.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := &userHandler{userService: userService}

	lookups := rg.Group("/users")
	{
		lookups.GET("/status/:email", h.isActive)
		lookups.GET("/admin/:email", h.isAdmin)
		lookups.GET("/super-admin/:email", h.isSuperAdmin)
		lookups.GET("/office", h.listOfficeUsers)
	}

	rg.GET("/all-users", superAdminOnly, h.listAllUsers)

	users := rg.Group("/user")
	{
		users.GET("", h.getOwnProfile)
		users.GET("/:id", h.getUser)
		users.POST("", h.createUser)
		users.PATCH("/:id/status", h.updateUserStatus)
		users.PUT("/:id", h.updateUser)
		users.DELETE("/:id", h.deleteUser)
	}
}

// isActive godoc
// @Summary Check whether a user is active
// @Description Self or super-admin only.
// @Tags users
// @Produce json
// @Param email path string true "User email"
// @Success 200 {object} dto.ActiveResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users/status/{email} [get]
func (h *userHandler) isActive(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	active, err := h.userService.IsActive(c.Request.Context(), p, c.Param("email"))
	if err != nil {
		respondError(c, err, "User")
		return
	}
	c.JSON(http.StatusOK, dto.ActiveResponse{Active: active})
}

// isAdmin godoc
// @Summary Check whether a user holds admin rights
// @Description Self or super-admin only. Admin callers must share the target's office.
// @Tags users
// @Produce json
// @Param email path string true "User email"
// @Success 200 {object} dto.AdminResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users/admin/{email} [get]
func (h *userHandler) isAdmin(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	admin, err := h.userService.IsAdmin(c.Request.Context(), p, c.Param("email"))
	if err != nil {
		respondError(c, err, "User")
		return
	}
	c.JSON(http.StatusOK, dto.AdminResponse{Admin: admin})
}

// isSuperAdmin godoc
// @Summary Check whether a user is a super-admin
// @Tags users
// @Produce json
// @Param email path string true "User email"
// @Success 200 {object} dto.SuperAdminResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users/super-admin/{email} [get]
func (h *userHandler) isSuperAdmin(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	super, err := h.userService.IsSuperAdmin(c.Request.Context(), p, c.Param("email"))
	if err != nil {
		respondError(c, err, "User")
		return
	}
	c.JSON(http.StatusOK, dto.SuperAdminResponse{IsSuperAdmin: super})
}

// listAllUsers godoc
// @Summary List every user
// @Tags users
// @Produce json
// @Success 200 {array} dto.UserResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /all-users [get]
func (h *userHandler) listAllUsers(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	users, err := h.userService.ListAllUsers(c.Request.Context(), p)
	if err != nil {
		respondError(c, err, "User")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponses(users))
}

// listOfficeUsers godoc
// @Summary List the users of an office
// @Description Defaults to the caller's office. Only a super-admin may name another office.
// @Tags users
// @Produce json
// @Param officeId query string false "Office business key"
// @Success 200 {array} dto.UserResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users/office [get]
func (h *userHandler) listOfficeUsers(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var params dto.ListOfficeUsersParams
	if !bindQuery(c, &params) {
		return
	}
	users, err := h.userService.ListOfficeUsers(c.Request.Context(), p, params.OfficeID)
	if err != nil {
		respondError(c, err, "User")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponses(users))
}

// getOwnProfile godoc
// @Summary Get the caller's own user record
// @Tags users
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /user [get]
func (h *userHandler) getOwnProfile(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	user, err := h.userService.GetOwnProfile(c.Request.Context(), p)
	if err != nil {
		respondError(c, err, "User")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// getUser godoc
// @Summary Get a user by ID
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /user/{id} [get]
func (h *userHandler) getUser(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	user, err := h.userService.GetUserByID(c.Request.Context(), p, c.Param("id"))
	if err != nil {
		respondError(c, err, "User")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// createUser godoc
// @Summary Create a user
// @Description Admins create users in their own office. Only a super-admin may assign the super-admin role.
// @Tags users
// @Accept json
// @Produce json
// @Param user body dto.CreateUserRequest true "User details"
// @Success 201 {object} dto.InsertResult
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Security BearerAuth
// @Router /user [post]
func (h *userHandler) createUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	p, ok := principal(c)
	if !ok {
		return
	}
	var req dto.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), p, req)
	if err != nil {
		respondError(c, err, "User")
		return
	}

	logger.Info("User created", slog.String("user_id", user.ID))
	c.JSON(http.StatusCreated, dto.NewInsertResult(user.ID))
}

// updateUserStatus godoc
// @Summary Change a user's status
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param status body dto.StatusUpdateRequest true "New status"
// @Success 200 {object} dto.UpdateResult
// @Success 304 "Status unchanged"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /user/{id}/status [patch]
func (h *userHandler) updateUserStatus(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req dto.StatusUpdateRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.userService.UpdateUserStatus(c.Request.Context(), p, c.Param("id"), req.Status); err != nil {
		respondError(c, err, "User")
		return
	}
	c.JSON(http.StatusOK, dto.UpdatedOne())
}

// updateUser godoc
// @Summary Update a user
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param user body dto.UpdateUserRequest true "Fields to change"
// @Success 200 {object} dto.UpdateResult
// @Success 304 "Nothing changed"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /user/{id} [put]
func (h *userHandler) updateUser(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req dto.UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}
	if _, err := h.userService.UpdateUser(c.Request.Context(), p, c.Param("id"), req); err != nil {
		respondError(c, err, "User")
		return
	}
	c.JSON(http.StatusOK, dto.UpdatedOne())
}

// deleteUser godoc
// @Summary Delete a user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.DeleteResult
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /user/{id} [delete]
func (h *userHandler) deleteUser(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	if err := h.userService.DeleteUser(c.Request.Context(), p, c.Param("id")); err != nil {
		respondError(c, err, "User")
		return
	}
	c.JSON(http.StatusOK, dto.DeletedOne())
}
