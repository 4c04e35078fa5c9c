package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/quickway/travels_backoffice/internal/core/ports/services"
	"github.com/quickway/travels_backoffice/internal/dto"
	"github.com/quickway/travels_backoffice/internal/middleware"
)

// officeHandler handles HTTP requests related to offices (client areas).
type officeHandler struct {
	officeService portssvc.OfficeSvcFacade
}

// registerOfficeRoutes registers routes related to offices. All of them are super-admin only.
func registerOfficeRoutes(rg *gin.RouterGroup, officeService portssvc.OfficeSvcFacade) {
	h := &officeHandler{officeService: officeService}

	offices := rg.Group("/clientArea", superAdminOnly)
	{
		offices.POST("", h.createOffice)
		offices.GET("", h.listOffices)
		offices.GET("/:id", h.getOffice)
		offices.PATCH("/:id/status", h.updateOfficeStatus)
		offices.DELETE("/:id", h.deleteOffice)
	}
}

// createOffice godoc
// @Summary Create an office
// @Description Creates a tenant (client area). New offices are active.
// @Tags offices
// @Accept json
// @Produce json
// @Param office body dto.CreateOfficeRequest true "Office details"
// @Success 201 {object} dto.InsertResult
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "officeId already exists"
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /clientArea [post]
func (h *officeHandler) createOffice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	p, ok := principal(c)
	if !ok {
		return
	}
	var req dto.CreateOfficeRequest
	if !bindJSON(c, &req) {
		return
	}

	office, err := h.officeService.CreateOffice(c.Request.Context(), p, req)
	if err != nil {
		respondError(c, err, "Office")
		return
	}

	logger.Info("Office created", slog.String("office_id", office.OfficeID))
	resp := dto.NewInsertResult(office.ID)
	resp.Message = "Office created successfully"
	c.JSON(http.StatusCreated, resp)
}

// listOffices godoc
// @Summary List offices
// @Tags offices
// @Produce json
// @Success 200 {array} dto.OfficeResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /clientArea [get]
func (h *officeHandler) listOffices(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	offices, err := h.officeService.ListOffices(c.Request.Context(), p)
	if err != nil {
		respondError(c, err, "Office")
		return
	}
	c.JSON(http.StatusOK, dto.ToOfficeResponses(offices))
}

// getOffice godoc
// @Summary Get an office by ID
// @Tags offices
// @Produce json
// @Param id path string true "Office ID"
// @Success 200 {object} dto.OfficeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /clientArea/{id} [get]
func (h *officeHandler) getOffice(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	office, err := h.officeService.GetOffice(c.Request.Context(), p, c.Param("id"))
	if err != nil {
		respondError(c, err, "Office")
		return
	}
	c.JSON(http.StatusOK, dto.ToOfficeResponse(office))
}

// updateOfficeStatus godoc
// @Summary Change an office status
// @Tags offices
// @Accept json
// @Produce json
// @Param id path string true "Office ID"
// @Param status body dto.StatusUpdateRequest true "New status"
// @Success 200 {object} dto.UpdateResult
// @Success 304 "Status unchanged"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /clientArea/{id}/status [patch]
func (h *officeHandler) updateOfficeStatus(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req dto.StatusUpdateRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.officeService.UpdateOfficeStatus(c.Request.Context(), p, c.Param("id"), req.Status); err != nil {
		respondError(c, err, "Office")
		return
	}
	c.JSON(http.StatusOK, dto.UpdatedOne())
}

// deleteOffice godoc
// @Summary Delete an office
// @Tags offices
// @Produce json
// @Param id path string true "Office ID"
// @Success 200 {object} dto.DeleteResult
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /clientArea/{id} [delete]
func (h *officeHandler) deleteOffice(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	if err := h.officeService.DeleteOffice(c.Request.Context(), p, c.Param("id")); err != nil {
		respondError(c, err, "Office")
		return
	}
	c.JSON(http.StatusOK, dto.DeletedOne())
}
