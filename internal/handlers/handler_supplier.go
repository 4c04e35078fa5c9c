package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/quickway/travels_backoffice/internal/core/ports/services"
	"github.com/quickway/travels_backoffice/internal/dto"
	"github.com/quickway/travels_backoffice/internal/middleware"
)

// supplierHandler handles HTTP requests related to suppliers.
type supplierHandler struct {
	supplierService portssvc.SupplierSvcFacade
}

// registerSupplierRoutes registers routes related to suppliers.
func registerSupplierRoutes(rg *gin.RouterGroup, supplierService portssvc.SupplierSvcFacade) {
	h := &supplierHandler{supplierService: supplierService}

	rg.GET("/suppliers", h.listSuppliers)

	suppliers := rg.Group("/supplier")
	{
		suppliers.GET("/:id", h.getSupplier)
		suppliers.POST("", h.createSupplier)
		suppliers.PUT("/:id/status", h.updateSupplierStatus)
		suppliers.PUT("/:id", h.updateSupplier)
		// keyed by name, not id
		suppliers.PATCH("/:id", h.updateTotalDue)
		suppliers.DELETE("/:id", h.deleteSupplier)
	}
}

// listSuppliers godoc
// @Summary List suppliers
// @Description Non super-admin callers see their own office only.
// @Tags suppliers
// @Produce json
// @Success 200 {array} dto.SupplierResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /suppliers [get]
func (h *supplierHandler) listSuppliers(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	suppliers, err := h.supplierService.ListSuppliers(c.Request.Context(), p)
	if err != nil {
		respondError(c, err, "Supplier")
		return
	}
	c.JSON(http.StatusOK, dto.ToSupplierResponses(suppliers))
}

// getSupplier godoc
// @Summary Get a supplier by ID
// @Tags suppliers
// @Produce json
// @Param id path string true "Supplier ID"
// @Success 200 {object} dto.SupplierResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /supplier/{id} [get]
func (h *supplierHandler) getSupplier(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	supplier, err := h.supplierService.GetSupplier(c.Request.Context(), p, c.Param("id"))
	if err != nil {
		respondError(c, err, "Supplier")
		return
	}
	c.JSON(http.StatusOK, dto.ToSupplierResponse(supplier))
}

// createSupplier godoc
// @Summary Create a supplier
// @Tags suppliers
// @Accept json
// @Produce json
// @Param supplier body dto.CreateSupplierRequest true "Supplier details"
// @Success 201 {object} dto.InsertResult
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Name already used in this office"
// @Security BearerAuth
// @Router /supplier [post]
func (h *supplierHandler) createSupplier(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	p, ok := principal(c)
	if !ok {
		return
	}
	var req dto.CreateSupplierRequest
	if !bindJSON(c, &req) {
		return
	}
	supplier, err := h.supplierService.CreateSupplier(c.Request.Context(), p, req)
	if err != nil {
		respondError(c, err, "Supplier")
		return
	}
	logger.Info("Supplier created", slog.String("supplier_id", supplier.ID))
	c.JSON(http.StatusCreated, dto.NewInsertResult(supplier.ID))
}

// updateSupplierStatus godoc
// @Summary Change a supplier status
// @Tags suppliers
// @Accept json
// @Produce json
// @Param id path string true "Supplier ID"
// @Param status body dto.StatusUpdateRequest true "New status"
// @Success 200 {object} dto.UpdateResult
// @Success 304 "Status unchanged"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /supplier/{id}/status [put]
func (h *supplierHandler) updateSupplierStatus(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req dto.StatusUpdateRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.supplierService.UpdateSupplierStatus(c.Request.Context(), p, c.Param("id"), req.Status); err != nil {
		respondError(c, err, "Supplier")
		return
	}
	c.JSON(http.StatusOK, dto.UpdatedOne())
}

// updateSupplier godoc
// @Summary Update a supplier
// @Tags suppliers
// @Accept json
// @Produce json
// @Param id path string true "Supplier ID"
// @Param supplier body dto.UpdateSupplierRequest true "Fields to change"
// @Success 200 {object} dto.UpdateResult
// @Success 304 "Nothing changed"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /supplier/{id} [put]
func (h *supplierHandler) updateSupplier(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req dto.UpdateSupplierRequest
	if !bindJSON(c, &req) {
		return
	}
	if _, err := h.supplierService.UpdateSupplier(c.Request.Context(), p, c.Param("id"), req); err != nil {
		respondError(c, err, "Supplier")
		return
	}
	c.JSON(http.StatusOK, dto.UpdatedOne())
}

// updateTotalDue godoc
// @Summary Set a supplier's outstanding balance
// @Description The path segment is the supplier name, resolved within the caller's office.
// @Tags suppliers
// @Accept json
// @Produce json
// @Param supplierName path string true "Supplier name"
// @Param due body dto.UpdateTotalDueRequest true "New total due"
// @Success 200 {object} dto.UpdateResult
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /supplier/{supplierName} [patch]
func (h *supplierHandler) updateTotalDue(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req dto.UpdateTotalDueRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.supplierService.UpdateTotalDue(c.Request.Context(), p, c.Param("id"), *req.TotalDue); err != nil {
		respondError(c, err, "Supplier")
		return
	}
	c.JSON(http.StatusOK, dto.UpdatedOne())
}

// deleteSupplier godoc
// @Summary Delete a supplier
// @Tags suppliers
// @Produce json
// @Param id path string true "Supplier ID"
// @Success 200 {object} dto.DeleteResult
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /supplier/{id} [delete]
func (h *supplierHandler) deleteSupplier(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	if err := h.supplierService.DeleteSupplier(c.Request.Context(), p, c.Param("id")); err != nil {
		respondError(c, err, "Supplier")
		return
	}
	c.JSON(http.StatusOK, dto.DeletedOne())
}
