package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/quickway/travels_backoffice/internal/core/ports/services"
	"github.com/quickway/travels_backoffice/internal/dto"
	"github.com/quickway/travels_backoffice/internal/middleware"
)

// saleHandler handles HTTP requests for sales, their refunds and exports.
type saleHandler struct {
	saleService   portssvc.SaleSvcFacade
	exportService portssvc.ExportSvcFacade
}

// registerSaleRoutes registers routes related to sales.
func registerSaleRoutes(rg *gin.RouterGroup, saleService portssvc.SaleSvcFacade, exportService portssvc.ExportSvcFacade) {
	h := &saleHandler{saleService: saleService, exportService: exportService}

	rg.GET("/sales", h.listSales)
	rg.GET("/sales/export", h.exportSales)
	rg.GET("/validate-existing-sales", h.validateDocumentNumber)

	sales := rg.Group("/sale")
	{
		sales.GET("", h.supplierLedger)
		sales.POST("", h.createSale)
		sales.GET("/:id", h.getSale)
		sales.GET("/:id/voucher", h.saleVoucher)
		sales.PATCH("/:id", h.editSale)
		sales.PATCH("/:id/postStatus", h.updatePostStatus)
		sales.PATCH("/:id/refundStatus", h.updatePostStatus)
		sales.PATCH("/:id/paymentStatus", h.updatePaymentStatus)
		sales.PATCH("/:id/isRefund", h.refundSale)
		sales.PATCH("/:id/notRefund", h.setRefunded)
		sales.DELETE("/:id", h.deleteSale)
	}
}

// listSales godoc
// @Summary List sales
// @Description Sales users see their own sales, admins their office, super-admins everything.
// @Tags sales
// @Produce json
// @Param paymentStatus query string false "Payment status filter"
// @Param from query string false "Earliest sale date (YYYY-MM-DD)"
// @Param to query string false "Latest sale date (YYYY-MM-DD)"
// @Success 200 {array} dto.SaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /sales [get]
func (h *saleHandler) listSales(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var params dto.ListSalesParams
	if !bindQuery(c, &params) {
		return
	}
	sales, err := h.saleService.ListSales(c.Request.Context(), p, params)
	if err != nil {
		respondError(c, err, "Sale")
		return
	}
	c.JSON(http.StatusOK, dto.ToSaleResponses(sales))
}

// exportSales godoc
// @Summary Export sales as a spreadsheet
// @Description Applies the same filters and scoping as GET /sales.
// @Tags sales
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce text/csv
// @Param format query string false "xlsx (default) or csv"
// @Param paymentStatus query string false "Payment status filter"
// @Param from query string false "Earliest sale date (YYYY-MM-DD)"
// @Param to query string false "Latest sale date (YYYY-MM-DD)"
// @Success 200 {file} file
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /sales/export [get]
func (h *saleHandler) exportSales(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var params dto.ListSalesParams
	if !bindQuery(c, &params) {
		return
	}
	file, err := h.exportService.ExportSales(c.Request.Context(), p, params)
	if err != nil {
		respondError(c, err, "Sale")
		return
	}
	sendFile(c, file)
}

// getSale godoc
// @Summary Get a sale by ID
// @Tags sales
// @Produce json
// @Param id path string true "Sale ID"
// @Success 200 {object} dto.SaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /sale/{id} [get]
func (h *saleHandler) getSale(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	sale, err := h.saleService.GetSale(c.Request.Context(), p, c.Param("id"))
	if err != nil {
		respondError(c, err, "Sale")
		return
	}
	c.JSON(http.StatusOK, dto.ToSaleResponse(sale))
}

// saleVoucher godoc
// @Summary Download the receipt voucher of a sale
// @Tags sales
// @Produce application/pdf
// @Param id path string true "Sale ID"
// @Success 200 {file} file
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /sale/{id}/voucher [get]
func (h *saleHandler) saleVoucher(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	file, err := h.exportService.SaleVoucher(c.Request.Context(), p, c.Param("id"))
	if err != nil {
		respondError(c, err, "Sale")
		return
	}
	sendFile(c, file)
}

// supplierLedger godoc
// @Summary List the paid and due sales of a supplier
// @Tags sales
// @Produce json
// @Param supplierName query string true "Supplier name"
// @Success 200 {array} dto.SaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "No sales found for this supplier"
// @Security BearerAuth
// @Router /sale [get]
func (h *saleHandler) supplierLedger(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var params dto.SupplierLedgerParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Supplier name is required"})
		return
	}
	sales, err := h.saleService.SupplierLedger(c.Request.Context(), p, params.SupplierName)
	if err != nil {
		respondError(c, err, "Sale")
		return
	}
	c.JSON(http.StatusOK, dto.ToSaleResponses(sales))
}

// validateDocumentNumber godoc
// @Summary Check a document number and preview the next RV number
// @Description Read-only. Calling it never consumes an RV number.
// @Tags sales
// @Produce json
// @Param documentNumber query string true "Ticket document number"
// @Success 200 {object} dto.ValidateDocumentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /validate-existing-sales [get]
func (h *saleHandler) validateDocumentNumber(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var params dto.ValidateDocumentParams
	if !bindQuery(c, &params) {
		return
	}
	resp, err := h.saleService.ValidateDocumentNumber(c.Request.Context(), p, params.DocumentNumber)
	if err != nil {
		respondError(c, err, "Sale")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// createSale godoc
// @Summary Record a sale
// @Description The server assigns the RV number; any value sent by the client is ignored.
// @Tags sales
// @Accept json
// @Produce json
// @Param sale body dto.SaleRequest true "Sale details"
// @Success 201 {object} dto.CreateSaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /sale [post]
func (h *saleHandler) createSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	p, ok := principal(c)
	if !ok {
		return
	}
	var req dto.SaleRequest
	if !bindJSON(c, &req) {
		return
	}
	sale, err := h.saleService.CreateSale(c.Request.Context(), p, req)
	if err != nil {
		respondError(c, err, "Sale")
		return
	}
	logger.Info("Sale created", slog.String("sale_id", sale.ID), slog.String("rv_number", sale.RVNumber))
	c.JSON(http.StatusCreated, dto.CreateSaleResponse{
		InsertResult: dto.NewInsertResult(sale.ID),
		RVNumber:     sale.RVNumber,
	})
}

// editSale godoc
// @Summary Edit the business fields of a sale
// @Tags sales
// @Accept json
// @Produce json
// @Param id path string true "Sale ID"
// @Param sale body dto.SaleRequest true "Sale details"
// @Success 200 {object} dto.UpdateResult
// @Success 304 "Nothing changed"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /sale/{id} [patch]
func (h *saleHandler) editSale(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req dto.SaleRequest
	if !bindJSON(c, &req) {
		return
	}
	if _, err := h.saleService.EditSale(c.Request.Context(), p, c.Param("id"), req); err != nil {
		respondError(c, err, "Sale")
		return
	}
	c.JSON(http.StatusOK, dto.UpdatedOne())
}

// updatePostStatus godoc
// @Summary Set the post status of a sale
// @Description Served on both /postStatus and /refundStatus.
// @Tags sales
// @Accept json
// @Produce json
// @Param id path string true "Sale ID"
// @Param status body dto.PostStatusRequest true "New post status"
// @Success 200 {object} dto.UpdateResult
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /sale/{id}/postStatus [patch]
// @Router /sale/{id}/refundStatus [patch]
func (h *saleHandler) updatePostStatus(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req dto.PostStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.saleService.UpdatePostStatus(c.Request.Context(), p, c.Param("id"), req.PostStatus); err != nil {
		respondError(c, err, "Sale")
		return
	}
	c.JSON(http.StatusOK, dto.UpdatedOne())
}

// updatePaymentStatus godoc
// @Summary Set the payment status of a sale
// @Tags sales
// @Accept json
// @Produce json
// @Param id path string true "Sale ID"
// @Param status body dto.PaymentStatusRequest true "New payment status"
// @Success 200 {object} dto.UpdateResult
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /sale/{id}/paymentStatus [patch]
func (h *saleHandler) updatePaymentStatus(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req dto.PaymentStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.saleService.UpdatePaymentStatus(c.Request.Context(), p, c.Param("id"), req.PaymentStatus); err != nil {
		respondError(c, err, "Sale")
		return
	}
	c.JSON(http.StatusOK, dto.UpdatedOne())
}

// refundSale godoc
// @Summary Record a refund against a sale
// @Tags sales
// @Accept json
// @Produce json
// @Param id path string true "Sale ID"
// @Param refund body dto.RefundSaleRequest true "Refund details"
// @Success 200 {object} dto.UpdateResult
// @Success 304 "Refund already recorded with the same values"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /sale/{id}/isRefund [patch]
func (h *saleHandler) refundSale(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req dto.RefundSaleRequest
	if !bindJSON(c, &req) {
		return
	}
	if _, err := h.saleService.RefundSale(c.Request.Context(), p, c.Param("id"), req); err != nil {
		respondError(c, err, "Sale")
		return
	}
	c.JSON(http.StatusOK, dto.UpdatedOne())
}

// setRefunded godoc
// @Summary Set or clear the refund flag of a sale
// @Tags sales
// @Accept json
// @Produce json
// @Param id path string true "Sale ID"
// @Param flag body dto.RefundFlagRequest true "Refund flag"
// @Success 200 {object} dto.UpdateResult
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /sale/{id}/notRefund [patch]
func (h *saleHandler) setRefunded(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req dto.RefundFlagRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.saleService.SetRefunded(c.Request.Context(), p, c.Param("id"), *req.IsRefunded); err != nil {
		respondError(c, err, "Sale")
		return
	}
	c.JSON(http.StatusOK, dto.UpdatedOne())
}

// deleteSale godoc
// @Summary Delete a sale
// @Description Admin or super-admin only. The RV number is never reissued.
// @Tags sales
// @Produce json
// @Param id path string true "Sale ID"
// @Success 200 {object} dto.DeleteResult
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /sale/{id} [delete]
func (h *saleHandler) deleteSale(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	if err := h.saleService.DeleteSale(c.Request.Context(), p, c.Param("id")); err != nil {
		respondError(c, err, "Sale")
		return
	}
	c.JSON(http.StatusOK, dto.DeletedOne())
}

func sendFile(c *gin.Context, file *portssvc.ExportFile) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	c.Data(http.StatusOK, file.ContentType, file.Content)
}
