package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/quickway/travels_backoffice/internal/core/ports/services"
	"github.com/quickway/travels_backoffice/internal/dto"
	"github.com/quickway/travels_backoffice/internal/middleware"
)

type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

func registerPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade) {
	h := &paymentHandler{paymentService: paymentService}

	payments := rg.Group("/payment")
	{
		payments.GET("", h.listPayments)
		payments.GET("/:id", h.getPayment)
		payments.POST("", h.createPayment)
		payments.PUT("/:id", h.updatePayment)
		payments.DELETE("/:id", h.deletePayment)
	}
}

// listPayments godoc
// @Summary List supplier payments
// @Description Admin or super-admin only.
// @Tags payments
// @Produce json
// @Success 200 {array} dto.PaymentResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /payment [get]
func (h *paymentHandler) listPayments(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	payments, err := h.paymentService.ListPayments(c.Request.Context(), p)
	if err != nil {
		respondError(c, err, "Payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentResponses(payments))
}

// getPayment godoc
// @Summary Get a payment by ID
// @Tags payments
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} dto.PaymentResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /payment/{id} [get]
func (h *paymentHandler) getPayment(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	payment, err := h.paymentService.GetPayment(c.Request.Context(), p, c.Param("id"))
	if err != nil {
		respondError(c, err, "Payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// createPayment godoc
// @Summary Record a payment to a supplier
// @Tags payments
// @Accept json
// @Produce json
// @Param payment body dto.PaymentRequest true "Payment details"
// @Success 201 {object} dto.InsertResult
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /payment [post]
func (h *paymentHandler) createPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	p, ok := principal(c)
	if !ok {
		return
	}
	var req dto.PaymentRequest
	if !bindJSON(c, &req) {
		return
	}
	payment, err := h.paymentService.CreatePayment(c.Request.Context(), p, req)
	if err != nil {
		respondError(c, err, "Payment")
		return
	}
	logger.Info("Payment recorded", slog.String("payment_id", payment.ID), slog.String("supplier", payment.SupplierName))
	c.JSON(http.StatusCreated, dto.NewInsertResult(payment.ID))
}

// updatePayment godoc
// @Summary Update a payment
// @Tags payments
// @Accept json
// @Produce json
// @Param id path string true "Payment ID"
// @Param payment body dto.UpdatePaymentRequest true "Fields to change"
// @Success 200 {object} dto.UpdateResult
// @Success 304 "Nothing changed"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /payment/{id} [put]
func (h *paymentHandler) updatePayment(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req dto.UpdatePaymentRequest
	if !bindJSON(c, &req) {
		return
	}
	if _, err := h.paymentService.UpdatePayment(c.Request.Context(), p, c.Param("id"), req); err != nil {
		respondError(c, err, "Payment")
		return
	}
	c.JSON(http.StatusOK, dto.UpdatedOne())
}

// deletePayment godoc
// @Summary Delete a payment
// @Tags payments
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} dto.DeleteResult
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /payment/{id} [delete]
func (h *paymentHandler) deletePayment(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	if err := h.paymentService.DeletePayment(c.Request.Context(), p, c.Param("id")); err != nil {
		respondError(c, err, "Payment")
		return
	}
	c.JSON(http.StatusOK, dto.DeletedOne())
}
