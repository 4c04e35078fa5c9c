package dto

import (
	"time"

	"github.com/quickway/travels_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaleRequest defines the body of POST /sale and PATCH /sale/:id.
// Any rvNumber sent by the client is ignored; the server assigns it.
type SaleRequest struct {
	DocumentNumber string          `json:"documentNumber" binding:"required,max=64"`
	AirlineCode    string          `json:"airlineCode" binding:"max=8"`
	SupplierName   string          `json:"supplierName" binding:"max=160"`
	SellPrice      decimal.Decimal `json:"sellPrice"`
	BuyingPrice    decimal.Decimal `json:"buyingPrice"`
	Mode           string          `json:"mode" binding:"max=32"`
	Remarks        string          `json:"remarks" binding:"max=500"`
	PassengerName  string          `json:"passengerName" binding:"max=160"`
	Sector         string          `json:"sector" binding:"max=64"`
	Date           string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
	PostStatus     string          `json:"postStatus" binding:"max=32"`
	PaymentStatus  string          `json:"paymentStatus" binding:"max=32"`
}

// PostStatusRequest is the body of PATCH /sale/:id/postStatus and /refundStatus.
type PostStatusRequest struct {
	PostStatus string `json:"postStatus" binding:"required,max=32"`
}

// PaymentStatusRequest is the body of PATCH /sale/:id/paymentStatus.
type PaymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus" binding:"required,max=32"`
}

// RefundSaleRequest is the body of PATCH /sale/:id/isRefund.
type RefundSaleRequest struct {
	RefundDate        string          `json:"refundDate" binding:"required,datetime=2006-01-02"`
	RefundCharge      decimal.Decimal `json:"refundCharge"`
	ServiceCharge     decimal.Decimal `json:"serviceCharge"`
	RefundFromAirline decimal.Decimal `json:"refundFromAirline"`
	RefundAmount      decimal.Decimal `json:"refundAmount"`
}

// RefundFlagRequest is the body of PATCH /sale/:id/notRefund.
type RefundFlagRequest struct {
	IsRefunded *bool `json:"isRefunded" binding:"required"`
}

// ListSalesParams defines query parameters for GET /sales and its export.
type ListSalesParams struct {
	PaymentStatus string `form:"paymentStatus"`
	From          string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To            string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	Format        string `form:"format" binding:"omitempty,oneof=xlsx csv"`
}

// SupplierLedgerParams defines query parameters for GET /sale.
type SupplierLedgerParams struct {
	SupplierName string `form:"supplierName" binding:"required"`
}

// ValidateDocumentParams defines query parameters for GET /validate-existing-sales.
type ValidateDocumentParams struct {
	DocumentNumber string `form:"documentNumber" binding:"required"`
}

// ValidateDocumentResponse reports document-number availability and the next RV number.
type ValidateDocumentResponse struct {
	Exists       bool   `json:"exists"`
	Message      string `json:"message"`
	LastRVNumber string `json:"lastRVNumber"`
}

// CreateSaleResponse is returned by POST /sale.
type CreateSaleResponse struct {
	InsertResult
	RVNumber string `json:"rvNumber"`
}

// SaleResponse is the public view of a sale.
type SaleResponse struct {
	ID                string          `json:"_id"`
	DocumentNumber    string          `json:"documentNumber"`
	RVNumber          string          `json:"rvNumber"`
	AirlineCode       string          `json:"airlineCode"`
	SupplierName      string          `json:"supplierName"`
	SellPrice         decimal.Decimal `json:"sellPrice"`
	BuyingPrice       decimal.Decimal `json:"buyingPrice"`
	Profit            decimal.Decimal `json:"profit"`
	Mode              string          `json:"mode"`
	Remarks           string          `json:"remarks"`
	PassengerName     string          `json:"passengerName"`
	Sector            string          `json:"sector"`
	Date              string          `json:"date"`
	PostStatus        string          `json:"postStatus"`
	PaymentStatus     string          `json:"paymentStatus"`
	IsRefunded        bool            `json:"isRefunded"`
	RefundDate        string          `json:"refundDate,omitempty"`
	RefundCharge      decimal.Decimal `json:"refundCharge"`
	ServiceCharge     decimal.Decimal `json:"serviceCharge"`
	RefundFromAirline decimal.Decimal `json:"refundFromAirline"`
	RefundAmount      decimal.Decimal `json:"refundAmount"`
	OfficeID          string          `json:"officeId"`
	CreatedBy         string          `json:"createdBy"`
	CreatedAt         time.Time       `json:"createdAt"`
}

// ToSaleResponse converts a domain.Sale to its response DTO.
func ToSaleResponse(s *domain.Sale) SaleResponse {
	return SaleResponse{
		ID:                s.ID,
		DocumentNumber:    s.DocumentNumber,
		RVNumber:          s.RVNumber,
		AirlineCode:       s.AirlineCode,
		SupplierName:      s.SupplierName,
		SellPrice:         s.SellPrice,
		BuyingPrice:       s.BuyingPrice,
		Profit:            s.Profit(),
		Mode:              s.Mode,
		Remarks:           s.Remarks,
		PassengerName:     s.PassengerName,
		Sector:            s.Sector,
		Date:              FormatDate(s.Date),
		PostStatus:        s.PostStatus,
		PaymentStatus:     s.PaymentStatus,
		IsRefunded:        s.IsRefunded,
		RefundDate:        FormatDate(s.RefundDate),
		RefundCharge:      s.RefundCharge,
		ServiceCharge:     s.ServiceCharge,
		RefundFromAirline: s.RefundFromAirline,
		RefundAmount:      s.RefundAmount,
		OfficeID:          s.OfficeID,
		CreatedBy:         s.CreatedBy,
		CreatedAt:         s.CreatedAt,
	}
}

// ToSaleResponses converts a slice of domain.Sale.
func ToSaleResponses(sales []domain.Sale) []SaleResponse {
	out := make([]SaleResponse, len(sales))
	for i := range sales {
		out[i] = ToSaleResponse(&sales[i])
	}
	return out
}
