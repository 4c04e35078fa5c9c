package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// RVPrefix prefixes every receipt-voucher number.
const RVPrefix = "RV-"

// Payment statuses that put a sale on a supplier's ledger.
const (
	PaymentStatusPaid = "Paid"
	PaymentStatusDue  = "Due"
)

// LedgerPaymentStatuses lists the statuses included in a supplier ledger.
var LedgerPaymentStatuses = []string{PaymentStatusPaid, PaymentStatusDue}

// FormatRVNumber renders sequence value n as a receipt-voucher number, e.g. RV-0042.
// Values past 9999 keep all their digits.
func FormatRVNumber(n int64) string {
	return fmt.Sprintf("%s%04d", RVPrefix, n)
}

// NextRVNumber returns the number following lastIssued. A zero lastIssued
// yields the seed RV-0001.
func NextRVNumber(lastIssued int64) string {
	return FormatRVNumber(lastIssued + 1)
}

// SaleRefund holds the refund workflow fields of a sale.
type SaleRefund struct {
	IsRefunded        bool            `json:"isRefunded"`
	RefundDate        *time.Time      `json:"refundDate,omitempty"`
	RefundCharge      decimal.Decimal `json:"refundCharge"`
	ServiceCharge     decimal.Decimal `json:"serviceCharge"`
	RefundFromAirline decimal.Decimal `json:"refundFromAirline"`
	RefundAmount      decimal.Decimal `json:"refundAmount"`
}

// Sale is a ticket sold to a passenger.
type Sale struct {
	ID             string          `json:"_id"`
	DocumentNumber string          `json:"documentNumber"`
	RVNumber       string          `json:"rvNumber"`
	AirlineCode    string          `json:"airlineCode"`
	SupplierName   string          `json:"supplierName"`
	SellPrice      decimal.Decimal `json:"sellPrice"`
	BuyingPrice    decimal.Decimal `json:"buyingPrice"`
	Mode           string          `json:"mode"`
	Remarks        string          `json:"remarks"`
	PassengerName  string          `json:"passengerName"`
	Sector         string          `json:"sector"`
	Date           *time.Time      `json:"date,omitempty"`
	PostStatus     string          `json:"postStatus"`
	PaymentStatus  string          `json:"paymentStatus"`
	SaleRefund
	Provenance
	UpdatedAt time.Time `json:"updatedAt"`
}

// Profit is the margin between sell and buying price.
func (s Sale) Profit() decimal.Decimal {
	return s.SellPrice.Sub(s.BuyingPrice)
}

// SaleFilter narrows sale listings beyond the caller's scope.
type SaleFilter struct {
	Scope           Scope
	SupplierName    string
	PaymentStatuses []string
	From            *time.Time
	To              *time.Time
}

// SaleEdit carries the business fields an edit may change.
type SaleEdit struct {
	DocumentNumber string
	AirlineCode    string
	SupplierName   string
	SellPrice      decimal.Decimal
	BuyingPrice    decimal.Decimal
	Mode           string
	Remarks        string
	PassengerName  string
	Sector         string
	Date           *time.Time
}

// Apply copies the edit onto s and reports whether anything changed.
func (e SaleEdit) Apply(s *Sale) bool {
	changed := s.DocumentNumber != e.DocumentNumber ||
		s.AirlineCode != e.AirlineCode ||
		s.SupplierName != e.SupplierName ||
		!s.SellPrice.Equal(e.SellPrice) ||
		!s.BuyingPrice.Equal(e.BuyingPrice) ||
		s.Mode != e.Mode ||
		s.Remarks != e.Remarks ||
		s.PassengerName != e.PassengerName ||
		s.Sector != e.Sector ||
		!sameDate(s.Date, e.Date)

	s.DocumentNumber = e.DocumentNumber
	s.AirlineCode = e.AirlineCode
	s.SupplierName = e.SupplierName
	s.SellPrice = e.SellPrice
	s.BuyingPrice = e.BuyingPrice
	s.Mode = e.Mode
	s.Remarks = e.Remarks
	s.PassengerName = e.PassengerName
	s.Sector = e.Sector
	s.Date = e.Date
	return changed
}

func sameDate(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}
