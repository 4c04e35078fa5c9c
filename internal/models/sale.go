package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is the sales table row. Nullable dates scan into pointers.
type Sale struct {
	ID                string          `db:"id"`
	DocumentNumber    string          `db:"document_number"`
	RVNumber          string          `db:"rv_number"`
	AirlineCode       string          `db:"airline_code"`
	SupplierName      string          `db:"supplier_name"`
	SellPrice         decimal.Decimal `db:"sell_price"`
	BuyingPrice       decimal.Decimal `db:"buying_price"`
	Mode              string          `db:"mode"`
	Remarks           string          `db:"remarks"`
	PassengerName     string          `db:"passenger_name"`
	Sector            string          `db:"sector"`
	SaleDate          *time.Time      `db:"sale_date"`
	PostStatus        string          `db:"post_status"`
	PaymentStatus     string          `db:"payment_status"`
	IsRefunded        bool            `db:"is_refunded"`
	RefundDate        *time.Time      `db:"refund_date"`
	RefundCharge      decimal.Decimal `db:"refund_charge"`
	ServiceCharge     decimal.Decimal `db:"service_charge"`
	RefundFromAirline decimal.Decimal `db:"refund_from_airline"`
	RefundAmount      decimal.Decimal `db:"refund_amount"`
	OfficeID          string          `db:"office_id"`
	CreatedBy         string          `db:"created_by"`
	CreatedAt         time.Time       `db:"created_at"`
	UpdatedAt         time.Time       `db:"updated_at"`
}
