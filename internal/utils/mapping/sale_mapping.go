package mapping

import (
	"time"

	"github.com/quickway/travels_backoffice/internal/core/domain"
	"github.com/quickway/travels_backoffice/internal/models"
)

func provenance(officeID, createdBy string, createdAt time.Time) domain.Provenance {
	return domain.Provenance{OfficeID: officeID, CreatedBy: createdBy, CreatedAt: createdAt}
}

// ToModelSale converts a domain Sale to a model Sale
func ToModelSale(d domain.Sale) models.Sale {
	return models.Sale{
		ID:                d.ID,
		DocumentNumber:    d.DocumentNumber,
		RVNumber:          d.RVNumber,
		AirlineCode:       d.AirlineCode,
		SupplierName:      d.SupplierName,
		SellPrice:         d.SellPrice,
		BuyingPrice:       d.BuyingPrice,
		Mode:              d.Mode,
		Remarks:           d.Remarks,
		PassengerName:     d.PassengerName,
		Sector:            d.Sector,
		SaleDate:          d.Date,
		PostStatus:        d.PostStatus,
		PaymentStatus:     d.PaymentStatus,
		IsRefunded:        d.IsRefunded,
		RefundDate:        d.RefundDate,
		RefundCharge:      d.RefundCharge,
		ServiceCharge:     d.ServiceCharge,
		RefundFromAirline: d.RefundFromAirline,
		RefundAmount:      d.RefundAmount,
		OfficeID:          d.OfficeID,
		CreatedBy:         d.CreatedBy,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}

// ToDomainSale converts a model Sale to a domain Sale
func ToDomainSale(m models.Sale) domain.Sale {
	return domain.Sale{
		ID:             m.ID,
		DocumentNumber: m.DocumentNumber,
		RVNumber:       m.RVNumber,
		AirlineCode:    m.AirlineCode,
		SupplierName:   m.SupplierName,
		SellPrice:      m.SellPrice,
		BuyingPrice:    m.BuyingPrice,
		Mode:           m.Mode,
		Remarks:        m.Remarks,
		PassengerName:  m.PassengerName,
		Sector:         m.Sector,
		Date:           m.SaleDate,
		PostStatus:     m.PostStatus,
		PaymentStatus:  m.PaymentStatus,
		SaleRefund: domain.SaleRefund{
			IsRefunded:        m.IsRefunded,
			RefundDate:        m.RefundDate,
			RefundCharge:      m.RefundCharge,
			ServiceCharge:     m.ServiceCharge,
			RefundFromAirline: m.RefundFromAirline,
			RefundAmount:      m.RefundAmount,
		},
		Provenance: provenance(m.OfficeID, m.CreatedBy, m.CreatedAt),
		UpdatedAt:  m.UpdatedAt,
	}
}

// ToDomainSaleSlice converts model Sales to domain Sales
func ToDomainSaleSlice(ms []models.Sale) []domain.Sale {
	ds := make([]domain.Sale, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSale(m)
	}
	return ds
}
