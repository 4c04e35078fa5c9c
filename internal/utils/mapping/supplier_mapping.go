package mapping

import (
	"github.com/quickway/travels_backoffice/internal/core/domain"
	"github.com/quickway/travels_backoffice/internal/models"
)

// ToModelSupplier converts a domain Supplier to a model Supplier
func ToModelSupplier(d domain.Supplier) models.Supplier {
	return models.Supplier{
		ID:           d.ID,
		SupplierName: d.SupplierName,
		Mobile:       d.Mobile,
		Address:      d.Address,
		TotalDue:     d.TotalDue,
		Status:       string(d.Status),
		OfficeID:     d.OfficeID,
		CreatedBy:    d.CreatedBy,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// ToDomainSupplier converts a model Supplier to a domain Supplier
func ToDomainSupplier(m models.Supplier) domain.Supplier {
	return domain.Supplier{
		ID:           m.ID,
		SupplierName: m.SupplierName,
		Mobile:       m.Mobile,
		Address:      m.Address,
		TotalDue:     m.TotalDue,
		Status:       domain.Status(m.Status),
		Provenance:   provenance(m.OfficeID, m.CreatedBy, m.CreatedAt),
		UpdatedAt:    m.UpdatedAt,
	}
}

// ToDomainSupplierSlice converts model Suppliers to domain Suppliers
func ToDomainSupplierSlice(ms []models.Supplier) []domain.Supplier {
	ds := make([]domain.Supplier, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSupplier(m)
	}
	return ds
}

// ToModelPayment converts a domain Payment to a model Payment
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		ID:            d.ID,
		SupplierName:  d.SupplierName,
		Amount:        d.Amount,
		PaymentMethod: d.PaymentMethod,
		PaymentDate:   d.PaymentDate,
		Reference:     d.Reference,
		Remarks:       d.Remarks,
		OfficeID:      d.OfficeID,
		CreatedBy:     d.CreatedBy,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		ID:            m.ID,
		SupplierName:  m.SupplierName,
		Amount:        m.Amount,
		PaymentMethod: m.PaymentMethod,
		PaymentDate:   m.PaymentDate,
		Reference:     m.Reference,
		Remarks:       m.Remarks,
		Provenance:    provenance(m.OfficeID, m.CreatedBy, m.CreatedAt),
		UpdatedAt:     m.UpdatedAt,
	}
}

// ToDomainPaymentSlice converts model Payments to domain Payments
func ToDomainPaymentSlice(ms []models.Payment) []domain.Payment {
	ds := make([]domain.Payment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayment(m)
	}
	return ds
}
