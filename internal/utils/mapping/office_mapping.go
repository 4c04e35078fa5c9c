package mapping

import (
	"github.com/quickway/travels_backoffice/internal/core/domain"
	"github.com/quickway/travels_backoffice/internal/models"
)

// ToModelOffice converts a domain Office to a model Office
func ToModelOffice(d domain.Office) models.Office {
	return models.Office{
		ID:            d.ID,
		OfficeName:    d.OfficeName,
		OfficeID:      d.OfficeID,
		OfficeAddress: d.OfficeAddress,
		Status:        string(d.Status),
		CreatedAt:     d.CreatedAt,
		CreatedBy:     d.CreatedBy,
	}
}

// ToDomainOffice converts a model Office to a domain Office
func ToDomainOffice(m models.Office) domain.Office {
	return domain.Office{
		ID:            m.ID,
		OfficeName:    m.OfficeName,
		OfficeID:      m.OfficeID,
		OfficeAddress: m.OfficeAddress,
		Status:        domain.Status(m.Status),
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
	}
}

// ToDomainOfficeSlice converts model Offices to domain Offices
func ToDomainOfficeSlice(ms []models.Office) []domain.Office {
	ds := make([]domain.Office, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainOffice(m)
	}
	return ds
}

// ToModelAirline converts a domain Airline to a model Airline
func ToModelAirline(d domain.Airline) models.Airline {
	return models.Airline{
		ID:        d.ID,
		Code:      d.Code,
		Name:      d.Name,
		Status:    string(d.Status),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// ToDomainAirline converts a model Airline to a domain Airline
func ToDomainAirline(m models.Airline) domain.Airline {
	return domain.Airline{
		ID:        m.ID,
		Code:      m.Code,
		Name:      m.Name,
		Status:    domain.Status(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ToDomainAirlineSlice converts model Airlines to domain Airlines
func ToDomainAirlineSlice(ms []models.Airline) []domain.Airline {
	ds := make([]domain.Airline, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAirline(m)
	}
	return ds
}
