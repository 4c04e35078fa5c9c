package reports_test

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/quickway/travels_backoffice/internal/core/domain"
	"github.com/quickway/travels_backoffice/internal/reports"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleSales() []domain.Sale {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	return []domain.Sale{
		{
			RVNumber:       "RV-0001",
			DocumentNumber: "TKT-1",
			PassengerName:  "J. Doe",
			Sector:         "DAC-DXB",
			AirlineCode:    "EK",
			SupplierName:   "Sky Tours",
			SellPrice:      decimal.RequireFromString("500"),
			BuyingPrice:    decimal.RequireFromString("420.5"),
			Date:           &date,
			PaymentStatus:  domain.PaymentStatusDue,
			Provenance:     domain.Provenance{OfficeID: "A", CreatedBy: "agent@a.test", CreatedAt: date},
		},
	}
}

func TestExportSales_CSV(t *testing.T) {
	exporter := reports.NewSalesExporter()

	data, name, contentType, err := exporter.ExportSales(reports.FormatCSV, sampleSales())
	require.NoError(t, err)
	assert.Equal(t, reports.ContentTypeCSV, contentType)
	assert.True(t, strings.HasSuffix(name, ".csv"))

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "RV Number", records[0][0])
	assert.Equal(t, "RV-0001", records[1][0])
	assert.Equal(t, "2024-03-01", records[1][2])
	assert.Equal(t, "79.50", records[1][9])
}

func TestExportSales_Excel(t *testing.T) {
	exporter := reports.NewSalesExporter()

	data, name, contentType, err := exporter.ExportSales("", sampleSales())
	require.NoError(t, err)
	assert.Equal(t, reports.ContentTypeExcel, contentType)
	assert.True(t, strings.HasSuffix(name, ".xlsx"))

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Sales")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "RV-0001", rows[1][0])
	assert.Equal(t, "Sky Tours", rows[1][6])
}

func TestExportSales_UnknownFormat(t *testing.T) {
	_, _, _, err := reports.NewSalesExporter().ExportSales("docx", sampleSales())
	assert.Error(t, err)
}

func TestVoucher(t *testing.T) {
	sale := sampleSales()[0]

	data, name, err := reports.NewSalesExporter().Voucher(sale)
	require.NoError(t, err)
	assert.Equal(t, "voucher_RV-0001.pdf", name)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}
