// Package reports renders sales data as spreadsheets, CSV and receipt vouchers.
package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/quickway/travels_backoffice/internal/core/domain"
	"github.com/xuri/excelize/v2"
)

// Supported export formats.
const (
	FormatExcel = "xlsx"
	FormatCSV   = "csv"
	FormatPDF   = "pdf"
)

// Content types of the rendered documents.
const (
	ContentTypeExcel = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypeCSV   = "text/csv"
	ContentTypePDF   = "application/pdf"
)

const (
	salesSheet = "Sales"
	dateLayout = "2006-01-02"
)

var salesHeaders = []string{
	"RV Number", "Document Number", "Date", "Passenger", "Sector", "Airline", "Supplier",
	"Sell Price", "Buying Price", "Profit", "Mode", "Post Status", "Payment Status",
	"Refunded", "Refund Amount", "Office", "Created By",
}

// SalesExporter renders sales documents.
type SalesExporter interface {
	// ExportSales renders rows as format. It returns the bytes, a file name and the content type.
	ExportSales(format string, rows []domain.Sale) ([]byte, string, string, error)
	// Voucher renders the receipt voucher of one sale as PDF.
	Voucher(sale domain.Sale) ([]byte, string, error)
}

type salesExporter struct {
	now func() time.Time
}

// NewSalesExporter creates a SalesExporter.
func NewSalesExporter() SalesExporter {
	return &salesExporter{now: time.Now}
}

func (e *salesExporter) ExportSales(format string, rows []domain.Sale) ([]byte, string, string, error) {
	timestamp := e.now().Format("20060102_150405")

	switch format {
	case FormatExcel, "":
		data, err := salesExcel(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("sales_%s.xlsx", timestamp), ContentTypeExcel, nil
	case FormatCSV:
		data, err := salesCSV(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("sales_%s.csv", timestamp), ContentTypeCSV, nil
	default:
		return nil, "", "", fmt.Errorf("unsupported format for sales: %s", format)
	}
}

func salesRecord(s domain.Sale) []string {
	date := ""
	if s.Date != nil {
		date = s.Date.Format(dateLayout)
	}
	refunded := "No"
	if s.IsRefunded {
		refunded = "Yes"
	}
	return []string{
		s.RVNumber,
		s.DocumentNumber,
		date,
		s.PassengerName,
		s.Sector,
		s.AirlineCode,
		s.SupplierName,
		s.SellPrice.StringFixed(2),
		s.BuyingPrice.StringFixed(2),
		s.Profit().StringFixed(2),
		s.Mode,
		s.PostStatus,
		s.PaymentStatus,
		refunded,
		s.RefundAmount.StringFixed(2),
		s.OfficeID,
		s.CreatedBy,
	}
}

func salesCSV(rows []domain.Sale) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(salesHeaders); err != nil {
		return nil, err
	}
	for _, s := range rows {
		if err := writer.Write(salesRecord(s)); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func salesExcel(rows []domain.Sale) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(salesSheet)
	if err != nil {
		return nil, err
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)

	for i, h := range salesHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(salesSheet, cell, h); err != nil {
			return nil, err
		}
	}

	for rIdx, s := range rows {
		record := salesRecord(s)
		for cIdx, v := range record {
			cell, err := excelize.CoordinatesToCellName(cIdx+1, rIdx+2)
			if err != nil {
				return nil, err
			}
			// money columns are numeric cells
			var value any = v
			switch cIdx {
			case 7:
				value = s.SellPrice.InexactFloat64()
			case 8:
				value = s.BuyingPrice.InexactFloat64()
			case 9:
				value = s.Profit().InexactFloat64()
			case 14:
				value = s.RefundAmount.InexactFloat64()
			}
			if err := f.SetCellValue(salesSheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *salesExporter) Voucher(s domain.Sale) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A5", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, "Receipt Voucher", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, s.RVNumber, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	date := ""
	if s.Date != nil {
		date = s.Date.Format(dateLayout)
	}
	lines := [][2]string{
		{"Document Number", s.DocumentNumber},
		{"Date", date},
		{"Passenger", s.PassengerName},
		{"Sector", s.Sector},
		{"Airline", s.AirlineCode},
		{"Mode", s.Mode},
		{"Amount", s.SellPrice.StringFixed(2)},
		{"Payment Status", s.PaymentStatus},
		{"Remarks", s.Remarks},
	}
	if s.IsRefunded {
		lines = append(lines,
			[2]string{"Refund Amount", s.RefundAmount.StringFixed(2)},
			[2]string{"Service Charge", s.ServiceCharge.StringFixed(2)})
	}

	for _, l := range lines {
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(45, 7, l[0], "1", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(0, 7, l[1], "1", 1, "L", false, 0, "")
	}

	pdf.Ln(8)
	pdf.SetFont("Arial", "I", 8)
	pdf.CellFormat(0, 5, "Issued by "+s.CreatedBy+" on "+s.CreatedAt.Format(dateLayout), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), fmt.Sprintf("voucher_%s.pdf", s.RVNumber), nil
}
