package service

import (
	"context"
	"fmt"
	"time"

	"github.com/steelbridge/fabshop/internal/repository"
	"github.com/xuri/excelize/v2"
)

// Fixed report parameters; neither report paginates or caches.
const (
	dueSoonWindowDays  = 7
	revenueWindowDays  = 90
	revenueCustomerCap = 20
)

type ReportService struct {
	reportRepo *repository.ReportRepository
}

func NewReportService(reportRepo *repository.ReportRepository) *ReportService {
	return &ReportService{reportRepo: reportRepo}
}

// JobsDueSoon lists jobs due within the next 7 days, completed excluded.
func (s *ReportService) JobsDueSoon(ctx context.Context) ([]repository.DueSoonRow, error) {
	return s.reportRepo.JobsDueSoon(ctx, time.Now(), dueSoonWindowDays)
}

// TopCustomers ranks the top 20 customers by invoice revenue over the
// trailing 90 days.
func (s *ReportService) TopCustomers(ctx context.Context) ([]repository.TopCustomerRow, error) {
	return s.reportRepo.TopCustomersByRevenue(ctx, time.Now(), revenueWindowDays, revenueCustomerCap)
}

// ExportWorkbook renders both reports into one xlsx workbook and returns
// it with a suggested file name.
func (s *ReportService) ExportWorkbook(ctx context.Context) (*excelize.File, string, error) {
	dueSoon, err := s.JobsDueSoon(ctx)
	if err != nil {
		return nil, "", err
	}
	topCustomers, err := s.TopCustomers(ctx)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	dueSheet := "Jobs Due Soon"
	f.SetSheetName("Sheet1", dueSheet)

	boldStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})

	writeHeader(f, dueSheet, boldStyle, []string{"Job", "Customer", "Description", "Due Date", "Status", "Days Left"})
	for rowIdx, row := range dueSoon {
		r := rowIdx + 2
		f.SetCellValue(dueSheet, fmt.Sprintf("A%d", r), row.JobID)
		f.SetCellValue(dueSheet, fmt.Sprintf("B%d", r), row.CustomerName)
		f.SetCellValue(dueSheet, fmt.Sprintf("C%d", r), row.Description)
		f.SetCellValue(dueSheet, fmt.Sprintf("D%d", r), row.DueDate.Format("2006-01-02"))
		f.SetCellValue(dueSheet, fmt.Sprintf("E%d", r), row.Status)
		f.SetCellValue(dueSheet, fmt.Sprintf("F%d", r), row.DaysLeft)
	}

	revSheet := "Top Customers"
	f.NewSheet(revSheet)
	writeHeader(f, revSheet, boldStyle, []string{"Customer", "Invoices", "Revenue"})
	for rowIdx, row := range topCustomers {
		r := rowIdx + 2
		f.SetCellValue(revSheet, fmt.Sprintf("A%d", r), row.CustomerName)
		f.SetCellValue(revSheet, fmt.Sprintf("B%d", r), row.InvoiceCount)
		f.SetCellValue(revSheet, fmt.Sprintf("C%d", r), row.TotalRevenue)
	}

	name := fmt.Sprintf("shop-reports-%s.xlsx", time.Now().Format("20060102"))
	return f, name, nil
}

func writeHeader(f *excelize.File, sheet string, style int, headers []string) {
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, style)
	}
}
