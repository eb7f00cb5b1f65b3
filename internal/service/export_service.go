package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/Maca31/IFPhub/internal/repository"
	"github.com/Maca31/IFPhub/internal/scheduling"
)

// ExportService renders the weekly appointment grid as an Excel workbook
// for the secretary's office.
type ExportService interface {
	WeeklySheet(ctx context.Context, day string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService creates the ExportService.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// WeeklySheet builds a slots-by-weekdays grid for the working week that
// contains day. Occupied cells carry the booking description; the weekend
// is omitted since those days are never bookable.
func (s *exportService) WeeklySheet(ctx context.Context, day string) (*bytes.Buffer, string, error) {
	anchor, err := time.Parse("2006-01-02", day)
	if err != nil {
		return nil, "", scheduling.ErrInvalidInput
	}

	// Rewind to Monday.
	offset := (int(anchor.Weekday()) + 6) % 7
	monday := anchor.AddDate(0, 0, -offset)

	days := make([]string, 5)
	for i := range days {
		days[i] = monday.AddDate(0, 0, i).Format("2006-01-02")
	}

	// One occupancy map per weekday, keyed by normalized slot start.
	booked := make(map[string]map[string]string)
	for _, d := range days {
		appointments, err := s.repo.Appointment.List(ctx, d)
		if err != nil {
			s.logger.Error("loading week for export", zap.String("day", d), zap.Error(err))
			return nil, "", &scheduling.PersistenceError{Err: err}
		}
		cells := make(map[string]string, len(appointments))
		for _, a := range appointments {
			cells[scheduling.NormalizeTime(a.StartTime)] = a.Description
		}
		booked[d] = cells
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Citas"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})

	f.SetCellValue(sheet, "A1", "Franja")
	for i, d := range days {
		cell, _ := excelize.CoordinatesToCellName(i+2, 1)
		f.SetCellValue(sheet, cell, d)
	}
	f.SetCellStyle(sheet, "A1", "F1", headerStyle)
	f.SetColWidth(sheet, "A", "A", 16)
	f.SetColWidth(sheet, "B", "F", 28)

	for row, slot := range scheduling.Catalog {
		labelCell, _ := excelize.CoordinatesToCellName(1, row+2)
		f.SetCellValue(sheet, labelCell, slot.Label)
		for col, d := range days {
			if desc, ok := booked[d][slot.Start]; ok {
				cell, _ := excelize.CoordinatesToCellName(col+2, row+2)
				f.SetCellValue(sheet, cell, desc)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("writing workbook: %w", err)
	}

	filename := fmt.Sprintf("citas-%s.xlsx", monday.Format("2006-01-02"))
	return buf, filename, nil
}
