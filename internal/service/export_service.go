package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/w4d32001/admin-eapiis/internal/dto"
	"github.com/w4d32001/admin-eapiis/internal/model"
	"github.com/w4d32001/admin-eapiis/internal/repository"
)

// ErrExportGenerateFail the workbook could not be rendered.
var ErrExportGenerateFail = errors.New("generate workbook failed")

const (
	teacherExportFile  = "docentes.xlsx"
	teacherExportSheet = "Docentes"
)

var teacherExportHeader = []string{"Nombre", "Grado académico", "Correo", "Teléfono", "Categoría", "Actualizado"}

// ExportService spreadsheet exports.
type ExportService interface {
	// ExportTeachers renders the filtered teacher directory, unpaginated.
	ExportTeachers(ctx context.Context, q *dto.ListQuery) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService creates an ExportService.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ────────────────────── ExportTeachers ──────────────────────

func (s *exportService) ExportTeachers(ctx context.Context, q *dto.ListQuery) (*bytes.Buffer, string, error) {
	teachers, _, err := s.repo.Teacher.List(ctx, repository.ListFilter{
		Search:     q.Search,
		CategoryID: q.CategoryID,
	})
	if err != nil {
		s.logger.Error("list teachers for export failed", zap.Error(err))
		return nil, "", err
	}

	rows := make([][]string, 0, len(teachers))
	for i := range teachers {
		t := &teachers[i]
		rows = append(rows, []string{
			t.Name,
			t.AcademicDegree,
			t.Email,
			t.Phone,
			teacherCategoryName(t),
			dto.FormatTime(t.UpdatedAt),
		})
	}

	buf, err := renderSheet(teacherExportSheet, teacherExportHeader, rows)
	if err != nil {
		s.logger.Error("render teacher workbook failed", zap.Int("rows", len(rows)), zap.Error(err))
		return nil, "", fmt.Errorf("%w: %v", ErrExportGenerateFail, err)
	}
	return buf, teacherExportFile, nil
}

// renderSheet writes a single sheet workbook with a bold, filterable header.
func renderSheet(sheet string, header []string, rows [][]string) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	for col, title := range header {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellStr(sheet, cell, title); err != nil {
			return nil, err
		}
	}
	for r, row := range rows {
		for col, value := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, r+2)
			if err := f.SetCellStr(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	last, _ := excelize.CoordinatesToCellName(len(header), 1)
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, "A1", last, bold); err != nil {
		return nil, err
	}
	if err := f.AutoFilter(sheet, "A1:"+last, nil); err != nil {
		return nil, err
	}

	for col := range header {
		name, _ := excelize.ColumnNumberToName(col + 1)
		width := float64(len(header[col]))
		for _, row := range rows {
			if l := float64(len([]rune(row[col]))); l > width {
				width = l
			}
		}
		width = min(max(width+2, 12), 45)
		_ = f.SetColWidth(sheet, name, name, width)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// teacherCategoryName is empty for teachers without a live category.
func teacherCategoryName(t *model.Teacher) string {
	if t.Category == nil {
		return ""
	}
	return t.Category.Name
}
