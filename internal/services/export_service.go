package services

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"techhelp-dashboard/internal/entities"
)

const (
	SheetSummary        = "Resumo"
	SheetCategories     = "Categorias"
	SheetSatisfaction   = "Satisfação"
	SheetResolutionRate = "Taxa de Resolução"
	SheetCategoryTime   = "Tempo por Categoria"

	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type ExportServiceInterface interface {
	WriteXLSX(w io.Writer, snapshot entities.Snapshot) error
}

type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

// FileName is the attachment name of a snapshot export.
func (s *ExportService) FileName(snapshot entities.Snapshot) string {
	return fmt.Sprintf("techhelp_dashboard_%s.xlsx", snapshot.LoadedAt.Format("2006-01-02"))
}

func (s *ExportService) WriteXLSX(w io.Writer, snapshot entities.Snapshot) error {
	f, err := s.BuildWorkbook(snapshot)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

// BuildWorkbook lays the snapshot out as one sheet per dashboard block.
func (s *ExportService) BuildWorkbook(snapshot entities.Snapshot) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return nil, err
	}
	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	summary := snapshot.Summary
	var resolution interface{} = NotAvailable
	if percent, ok := ResolutionPercent(summary.OpenCount, summary.ClosedCount); ok {
		resolution = Round1(percent)
	}
	summaryRows := [][]interface{}{
		{"Indicador", "Valor"},
		{"Chamados Abertos", summary.OpenCount},
		{"Chamados Encerrados", summary.ClosedCount},
		{"Taxa de Resolução (%)", resolution},
		{"Tempo Médio de Resolução (h)", Round1(summary.AvgResolutionHours)},
		{"Satisfação Média", Round1(summary.AvgSatisfaction)},
		{"Técnico Mais Produtivo", summary.TopTechnician.Name},
		{"Chamados Encerrados pelo Técnico", summary.TopTechnician.ClosedCount},
		{"Gerado em", snapshot.LoadedAt.Format("02.01.2006 15:04")},
	}
	if err := writeSheet(f, SheetSummary, summaryRows, header); err != nil {
		return nil, err
	}
	f.SetColWidth(SheetSummary, "A", "A", 35)
	f.SetColWidth(SheetSummary, "B", "B", 25)

	categoryRows := [][]interface{}{{"Categoria", "Contagem"}}
	for _, c := range summary.RecurringCategories {
		categoryRows = append(categoryRows, []interface{}{c.Category, c.Count})
	}
	if err := addSheet(f, SheetCategories, categoryRows, header); err != nil {
		return nil, err
	}

	satisfactionRows := [][]interface{}{{"Satisfação", "Contagem"}}
	for _, d := range summary.SatisfactionDistribution {
		satisfactionRows = append(satisfactionRows, []interface{}{d.Label, d.Count})
	}
	if err := addSheet(f, SheetSatisfaction, satisfactionRows, header); err != nil {
		return nil, err
	}

	rateRows := [][]interface{}{{"Semana", "Taxa (%)"}}
	for _, p := range snapshot.ResolutionRates {
		rateRows = append(rateRows, []interface{}{p.PeriodLabel, p.Rate})
	}
	if err := addSheet(f, SheetResolutionRate, rateRows, header); err != nil {
		return nil, err
	}

	timeRows := [][]interface{}{{"Categoria", "Tempo Médio (h)", "Total Resolvidos"}}
	for _, t := range snapshot.CategoryTimes {
		timeRows = append(timeRows, []interface{}{t.Category, t.AvgHours, t.ResolvedCount})
	}
	if err := addSheet(f, SheetCategoryTime, timeRows, header); err != nil {
		return nil, err
	}

	return f, nil
}

func addSheet(f *excelize.File, sheet string, rows [][]interface{}, header int) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	if err := writeSheet(f, sheet, rows, header); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", "A", 30)
}

// writeSheet writes rows from A1 down and makes the first row bold.
func writeSheet(f *excelize.File, sheet string, rows [][]interface{}, header int) error {
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return err
		}
	}
	if len(rows) == 0 {
		return nil
	}
	last, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last, header)
}
