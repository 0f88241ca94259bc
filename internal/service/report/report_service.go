package report

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Web-Star-Studio/daton-esg-insight/internal/domain"
	"github.com/Web-Star-Studio/daton-esg-insight/internal/pkg/store"
	"github.com/Web-Star-Studio/daton-esg-insight/internal/service/legislation"
	"github.com/Web-Star-Studio/daton-esg-insight/internal/service/waste"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// Sheet header fill, the product's green.
const headerFillColor = "16A34A"

type Service struct {
	waste       *waste.Service
	legislation *legislation.Service
}

func NewService(wasteService *waste.Service, legislationService *legislation.Service) *Service {
	return &Service{waste: wasteService, legislation: legislationService}
}

// WasteWorkbook builds the multi-sheet xlsx for one tenant-year. The four
// aggregations run sequentially; each is an independent read.
func (s *Service) WasteWorkbook(ctx context.Context, companyID uuid.UUID, year domain.Year) ([]byte, string, error) {
	generation, err := s.waste.TotalGeneration(ctx, companyID, year)
	if err != nil {
		return nil, "", fmt.Errorf("waste.TotalGeneration: %w", err)
	}
	disposal, err := s.waste.Disposal(ctx, companyID, year)
	if err != nil {
		return nil, "", fmt.Errorf("waste.Disposal: %w", err)
	}
	reuse, err := s.waste.Reuse(ctx, companyID, year)
	if err != nil {
		return nil, "", fmt.Errorf("waste.Reuse: %w", err)
	}
	recycling, err := s.waste.RecyclingByMaterial(ctx, companyID, year)
	if err != nil {
		return nil, "", fmt.Errorf("waste.RecyclingByMaterial: %w", err)
	}

	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	headerStyle, err := newHeaderStyle(f)
	if err != nil {
		return nil, "", err
	}

	if err = writeGenerationSheet(f, headerStyle, generation); err != nil {
		return nil, "", err
	}
	if err = writeDisposalSheet(f, headerStyle, disposal); err != nil {
		return nil, "", err
	}
	if err = writeReuseSheet(f, headerStyle, reuse); err != nil {
		return nil, "", err
	}
	if err = writeRecyclingSheet(f, headerStyle, recycling); err != nil {
		return nil, "", err
	}

	if err = f.DeleteSheet("Sheet1"); err != nil {
		return nil, "", err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("f.WriteToBuffer: %w", err)
	}

	return buf.Bytes(), FileName("residuos", strconv.Itoa(year), "xlsx", time.Now()), nil
}

// LegislationWorkbook builds the single-sheet compliance report.
func (s *Service) LegislationWorkbook(ctx context.Context, opts store.ListLegislationsOpts) ([]byte, string, error) {
	items, err := s.legislation.List(ctx, opts)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	headerStyle, err := newHeaderStyle(f)
	if err != nil {
		return nil, "", err
	}

	const sheet = "Legislação"
	if _, err = f.NewSheet(sheet); err != nil {
		return nil, "", err
	}

	if err = writeRow(f, sheet, 1, "Número", "Título", "Esfera", "Status", "Publicação"); err != nil {
		return nil, "", err
	}
	if err = f.SetCellStyle(sheet, "A1", "E1", headerStyle); err != nil {
		return nil, "", err
	}

	for i, item := range items {
		published := ""
		if item.PublishedAt != nil {
			published = item.PublishedAt.Format("02/01/2006")
		}
		if err = writeRow(f, sheet, i+2, item.Number, item.Title, item.Sphere, item.Status, published); err != nil {
			return nil, "", err
		}
	}

	if err = f.DeleteSheet("Sheet1"); err != nil {
		return nil, "", err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("f.WriteToBuffer: %w", err)
	}

	return buf.Bytes(), FileName("legislacao", "geral", "xlsx", time.Now()), nil
}

func newHeaderStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{headerFillColor}, Pattern: 1},
	})
}

func writeRow(f *excelize.File, sheet string, row int, values ...interface{}) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err = f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

func writeGenerationSheet(f *excelize.File, headerStyle int, res *domain.GenerationResult) error {
	const sheet = "Geração"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	if err := writeRow(f, sheet, 1, "Indicador", "Valor"); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "B1", headerStyle); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Ano", res.Year},
		{"Total gerado (t)", res.TotalGeneratedTonnes},
		{"Perigosos (t)", res.HazardousTonnes},
		{"Não perigosos (t)", res.NonHazardousTonnes},
		{"Perigosos (%)", res.HazardousPercentage},
		{"Reciclagem (t)", res.ByTreatment.Recycling.Tonnes},
		{"Aterro (t)", res.ByTreatment.Landfill.Tonnes},
		{"Incineração (t)", res.ByTreatment.Incineration.Tonnes},
		{"Compostagem (t)", res.ByTreatment.Composting.Tonnes},
		{"Outros (t)", res.ByTreatment.Other.Tonnes},
		{"Registros", res.RecordCount},
	}
	for i, r := range rows {
		if err := writeRow(f, sheet, i+2, r...); err != nil {
			return err
		}
	}
	return nil
}

func writeDisposalSheet(f *excelize.File, headerStyle int, res *domain.DisposalResult) error {
	const sheet = "Disposição"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Disposição final (%)", res.DisposalPercentage},
		{"Aterro (%)", res.LandfillPercentage},
		{"Incineração (%)", res.IncinerationPercentage},
		{"Classificação", res.PerformanceClassification},
		{"Meta Zero Waste (%)", res.ZeroWaste.TargetPercentage},
		{"Distância da meta (p.p.)", res.ZeroWaste.GapToTarget},
		{"Emissões estimadas (kg CO2e)", res.EnvironmentalImpact.TotalCO2Kg},
		{"Custo estimado (R$)", res.CostEstimate.TotalCostBRL},
	}
	for i, r := range rows {
		if err := writeRow(f, sheet, i+1, r...); err != nil {
			return err
		}
	}

	headerRow := len(rows) + 2
	if err := writeRow(f, sheet, headerRow, "Resíduo", "Aterro (t)", "Incineração (t)", "Total (t)", "Perigoso"); err != nil {
		return err
	}
	start, err := excelize.CoordinatesToCellName(1, headerRow)
	if err != nil {
		return err
	}
	end, err := excelize.CoordinatesToCellName(5, headerRow)
	if err != nil {
		return err
	}
	if err = f.SetCellStyle(sheet, start, end, headerStyle); err != nil {
		return err
	}

	for i, t := range res.TopWasteTypes {
		hazardous := "não"
		if t.Hazardous {
			hazardous = "sim"
		}
		if err = writeRow(f, sheet, headerRow+1+i, t.WasteDescription, t.LandfillTonnes, t.IncinerationTonnes, t.TotalTonnes, hazardous); err != nil {
			return err
		}
	}
	return nil
}

func writeReuseSheet(f *excelize.File, headerStyle int, res *domain.ReuseResult) error {
	const sheet = "Reuso"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	if err := writeRow(f, sheet, 1, "Categoria", "Toneladas", "%"); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "C1", headerStyle); err != nil {
		return err
	}
	for i, c := range res.ByCategory {
		if err := writeRow(f, sheet, i+2, c.Category, c.Tonnes, c.Percentage); err != nil {
			return err
		}
	}

	summaryRow := len(res.ByCategory) + 3
	summary := [][]interface{}{
		{"Reuso total (t)", res.ReuseTonnes},
		{"Reuso (%)", res.ReusePercentage},
		{"Classificação", res.PerformanceClassification},
	}
	for i, r := range summary {
		if err := writeRow(f, sheet, summaryRow+i, r...); err != nil {
			return err
		}
	}
	return nil
}

func writeRecyclingSheet(f *excelize.File, headerStyle int, res *domain.RecyclingResult) error {
	const sheet = "Reciclagem por Material"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	if err := writeRow(f, sheet, 1, "Material", "Toneladas", "%"); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "C1", headerStyle); err != nil {
		return err
	}
	for i, m := range res.ByMaterial {
		if err := writeRow(f, sheet, i+2, m.Category, m.Tonnes, m.Percentage); err != nil {
			return err
		}
	}

	summaryRow := len(res.ByMaterial) + 3
	summary := [][]interface{}{
		{"Reciclado + compostado (t)", res.TotalRecycledTonnes},
		{"Reciclagem (%)", res.RecyclingPercentage},
		{"Maturidade", res.MaturityLevel},
		{"Progresso Zero Waste (%)", res.ZeroWasteProgress},
	}
	for i, r := range summary {
		if err := writeRow(f, sheet, summaryRow+i, r...); err != nil {
			return err
		}
	}
	return nil
}
