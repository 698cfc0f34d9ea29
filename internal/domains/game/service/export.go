package service

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"gaming-collection-backend/internal/domains/game"
	"gaming-collection-backend/internal/shared/query"
)

const exportLimit = query.MaxLimit

// ExportToExcel builds an xlsx workbook from the filtered collection. The
// export reuses the list path, so it honors the same filters and sort.
func (s *gameService) ExportToExcel(ctx context.Context, filter game.Filter) (*excelize.File, error) {
	if filter.Limit <= 0 || filter.Limit > exportLimit {
		filter.Limit = exportLimit
	}

	games, _, err := s.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list games for export: %w", err)
	}

	return buildGamesExcelFile(games)
}

func buildGamesExcelFile(games []*game.GameResponse) (*excelize.File, error) {
	f := excelize.NewFile()

	sheetName := "Game collection"
	f.SetSheetName("Sheet1", sheetName)

	headers := []string{
		"ID",
		"Title",
		"Platform",
		"Genre",
		"Status",
		"Price",
		"Currency",
		"Formatted Price",
		"Release Date",
		"Has Image",
		"Is Active",
		"Created At",
	}
	for colIdx, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err == nil {
		f.SetCellStyle(sheetName, "A1", "L1", headerStyle)
	}

	for i, g := range games {
		rowNum := i + 2
		cell := func(col int) string {
			c, _ := excelize.CoordinatesToCellName(col, rowNum)
			return c
		}

		f.SetCellValue(sheetName, cell(1), g.ID.String())
		f.SetCellValue(sheetName, cell(2), g.Title)
		f.SetCellValue(sheetName, cell(3), string(g.Platform))
		if g.Genre != nil {
			f.SetCellValue(sheetName, cell(4), g.Genre.Name)
		}
		f.SetCellValue(sheetName, cell(5), string(g.Status))
		f.SetCellValue(sheetName, cell(6), g.Price)
		f.SetCellValue(sheetName, cell(7), string(g.Currency))
		f.SetCellValue(sheetName, cell(8), g.FormattedPrice)
		if g.ReleaseDate != nil {
			f.SetCellValue(sheetName, cell(9), g.ReleaseDate.Format("2006-01-02"))
		}
		f.SetCellValue(sheetName, cell(10), g.HasImage)
		f.SetCellValue(sheetName, cell(11), g.IsActive)
		f.SetCellValue(sheetName, cell(12), g.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	return f, nil
}
