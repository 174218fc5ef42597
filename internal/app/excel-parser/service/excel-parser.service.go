package excel_parser_service

import (
	"bytes"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/init-pkg/excel-users/domain/app"

	"github.com/xuri/excelize/v2"
)

type ExcelParserService struct {
	log *slog.Logger
}

var _ app.SpreadsheetReader = &ExcelParserService{}

func New(log *slog.Logger) *ExcelParserService {
	return &ExcelParserService{log}
}

// Decode reads the first sheet by declaration order. The first line is the
// header; every following non-empty line becomes a Row keyed by header cells.
func (this *ExcelParserService) Decode(file []byte) ([]app.Row, error) {
	f, err := excelize.OpenReader(bytes.NewReader(file))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", app.ErrDecode, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return []app.Row{}, nil
	}
	sheet := sheets[0]

	grid, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: read sheet %q: %v", app.ErrDecode, sheet, err)
	}
	if len(grid) == 0 {
		return []app.Row{}, nil
	}

	header := make([]string, len(grid[0]))
	for c, cell := range grid[0] {
		header[c] = strings.TrimSpace(cell)
	}

	rows := make([]app.Row, 0, len(grid)-1)
	for r := 1; r < len(grid); r++ {
		row := make(app.Row, len(header))
		for c, raw := range grid[r] {
			if c >= len(header) || header[c] == "" || raw == "" {
				continue
			}
			value, err := this.cellValue(f, sheet, c, r, raw)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", app.ErrDecode, err)
			}
			row[header[c]] = value
		}
		if len(row) == 0 {
			continue
		}
		rows = append(rows, row)
	}

	this.log.Info("spreadsheet decoded", "sheet", sheet, "sheets", len(sheets), "rows", len(rows))
	return rows, nil
}

// cellValue keeps numbers and booleans typed. Cells without an explicit
// type are numeric in OOXML.
func (this *ExcelParserService) cellValue(f *excelize.File, sheet string, col, row int, raw string) (app.Value, error) {
	name, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return app.Value{}, err
	}
	typ, err := f.GetCellType(sheet, name)
	if err != nil {
		return app.Value{}, err
	}

	switch typ {
	case excelize.CellTypeBool:
		return app.Bool(raw == "1" || strings.EqualFold(raw, "true")), nil
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		if n, err := strconv.ParseFloat(raw, 64); err == nil {
			return app.Number(n), nil
		}
	}
	return app.Text(raw), nil
}
