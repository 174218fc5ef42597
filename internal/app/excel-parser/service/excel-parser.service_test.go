package excel_parser_service

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/init-pkg/excel-users/domain/app"

	"github.com/xuri/excelize/v2"
)

func newTestService() *ExcelParserService {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func workbook(t *testing.T, sheets map[string][][]any, order ...string) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, name := range order {
		if i == 0 {
			if name != "Sheet1" {
				if err := f.SetSheetName("Sheet1", name); err != nil {
					t.Fatalf("rename sheet: %v", err)
				}
			}
		} else if _, err := f.NewSheet(name); err != nil {
			t.Fatalf("new sheet: %v", err)
		}
		for r, line := range sheets[name] {
			if len(line) == 0 {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(1, r+1)
			values := line
			if err := f.SetSheetRow(name, cell, &values); err != nil {
				t.Fatalf("set row: %v", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

func TestDecodeFirstSheetOnly(t *testing.T) {
	file := workbook(t, map[string][][]any{
		"People": {
			{"Names", "NID", "phone number", "gender", "email"},
			{"Alice", "1199880012345678", "0721234567", "F", "alice@example.com"},
			{},
			{"Bob", 1199880012345679, "0781234567", "M", "bob@example.com"},
		},
		"Other": {
			{"ignored"},
			{"x"},
		},
	}, "People", "Other")

	rows, err := newTestService().Decode(file)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2 (blank line skipped, other sheet ignored)", len(rows))
	}
	if _, ok := rows[0]["ignored"]; ok {
		t.Fatalf("second sheet leaked into result")
	}

	alice := rows[0]
	if alice["Names"] != app.Text("Alice") {
		t.Errorf("Names = %#v", alice["Names"])
	}
	if alice["NID"].Kind != app.KindText || alice["NID"].String() != "1199880012345678" {
		t.Errorf("text NID = %#v", alice["NID"])
	}

	bob := rows[1]
	if bob["NID"].Kind != app.KindNumber {
		t.Fatalf("numeric NID should stay numeric, got %#v", bob["NID"])
	}
	if got := bob["NID"].String(); got != "1199880012345679" {
		t.Errorf("numeric NID rendered %q", got)
	}
}

func TestDecodeKeepsBooleans(t *testing.T) {
	file := workbook(t, map[string][][]any{
		"Sheet1": {
			{"Names", "active"},
			{"Carol", true},
		},
	}, "Sheet1")

	rows, err := newTestService().Decode(file)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0]["active"] != app.Bool(true) {
		t.Errorf("active = %#v, want bool true", rows[0]["active"])
	}
}

func TestDecodeHeaderOnly(t *testing.T) {
	file := workbook(t, map[string][][]any{
		"Sheet1": {{"Names", "NID"}},
	}, "Sheet1")

	rows, err := newTestService().Decode(file)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("got %d rows, want 0", len(rows))
	}
}

func TestDecodeMalformed(t *testing.T) {
	for name, input := range map[string][]byte{
		"empty":   {},
		"garbage": []byte("Names,NID\nAlice,123\n"),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := newTestService().Decode(input)
			if !errors.Is(err, app.ErrDecode) {
				t.Fatalf("err = %v, want ErrDecode", err)
			}
		})
	}
}
