package export

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestWriteXLSX(t *testing.T) {
	rows := BuildRows(sampleRefs(), nil, nil)
	path := filepath.Join(t.TempDir(), "out.xlsx")

	if err := WriteXLSX(path, rows); err != nil {
		t.Fatalf("write: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 1 || sheets[0] != SheetName {
		t.Fatalf("sheets = %v, want only %q", sheets, SheetName)
	}

	read, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("reading rows: %v", err)
	}
	if len(read) != 3 {
		t.Fatalf("got %d rows, want header + 2 data rows", len(read))
	}
	if read[0][0] != "Paper Title" {
		t.Errorf("header cell = %q", read[0][0])
	}
	if read[1][0] != "A simple framework for contrastive learning of visual representations" {
		t.Errorf("title cell = %q", read[1][0])
	}
	if read[2][1] != "1948" {
		t.Errorf("year cell = %q", read[2][1])
	}
}

func TestWriteXLSXEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")

	if err := WriteXLSX(path, nil); err != nil {
		t.Fatalf("write: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	read, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("reading rows: %v", err)
	}
	if len(read) != 1 {
		t.Fatalf("got %d rows, want header only", len(read))
	}
}
