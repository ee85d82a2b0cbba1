package xlsx

import (
	"errors"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/tsawler/sheetmerge/model"
)

func buildSet(t *testing.T) *model.SheetSet {
	t.Helper()
	set := model.NewSheetSet()

	orders := model.NewTable([]string{"id", "item", "qty"})
	orders.AddRow([]string{"1", "bolt", "10"})
	orders.AddRow([]string{"2", "nut", ""})
	set.Add("Orders", orders)

	prices := model.NewTable([]string{"item", "price"})
	prices.AddRow([]string{"bolt", "0.10"})
	set.Add("Prices", prices)

	return set
}

func TestWriteAndExtractRoundTrip(t *testing.T) {
	data, err := Write(buildSet(t))
	if err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	set, err := Extract(data)
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}

	wantNames := []string{"Orders", "Prices"}
	if !reflect.DeepEqual(set.Names(), wantNames) {
		t.Fatalf("sheet names = %v, want %v", set.Names(), wantNames)
	}

	orders, _ := set.Table("Orders")
	if !reflect.DeepEqual(orders.Columns, []string{"id", "item", "qty"}) {
		t.Errorf("columns = %v", orders.Columns)
	}
	if orders.RowCount() != 2 {
		t.Fatalf("row count = %d, want 2", orders.RowCount())
	}
	if orders.Cell(0, 1) != "bolt" {
		t.Errorf("cell(0,1) = %q, want %q", orders.Cell(0, 1), "bolt")
	}
	// The empty cell survives as the empty marker.
	if orders.Cell(1, 2) != model.Empty {
		t.Errorf("cell(1,2) = %q, want empty", orders.Cell(1, 2))
	}
}

func TestExtractBlankHeaderPlaceholders(t *testing.T) {
	f := excelize.NewFile()
	_ = f.SetCellValue("Sheet1", "A1", "id")
	_ = f.SetCellValue("Sheet1", "C1", "amount")
	_ = f.SetCellValue("Sheet1", "A2", "1")
	_ = f.SetCellValue("Sheet1", "B2", "x")
	_ = f.SetCellValue("Sheet1", "C2", "2")
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("building fixture: %v", err)
	}

	set, err := Extract(buf.Bytes())
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	_, table := set.First()
	want := []string{"id", "Column_2", "amount"}
	if !reflect.DeepEqual(table.Columns, want) {
		t.Errorf("columns = %v, want %v", table.Columns, want)
	}
}

func TestExtractSkipsEmptySheets(t *testing.T) {
	f := excelize.NewFile()
	if _, err := f.NewSheet("Data"); err != nil {
		t.Fatalf("building fixture: %v", err)
	}
	_ = f.SetCellValue("Data", "A1", "h")
	_ = f.SetCellValue("Data", "A2", "v")
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("building fixture: %v", err)
	}

	set, err := Extract(buf.Bytes())
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	// The untouched default Sheet1 is empty and omitted.
	if !reflect.DeepEqual(set.Names(), []string{"Data"}) {
		t.Errorf("sheet names = %v, want [Data]", set.Names())
	}
}

func TestExtractEmptyWorkbook(t *testing.T) {
	f := excelize.NewFile()
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("building fixture: %v", err)
	}

	_, err = Extract(buf.Bytes())
	if err == nil {
		t.Fatal("Extract should fail on an empty workbook")
	}
	var extErr *model.ExtractionError
	if !errors.As(err, &extErr) {
		t.Errorf("error should be *model.ExtractionError, got %T", err)
	}
}

func TestExtractGarbage(t *testing.T) {
	_, err := Extract([]byte("not a workbook"))
	if err == nil {
		t.Fatal("Extract should fail on non-workbook bytes")
	}
	var extErr *model.ExtractionError
	if !errors.As(err, &extErr) {
		t.Errorf("error should be *model.ExtractionError, got %T", err)
	}
}

func TestWriteEmptySet(t *testing.T) {
	if _, err := Write(model.NewSheetSet()); err == nil {
		t.Error("Write should fail on an empty set")
	}
	if _, err := Write(nil); err == nil {
		t.Error("Write should fail on a nil set")
	}
}
