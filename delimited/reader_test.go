package delimited

import (
	"errors"
	"reflect"
	"testing"

	"github.com/tsawler/sheetmerge/model"
)

func TestExtractBasic(t *testing.T) {
	data := []byte("name,age,city\nalice,30,berlin\nbob,25,paris\n")

	set, err := Extract(data, 0)
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if set.Len() != 1 {
		t.Fatalf("expected 1 sheet, got %d", set.Len())
	}

	name, table := set.First()
	if name != SheetName {
		t.Errorf("sheet name = %q, want %q", name, SheetName)
	}
	wantCols := []string{"name", "age", "city"}
	if !reflect.DeepEqual(table.Columns, wantCols) {
		t.Errorf("columns = %v, want %v", table.Columns, wantCols)
	}
	if table.RowCount() != 2 {
		t.Errorf("row count = %d, want 2", table.RowCount())
	}
	if table.Cell(1, 2) != "paris" {
		t.Errorf("cell(1,2) = %q, want %q", table.Cell(1, 2), "paris")
	}
}

func TestExtractRowCountExcludesBlankLines(t *testing.T) {
	data := []byte("a,b\n1,2\n\n\n3,4\n\n")

	set, err := Extract(data, ',')
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	_, table := set.First()
	// Row count = non-blank lines minus the header.
	if table.RowCount() != 2 {
		t.Errorf("row count = %d, want 2", table.RowCount())
	}
}

func TestExtractShortRowsPadded(t *testing.T) {
	data := []byte("a,b,c\n1\n1,2,3,4\n")

	set, err := Extract(data, ',')
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	_, table := set.First()

	// Short row right-padded to header width.
	if got := table.Rows[0]; !reflect.DeepEqual(got, []string{"1", model.Empty, model.Empty}) {
		t.Errorf("short row = %v, want padded to 3", got)
	}
	// Long row truncated to header width.
	if got := table.Rows[1]; !reflect.DeepEqual(got, []string{"1", "2", "3"}) {
		t.Errorf("long row = %v, want truncated to 3", got)
	}
}

func TestExtractBlankHeaderNames(t *testing.T) {
	data := []byte("id,,amount\n1,x,2\n")

	set, err := Extract(data, ',')
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	_, table := set.First()
	want := []string{"id", "Column_2", "amount"}
	if !reflect.DeepEqual(table.Columns, want) {
		t.Errorf("columns = %v, want %v", table.Columns, want)
	}
}

func TestExtractBOMStripped(t *testing.T) {
	data := []byte("\xef\xbb\xbfid,v\n1,x\n")

	set, err := Extract(data, ',')
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	_, table := set.First()
	if table.Columns[0] != "id" {
		t.Errorf("first column = %q, want %q (BOM not stripped)", table.Columns[0], "id")
	}
}

func TestExtractTabForced(t *testing.T) {
	data := []byte("a\tb\n1,5\t2\n")

	set, err := Extract(data, '\t')
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	_, table := set.First()
	if table.Cell(0, 0) != "1,5" {
		t.Errorf("cell(0,0) = %q, want %q", table.Cell(0, 0), "1,5")
	}
}

func TestExtractEmptyInput(t *testing.T) {
	for _, data := range [][]byte{nil, []byte(""), []byte("\n \n\t\n")} {
		_, err := Extract(data, ',')
		if err == nil {
			t.Fatalf("Extract(%q) should fail", data)
		}
		var extErr *model.ExtractionError
		if !errors.As(err, &extErr) {
			t.Errorf("error should be *model.ExtractionError, got %T", err)
		}
	}
}

func TestExtractInvalidForcedDelimiter(t *testing.T) {
	// Lazy quoting swallows every line-level quirk, so a rejected forced
	// delimiter is the only parse failure the reader can hit.
	_, err := Extract([]byte("a,b\n1,2\n"), '"')
	if err == nil {
		t.Fatal("Extract should fail with a quote as the delimiter")
	}
	var extErr *model.ExtractionError
	if !errors.As(err, &extErr) {
		t.Errorf("error should be *model.ExtractionError, got %T", err)
	}
}

func TestExtractMalformedLinesKept(t *testing.T) {
	// Stray and unterminated quotes do not reject the input.
	data := []byte("a,b\nx\"y,2\n\"open,3\n")

	set, err := Extract(data, ',')
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	_, table := set.First()
	if table.RowCount() == 0 {
		t.Error("malformed lines should still yield rows")
	}
}

func TestExtractQuotedFields(t *testing.T) {
	data := []byte("name,notes\nalice,\"likes a, b\"\n")

	set, err := Extract(data, ',')
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	_, table := set.First()
	if table.Cell(0, 1) != "likes a, b" {
		t.Errorf("quoted cell = %q, want %q", table.Cell(0, 1), "likes a, b")
	}
}
