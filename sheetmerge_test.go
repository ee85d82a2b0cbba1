package sheetmerge

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/tsawler/sheetmerge/format"
	"github.com/tsawler/sheetmerge/merge"
	"github.com/tsawler/sheetmerge/model"
)

func TestExtractFromBytesCSV(t *testing.T) {
	set, err := FromBytes([]byte("id,name\n1,alice\n2,bob\n")).Extract()
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}

	name, tab := set.First()
	if name != "Sheet1" {
		t.Errorf("expected sheet Sheet1, got %q", name)
	}
	if !reflect.DeepEqual(tab.Columns, []string{"id", "name"}) {
		t.Errorf("unexpected columns %v", tab.Columns)
	}
	if tab.RowCount() != 2 {
		t.Errorf("expected 2 rows, got %d", tab.RowCount())
	}
}

func TestExtractFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "orders.csv")
	if err := os.WriteFile(path, []byte("sku,qty\na,1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	set, err := Open(path).Extract()
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if _, tab := set.First(); tab.RowCount() != 1 {
		t.Errorf("expected 1 row, got %d", tab.RowCount())
	}
}

func TestExtractMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "absent.csv")).Extract()
	var eerr *model.EnvironmentError
	if !errors.As(err, &eerr) {
		t.Fatalf("expected EnvironmentError for missing file, got %v", err)
	}
}

func TestDeclaredFormatWinsOverExtension(t *testing.T) {
	// JSON content behind a .csv name: the declared format must win.
	set, err := FromBytes([]byte(`[{"id": 1}]`)).
		Filename("data.csv").
		Format(format.JSON).
		Extract()
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	_, tab := set.First()
	if !reflect.DeepEqual(tab.Columns, []string{"id"}) {
		t.Errorf("expected JSON normalization, got columns %v", tab.Columns)
	}
}

func TestContentSniffWithoutFilename(t *testing.T) {
	set, err := FromBytes([]byte(`[{"a": "x", "b": "y"}]`)).Extract()
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	_, tab := set.First()
	if !reflect.DeepEqual(tab.Columns, []string{"a", "b"}) {
		t.Errorf("unexpected columns %v", tab.Columns)
	}
}

func TestForcedDelimiter(t *testing.T) {
	// Semicolon data with commas in quoted fields would sniff fine, but a
	// forced delimiter must bypass the sniffer entirely.
	set, err := FromBytes([]byte("a;b\n1;2\n")).
		Format(format.CSV).
		Delimiter(';').
		Extract()
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	_, tab := set.First()
	if !reflect.DeepEqual(tab.Columns, []string{"a", "b"}) {
		t.Errorf("unexpected columns %v", tab.Columns)
	}
}

func TestExtractUnknownFormat(t *testing.T) {
	_, err := FromBytes([]byte{}).Extract()
	var xerr *model.ExtractionError
	if !errors.As(err, &xerr) {
		t.Fatalf("expected ExtractionError for undetectable input, got %v", err)
	}
}

func TestChainingDoesNotMutate(t *testing.T) {
	base := FromBytes([]byte("a\tb\n1\t2\n"))
	tsv := base.Format(format.TSV)
	if base.format != format.Unknown {
		t.Error("chain method mutated the original extractor")
	}

	set, err := tsv.Extract()
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if _, tab := set.First(); tab.ColCount() != 2 {
		t.Errorf("expected 2 columns, got %d", tab.ColCount())
	}
}

func TestRootMergeWrapper(t *testing.T) {
	a := Must(FromBytes([]byte("id,v\n1,x\n2,y\n")).Extract())
	b := Must(FromBytes([]byte("id,w\n1,p\n3,q\n")).Extract())

	res, err := Merge(a, b, merge.Join, merge.Params{
		SheetA:     "Sheet1",
		SheetB:     "Sheet1",
		JoinColumn: "id",
		Kind:       merge.Outer,
	})
	if err != nil {
		t.Fatalf("merge failed: %v", err)
	}
	if res.RowCount != 3 {
		t.Errorf("expected 3 rows from outer join, got %d", res.RowCount)
	}
}
