package structmap

import (
	"testing"
	"time"

	"github.com/alentr/ler-excel/pkg/tabular/models"
)

type record struct {
	Name   string    `col:"0" validate:"required"`
	Age    *int      `col:"1"`
	Score  float64   `col:"2"`
	Active bool      `col:"3"`
	Since  time.Time `col:"4"`
}

func TestNewRejectsBadTypes(t *testing.T) {
	if _, err := New[int](); err == nil {
		t.Error("New[int] succeeded, expected an error for non-struct type")
	}

	type badTag struct {
		Name string `col:"first"`
	}
	if _, err := New[badTag](); err == nil {
		t.Error("New[badTag] succeeded, expected an error for non-integer tag")
	}

	type badField struct {
		Names []string `col:"0"`
	}
	if _, err := New[badField](); err == nil {
		t.Error("New[badField] succeeded, expected an error for unsupported field type")
	}

	type noTags struct {
		Name string
	}
	if _, err := New[noTags](); err == nil {
		t.Error("New[noTags] succeeded, expected an error for no col tags")
	}
}

func TestMapRow(t *testing.T) {
	m, err := New[record]()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	since := time.Date(2022, 1, 10, 0, 0, 0, 0, time.UTC)
	row := models.Row{Cells: []*models.Cell{
		models.TextCell("Ana"),
		models.NumberCell(30),
		models.TextCell("9.5"),
		models.TextCell("sim"),
		models.DateCell(44571, since),
	}}

	got, ok := m.MapRow(row)
	if !ok {
		t.Fatal("MapRow returned false, expected a value")
	}
	if got.Name != "Ana" {
		t.Errorf("Name = %q, expected \"Ana\"", got.Name)
	}
	if got.Age == nil || *got.Age != 30 {
		t.Errorf("Age = %v, expected 30", got.Age)
	}
	if got.Score != 9.5 {
		t.Errorf("Score = %v, expected 9.5", got.Score)
	}
	if !got.Active {
		t.Error("Active = false, expected true for \"sim\"")
	}
	if !got.Since.Equal(since) {
		t.Errorf("Since = %v, expected %v", got.Since, since)
	}
}

func TestMapRowAbsentCells(t *testing.T) {
	m, err := New[record]()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	row := models.Row{Cells: []*models.Cell{
		models.TextCell("Bo"),
		models.TextCell("twenty-five"),
	}}

	got, ok := m.MapRow(row)
	if !ok {
		t.Fatal("MapRow returned false, expected a value")
	}
	if got.Age != nil {
		t.Errorf("Age = %v, expected nil for unparseable text", *got.Age)
	}
	if got.Score != 0 || got.Active || !got.Since.IsZero() {
		t.Errorf("Absent fields not zero: %+v", got)
	}
}

func TestMapRowValidation(t *testing.T) {
	m, err := New[record](WithValidation())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if _, ok := m.MapRow(models.Row{Cells: []*models.Cell{models.BlankCell(), models.NumberCell(1)}}); ok {
		t.Error("MapRow accepted a row with a blank required name, expected skip")
	}
	if got, ok := m.MapRow(models.Row{Cells: []*models.Cell{models.TextCell("Ana")}}); !ok || got.Name != "Ana" {
		t.Errorf("MapRow = (%+v, %v), expected valid row to pass", got, ok)
	}
}
