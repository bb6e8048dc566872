package main

import (
	"math"
	"testing"

	"github.com/alentr/ler-excel/pkg/tabular/models"
)

func TestNumberAny(t *testing.T) {
	if v, ok := numberAny(30).(int64); !ok || v != 30 {
		t.Errorf("numberAny(30) = %v, expected int64 30", numberAny(30))
	}
	if v, ok := numberAny(-7).(int64); !ok || v != -7 {
		t.Errorf("numberAny(-7) = %v, expected int64 -7", numberAny(-7))
	}
	if v, ok := numberAny(2.5).(float64); !ok || v != 2.5 {
		t.Errorf("numberAny(2.5) = %v, expected float64 2.5", numberAny(2.5))
	}
	// Integral values past float64's exact-integer range stay floats.
	if v, ok := numberAny(1e18).(float64); !ok || v != 1e18 {
		t.Errorf("numberAny(1e18) = %v, expected float64 1e18", numberAny(1e18))
	}
	if v, ok := numberAny(-1e18).(float64); !ok || v != -1e18 {
		t.Errorf("numberAny(-1e18) = %v, expected float64 -1e18", numberAny(-1e18))
	}
	if v, ok := numberAny(math.Inf(1)).(float64); !ok || !math.IsInf(v, 1) {
		t.Errorf("numberAny(+Inf) = %v, expected float64 +Inf", numberAny(math.Inf(1)))
	}
}

func TestMapRowJSON(t *testing.T) {
	row := models.Row{
		Index: 4,
		Cells: []*models.Cell{
			models.TextCell("Ana"),
			models.NumberCell(30),
			nil,
			models.BoolCell(true),
		},
	}

	out, keep := mapRowJSON(row)
	if !keep {
		t.Fatal("mapRowJSON dropped the row")
	}
	if out.R != 5 {
		t.Errorf("R = %d, expected 5", out.R)
	}
	if len(out.C) != 3 {
		t.Fatalf("C = %v, expected 3 entries", out.C)
	}
	if v, ok := out.C["1"].(string); !ok || v != "Ana" {
		t.Errorf("C[1] = %v, expected \"Ana\"", out.C["1"])
	}
	if v, ok := out.C["2"].(int64); !ok || v != 30 {
		t.Errorf("C[2] = %v, expected int64 30", out.C["2"])
	}
	if v, ok := out.C["4"].(bool); !ok || !v {
		t.Errorf("C[4] = %v, expected true", out.C["4"])
	}
}
