// Package main provides the CLI entry point for ler-excel.
package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alentr/ler-excel/pkg/tabular"
	"github.com/alentr/ler-excel/pkg/tabular/cellval"
	"github.com/alentr/ler-excel/pkg/tabular/models"
)

var (
	outputPath string
	pretty     bool
	sheetIndex int
	headerRows int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ler-excel",
		Short: "Read tabular data from spreadsheet files",
		Long: `ler-excel reads spreadsheet files (.xlsx and legacy .xls), skips header
and blank rows, and prints the data rows as JSON.`,
	}

	readCmd := &cobra.Command{
		Use:   "read [input file]",
		Short: "Print a sheet's data rows as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runRead,
	}
	readCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	readCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	readCmd.Flags().IntVar(&sheetIndex, "sheet", 0, "Sheet to read (zero-based)")
	readCmd.Flags().IntVar(&headerRows, "header-rows", 1, "Header rows to skip before data")

	sheetsCmd := &cobra.Command{
		Use:   "sheets [input file]",
		Short: "List the workbook's sheets",
		Args:  cobra.ExactArgs(1),
		RunE:  runSheets,
	}

	rootCmd.AddCommand(readCmd)
	rootCmd.AddCommand(sheetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// rowJSON is one data row keyed by 1-based column index.
type rowJSON struct {
	R int            `json:"r"`
	C map[string]any `json:"c"`
}

func runRead(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}
	if headerRows < 0 {
		return fmt.Errorf("invalid header-rows: %d", headerRows)
	}

	opts := tabular.Options{
		HeaderRows: &headerRows,
		SheetIndex: sheetIndex,
	}
	rows, err := tabular.ReadAll(inputPath, tabular.RowMapperFunc[rowJSON](mapRowJSON), opts)
	if err != nil {
		return fmt.Errorf("read failed: %w", err)
	}

	var jsonData []byte
	if pretty {
		jsonData, err = json.MarshalIndent(rows, "", "  ")
	} else {
		jsonData, err = json.Marshal(rows)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Println(string(jsonData))
	return nil
}

func mapRowJSON(row models.Row) (rowJSON, bool) {
	out := rowJSON{R: row.Index + 1, C: make(map[string]any)}
	for col := range row.Cells {
		c := row.Cell(col)
		if c == nil || c.Kind == models.KindBlank {
			continue
		}
		out.C[strconv.Itoa(col+1)] = cellAny(c)
	}
	return out, true
}

// cellAny renders a cell as its natural JSON value: integral numbers as
// integers, dates as ISO text, formulas as their cached result.
func cellAny(c *models.Cell) any {
	switch c.Kind {
	case models.KindNumeric:
		if c.DateFormatted {
			s, _ := cellval.AsString(c)
			return s
		}
		return numberAny(c.Number)
	case models.KindBool:
		return c.Bool
	case models.KindFormula:
		if c.Formula.IsText {
			return c.Formula.Text
		}
		return numberAny(c.Formula.Number)
	default:
		s, _ := cellval.AsString(c)
		return s
	}
}

func numberAny(v float64) any {
	// The magnitude guard keeps the int64 conversion exact.
	if v == math.Floor(v) && math.Abs(v) < 1e15 {
		return int64(v)
	}
	return v
}

func runSheets(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	names, err := tabular.SheetNames(inputPath)
	if err != nil {
		return fmt.Errorf("listing sheets failed: %w", err)
	}

	fmt.Printf("%d sheet(s)\n", len(names))
	for i, name := range names {
		fmt.Printf("%d: %s\n", i, name)
	}
	return nil
}
