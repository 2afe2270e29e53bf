// Package main provides the CLI entry point for sheetrecon.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"github.com/nh-ronald-wang/sheetrecon/pkg/sheetrecon"
	"github.com/nh-ronald-wang/sheetrecon/pkg/sheetrecon/models"
	"github.com/nh-ronald-wang/sheetrecon/pkg/sheetrecon/parser"
)

var (
	rangeAddr         string
	keepUndefinedRows bool
	header            bool
	outputPath        string
	pretty            bool
)

// result is the JSON document the CLI emits.
type result struct {
	Range string             `json:"range"`
	Names []string           `json:"names,omitempty"`
	Rows  []models.OutputRow `json:"rows"`
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "sheetrecon [input.xlsx]",
		Short: "Reconcile sparse spreadsheet rows into dense records",
		Long: `sheetrecon reads one sheet region of an Excel file and emits a dense,
position-aligned sequence of records as JSON, either compacting away
undefined rows or materializing them as all-null records.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&rangeAddr, "range", "r", "", "Address range, e.g. 'Sheet1'!A1:C10 (default: first sheet's used range)")
	rootCmd.Flags().BoolVar(&keepUndefinedRows, "keep-undefined-rows", false, "Materialize undefined/blank rows as all-null records")
	rootCmd.Flags().BoolVar(&header, "header", false, "Treat the first in-range row as column names")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	f, err := excelize.OpenFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	addr := rangeAddr
	if addr == "" {
		addr, err = defaultAddress(f)
		if err != nil {
			return err
		}
	}

	opts := sheetrecon.Options{
		KeepUndefinedRows: sheetrecon.Bool(keepUndefinedRows),
		Header:            sheetrecon.Bool(header),
	}

	rows, err := sheetrecon.Read(f, addr, opts)
	if err != nil {
		return err
	}

	res := result{Range: addr}
	if header {
		if res.Names, err = rows.Names(); err != nil {
			return err
		}
	}
	if res.Rows, err = rows.Collect(); err != nil {
		return err
	}
	if res.Rows == nil {
		res.Rows = []models.OutputRow{}
	}

	var jsonData []byte
	if pretty {
		jsonData, err = json.MarshalIndent(res, "", "  ")
	} else {
		jsonData, err = json.Marshal(res)
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

// defaultAddress scopes the read to the first sheet's used range when the
// caller gives no --range.
func defaultAddress(f *excelize.File) (string, error) {
	sheet := f.GetSheetName(0)
	if sheet == "" {
		return "", fmt.Errorf("workbook has no sheets")
	}
	rng, ok, err := parser.DetectUsedRange(f, sheet)
	if err != nil {
		return "", fmt.Errorf("failed to detect used range: %w", err)
	}
	if !ok {
		// Empty sheet: anchor at A1 and let the read produce no rows.
		return fmt.Sprintf("'%s'!A1", sheet), nil
	}
	return rng.String(), nil
}
