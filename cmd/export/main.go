// Command export prints a flat reconstruction of one (category, purpose,
// year, fiscal range) selection as CSV, or lists the years a category
// covers.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"nbsrates/internal/exporter"
	"nbsrates/internal/store/sqlite"
	"nbsrates/pkg/contracts"
	"nbsrates/pkg/contracts/domain"
)

func main() {
	dbPath := flag.String("db", "data/nbsrates.db", "path to the SQLite database")
	categoryArg := flag.String("category", "", "category, e.g. household_loans")
	purposeArg := flag.String("purpose", "", "purpose tag, e.g. HOUSING")
	year := flag.Int("year", 0, "year to select")
	rangeArg := flag.String("range", "YEAR", "fiscal range: Q1, Q2, Q3, Q4 or YEAR")
	outPath := flag.String("out", "", "write CSV to this file instead of stdout (adds a UTF-8 BOM)")
	listYears := flag.Bool("years", false, "list the years present for the category and exit")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(contracts.VersionString())
		return
	}

	if err := run(*dbPath, *categoryArg, *purposeArg, *year, *rangeArg, *outPath, *listYears); err != nil {
		fmt.Fprintln(os.Stderr, "export:", err)
		os.Exit(1)
	}
}

func run(dbPath, categoryArg, purposeArg string, year int, rangeArg, outPath string, listYears bool) error {
	category, err := domain.ParseCategory(categoryArg)
	if err != nil {
		return err
	}

	store, err := sqlite.New(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()

	if listYears {
		years, err := store.GetYears(ctx, category)
		if err != nil {
			return err
		}
		for _, y := range years {
			fmt.Println(y)
		}
		return nil
	}

	purpose := domain.Purpose(purposeArg)
	if !domain.ValidPurpose(category, purpose) {
		return fmt.Errorf("purpose %q is not valid for %s", purposeArg, category)
	}
	fiscal, err := domain.ParseFiscalRange(rangeArg)
	if err != nil {
		return err
	}

	table, err := store.GetData(ctx, category, purpose, year, fiscal.Months())
	if err != nil {
		return err
	}

	if outPath != "" {
		return exporter.CSVWriter{BOMPrefix: true}.WriteFile(outPath, table)
	}
	return exporter.CSVWriter{}.Write(os.Stdout, table)
}
