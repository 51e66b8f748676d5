// Package ingest holds the per-category fact writers: it slices the wide
// bulletin sheets into per-purpose column blocks using the layout tables,
// builds shared-rate rows, and inserts fact rows keyed on
// (purpose, year, month) with insert-if-absent semantics.
package ingest

import (
	"context"
	"fmt"
	"log/slog"

	"nbsrates/internal/dataprocessing"
	"nbsrates/pkg/contracts/domain"
)

// Session is the transactional store handle ingestion writes through. One
// session spans one sheet; *sqlite.Session implements it.
type Session interface {
	InsertLocalRates(ctx context.Context, rates domain.LocalRates) (int64, error)
	InsertForeignRates(ctx context.Context, rates domain.ForeignRates) (int64, error)
	InsertEnterpriseRates(ctx context.Context, rates domain.EnterpriseRates) (int64, error)
	InsertStandardFact(ctx context.Context, category domain.Category, fact domain.StandardFact) (bool, error)
	InsertBySizeFact(ctx context.Context, fact domain.BySizeFact) (bool, error)
	InsertCurrencyFact(ctx context.Context, fact domain.CurrencyFact) (bool, error)
}

// Processor runs one category's ingestion over a loaded grid.
type Processor struct {
	logger *slog.Logger
}

// NewProcessor returns a processor logging through the given logger.
func NewProcessor(logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{logger: logger}
}

// ProcessFrame ingests one source sheet for one category. The data region
// is detected once for the whole sheet; every purpose block is then
// walked independently so each carries its own year state. Row-level data
// problems are logged and skipped; region detection failure and store
// errors abort the sheet.
func (p *Processor) ProcessFrame(ctx context.Context, session Session, category domain.Category, grid dataprocessing.Grid) error {
	layout, ok := sheetLayouts[category]
	if !ok {
		return fmt.Errorf("no sheet layout for category %q", category)
	}

	region, err := dataprocessing.DetectRegion(grid, layout.MonthCol)
	if err != nil {
		return fmt.Errorf("category %s: %w", category, err)
	}

	logger := p.logger.With(slog.String("category", string(category)))
	if width := grid.Width(); width < layout.MinWidth {
		logger.Warn("sheet narrower than layout expects",
			slog.Int("width", width),
			slog.Int("expected", layout.MinWidth))
	}
	logger.Info("data region detected",
		slog.Int("start_row", region.Start),
		slog.Int("end_row", region.End))

	counts := &sheetCounts{}
	for _, block := range layout.Standard {
		if err := p.processStandardBlock(ctx, session, category, grid, region, layout, block, counts); err != nil {
			return err
		}
	}
	for _, block := range layout.BySize {
		if err := p.processBySizeBlock(ctx, session, grid, region, layout, block, counts); err != nil {
			return err
		}
	}
	for _, block := range layout.Currency {
		if err := p.processCurrencyBlock(ctx, session, grid, region, layout, block, counts); err != nil {
			return err
		}
	}

	logger.Info("sheet processed",
		slog.Int("inserted", counts.inserted),
		slog.Int("skipped", counts.skipped),
		slog.Int("row_errors", counts.rowErrors))
	return nil
}

type sheetCounts struct {
	inserted  int
	skipped   int
	rowErrors int
}

func (c *sheetCounts) record(inserted bool) {
	if inserted {
		c.inserted++
	} else {
		c.skipped++
	}
}

func (p *Processor) processStandardBlock(ctx context.Context, session Session, category domain.Category, grid dataprocessing.Grid, region dataprocessing.Region, layout sheetLayout, block standardBlock, counts *sheetCounts) error {
	walker := dataprocessing.NewRowWalker(grid, region, layout.YearCol, layout.MonthCol)
	for {
		dated, ok, err := walker.Next()
		if !ok {
			return nil
		}
		if err != nil {
			p.logRowError(block.Purpose, err)
			counts.rowErrors++
			continue
		}

		fact := domain.StandardFact{
			Purpose: block.Purpose,
			Year:    dated.Year,
			Month:   dated.Month,
		}
		if block.Local != nil {
			id, err := session.InsertLocalRates(ctx, localRatesAt(grid, dated.Row, block.Start+block.Local.From))
			if err != nil {
				return err
			}
			fact.LocalRatesID = &id
		}
		if block.Foreign != nil {
			id, err := session.InsertForeignRates(ctx, foreignRatesAt(grid, dated.Row, block.Start+block.Foreign.From))
			if err != nil {
				return err
			}
			fact.ForeignRatesID = &id
		}
		if block.Total >= 0 {
			fact.Total = dataprocessing.CellFloat(grid.Cell(dated.Row, block.Start+block.Total))
		}

		inserted, err := session.InsertStandardFact(ctx, category, fact)
		if err != nil {
			return err
		}
		counts.record(inserted)
	}
}

func (p *Processor) processBySizeBlock(ctx context.Context, session Session, grid dataprocessing.Grid, region dataprocessing.Region, layout sheetLayout, block bySizeBlock, counts *sheetCounts) error {
	walker := dataprocessing.NewRowWalker(grid, region, layout.YearCol, layout.MonthCol)
	for {
		dated, ok, err := walker.Next()
		if !ok {
			return nil
		}
		if err != nil {
			p.logRowError(block.Purpose, err)
			counts.rowErrors++
			continue
		}

		fact := domain.BySizeFact{
			Purpose:      block.Purpose,
			Year:         dated.Year,
			Month:        dated.Month,
			LocalTotal:   dataprocessing.CellFloat(grid.Cell(dated.Row, block.LocalTotal)),
			ForeignTotal: dataprocessing.CellFloat(grid.Cell(dated.Row, block.ForeignTotal)),
		}
		if block.LocalRates != nil {
			id, err := session.InsertEnterpriseRates(ctx, enterpriseRatesAt(grid, dated.Row, block.LocalRates.From))
			if err != nil {
				return err
			}
			fact.LocalEnterpriseRatesID = &id
		}
		if block.ForeignRates != nil {
			id, err := session.InsertEnterpriseRates(ctx, enterpriseRatesAt(grid, dated.Row, block.ForeignRates.From))
			if err != nil {
				return err
			}
			fact.ForeignEnterpriseRatesID = &id
		}

		inserted, err := session.InsertBySizeFact(ctx, fact)
		if err != nil {
			return err
		}
		counts.record(inserted)
	}
}

func (p *Processor) processCurrencyBlock(ctx context.Context, session Session, grid dataprocessing.Grid, region dataprocessing.Region, layout sheetLayout, block currencyBlock, counts *sheetCounts) error {
	walker := dataprocessing.NewRowWalker(grid, region, layout.YearCol, layout.MonthCol)
	for {
		dated, ok, err := walker.Next()
		if !ok {
			return nil
		}
		if err != nil {
			p.logRowError(block.Purpose, err)
			counts.rowErrors++
			continue
		}

		fact := domain.CurrencyFact{
			Purpose:           block.Purpose,
			Year:              dated.Year,
			Month:             dated.Month,
			HouseholdTotal:    dataprocessing.CellFloat(grid.Cell(dated.Row, block.Start)),
			NonFinancialTotal: dataprocessing.CellFloat(grid.Cell(dated.Row, block.Start+1)),
			Total:             dataprocessing.CellFloat(grid.Cell(dated.Row, block.Start+2)),
		}

		inserted, err := session.InsertCurrencyFact(ctx, fact)
		if err != nil {
			return err
		}
		counts.record(inserted)
	}
}

func (p *Processor) logRowError(purpose domain.Purpose, err error) {
	p.logger.Warn("skipping row",
		slog.String("purpose", string(purpose)),
		slog.String("error", err.Error()))
}

func localRatesAt(grid dataprocessing.Grid, row, col int) domain.LocalRates {
	return domain.LocalRates{
		NonIndexed:    dataprocessing.CellFloat(grid.Cell(row, col)),
		ReferenceRate: dataprocessing.CellFloat(grid.Cell(row, col+1)),
		Belibor1M:     dataprocessing.CellFloat(grid.Cell(row, col+2)),
		Belibor3M:     dataprocessing.CellFloat(grid.Cell(row, col+3)),
		Belibor6M:     dataprocessing.CellFloat(grid.Cell(row, col+4)),
		OtherLocal:    dataprocessing.CellFloat(grid.Cell(row, col+5)),
		TotalLocal:    dataprocessing.CellFloat(grid.Cell(row, col+6)),
	}
}

func foreignRatesAt(grid dataprocessing.Grid, row, col int) domain.ForeignRates {
	return domain.ForeignRates{
		EUR:          dataprocessing.CellFloat(grid.Cell(row, col)),
		CHF:          dataprocessing.CellFloat(grid.Cell(row, col+1)),
		USD:          dataprocessing.CellFloat(grid.Cell(row, col+2)),
		OtherForeign: dataprocessing.CellFloat(grid.Cell(row, col+3)),
		TotalForeign: dataprocessing.CellFloat(grid.Cell(row, col+4)),
	}
}

func enterpriseRatesAt(grid dataprocessing.Grid, row, col int) domain.EnterpriseRates {
	return domain.EnterpriseRates{
		UpToOne:    dataprocessing.CellFloat(grid.Cell(row, col)),
		OneUpToTwo: dataprocessing.CellFloat(grid.Cell(row, col+1)),
		OverTwo:    dataprocessing.CellFloat(grid.Cell(row, col+2)),
	}
}
