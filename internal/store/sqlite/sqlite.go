// Package sqlite is the relational store behind ingestion and the query
// layer. It owns the normalized schema (shared rate tables referenced by
// per-category fact tables), applies versioned migrations on open, and
// gives ingestion a transactional Session whose fact inserts are
// insert-if-absent on (purpose, year, month).
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"nbsrates/pkg/contracts/domain"
)

// Store wraps the SQLite database. Use ":memory:" as the path for tests.
type Store struct {
	db *sql.DB
}

// New opens (creating if needed) the database and brings the schema up to
// date.
func New(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite: path is required")
	}

	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	if _, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER PRIMARY KEY,
		applied_at TEXT NOT NULL DEFAULT (datetime('now'))
	)`); err != nil {
		return err
	}

	var current sql.NullInt64
	if err := s.db.QueryRow(`SELECT MAX(version) FROM schema_version`).Scan(&current); err != nil {
		return err
	}

	for version := int(current.Int64) + 1; version <= len(migrations); version++ {
		tx, err := s.db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(migrations[version-1]); err != nil {
			tx.Rollback()
			return fmt.Errorf("apply schema version %d: %w", version, err)
		}
		if _, err := tx.Exec(`INSERT INTO schema_version (version) VALUES (?)`, version); err != nil {
			tx.Rollback()
			return err
		}
		if err := tx.Commit(); err != nil {
			return err
		}
	}
	return nil
}

// Session is one ingestion transaction. All records created while
// processing one sheet live and die with it.
type Session struct {
	tx *sql.Tx
}

// Begin starts an ingestion transaction.
func (s *Store) Begin(ctx context.Context) (*Session, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return &Session{tx: tx}, nil
}

// Commit commits the session's transaction.
func (s *Session) Commit() error {
	return s.tx.Commit()
}

// Rollback aborts the session. Safe to defer after Commit.
func (s *Session) Rollback() error {
	return s.tx.Rollback()
}

// WithSession runs fn inside one transaction, committing when it returns
// nil and rolling back otherwise.
func (s *Store) WithSession(ctx context.Context, fn func(*Session) error) error {
	session, err := s.Begin(ctx)
	if err != nil {
		return err
	}
	defer session.Rollback()

	if err := fn(session); err != nil {
		return err
	}
	return session.Commit()
}

// InsertLocalRates appends a dinar-rate row and returns its id. Inserts
// never deduplicate: identical rate values in different periods are
// distinct rows.
func (s *Session) InsertLocalRates(ctx context.Context, rates domain.LocalRates) (int64, error) {
	result, err := s.tx.ExecContext(ctx, `
		INSERT INTO local_interest_rates
			(non_indexed, reference_rate, belibor_1m, belibor_3m, belibor_6m, other_local, total_local)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rates.NonIndexed, rates.ReferenceRate, rates.Belibor1M,
		rates.Belibor3M, rates.Belibor6M, rates.OtherLocal, rates.TotalLocal,
	)
	if err != nil {
		return 0, fmt.Errorf("insert local rates: %w", err)
	}
	return result.LastInsertId()
}

// InsertForeignRates appends a foreign-currency-rate row and returns its id.
func (s *Session) InsertForeignRates(ctx context.Context, rates domain.ForeignRates) (int64, error) {
	result, err := s.tx.ExecContext(ctx, `
		INSERT INTO foreign_interest_rates
			(eur, chf, usd, other_foreign, total_foreign)
		VALUES (?, ?, ?, ?, ?)`,
		rates.EUR, rates.CHF, rates.USD, rates.OtherForeign, rates.TotalForeign,
	)
	if err != nil {
		return 0, fmt.Errorf("insert foreign rates: %w", err)
	}
	return result.LastInsertId()
}

// InsertEnterpriseRates appends a maturity-breakdown row and returns its id.
func (s *Session) InsertEnterpriseRates(ctx context.Context, rates domain.EnterpriseRates) (int64, error) {
	result, err := s.tx.ExecContext(ctx, `
		INSERT INTO enterprise_interest_rates
			(up_to_one, one_up_to_two, over_two)
		VALUES (?, ?, ?)`,
		rates.UpToOne, rates.OneUpToTwo, rates.OverTwo,
	)
	if err != nil {
		return 0, fmt.Errorf("insert enterprise rates: %w", err)
	}
	return result.LastInsertId()
}

// InsertStandardFact inserts a 13-column-category fact row. A row already
// present under the same (purpose, year, month) is left untouched and the
// insert reports false; re-running a sheet is a no-op on fact tables.
func (s *Session) InsertStandardFact(ctx context.Context, category domain.Category, fact domain.StandardFact) (bool, error) {
	spec, ok := categorySpecs[category]
	if !ok || len(spec.joins) != 2 {
		return false, fmt.Errorf("category %q does not take standard fact rows", category)
	}
	result, err := s.tx.ExecContext(ctx, fmt.Sprintf(`
		INSERT INTO %s (purpose, year, month, local_rates_id, foreign_rates_id, total)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(purpose, year, month) DO NOTHING`, spec.table),
		fact.Purpose, fact.Year, fact.Month,
		fact.LocalRatesID, fact.ForeignRatesID, fact.Total,
	)
	if err != nil {
		return false, fmt.Errorf("insert %s fact: %w", spec.table, err)
	}
	return insertedOne(result)
}

// InsertBySizeFact inserts an enterprise-size fact row, insert-if-absent.
func (s *Session) InsertBySizeFact(ctx context.Context, fact domain.BySizeFact) (bool, error) {
	result, err := s.tx.ExecContext(ctx, `
		INSERT INTO non_financial_term_deposits_by_size
			(purpose, year, month, local_enterprise_rates_id, foreign_enterprise_rates_id, local_total, foreign_total)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(purpose, year, month) DO NOTHING`,
		fact.Purpose, fact.Year, fact.Month,
		fact.LocalEnterpriseRatesID, fact.ForeignEnterpriseRatesID,
		fact.LocalTotal, fact.ForeignTotal,
	)
	if err != nil {
		return false, fmt.Errorf("insert by-size fact: %w", err)
	}
	return insertedOne(result)
}

// InsertCurrencyFact inserts a per-currency totals fact row,
// insert-if-absent.
func (s *Session) InsertCurrencyFact(ctx context.Context, fact domain.CurrencyFact) (bool, error) {
	result, err := s.tx.ExecContext(ctx, `
		INSERT INTO total_loans_by_currency
			(purpose, year, month, household_total, non_financial_total, total)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(purpose, year, month) DO NOTHING`,
		fact.Purpose, fact.Year, fact.Month,
		fact.HouseholdTotal, fact.NonFinancialTotal, fact.Total,
	)
	if err != nil {
		return false, fmt.Errorf("insert currency fact: %w", err)
	}
	return insertedOne(result)
}

func insertedOne(result sql.Result) (bool, error) {
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}
