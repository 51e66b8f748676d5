package sqlite

// migrations is the single, versioned schema history. Version n is the
// statement at index n-1; New() applies everything past the recorded
// version inside one transaction.
var migrations = []string{
	// v1: shared rate tables + fact tables
	`
	CREATE TABLE local_interest_rates (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		non_indexed REAL,
		reference_rate REAL,
		belibor_1m REAL,
		belibor_3m REAL,
		belibor_6m REAL,
		other_local REAL,
		total_local REAL
	);

	CREATE TABLE foreign_interest_rates (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		eur REAL,
		chf REAL,
		usd REAL,
		other_foreign REAL,
		total_foreign REAL
	);

	CREATE TABLE enterprise_interest_rates (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		up_to_one REAL,
		one_up_to_two REAL,
		over_two REAL
	);

	CREATE TABLE household_loans (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		purpose TEXT NOT NULL,
		year INTEGER NOT NULL,
		month INTEGER NOT NULL,
		local_rates_id INTEGER REFERENCES local_interest_rates(id),
		foreign_rates_id INTEGER REFERENCES foreign_interest_rates(id),
		total REAL,
		UNIQUE(purpose, year, month)
	);

	CREATE TABLE household_term_deposits (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		purpose TEXT NOT NULL,
		year INTEGER NOT NULL,
		month INTEGER NOT NULL,
		local_rates_id INTEGER REFERENCES local_interest_rates(id),
		foreign_rates_id INTEGER REFERENCES foreign_interest_rates(id),
		total REAL,
		UNIQUE(purpose, year, month)
	);

	CREATE TABLE non_financial_loans (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		purpose TEXT NOT NULL,
		year INTEGER NOT NULL,
		month INTEGER NOT NULL,
		local_rates_id INTEGER REFERENCES local_interest_rates(id),
		foreign_rates_id INTEGER REFERENCES foreign_interest_rates(id),
		total REAL,
		UNIQUE(purpose, year, month)
	);

	CREATE TABLE non_financial_term_deposits (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		purpose TEXT NOT NULL,
		year INTEGER NOT NULL,
		month INTEGER NOT NULL,
		local_rates_id INTEGER REFERENCES local_interest_rates(id),
		foreign_rates_id INTEGER REFERENCES foreign_interest_rates(id),
		total REAL,
		UNIQUE(purpose, year, month)
	);

	CREATE TABLE non_financial_term_deposits_by_size (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		purpose TEXT NOT NULL,
		year INTEGER NOT NULL,
		month INTEGER NOT NULL,
		local_enterprise_rates_id INTEGER REFERENCES enterprise_interest_rates(id),
		foreign_enterprise_rates_id INTEGER REFERENCES enterprise_interest_rates(id),
		local_total REAL,
		foreign_total REAL,
		UNIQUE(purpose, year, month)
	);

	CREATE TABLE total_loans_by_currency (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		purpose TEXT NOT NULL,
		year INTEGER NOT NULL,
		month INTEGER NOT NULL,
		household_total REAL,
		non_financial_total REAL,
		total REAL,
		UNIQUE(purpose, year, month)
	);
	`,

	// v2: year lookups back the query layer's year dropdowns
	`
	CREATE INDEX idx_household_loans_year ON household_loans(year);
	CREATE INDEX idx_household_term_deposits_year ON household_term_deposits(year);
	CREATE INDEX idx_non_financial_loans_year ON non_financial_loans(year);
	CREATE INDEX idx_non_financial_term_deposits_year ON non_financial_term_deposits(year);
	CREATE INDEX idx_non_financial_term_deposits_by_size_year ON non_financial_term_deposits_by_size(year);
	CREATE INDEX idx_total_loans_by_currency_year ON total_loans_by_currency(year);
	`,
}
