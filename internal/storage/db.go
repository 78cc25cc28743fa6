package storage

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"gearflip/internal"
)

type DB struct {
	conn *sql.DB
}

func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := conn.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = conn.Close()
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.init(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return db, nil
}

func (d *DB) Close() error {
	return d.conn.Close()
}

func (d *DB) init() error {
	schema := `
CREATE TABLE IF NOT EXISTS listings (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  side TEXT NOT NULL,
  title TEXT NOT NULL,
  brand TEXT,
  price REAL NOT NULL DEFAULT 0,
  originalPrice REAL NOT NULL DEFAULT 0,
  priceDrop REAL NOT NULL DEFAULT 0,
  condition TEXT,
  location TEXT,
  slug TEXT,
  url TEXT,
  store TEXT,
  shippingPrice REAL NOT NULL DEFAULT 0,
  shippingAvailable INTEGER NOT NULL DEFAULT 0,
  localPickupAvailable INTEGER NOT NULL DEFAULT 0,
  lastSeenAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_listings_side ON listings(side);
CREATE INDEX IF NOT EXISTS idx_listings_brand ON listings(brand);

CREATE TABLE IF NOT EXISTS report_entries (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  traceId TEXT NOT NULL,
  position INTEGER NOT NULL,
  usedTitle TEXT NOT NULL,
  usedPrice REAL NOT NULL,
  usedShipping REAL NOT NULL,
  usedTotalPrice REAL NOT NULL,
  usedCondition TEXT,
  usedStore TEXT,
  usedUrl TEXT,
  newTitle TEXT NOT NULL,
  newPrice REAL NOT NULL,
  newStore TEXT,
  newUrl TEXT,
  priceDifference REAL NOT NULL,
  matchScore REAL NOT NULL,
  createdAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_report_entries_trace ON report_entries(traceId);

CREATE TABLE IF NOT EXISTS runs (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  traceId TEXT NOT NULL,
  timingsJson TEXT NOT NULL,
  countsJson TEXT NOT NULL,
  createdAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS metadata (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updatedAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

	_, err := d.conn.Exec(schema)
	return err
}

// ReplaceListings swaps the stored snapshot for one side with a fresh parse.
func (d *DB) ReplaceListings(side internal.ListingSide, listings []internal.ListingRecord) error {
	tx, err := d.conn.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM listings WHERE side = ?`, string(side)); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
INSERT INTO listings (
  side, title, brand, price, originalPrice, priceDrop,
  condition, location, slug, url, store,
  shippingPrice, shippingAvailable, localPickupAvailable, lastSeenAt
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, l := range listings {
		if _, err := stmt.Exec(
			string(side), l.Title, l.Brand, l.Price, l.OriginalPrice, l.PriceDrop,
			l.Condition, l.Location, l.Slug, l.URL, l.Store,
			l.ShippingPrice, boolToInt(l.ShippingAvailable), boolToInt(l.LocalPickupAvailable),
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (d *DB) ListListings(side internal.ListingSide) ([]internal.ListingRecord, error) {
	rows, err := d.conn.Query(`
SELECT title, brand, price, originalPrice, priceDrop,
       condition, location, slug, url, store,
       shippingPrice, shippingAvailable, localPickupAvailable
FROM listings WHERE side = ? ORDER BY id`, string(side))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []internal.ListingRecord
	for rows.Next() {
		var l internal.ListingRecord
		var shippingAvailable, localPickup int
		if err := rows.Scan(
			&l.Title, &l.Brand, &l.Price, &l.OriginalPrice, &l.PriceDrop,
			&l.Condition, &l.Location, &l.Slug, &l.URL, &l.Store,
			&l.ShippingPrice, &shippingAvailable, &localPickup,
		); err != nil {
			return nil, err
		}
		l.ShippingAvailable = shippingAvailable != 0
		l.LocalPickupAvailable = localPickup != 0
		out = append(out, l)
	}
	return out, rows.Err()
}

// SaveReportEntries persists one report pass under a trace id, ranked in
// output order.
func (d *DB) SaveReportEntries(traceID string, entries []internal.ArbitrageEntry) error {
	tx, err := d.conn.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`
INSERT INTO report_entries (
  traceId, position, usedTitle, usedPrice, usedShipping, usedTotalPrice,
  usedCondition, usedStore, usedUrl,
  newTitle, newPrice, newStore, newUrl,
  priceDifference, matchScore
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, e := range entries {
		if _, err := stmt.Exec(
			traceID, i+1, e.Used.Title, e.Used.Price, e.UsedShipping, e.UsedTotalPrice,
			e.Used.Condition, e.Used.Store, e.UsedURL,
			e.New.Title, e.New.Price, e.New.Store, e.New.URL,
			e.PriceDifference, e.MatchScore,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (d *DB) InsertRun(traceID string, timings map[string]float64, counts map[string]int) error {
	timingsJSON, _ := json.Marshal(timings)
	countsJSON, _ := json.Marshal(counts)
	_, err := d.conn.Exec(
		`INSERT INTO runs (traceId, timingsJson, countsJson) VALUES (?, ?, ?)`,
		traceID, string(timingsJSON), string(countsJSON),
	)
	return err
}

func (d *DB) SetMetadata(key, value string) error {
	_, err := d.conn.Exec(`
INSERT INTO metadata (key, value, updatedAt) VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value=excluded.value, updatedAt=CURRENT_TIMESTAMP`,
		key, value)
	return err
}

func (d *DB) GetMetadata(key string) (*string, error) {
	row := d.conn.QueryRow(`SELECT value FROM metadata WHERE key = ?`, key)
	var value string
	if err := row.Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &value, nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
