// Package table is the tabular ingestion collaborator: CSV files loaded
// into a sqlite-backed row store, read back out as sift cursors feeding the
// aggregation engine.
package table

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"sift/tx"
)

type Config struct {
	JournalMode string
}

type DB struct {
	lock *sync.Mutex
	db   *sql.DB
}

// Open opens (creating if needed) the store at dbPath and prepares the
// table catalog. A nil config defaults to WAL journaling.
func Open(ctx context.Context, dbPath string, config *Config) (d *DB, err error) {
	journalMode := "WAL"
	if config != nil && config.JournalMode != "" {
		journalMode = config.JournalMode
	}
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return
	}
	if _, err = db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		return
	}
	if _, err = db.ExecContext(ctx, fmt.Sprintf("PRAGMA journal_mode=%s", journalMode)); err != nil {
		return
	}

	createCatalogStmt := `CREATE TABLE IF NOT EXISTS tables (
		table_id BLOB PRIMARY KEY,
		table_name TEXT NOT NULL UNIQUE,
		columns JSONB NOT NULL
	);`
	if _, err = db.ExecContext(ctx, createCatalogStmt); err != nil {
		return
	}

	d = &DB{
		lock: &sync.Mutex{},
		db:   db,
	}
	return
}

func (d *DB) ReadTx(ctx context.Context) (rtx tx.ReadTx, err error) {
	sqlTx, err := d.db.BeginTx(ctx, &sql.TxOptions{
		ReadOnly: true,
	})
	if err != nil {
		return
	}
	rtx = &readTx{
		ctx: ctx,
		tx:  sqlTx,
	}
	return
}

// WriteTx serializes writers: the store lock is held until the transaction
// commits or rolls back.
func (d *DB) WriteTx(ctx context.Context) (wtx tx.WriteTx, err error) {
	d.lock.Lock()
	sqlTx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		d.lock.Unlock()
		return
	}
	wtx = &writeTx{
		ctx:     ctx,
		tx:      sqlTx,
		release: d.lock.Unlock,
	}
	return
}

func (d *DB) Close(ctx context.Context) error {
	return d.db.Close()
}

// Stats reports the connection pool statistics of the underlying store.
func (d *DB) Stats() sql.DBStats {
	return d.db.Stats()
}

type readTx struct {
	ctx context.Context
	tx  *sql.Tx
}

type writeTx struct {
	ctx     context.Context
	tx      *sql.Tx
	done    sync.Once
	release func()
}

func (t *readTx) Query(stmt string, argList ...any) (*sql.Rows, error) {
	return t.tx.QueryContext(t.ctx, stmt, argList...)
}

func (t *readTx) QueryRow(stmt string, argList ...any) *sql.Row {
	return t.tx.QueryRowContext(t.ctx, stmt, argList...)
}

func (t *readTx) Commit() error {
	return t.tx.Commit()
}

func (t *writeTx) Query(stmt string, argList ...any) (*sql.Rows, error) {
	return t.tx.QueryContext(t.ctx, stmt, argList...)
}

func (t *writeTx) QueryRow(stmt string, argList ...any) *sql.Row {
	return t.tx.QueryRowContext(t.ctx, stmt, argList...)
}

func (t *writeTx) Commit() error {
	err := t.tx.Commit()
	t.done.Do(t.release)
	return err
}

func (t *writeTx) Exec(stmt string, argList ...any) (sql.Result, error) {
	return t.tx.ExecContext(t.ctx, stmt, argList...)
}

func (t *writeTx) Rollback() error {
	err := t.tx.Rollback()
	t.done.Do(t.release)
	return err
}
