package table

import (
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/tidwall/sjson"

	"sift"
	"sift/common"
	"sift/number"
	"sift/tx"
	"sift/utils"
)

// Table is one ingested CSV dataset: a catalog entry plus a row store
// holding each record as a JSON object keyed by column name.
type Table struct {
	db      *DB
	id      common.TableId
	name    string
	columns utils.JSONList
}

func (t *Table) Id() common.TableId {
	return t.id
}

func (t *Table) Name() string {
	return t.name
}

func (t *Table) Columns() []string {
	return t.columns
}

func (t *Table) rowStore() string {
	return fmt.Sprintf("rows_%s", t.id.String())
}

// CreateFromCSV ingests r into a fresh table. The first record names the
// columns; every field is stored as text, and kind resolution happens on
// read via the numeric parse path.
func CreateFromCSV(ctx context.Context, db *DB, wtx tx.WriteTx, name string, r io.Reader) (t *Table, err error) {
	id, err := common.NewTableId()
	if err != nil {
		return
	}
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		err = errors.Wrapf(err, "read csv header of %s", name)
		return
	}
	t = &Table{
		db:      db,
		id:      id,
		name:    name,
		columns: utils.JSONList(header),
	}

	createRowStore := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		row_id BLOB PRIMARY KEY,
		data JSONB NOT NULL
	)`, t.rowStore())
	if _, err = wtx.Exec(createRowStore); err != nil {
		return
	}

	insertCatalog := `
  INSERT INTO tables
  (table_id,table_name,columns)
  VALUES
  (?,?,?)`
	if _, err = wtx.Exec(insertCatalog, t.id, t.name, t.columns); err != nil {
		return
	}

	insertRow := fmt.Sprintf(`
  INSERT INTO %s
  (row_id, data)
  VALUES
  (?,?)`, t.rowStore())
	for {
		record, rerr := reader.Read()
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			err = errors.Wrapf(rerr, "read csv record of %s", name)
			return
		}
		doc := "{}"
		for i, col := range header {
			field := ""
			if i < len(record) {
				field = record[i]
			}
			doc, rerr = sjson.Set(doc, col, field)
			if rerr != nil {
				err = rerr
				return
			}
		}
		var rid common.RowId
		rid, err = common.NewRowId()
		if err != nil {
			return
		}
		if _, err = wtx.Exec(insertRow, rid, []byte(doc)); err != nil {
			return
		}
	}
	return
}

// OpenTable looks a table up by name in the catalog.
func OpenTable(ctx context.Context, db *DB, rtx tx.ReadTx, name string) (t *Table, err error) {
	t = &Table{db: db}
	query := `
	SELECT table_id,table_name,columns
	FROM tables
	WHERE table_name = ?`
	if err = rtx.QueryRow(query, name).Scan(&t.id, &t.name, &t.columns); err != nil {
		if err == sql.ErrNoRows {
			err = errors.Wrapf(common.ErrTableNotFound, "%s", name)
		}
		t = nil
		return
	}
	return
}

// Drop removes the row store and the catalog entry.
func (t *Table) Drop(ctx context.Context, wtx tx.WriteTx) (err error) {
	dropRowStore := fmt.Sprintf("DROP TABLE %s", t.rowStore())
	if _, err = wtx.Exec(dropRowStore); err != nil {
		return
	}
	deleteCatalog := `DELETE FROM tables WHERE table_id = ?`
	if _, err = wtx.Exec(deleteCatalog, t.id); err != nil {
		return
	}
	return
}

// Rows gives a restartable source over the table's rows. Every cursor runs
// its own read transaction and releases it when drained or on error; a
// cursor must be drained.
func (t *Table) Rows(ctx context.Context) sift.Source[Row] {
	return sift.SourceFunc(func() sift.Seq[Row] {
		cursor, _ := t.rowCursor(ctx, fmt.Sprintf("SELECT row_id, data FROM %s", t.rowStore()))
		return cursor
	})
}

// rowCursor opens a streaming cursor plus a release hook. The cursor
// releases itself when drained or on its own error; the hook lets a wrapper
// that stops early release it too. Calling the hook twice is harmless.
func (t *Table) rowCursor(ctx context.Context, stmt string) (sift.Seq[Row], func()) {
	var rtx tx.ReadTx
	var rows *sql.Rows
	done := false
	finish := func() {
		if done {
			return
		}
		done = true
		if rows != nil {
			rows.Close()
		}
		if rtx != nil {
			rtx.Commit()
		}
	}
	return func() (row Row, ok bool, err error) {
		if done {
			return
		}
		if rows == nil {
			rtx, err = t.db.ReadTx(ctx)
			if err != nil {
				done = true
				return
			}
			rows, err = rtx.Query(stmt)
			if err != nil {
				finish()
				return
			}
		}
		if !rows.Next() {
			err = rows.Err()
			finish()
			return
		}
		if err = rows.Scan(&row.Id, &row.Data); err != nil {
			finish()
			return
		}
		ok = true
		return
	}, finish
}

// Column gives a restartable source of one column's values, each cell
// parsed into the requested kind. A malformed cell surfaces through the
// cursor as an error, never as a zero, and releases the underlying row
// cursor's transaction before returning.
func (t *Table) Column(ctx context.Context, col string, k number.Kind) sift.Source[number.Value] {
	return sift.SourceFunc(func() sift.Seq[number.Value] {
		cursor, stop := t.rowCursor(ctx, fmt.Sprintf("SELECT row_id, data FROM %s", t.rowStore()))
		return func() (v number.Value, ok bool, err error) {
			row, ok, err := cursor()
			if err != nil || !ok {
				return
			}
			v, err = row.Number(col, k)
			if err != nil {
				ok = false
				stop()
				return
			}
			return
		}
	})
}
