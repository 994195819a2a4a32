package common

import (
	"database/sql/driver"

	"github.com/rs/xid"
)

type TableId xid.ID

type RowId xid.ID

// Scan implements sql.Scanner.
func (id *TableId) Scan(value interface{}) error {
	return (*xid.ID)(id).Scan(value)
}

// Value implements driver.Valuer.
func (id TableId) Value() (driver.Value, error) {
	return xid.ID(id).Value()
}

func (id TableId) String() string {
	guid := xid.ID(id)
	return guid.String()
}

func NewTableId() (TableId, error) {
	guid := xid.New()
	return TableId(guid), nil
}

// Scan implements sql.Scanner.
func (id *RowId) Scan(value interface{}) error {
	return (*xid.ID)(id).Scan(value)
}

// Value implements driver.Valuer.
func (id RowId) Value() (driver.Value, error) {
	return xid.ID(id).Value()
}

func (id RowId) String() string {
	guid := xid.ID(id)
	return guid.String()
}

func NewRowId() (RowId, error) {
	guid := xid.New()
	return RowId(guid), nil
}
