package table

import (
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"sift/common"
	"sift/number"
)

// Row is one stored record: its id plus the JSON document built at ingest.
type Row struct {
	Id   common.RowId
	Data []byte
}

// Field returns the raw text of a column.
func (r Row) Field(col string) (value string, err error) {
	result := gjson.GetBytes(r.Data, col)
	if !result.Exists() {
		err = errors.Wrapf(common.ErrColumnNotFound, "%s", col)
		return
	}
	value = result.String()
	return
}

// Number parses a column's text into the requested kind.
func (r Row) Number(col string, k number.Kind) (v number.Value, err error) {
	text, err := r.Field(col)
	if err != nil {
		return
	}
	return number.Parse(text, k)
}
