package table

import (
	"bytes"
	"context"
	"fmt"

	"sift"
	"sift/number"
	"sift/tx"
)

type filterNodeType string

const (
	connection filterNodeType = "connection"
	operation  filterNodeType = "operation"
)

// FilterNode is one node of a pushed-down filter: either a comparison on a
// column or a connective over child nodes.
type FilterNode struct {
	nodeType   filterNodeType
	childNodes []FilterNode
	connect    string
	column     string
	op         string
	value      number.Value
}

// Cond compares a column against a numeric value. op is one of
// eq/neq/gt/gte/lt/lte.
func Cond(col, op string, v number.Value) FilterNode {
	return FilterNode{
		nodeType: operation,
		column:   col,
		op:       op,
		value:    v,
	}
}

func And(nodes ...FilterNode) FilterNode {
	return FilterNode{
		nodeType:   connection,
		connect:    "and",
		childNodes: nodes,
	}
}

func Or(nodes ...FilterNode) FilterNode {
	return FilterNode{
		nodeType:   connection,
		connect:    "or",
		childNodes: nodes,
	}
}

func Not(nodes ...FilterNode) FilterNode {
	return FilterNode{
		nodeType:   connection,
		connect:    "not",
		childNodes: nodes,
	}
}

type sortNode struct {
	column string
	desc   bool
}

// Query builds a pushed-down select over one table's row store.
type Query struct {
	table  *Table
	filter *FilterNode
	sort   []sortNode
	limit  int
	offset int
}

func NewQuery(t *Table) *Query {
	return &Query{
		table:  t,
		sort:   []sortNode{},
		limit:  -1,
		offset: 0,
	}
}

func (q *Query) Filter(node FilterNode) *Query {
	q.filter = &node
	return q
}

func (q *Query) SortBy(col string, desc bool) *Query {
	q.sort = append(q.sort, sortNode{column: col, desc: desc})
	return q
}

func (q *Query) Limit(limit int) *Query {
	q.limit = limit
	return q
}

func (q *Query) Offset(offset int) *Query {
	q.offset = offset
	return q
}

// column cells are stored as JSON text, so comparisons and sorts cast
// through sqlite's numeric affinity
func columnExpr(col string) string {
	return fmt.Sprintf(`CAST(data ->> '$."%s"' AS NUMERIC)`, col)
}

func (q *Query) buildFilter() (stmt string, err error) {
	if q.filter == nil {
		return
	}
	s, err := q.filter.build()
	if err != nil {
		return
	}
	if s != "" {
		stmt = fmt.Sprintf(" WHERE %s", s)
	}
	return
}

func (n *FilterNode) build() (stmt string, err error) {
	switch n.nodeType {
	case connection:
		stmt, err = n.buildConnect()
	case operation:
		stmt, err = n.buildOp()
	default:
		err = fmt.Errorf("unsupported filter node type: %s", n.nodeType)
	}
	return
}

func (n *FilterNode) buildConnect() (stmt string, err error) {
	join := ""
	prefix := ""
	switch n.connect {
	case "and":
		join = " AND "
	case "or":
		join = " OR "
	case "not":
		join = " AND "
		prefix = " NOT "
	default:
		err = fmt.Errorf("unsupported filter connect type of %s", n.connect)
		return
	}
	var buffer bytes.Buffer
	buffer.WriteString(prefix)
	buffer.WriteString("(")
	end := len(n.childNodes) - 1
	for idx := range n.childNodes {
		var childStmt string
		childStmt, err = n.childNodes[idx].build()
		if err != nil {
			return
		}
		buffer.WriteString(childStmt)
		if idx != end {
			buffer.WriteString(join)
		}
	}
	buffer.WriteString(")")
	stmt = buffer.String()
	return
}

func (n *FilterNode) buildOp() (stmt string, err error) {
	sqlOp := ""
	switch n.op {
	case "eq":
		sqlOp = "="
	case "neq":
		sqlOp = "!="
	case "gt":
		sqlOp = ">"
	case "gte":
		sqlOp = ">="
	case "lt":
		sqlOp = "<"
	case "lte":
		sqlOp = "<="
	default:
		err = fmt.Errorf("unsupported op:%s", n.op)
		return
	}
	stmt = fmt.Sprintf("(%s %s %s)", columnExpr(n.column), sqlOp, n.value.String())
	return
}

func (q *Query) buildSort() (stmt string, err error) {
	if len(q.sort) == 0 {
		return
	}
	var buffer bytes.Buffer
	buffer.WriteString(" ORDER BY ")
	sortLen := len(q.sort)
	for idx, s := range q.sort {
		mode := "ASC"
		if s.desc {
			mode = "DESC"
		}
		buffer.WriteString(fmt.Sprintf(" %s %s ", columnExpr(s.column), mode))
		if idx != sortLen-1 {
			buffer.WriteString(",")
		}
	}
	stmt = buffer.String()
	return
}

func (q *Query) buildSelect() (stmt string, err error) {
	filterStmt, err := q.buildFilter()
	if err != nil {
		return
	}
	sortStmt, err := q.buildSort()
	if err != nil {
		return
	}
	var buffer bytes.Buffer
	buffer.WriteString(fmt.Sprintf("SELECT row_id, data FROM %s", q.table.rowStore()))
	buffer.WriteString(filterStmt)
	buffer.WriteString(sortStmt)
	if q.limit >= 0 {
		buffer.WriteString(fmt.Sprintf(" LIMIT %d", q.limit))
		buffer.WriteString(fmt.Sprintf(" OFFSET %d", q.offset))
	}
	stmt = buffer.String()
	return
}

// Find runs the query and returns the matching rows.
func (q *Query) Find(ctx context.Context, rtx tx.ReadTx) (rowList []Row, err error) {
	stmt, err := q.buildSelect()
	if err != nil {
		return
	}
	rows, err := rtx.Query(stmt)
	if err != nil {
		return
	}
	defer rows.Close()
	rowList = []Row{}
	for rows.Next() {
		var row Row
		if err = rows.Scan(&row.Id, &row.Data); err != nil {
			return
		}
		rowList = append(rowList, row)
	}
	err = rows.Err()
	return
}

// Rows gives a restartable source over the query result; each cursor reruns
// the query in its own read transaction.
func (q *Query) Rows(ctx context.Context) sift.Source[Row] {
	return sift.SourceFunc(func() sift.Seq[Row] {
		stmt, err := q.buildSelect()
		if err != nil {
			failed := false
			return func() (row Row, ok bool, rerr error) {
				if !failed {
					failed = true
					rerr = err
				}
				return
			}
		}
		cursor, _ := q.table.rowCursor(ctx, stmt)
		return cursor
	})
}
