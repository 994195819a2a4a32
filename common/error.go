package common

import "fmt"

var (
	ErrDivisionByZero     = fmt.Errorf("division by zero")
	ErrNegativeSquareRoot = fmt.Errorf("square root of negative value")
	ErrMalformedNumber    = fmt.Errorf("malformed numeric text")
	ErrUnsupportedValue   = fmt.Errorf("unsupported value type")
	ErrTableNotFound      = fmt.Errorf("table not found")
	ErrColumnNotFound     = fmt.Errorf("column not found")
)
