package utils

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

type JSONList []string

// Scan implements sql.Scanner.
func (jl *JSONList) Scan(value interface{}) error {
	if value == nil {
		*jl = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("failed to unmarshal JSON: value is not a byte slice")
	}
	return json.Unmarshal(bytes, jl)
}

// Value implements driver.Valuer.
func (jl JSONList) Value() (driver.Value, error) {
	if jl == nil {
		return nil, nil
	}
	v, err := json.Marshal(jl)
	return v, err
}
