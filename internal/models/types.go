package models

import (
	"database/sql/driver"
	"encoding/json"
)

// JSON stores loosely structured key-value payloads such as part
// compatibility maps and supplier contact details.
type JSON map[string]interface{}

// Value implements driver.Valuer. Stored as text so substring filters
// work the same on sqlite and postgres.
func (j JSON) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	b, err := json.Marshal(j)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = make(JSON)
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}
	return json.Unmarshal(bytes, j)
}
