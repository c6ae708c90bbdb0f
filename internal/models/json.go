package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// The JSONB columns (order items, product features and specifications) accept
// both structured JSON and a pre-serialized JSON string on input, because
// storefront clients have historically sent either form. On output they are
// always structured.

type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, fmt.Errorf("marshal string list: %w", err)
	}
	return string(b), nil
}

func (l *StringList) Scan(src interface{}) error {
	return scanJSON(src, (*[]string)(l))
}

func (l *StringList) UnmarshalJSON(data []byte) error {
	return unmarshalTolerant(data, (*[]string)(l))
}

type SpecMap map[string]string

func (m SpecMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	b, err := json.Marshal(map[string]string(m))
	if err != nil {
		return nil, fmt.Errorf("marshal specifications: %w", err)
	}
	return string(b), nil
}

func (m *SpecMap) Scan(src interface{}) error {
	return scanJSON(src, (*map[string]string)(m))
}

func (m *SpecMap) UnmarshalJSON(data []byte) error {
	return unmarshalTolerant(data, (*map[string]string)(m))
}

type OrderItems []OrderItem

func (o OrderItems) Value() (driver.Value, error) {
	if o == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]OrderItem(o))
	if err != nil {
		return nil, fmt.Errorf("marshal order items: %w", err)
	}
	return string(b), nil
}

func (o *OrderItems) Scan(src interface{}) error {
	return scanJSON(src, (*[]OrderItem)(o))
}

func (o *OrderItems) UnmarshalJSON(data []byte) error {
	return unmarshalTolerant(data, (*[]OrderItem)(o))
}

func scanJSON(src, dst interface{}) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		if len(v) == 0 {
			return nil
		}
		return json.Unmarshal(v, dst)
	case string:
		if v == "" {
			return nil
		}
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("unsupported column type %T", src)
	}
}

// unmarshalTolerant decodes either the structured value or a JSON string
// containing its serialized form.
func unmarshalTolerant(data []byte, dst interface{}) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		var inner string
		if err := json.Unmarshal(data, &inner); err != nil {
			return err
		}
		if inner == "" {
			return nil
		}
		return json.Unmarshal([]byte(inner), dst)
	}
	return json.Unmarshal(data, dst)
}
