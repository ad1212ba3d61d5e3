// Package jsonutil smooths over the loosely-typed JSON the upstream match
// feed emits: numeric fields arrive as numbers or quoted strings depending
// on the endpoint, and string fields occasionally arrive as bare numbers.
package jsonutil

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// FlexInt decodes from a JSON number, a numeric string, or null.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*f = 0
		return nil
	}

	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*f = 0
			return nil
		}
		// Some fields carry decimals ("4.0") even when they are counts.
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			*f = FlexInt(int(v))
			return nil
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		*f = FlexInt(v)
		return nil
	}

	var v float64
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return err
	}
	*f = FlexInt(int(v))
	return nil
}

// Int returns the plain int value.
func (f FlexInt) Int() int { return int(f) }

// FlexString decodes from a JSON string, number, or null.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*f = ""
		return nil
	}

	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

// String returns the plain string value.
func (f FlexString) String() string { return string(f) }
