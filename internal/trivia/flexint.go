package trivia

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// FlexInt decodes a JSON number or a numeric string. Browser form values arrive as strings.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("not an integer: %q", s)
		}
		*f = FlexInt(n)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexInt(n)
	return nil
}

// IntPtr converts a possibly nil FlexInt pointer.
func (f *FlexInt) IntPtr() *int {
	if f == nil {
		return nil
	}
	n := int(*f)
	return &n
}
