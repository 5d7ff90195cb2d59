package dto

import "encoding/json"

// FlexBool accepts JSON booleans as well as the wire strings "true"/"false".
// String forms are decoded by JSON parsing, never by truthiness, so "1" or
// "yes" are rejected at decode time.
type FlexBool bool

func (b *FlexBool) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*b = false
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		var v bool
		if err := json.Unmarshal([]byte(s), &v); err != nil {
			return err
		}
		*b = FlexBool(v)
		return nil
	}

	var v bool
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*b = FlexBool(v)
	return nil
}

func (b FlexBool) Bool() bool {
	return bool(b)
}

// YNToString converts the 'Y'/'N' storage encoding to the "true"/"false"
// string form exposed on the read path. Anything but 'Y' reads as "false".
func YNToString(yn string) string {
	if yn == "Y" {
		return "true"
	}
	return "false"
}

// BoolToYN converts a wire boolean to the 'Y'/'N' storage encoding.
func BoolToYN(b bool) string {
	if b {
		return "Y"
	}
	return "N"
}
