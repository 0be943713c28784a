package models

import (
	"bytes"
	"encoding/json"
)

// NullableString distinguishes an absent JSON field (Set=false) from an
// explicit null (Set=true, Value=nil) in partial updates.
type NullableString struct {
	Set   bool
	Value *string
}

func (n *NullableString) UnmarshalJSON(b []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		n.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	n.Value = &s
	return nil
}

// Of returns a NullableString set to v.
func Of(v string) NullableString {
	return NullableString{Set: true, Value: &v}
}

// Null returns a NullableString set to an explicit null.
func Null() NullableString {
	return NullableString{Set: true}
}
