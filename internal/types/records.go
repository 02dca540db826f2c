// Package types provides type definitions for the people and people group records
// read and written by the filter.
package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Keys read from input records.
const (
	FieldsKey = "fields"
	IDKey     = "id"
)

// Whitelisted keys inside a record's fields object.
const (
	PersonIDField     = "personID"
	NameField         = "name"
	MemberOfField     = "memberOf"
	PersonLookupField = "personLookup"
	GroupNameField    = "groupName"
)

// Record is one element of an input JSON array. Values are kept as raw JSON so
// they are written back exactly as they were read.
type Record map[string]json.RawMessage

// DecodeRecord decodes a raw JSON value into a Record. The value must be an object.
func DecodeRecord(raw json.RawMessage) (Record, error) {
	if !isObject(raw) {
		return nil, fmt.Errorf("expected a JSON object, got %s", describe(raw))
	}
	var record Record
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, err
	}
	return record, nil
}

// Object returns the nested object stored under key. ok is false when the key
// is absent; a present value that is not an object (including null) is an error.
func (r Record) Object(key string) (Record, bool, error) {
	raw, ok := r[key]
	if !ok {
		return nil, false, nil
	}
	nested, err := DecodeRecord(raw)
	if err != nil {
		return nil, true, fmt.Errorf("%q: %w", key, err)
	}
	return nested, true, nil
}

func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

// describe names the JSON kind of a raw value for error messages.
func describe(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return "nothing"
	}
	switch trimmed[0] {
	case '[':
		return "an array"
	case '"':
		return "a string"
	case 't', 'f':
		return "a boolean"
	case 'n':
		return "null"
	default:
		return "a number"
	}
}

// PersonFields holds the whitelisted person fields. Absent fields are omitted
// when encoded; the declaration order is the output key order.
type PersonFields struct {
	PersonID     json.RawMessage `json:"personID,omitempty"`
	Name         json.RawMessage `json:"name,omitempty"`
	MemberOf     json.RawMessage `json:"memberOf,omitempty"`
	PersonLookup json.RawMessage `json:"personLookup,omitempty"`
}

// FilteredPerson is a person record reduced to its whitelisted fields.
type FilteredPerson struct {
	Fields PersonFields `json:"fields"`
}

// GroupFields holds the whitelisted group fields.
type GroupFields struct {
	GroupName json.RawMessage `json:"groupName,omitempty"`
}

// FilteredGroup is a group record reduced to its id and group name.
// A nil ID encodes as null.
type FilteredGroup struct {
	ID     json.RawMessage `json:"id"`
	Fields GroupFields     `json:"fields"`
}
