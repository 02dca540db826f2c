// Package schemas embeds the JSON Schemas describing the filtered output documents.
package schemas

import _ "embed"

// PeopleFiltered is the schema for people_filtered.json.
//
//go:embed people_filtered.schema.json
var PeopleFiltered []byte

// GroupsFiltered is the schema for peopleGroups_filtered.json.
//
//go:embed peopleGroups_filtered.schema.json
var GroupsFiltered []byte
