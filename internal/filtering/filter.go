// Package filtering reduces people and people group records to a fixed whitelist of fields.
package filtering

import (
	"github.com/jonathan/people-filter/internal/types"
)

// FilterPeople keeps personID, name, memberOf and personLookup from each
// person's fields object. Output order and length match the input; a person
// without fields yields an empty fields object.
func FilterPeople(people []types.Record) ([]types.FilteredPerson, error) {
	filtered := make([]types.FilteredPerson, 0, len(people))

	for i, person := range people {
		var out types.FilteredPerson

		fields, ok, err := person.Object(types.FieldsKey)
		if err != nil {
			return nil, &types.StructureError{Index: i, Message: "person fields", Cause: err}
		}
		if ok {
			out.Fields = types.PersonFields{
				PersonID:     fields[types.PersonIDField],
				Name:         fields[types.NameField],
				MemberOf:     fields[types.MemberOfField],
				PersonLookup: fields[types.PersonLookupField],
			}
		}

		filtered = append(filtered, out)
	}

	return filtered, nil
}

// FilterGroups keeps each group's id and the groupName from its fields object.
// A missing id is written as null.
func FilterGroups(groups []types.Record) ([]types.FilteredGroup, error) {
	filtered := make([]types.FilteredGroup, 0, len(groups))

	for i, group := range groups {
		out := types.FilteredGroup{ID: group[types.IDKey]}

		fields, ok, err := group.Object(types.FieldsKey)
		if err != nil {
			return nil, &types.StructureError{Index: i, Message: "group fields", Cause: err}
		}
		if ok {
			out.Fields.GroupName = fields[types.GroupNameField]
		}

		filtered = append(filtered, out)
	}

	return filtered, nil
}
