package dto

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// StringsToJSON converts a string slice to a jsonb column value.
func StringsToJSON(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	b, _ := json.Marshal(values)
	return datatypes.JSON(b)
}

// JSONToStrings converts a jsonb column value back to a string slice.
func JSONToStrings(raw datatypes.JSON) []string {
	var values []string
	if len(raw) == 0 {
		return []string{}
	}
	if err := json.Unmarshal(raw, &values); err != nil {
		return []string{}
	}
	return values
}
