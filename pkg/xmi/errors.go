package xmi

import "fmt"

// UnknownEntityType is the type tag recorded when a rejected record carries
// no usable tag of its own.
const UnknownEntityType = "Unknown"

// ErrorLog is one rejected input record: which type it claimed to be, where
// it sat in the input list, why it was rejected, and a rendering of the raw
// record for diagnostics. ErrorLog entries survive serialization alongside
// the loaded graph.
type ErrorLog struct {
	EntityType string `json:"EntityType"`
	Index      int    `json:"Index"`
	Message    string `json:"Message"`
	Obj        string `json:"Obj"`
}

// fieldConstraintError reports a numeric-range or similar constraint
// violation on one field.
func fieldConstraintError(field, constraint string, value any) error {
	return fmt.Errorf("invalid %s value: %v fails the %s constraint", field, value, constraint)
}

func newErrorLog(entityType string, index int, message string, raw any) ErrorLog {
	if entityType == "" {
		entityType = UnknownEntityType
	}
	return ErrorLog{
		EntityType: entityType,
		Index:      index,
		Message:    message,
		Obj:        fmt.Sprintf("%v", raw),
	}
}
