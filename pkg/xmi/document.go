package xmi

import "github.com/invopop/jsonschema"

// Document is the wire-format payload: model metadata plus flat lists of
// entity and relationship records. Records stay loosely typed here; the
// Model gives them shape during Load.
type Document struct {
	Name               string           `json:"Name,omitempty" jsonschema:"description=Model name"`
	XmiVersion         string           `json:"XmiVersion,omitempty" jsonschema:"description=Schema version of the payload"`
	ApplicationName    string           `json:"ApplicationName,omitempty" jsonschema:"description=Producing application"`
	ApplicationVersion string           `json:"ApplicationVersion,omitempty" jsonschema:"description=Producing application version"`
	Entities           []map[string]any `json:"Entities,omitempty" jsonschema:"description=Entity records keyed by EntityType"`
	Relationships      []map[string]any `json:"Relationships,omitempty" jsonschema:"description=Relationship records referencing entities by ID"`
	Histories          []any            `json:"Histories,omitempty" jsonschema:"description=Opaque history records passed through unchanged"`
	Errors             []ErrorLog       `json:"Errors,omitempty" jsonschema:"description=Records rejected during a previous load"`
}

// DocumentSchema returns the JSON Schema of the wire format.
func DocumentSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		DoNotReference: true,
	}
	return reflector.Reflect(&Document{})
}
