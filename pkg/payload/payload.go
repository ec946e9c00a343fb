// Package payload fetches and parses wire-format documents. Fetching is the
// external collaborator of the model core: sources read bytes from the
// filesystem or object storage, parsing turns them into a Document the core
// can load.
package payload

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kaptinlin/jsonrepair"

	"github.com/xmi-schema/xmi-go/pkg/logger"
	"github.com/xmi-schema/xmi-go/pkg/xmi"
)

// Source reads the raw bytes of a payload.
type Source interface {
	Fetch(ctx context.Context, path string) ([]byte, error)
}

// Parse decodes a wire-format document. Payloads emitted by some authoring
// tools are not strictly valid JSON (trailing commas, single quotes), so a
// failed strict decode is retried once through a repair pass.
func Parse(data []byte) (*xmi.Document, error) {
	doc := new(xmi.Document)
	strictErr := json.Unmarshal(data, doc)
	if strictErr == nil {
		return doc, nil
	}

	repaired, err := jsonrepair.JSONRepair(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse payload: %w", strictErr)
	}
	if err := json.Unmarshal([]byte(repaired), doc); err != nil {
		return nil, fmt.Errorf("parse payload: %w", strictErr)
	}
	logger.Warn("payload was not strictly valid JSON, parsed after repair")
	return doc, nil
}

// Load fetches a payload from the source and parses it.
func Load(ctx context.Context, source Source, path string) (*xmi.Document, error) {
	data, err := source.Fetch(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("fetch payload %s: %w", path, err)
	}
	return Parse(data)
}
