package reconcile

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Declared audit schemas. The raw extracted field set stored on a detail row
// must match these; a mismatch means an extractor emitted something outside
// the declared field list.
var capitalCallAuditSchema = map[string]any{
	"type":                 "object",
	"additionalProperties": false,
	"properties": map[string]any{
		"call_date":            map[string]any{"type": "string"},
		"due_date":             map[string]any{"type": "string"},
		"call_amount":          map[string]any{"type": "number"},
		"call_percentage":      map[string]any{"type": "number"},
		"fund_name":            map[string]any{"type": "string"},
		"fund_size":            map[string]any{"type": "number"},
		"lp_name":              map[string]any{"type": "string"},
		"lp_commitment":        map[string]any{"type": "number"},
		"remaining_commitment": map[string]any{"type": "number"},
		"payment_instructions": map[string]any{"type": "string"},
		"wire_transfer_info": map[string]any{
			"type":                 "object",
			"additionalProperties": map[string]any{"type": "string"},
		},
	},
}

var distributionAuditSchema = map[string]any{
	"type":                 "object",
	"additionalProperties": false,
	"properties": map[string]any{
		"distribution_date":      map[string]any{"type": "string"},
		"record_date":            map[string]any{"type": "string"},
		"distribution_amount":    map[string]any{"type": "number"},
		"lp_distribution_amount": map[string]any{"type": "number"},
		"distribution_per_unit":  map[string]any{"type": "number"},
		"fund_name":              map[string]any{"type": "string"},
		"fund_nav":               map[string]any{"type": "number"},
		"total_distributions":    map[string]any{"type": "number"},
		"lp_name":                map[string]any{"type": "string"},
		"lp_units":               map[string]any{"type": "number"},
		"irr":                    map[string]any{"type": "number"},
		"multiple":               map[string]any{"type": "number"},
		"payment_method":         map[string]any{"type": "string"},
		"payment_instructions":   map[string]any{"type": "string"},
	},
}

// auditJSON marshals the extracted field set and validates it against the
// declared schema before it is persisted for audit.
func auditJSON(v any, schemaMap map[string]any) (json.RawMessage, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal audit blob: %w", err)
	}
	if err := validateAgainstSchema(schemaMap, data); err != nil {
		return nil, err
	}
	return data, nil
}

func validateAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
