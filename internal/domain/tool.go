package domain

import "net/url"

// Descriptor is the static definition of one operation's HTTP contract:
// how to build the request and how to shape the response. Descriptors are
// defined once at package init in internal/salesforce and never mutated.
type Descriptor struct {
	// ID is the tool's unique name, e.g. "salesforce_update_lead". It is
	// also the MCP tool name the host sees.
	ID string

	// Operation is the catalog tag this descriptor serves.
	Operation Operation

	Description string

	// Method is the HTTP verb.
	Method string

	// Path builds the request path relative to the instance URL, e.g.
	// "/services/data/v59.0/sobjects/Lead/00Q...". It may fail when a
	// required path parameter is missing from the bag.
	Path func(p *Params) (string, error)

	// Query builds optional query parameters. Nil means none.
	Query func(p *Params) (url.Values, error)

	// Body builds the JSON request body. Nil means no body.
	Body func(p *Params) (any, error)

	// Transform shapes the success output from the sanitized bag and the
	// decoded response payload. Nil wraps the payload as {"data": payload}.
	Transform func(p *Params, payload map[string]any) map[string]any
}

// Result is the success envelope returned to the host for every operation.
// Output always carries a "metadata" object with the operation name; the
// rest of Output is operation-specific.
type Result struct {
	Success bool           `json:"success"`
	Output  map[string]any `json:"output"`
}

// NewResult assembles the envelope for an operation's output.
func NewResult(op Operation, output map[string]any) *Result {
	if output == nil {
		output = make(map[string]any)
	}
	output["metadata"] = map[string]any{"operation": string(op)}
	return &Result{Success: true, Output: output}
}
