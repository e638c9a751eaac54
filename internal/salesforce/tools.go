package salesforce

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/flowhost/sfbridge/internal/domain"
)

// Every descriptor is an instantiation of the same request template; the
// helpers below are the template's moving parts. Paths are relative to the
// instance URL.

const (
	basePath         = "/services/data/" + APIVersion
	defaultListLimit = 50
)

func toolID(op domain.Operation) string {
	return "salesforce_" + string(op)
}

func requireString(p *domain.Params, field string) (string, error) {
	v := p.GetString(field)
	if v == "" {
		return "", fmt.Errorf("missing required parameter %q", field)
	}
	return v, nil
}

// staticPath returns a builder for a fixed path like "/sobjects/Account".
func staticPath(path string) func(*domain.Params) (string, error) {
	full := basePath + path
	return func(*domain.Params) (string, error) {
		return full, nil
	}
}

// idPath returns a builder that splices one required record id into a path
// template, e.g. idPath("/sobjects/Lead/%s", "leadId").
func idPath(format, field string) func(*domain.Params) (string, error) {
	return func(p *domain.Params) (string, error) {
		id, err := requireString(p, field)
		if err != nil {
			return "", err
		}
		return basePath + fmt.Sprintf(format, url.PathEscape(id)), nil
	}
}

// soqlListQuery returns a query builder for the list operations: a fixed
// SELECT with the bag's limit (or the default) appended.
func soqlListQuery(soql string) func(*domain.Params) (url.Values, error) {
	return func(p *domain.Params) (url.Values, error) {
		limit := defaultListLimit
		if raw := p.GetString("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n <= 0 {
				return nil, fmt.Errorf("invalid limit %q", raw)
			}
			limit = n
		}
		values := url.Values{}
		values.Set("q", fmt.Sprintf("%s LIMIT %d", soql, limit))
		return values, nil
	}
}

// recordBody returns a body builder that copies present bag entries into an
// SObject record, renaming bag keys to Salesforce field names.
func recordBody(fields map[string]string) func(*domain.Params) (any, error) {
	return func(p *domain.Params) (any, error) {
		record := make(map[string]any)
		for _, key := range p.Keys() {
			sfName, ok := fields[key]
			if !ok {
				continue
			}
			if v, present := p.Get(key); present {
				record[sfName] = v
			}
		}
		return record, nil
	}
}

// createdTransform shapes the output of a create: the new record id under
// idKey plus an echo of the named inputs.
func createdTransform(idKey string, echo ...string) func(*domain.Params, map[string]any) map[string]any {
	return func(p *domain.Params, payload map[string]any) map[string]any {
		out := map[string]any{idKey: payload["id"]}
		for _, key := range echo {
			if v, ok := p.Get(key); ok {
				out[key] = v
			}
		}
		return out
	}
}

// echoTransform shapes the output of updates and deletes: just an echo of
// the named inputs (the API returns 204 No Content).
func echoTransform(echo ...string) func(*domain.Params, map[string]any) map[string]any {
	return func(p *domain.Params, _ map[string]any) map[string]any {
		out := make(map[string]any, len(echo))
		for _, key := range echo {
			if v, ok := p.Get(key); ok {
				out[key] = v
			}
		}
		return out
	}
}

// recordTransform shapes the output of a single-record get: the id echo
// plus the record payload.
func recordTransform(idKey, recordKey string) func(*domain.Params, map[string]any) map[string]any {
	return func(p *domain.Params, payload map[string]any) map[string]any {
		return map[string]any{
			idKey:     p.GetString(idKey),
			recordKey: payload,
		}
	}
}

// listTransform shapes the output of a SOQL-backed list: records under the
// plural key plus the query bookkeeping fields.
func listTransform(pluralKey string) func(*domain.Params, map[string]any) map[string]any {
	return func(_ *domain.Params, payload map[string]any) map[string]any {
		return map[string]any{
			pluralKey:   payload["records"],
			"totalSize": payload["totalSize"],
			"done":      payload["done"],
		}
	}
}

// crudSpec declares the per-entity inputs of the standard five-operation
// SObject template.
type crudSpec struct {
	object  string // SObject API name, e.g. "Account"
	label   string // lower-case noun for descriptions
	idField string // bag key carrying the record id

	create, update, get, list, del domain.Operation

	fields    map[string]string // bag key -> SObject field name
	soql      string            // list SELECT, without LIMIT
	pluralKey string            // output key for list records
	recordKey string            // output key for a single record
	echo      []string          // created-record echo keys
}

// sobjectDescriptors instantiates the CRUD template for one SObject type.
func sobjectDescriptors(s crudSpec) []*domain.Descriptor {
	collectionPath := "/sobjects/" + s.object
	recordPath := "/sobjects/" + s.object + "/%s"

	return []*domain.Descriptor{
		{
			ID:          toolID(s.create),
			Operation:   s.create,
			Description: "Create a " + s.label + " record",
			Method:      http.MethodPost,
			Path:        staticPath(collectionPath),
			Body:        recordBody(s.fields),
			Transform:   createdTransform(s.idField, s.echo...),
		},
		{
			ID:          toolID(s.update),
			Operation:   s.update,
			Description: "Update a " + s.label + " record",
			Method:      http.MethodPatch,
			Path:        idPath(recordPath, s.idField),
			Body:        recordBody(s.fields),
			Transform:   echoTransform(s.idField),
		},
		{
			ID:          toolID(s.get),
			Operation:   s.get,
			Description: "Get a " + s.label + " record by id",
			Method:      http.MethodGet,
			Path:        idPath(recordPath, s.idField),
			Transform:   recordTransform(s.idField, s.recordKey),
		},
		{
			ID:          toolID(s.list),
			Operation:   s.list,
			Description: "List " + s.label + " records",
			Method:      http.MethodGet,
			Path:        staticPath("/query"),
			Query:       soqlListQuery(s.soql),
			Transform:   listTransform(s.pluralKey),
		},
		{
			ID:          toolID(s.del),
			Operation:   s.del,
			Description: "Delete a " + s.label + " record",
			Method:      http.MethodDelete,
			Path:        idPath(recordPath, s.idField),
			Transform:   echoTransform(s.idField),
		},
	}
}
