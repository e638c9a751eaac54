// Package block holds the declarative UI block descriptor for the
// Salesforce integration: field definitions, per-operation visibility and
// the operation dropdown. It is pure data plus derived views; rendering is
// the host platform's concern.
package block

import (
	"encoding/json"
	"fmt"

	"github.com/flowhost/sfbridge/internal/domain"
)

type FieldType string

const (
	TypeString     FieldType = "string"
	TypeNumber     FieldType = "number"
	TypeBoolean    FieldType = "boolean"
	TypeOptions    FieldType = "options"
	TypeJSON       FieldType = "json"
	TypeCredential FieldType = "credential"
)

// Option is one entry of a dropdown field.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Field describes one input of the block. ShowFor nil means the field is
// visible for every operation; RequiredFor lists the operations for which
// the host must supply a value.
type Field struct {
	ID          string             `json:"id"`
	Label       string             `json:"label"`
	Type        FieldType          `json:"type"`
	Secret      bool               `json:"secret,omitempty"`
	Placeholder string             `json:"placeholder,omitempty"`
	Options     []Option           `json:"options,omitempty"`
	ShowFor     []domain.Operation `json:"showFor,omitempty"`
	RequiredFor []domain.Operation `json:"requiredFor,omitempty"`
}

func (f *Field) visibleFor(op domain.Operation) bool {
	if len(f.ShowFor) == 0 {
		return true
	}
	for _, o := range f.ShowFor {
		if o == op {
			return true
		}
	}
	return false
}

func (f *Field) requiredFor(op domain.Operation) bool {
	for _, o := range f.RequiredFor {
		if o == op {
			return true
		}
	}
	return false
}

func ops(list ...domain.Operation) []domain.Operation { return list }

// Fields is the block's field list in display order. Order matters: it is
// the canonical insertion order of assembled parameter bags.
var Fields = []Field{
	{ID: domain.FieldCredential, Label: "Credential", Type: TypeCredential, RequiredFor: domain.Operations()},
	{ID: domain.FieldOperation, Label: "Operation", Type: TypeOptions, Options: operationOptions(), RequiredFor: domain.Operations()},

	// Connection overrides supplied by the credential provider. The
	// explicit instance URL always beats the one recovered from idToken.
	{ID: "instanceUrl", Label: "Instance URL", Type: TypeString, Placeholder: "https://acme.my.salesforce.com"},
	{ID: "accessToken", Label: "Access Token", Type: TypeString, Secret: true},
	{ID: "idToken", Label: "Identity Token", Type: TypeString, Secret: true},

	// Accounts.
	{
		ID: "accountId", Label: "Account ID", Type: TypeString,
		ShowFor:     ops(domain.OpGetAccount, domain.OpUpdateAccount, domain.OpDeleteAccount),
		RequiredFor: ops(domain.OpGetAccount, domain.OpUpdateAccount, domain.OpDeleteAccount),
	},
	{
		ID: "accountName", Label: "Account Name", Type: TypeString,
		ShowFor:     ops(domain.OpCreateAccount, domain.OpUpdateAccount),
		RequiredFor: ops(domain.OpCreateAccount),
	},
	{
		ID: "industry", Label: "Industry", Type: TypeString,
		ShowFor: ops(domain.OpCreateAccount, domain.OpUpdateAccount),
	},
	{
		ID: "website", Label: "Website", Type: TypeString,
		ShowFor: ops(domain.OpCreateAccount, domain.OpUpdateAccount),
	},
	{
		ID: "phone", Label: "Phone", Type: TypeString,
		ShowFor: ops(
			domain.OpCreateAccount, domain.OpUpdateAccount,
			domain.OpCreateContact, domain.OpUpdateContact,
		),
	},

	// Contacts and leads share the person name fields.
	{
		ID: "contactId", Label: "Contact ID", Type: TypeString,
		ShowFor:     ops(domain.OpGetContact, domain.OpUpdateContact, domain.OpDeleteContact),
		RequiredFor: ops(domain.OpGetContact, domain.OpUpdateContact, domain.OpDeleteContact),
	},
	{
		ID: "firstName", Label: "First Name", Type: TypeString,
		ShowFor: ops(
			domain.OpCreateContact, domain.OpUpdateContact,
			domain.OpCreateLead, domain.OpUpdateLead,
		),
	},
	{
		ID: "lastName", Label: "Last Name", Type: TypeString,
		ShowFor: ops(
			domain.OpCreateContact, domain.OpUpdateContact,
			domain.OpCreateLead, domain.OpUpdateLead,
		),
		RequiredFor: ops(domain.OpCreateContact, domain.OpCreateLead),
	},
	{
		ID: "email", Label: "Email", Type: TypeString,
		ShowFor: ops(
			domain.OpCreateContact, domain.OpUpdateContact,
			domain.OpCreateLead, domain.OpUpdateLead,
		),
	},

	// Leads.
	{
		ID: "leadId", Label: "Lead ID", Type: TypeString,
		ShowFor:     ops(domain.OpGetLead, domain.OpUpdateLead, domain.OpDeleteLead),
		RequiredFor: ops(domain.OpGetLead, domain.OpUpdateLead, domain.OpDeleteLead),
	},
	{
		ID: "company", Label: "Company", Type: TypeString,
		ShowFor:     ops(domain.OpCreateLead, domain.OpUpdateLead),
		RequiredFor: ops(domain.OpCreateLead),
	},
	{
		ID: "leadStatus", Label: "Lead Status", Type: TypeString,
		ShowFor: ops(domain.OpCreateLead, domain.OpUpdateLead),
	},

	// Opportunities.
	{
		ID: "opportunityId", Label: "Opportunity ID", Type: TypeString,
		ShowFor:     ops(domain.OpGetOpportunity, domain.OpUpdateOpportunity, domain.OpDeleteOpportunity),
		RequiredFor: ops(domain.OpGetOpportunity, domain.OpUpdateOpportunity, domain.OpDeleteOpportunity),
	},
	{
		ID: "opportunityName", Label: "Opportunity Name", Type: TypeString,
		ShowFor:     ops(domain.OpCreateOpportunity, domain.OpUpdateOpportunity),
		RequiredFor: ops(domain.OpCreateOpportunity),
	},
	{
		ID: "stageName", Label: "Stage", Type: TypeString,
		ShowFor:     ops(domain.OpCreateOpportunity, domain.OpUpdateOpportunity),
		RequiredFor: ops(domain.OpCreateOpportunity),
	},
	{
		ID: "closeDate", Label: "Close Date", Type: TypeString, Placeholder: "2026-12-31",
		ShowFor:     ops(domain.OpCreateOpportunity, domain.OpUpdateOpportunity),
		RequiredFor: ops(domain.OpCreateOpportunity),
	},
	{
		ID: "amount", Label: "Amount", Type: TypeNumber,
		ShowFor: ops(domain.OpCreateOpportunity, domain.OpUpdateOpportunity),
	},

	// Cases and tasks share subject/description.
	{
		ID: "caseId", Label: "Case ID", Type: TypeString,
		ShowFor:     ops(domain.OpGetCase, domain.OpUpdateCase, domain.OpDeleteCase),
		RequiredFor: ops(domain.OpGetCase, domain.OpUpdateCase, domain.OpDeleteCase),
	},
	{
		ID: "subject", Label: "Subject", Type: TypeString,
		ShowFor: ops(
			domain.OpCreateCase, domain.OpUpdateCase,
			domain.OpCreateTask, domain.OpUpdateTask,
		),
		RequiredFor: ops(domain.OpCreateCase),
	},
	{
		ID: "description", Label: "Description", Type: TypeString,
		ShowFor: ops(
			domain.OpCreateCase, domain.OpUpdateCase,
			domain.OpCreateTask, domain.OpUpdateTask,
		),
	},
	{
		ID: "status", Label: "Status", Type: TypeString,
		ShowFor: ops(
			domain.OpCreateCase, domain.OpUpdateCase,
			domain.OpCreateTask, domain.OpUpdateTask,
		),
	},
	{
		ID: "priority", Label: "Priority", Type: TypeString,
		ShowFor: ops(domain.OpCreateCase, domain.OpUpdateCase),
	},

	// Tasks.
	{
		ID: "taskId", Label: "Task ID", Type: TypeString,
		ShowFor:     ops(domain.OpGetTask, domain.OpUpdateTask, domain.OpDeleteTask),
		RequiredFor: ops(domain.OpGetTask, domain.OpUpdateTask, domain.OpDeleteTask),
	},
	{
		ID: "activityDate", Label: "Due Date", Type: TypeString, Placeholder: "2026-12-31",
		ShowFor: ops(domain.OpCreateTask, domain.OpUpdateTask),
	},
	{
		ID: "relatedToId", Label: "Related Record ID", Type: TypeString,
		ShowFor: ops(domain.OpCreateTask, domain.OpUpdateTask),
	},

	// Analytics.
	{
		ID: "reportId", Label: "Report ID", Type: TypeString,
		ShowFor:     ops(domain.OpGetReport, domain.OpRunReport, domain.OpDeleteReport),
		RequiredFor: ops(domain.OpGetReport, domain.OpRunReport, domain.OpDeleteReport),
	},
	{
		ID: "reportMetadata", Label: "Report Metadata (JSON)", Type: TypeJSON,
		ShowFor: ops(domain.OpRunReport),
	},
	{
		ID: "includeDetails", Label: "Include Detail Rows", Type: TypeBoolean,
		ShowFor: ops(domain.OpGetReport, domain.OpRunReport),
	},
	{
		ID: "dashboardId", Label: "Dashboard ID", Type: TypeString,
		ShowFor: ops(
			domain.OpGetDashboard, domain.OpGetDashboardStatus,
			domain.OpRefreshDashboard, domain.OpDeleteDashboard,
		),
		RequiredFor: ops(
			domain.OpGetDashboard, domain.OpGetDashboardStatus,
			domain.OpRefreshDashboard, domain.OpDeleteDashboard,
		),
	},

	// SOQL.
	{
		ID: "query", Label: "SOQL Query", Type: TypeString,
		Placeholder: "SELECT Id, Name FROM Account",
		ShowFor:     ops(domain.OpExecuteQuery),
		RequiredFor: ops(domain.OpExecuteQuery),
	},

	// List pagination.
	{
		ID: "limit", Label: "Limit", Type: TypeString, Placeholder: "50",
		ShowFor: ops(
			domain.OpGetAccounts, domain.OpGetContacts, domain.OpGetLeads,
			domain.OpGetOpportunities, domain.OpGetCases, domain.OpGetTasks,
		),
	},
}

func operationOptions() []Option {
	opsList := domain.Operations()
	options := make([]Option, 0, len(opsList))
	for _, op := range opsList {
		options = append(options, Option{Value: string(op), Label: string(op)})
	}
	return options
}

// VisibleFields returns the fields shown for an operation, in declaration
// order, excluding the operation selector itself.
func VisibleFields(op domain.Operation) []Field {
	var out []Field
	for _, f := range Fields {
		if f.ID == domain.FieldOperation {
			continue
		}
		if f.visibleFor(op) {
			out = append(out, f)
		}
	}
	return out
}

// ParamsFrom assembles an ordered parameter bag for an operation from the
// host's raw arguments. Fields are inserted in declaration order so request
// construction downstream is deterministic; the operation tag itself is
// carried in the bag and stripped again during sanitization.
func ParamsFrom(op domain.Operation, args map[string]any) *domain.Params {
	p := domain.NewParams()
	for _, f := range Fields {
		if f.ID == domain.FieldOperation {
			p.Set(domain.FieldOperation, string(op))
			continue
		}
		if !f.visibleFor(op) {
			continue
		}
		if v, ok := args[f.ID]; ok {
			p.Set(f.ID, v)
		}
	}
	return p
}

func jsonType(t FieldType) string {
	switch t {
	case TypeNumber:
		return "number"
	case TypeBoolean:
		return "boolean"
	default:
		return "string"
	}
}

// InputSchema renders the JSON schema for one operation's visible fields,
// suitable as an MCP tool input schema.
func InputSchema(op domain.Operation) (json.RawMessage, error) {
	properties := make(map[string]any)
	var required []string
	for _, f := range VisibleFields(op) {
		prop := map[string]any{
			"type":        jsonType(f.Type),
			"description": f.Label,
		}
		if f.Type == TypeJSON {
			prop["description"] = f.Label + " (JSON document as a string)"
		}
		properties[f.ID] = prop
		if f.requiredFor(op) {
			required = append(required, f.ID)
		}
	}
	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	raw, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("marshaling input schema for %s: %w", op, err)
	}
	return raw, nil
}

// Descriptor is the whole block as JSON for the host UI.
func Descriptor() (json.RawMessage, error) {
	doc := map[string]any{
		"name":        "salesforce",
		"displayName": "Salesforce",
		"fields":      Fields,
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshaling block descriptor: %w", err)
	}
	return raw, nil
}
