package salesforce

import "github.com/flowhost/sfbridge/internal/domain"

var caseTools = sobjectDescriptors(crudSpec{
	object:  "Case",
	label:   "case",
	idField: "caseId",
	create:  domain.OpCreateCase,
	update:  domain.OpUpdateCase,
	get:     domain.OpGetCase,
	list:    domain.OpGetCases,
	del:     domain.OpDeleteCase,
	fields: map[string]string{
		"subject":     "Subject",
		"description": "Description",
		"status":      "Status",
		"priority":    "Priority",
	},
	soql:      "SELECT Id, Subject, Status, Priority FROM Case ORDER BY CreatedDate DESC",
	pluralKey: "cases",
	recordKey: "case",
	echo:      []string{"subject"},
})
