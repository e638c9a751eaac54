package salesforce

import "github.com/flowhost/sfbridge/internal/domain"

var leadTools = sobjectDescriptors(crudSpec{
	object:  "Lead",
	label:   "lead",
	idField: "leadId",
	create:  domain.OpCreateLead,
	update:  domain.OpUpdateLead,
	get:     domain.OpGetLead,
	list:    domain.OpGetLeads,
	del:     domain.OpDeleteLead,
	fields: map[string]string{
		"firstName":  "FirstName",
		"lastName":   "LastName",
		"email":      "Email",
		"company":    "Company",
		"leadStatus": "Status",
	},
	soql:      "SELECT Id, FirstName, LastName, Company, Email, Status FROM Lead ORDER BY CreatedDate DESC",
	pluralKey: "leads",
	recordKey: "lead",
	echo:      []string{"firstName", "lastName", "company"},
})
