package salesforce

import "github.com/flowhost/sfbridge/internal/domain"

var opportunityTools = sobjectDescriptors(crudSpec{
	object:  "Opportunity",
	label:   "opportunity",
	idField: "opportunityId",
	create:  domain.OpCreateOpportunity,
	update:  domain.OpUpdateOpportunity,
	get:     domain.OpGetOpportunity,
	list:    domain.OpGetOpportunities,
	del:     domain.OpDeleteOpportunity,
	fields: map[string]string{
		"opportunityName": "Name",
		"stageName":       "StageName",
		"closeDate":       "CloseDate",
		"amount":          "Amount",
	},
	soql:      "SELECT Id, Name, StageName, CloseDate, Amount FROM Opportunity ORDER BY CreatedDate DESC",
	pluralKey: "opportunities",
	recordKey: "opportunity",
	echo:      []string{"opportunityName", "stageName"},
})
