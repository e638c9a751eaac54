package salesforce

import "github.com/flowhost/sfbridge/internal/domain"

var accountTools = sobjectDescriptors(crudSpec{
	object:  "Account",
	label:   "account",
	idField: "accountId",
	create:  domain.OpCreateAccount,
	update:  domain.OpUpdateAccount,
	get:     domain.OpGetAccount,
	list:    domain.OpGetAccounts,
	del:     domain.OpDeleteAccount,
	fields: map[string]string{
		"accountName": "Name",
		"industry":    "Industry",
		"website":     "Website",
		"phone":       "Phone",
	},
	soql:      "SELECT Id, Name, Industry, Website, Phone FROM Account ORDER BY CreatedDate DESC",
	pluralKey: "accounts",
	recordKey: "account",
	echo:      []string{"accountName"},
})
