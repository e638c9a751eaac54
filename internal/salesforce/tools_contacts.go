package salesforce

import "github.com/flowhost/sfbridge/internal/domain"

var contactTools = sobjectDescriptors(crudSpec{
	object:  "Contact",
	label:   "contact",
	idField: "contactId",
	create:  domain.OpCreateContact,
	update:  domain.OpUpdateContact,
	get:     domain.OpGetContact,
	list:    domain.OpGetContacts,
	del:     domain.OpDeleteContact,
	fields: map[string]string{
		"firstName": "FirstName",
		"lastName":  "LastName",
		"email":     "Email",
		"phone":     "Phone",
	},
	soql:      "SELECT Id, FirstName, LastName, Email, Phone FROM Contact ORDER BY CreatedDate DESC",
	pluralKey: "contacts",
	recordKey: "contact",
	echo:      []string{"firstName", "lastName", "email"},
})
