package salesforce

import "github.com/flowhost/sfbridge/internal/domain"

var taskTools = sobjectDescriptors(crudSpec{
	object:  "Task",
	label:   "task",
	idField: "taskId",
	create:  domain.OpCreateTask,
	update:  domain.OpUpdateTask,
	get:     domain.OpGetTask,
	list:    domain.OpGetTasks,
	del:     domain.OpDeleteTask,
	fields: map[string]string{
		"subject":      "Subject",
		"description":  "Description",
		"status":       "Status",
		"activityDate": "ActivityDate",
		"relatedToId":  "WhatId",
	},
	soql:      "SELECT Id, Subject, Status, ActivityDate, WhatId FROM Task ORDER BY CreatedDate DESC",
	pluralKey: "tasks",
	recordKey: "task",
	echo:      []string{"subject"},
})
