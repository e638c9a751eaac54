package domain

// Operation identifies one Salesforce action selectable from the host's
// operation dropdown. The set is closed: the registry in
// internal/salesforce is validated at startup to cover every value here.
type Operation string

const (
	OpCreateAccount Operation = "create_account"
	OpUpdateAccount Operation = "update_account"
	OpGetAccount    Operation = "get_account"
	OpGetAccounts   Operation = "get_accounts"
	OpDeleteAccount Operation = "delete_account"

	OpCreateContact Operation = "create_contact"
	OpUpdateContact Operation = "update_contact"
	OpGetContact    Operation = "get_contact"
	OpGetContacts   Operation = "get_contacts"
	OpDeleteContact Operation = "delete_contact"

	OpCreateLead Operation = "create_lead"
	OpUpdateLead Operation = "update_lead"
	OpGetLead    Operation = "get_lead"
	OpGetLeads   Operation = "get_leads"
	OpDeleteLead Operation = "delete_lead"

	OpCreateOpportunity Operation = "create_opportunity"
	OpUpdateOpportunity Operation = "update_opportunity"
	OpGetOpportunity    Operation = "get_opportunity"
	OpGetOpportunities  Operation = "get_opportunities"
	OpDeleteOpportunity Operation = "delete_opportunity"

	OpCreateCase Operation = "create_case"
	OpUpdateCase Operation = "update_case"
	OpGetCase    Operation = "get_case"
	OpGetCases   Operation = "get_cases"
	OpDeleteCase Operation = "delete_case"

	OpCreateTask Operation = "create_task"
	OpUpdateTask Operation = "update_task"
	OpGetTask    Operation = "get_task"
	OpGetTasks   Operation = "get_tasks"
	OpDeleteTask Operation = "delete_task"

	OpGetReports   Operation = "get_reports"
	OpGetReport    Operation = "get_report"
	OpRunReport    Operation = "run_report"
	OpDeleteReport Operation = "delete_report"

	OpGetDashboards      Operation = "get_dashboards"
	OpGetDashboard       Operation = "get_dashboard"
	OpGetDashboardStatus Operation = "get_dashboard_status"
	OpRefreshDashboard   Operation = "refresh_dashboard"
	OpDeleteDashboard    Operation = "delete_dashboard"

	OpExecuteQuery Operation = "execute_query"
)

// Operations lists every known operation in catalog order. The order is the
// order of the host UI's operation dropdown and of MCP tool registration.
func Operations() []Operation {
	return []Operation{
		OpCreateAccount, OpUpdateAccount, OpGetAccount, OpGetAccounts, OpDeleteAccount,
		OpCreateContact, OpUpdateContact, OpGetContact, OpGetContacts, OpDeleteContact,
		OpCreateLead, OpUpdateLead, OpGetLead, OpGetLeads, OpDeleteLead,
		OpCreateOpportunity, OpUpdateOpportunity, OpGetOpportunity, OpGetOpportunities, OpDeleteOpportunity,
		OpCreateCase, OpUpdateCase, OpGetCase, OpGetCases, OpDeleteCase,
		OpCreateTask, OpUpdateTask, OpGetTask, OpGetTasks, OpDeleteTask,
		OpGetReports, OpGetReport, OpRunReport, OpDeleteReport,
		OpGetDashboards, OpGetDashboard, OpGetDashboardStatus, OpRefreshDashboard, OpDeleteDashboard,
		OpExecuteQuery,
	}
}

var knownOperations = func() map[Operation]struct{} {
	ops := Operations()
	m := make(map[Operation]struct{}, len(ops))
	for _, op := range ops {
		m[op] = struct{}{}
	}
	return m
}()

// ParseOperation validates a raw operation tag from the host. There is no
// default fallback: an unknown tag is an UnknownOperationError.
func ParseOperation(raw string) (Operation, error) {
	op := Operation(raw)
	if _, ok := knownOperations[op]; !ok {
		return "", &UnknownOperationError{Operation: raw}
	}
	return op, nil
}
