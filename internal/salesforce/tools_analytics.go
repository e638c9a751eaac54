package salesforce

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/flowhost/sfbridge/internal/domain"
)

// includeDetailsQuery forwards the includeDetails flag to the Analytics
// API. The block delivers it as a boolean, but a string "true" from older
// hosts is accepted too.
func includeDetailsQuery(p *domain.Params) (url.Values, error) {
	v, ok := p.Get("includeDetails")
	if !ok {
		return nil, nil
	}
	values := url.Values{}
	switch t := v.(type) {
	case bool:
		if t {
			values.Set("includeDetails", "true")
		}
	case string:
		if t == "true" {
			values.Set("includeDetails", "true")
		}
	}
	return values, nil
}

// reportMetadataBody parses the reportMetadata JSON string into the run
// request body. An absent field means the report runs with its saved
// metadata (no body).
func reportMetadataBody(p *domain.Params) (any, error) {
	raw := p.GetString("reportMetadata")
	if raw == "" {
		return nil, nil
	}
	var metadata map[string]any
	if err := json.Unmarshal([]byte(raw), &metadata); err != nil {
		return nil, &domain.InvalidJSONError{Field: "reportMetadata", Err: err}
	}
	return map[string]any{"reportMetadata": metadata}, nil
}

var reportTools = []*domain.Descriptor{
	{
		ID:          toolID(domain.OpGetReports),
		Operation:   domain.OpGetReports,
		Description: "List recently viewed reports",
		Method:      http.MethodGet,
		Path:        staticPath("/analytics/reports"),
		Transform: func(_ *domain.Params, payload map[string]any) map[string]any {
			return map[string]any{"reports": payload["records"]}
		},
	},
	{
		ID:          toolID(domain.OpGetReport),
		Operation:   domain.OpGetReport,
		Description: "Run a report synchronously and return its results",
		Method:      http.MethodGet,
		Path:        idPath("/analytics/reports/%s", "reportId"),
		Query:       includeDetailsQuery,
		Transform:   recordTransform("reportId", "report"),
	},
	{
		ID:          toolID(domain.OpRunReport),
		Operation:   domain.OpRunReport,
		Description: "Run a report with ad-hoc metadata overrides",
		Method:      http.MethodPost,
		Path:        idPath("/analytics/reports/%s", "reportId"),
		Query:       includeDetailsQuery,
		Body:        reportMetadataBody,
		Transform:   recordTransform("reportId", "report"),
	},
	{
		ID:          toolID(domain.OpDeleteReport),
		Operation:   domain.OpDeleteReport,
		Description: "Delete a report",
		Method:      http.MethodDelete,
		Path:        idPath("/analytics/reports/%s", "reportId"),
		Transform:   echoTransform("reportId"),
	},
}

var dashboardTools = []*domain.Descriptor{
	{
		ID:          toolID(domain.OpGetDashboards),
		Operation:   domain.OpGetDashboards,
		Description: "List recently viewed dashboards",
		Method:      http.MethodGet,
		Path:        staticPath("/analytics/dashboards"),
		Transform: func(_ *domain.Params, payload map[string]any) map[string]any {
			return map[string]any{"dashboards": payload["dashboards"]}
		},
	},
	{
		ID:          toolID(domain.OpGetDashboard),
		Operation:   domain.OpGetDashboard,
		Description: "Get a dashboard's results",
		Method:      http.MethodGet,
		Path:        idPath("/analytics/dashboards/%s", "dashboardId"),
		Transform:   recordTransform("dashboardId", "dashboard"),
	},
	{
		ID:          toolID(domain.OpGetDashboardStatus),
		Operation:   domain.OpGetDashboardStatus,
		Description: "Get a dashboard's refresh status",
		Method:      http.MethodGet,
		Path:        idPath("/analytics/dashboards/%s/status", "dashboardId"),
		Transform:   recordTransform("dashboardId", "status"),
	},
	{
		ID:          toolID(domain.OpRefreshDashboard),
		Operation:   domain.OpRefreshDashboard,
		Description: "Trigger a dashboard refresh",
		Method:      http.MethodPut,
		Path:        idPath("/analytics/dashboards/%s", "dashboardId"),
		Transform:   recordTransform("dashboardId", "refresh"),
	},
	{
		ID:          toolID(domain.OpDeleteDashboard),
		Operation:   domain.OpDeleteDashboard,
		Description: "Delete a dashboard",
		Method:      http.MethodDelete,
		Path:        idPath("/analytics/dashboards/%s", "dashboardId"),
		Transform:   echoTransform("dashboardId"),
	},
}
