package salesforce

import (
	"net/http"
	"net/url"

	"github.com/flowhost/sfbridge/internal/domain"
)

var queryTools = []*domain.Descriptor{
	{
		ID:          toolID(domain.OpExecuteQuery),
		Operation:   domain.OpExecuteQuery,
		Description: "Execute a raw SOQL query",
		Method:      http.MethodGet,
		Path:        staticPath("/query"),
		Query: func(p *domain.Params) (url.Values, error) {
			soql, err := requireString(p, "query")
			if err != nil {
				return nil, err
			}
			values := url.Values{}
			values.Set("q", soql)
			return values, nil
		},
		Transform: listTransform("records"),
	},
}
