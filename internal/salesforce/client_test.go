package salesforce_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/flowhost/sfbridge/internal/domain"
	"github.com/flowhost/sfbridge/internal/salesforce"
)

func newTestClient(t *testing.T, handler http.Handler, opts ...salesforce.Option) (*salesforce.Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	client := salesforce.New(server.Client(), logger, opts...)
	return client, server
}

func connParams(serverURL string) *domain.Params {
	return domain.NewParams().
		Set("instanceUrl", serverURL).
		Set("accessToken", "tok-123")
}

func TestClient_CreateAccount(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	ctx := context.Background()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(http.MethodPost, r.Method)
		assert.Equal("/services/data/v59.0/sobjects/Account", r.URL.Path)
		assert.Equal("Bearer tok-123", r.Header.Get("Authorization"))
		assert.Equal("application/json", r.Header.Get("Content-Type"))

		body, _ := io.ReadAll(r.Body)
		var record map[string]any
		require.NoError(json.Unmarshal(body, &record))
		assert.Equal(map[string]any{"Name": "Acme", "Industry": "Manufacturing"}, record)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"001000000000001","success":true,"errors":[]}`))
	})
	client, server := newTestClient(t, handler)

	desc, err := salesforce.Resolve(domain.OpCreateAccount)
	require.NoError(err)

	params := connParams(server.URL).
		Set("accountName", "Acme").
		Set("industry", "Manufacturing")

	result, err := client.Invoke(ctx, desc, params)
	require.NoError(err)

	assert.True(result.Success)
	assert.Equal("001000000000001", result.Output["accountId"])
	assert.Equal("Acme", result.Output["accountName"])
	assert.Equal(map[string]any{"operation": "create_account"}, result.Output["metadata"])
}

func TestClient_ListAccountsQuery(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	ctx := context.Background()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal("/services/data/v59.0/query", r.URL.Path)
		assert.Contains(r.URL.Query().Get("q"), "FROM Account")
		assert.Contains(r.URL.Query().Get("q"), "LIMIT 7")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"totalSize":1,"done":true,"records":[{"Id":"001000000000001","Name":"Acme"}]}`))
	})
	client, server := newTestClient(t, handler)

	desc, err := salesforce.Resolve(domain.OpGetAccounts)
	require.NoError(err)

	result, err := client.Invoke(ctx, desc, connParams(server.URL).Set("limit", "7"))
	require.NoError(err)

	assert.True(result.Success)
	records, ok := result.Output["accounts"].([]any)
	require.True(ok)
	assert.Len(records, 1)
	assert.Equal(float64(1), result.Output["totalSize"])
	assert.Equal(true, result.Output["done"])
	assert.Equal(map[string]any{"operation": "get_accounts"}, result.Output["metadata"])
}

func TestClient_DeleteNoContent(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	ctx := context.Background()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(http.MethodDelete, r.Method)
		assert.Equal("/services/data/v59.0/sobjects/Contact/003000000000001", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})
	client, server := newTestClient(t, handler)

	desc, err := salesforce.Resolve(domain.OpDeleteContact)
	require.NoError(err)

	result, err := client.Invoke(ctx, desc, connParams(server.URL).Set("contactId", "003000000000001"))
	require.NoError(err)

	assert.True(result.Success)
	assert.Equal("003000000000001", result.Output["contactId"])
	assert.Equal(map[string]any{"operation": "delete_contact"}, result.Output["metadata"])
}

func TestClient_ErrorMessagePriority(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{
			name:        "array body, first element message",
			status:      http.StatusBadRequest,
			body:        `[{"message":"Required fields are missing: [LastName]","errorCode":"REQUIRED_FIELD_MISSING"},{"message":"second"}]`,
			wantMessage: "Required fields are missing: [LastName]",
		},
		{
			name:        "object body message",
			status:      http.StatusNotFound,
			body:        `{"message":"The requested resource does not exist"}`,
			wantMessage: "The requested resource does not exist",
		},
		{
			name:        "unparseable body falls back",
			status:      http.StatusInternalServerError,
			body:        `<html>gateway timeout</html>`,
			wantMessage: "Salesforce request failed",
		},
		{
			name:        "json without message falls back",
			status:      http.StatusForbidden,
			body:        `{"error":"denied"}`,
			wantMessage: "Salesforce request failed",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require := require.New(t)

			handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			})
			client, server := newTestClient(t, handler)

			desc, err := salesforce.Resolve(domain.OpGetAccount)
			require.NoError(err)

			_, err = client.Invoke(ctx, desc, connParams(server.URL).Set("accountId", "001000000000001"))
			require.Error(err)

			var apiErr *domain.RemoteAPIError
			require.ErrorAs(err, &apiErr)
			require.Equal(tc.status, apiErr.StatusCode)
			require.Equal(tc.wantMessage, apiErr.Message)
		})
	}
}

func TestClient_DeleteErrorWithNonJSONBody(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("oops"))
	})
	client, server := newTestClient(t, handler)

	desc, err := salesforce.Resolve(domain.OpDeleteAccount)
	require.NoError(err)

	_, err = client.Invoke(ctx, desc, connParams(server.URL).Set("accountId", "001000000000001"))
	require.Error(err)

	var apiErr *domain.RemoteAPIError
	require.ErrorAs(err, &apiErr)
	require.Equal("Salesforce request failed", apiErr.Message)
}

func TestClient_TokenSourceFallback(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	ctx := context.Background()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal("Bearer from-source", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	})
	tokenSource := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "from-source"})
	client, server := newTestClient(t, handler, salesforce.WithTokenSource(tokenSource))

	desc, err := salesforce.Resolve(domain.OpDeleteTask)
	require.NoError(err)

	// No accessToken in the bag.
	params := domain.NewParams().
		Set("instanceUrl", server.URL).
		Set("taskId", "00T000000000001")

	_, err = client.Invoke(ctx, desc, params)
	require.NoError(err)
}

func TestClient_MissingAccessToken(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	client, server := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("request must not be sent without a token")
	}))

	desc, err := salesforce.Resolve(domain.OpGetAccounts)
	require.NoError(err)

	_, err = client.Invoke(ctx, desc, domain.NewParams().Set("instanceUrl", server.URL))
	require.Error(err)

	var cfgErr *domain.ConfigurationError
	require.ErrorAs(err, &cfgErr)
}

func TestClient_MissingInstanceURL(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	client := salesforce.New(http.DefaultClient, logger)

	desc, err := salesforce.Resolve(domain.OpGetAccounts)
	require.NoError(err)

	_, err = client.Invoke(ctx, desc, domain.NewParams().Set("accessToken", "tok"))
	require.Error(err)

	var cfgErr *domain.ConfigurationError
	require.ErrorAs(err, &cfgErr)
}

func TestClient_DefaultInstanceURL(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	ctx := context.Background()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal("/services/data/v59.0/analytics/dashboards", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"dashboards":[]}`))
	})
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	client := salesforce.New(server.Client(), logger,
		salesforce.WithDefaultInstanceURL(server.URL))

	desc, err := salesforce.Resolve(domain.OpGetDashboards)
	require.NoError(err)

	result, err := client.Invoke(ctx, desc, domain.NewParams().Set("accessToken", "tok"))
	require.NoError(err)
	assert.True(result.Success)
}
