package salesforce_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowhost/sfbridge/internal/domain"
	"github.com/flowhost/sfbridge/internal/salesforce"
)

func TestRunReport_BodyFromMetadata(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	desc, err := salesforce.Resolve(domain.OpRunReport)
	require.NoError(err)
	require.NotNil(desc.Body)

	body, err := desc.Body(domain.NewParams().
		Set("reportId", "00O000000000001").
		Set("reportMetadata", `{"reportFilters":[{"column":"STAGE_NAME","operator":"equals","value":"Won"}]}`))
	require.NoError(err)

	asMap, ok := body.(map[string]any)
	require.True(ok)
	metadata, ok := asMap["reportMetadata"].(map[string]any)
	require.True(ok)
	assert.Contains(metadata, "reportFilters")
}

func TestRunReport_InvalidMetadata(t *testing.T) {
	require := require.New(t)

	desc, err := salesforce.Resolve(domain.OpRunReport)
	require.NoError(err)

	_, err = desc.Body(domain.NewParams().Set("reportMetadata", "{not json"))
	require.Error(err)
	var jsonErr *domain.InvalidJSONError
	require.ErrorAs(err, &jsonErr)
	require.Equal("reportMetadata", jsonErr.Field)
}

func TestRunReport_NoMetadataMeansNoBody(t *testing.T) {
	require := require.New(t)

	desc, err := salesforce.Resolve(domain.OpRunReport)
	require.NoError(err)

	body, err := desc.Body(domain.NewParams().Set("reportId", "00O000000000001"))
	require.NoError(err)
	require.Nil(body)
}

func TestListQuery_Limit(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	desc, err := salesforce.Resolve(domain.OpGetAccounts)
	require.NoError(err)
	require.NotNil(desc.Query)

	// Default limit.
	values, err := desc.Query(domain.NewParams())
	require.NoError(err)
	assert.Contains(values.Get("q"), "FROM Account")
	assert.Contains(values.Get("q"), "LIMIT 50")

	// Explicit limit.
	values, err = desc.Query(domain.NewParams().Set("limit", "7"))
	require.NoError(err)
	assert.Contains(values.Get("q"), "LIMIT 7")

	// Garbage limit is rejected, not silently defaulted.
	_, err = desc.Query(domain.NewParams().Set("limit", "lots"))
	require.Error(err)
}

func TestIdPath_MissingParameter(t *testing.T) {
	require := require.New(t)

	desc, err := salesforce.Resolve(domain.OpDeleteContact)
	require.NoError(err)

	_, err = desc.Path(domain.NewParams())
	require.Error(err)
	require.Contains(err.Error(), "contactId")
}

func TestIdPath_EscapesRecordID(t *testing.T) {
	require := require.New(t)

	desc, err := salesforce.Resolve(domain.OpGetAccount)
	require.NoError(err)

	path, err := desc.Path(domain.NewParams().Set("accountId", "001/../User"))
	require.NoError(err)
	require.NotContains(path, "/../")
}

func TestIncludeDetails_QueryFlag(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	desc, err := salesforce.Resolve(domain.OpGetReport)
	require.NoError(err)
	require.NotNil(desc.Query)

	// Boolean true.
	values, err := desc.Query(domain.NewParams().Set("includeDetails", true))
	require.NoError(err)
	assert.Equal("true", values.Get("includeDetails"))

	// Boolean false adds nothing.
	values, err = desc.Query(domain.NewParams().Set("includeDetails", false))
	require.NoError(err)
	assert.Empty(values.Get("includeDetails"))

	// Legacy string form.
	values, err = desc.Query(domain.NewParams().Set("includeDetails", "true"))
	require.NoError(err)
	assert.Equal("true", values.Get("includeDetails"))

	// Absent flag adds nothing.
	values, err = desc.Query(domain.NewParams())
	require.NoError(err)
	assert.Empty(values)
}

func TestRecordBody_OnlyMappedPresentFields(t *testing.T) {
	require := require.New(t)

	desc, err := salesforce.Resolve(domain.OpCreateLead)
	require.NoError(err)
	require.NotNil(desc.Body)

	body, err := desc.Body(domain.NewParams().
		Set("credential", "c1").
		Set("lastName", "Nakamura").
		Set("company", "Acme KK"))
	require.NoError(err)

	record, ok := body.(map[string]any)
	require.True(ok)
	require.Equal(map[string]any{"LastName": "Nakamura", "Company": "Acme KK"}, record)
}
