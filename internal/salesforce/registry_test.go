package salesforce_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowhost/sfbridge/internal/domain"
	"github.com/flowhost/sfbridge/internal/salesforce"
)

func TestResolve_CoversEveryOperation(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	seen := make(map[string]bool)
	for _, op := range domain.Operations() {
		desc, err := salesforce.Resolve(op)
		require.NoError(err, "operation %s", op)
		assert.Equal(op, desc.Operation)
		assert.Equal("salesforce_"+string(op), desc.ID)
		assert.NotEmpty(desc.Method)
		assert.NotNil(desc.Path)
		assert.False(seen[desc.ID], "duplicate tool id %s", desc.ID)
		seen[desc.ID] = true
	}
	assert.Len(seen, 40)
}

func TestResolve_UpdateLead(t *testing.T) {
	require := require.New(t)

	desc, err := salesforce.Resolve(domain.OpUpdateLead)
	require.NoError(err)
	require.Equal("salesforce_update_lead", desc.ID)
	require.Equal("PATCH", desc.Method)

	path, err := desc.Path(domain.NewParams().Set("leadId", "00Q000000000001"))
	require.NoError(err)
	require.Equal("/services/data/v59.0/sobjects/Lead/00Q000000000001", path)
}

func TestResolve_UnknownOperation(t *testing.T) {
	require := require.New(t)

	_, err := salesforce.Resolve(domain.Operation("bogus"))
	require.Error(err)
	var unknownErr *domain.UnknownOperationError
	require.ErrorAs(err, &unknownErr)
}

func TestDescriptors_CatalogOrder(t *testing.T) {
	require := require.New(t)

	descs := salesforce.Descriptors()
	ops := domain.Operations()
	require.Len(descs, len(ops))
	for i, desc := range descs {
		require.Equal(ops[i], desc.Operation)
	}
}

func TestCatalog_ImplementsResolver(t *testing.T) {
	require := require.New(t)

	desc, err := salesforce.Catalog{}.Resolve(domain.OpGetAccount)
	require.NoError(err)
	require.Equal("salesforce_get_account", desc.ID)
}
