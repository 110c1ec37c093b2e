package catalog_test

import (
	"sort"
	"testing"

	"github.com/DOIDFoundation/methodmodel/catalog"
	"github.com/DOIDFoundation/methodmodel/method"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltins(t *testing.T) {
	m, ok := catalog.Lookup("eth_getBalance")
	require.True(t, ok)
	assert.Equal(t, 2, m.ParametersAmount)
	assert.Len(t, m.InputFormatters, m.ParametersAmount)

	for _, name := range []string{method.Sign, method.SendTransaction, method.SendRawTransaction, "eth_call", "net_version", "web3_sha3", "personal_sign"} {
		_, ok := catalog.Lookup(name)
		assert.True(t, ok, name)
	}

	_, ok = catalog.Lookup("eth_unknown")
	assert.False(t, ok)
}

func TestFind(t *testing.T) {
	m, err := catalog.Find("eth_call")
	require.NoError(t, err)
	assert.Equal(t, "eth_call", m.Method())

	_, err = catalog.Find("doid_getOwner")
	assert.ErrorIs(t, err, catalog.ErrUnknownMethod)
	assert.EqualError(t, err, "unknown method: doid_getOwner")
}

func TestNamesSorted(t *testing.T) {
	names := catalog.Names()
	assert.True(t, sort.StringsAreSorted(names))

	all := catalog.All()
	require.Len(t, all, len(names))
	for i, m := range all {
		assert.Equal(t, names[i], m.Method())
	}
}

func TestRegister(t *testing.T) {
	m := method.NewModel(method.Literal("test_register"), 1, nil, nil)
	catalog.Register(m)
	got, ok := catalog.Lookup("test_register")
	require.True(t, ok)
	assert.Same(t, m, got)

	assert.Panics(t, func() { catalog.Register(method.NewModel(method.Literal("test_register"), 0, nil, nil)) })
	assert.Panics(t, func() { catalog.Register(method.NewModel(method.Literal(""), 0, nil, nil)) })
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		want catalog.Classification
	}{
		{method.Sign, catalog.Classification{Method: method.Sign, ParametersAmount: 2, Sign: true}},
		{method.SendTransaction, catalog.Classification{Method: method.SendTransaction, ParametersAmount: 1, SendTransaction: true}},
		{method.SendRawTransaction, catalog.Classification{Method: method.SendRawTransaction, ParametersAmount: 1, SendRawTransaction: true}},
		{"personal_sign", catalog.Classification{Method: "personal_sign", ParametersAmount: 3}},
	}
	for _, tt := range tests {
		m, err := catalog.Find(tt.name)
		require.NoError(t, err)
		assert.Equal(t, tt.want, catalog.Classify(m))
	}
}
