package method_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/DOIDFoundation/methodmodel/method"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errUpper = errors.New("not a string")

func upper(v interface{}) (interface{}, error) {
	s, ok := v.(string)
	if !ok {
		return nil, errUpper
	}
	return strings.ToUpper(s), nil
}

func TestValidate(t *testing.T) {
	m := method.NewModel(method.Literal("eth_getBalance"), 2, nil, nil)
	assert.NoError(t, m.Request("0x01", "latest").Validate())

	err := m.Request("0x01").Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, method.ErrInvalidParamsAmount))
	assert.Contains(t, err.Error(), "eth_getBalance: expected 2, got 1")

	assert.ErrorIs(t, m.Request("a", "b", "c").Validate(), method.ErrInvalidParamsAmount)
}

func TestFormatInput(t *testing.T) {
	m := method.NewModel(method.Literal("eth_call"), 3, []method.Formatter{upper, nil}, nil)
	inv := m.Request("abc", "def", "ghi")

	formatted, err := inv.FormatInput()
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"ABC", "def", "ghi"}, formatted)
	assert.Equal(t, []interface{}{"abc", "def", "ghi"}, inv.Parameters)

	_, err = m.Request(1, "def", "ghi").FormatInput()
	require.Error(t, err)
	assert.ErrorIs(t, err, errUpper)
	assert.Contains(t, err.Error(), "eth_call: format param 0")
}

func TestFormatOutput(t *testing.T) {
	plain := method.NewModel(method.Literal("eth_chainId"), 0, nil, nil)
	v, err := plain.Request().FormatOutput("0x1")
	require.NoError(t, err)
	assert.Equal(t, "0x1", v)

	identity := method.NewModel(method.Literal("eth_chainId"), 0, nil, method.Identity)
	v, err = identity.Request().FormatOutput(42)
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	formatted := method.NewModel(method.Literal("web3_clientVersion"), 0, nil, upper)
	v, err = formatted.Request().FormatOutput("geth")
	require.NoError(t, err)
	assert.Equal(t, "GETH", v)

	_, err = formatted.Request().FormatOutput(nil)
	assert.ErrorIs(t, err, errUpper)
}

func TestInvocationJSON(t *testing.T) {
	m := method.NewModel(method.Literal("eth_getBlockByNumber"), 2, nil, nil)
	b, err := json.Marshal(m.Request("latest", true))
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"methodModel":{"rpcMethod":"eth_getBlockByNumber","parametersAmount":2},"parameters":["latest",true]}`,
		string(b))
	assert.True(t, strings.Index(string(b), "methodModel") < strings.Index(string(b), "parameters"))

	b, err = json.Marshal(&method.Invocation{Model: m})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"parameters":[]`)
}

func TestInvocationWithoutModel(t *testing.T) {
	var zero method.Invocation
	assert.Equal(t, "", zero.Method())
	assert.ErrorIs(t, zero.Validate(), method.ErrNoModel)

	inv := &method.Invocation{Parameters: []interface{}{"a"}}
	formatted, err := inv.FormatInput()
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"a"}, formatted)

	v, err := inv.FormatOutput("0x1")
	require.NoError(t, err)
	assert.Equal(t, "0x1", v)

	b, err := json.Marshal(&zero)
	require.NoError(t, err)
	assert.JSONEq(t, `{"methodModel":{"rpcMethod":"","parametersAmount":0},"parameters":[]}`, string(b))
}
