package method

const (
	Sign               = "eth_sign"
	SendTransaction    = "eth_sendTransaction"
	SendRawTransaction = "eth_sendRawTransaction"
)

// Model describes one JSON-RPC method. It is built once, usually during
// package initialization, and never mutated afterwards, so a *Model can be
// shared between goroutines.
type Model struct {
	RPCMethod        Name
	ParametersAmount int
	// InputFormatters[i] formats the i-th call parameter. Nil slots are
	// allowed and leave the parameter as is.
	InputFormatters []Formatter
	OutputFormatter Formatter
}

// NewModel stores its arguments as given, without validation or copying.
func NewModel(rpcMethod Name, parametersAmount int, inputFormatters []Formatter, outputFormatter Formatter) *Model {
	return &Model{
		RPCMethod:        rpcMethod,
		ParametersAmount: parametersAmount,
		InputFormatters:  inputFormatters,
		OutputFormatter:  outputFormatter,
	}
}

// Method returns the resolved JSON-RPC method name.
func (m *Model) Method() string {
	return m.RPCMethod.Resolve()
}

func (m *Model) String() string {
	return m.Method()
}

// Request pairs the model with the call-site arguments. Nothing is checked
// here; see Invocation.Validate.
func (m *Model) Request(args ...interface{}) *Invocation {
	if args == nil {
		args = []interface{}{}
	}
	return &Invocation{Model: m, Parameters: args}
}

func (m *Model) IsSign() bool {
	return m.Method() == Sign
}

func (m *Model) IsSendTransaction() bool {
	return m.Method() == SendTransaction
}

func (m *Model) IsSendRawTransaction() bool {
	return m.Method() == SendRawTransaction
}

// IsHash reports whether parameter looks like a hash, see IsHash.
func (m *Model) IsHash(parameter interface{}) bool {
	return IsHash(parameter)
}

// IsHash reports whether value is a string starting with "0x". Values of any
// other type are never hashes.
func IsHash(value interface{}) bool {
	s, ok := value.(string)
	return ok && len(s) >= 2 && s[:2] == "0x"
}
