package method

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Invocation is a method model bound to the arguments of one call. A nil
// Model behaves as a method named "" without parameters or formatters.
type Invocation struct {
	Model      *Model
	Parameters []interface{}
}

func (inv *Invocation) model() *Model {
	if inv.Model == nil {
		return &Model{}
	}
	return inv.Model
}

func (inv *Invocation) Method() string {
	return inv.model().Method()
}

// Validate checks the number of parameters against the model.
func (inv *Invocation) Validate() error {
	if inv.Model == nil {
		return ErrNoModel
	}
	if len(inv.Parameters) != inv.Model.ParametersAmount {
		return errors.Wrapf(ErrInvalidParamsAmount, "%s: expected %d, got %d",
			inv.Method(), inv.Model.ParametersAmount, len(inv.Parameters))
	}
	return nil
}

// FormatInput returns the parameters passed through the model's input
// formatters. Parameters without a formatter are returned unchanged.
func (inv *Invocation) FormatInput() ([]interface{}, error) {
	formatted := make([]interface{}, len(inv.Parameters))
	for i, param := range inv.Parameters {
		var f Formatter
		if inputs := inv.model().InputFormatters; i < len(inputs) {
			f = inputs[i]
		}
		v, err := f.apply(param)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: format param %d", inv.Method(), i)
		}
		formatted[i] = v
	}
	return formatted, nil
}

// FormatOutput passes a raw result through the model's output formatter.
func (inv *Invocation) FormatOutput(result interface{}) (interface{}, error) {
	v, err := inv.model().OutputFormatter.apply(result)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: format result", inv.Method())
	}
	return v, nil
}

type modelJSON struct {
	RPCMethod        string `json:"rpcMethod"`
	ParametersAmount int    `json:"parametersAmount"`
}

type invocationJSON struct {
	MethodModel modelJSON     `json:"methodModel"`
	Parameters  []interface{} `json:"parameters"`
}

func (inv *Invocation) MarshalJSON() ([]byte, error) {
	params := inv.Parameters
	if params == nil {
		params = []interface{}{}
	}
	return json.Marshal(invocationJSON{
		MethodModel: modelJSON{
			RPCMethod:        inv.Method(),
			ParametersAmount: inv.model().ParametersAmount,
		},
		Parameters: params,
	})
}
