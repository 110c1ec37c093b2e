package catalog

import (
	"github.com/DOIDFoundation/methodmodel/method"
	"github.com/DOIDFoundation/methodmodel/rpc"
	"github.com/pkg/errors"
)

// API serves the catalog over JSON-RPC.
type API struct{}

func (api *API) List() []string {
	return Names()
}

func (api *API) Describe(name string) (*Classification, error) {
	m, err := Find(name)
	if err != nil {
		return nil, err
	}
	c := Classify(m)
	return &c, nil
}

// Request binds params to the named method, checks their number and returns
// them passed through the method's input formatters.
func (api *API) Request(name string, params []interface{}) (*method.Invocation, error) {
	m, err := Find(name)
	if err != nil {
		return nil, err
	}
	inv := m.Request(params...)
	if err := inv.Validate(); err != nil {
		return nil, err
	}
	formatted, err := inv.FormatInput()
	if err != nil {
		return nil, errors.WithMessage(err, "params")
	}
	return &method.Invocation{Model: m, Parameters: formatted}, nil
}

func (api *API) IsHash(value interface{}) bool {
	return method.IsHash(value)
}

func RegisterAPI(r *rpc.RPC, namespace string) {
	r.RegisterName(namespace, &API{})
}
