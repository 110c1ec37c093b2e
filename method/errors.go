package method

import "errors"

var (
	// ErrInvalidParamsAmount is returned by Invocation.Validate when the
	// number of parameters differs from Model.ParametersAmount.
	ErrInvalidParamsAmount = errors.New("invalid amount of parameters")
	// ErrNoModel is returned by Invocation.Validate for an invocation that
	// is not bound to a Model.
	ErrNoModel = errors.New("invocation has no method model")
)
