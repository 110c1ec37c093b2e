package method

// Formatter maps a value to another form, e.g. a call parameter to its wire
// form or a raw result to its decoded form.
type Formatter func(value interface{}) (interface{}, error)

// Identity returns value unchanged.
func Identity(value interface{}) (interface{}, error) {
	return value, nil
}

func (f Formatter) apply(value interface{}) (interface{}, error) {
	if f == nil {
		return value, nil
	}
	return f(value)
}
