package catalog

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/DOIDFoundation/methodmodel/method"
)

// ErrUnknownMethod is returned by Find for names missing from the catalog.
var ErrUnknownMethod = errors.New("unknown method")

var (
	mu     sync.RWMutex
	models = make(map[string]*method.Model)
)

// Register adds m to the catalog under its resolved name. It panics if the
// name is empty or already taken.
func Register(m *method.Model) {
	name := m.Method()
	if name == "" {
		panic("catalog: empty method name")
	}
	mu.Lock()
	defer mu.Unlock()
	if _, ok := models[name]; ok {
		panic(fmt.Sprintf("catalog: method %s registered twice", name))
	}
	models[name] = m
}

func register(name string, parametersAmount int) {
	Register(method.NewModel(method.Literal(name), parametersAmount, make([]method.Formatter, parametersAmount), method.Identity))
}

func Lookup(name string) (*method.Model, bool) {
	mu.RLock()
	defer mu.RUnlock()
	m, ok := models[name]
	return m, ok
}

// Find is Lookup returning ErrUnknownMethod for missing names.
func Find(name string) (*method.Model, error) {
	m, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMethod, name)
	}
	return m, nil
}

// Names returns the registered method names in lexical order.
func Names() []string {
	mu.RLock()
	names := make([]string, 0, len(models))
	for name := range models {
		names = append(names, name)
	}
	mu.RUnlock()
	sort.Strings(names)
	return names
}

// All returns the registered models ordered by name.
func All() []*method.Model {
	names := Names()
	ret := make([]*method.Model, 0, len(names))
	mu.RLock()
	defer mu.RUnlock()
	for _, name := range names {
		if m, ok := models[name]; ok {
			ret = append(ret, m)
		}
	}
	return ret
}

type Classification struct {
	Method             string `json:"method"`
	ParametersAmount   int    `json:"parametersAmount"`
	Sign               bool   `json:"sign"`
	SendTransaction    bool   `json:"sendTransaction"`
	SendRawTransaction bool   `json:"sendRawTransaction"`
}

func Classify(m *method.Model) Classification {
	return Classification{
		Method:             m.Method(),
		ParametersAmount:   m.ParametersAmount,
		Sign:               m.IsSign(),
		SendTransaction:    m.IsSendTransaction(),
		SendRawTransaction: m.IsSendRawTransaction(),
	}
}
