package node

import "github.com/DOIDFoundation/methodmodel/catalog"

// Status is the result of node_status.
type Status struct {
	Running    bool     `json:"running"`
	Namespace  string   `json:"namespace"`
	Methods    int      `json:"methods"`
	Namespaces []string `json:"namespaces"`
}

type API struct {
	node *Node
}

func (api *API) Status() *Status {
	return &Status{
		Running:    api.node.IsRunning(),
		Namespace:  api.node.Namespace(),
		Methods:    len(catalog.Names()),
		Namespaces: api.node.rpc.Namespaces(),
	}
}

func RegisterAPI(node *Node) {
	node.rpc.RegisterName("node", &API{node: node})
}
