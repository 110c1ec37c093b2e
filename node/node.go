package node

import (
	"github.com/DOIDFoundation/methodmodel/catalog"
	"github.com/DOIDFoundation/methodmodel/rpc"
	"github.com/cometbft/cometbft/libs/log"
	"github.com/cometbft/cometbft/libs/service"
)

//------------------------------------------------------------------------------

// Node serves the method catalog over JSON-RPC.
type Node struct {
	service.BaseService
	config *rpc.Config
	rpc    *rpc.RPC
}

// Option sets a parameter for the node.
type Option func(*Node)

// WithConfig replaces the RPC configuration read from viper.
func WithConfig(config *rpc.Config) Option {
	return func(n *Node) {
		n.config = config
	}
}

// NewNode returns a new, ready to go Node.
func NewNode(logger log.Logger, options ...Option) (*Node, error) {
	node := &Node{
		config: rpc.ConfigFromViper(),
	}
	node.BaseService = *service.NewBaseService(logger.With("module", "node"), "Node", node)

	for _, option := range options {
		option(node)
	}
	node.rpc = rpc.NewRPC(logger, node.config)

	RegisterAPI(node)
	catalog.RegisterAPI(node.rpc, node.config.Namespace)

	return node, nil
}

// OnStart starts the Node. It implements service.Service.
func (n *Node) OnStart() error {
	n.Logger.Info("serving method catalog", "namespace", n.config.Namespace, "methods", len(catalog.Names()))
	return n.rpc.Start()
}

// OnStop stops the Node. It implements service.Service.
func (n *Node) OnStop() {
	if err := n.rpc.Stop(); err != nil {
		n.Logger.Error("failed to stop rpc", "err", err)
	}
}

// Namespace returns the namespace the catalog is served under.
func (n *Node) Namespace() string {
	return n.config.Namespace
}

func (n *Node) RPC() *rpc.RPC {
	return n.rpc
}
