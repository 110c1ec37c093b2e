package rpc

import (
	"errors"
	"net"
	"net/http"

	"github.com/cometbft/cometbft/libs/log"
	"github.com/cometbft/cometbft/libs/service"
	ethlog "github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/rpc"
)

// ErrNotStarted is returned by Attach before the server is started.
var ErrNotStarted = errors.New("rpc server not started")

type RPC struct {
	service.BaseService
	config    *Config
	apis      []rpc.API // List of APIs served once started
	rpcServer *rpc.Server
	server    *http.Server
	listener  net.Listener
}

func NewRPC(logger log.Logger, config *Config) *RPC {
	if config == nil {
		config = &DefaultConfig
	}
	rpc := &RPC{config: config}
	rpc.BaseService = *service.NewBaseService(logger.With("module", "rpc"), "RPC", rpc)
	return rpc
}

func (r *RPC) OnStart() error {
	ethlog.Root().SetHandler(
		ethlog.FuncHandler(func(record *ethlog.Record) error {
			fn := r.Logger.Info
			switch record.Lvl {
			case ethlog.LvlTrace, ethlog.LvlDebug:
				fn = r.Logger.Debug
			case ethlog.LvlError, ethlog.LvlCrit:
				fn = r.Logger.Error
			}
			fn(record.Msg, record.Ctx...)
			return nil
		}))

	listenAddr := r.config.ListenAddress
	// Initialize the server.
	rpcServer := rpc.NewServer()

	// Register RPC services.
	for _, rpcAPI := range r.apis {
		if err := rpcServer.RegisterName(rpcAPI.Namespace, rpcAPI.Service); err != nil {
			return err
		}
	}

	r.server = &http.Server{
		Handler:           rpcServer,
		ReadTimeout:       r.config.HTTPTimeouts.ReadTimeout,
		ReadHeaderTimeout: r.config.HTTPTimeouts.ReadHeaderTimeout,
		WriteTimeout:      r.config.HTTPTimeouts.WriteTimeout,
		IdleTimeout:       r.config.HTTPTimeouts.IdleTimeout,
	}

	r.Logger.Debug("try listening", "listenAddr", listenAddr)
	// Start the server.
	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		rpcServer.Stop()
		return err
	}
	r.rpcServer = rpcServer
	r.listener = listener
	r.Logger.Info("listening", "listenAddr", listener.Addr().String())
	go r.server.Serve(listener)
	return nil
}

func (r *RPC) OnStop() {
	r.server.Close()
	r.rpcServer.Stop()
}

// Addr returns the address the server listens on, nil before start.
func (r *RPC) Addr() net.Addr {
	if r.listener == nil {
		return nil
	}
	return r.listener.Addr()
}

// Attach creates an in-process client of the running server.
func (r *RPC) Attach() (*rpc.Client, error) {
	if !r.IsRunning() {
		return nil, ErrNotStarted
	}
	return rpc.DialInProc(r.rpcServer), nil
}

// RegisterName adds receiver's methods under namespace name. It has to be
// called before Start.
func (r *RPC) RegisterName(name string, receiver interface{}) {
	r.apis = append(r.apis, rpc.API{Namespace: name, Service: receiver})
}

// Namespaces returns the namespaces registered so far, in registration order.
func (r *RPC) Namespaces() []string {
	names := make([]string, 0, len(r.apis))
	for _, api := range r.apis {
		names = append(names, api.Namespace)
	}
	return names
}
