package rpc

import (
	"github.com/DOIDFoundation/methodmodel/flags"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/spf13/viper"
)

// Defines the configuration options for the RPC server
type Config struct {
	// TCP address for the RPC server to listen on
	ListenAddress string `mapstructure:"addr"`
	// Namespace the method catalog is served under
	Namespace string `mapstructure:"namespace"`
	// HTTPTimeouts allows for customization of the timeout values used by the HTTP RPC
	// interface.
	HTTPTimeouts rpc.HTTPTimeouts
}

// DefaultConfig returns a default configuration for the RPC server
var DefaultConfig = Config{
	ListenAddress: "127.0.0.1:26657",
	Namespace:     "method",
	HTTPTimeouts:  rpc.DefaultHTTPTimeouts,
}

func init() {
	viper.SetDefault(flags.RPC_Addr, DefaultConfig.ListenAddress)
	viper.SetDefault(flags.RPC_Namespace, DefaultConfig.Namespace)
}

// ConfigFromViper returns DefaultConfig overridden by the rpc.* viper keys.
func ConfigFromViper() *Config {
	config := DefaultConfig
	if addr := viper.GetString(flags.RPC_Addr); addr != "" {
		config.ListenAddress = addr
	}
	if namespace := viper.GetString(flags.RPC_Namespace); namespace != "" {
		config.Namespace = namespace
	}
	return &config
}
