package flags

const (
	Home  = "home"
	Trace = "trace"

	Log_Level = "log.level"

	RPC_Addr      = "rpc.addr"
	RPC_Namespace = "rpc.namespace"
)
