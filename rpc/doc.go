/*
RPC implementation in methodnode is based on
[github.com/ethereum/go-ethereum/rpc] that follows JSON-RPC 2.0.

# Example

request:

	{"jsonrpc": "2.0", "method": "method_describe", "params": ["eth_sendRawTransaction"], "id": 1}

response:

	{"jsonrpc":"2.0","id":1,"result":{"method":"eth_sendRawTransaction","parametersAmount":1,"sign":false,"sendTransaction":false,"sendRawTransaction":true}}

# Request

`method` in request is defined in `{namespace}_{methodName}` format where
  - `namespace` is defined when registering a struct by calling [RPC.RegisterName],
    `API List` below shows namespaces and corresponding structs
  - `methodName` is public methods of the struct in uncapitalized form

`params` are the parameters of the public method

# Response

`result` in response is the return values of the public method

# API List

`method` (configurable with `rpc.namespace`)
  - [github.com/DOIDFoundation/methodmodel/catalog.API]

`node`
  - [github.com/DOIDFoundation/methodmodel/node.API]
*/
package rpc
