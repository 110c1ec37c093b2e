/*
Package method describes JSON-RPC methods.

A [Model] pairs a method name with the number of parameters the method takes,
one formatter per parameter and a formatter for the result. Models carry no
runtime state; a client builds them once and binds them to call arguments with
[Model.Request]:

	getBalance := method.NewModel(method.Literal("eth_getBalance"), 2, nil, nil)
	inv := getBalance.Request("0x9a5de5673bb089924da48ca6fb3778766667dfe1", "latest")

The resulting [Invocation] serializes as

	{"methodModel":{"rpcMethod":"eth_getBalance","parametersAmount":2},"parameters":["0x9a5d...dfe1","latest"]}

Sending the invocation is left to the caller.
*/
package method
