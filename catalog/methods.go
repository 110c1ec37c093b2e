package catalog

import "github.com/DOIDFoundation/methodmodel/method"

func init() {
	// eth
	register("eth_protocolVersion", 0)
	register("eth_syncing", 0)
	register("eth_coinbase", 0)
	register("eth_mining", 0)
	register("eth_hashrate", 0)
	register("eth_gasPrice", 0)
	register("eth_accounts", 0)
	register("eth_blockNumber", 0)
	register("eth_chainId", 0)
	register("eth_getBalance", 2)
	register("eth_getStorageAt", 3)
	register("eth_getCode", 2)
	register("eth_getTransactionCount", 2)
	register("eth_getBlockByNumber", 2)
	register("eth_getBlockByHash", 2)
	register("eth_getBlockTransactionCountByNumber", 1)
	register("eth_getBlockTransactionCountByHash", 1)
	register("eth_getUncleByBlockNumberAndIndex", 2)
	register("eth_getUncleByBlockHashAndIndex", 2)
	register("eth_getUncleCountByBlockNumber", 1)
	register("eth_getUncleCountByBlockHash", 1)
	register("eth_getTransactionByHash", 1)
	register("eth_getTransactionByBlockNumberAndIndex", 2)
	register("eth_getTransactionByBlockHashAndIndex", 2)
	register("eth_getTransactionReceipt", 1)
	register("eth_getLogs", 1)
	register("eth_call", 2)
	register("eth_estimateGas", 1)
	register("eth_getWork", 0)
	register("eth_submitWork", 3)
	register(method.Sign, 2)
	register("eth_signTransaction", 1)
	register(method.SendTransaction, 1)
	register(method.SendRawTransaction, 1)

	// net
	register("net_version", 0)
	register("net_listening", 0)
	register("net_peerCount", 0)

	// web3
	register("web3_clientVersion", 0)
	register("web3_sha3", 1)

	// personal
	register("personal_newAccount", 1)
	register("personal_listAccounts", 0)
	register("personal_lockAccount", 1)
	register("personal_unlockAccount", 3)
	register("personal_importRawKey", 2)
	register("personal_sendTransaction", 2)
	register("personal_signTransaction", 2)
	register("personal_sign", 3)
	register("personal_ecRecover", 2)
}
