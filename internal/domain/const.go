package domain

const (
	// Gateway constants
	DEFAULT_IPFS_GATEWAY    = "https://ipfs.io"
	DEFAULT_ARWEAVE_GATEWAY = "https://arweave.net"

	// Solana constants
	LAMPORTS_PER_SOL = 1_000_000_000

	// FALLBACK_TOTAL_SUPPLY stands in when the marketplace omits or zeroes
	// the collection supply in its stats response
	FALLBACK_TOTAL_SUPPLY = 10_000

	// Notification link bases
	ITEM_URL_BASE    = "https://www.tensor.trade/item"
	WALLET_URL_BASE  = "https://www.tensor.trade/portfolio"
	TX_EXPLORER_BASE = "https://solscan.io/tx"
)
