package config

const (
	defaultKeypairPath    = "~/.config/solana/id.json"
	defaultNetwork        = "mainnet-beta"
	defaultDecimals       = 9
	defaultSolanaBinary   = "solana"
	defaultSPLTokenBinary = "spl-token"
	defaultMetadataBinary = "spl-token-metadata"
	defaultMetabossBinary = "metaboss"
	defaultScratchDir     = "/tmp"
	defaultHistoryDBPath  = "~/.local/share/tokensmith/history.db"
	defaultLogLevel       = "info"
	defaultLogFormat      = "console"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Wallet: Wallet{
			KeypairPath: defaultKeypairPath,
		},
		Network: Network{
			Default: defaultNetwork,
		},
		Token: Token{
			DefaultDecimals: defaultDecimals,
		},
		Tools: Tools{
			Solana:           defaultSolanaBinary,
			SPLToken:         defaultSPLTokenBinary,
			SPLTokenMetadata: defaultMetadataBinary,
			Metaboss:         defaultMetabossBinary,
		},
		Paths: Paths{
			ScratchDir: defaultScratchDir,
			HistoryDB:  defaultHistoryDBPath,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
