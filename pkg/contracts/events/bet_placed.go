package events

type CasinoBetPlaced struct {
	EventID     string `json:"event_id"` // uuid gerado no publish
	ChainID     uint64 `json:"chain_id"`
	Game        string `json:"game"` // coin-toss | dice | roulette
	Bettor      string `json:"bettor"`
	TokenSymbol string `json:"token_symbol"`
	AmountWei   string `json:"amount_wei"` // por aposta, na menor unidade do token
	BetCount    int    `json:"bet_count"`
	BetTxnHash  string `json:"bet_txn_hash"`
	TsUnixMs    int64  `json:"ts_unix_ms"`
}
