package events

type CasinoBetResolved struct {
	EventID     string `json:"event_id"`
	ChainID     uint64 `json:"chain_id"`
	Game        string `json:"game"`
	BetID       string `json:"bet_id"` // id do bet no subgraph
	BetTxnHash  string `json:"bet_txn_hash"`
	RollTxnHash string `json:"roll_txn_hash,omitempty"`
	IsWin       bool   `json:"is_win"`
	PayoutWei   string `json:"payout_wei"`
	TsUnixMs    int64  `json:"ts_unix_ms"`
}
