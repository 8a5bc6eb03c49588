package topics

const (
	// Apostas on-chain
	CasinoBetPlaced   = "casino_bet_placed"
	CasinoBetResolved = "casino_bet_resolved"
)
