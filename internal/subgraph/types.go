package subgraph

// Bet é o registro cru indexado pelo subgraph, como chega do GraphQL.
// Valores monetários vêm como inteiros-em-string na menor unidade do token.
type Bet struct {
	ID               string   `json:"id"`
	Bettor           string   `json:"bettor"`
	Game             string   `json:"game"`
	Token            BetToken `json:"token"`
	Amount           string   `json:"amount"`        // por aposta
	TotalAmount      string   `json:"totalAmount"`   // amount * betCount
	BetCount         int      `json:"betCount,string"`
	StopGain         string   `json:"stopGain"`
	StopLoss         string   `json:"stopLoss"`
	EncodedInput     string   `json:"input"`  // input do jogo, codificado
	EncodedRolled    []string `json:"rolled"` // resultados, um por aposta
	BetTxnHash       string   `json:"betTxnHash"`
	RollTxnHash      string   `json:"rollTxnHash"` // vazio enquanto pendente
	Resolved         bool     `json:"resolved"`
	Payout           string   `json:"payout"`
	PayoutMultiplier string   `json:"payoutMultiplier"`
	BlockTimestamp   string   `json:"blockTimestamp"`
}
