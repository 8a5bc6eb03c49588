package casino

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Wallet é a fronteira com o provedor de carteira/transação do chamador.
// O serviço usa a implementação EVM de internal/wallet; os testes usam mock.
type Wallet interface {
	// ChainID identifica a rede ativa. Erro se não houver rede.
	ChainID(ctx context.Context) (uint64, error)
	// Address é a conta que assina as apostas (e recebe o payout por padrão).
	Address(ctx context.Context) (common.Address, error)
	// ReadContract executa um eth_call no contrato indicado.
	ReadContract(ctx context.Context, to common.Address, data []byte) ([]byte, error)
	// SendTransaction assina e envia a transação, devolvendo o hash.
	SendTransaction(ctx context.Context, to common.Address, value *big.Int, data []byte) (common.Hash, error)
}

// BetRequirements é o que o contrato exige antes de aceitar a aposta.
// Buscado fresco a cada colocação, nunca persistido.
type BetRequirements struct {
	Allowed      bool     // token liberado pra apostas agora
	MaxBetAmount *big.Int // teto por aposta, na menor unidade do token
	MaxBetCount  int      // teto de apostas por transação
}
