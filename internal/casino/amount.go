package casino

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// ToSmallestUnit converte o valor decimal informado pelo usuário pra menor
// unidade do token (wei-equivalente), usando a precisão declarada.
// Resultado zero ou negativo é rejeitado antes de qualquer chamada de rede.
func ToSmallestUnit(amount string, decimals uint8) (*big.Int, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("invalid bet amount %q: %w", amount, err)
	}

	// Shift aplica a precisão; o que sobrar abaixo de 1 wei é truncado.
	wei := d.Shift(int32(decimals)).Truncate(0).BigInt()
	if wei.Sign() <= 0 {
		return nil, fmt.Errorf("bet amount %q must be positive in the token smallest unit", amount)
	}
	return wei, nil
}

// FormatAmount faz o caminho inverso, pra exibição.
func FormatAmount(wei *big.Int, decimals uint8) string {
	if wei == nil {
		return "0"
	}
	return decimal.NewFromBigInt(wei, -int32(decimals)).String()
}
