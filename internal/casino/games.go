package casino

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Game identifica o jogo no contrato e no subgraph.
type Game string

const (
	GameCoinToss Game = "coin-toss"
	GameDice     Game = "dice"
	GameRoulette Game = "roulette"
)

// CoinFace é o lado escolhido no cara-ou-coroa.
type CoinFace string

const (
	CoinFaceHeads CoinFace = "HEADS"
	CoinFaceTails CoinFace = "TAILS"
)

const (
	// Limites de input por jogo. O contrato valida de novo on-chain,
	// mas barramos aqui antes de gastar gás.
	DiceCapMin = 1
	DiceCapMax = 99

	RouletteNumberMin = 0
	RouletteNumberMax = 36
)

// Máximo de apostas por transação, por jogo. O contrato também devolve um
// máximo próprio via getBetRequirements; vale o menor dos dois.
var maxBetCountByGame = map[Game]int{
	GameCoinToss: 100,
	GameDice:     100,
	GameRoulette: 50,
}

func ParseGame(s string) (Game, error) {
	switch Game(strings.ToLower(s)) {
	case GameCoinToss:
		return GameCoinToss, nil
	case GameDice:
		return GameDice, nil
	case GameRoulette:
		return GameRoulette, nil
	}
	return "", fmt.Errorf("unknown game %q (expected coin-toss, dice or roulette)", s)
}

func MaxBetCount(g Game) int {
	if n, ok := maxBetCountByGame[g]; ok {
		return n
	}
	return 1
}

// EncodeCoinFace converte o lado escolhido pro input numérico do contrato
// (TAILS=0, HEADS=1).
func EncodeCoinFace(face CoinFace) *big.Int {
	if face == CoinFaceHeads {
		return big.NewInt(1)
	}
	return big.NewInt(0)
}

// DecodeCoinFace faz o caminho inverso, a partir do input cru do subgraph.
func DecodeCoinFace(encoded string) (CoinFace, error) {
	switch encoded {
	case "0":
		return CoinFaceTails, nil
	case "1":
		return CoinFaceHeads, nil
	}
	return "", fmt.Errorf("invalid encoded coin face %q", encoded)
}

// EncodeDiceCap: o input do dice é o próprio número-teto escolhido.
func EncodeDiceCap(capNumber int) *big.Int {
	return big.NewInt(int64(capNumber))
}

func DecodeDiceCap(encoded string) (int, error) {
	n, err := strconv.Atoi(encoded)
	if err != nil || n < DiceCapMin || n > DiceCapMax {
		return 0, fmt.Errorf("invalid encoded dice number %q", encoded)
	}
	return n, nil
}

// EncodeRouletteNumbers empacota os números escolhidos num bitmask:
// bit N ligado = número N apostado.
func EncodeRouletteNumbers(numbers []int) *big.Int {
	mask := new(big.Int)
	for _, n := range numbers {
		mask.SetBit(mask, n, 1)
	}
	return mask
}

// DecodeRouletteNumbers desfaz o bitmask vindo do subgraph.
func DecodeRouletteNumbers(encoded string) ([]int, error) {
	mask, ok := new(big.Int).SetString(encoded, 10)
	if !ok || mask.Sign() < 0 {
		return nil, fmt.Errorf("invalid encoded roulette mask %q", encoded)
	}
	var numbers []int
	for n := RouletteNumberMin; n <= RouletteNumberMax; n++ {
		if mask.Bit(n) == 1 {
			numbers = append(numbers, n)
		}
	}
	return numbers, nil
}
