package casino

import (
	"fmt"
	"regexp"
	"strings"
)

// Validação declarativa dos campos das actions: um conjunto de regras por
// campo, independente de estado de rede. Nada aqui toca o nó ou o subgraph.

var (
	addressRe = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
	txHashRe  = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)
)

// FieldError aponta qual campo violou qual restrição.
type FieldError struct {
	Field  string
	Detail string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Detail)
}

// ValidationError agrega as violações de um request.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Error()
	}
	return "invalid input: " + strings.Join(msgs, "; ")
}

// Rule valida um campo já decodificado do request.
type Rule func() *FieldError

// Validate roda o conjunto de regras e devolve nil ou o agregado de
// violações, na ordem declarada.
func Validate(rules ...Rule) error {
	var fields []FieldError
	for _, r := range rules {
		if fe := r(); fe != nil {
			fields = append(fields, *fe)
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

// RequireAddress aceita endereço hex 0x de 40 dígitos. Vazio passa quando
// optional=true (campos como receiver são opcionais).
func RequireAddress(field, value string, optional bool) Rule {
	return func() *FieldError {
		if value == "" {
			if optional {
				return nil
			}
			return &FieldError{field, "required"}
		}
		if !addressRe.MatchString(value) {
			return &FieldError{field, fmt.Sprintf("%q is not a 0x-prefixed 40-hex-digit address", value)}
		}
		return nil
	}
}

// RequireTxHash aceita hash de transação hex 0x de 64 dígitos.
func RequireTxHash(field, value string) Rule {
	return func() *FieldError {
		if value == "" {
			return &FieldError{field, "required"}
		}
		if !txHashRe.MatchString(value) {
			return &FieldError{field, fmt.Sprintf("%q is not a 0x-prefixed 64-hex-digit transaction hash", value)}
		}
		return nil
	}
}

// RequireAmount exige uma string decimal estritamente positiva.
func RequireAmount(field, value string) Rule {
	return func() *FieldError {
		if value == "" {
			return &FieldError{field, "required"}
		}
		if strings.HasPrefix(value, "-") || strings.TrimLeft(value, "0.") == "" {
			return &FieldError{field, fmt.Sprintf("%q must be a positive decimal amount", value)}
		}
		return nil
	}
}

// OptionalAmount valida limiares opcionais (stopGain/stopLoss): vazio passa,
// preenchido precisa ser decimal positivo.
func OptionalAmount(field, value string) Rule {
	return func() *FieldError {
		if value == "" {
			return nil
		}
		return RequireAmount(field, value)()
	}
}

// RequireBetCount limita a quantidade de apostas ao máximo do jogo.
// Zero significa "não informado" e vira 1 na action.
func RequireBetCount(field string, value int, game Game) Rule {
	return func() *FieldError {
		max := MaxBetCount(game)
		if value < 0 || value > max {
			return &FieldError{field, fmt.Sprintf("%d is out of range [1, %d] for %s", value, max, game)}
		}
		return nil
	}
}

// RequireCoinFace aceita só HEADS ou TAILS.
func RequireCoinFace(field, value string) Rule {
	return func() *FieldError {
		switch CoinFace(value) {
		case CoinFaceHeads, CoinFaceTails:
			return nil
		}
		return &FieldError{field, fmt.Sprintf("%q must be HEADS or TAILS", value)}
	}
}

// RequireDiceCap aceita o número-teto dentro da faixa do jogo.
func RequireDiceCap(field string, value int) Rule {
	return func() *FieldError {
		if value < DiceCapMin || value > DiceCapMax {
			return &FieldError{field, fmt.Sprintf("%d is out of range [%d, %d]", value, DiceCapMin, DiceCapMax)}
		}
		return nil
	}
}

// RequireRouletteNumbers valida cardinalidade e faixa da lista de números.
func RequireRouletteNumbers(field string, numbers []int) Rule {
	return func() *FieldError {
		if len(numbers) == 0 {
			return &FieldError{field, "at least one number is required"}
		}
		if len(numbers) > RouletteNumberMax {
			return &FieldError{field, fmt.Sprintf("too many numbers (%d), roulette takes at most %d", len(numbers), RouletteNumberMax)}
		}
		seen := map[int]bool{}
		for _, n := range numbers {
			if n < RouletteNumberMin || n > RouletteNumberMax {
				return &FieldError{field, fmt.Sprintf("number %d is out of range [%d, %d]", n, RouletteNumberMin, RouletteNumberMax)}
			}
			if seen[n] {
				return &FieldError{field, fmt.Sprintf("number %d repeated", n)}
			}
			seen[n] = true
		}
		return nil
	}
}
