package valueobjects

import (
	"errors"
	"unicode"
)

var (
	ErrInvalidCNPJ = errors.New("invalid cnpj")
)

// CNPJ é um value object para o cadastro nacional de pessoa jurídica.
// Guarda a forma original informada (com ou sem pontuação) e expõe os
// 14 dígitos normalizados para comparação.
type CNPJ struct {
	value  string
	digits string
}

// NewCNPJ cria um novo CNPJ validado. A validação exige 14 dígitos e
// rejeita sequências com todos os dígitos iguais.
func NewCNPJ(cnpj string) (CNPJ, error) {
	digits := sanitizeCNPJ(cnpj)

	if !isValidCNPJ(digits) {
		return CNPJ{}, ErrInvalidCNPJ
	}

	return CNPJ{value: cnpj, digits: digits}, nil
}

// String retorna o valor como informado no cadastro
func (c CNPJ) String() string {
	return c.value
}

// Digits retorna somente os 14 dígitos
func (c CNPJ) Digits() string {
	return c.digits
}

// Equals compara dois CNPJs pelos dígitos normalizados
func (c CNPJ) Equals(other CNPJ) bool {
	return c.digits == other.digits
}

// sanitizeCNPJ remove qualquer coisa que não seja dígito
func sanitizeCNPJ(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsDigit(r) {
			out = append(out, r)
		}
	}
	return string(out)
}

func isValidCNPJ(digits string) bool {
	if len(digits) != 14 {
		return false
	}

	allEq := true
	for i := 1; i < 14; i++ {
		if digits[i] != digits[0] {
			allEq = false
			break
		}
	}
	return !allEq
}
