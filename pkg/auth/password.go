package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// PasswordCost é o fator de custo do bcrypt
const PasswordCost = 12

// MaxPasswordLength é o limite do bcrypt em bytes
const MaxPasswordLength = 72

var (
	ErrEmptyPassword   = errors.New("senha não pode ser vazia")
	ErrPasswordTooLong = errors.New("senha deve ter no máximo 72 bytes")
)

// HashPassword gera o hash bcrypt da senha (salt aleatório a cada chamada)
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	if len(password) > MaxPasswordLength {
		return "", ErrPasswordTooLong
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword verifica se a senha corresponde ao hash armazenado
func CheckPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
