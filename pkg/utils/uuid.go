package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateSessionID gera o identificador de sessão do dashboard
func GenerateSessionID() (string, error) {
	return gonanoid.Generate(characters, 16)
}
