package id

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	length   = 16
)

// Generator creates opaque IDs suitable for external references.
type Generator interface {
	NewID() (string, error)
}

type NanoGenerator struct{}

func NewNanoGenerator() *NanoGenerator {
	return &NanoGenerator{}
}

func (g *NanoGenerator) NewID() (string, error) {
	value, err := gonanoid.Generate(alphabet, length)
	if err != nil {
		return "", fmt.Errorf("generate nanoid: %w", err)
	}
	return value, nil
}
