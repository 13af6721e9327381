package service

import (
	"strings"

	"github.com/avc-dev/url-registry/internal/model"
	"github.com/google/uuid"
)

const (
	// CodeLength is the default candidate length
	CodeLength = 8
	// maxCodeLength is the number of hex digits in a UUID
	maxCodeLength = 32
)

// CodeGenerator truncates random (version 4) UUIDs. It has no mutable
// state and is safe for concurrent use.
type CodeGenerator struct {
	length int
}

// NewCodeGenerator falls back to CodeLength for non-positive lengths and
// caps length at the number of hex digits in a UUID
func NewCodeGenerator(length int) *CodeGenerator {
	if length <= 0 {
		length = CodeLength
	}
	if length > maxCodeLength {
		length = maxCodeLength
	}
	return &CodeGenerator{length: length}
}

// GenerateCode returns the first length hex digits of a fresh UUIDv4
func (g *CodeGenerator) GenerateCode() model.Code {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	return model.Code(hex[:g.length])
}
