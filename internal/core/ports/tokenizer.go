package ports

import "go.trai.ch/xpersist/internal/core/domain"

// Tokenizer derives a fingerprint from a computation identity and its call
// arguments. It must be deterministic: identical logical inputs produce the
// same fingerprint, different inputs a different one.
//
//go:generate go run go.uber.org/mock/mockgen -source=tokenizer.go -destination=mocks/mock_tokenizer.go -package=mocks
type Tokenizer interface {
	Tokenize(identity string, args []any, kwargs map[string]any) (domain.Fingerprint, error)
}
