// Package memory provides the public API for the in-memory Catalog backend.
// This package exposes the factory function and its options while keeping
// implementation details internal.
package memory

import (
	"go.uber.org/zap"

	"github.com/mesh-intelligence/catalog/internal/memory"
	"github.com/mesh-intelligence/catalog/pkg/types"
)

// Option configures a Catalog created by NewCatalog.
type Option = memory.Option

// WithLogger sets the logger used for lifecycle events.
func WithLogger(l *zap.Logger) Option {
	return memory.WithLogger(l)
}

// WithSeed replaces the built-in dataset loaded at startup and on Reset.
func WithSeed(products []types.Product) Option {
	return memory.WithSeed(products)
}

// NewCatalog creates an in-memory Catalog loaded with the seed dataset.
//
// Example:
//
//	cat, err := memory.NewCatalog()
//	if err != nil {
//	    return err
//	}
//	p, err := cat.AddParam(0, 1, types.ParamInput{Type: &t2, Min: &lo})
func NewCatalog(opts ...Option) (types.Catalog, error) {
	s, err := memory.New(opts...)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Seed returns a copy of the built-in dataset.
func Seed() []types.Product {
	return memory.SeedProducts()
}
