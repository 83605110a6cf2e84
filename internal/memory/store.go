// Package memory implements the in-memory Catalog backend: the product,
// attribute and param collections, their identifier counters, and the
// built-in seed dataset they are loaded from.
package memory

import (
	"sync"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/catalog/pkg/types"
)

// Compile-time check that Store satisfies the Catalog interface.
var _ types.Catalog = (*Store)(nil)

// Store is an in-memory Catalog. A single RWMutex guards the collections
// and the allocator; every read-then-write runs under the write lock.
type Store struct {
	mu       sync.RWMutex
	products map[int]*types.Product
	order    []int // product IDs in creation order
	ids      *idAllocator

	seed   []types.Product
	logger *zap.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for lifecycle events. The default is a
// no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSeed replaces the built-in dataset loaded at startup and on Reset.
// The slice is deep-copied.
func WithSeed(products []types.Product) Option {
	return func(s *Store) {
		s.seed = cloneProducts(products)
	}
}

// New creates a Store loaded with the seed dataset.
func New(opts ...Option) (*Store, error) {
	s := &Store{
		seed:   seedProducts,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	st, err := buildState(s.seed)
	if err != nil {
		return nil, err
	}
	s.install(st)
	return s, nil
}

// install swaps in a fully built state. The caller holds s.mu or owns s.
func (s *Store) install(st *state) {
	s.products = st.products
	s.order = st.order
	s.ids = st.ids
}

// Reset replaces the whole catalog with a fresh copy of the seed dataset and
// recomputes all counters. The new state is built before the old one is
// dropped, so a failure leaves the catalog as it was.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := buildState(s.seed)
	if err != nil {
		s.logger.Error("catalog reset failed", zap.Error(err))
		return err
	}
	s.install(st)
	s.logger.Info("catalog reset to seed", zap.Int("products", len(st.order)))
	return nil
}

// ListProducts returns every product in creation order.
func (s *Store) ListProducts() []types.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]types.Product, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, cloneProduct(*s.products[id]))
	}
	return out
}

// GetProduct returns the product with the given ID.
func (s *Store) GetProduct(productID int) (types.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, err := s.product(productID)
	if err != nil {
		return types.Product{}, err
	}
	return cloneProduct(*p), nil
}

// CreateProduct stores a new product with no attributes.
func (s *Store) CreateProduct(in types.ProductInput) (types.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := &types.Product{
		ProductID:  s.ids.nextProductID(),
		Prefix:     in.Prefix,
		Type:       in.Type,
		CfgType:    in.CfgType,
		SortOrder:  in.SortOrder,
		Attributes: []types.Attribute{},
	}
	s.products[p.ProductID] = p
	s.order = append(s.order, p.ProductID)
	s.logger.Debug("product created", zap.Int("product_id", p.ProductID))
	return cloneProduct(*p), nil
}

// product looks up a product. The caller holds s.mu.
func (s *Store) product(productID int) (*types.Product, error) {
	p, ok := s.products[productID]
	if !ok {
		return nil, types.NotFound(types.EntityProduct, productID)
	}
	return p, nil
}

// attribute looks up an attribute under its product. The caller holds s.mu.
func (s *Store) attribute(productID, attributeID int) (*types.Product, *types.Attribute, error) {
	p, err := s.product(productID)
	if err != nil {
		return nil, nil, err
	}
	i := p.FindAttribute(attributeID)
	if i < 0 {
		return nil, nil, types.NotFound(types.EntityAttribute, attributeID)
	}
	return p, &p.Attributes[i], nil
}
