package memory

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/catalog/pkg/types"
)

// GetAttribute returns one attribute of a product.
func (s *Store) GetAttribute(productID, attributeID int) (types.Attribute, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, a, err := s.attribute(productID, attributeID)
	if err != nil {
		return types.Attribute{}, err
	}
	return cloneAttribute(*a), nil
}

// AddAttribute appends a new attribute to the product. Omitted fields take
// their zero value and the params list always starts empty.
func (s *Store) AddAttribute(productID int, in types.AttributeInput) (types.Attribute, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.product(productID)
	if err != nil {
		return types.Attribute{}, err
	}
	id, err := s.ids.nextAttributeID(productID)
	if err != nil {
		return types.Attribute{}, fmt.Errorf("%w: allocate attribute id: %v", types.ErrInternal, err)
	}

	a := types.Attribute{AttributeID: id, Params: []types.Param{}}
	a.Apply(in)
	p.Attributes = append(p.Attributes, a)

	s.logger.Debug("attribute added",
		zap.Int("product_id", productID),
		zap.Int("attribute_id", id),
		zap.String("contract", a.Contract))
	return cloneAttribute(a), nil
}

// UpdateAttribute merges the supplied fields into the stored attribute.
// Params are left as they are, even when the contract changes.
func (s *Store) UpdateAttribute(productID, attributeID int, in types.AttributeInput) (types.Attribute, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, a, err := s.attribute(productID, attributeID)
	if err != nil {
		return types.Attribute{}, err
	}
	a.Apply(in)
	return cloneAttribute(*a), nil
}

// DeleteAttribute removes the attribute and every param under it. A missing
// attribute is detected by the collection length not changing.
func (s *Store) DeleteAttribute(productID, attributeID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.product(productID)
	if err != nil {
		return err
	}

	before := len(p.Attributes)
	kept := make([]types.Attribute, 0, before)
	for _, a := range p.Attributes {
		if a.AttributeID != attributeID {
			kept = append(kept, a)
		}
	}
	if len(kept) == before {
		return types.NotFound(types.EntityAttribute, attributeID)
	}
	p.Attributes = kept
	s.ids.dropAttribute(productID, attributeID)

	s.logger.Debug("attribute deleted", zap.Int("product_id", productID), zap.Int("attribute_id", attributeID))
	return nil
}
