package memory

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/catalog/pkg/types"
)

// GetParam returns one param of an attribute.
func (s *Store) GetParam(productID, attributeID, paramID int) (types.Param, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, a, err := s.attribute(productID, attributeID)
	if err != nil {
		return types.Param{}, err
	}
	i := a.FindParam(paramID)
	if i < 0 {
		return types.Param{}, types.NotFound(types.EntityParam, paramID)
	}
	return a.Params[i].Clone(), nil
}

// AddParam appends a param to the attribute. The input type must equal the
// type expected by the attribute contract; otherwise a *types.ConflictError
// is returned and nothing is stored. Only the payload fields of that type
// are kept from the input.
func (s *Store) AddParam(productID, attributeID int, in types.ParamInput) (types.Param, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, a, err := s.attribute(productID, attributeID)
	if err != nil {
		return types.Param{}, err
	}

	var requested types.ParamType
	if in.Type != nil {
		requested = *in.Type
	}
	expected := a.ExpectedParamType()
	if requested != expected {
		return types.Param{}, &types.ConflictError{
			Requested: requested,
			Expected:  expected,
			Contract:  a.Contract,
		}
	}

	id, err := s.ids.nextParamID(productID, attributeID)
	if err != nil {
		return types.Param{}, fmt.Errorf("%w: allocate param id: %v", types.ErrInternal, err)
	}
	p := types.NewParam(id, expected, in)
	a.Params = append(a.Params, p)

	s.logger.Debug("param added",
		zap.Int("product_id", productID),
		zap.Int("attribute_id", attributeID),
		zap.Int("param_id", id),
		zap.String("type", string(p.Type)))
	return p.Clone(), nil
}

// UpdateParam merges the input into the stored param.
//
// A type in the input that differs from the stored type must equal the type
// expected by the attribute contract, or the call fails with a
// *types.ConflictError and the param is left untouched. On a type change the
// old payload fields are dropped first. Payload fields are then merged from
// the input; when the input names a type explicitly, payload fields it omits
// are cleared rather than kept.
func (s *Store) UpdateParam(productID, attributeID, paramID int, in types.ParamInput) (types.Param, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, a, err := s.attribute(productID, attributeID)
	if err != nil {
		return types.Param{}, err
	}
	i := a.FindParam(paramID)
	if i < 0 {
		return types.Param{}, types.NotFound(types.EntityParam, paramID)
	}
	p := &a.Params[i]

	final := p.Type
	if in.Type != nil && *in.Type != p.Type {
		expected := a.ExpectedParamType()
		if *in.Type != expected {
			return types.Param{}, &types.ConflictError{
				Requested: *in.Type,
				Expected:  expected,
				Contract:  a.Contract,
				Retarget:  true,
			}
		}
		final = *in.Type
	}

	if final != p.Type {
		s.logger.Debug("param retagged",
			zap.Int("product_id", productID),
			zap.Int("attribute_id", attributeID),
			zap.Int("param_id", paramID),
			zap.String("from", string(p.Type)),
			zap.String("to", string(final)))
	}
	p.Retag(final)
	p.Merge(in)
	return p.Clone(), nil
}

// DeleteParam removes a param from its attribute.
func (s *Store) DeleteParam(productID, attributeID, paramID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, a, err := s.attribute(productID, attributeID)
	if err != nil {
		return err
	}

	before := len(a.Params)
	kept := make([]types.Param, 0, before)
	for _, p := range a.Params {
		if p.ParamID != paramID {
			kept = append(kept, p)
		}
	}
	if len(kept) == before {
		return types.NotFound(types.EntityParam, paramID)
	}
	a.Params = kept
	return nil
}
