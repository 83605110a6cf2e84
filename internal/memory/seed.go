package memory

import (
	"fmt"

	"github.com/mesh-intelligence/catalog/pkg/types"
)

func str(s string) *string   { return &s }
func num(f float64) *float64 { return &f }

// seedProducts is the built-in dataset loaded at startup and on every Reset.
// It is template data: the store only ever holds deep copies of it.
var seedProducts = []types.Product{
	{
		ProductID: 0,
		Prefix:    "abc",
		Type:      "abc00",
		CfgType:   "abcdef",
		SortOrder: 0,
		Attributes: []types.Attribute{
			{
				AttributeID:   0,
				Attribute:     "attr1",
				AttributeType: "string",
				AttributeJP:   "属性1",
				Contract:      "type1",
				Public:        true,
				Online:        true,
				SortOrder:     0,
				Params: []types.Param{
					{ParamID: 0, SortOrder: 0, Type: types.ParamType1, Code: str("code1"), DispName: str("コード1")},
					{ParamID: 1, SortOrder: 1, Type: types.ParamType1, Code: str("code2"), DispName: str("コード2")},
				},
			},
			{
				AttributeID:   1,
				Attribute:     "attr2",
				AttributeType: "string",
				AttributeJP:   "属性2",
				Contract:      "type2",
				Masking:       true,
				SortOrder:     1,
				Params: []types.Param{
					{ParamID: 0, SortOrder: 0, Type: types.ParamType2, Min: num(1), Increment: num(2)},
				},
			},
			{
				AttributeID:   2,
				Attribute:     "attr_type3_contract_empty",
				AttributeType: "string",
				AttributeJP:   "属性3空契約",
				Contract:      "",
				Masking:       true,
				SortOrder:     2,
				Params: []types.Param{
					{ParamID: 0, SortOrder: 0, Type: types.ParamType3, Code: str("code_c_empty_p_t3"), DispName: str("コード空契約T3")},
				},
			},
		},
	},
	{
		ProductID: 1,
		Prefix:    "def",
		Type:      "def00",
		CfgType:   "abcdef",
		SortOrder: 1,
		Attributes: []types.Attribute{
			{
				AttributeID:   0,
				Attribute:     "attr1_prod1",
				AttributeType: "string",
				AttributeJP:   "属性1製品1",
				Contract:      "type1",
				Public:        true,
				Online:        true,
				SortOrder:     0,
				Params:        []types.Param{},
			},
			{
				AttributeID:   1,
				Attribute:     "attr_empty_contract_empty_params",
				AttributeType: "string",
				AttributeJP:   "属性空契約空P",
				Contract:      "type3",
				Masking:       true,
				SortOrder:     1,
				Params:        []types.Param{},
			},
		},
	},
}

// SeedProducts returns a deep copy of the built-in dataset.
func SeedProducts() []types.Product {
	return cloneProducts(seedProducts)
}

// state is everything Reset swaps in one step: the collections and the
// counters derived from them.
type state struct {
	products map[int]*types.Product
	order    []int
	ids      *idAllocator
}

// buildState deep-copies seed into a fresh state. It checks that identifiers
// are non-negative and unique per scope and that every param matches its
// attribute contract; a seed that breaks these is rejected as ErrInternal.
// Param fields that do not belong to the param's type are dropped.
func buildState(seed []types.Product) (*state, error) {
	st := &state{
		products: make(map[int]*types.Product, len(seed)),
		order:    make([]int, 0, len(seed)),
	}
	copied := cloneProducts(seed)
	for i := range copied {
		p := &copied[i]
		if err := checkSeedProduct(p); err != nil {
			return nil, fmt.Errorf("%w: seed: %v", types.ErrInternal, err)
		}
		if _, dup := st.products[p.ProductID]; dup {
			return nil, fmt.Errorf("%w: seed: duplicate product id %d", types.ErrInternal, p.ProductID)
		}
		st.products[p.ProductID] = p
		st.order = append(st.order, p.ProductID)
	}
	st.ids = allocatorFor(copied)
	return st, nil
}

func checkSeedProduct(p *types.Product) error {
	if p.ProductID < 0 {
		return fmt.Errorf("negative product id %d", p.ProductID)
	}
	if p.Attributes == nil {
		p.Attributes = []types.Attribute{}
	}
	attrIDs := make(map[int]bool, len(p.Attributes))
	for i := range p.Attributes {
		a := &p.Attributes[i]
		if a.AttributeID < 0 || attrIDs[a.AttributeID] {
			return fmt.Errorf("product %d: bad attribute id %d", p.ProductID, a.AttributeID)
		}
		attrIDs[a.AttributeID] = true
		if a.Params == nil {
			a.Params = []types.Param{}
		}
		expected := a.ExpectedParamType()
		paramIDs := make(map[int]bool, len(a.Params))
		for j, param := range a.Params {
			if param.ParamID < 0 || paramIDs[param.ParamID] {
				return fmt.Errorf("product %d attribute %d: bad param id %d", p.ProductID, a.AttributeID, param.ParamID)
			}
			paramIDs[param.ParamID] = true
			if param.Type != expected {
				return fmt.Errorf("product %d attribute %d param %d: type %q does not match contract %q",
					p.ProductID, a.AttributeID, param.ParamID, param.Type, a.Contract)
			}
			a.Params[j] = normalizeParam(param)
		}
	}
	return nil
}

// normalizeParam rebuilds a seed param so that only the payload fields of
// its type are kept.
func normalizeParam(param types.Param) types.Param {
	return types.NewParam(param.ParamID, param.Type, types.ParamInput{
		SortOrder: &param.SortOrder,
		Code:      param.Code,
		DispName:  param.DispName,
		Min:       param.Min,
		Increment: param.Increment,
	})
}
