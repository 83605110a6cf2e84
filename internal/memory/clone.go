package memory

import "github.com/mesh-intelligence/catalog/pkg/types"

func cloneProduct(p types.Product) types.Product {
	attrs := make([]types.Attribute, len(p.Attributes))
	for i, a := range p.Attributes {
		attrs[i] = cloneAttribute(a)
	}
	p.Attributes = attrs
	return p
}

func cloneAttribute(a types.Attribute) types.Attribute {
	params := make([]types.Param, len(a.Params))
	for i, p := range a.Params {
		params[i] = p.Clone()
	}
	a.Params = params
	return a
}

func cloneProducts(products []types.Product) []types.Product {
	out := make([]types.Product, len(products))
	for i, p := range products {
		out[i] = cloneProduct(p)
	}
	return out
}
