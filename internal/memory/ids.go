package memory

import (
	"github.com/mesh-intelligence/catalog/pkg/types"
)

// attrScope keys the param counter of one attribute.
type attrScope struct {
	productID   int
	attributeID int
}

// idAllocator hands out per-scope identifiers. Products share one counter,
// attributes count per product, params count per (product, attribute).
// Counters only move forward; deleting an entity never frees its ID.
// The allocator is not synchronised; the Store lock guards it.
type idAllocator struct {
	nextProduct int
	nextAttr    map[int]int
	nextParam   map[attrScope]int
}

func newIDAllocator() *idAllocator {
	return &idAllocator{
		nextAttr:  make(map[int]int),
		nextParam: make(map[attrScope]int),
	}
}

// allocatorFor builds an allocator whose counters sit one past the highest
// identifier present in each scope of products (0 for an empty scope).
func allocatorFor(products []types.Product) *idAllocator {
	a := newIDAllocator()
	for _, p := range products {
		if p.ProductID >= a.nextProduct {
			a.nextProduct = p.ProductID + 1
		}
		maxAttr := -1
		for _, attr := range p.Attributes {
			if attr.AttributeID > maxAttr {
				maxAttr = attr.AttributeID
			}
			maxParam := -1
			for _, param := range attr.Params {
				if param.ParamID > maxParam {
					maxParam = param.ParamID
				}
			}
			a.nextParam[attrScope{p.ProductID, attr.AttributeID}] = maxParam + 1
		}
		a.nextAttr[p.ProductID] = maxAttr + 1
	}
	return a
}

// nextProductID returns a fresh product ID and opens its attribute scope.
func (a *idAllocator) nextProductID() int {
	id := a.nextProduct
	a.nextProduct++
	a.nextAttr[id] = 0
	return id
}

// nextAttributeID returns a fresh attribute ID for the product and opens
// the param scope of the new attribute.
func (a *idAllocator) nextAttributeID(productID int) (int, error) {
	id, ok := a.nextAttr[productID]
	if !ok {
		return 0, types.NotFound(types.EntityProduct, productID)
	}
	a.nextAttr[productID] = id + 1
	a.nextParam[attrScope{productID, id}] = 0
	return id, nil
}

// nextParamID returns a fresh param ID for the attribute.
func (a *idAllocator) nextParamID(productID, attributeID int) (int, error) {
	key := attrScope{productID, attributeID}
	id, ok := a.nextParam[key]
	if !ok {
		return 0, types.NotFound(types.EntityAttribute, attributeID)
	}
	a.nextParam[key] = id + 1
	return id, nil
}

// dropAttribute closes the param scope of a deleted attribute. The
// product's attribute counter is left alone so the ID is never reissued.
func (a *idAllocator) dropAttribute(productID, attributeID int) {
	delete(a.nextParam, attrScope{productID, attributeID})
}
