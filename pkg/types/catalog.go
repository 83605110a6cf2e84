package types

// Catalog is the backend-agnostic view of the Product → Attribute → Param
// hierarchy. Every entity returned is a copy; mutating it does not change
// the catalog.
type Catalog interface {
	// ListProducts returns all products in creation order.
	ListProducts() []Product

	// GetProduct returns the product with the given ID.
	// Returns ErrNotFound if no such product exists.
	GetProduct(productID int) (Product, error)

	// CreateProduct allocates a new product ID and stores a product with an
	// empty attribute list.
	CreateProduct(in ProductInput) (Product, error)

	// GetAttribute returns a single attribute of a product.
	GetAttribute(productID, attributeID int) (Attribute, error)

	// AddAttribute appends a new attribute to the product. The new attribute
	// always starts without params.
	AddAttribute(productID int, in AttributeInput) (Attribute, error)

	// UpdateAttribute merges the fields present in the input into the stored
	// attribute. The params list is never touched.
	UpdateAttribute(productID, attributeID int, in AttributeInput) (Attribute, error)

	// DeleteAttribute removes the attribute and all of its params.
	DeleteAttribute(productID, attributeID int) error

	// GetParam returns a single param of an attribute.
	GetParam(productID, attributeID, paramID int) (Param, error)

	// AddParam appends a new param to the attribute. The param type must match
	// the type expected by the attribute contract; otherwise ErrConflict.
	AddParam(productID, attributeID int, in ParamInput) (Param, error)

	// UpdateParam merges the input into the stored param, retagging it when
	// the input carries a different type.
	UpdateParam(productID, attributeID, paramID int, in ParamInput) (Param, error)

	// DeleteParam removes a param from its attribute.
	DeleteParam(productID, attributeID, paramID int) error

	// Reset discards all data and reloads the built-in seed dataset,
	// recomputing every identifier counter.
	Reset() error
}
