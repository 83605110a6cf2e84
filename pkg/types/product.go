package types

// Product is the root of the catalog hierarchy. It owns its attributes.
type Product struct {
	ProductID  int         `json:"productId" yaml:"productId"`
	Prefix     string      `json:"prefix" yaml:"prefix"`
	Type       string      `json:"type" yaml:"type"`
	CfgType    string      `json:"cfgType" yaml:"cfgType"`
	SortOrder  int         `json:"sortOrder" yaml:"sortOrder"`
	Attributes []Attribute `json:"attributes" yaml:"attributes"`
}

// ProductInput carries the caller-supplied fields of a new product.
type ProductInput struct {
	Prefix    string `json:"prefix"`
	Type      string `json:"type"`
	CfgType   string `json:"cfgType"`
	SortOrder int    `json:"sortOrder"`
}

// FindAttribute returns the index of the attribute with the given ID,
// or -1 when the product has no such attribute.
func (p *Product) FindAttribute(attributeID int) int {
	for i := range p.Attributes {
		if p.Attributes[i].AttributeID == attributeID {
			return i
		}
	}
	return -1
}
