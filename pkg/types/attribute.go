package types

// Attribute belongs to exactly one product and owns its params. Contract
// decides which param type the attribute accepts (see ExpectedParamType).
type Attribute struct {
	AttributeID   int     `json:"attributeId" yaml:"attributeId"`
	Attribute     string  `json:"attribute" yaml:"attribute"`
	AttributeType string  `json:"attributeType" yaml:"attributeType"`
	AttributeJP   string  `json:"attributeJP" yaml:"attributeJP"`
	AttributeUnit string  `json:"attributeUnit" yaml:"attributeUnit"`
	Contract      string  `json:"contract" yaml:"contract"`
	Public        bool    `json:"public" yaml:"public"`
	Masking       bool    `json:"masking" yaml:"masking"`
	Online        bool    `json:"online" yaml:"online"`
	SortOrder     int     `json:"sortOrder" yaml:"sortOrder"`
	Params        []Param `json:"params" yaml:"params"`
}

// AttributeInput is the create/update payload for an attribute. A nil field
// means "not supplied": on create it takes the zero value, on update the
// stored value is kept.
type AttributeInput struct {
	Attribute     *string `json:"attribute"`
	AttributeType *string `json:"attributeType"`
	AttributeJP   *string `json:"attributeJP"`
	AttributeUnit *string `json:"attributeUnit"`
	Contract      *string `json:"contract"`
	Public        *bool   `json:"public"`
	Masking       *bool   `json:"masking"`
	Online        *bool   `json:"online"`
	SortOrder     *int    `json:"sortOrder"`
}

// Apply merges the supplied fields of in into a.
func (a *Attribute) Apply(in AttributeInput) {
	if in.Attribute != nil {
		a.Attribute = *in.Attribute
	}
	if in.AttributeType != nil {
		a.AttributeType = *in.AttributeType
	}
	if in.AttributeJP != nil {
		a.AttributeJP = *in.AttributeJP
	}
	if in.AttributeUnit != nil {
		a.AttributeUnit = *in.AttributeUnit
	}
	if in.Contract != nil {
		a.Contract = *in.Contract
	}
	if in.Public != nil {
		a.Public = *in.Public
	}
	if in.Masking != nil {
		a.Masking = *in.Masking
	}
	if in.Online != nil {
		a.Online = *in.Online
	}
	if in.SortOrder != nil {
		a.SortOrder = *in.SortOrder
	}
}

// ExpectedParamType returns the param type this attribute accepts.
func (a *Attribute) ExpectedParamType() ParamType {
	return ExpectedParamType(a.Contract)
}

// FindParam returns the index of the param with the given ID, or -1.
func (a *Attribute) FindParam(paramID int) int {
	for i := range a.Params {
		if a.Params[i].ParamID == paramID {
			return i
		}
	}
	return -1
}
