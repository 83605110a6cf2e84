package types

import "encoding/json"

// ParamType tags the payload shape of a Param.
type ParamType string

// Param types. type1 and type3 carry a code/dispName payload, type2 carries
// a min/increment payload.
const (
	ParamType1 ParamType = "type1"
	ParamType2 ParamType = "type2"
	ParamType3 ParamType = "type3"
)

// Payload field names as they appear on the wire.
const (
	FieldCode      = "code"
	FieldDispName  = "dispName"
	FieldMin       = "min"
	FieldIncrement = "increment"
)

// ExpectedParamType maps an attribute contract to the only param type the
// attribute accepts: "type1" and "type2" map to themselves, every other
// value (including the empty string) maps to type3.
func ExpectedParamType(contract string) ParamType {
	switch contract {
	case string(ParamType1):
		return ParamType1
	case string(ParamType2):
		return ParamType2
	default:
		return ParamType3
	}
}

// IsText reports whether the type carries the code/dispName payload.
func (t ParamType) IsText() bool {
	return t == ParamType1 || t == ParamType3
}

// IsRange reports whether the type carries the min/increment payload.
func (t ParamType) IsRange() bool {
	return t == ParamType2
}

// Fields returns the payload field names defined for the type.
func (t ParamType) Fields() []string {
	switch {
	case t.IsText():
		return []string{FieldCode, FieldDispName}
	case t.IsRange():
		return []string{FieldMin, FieldIncrement}
	default:
		return nil
	}
}

// Param is a leaf of the catalog. Only the payload fields of the current
// Type are ever set; a nil payload field means the value is absent.
type Param struct {
	ParamID   int       `json:"paramId" yaml:"paramId"`
	SortOrder int       `json:"sortOrder" yaml:"sortOrder"`
	Type      ParamType `json:"type" yaml:"type"`

	Code     *string `json:"code,omitempty" yaml:"code,omitempty"`
	DispName *string `json:"dispName,omitempty" yaml:"dispName,omitempty"`

	Min       *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Increment *float64 `json:"increment,omitempty" yaml:"increment,omitempty"`
}

// ParamInput is the create/update payload for a param. Nil fields were not
// supplied by the caller.
type ParamInput struct {
	Type      *ParamType `json:"type"`
	SortOrder *int       `json:"sortOrder"`
	Code      *string    `json:"code"`
	DispName  *string    `json:"dispName"`
	Min       *float64   `json:"min"`
	Increment *float64   `json:"increment"`
}

// NewParam builds a param of type t, copying from in only the payload
// fields that belong to t.
func NewParam(id int, t ParamType, in ParamInput) Param {
	p := Param{ParamID: id, Type: t}
	if in.SortOrder != nil {
		p.SortOrder = *in.SortOrder
	}
	switch {
	case t.IsText():
		p.Code = cloneString(in.Code)
		p.DispName = cloneString(in.DispName)
	case t.IsRange():
		p.Min = cloneFloat(in.Min)
		p.Increment = cloneFloat(in.Increment)
	}
	return p
}

// Retag switches the param to type t. When t differs from the current type
// the payload fields of the old type are dropped.
func (p *Param) Retag(t ParamType) {
	if p.Type == t {
		return
	}
	p.Code, p.DispName = nil, nil
	p.Min, p.Increment = nil, nil
	p.Type = t
}

// Merge applies in to the payload of the current type. When in carries an
// explicit type, payload fields it omits are cleared; without a type, omitted
// fields keep their stored value. SortOrder is merged independently.
func (p *Param) Merge(in ParamInput) {
	if in.SortOrder != nil {
		p.SortOrder = *in.SortOrder
	}
	explicit := in.Type != nil
	switch {
	case p.Type.IsText():
		p.Code = mergeString(p.Code, in.Code, explicit)
		p.DispName = mergeString(p.DispName, in.DispName, explicit)
	case p.Type.IsRange():
		p.Min = mergeFloat(p.Min, in.Min, explicit)
		p.Increment = mergeFloat(p.Increment, in.Increment, explicit)
	}
}

// Clone returns a deep copy of the param.
func (p Param) Clone() Param {
	p.Code = cloneString(p.Code)
	p.DispName = cloneString(p.DispName)
	p.Min = cloneFloat(p.Min)
	p.Increment = cloneFloat(p.Increment)
	return p
}

// textParamJSON and rangeParamJSON are the wire shapes of a param: every
// payload field of the current type is present, null when absent.
type textParamJSON struct {
	ParamID   int       `json:"paramId"`
	SortOrder int       `json:"sortOrder"`
	Type      ParamType `json:"type"`
	Code      *string   `json:"code"`
	DispName  *string   `json:"dispName"`
}

type rangeParamJSON struct {
	ParamID   int       `json:"paramId"`
	SortOrder int       `json:"sortOrder"`
	Type      ParamType `json:"type"`
	Min       *float64  `json:"min"`
	Increment *float64  `json:"increment"`
}

// MarshalJSON emits only the payload fields of the param's type.
func (p Param) MarshalJSON() ([]byte, error) {
	switch {
	case p.Type.IsRange():
		return json.Marshal(rangeParamJSON{
			ParamID:   p.ParamID,
			SortOrder: p.SortOrder,
			Type:      p.Type,
			Min:       p.Min,
			Increment: p.Increment,
		})
	default:
		return json.Marshal(textParamJSON{
			ParamID:   p.ParamID,
			SortOrder: p.SortOrder,
			Type:      p.Type,
			Code:      p.Code,
			DispName:  p.DispName,
		})
	}
}

func mergeString(stored, in *string, explicit bool) *string {
	if in != nil {
		return cloneString(in)
	}
	if explicit {
		return nil
	}
	return stored
}

func mergeFloat(stored, in *float64, explicit bool) *float64 {
	if in != nil {
		return cloneFloat(in)
	}
	if explicit {
		return nil
	}
	return stored
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}
