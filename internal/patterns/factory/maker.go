package factory

// Family selects a concrete factory
type Family int

const (
	FamilyBasic Family = iota
	FamilyAdvanced
)

// String returns the string representation of Family
func (f Family) String() string {
	switch f {
	case FamilyBasic:
		return "basic"
	case FamilyAdvanced:
		return "advanced"
	default:
		return "unknown"
	}
}

var families = map[Family]func() ShapeFactory{
	FamilyBasic:    func() ShapeFactory { return BasicFactory{} },
	FamilyAdvanced: func() ShapeFactory { return AdvancedFactory{} },
}

// NewFactory returns the factory for family, or false if it is not supported
func NewFactory(family Family) (ShapeFactory, bool) {
	newFactory, ok := families[family]
	if !ok {
		return nil, false
	}
	return newFactory(), true
}
