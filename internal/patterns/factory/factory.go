package factory

// ShapeFactory creates shapes of one family by identifier
type ShapeFactory interface {
	// CreateShape returns the shape for id, or false if the id is unknown
	CreateShape(id int) (Shape, bool)

	// Family identifies the factory
	Family() Family
}

// Shape identifiers shared by all families
const (
	ShapeRound = iota
	ShapeBoxed
	ShapeLong
)

type constructors map[int]func() Shape

func (c constructors) create(id int) (Shape, bool) {
	newShape, ok := c[id]
	if !ok {
		return nil, false
	}
	return newShape(), true
}

var basicShapes = constructors{
	ShapeRound: func() Shape { return Circle{} },
	ShapeBoxed: func() Shape { return Square{} },
	ShapeLong:  func() Shape { return Rectangle{} },
}

var advancedShapes = constructors{
	ShapeRound: func() Shape { return Sphere{} },
	ShapeBoxed: func() Shape { return Cube{} },
	ShapeLong:  func() Shape { return Pyramid{} },
}

// BasicFactory produces flat shapes
type BasicFactory struct{}

// CreateShape implements ShapeFactory
func (BasicFactory) CreateShape(id int) (Shape, bool) {
	return basicShapes.create(id)
}

// Family implements ShapeFactory
func (BasicFactory) Family() Family { return FamilyBasic }

// AdvancedFactory produces solid shapes
type AdvancedFactory struct{}

// CreateShape implements ShapeFactory
func (AdvancedFactory) CreateShape(id int) (Shape, bool) {
	return advancedShapes.create(id)
}

// Family implements ShapeFactory
func (AdvancedFactory) Family() Family { return FamilyAdvanced }
