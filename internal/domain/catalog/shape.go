package catalog

// ProductShape is the closed set of sellable product categories. New shapes are
// a compile-time decision; nothing in the codebase dispatches on anything else.
type ProductShape string

const (
	ShapeFlower  ProductShape = "flower"
	ShapeBouquet ProductShape = "bouquet"
	ShapeBasket  ProductShape = "basket"
	ShapePackage ProductShape = "package"
)

func (s ProductShape) Valid() bool {
	switch s {
	case ShapeFlower, ShapeBouquet, ShapeBasket, ShapePackage:
		return true
	}
	return false
}

// Composite reports whether the shape is assembled out of flower products.
func (s ProductShape) Composite() bool {
	switch s {
	case ShapeBouquet, ShapeBasket, ShapePackage:
		return true
	}
	return false
}

// MandatoryPackaging reports whether the shape cannot be sold unpackaged.
// Bouquets may go out bare; baskets and packages may not.
func (s ProductShape) MandatoryPackaging() bool {
	return s == ShapeBasket || s == ShapePackage
}

// PackagingMode is the concrete packaging style. ModeNone is the sentinel for
// "no packaging" and is only legal when packaging is not required.
type PackagingMode string

const (
	ModeNone       PackagingMode = "none"
	ModePaper      PackagingMode = "paper"
	ModeBox        PackagingMode = "box"
	ModeRibbon     PackagingMode = "ribbon"
	ModeCellophane PackagingMode = "cellophane"
)

func (m PackagingMode) Valid() bool {
	switch m {
	case ModeNone, ModePaper, ModeBox, ModeRibbon, ModeCellophane:
		return true
	}
	return false
}

type Color string

const (
	ColorRed    Color = "red"
	ColorPink   Color = "pink"
	ColorWhite  Color = "white"
	ColorYellow Color = "yellow"
	ColorOrange Color = "orange"
	ColorPurple Color = "purple"
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
)
