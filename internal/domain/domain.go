package domain

import (
	"github.com/bloomhaus/floristry-backend/internal/domain/auth"
	"github.com/bloomhaus/floristry-backend/internal/domain/catalog"
	"github.com/bloomhaus/floristry-backend/internal/domain/store"
)

type Store = store.Store
type Admin = store.Admin
type AdminToken = auth.AdminToken

type Product = catalog.Product
type CompositionEdge = catalog.CompositionEdge
type Packaging = catalog.Packaging
type ProductShape = catalog.ProductShape
type PackagingMode = catalog.PackagingMode
type Color = catalog.Color

const (
	ShapeFlower  = catalog.ShapeFlower
	ShapeBouquet = catalog.ShapeBouquet
	ShapeBasket  = catalog.ShapeBasket
	ShapePackage = catalog.ShapePackage

	ModeNone       = catalog.ModeNone
	ModePaper      = catalog.ModePaper
	ModeBox        = catalog.ModeBox
	ModeRibbon     = catalog.ModeRibbon
	ModeCellophane = catalog.ModeCellophane
)
