package catalog

import (
	"reflect"
	"testing"
)

func modePtr(m PackagingMode) *PackagingMode { return &m }
func colorPtr(c Color) *Color                { return &c }
func strPtr(s string) *string                { return &s }
func intPtr(n int) *int                      { return &n }

func requireCode(t *testing.T, err error, code Code) *RuleError {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with code %q, got nil", code)
	}
	re := AsRuleError(err)
	if re == nil {
		t.Fatalf("expected RuleError, got %T: %v", err, err)
	}
	if re.Code != code {
		t.Fatalf("expected code %q, got %q (%v)", code, re.Code, err)
	}
	return re
}

func TestValidateCreate_UnknownShape(t *testing.T) {
	err := ValidateCreate(CreateProductInput{Shape: "vase", Name: "x"})
	requireCode(t, err, CodeUnknownShape)
}

func TestValidateCreate_FlowerRejectsFlowersCount(t *testing.T) {
	in := CreateProductInput{
		Shape:        ShapeFlower,
		Name:         "Red Rose",
		FlowersCount: intPtr(5),
	}
	re := requireCode(t, ValidateCreate(in), CodeFieldNotAllowed)
	if !reflect.DeepEqual(re.Fields, []string{"flowers_count"}) {
		t.Fatalf("expected fields [flowers_count], got %v", re.Fields)
	}
}

func TestValidatePackaging_RequiredButEmpty(t *testing.T) {
	re := requireCode(t, ValidatePackaging(PackagingInput{Required: true}), CodeInvalidPackaging)
	if !reflect.DeepEqual(re.Fields, []string{"mode", "color"}) {
		t.Fatalf("expected fields [mode color], got %v", re.Fields)
	}
}

func TestValidatePackaging_RequiredMissingColorOnly(t *testing.T) {
	p := PackagingInput{Required: true, Mode: modePtr(ModeBox)}
	re := requireCode(t, ValidatePackaging(p), CodeInvalidPackaging)
	if !reflect.DeepEqual(re.Fields, []string{"color"}) {
		t.Fatalf("expected fields [color], got %v", re.Fields)
	}
}

func TestValidatePackaging_NotRequiredWithAttributes(t *testing.T) {
	p := PackagingInput{Required: false, Mode: modePtr(ModePaper), Color: colorPtr(ColorPink)}
	re := requireCode(t, ValidatePackaging(p), CodeInvalidPackaging)
	if !reflect.DeepEqual(re.Fields, []string{"mode", "color"}) {
		t.Fatalf("expected fields [mode color], got %v", re.Fields)
	}
}

func TestValidatePackaging_RequiredComplete(t *testing.T) {
	p := PackagingInput{Required: true, Mode: modePtr(ModeRibbon), Color: colorPtr(ColorWhite)}
	if err := ValidatePackaging(p); err != nil {
		t.Fatalf("expected valid packaging, got %v", err)
	}
}

func TestValidatePackaging_RequiredUnknownMode(t *testing.T) {
	bogus := PackagingMode("foil")
	p := PackagingInput{Required: true, Mode: &bogus, Color: colorPtr(ColorRed)}
	requireCode(t, ValidatePackaging(p), CodeInvalidPackaging)
}

func TestValidateCompositeFields_NamesEveryOffender(t *testing.T) {
	in := CreateProductInput{
		Shape:              ShapeBouquet,
		Name:               "Spring Mix",
		Variety:            strPtr("Tulip"),
		Colors:             []Color{ColorYellow},
		OriginCountry:      strPtr("NL"),
		FragranceIntensity: intPtr(3),
	}
	re := requireCode(t, ValidateCompositeFields(in), CodeForbiddenFieldsForShape)
	want := []string{"variety", "colors", "origin_country", "fragrance_intensity"}
	if !reflect.DeepEqual(re.Fields, want) {
		t.Fatalf("expected fields %v, got %v", want, re.Fields)
	}
}

func TestValidateCreate_BouquetMayGoUnpackaged(t *testing.T) {
	in := CreateProductInput{Shape: ShapeBouquet, Name: "Bare Bouquet"}
	if err := ValidateCreate(in); err != nil {
		t.Fatalf("expected bouquet without packaging to pass, got %v", err)
	}
}

func TestValidateCreate_BasketRequiresPackaging(t *testing.T) {
	in := CreateProductInput{Shape: ShapeBasket, Name: "Gift Basket"}
	re := requireCode(t, ValidateCreate(in), CodeMissingMandatoryPackaging)
	if !reflect.DeepEqual(re.Fields, []string{"required"}) {
		t.Fatalf("expected fields [required], got %v", re.Fields)
	}
}

func TestValidateCreate_BasketIncompletePackaging(t *testing.T) {
	in := CreateProductInput{
		Shape:     ShapeBasket,
		Name:      "Gift Basket",
		Packaging: PackagingInput{Required: true, Mode: modePtr(ModeCellophane)},
	}
	re := requireCode(t, ValidateCreate(in), CodeMissingMandatoryPackaging)
	if !reflect.DeepEqual(re.Fields, []string{"color"}) {
		t.Fatalf("expected fields [color], got %v", re.Fields)
	}
}

func TestValidateCreate_PackageWithFullPackaging(t *testing.T) {
	in := CreateProductInput{
		Shape:     ShapePackage,
		Name:      "Deluxe Package",
		Packaging: PackagingInput{Required: true, Mode: modePtr(ModeBox), Color: colorPtr(ColorGreen)},
	}
	if err := ValidateCreate(in); err != nil {
		t.Fatalf("expected package with full packaging to pass, got %v", err)
	}
}

func TestValidateCreate_CompositeFieldCheckRunsBeforePackaging(t *testing.T) {
	// A basket with flower fields and no packaging fails on the fields first.
	in := CreateProductInput{
		Shape:   ShapeBasket,
		Name:    "Broken Basket",
		Variety: strPtr("Rose"),
	}
	requireCode(t, ValidateCreate(in), CodeForbiddenFieldsForShape)
}

func TestValidateCreate_FlowerWithAllAttributes(t *testing.T) {
	in := CreateProductInput{
		Shape:              ShapeFlower,
		Name:               "Red Rose",
		Variety:            strPtr("Rose"),
		Colors:             []Color{ColorRed, ColorPink},
		OriginCountry:      strPtr("EC"),
		FragranceIntensity: intPtr(4),
		Packaging:          PackagingInput{Required: true, Mode: modePtr(ModePaper), Color: colorPtr(ColorWhite)},
	}
	if err := ValidateCreate(in); err != nil {
		t.Fatalf("expected flower to pass, got %v", err)
	}
}
