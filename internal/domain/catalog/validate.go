package catalog

import "fmt"

// PackagingInput is the packaging group as proposed by a creation request,
// before any product exists.
type PackagingInput struct {
	Required bool           `json:"required"`
	Mode     *PackagingMode `json:"mode,omitempty"`
	Color    *Color         `json:"color,omitempty"`
}

// ModeOrNone collapses an absent mode to the sentinel.
func (p PackagingInput) ModeOrNone() PackagingMode {
	if p.Mode == nil {
		return ModeNone
	}
	return *p.Mode
}

// CreateProductInput is the already-deserialized creation payload. Every
// optional field stays a pointer so "absent" and "zero" are distinguishable,
// which the shape/field exclusion rules depend on.
type CreateProductInput struct {
	Shape ProductShape `json:"shape"`
	Name  string       `json:"name"`

	Variety            *string `json:"variety,omitempty"`
	Colors             []Color `json:"colors,omitempty"`
	OriginCountry      *string `json:"origin_country,omitempty"`
	FragranceIntensity *int    `json:"fragrance_intensity,omitempty"`

	// FlowersCount is a composite-only convenience field some clients send.
	// It is never legal on a flower payload.
	FlowersCount *int `json:"flowers_count,omitempty"`

	Packaging PackagingInput `json:"packaging"`
}

// ValidatePackaging enforces the packaging symmetry rule for every shape:
// required packaging must name a concrete mode and a color, optional packaging
// must name neither. The error identifies each missing or illegal element.
func ValidatePackaging(p PackagingInput) error {
	if p.Required {
		var missing []string
		if p.ModeOrNone() == ModeNone {
			missing = append(missing, "mode")
		}
		if p.Color == nil {
			missing = append(missing, "color")
		}
		if len(missing) > 0 {
			return NewRuleError(CodeInvalidPackaging, "packaging is required but incomplete", missing...)
		}
		if !p.ModeOrNone().Valid() {
			return NewRuleError(CodeInvalidPackaging, fmt.Sprintf("unknown packaging mode %q", p.ModeOrNone()), "mode")
		}
		return nil
	}
	var illegal []string
	if p.ModeOrNone() != ModeNone {
		illegal = append(illegal, "mode")
	}
	if p.Color != nil {
		illegal = append(illegal, "color")
	}
	if len(illegal) > 0 {
		return NewRuleError(CodeInvalidPackaging, "packaging is not required but carries packaging attributes", illegal...)
	}
	return nil
}

// flowerOnlyFields lists every flower attribute present on the input, in a
// fixed order so error messages are stable.
func flowerOnlyFields(in CreateProductInput) []string {
	var fields []string
	if in.Variety != nil {
		fields = append(fields, "variety")
	}
	if len(in.Colors) > 0 {
		fields = append(fields, "colors")
	}
	if in.OriginCountry != nil {
		fields = append(fields, "origin_country")
	}
	if in.FragranceIntensity != nil {
		fields = append(fields, "fragrance_intensity")
	}
	return fields
}

// ValidateCompositeFields rejects flower-only attributes on composite shapes,
// naming every offending field at once rather than failing on the first.
func ValidateCompositeFields(in CreateProductInput) error {
	if !in.Shape.Composite() {
		return nil
	}
	if fields := flowerOnlyFields(in); len(fields) > 0 {
		return NewRuleError(
			CodeForbiddenFieldsForShape,
			fmt.Sprintf("fields not allowed for shape %q", in.Shape),
			fields...,
		)
	}
	return nil
}

// ValidateMandatoryPackaging applies only to shapes that cannot ship bare.
// It pre-checks the concrete elements so the failure names what is missing
// rather than deferring to the generic symmetry rule.
func ValidateMandatoryPackaging(in CreateProductInput) error {
	if !in.Shape.MandatoryPackaging() {
		return nil
	}
	p := in.Packaging
	if !p.Required {
		return NewRuleError(
			CodeMissingMandatoryPackaging,
			fmt.Sprintf("packaging is mandatory for shape %q", in.Shape),
			"required",
		)
	}
	var missing []string
	if p.ModeOrNone() == ModeNone {
		missing = append(missing, "mode")
	}
	if p.Color == nil {
		missing = append(missing, "color")
	}
	if len(missing) > 0 {
		return NewRuleError(
			CodeMissingMandatoryPackaging,
			fmt.Sprintf("packaging is mandatory for shape %q but incomplete", in.Shape),
			missing...,
		)
	}
	return nil
}

// ValidateFlowerFields rejects composite-only fields on a flower payload.
func ValidateFlowerFields(in CreateProductInput) error {
	if in.Shape != ShapeFlower {
		return nil
	}
	if in.FlowersCount != nil {
		return NewRuleError(CodeFieldNotAllowed, "field not allowed for shape \"flower\"", "flowers_count")
	}
	return nil
}

// ValidateCreate runs the full per-shape rule set for a creation payload.
// Composite shapes run the shape-exclusion and mandatory-packaging rules
// before the generic packaging symmetry check; flowers run their own field
// gate first. The shape tag itself is checked here because the payload
// arrives from a dynamically-validated boundary.
func ValidateCreate(in CreateProductInput) error {
	if !in.Shape.Valid() {
		return NewRuleError(CodeUnknownShape, fmt.Sprintf("unknown product shape %q", in.Shape))
	}
	if in.Shape == ShapeFlower {
		if err := ValidateFlowerFields(in); err != nil {
			return err
		}
		return ValidatePackaging(in.Packaging)
	}
	if err := ValidateCompositeFields(in); err != nil {
		return err
	}
	if err := ValidateMandatoryPackaging(in); err != nil {
		return err
	}
	return ValidatePackaging(in.Packaging)
}
