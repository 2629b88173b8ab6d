package api

import (
	"testing"

	"rodizio/internal/reference"
	"rodizio/internal/scheme"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, raw string) scheme.Document {
	t.Helper()
	doc, err := scheme.ParseDocument([]byte(raw))
	require.NoError(t, err)
	return doc
}

func codes(errs []FieldError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Code)
	}
	return out
}

func TestValidateShippedDocument(t *testing.T) {
	doc, err := scheme.LoadDocument("../../data/restrictions.json")
	require.NoError(t, err)
	catalogs, err := reference.LoadCatalogs("../../reference/catalogs")
	require.NoError(t, err)

	errs := ValidateDocument(doc, catalogs)
	assert.Empty(t, errs)
}

func TestValidateEmptyName(t *testing.T) {
	doc := mustParse(t, `{"x": {"name": "  ", "affected_area": {"map_link": "http://cet"}}}`)
	errs := ValidateDocument(doc, nil)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrRequired, errs[0].Code)
	assert.Equal(t, "x.name", errs[0].Field)
}

func TestValidateTimeRanges(t *testing.T) {
	doc := mustParse(t, `{"x": {
		"name": "X",
		"restriction_times": {
			"monday": ["07:00-10:00", "7h-10h", "25:00-26:00"],
			"someday": ["08:00-09:00"],
			"tuesday": ["18:00-09:00"]
		},
		"affected_area": {"map_link": "http://cet"}
	}}`)
	errs := ValidateDocument(doc, nil)

	assert.Contains(t, codes(errs), ErrPatternMismatch)
	assert.Contains(t, codes(errs), ErrWeekdayInvalid)
	assert.Contains(t, codes(errs), ErrRangeOrder)
	// валидный интервал ошибок не даёт
	for _, e := range errs {
		assert.NotEqual(t, "x.restriction_times.monday[0]", e.Field)
	}
}

func TestValidatePlateRestrictions(t *testing.T) {
	doc := mustParse(t, `{"x": {
		"name": "X",
		"plate_restrictions": {
			"monday": ["1", "2"],
			"saturday": ["3"],
			"tuesday": ["12"],
			"wednesday": ["5", "5"]
		},
		"affected_area": {"boundaries": ["Marginal Tietê"]}
	}}`)
	errs := ValidateDocument(doc, nil)

	assert.Contains(t, codes(errs), ErrWeekdayInvalid)
	assert.Contains(t, codes(errs), ErrDigitInvalid)
	assert.Contains(t, codes(errs), ErrDigitDuplicate)
	assert.Len(t, errs, 3)
}

func TestValidateAffectedArea(t *testing.T) {
	doc := mustParse(t, `{"a": {"name": "A"}, "b": {"name": "B", "affected_area": {"description": "somewhere"}}}`)
	errs := ValidateDocument(doc, nil)
	require.Len(t, errs, 2)
	for _, e := range errs {
		assert.Equal(t, ErrRequired, e.Code)
	}
}

func TestValidateTruckZoneVehicleTypes(t *testing.T) {
	// схема с vuc_restrictions обязана возить ровно ["Trucks","VUCs"]
	doc := mustParse(t, `{"x": {
		"name": "X",
		"vuc_restrictions": {"monday_to_friday": ["10:00-14:00"]},
		"vehicle_types": ["VUCs", "Trucks"],
		"affected_area": {"map_link": "http://cet"}
	}}`)
	errs := ValidateDocument(doc, nil)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrEnumInvalid, errs[0].Code)
	assert.Equal(t, "x.vehicle_types", errs[0].Field)
}

func TestValidateVehicleTypesAgainstCatalog(t *testing.T) {
	catalogs := map[string]reference.Catalog{
		"vehicle_types": {Name: "vehicle_types", Items: []reference.CatalogItem{
			{Code: "Trucks"}, {Code: "VUCs"},
		}},
	}
	doc := mustParse(t, `{"x": {
		"name": "X",
		"vehicle_types": ["Trucks", "Bicycles"],
		"affected_area": {"map_link": "http://cet"}
	}}`)
	errs := ValidateDocument(doc, catalogs)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrEnumInvalid, errs[0].Code)
	assert.Equal(t, "x.vehicle_types[1]", errs[0].Field)
}
