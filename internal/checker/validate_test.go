package checker

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josephmachado/data-quality-checker/internal/source"
)

func TestValidate_AcceptsWellFormedChecks(t *testing.T) {
	ref := source.NewFile("customers.csv")

	checks := []Check{
		Unique{Column: "id"},
		NotNull{Column: "id"},
		Enum{Column: "status", Allowed: []string{"open", "closed"}},
		ReferentialIntegrity{Reference: ref, JoinKeys: []string{"customer_id"}},
		InData{Column: "id"},
		Between{Column: "price", Min: 0, Max: 100},
		RegexMatch{Column: "email", Pattern: `^[^@]+@[^@]+$`},
		OfType{Column: "age", Type: "integer"},
		LengthBetween{Column: "code", Min: 2, Max: 8},
		MaxBetween{Column: "price", Min: 0, Max: 100},
		MinBetween{Column: "price", Min: 0, Max: 100},
		MeanBetween{Column: "price", Min: 0, Max: 100},
		MedianBetween{Column: "price", Min: 0, Max: 100},
		DateFormat{Column: "day", Format: "%Y-%m-%d"},
		RowCountBetween{Min: 0, Max: 10},
		ColumnCountBetween{Min: 1, Max: 5},
		NotInSet{Column: "country", Denied: []string{"XX"}},
		Increasing{Column: "seq"},
		DateParseable{Column: "day"},
		PairsEqual{Column1: "a", Column2: "b"},
		DistinctInSet{Column: "status", Allowed: []string{"open"}},
	}

	for _, chk := range checks {
		t.Run(chk.Kind(), func(t *testing.T) {
			assert.NoError(t, Validate(chk))
		})
	}
}

func TestValidate_EqualBoundsAreValid(t *testing.T) {
	// Bounds are inclusive, so min == max accepts exactly one value.
	assert.NoError(t, Validate(Between{Column: "price", Min: 5, Max: 5}))
	assert.NoError(t, Validate(RowCountBetween{Min: 3, Max: 3}))
}

func TestValidate_RejectsBadArguments(t *testing.T) {
	ref := source.NewFile("customers.csv")

	tests := []struct {
		name      string
		chk       Check
		wantField string
	}{
		{"empty column", Unique{Column: ""}, "column"},
		{"oversized column", NotNull{Column: strings.Repeat("x", 257)}, "column"},
		{"control char in column", InData{Column: "a\x00b"}, "column"},
		{"empty allowed set", Enum{Column: "status", Allowed: nil}, "allowed"},
		{"nil reference", ReferentialIntegrity{Reference: nil, JoinKeys: []string{"id"}}, "reference"},
		{"empty join keys", ReferentialIntegrity{Reference: ref, JoinKeys: nil}, "join_keys"},
		{"bad join key", ReferentialIntegrity{Reference: ref, JoinKeys: []string{""}}, "join_keys"},
		{"inverted range", Between{Column: "price", Min: 10, Max: 1}, "min"},
		{"invalid pattern", RegexMatch{Column: "email", Pattern: "("}, "pattern"},
		{"unknown type", OfType{Column: "age", Type: "MEDIUMTEXT"}, "type"},
		{"type with injection", OfType{Column: "age", Type: "INTEGER; DROP TABLE log"}, "type"},
		{"inverted length range", LengthBetween{Column: "code", Min: 9, Max: 2}, "min"},
		{"inverted measure range", MeanBetween{Column: "price", Min: 50, Max: 0}, "min"},
		{"empty format", DateFormat{Column: "day", Format: ""}, "format"},
		{"inverted row count range", RowCountBetween{Min: 10, Max: 1}, "min"},
		{"inverted column count range", ColumnCountBetween{Min: 5, Max: 1}, "min"},
		{"empty denied set", NotInSet{Column: "country", Denied: []string{}}, "denied"},
		{"empty pair column", PairsEqual{Column1: "a", Column2: ""}, "column2"},
		{"empty distinct set", DistinctInSet{Column: "status", Allowed: nil}, "allowed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.chk)
			require.Error(t, err)
			assert.True(t, IsInvalidArgument(err))

			var ce *Error
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, tt.chk.Kind(), ce.Check)
			assert.Equal(t, tt.wantField, ce.Field)
		})
	}
}

func TestValidate_NilCheck(t *testing.T) {
	err := Validate(nil)
	require.Error(t, err)
	assert.True(t, IsInvalidArgument(err))
}

func TestValidate_HasNoSideEffects(t *testing.T) {
	// A failing validation must not touch the reference source.
	ref := source.NewFile("does-not-exist.csv")
	err := Validate(ReferentialIntegrity{Reference: ref, JoinKeys: []string{"id"}})
	assert.NoError(t, err)
}
