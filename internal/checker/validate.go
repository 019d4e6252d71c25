package checker

import (
	"fmt"
	"regexp"

	"github.com/josephmachado/data-quality-checker/internal/checksql"
)

// Validate checks a Check's parameters against its contract.
//
// Validation runs before any source is opened or query compiled, so an
// invalid request never touches the engine and never produces a log
// record. Returns an invalid-argument Error describing the first
// violation found, or nil.
//
// Validate is a pure function with no side effects.
func Validate(chk Check) error {
	if chk == nil {
		return &Error{Code: ErrCodeInvalidArgument, Message: "check is nil"}
	}

	switch c := chk.(type) {
	case Unique:
		return validateColumn(c, "column", c.Column)
	case NotNull:
		return validateColumn(c, "column", c.Column)
	case Enum:
		if err := validateColumn(c, "column", c.Column); err != nil {
			return err
		}
		return validateValueSet(c, "allowed", c.Allowed)
	case ReferentialIntegrity:
		return validateReferential(c)
	case InData:
		return validateColumn(c, "column", c.Column)
	case Between:
		if err := validateColumn(c, "column", c.Column); err != nil {
			return err
		}
		return validateRange(c, c.Min, c.Max)
	case RegexMatch:
		if err := validateColumn(c, "column", c.Column); err != nil {
			return err
		}
		if _, err := regexp.Compile(c.Pattern); err != nil {
			return newArgError(c.Kind(), "pattern", "pattern is not a valid regular expression", err)
		}
		return nil
	case OfType:
		if err := validateColumn(c, "column", c.Column); err != nil {
			return err
		}
		if _, err := checksql.NormalizeTypeName(c.Type); err != nil {
			return newArgError(c.Kind(), "type", "unknown column type", err)
		}
		return nil
	case LengthBetween:
		if err := validateColumn(c, "column", c.Column); err != nil {
			return err
		}
		return validateRange(c, float64(c.Min), float64(c.Max))
	case MaxBetween:
		if err := validateColumn(c, "column", c.Column); err != nil {
			return err
		}
		return validateRange(c, c.Min, c.Max)
	case MinBetween:
		if err := validateColumn(c, "column", c.Column); err != nil {
			return err
		}
		return validateRange(c, c.Min, c.Max)
	case MeanBetween:
		if err := validateColumn(c, "column", c.Column); err != nil {
			return err
		}
		return validateRange(c, c.Min, c.Max)
	case MedianBetween:
		if err := validateColumn(c, "column", c.Column); err != nil {
			return err
		}
		return validateRange(c, c.Min, c.Max)
	case DateFormat:
		if err := validateColumn(c, "column", c.Column); err != nil {
			return err
		}
		if c.Format == "" {
			return newArgError(c.Kind(), "format", "format is empty", nil)
		}
		return nil
	case RowCountBetween:
		return validateRange(c, float64(c.Min), float64(c.Max))
	case ColumnCountBetween:
		return validateRange(c, float64(c.Min), float64(c.Max))
	case NotInSet:
		if err := validateColumn(c, "column", c.Column); err != nil {
			return err
		}
		return validateValueSet(c, "denied", c.Denied)
	case Increasing:
		return validateColumn(c, "column", c.Column)
	case DateParseable:
		return validateColumn(c, "column", c.Column)
	case PairsEqual:
		if err := validateColumn(c, "column1", c.Column1); err != nil {
			return err
		}
		return validateColumn(c, "column2", c.Column2)
	case DistinctInSet:
		if err := validateColumn(c, "column", c.Column); err != nil {
			return err
		}
		return validateValueSet(c, "allowed", c.Allowed)
	default:
		return &Error{
			Code:    ErrCodeInvalidArgument,
			Message: fmt.Sprintf("unknown check type %T", chk),
		}
	}
}

// validateColumn checks that a column parameter is a usable identifier.
func validateColumn(chk Check, field, column string) error {
	if err := checksql.ValidateIdent(column); err != nil {
		return newArgError(chk.Kind(), field, "column is not a usable identifier", err)
	}
	return nil
}

// validateValueSet checks that a value-set parameter is non-empty.
func validateValueSet(chk Check, field string, values []string) error {
	if len(values) == 0 {
		return newArgError(chk.Kind(), field, "value set is empty", nil)
	}
	return nil
}

// validateRange checks that a [min, max] range is not inverted.
func validateRange(chk Check, min, max float64) error {
	if min > max {
		return newArgError(chk.Kind(), "min", fmt.Sprintf("min %v exceeds max %v", min, max), nil)
	}
	return nil
}

// validateReferential checks the two-table check's reference and keys.
func validateReferential(c ReferentialIntegrity) error {
	if c.Reference == nil {
		return newArgError(c.Kind(), "reference", "reference source is nil", nil)
	}
	if len(c.JoinKeys) == 0 {
		return newArgError(c.Kind(), "join_keys", "join key list is empty", nil)
	}
	for _, key := range c.JoinKeys {
		if err := checksql.ValidateIdent(key); err != nil {
			return newArgError(c.Kind(), "join_keys", "join key is not a usable identifier", err)
		}
	}
	return nil
}
