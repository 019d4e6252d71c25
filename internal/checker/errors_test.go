package checker

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "code and message only",
			err:  &Error{Code: ErrCodeInvalidArgument, Message: "check is nil"},
			want: "INVALID_ARGUMENT: check is nil",
		},
		{
			name: "with check and field",
			err:  newArgError("is_column_unique", "column", "column is not a usable identifier", nil),
			want: "INVALID_ARGUMENT: column is not a usable identifier (check=is_column_unique, field=column)",
		},
		{
			name: "with cause",
			err:  newArgError("is_column_regex_match", "pattern", "pattern is not a valid regular expression", errors.New("missing closing )")),
			want: "INVALID_ARGUMENT: pattern is not a valid regular expression (check=is_column_regex_match, field=pattern): missing closing )",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := newArgError("is_column_enum", "allowed", "value set is empty", cause)

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestIsInvalidArgument(t *testing.T) {
	argErr := newArgError("is_column_unique", "column", "column is not a usable identifier", nil)

	assert.True(t, IsInvalidArgument(argErr))
	assert.True(t, IsInvalidArgument(fmt.Errorf("run check: %w", argErr)))
	assert.False(t, IsInvalidArgument(errors.New("plain error")))
	assert.False(t, IsInvalidArgument(nil))
}
