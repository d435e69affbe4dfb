package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Is(t *testing.T) {
	t.Parallel()

	err := New(ErrInvalidFormat, "xid.Service", "bob")
	assert.ErrorIs(t, err, ErrInvalidFormat)
	assert.NotErrorIs(t, err, ErrEmptyInput)

	wrapped := fmt.Errorf("lookup: %w", err)
	assert.ErrorIs(t, wrapped, ErrInvalidFormat)
}

func TestError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("invalid URL escape \"%zz\"")
	err := Wrap(ErrDecode, "query.DecodeComponent", "%zz", cause)

	assert.ErrorIs(t, err, ErrDecode)
	assert.ErrorIs(t, err, cause)

	var target *Error
	assert.ErrorAs(t, err, &target)
	assert.Equal(t, "query.DecodeComponent", target.Op)
	assert.Equal(t, "%zz", target.Input)
}

func TestError_Message(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"kind only", New(ErrEmptyInput, "xid.ID", ""), "xid.ID: empty input"},
		{"with input", New(ErrInvalidFormat, "xid.Service", "bob"), `xid.Service: invalid format (input "bob")`},
		{"with cause", Wrap(ErrDecode, "decode", "%", errors.New("bad escape")), `decode: decode error (input "%"): bad escape`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}
