package wsdl

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorString(t *testing.T) {
	cause := errors.New("unexpected EOF")
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "kind only",
			err:  &Error{Kind: ErrNotAnElement},
			want: "wsdl: not an element",
		},
		{
			name: "kind and name",
			err:  elementNotFound("portType"),
			want: `wsdl: element not found "portType"`,
		},
		{
			name: "kind and cause",
			err:  parseError(cause),
			want: "wsdl: parse error: unexpected EOF",
		},
		{
			name: "kind name and cause",
			err:  unsupported("minOccurs", cause),
			want: `wsdl: unsupported "minOccurs": unexpected EOF`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	assert.ErrorIs(t, parseError(cause), cause)
	assert.Nil(t, elementNotFound("types").Unwrap())
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, ErrEmpty, KindOf(emptyElement("types")))
	assert.Equal(t, ErrEmpty, KindOf(fmt.Errorf("loading: %w", emptyElement("types"))))
	assert.Equal(t, ErrorKind(""), KindOf(errors.New("unrelated")))
	assert.Equal(t, ErrorKind(""), KindOf(nil))
}
