package ucum

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseErrorUnwrapsToSentinelByKind(t *testing.T) {
	_, err := Parse("qqzz")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnableToParseSymbol))
}

func TestParseErrorSyntaxUnwrapsToTermSentinel(t *testing.T) {
	_, err := Parse("(m.s")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnableToParseTerm))
}

func TestParseErrorMessageIncludesFragmentAndOffset(t *testing.T) {
	_, err := Parse("m{foo")
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, KindSyntax, perr.Kind)
	assert.NotEmpty(t, perr.Message)
	assert.Equal(t, "{foo", perr.Fragment)
	assert.Equal(t, 1, perr.ByteOffset)
	assert.Contains(t, perr.Error(), "at byte 1")
	assert.Contains(t, perr.Error(), `"{foo"`)
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "SyntaxError", KindSyntax.String())
	assert.Equal(t, "UnknownSymbolError", KindUnknownSymbol.String())
	assert.Equal(t, "IntegerError", KindInteger.String())
}

func TestIncompatibleUnitsErrorIsMatchesByType(t *testing.T) {
	err := &IncompatibleUnitsError{LHS: "m", RHS: "s"}
	assert.True(t, errors.Is(err, new(IncompatibleUnitsError)))

	other := &IncompatibleUnitsError{LHS: "x", RHS: "y"}
	assert.True(t, errors.Is(other, err))
}

func TestIncompatibleUnitsErrorMessage(t *testing.T) {
	err := &IncompatibleUnitsError{LHS: "m", RHS: "s"}
	assert.Contains(t, err.Error(), "m")
	assert.Contains(t, err.Error(), "s")
}
