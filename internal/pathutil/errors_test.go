package pathutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordKindString(t *testing.T) {
	assert.Equal(t, "base_units", RecordBaseUnit.String())
	assert.Equal(t, "prefixes", RecordPrefix.String())
	assert.Equal(t, "units", RecordUnit.String())
	assert.Equal(t, "catalog", RecordCatalog.String())
}

func TestCatalogErrorMessage(t *testing.T) {
	t.Run("record and field", func(t *testing.T) {
		err := &CatalogError{Kind: RecordUnit, Code: "kg", Field: "value.factor", Err: errors.New("invalid value")}
		assert.Equal(t, "at units[kg].value.factor: invalid value", err.Error())
	})

	t.Run("record without field", func(t *testing.T) {
		err := &CatalogError{Kind: RecordUnit, Code: "kg", Err: errors.New("cycle detected")}
		assert.Equal(t, "at units[kg]: cycle detected", err.Error())
	})

	t.Run("catalog-level, no record", func(t *testing.T) {
		err := &CatalogError{Kind: RecordCatalog, Err: errors.New("malformed JSON")}
		assert.Equal(t, "at catalog: malformed JSON", err.Error())
	})

	t.Run("unwrap", func(t *testing.T) {
		inner := errors.New("inner error")
		err := &CatalogError{Kind: RecordPrefix, Code: "k", Err: inner}
		assert.Equal(t, inner, err.Unwrap())
		assert.True(t, errors.Is(err, inner))
	})
}

func TestWrap(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, Wrap(RecordUnit, "kg", "value", nil))
	})

	t.Run("wraps error", func(t *testing.T) {
		inner := errors.New("something failed")
		result := Wrap(RecordUnit, "kg", "value.factor", inner)
		assert.NotNil(t, result)
		assert.Contains(t, result.Error(), "units[kg].value.factor")
		assert.Contains(t, result.Error(), "something failed")
	})
}

func TestWrapf(t *testing.T) {
	err := Wrapf(RecordUnit, "kg", "value.factor", "expected %s, got %s", "number", "string")
	assert.Contains(t, err.Error(), "units[kg].value.factor")
	assert.Contains(t, err.Error(), "expected number, got string")
}

func TestRecordLocation(t *testing.T) {
	t.Run("from CatalogError", func(t *testing.T) {
		err := Wrap(RecordUnit, "kg", "", errors.New("error"))
		assert.Equal(t, "units[kg]", RecordLocation(err))
	})

	t.Run("from wrapped CatalogError", func(t *testing.T) {
		inner := Wrap(RecordPrefix, "k", "value", errors.New("error"))
		wrapped := fmt.Errorf("outer: %w", inner)
		assert.Equal(t, "prefixes[k].value", RecordLocation(wrapped))
	})

	t.Run("not a CatalogError", func(t *testing.T) {
		assert.Equal(t, "", RecordLocation(errors.New("plain error")))
	})

	t.Run("nil error", func(t *testing.T) {
		assert.Equal(t, "", RecordLocation(nil))
	})
}

func TestSentinelErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"ErrInvalidCatalog", ErrInvalidCatalog},
		{"ErrUnknownAtomRef", ErrUnknownAtomRef},
		{"ErrCycle", ErrCycle},
		{"ErrMissingRequired", ErrMissingRequired},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := fmt.Errorf("wrapped: %w", tc.err)
			assert.True(t, errors.Is(wrapped, tc.err))
		})
	}
}

func TestWrapCarriesCatalogErrorThroughFmtErrorf(t *testing.T) {
	// A CatalogError produced deep in analysis should still be reachable by
	// RecordLocation even after a caller wraps it again with fmt.Errorf, the
	// way cmd/ucumgen does.
	inner := Wrapf(RecordUnit, "Cel", "value.unit", "unknown atom reference: %q", "bogus")
	outer := fmt.Errorf("analyzing catalog: %w", inner)
	assert.Equal(t, "units[Cel].value.unit", RecordLocation(outer))
	assert.Contains(t, outer.Error(), "unknown atom reference")
}
