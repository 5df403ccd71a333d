package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/hl7-ucum/ucum-go/internal/pathutil"
)

//go:embed ucum_catalog.json
var defaultCatalogJSON []byte

// Default returns the catalog baked into the generator binary. cmd/ucumgen
// uses this unless --catalog points somewhere else.
func Default() (*Catalog, error) {
	return Parse(defaultCatalogJSON)
}

// LoadFile reads and parses a catalog JSON file from disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	return Parse(data)
}

// Load parses a catalog JSON document from r.
func Load(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes catalog JSON and validates structural invariants: no
// duplicate codes across base units, prefixes and units, and every record
// carries its required fields.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, pathutil.Wrap(pathutil.RecordCatalog, "", "", fmt.Errorf("%w: %v", pathutil.ErrInvalidCatalog, err))
	}

	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	seenAtom := make(map[string]string, len(c.BaseUnits)+len(c.Units))
	seenPrefix := make(map[string]string, len(c.Prefixes))

	for i, b := range c.BaseUnits {
		ref := recordRef(b.Code, i)
		if b.Code == "" {
			return pathutil.Wrap(pathutil.RecordBaseUnit, ref, "code", pathutil.ErrMissingRequired)
		}
		if b.Dim == "" {
			return pathutil.Wrap(pathutil.RecordBaseUnit, ref, "dim", pathutil.ErrMissingRequired)
		}
		if prev, ok := seenAtom[b.Code]; ok {
			return pathutil.Wrapf(pathutil.RecordBaseUnit, ref, "code", "duplicate atom code %q (already used by %s)", b.Code, prev)
		}
		seenAtom[b.Code] = ref
	}

	for i, p := range c.Prefixes {
		ref := recordRef(p.Code, i)
		if p.Code == "" {
			return pathutil.Wrap(pathutil.RecordPrefix, ref, "code", pathutil.ErrMissingRequired)
		}
		if p.Value == "" {
			return pathutil.Wrap(pathutil.RecordPrefix, ref, "value", pathutil.ErrMissingRequired)
		}
		if prev, ok := seenPrefix[p.Code]; ok {
			return pathutil.Wrapf(pathutil.RecordPrefix, ref, "code", "duplicate prefix code %q (already used by %s)", p.Code, prev)
		}
		seenPrefix[p.Code] = ref
	}

	for i, u := range c.Units {
		ref := recordRef(u.Code, i)
		if u.Code == "" {
			return pathutil.Wrap(pathutil.RecordUnit, ref, "code", pathutil.ErrMissingRequired)
		}
		if u.Value.Unit == "" {
			return pathutil.Wrap(pathutil.RecordUnit, ref, "value.unit", pathutil.ErrMissingRequired)
		}
		if !u.Special && u.Value.Factor == "" {
			return pathutil.Wrapf(pathutil.RecordUnit, ref, "value.factor", "%w: ratio unit %q has no factor", pathutil.ErrMissingRequired, u.Code)
		}
		if u.Special && u.Value.Function == "" {
			return pathutil.Wrapf(pathutil.RecordUnit, ref, "value.function", "%w: special unit %q has no function", pathutil.ErrMissingRequired, u.Code)
		}
		if prev, ok := seenAtom[u.Code]; ok {
			return pathutil.Wrapf(pathutil.RecordUnit, ref, "code", "duplicate atom code %q (already used by %s)", u.Code, prev)
		}
		seenAtom[u.Code] = ref
	}

	return nil
}

// recordRef identifies a record by its own code once it has one, falling
// back to its positional index for records still missing that code (the
// case a missing-required-field error itself needs to report).
func recordRef(code string, index int) string {
	if code != "" {
		return code
	}
	return fmt.Sprintf("%d", index)
}
