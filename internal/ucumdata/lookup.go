package ucumdata

import "sync"

var (
	atomsByCode    map[string]Atom
	prefixesByCode map[string]Prefix
	initOnce       sync.Once
)

func buildIndexes() {
	atomsByCode = make(map[string]Atom, len(Atoms)*2)
	for _, a := range Atoms {
		atomsByCode[a.Code] = a
		if a.SecondaryCode != "" {
			atomsByCode[a.SecondaryCode] = a
		}
	}

	prefixesByCode = make(map[string]Prefix, len(Prefixes)*2)
	for _, p := range Prefixes {
		prefixesByCode[p.Code] = p
		if p.SecondaryCode != "" {
			prefixesByCode[p.SecondaryCode] = p
		}
	}
}

// AtomByCode looks up an atom by its primary or secondary code.
func AtomByCode(code string) (Atom, bool) {
	initOnce.Do(buildIndexes)
	a, ok := atomsByCode[code]
	return a, ok
}

// PrefixByCode looks up a prefix by its primary or secondary code.
func PrefixByCode(code string) (Prefix, bool) {
	initOnce.Do(buildIndexes)
	p, ok := prefixesByCode[code]
	return p, ok
}

// AtomCodes returns every known atom's primary code, in table order.
func AtomCodes() []string {
	codes := make([]string, len(Atoms))
	for i, a := range Atoms {
		codes[i] = a.Code
	}
	return codes
}

// PrefixCodes returns every known prefix's primary code, in table order.
func PrefixCodes() []string {
	codes := make([]string, len(Prefixes))
	for i, p := range Prefixes {
		codes[i] = p.Code
	}
	return codes
}
