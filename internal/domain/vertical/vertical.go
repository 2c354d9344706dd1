// Package vertical defines the closed catalog of content categories.
// The catalog is seeded once at migration time and is immutable afterwards.
package vertical

import "fmt"

// Code is the one-letter storage code of a vertical.
type Code string

const (
	CodePolitics Code = "P"
	CodeTaxes    Code = "T"
	CodeHealth   Code = "H"
	CodeEnergy   Code = "E"
	CodeLabor    Code = "W"
)

var codeNames = map[Code]string{
	CodePolitics: "Politics",
	CodeTaxes:    "Taxes",
	CodeHealth:   "Health",
	CodeEnergy:   "Energy",
	CodeLabor:    "Labor",
}

// Catalog returns all verticals in a stable order.
func Catalog() []Code {
	return []Code{CodePolitics, CodeTaxes, CodeHealth, CodeEnergy, CodeLabor}
}

// Names returns the display names of all verticals in catalog order.
func Names() []string {
	catalog := Catalog()
	names := make([]string, 0, len(catalog))
	for _, c := range catalog {
		names = append(names, codeNames[c])
	}
	return names
}

// IsValid reports whether the code belongs to the catalog.
func (c Code) IsValid() bool {
	_, ok := codeNames[c]
	return ok
}

// Name returns the display name of the vertical.
func (c Code) Name() string {
	return codeNames[c]
}

func (c Code) String() string {
	return string(c)
}

// ParseCode converts a storage code into a catalog Code.
func ParseCode(raw string) (Code, error) {
	c := Code(raw)
	if !c.IsValid() {
		return "", fmt.Errorf("unknown vertical code: %q", raw)
	}
	return c, nil
}

// ParseName converts a display name into a catalog Code.
func ParseName(name string) (Code, error) {
	for code, n := range codeNames {
		if n == name {
			return code, nil
		}
	}
	return "", fmt.Errorf("unknown vertical: %q", name)
}

// ParseNames converts a list of display names, rejecting unknown entries.
func ParseNames(names []string) ([]Code, error) {
	codes := make([]Code, 0, len(names))
	for _, name := range names {
		code, err := ParseName(name)
		if err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}
	return codes, nil
}

// NamesOf returns the display names of the given codes.
func NamesOf(codes []Code) []string {
	names := make([]string, 0, len(codes))
	for _, c := range codes {
		names = append(names, c.Name())
	}
	return names
}

// Intersects reports whether the two code sets share at least one vertical.
func Intersects(a, b []Code) bool {
	set := make(map[Code]struct{}, len(a))
	for _, c := range a {
		set[c] = struct{}{}
	}
	for _, c := range b {
		if _, ok := set[c]; ok {
			return true
		}
	}
	return false
}
