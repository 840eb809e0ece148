// Package piece holds the piece catalog: the closed set of shape labels,
// their spawn layouts, colors and rotation tables, plus spawning and the
// pure rotation function.
package piece

import (
	"errors"
	"fmt"
	"strings"
)

// Label identifies a piece shape.
type Label int

const (
	T Label = iota
	S
	Z
	L
	J
	O
	I
	BaneT
	BaneO
	BaneS
	BaneX
	BaneI
	BaneL
	BaneBox
)

// ErrUnknownLabel is returned by ParseLabel for names outside the catalog.
var ErrUnknownLabel = errors.New("piece: unknown label")

var labelNames = map[Label]string{
	T:       "T",
	S:       "S",
	Z:       "Z",
	L:       "L",
	J:       "J",
	O:       "O",
	I:       "I",
	BaneT:   "BaneT",
	BaneO:   "BaneO",
	BaneS:   "BaneS",
	BaneX:   "BaneX",
	BaneI:   "BaneI",
	BaneL:   "BaneL",
	BaneBox: "BaneBox",
}

// String returns the label name as used in configuration files.
func (l Label) String() string {
	if name, ok := labelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("Label(%d)", int(l))
}

// ParseLabel resolves a label name. Matching is case-insensitive and
// ignores '_' and '-', so "bane_t" and "BaneT" are the same label.
func ParseLabel(name string) (Label, error) {
	norm := strings.NewReplacer("_", "", "-", "").Replace(strings.TrimSpace(name))
	for l, n := range labelNames {
		if strings.EqualFold(n, norm) {
			return l, nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownLabel, name)
}

// ParseLabels resolves a list of label names, failing on the first unknown one.
func ParseLabels(names []string) ([]Label, error) {
	labels := make([]Label, 0, len(names))
	for _, name := range names {
		l, err := ParseLabel(name)
		if err != nil {
			return nil, err
		}
		labels = append(labels, l)
	}
	return labels, nil
}
