package model

import (
	"errors"
	"fmt"
	"strings"
)

// Category is the weather assigned to a simulated day.
// Keep these values stable; they are part of the API and CSV output.
type Category string

const (
	Drought   Category = "DROUGHT"
	Rain      Category = "RAIN"
	Optimal   Category = "OPTIMAL"
	Undefined Category = "UNDEFINED"
)

// Categories lists every category in reporting order.
var Categories = []Category{Drought, Rain, Optimal, Undefined}

var ErrUnknownCategory = errors.New("unknown weather category")

func (c Category) Valid() bool {
	switch c {
	case Drought, Rain, Optimal, Undefined:
		return true
	}
	return false
}

// ParseCategory matches a category name case-insensitively.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToUpper(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}
