package model

import (
	"fmt"
	"strings"
)

// Category names one of the independently toggleable metadata sets.
type Category string

const (
	CategoryNames      Category = "names"
	CategoryAttributes Category = "attributes"
	CategoryGeometry   Category = "geometry"
	CategoryProperties Category = "properties"
)

// Categories lists every category in fetch order.
var Categories = []Category{CategoryNames, CategoryAttributes, CategoryGeometry, CategoryProperties}

// Toggles records which categories the caller mentioned explicitly.
// A category that is not mentioned is enabled; only an explicit false
// turns it off.
type Toggles map[Category]bool

// Enabled reports whether c is switched on.
func (t Toggles) Enabled(c Category) bool {
	on, mentioned := t[c]
	return !mentioned || on
}

// Merge returns a copy of t with the entries of over applied on top.
func (t Toggles) Merge(over Toggles) Toggles {
	out := make(Toggles, len(t)+len(over))
	for k, v := range t {
		out[k] = v
	}
	for k, v := range over {
		out[k] = v
	}
	return out
}

// ParseCategory converts a category name (case-insensitive) to a Category.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category: %q (expected names, attributes, geometry, or properties)", s)
}
