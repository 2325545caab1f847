package model

import "errors"

var ErrInvalidCategory = errors.New("invalid category")

// Category is a closed set of catalog labels. The member set is business
// data; membership is checked against an explicit lookup table.
type Category string

const (
	CategoryElectronics Category = "Electronics"
	CategoryClothing    Category = "Clothing"
	CategoryFood        Category = "Food"
	CategoryBooks       Category = "Books"
	CategoryToys        Category = "Toys"
)

var validCategories = map[Category]struct{}{
	CategoryElectronics: {},
	CategoryClothing:    {},
	CategoryFood:        {},
	CategoryBooks:       {},
	CategoryToys:        {},
}

func (c Category) IsValid() bool {
	_, ok := validCategories[c]
	return ok
}

// Categories returns all valid members.
func Categories() []Category {
	categories := make([]Category, 0, len(validCategories))
	for c := range validCategories {
		categories = append(categories, c)
	}
	return categories
}

// ParseCategory converts a raw string into a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}
