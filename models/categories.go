package models

import "sort"

// Menu categories in fixed display order. Ordering is an explicit rank
// table, not the declaration order of any language construct.
const (
	CategoryAntipasti = "antipasti"
	CategoryPrimi     = "primi"
	CategorySecondi   = "secondi"
	CategoryContorni  = "contorni"
	CategoryDolci     = "dolci"
	CategoryBevande   = "bevande"
)

var categoryRank = map[string]int{
	CategoryAntipasti: 0,
	CategoryPrimi:     1,
	CategorySecondi:   2,
	CategoryContorni:  3,
	CategoryDolci:     4,
	CategoryBevande:   5,
}

// CategoryLabels maps a category to its display label.
var CategoryLabels = map[string]string{
	CategoryAntipasti: "Antipasti",
	CategoryPrimi:     "Primi Piatti",
	CategorySecondi:   "Secondi Piatti",
	CategoryContorni:  "Contorni",
	CategoryDolci:     "Dolci",
	CategoryBevande:   "Bevande",
}

func IsValidCategory(category string) bool {
	_, ok := categoryRank[category]
	return ok
}

// CategoryRank returns the display rank of a category. Unknown
// categories sort after every known one.
func CategoryRank(category string) int {
	if rank, ok := categoryRank[category]; ok {
		return rank
	}
	return len(categoryRank)
}

// SortDishesByCategory orders dishes by menu section, then by name
// within a section, so both registers render the menu identically.
func SortDishesByCategory(dishes []Dish) {
	sort.SliceStable(dishes, func(i, j int) bool {
		ri, rj := CategoryRank(dishes[i].Category), CategoryRank(dishes[j].Category)
		if ri != rj {
			return ri < rj
		}
		return dishes[i].Name < dishes[j].Name
	})
}
