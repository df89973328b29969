package models

// PackingCategory groups packing items for display.
type PackingCategory string

// Packing categories.
const (
	CategoryClothing      PackingCategory = "clothing"
	CategoryToiletries    PackingCategory = "toiletries"
	CategoryElectronics   PackingCategory = "electronics"
	CategoryDocuments     PackingCategory = "documents"
	CategoryMiscellaneous PackingCategory = "miscellaneous"
)

// PackingItem is a single checklist entry. Items are seeded from the catalog
// and never created or deleted at runtime; only Packed changes.
type PackingItem struct {
	ID        string          `json:"id" yaml:"id"`
	Name      string          `json:"name" yaml:"name"`
	Category  PackingCategory `json:"category" yaml:"category"`
	Packed    bool            `json:"packed" yaml:"packed"`
	Essential bool            `json:"essential" yaml:"essential"`
}

// PackingSummary is the derived progress view of a checklist.
type PackingSummary struct {
	Total   int `json:"total"`
	Packed  int `json:"packed"`
	Percent int `json:"percent"`
}
