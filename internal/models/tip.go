package models

// TipCategory groups travel tips for filtering.
type TipCategory string

// Tip categories.
const (
	TipPacking     TipCategory = "packing"
	TipSafety      TipCategory = "safety"
	TipBudgeting   TipCategory = "budgeting"
	TipPhotography TipCategory = "photography"
	TipEtiquette   TipCategory = "etiquette"
	TipGeneral     TipCategory = "general"
)

// Tip is a catalog entry with practical travel advice.
type Tip struct {
	ID       string      `json:"id" yaml:"id"`
	Title    string      `json:"title" yaml:"title"`
	Content  string      `json:"content" yaml:"content"`
	Category TipCategory `json:"category" yaml:"category"`
}
