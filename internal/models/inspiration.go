package models

// TravelCategory is a themed browsing entry on the inspiration section.
type TravelCategory struct {
	Name  string `json:"name" yaml:"name"`
	Icon  string `json:"icon" yaml:"icon"`
	Color string `json:"color" yaml:"color"`
}

// TravelQuote is a rotating quote shown alongside the inspiration cards.
type TravelQuote struct {
	Quote  string `json:"quote" yaml:"quote"`
	Author string `json:"author" yaml:"author"`
}
