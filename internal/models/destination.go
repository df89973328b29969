package models

// Region is a continent-level grouping for destinations.
type Region string

// Destination regions.
const (
	RegionAsia         Region = "Asia"
	RegionEurope       Region = "Europe"
	RegionAfrica       Region = "Africa"
	RegionNorthAmerica Region = "North America"
	RegionSouthAmerica Region = "South America"
	RegionOceania      Region = "Oceania"
)

// Destination is a catalog entry describing a travel destination.
type Destination struct {
	ID              string   `json:"id" yaml:"id"`
	Name            string   `json:"name" yaml:"name"`
	Country         string   `json:"country" yaml:"country"`
	Region          Region   `json:"region" yaml:"region"`
	Emoji           string   `json:"emoji" yaml:"emoji"`
	Description     string   `json:"description" yaml:"description"`
	LongDescription string   `json:"long_description" yaml:"long_description"`
	ImageURL        string   `json:"image_url" yaml:"image_url"`
	Highlights      []string `json:"highlights" yaml:"highlights"`
}
