package packing

import (
	"testing"

	"github.com/skovand/travelease/internal/models"
)

func seedItems() []models.PackingItem {
	return []models.PackingItem{
		{ID: "p1", Name: "Passport", Category: models.CategoryDocuments, Essential: true},
		{ID: "p2", Name: "Charger", Category: models.CategoryElectronics, Essential: true},
		{ID: "p3", Name: "Swimwear", Category: models.CategoryClothing},
		{ID: "p4", Name: "Guidebook", Category: models.CategoryMiscellaneous},
	}
}

func TestTogglePacked(t *testing.T) {
	c := New(seedItems())

	c.TogglePacked("p1")
	if !c.Items()[0].Packed {
		t.Fatal("p1 not packed after toggle")
	}
	c.TogglePacked("p1")
	if c.Items()[0].Packed {
		t.Fatal("p1 still packed after second toggle")
	}
}

func TestTogglePackedMissIsNoop(t *testing.T) {
	c := New(seedItems())
	c.TogglePacked("missing")
	for _, item := range c.Items() {
		if item.Packed {
			t.Errorf("item %s packed by miss toggle", item.ID)
		}
	}
}

func TestSummary(t *testing.T) {
	c := New(seedItems())
	c.TogglePacked("p1")
	c.TogglePacked("p3")

	got := c.Summary()
	want := models.PackingSummary{Total: 4, Packed: 2, Percent: 50}
	if got != want {
		t.Errorf("summary = %+v, want %+v", got, want)
	}
}

func TestSummaryRounds(t *testing.T) {
	c := New(seedItems()[:3])
	c.TogglePacked("p1")
	// 1/3 = 33.33 -> 33.
	if got := c.Summary().Percent; got != 33 {
		t.Errorf("percent = %d, want 33", got)
	}
	c.TogglePacked("p2")
	// 2/3 = 66.67 -> 67.
	if got := c.Summary().Percent; got != 67 {
		t.Errorf("percent = %d, want 67", got)
	}
}

func TestSummaryEmptyList(t *testing.T) {
	c := New(nil)
	got := c.Summary()
	if got != (models.PackingSummary{}) {
		t.Errorf("empty summary = %+v, want zeros", got)
	}
}

func TestPartition(t *testing.T) {
	c := New(seedItems())
	essential, optional := c.Partition()

	if len(essential) != 2 || len(optional) != 2 {
		t.Fatalf("partition = %d/%d, want 2/2", len(essential), len(optional))
	}
	if essential[0].ID != "p1" || optional[0].ID != "p3" {
		t.Errorf("partition order: essential[0]=%s optional[0]=%s", essential[0].ID, optional[0].ID)
	}

	// Partition is a view: toggling afterwards must not be visible in the
	// returned slices.
	c.TogglePacked("p1")
	if essential[0].Packed {
		t.Error("partition slice aliases checklist state")
	}
}

func TestNewCopiesSeed(t *testing.T) {
	seed := seedItems()
	c := New(seed)
	seed[0].Packed = true
	if c.Items()[0].Packed {
		t.Error("checklist aliases caller's seed slice")
	}
}
