package game

import (
	"testing"

	"github.com/thryft-app/thryft/internal/models"
)

var streetChallenge = models.Challenge{
	ID:                 "street",
	RequiredCategories: []string{CategoryTops, CategoryBottoms, CategoryShoes},
	BonusCategories:    []string{CategoryAccessories},
}

func item(id, category string) models.ClosetItem {
	return models.ClosetItem{ID: id, Name: id, Category: category, Image: "https://img.example/" + id}
}

func equip(items ...models.ClosetItem) Equipment {
	var eq Equipment
	for _, it := range items {
		eq.Equip(it)
	}
	return eq
}

func TestScore_Examples(t *testing.T) {
	tests := []struct {
		name string
		eq   Equipment
		time int
		want int
	}{
		{
			name: "required plus accessory bonus",
			eq:   equip(item("t", CategoryTops), item("b", CategoryBottoms), item("s", CategoryShoes), item("a", CategoryAccessories)),
			time: 20,
			want: 28,
		},
		{
			name: "no bonus slots filled",
			eq:   equip(item("t", CategoryTops), item("b", CategoryBottoms), item("s", CategoryShoes)),
			time: 20,
			want: 25,
		},
		{
			name: "odd seconds floor",
			eq:   equip(item("t", CategoryTops), item("b", CategoryBottoms), item("s", CategoryShoes)),
			time: 7,
			want: 18,
		},
		{
			name: "non-bonus slot earns nothing",
			eq:   equip(item("t", CategoryTops), item("b", CategoryBottoms), item("s", CategoryShoes), item("h", CategoryHats)),
			time: 0,
			want: 15,
		},
		{
			name: "empty equipment earns only time",
			eq:   Equipment{},
			time: 30,
			want: 15,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.eq, streetChallenge, tt.time); got != tt.want {
				t.Errorf("Score() = %d, want %d", got, tt.want)
			}
		})
	}
}

// TestScore_MatchesSetFormula checks every catalog challenge against every
// combination of occupied slots.
func TestScore_MatchesSetFormula(t *testing.T) {
	categories := BaseCategories()
	times := []int{0, 1, 7, 20, 30}

	for _, c := range Challenges() {
		for mask := 0; mask < 1<<len(categories); mask++ {
			var eq Equipment
			occupied := map[string]bool{}
			for i, cat := range categories {
				if mask&(1<<i) != 0 {
					eq.Equip(item(cat, cat))
					occupied[cat] = true
				}
			}

			required, bonus := 0, 0
			for _, cat := range c.RequiredCategories {
				if occupied[cat] {
					required++
				}
			}
			for _, cat := range c.BonusCategories {
				if occupied[cat] {
					bonus++
				}
			}

			for _, secs := range times {
				want := 5*required + 3*bonus + secs/2
				if got := Score(eq, c, secs); got != want {
					t.Fatalf("challenge %s mask %06b t=%d: got %d, want %d", c.ID, mask, secs, got, want)
				}
			}
		}
	}
}

func TestTimeBonus(t *testing.T) {
	tests := map[int]int{-3: 0, 0: 0, 1: 0, 2: 1, 29: 14, 30: 15}
	for in, want := range tests {
		if got := TimeBonus(in); got != want {
			t.Errorf("TimeBonus(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestScore_RepeatedCategoryCountsOnce(t *testing.T) {
	c := models.Challenge{
		ID:                 "doubled",
		RequiredCategories: []string{CategoryTops, CategoryTops, CategoryBottoms, CategoryShoes},
		BonusCategories:    []string{CategoryHats, CategoryHats},
	}
	eq := equip(item("t", CategoryTops), item("b", CategoryBottoms), item("s", CategoryShoes), item("h", CategoryHats))

	if got, want := Score(eq, c, 0), 3*RequiredPoints+BonusPoints; got != want {
		t.Errorf("expected %d, got %d", want, got)
	}
}
