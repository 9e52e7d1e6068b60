package game

import "github.com/thryft-app/thryft/internal/models"

// Backgrounds are the scene identifiers an outfit can be staged on.
// The first entry is the default.
var Backgrounds = []string{"room1", "room2", "street", "park"}

// DefaultBackground is the scene a new session starts with
func DefaultBackground() string {
	return Backgrounds[0]
}

// IsBackground reports whether bg is a known scene
func IsBackground(bg string) bool {
	for _, b := range Backgrounds {
		if b == bg {
			return true
		}
	}
	return false
}

// Challenges returns a copy of the static challenge catalog
func Challenges() []models.Challenge {
	out := make([]models.Challenge, len(catalog))
	copy(out, catalog)
	return out
}

// FindChallenge looks a challenge up by id
func FindChallenge(id string) (models.Challenge, bool) {
	for _, c := range catalog {
		if c.ID == id {
			return c, true
		}
	}
	return models.Challenge{}, false
}

var catalog = []models.Challenge{
	{
		ID:                 "cozy",
		Label:              "Comfy & Cozy",
		Description:        "Build a comfy outfit for relaxing or a casual day out.",
		RequiredCategories: []string{CategoryTops, CategoryBottoms, CategoryShoes},
		BonusCategories:    []string{CategoryJackets, CategoryAccessories},
	},
	{
		ID:                 "retro",
		Label:              "Retro Vibes",
		Description:        "Put together a throwback look with retro flair.",
		RequiredCategories: []string{CategoryTops, CategoryBottoms, CategoryShoes},
		BonusCategories:    []string{CategoryHats, CategoryAccessories},
	},
	{
		ID:                 "street",
		Label:              "Street Style",
		Description:        "Build a bold, streetwear-inspired outfit.",
		RequiredCategories: []string{CategoryTops, CategoryBottoms, CategoryShoes},
		BonusCategories:    []string{CategoryAccessories},
	},
	{
		ID:                 "freestyle",
		Label:              "Freestyle",
		Description:        "Anything goes! Just make it look good.",
		RequiredCategories: []string{CategoryTops, CategoryBottoms, CategoryShoes},
		BonusCategories:    []string{CategoryJackets, CategoryAccessories, CategoryHats},
	},
	{
		ID:                 "date-night",
		Label:              "Date Night",
		Description:        "Style a romantic, put-together outfit for a night out.",
		RequiredCategories: []string{CategoryTops, CategoryBottoms, CategoryShoes},
		BonusCategories:    []string{CategoryAccessories},
	},
	{
		ID:                 "girls-night",
		Label:              "Girls Night Out",
		Description:        "Fun, trendy, and eye-catching — perfect for the night!",
		RequiredCategories: []string{CategoryTops, CategoryBottoms, CategoryShoes},
		BonusCategories:    []string{CategoryAccessories},
	},
	{
		ID:                 "dinner-party",
		Label:              "Dinner Party",
		Description:        "Elegant and warm — dress like you're hosting a dinner.",
		RequiredCategories: []string{CategoryTops, CategoryBottoms},
		BonusCategories:    []string{CategoryJackets, CategoryAccessories},
	},
	{
		ID:                 "summer-day",
		Label:              "Summer Day Out",
		Description:        "Choose a breezy outfit perfect for warm weather.",
		RequiredCategories: []string{CategoryTops, CategoryBottoms},
		BonusCategories:    []string{CategoryAccessories, CategoryHats},
	},
	{
		ID:                 "winter-warm",
		Label:              "Winter Warm",
		Description:        "Style a warm, layered outfit for cold weather.",
		RequiredCategories: []string{CategoryTops, CategoryBottoms, CategoryJackets},
		BonusCategories:    []string{CategoryAccessories, CategoryHats},
	},
	{
		ID:                 "spring-fresh",
		Label:              "Spring Fresh",
		Description:        "Bright, light, and fresh — perfect spring vibes.",
		RequiredCategories: []string{CategoryTops, CategoryBottoms},
		BonusCategories:    []string{CategoryAccessories},
	},
	{
		ID:                 "autumn-layers",
		Label:              "Autumn Layers",
		Description:        "Cosy layered look with warm tones.",
		RequiredCategories: []string{CategoryTops, CategoryBottoms, CategoryJackets},
		BonusCategories:    []string{CategoryAccessories},
	},
	{
		ID:                 "office-chic",
		Label:              "Office Chic",
		Description:        "A clean, professional fit for work.",
		RequiredCategories: []string{CategoryTops, CategoryBottoms, CategoryShoes},
		BonusCategories:    []string{CategoryJackets},
	},
	{
		ID:                 "intern-day",
		Label:              "Intern Day",
		Description:        "A sensible but stylish outfit for your first day.",
		RequiredCategories: []string{CategoryTops, CategoryBottoms},
		BonusCategories:    []string{CategoryAccessories},
	},
	{
		ID:                 "back-to-school",
		Label:              "Back to School",
		Description:        "A simple, casual school-day look.",
		RequiredCategories: []string{CategoryTops, CategoryBottoms},
		BonusCategories:    []string{CategoryAccessories, CategoryHats},
	},
	{
		ID:                 "minimalist",
		Label:              "Minimalist",
		Description:        "Clean, simple, neutral-toned fashion.",
		RequiredCategories: []string{CategoryTops, CategoryBottoms},
		BonusCategories:    []string{CategoryAccessories},
	},
	{
		ID:                 "maximalist",
		Label:              "Maximalist",
		Description:        "Go bold, busy, and expressive!",
		RequiredCategories: []string{CategoryTops, CategoryBottoms},
		BonusCategories:    []string{CategoryAccessories, CategoryHats},
	},
	{
		ID:                 "monochrome",
		Label:              "Monochrome",
		Description:        "Choose items that all match in colour family.",
		RequiredCategories: []string{CategoryTops, CategoryBottoms},
		BonusCategories:    []string{CategoryShoes},
	},
	{
		ID:                 "colour-pop",
		Label:              "Colour Pop",
		Description:        "Add bold colour accents that stand out.",
		RequiredCategories: []string{CategoryTops, CategoryBottoms},
		BonusCategories:    []string{CategoryAccessories},
	},
	{
		ID:                 "dark-academia",
		Label:              "Dark Academia",
		Description:        "Earth tones, classics, and old-money aesthetic.",
		RequiredCategories: []string{CategoryTops, CategoryBottoms},
		BonusCategories:    []string{CategoryJackets},
	},
	{
		ID:                 "y2k",
		Label:              "Y2K Throwback",
		Description:        "Bright, nostalgic Y2K energy.",
		RequiredCategories: []string{CategoryTops, CategoryBottoms},
		BonusCategories:    []string{CategoryAccessories, CategoryHats},
	},
	{
		ID:                 "festival",
		Label:              "Festival Fit",
		Description:        "Colourful, expressive festival outfit.",
		RequiredCategories: []string{CategoryTops, CategoryBottoms},
		BonusCategories:    []string{CategoryAccessories, CategoryHats},
	},
	{
		ID:                 "concert-night",
		Label:              "Concert Night",
		Description:        "Something edgy and iconic for a concert.",
		RequiredCategories: []string{CategoryTops, CategoryBottoms},
		BonusCategories:    []string{CategoryJackets},
	},
	{
		ID:                 "beach-day",
		Label:              "Beach Day",
		Description:        "Light, airy, easy-going beachy vibes.",
		RequiredCategories: []string{CategoryTops},
		BonusCategories:    []string{CategoryAccessories, CategoryHats},
	},
	{
		ID:                 "gym-run",
		Label:              "Gym Run",
		Description:        "A practical, sporty outfit for a workout.",
		RequiredCategories: []string{CategoryTops, CategoryBottoms},
		BonusCategories:    []string{CategoryAccessories},
	},
	{
		ID:                 "rainy-day",
		Label:              "Rainy Day",
		Description:        "Something practical for puddles & showers.",
		RequiredCategories: []string{CategoryTops, CategoryBottoms},
		BonusCategories:    []string{CategoryJackets},
	},
	{
		ID:                 "windy-weather",
		Label:              "Windy Weather",
		Description:        "Style an outfit that won't blow away!",
		RequiredCategories: []string{CategoryTops, CategoryBottoms},
		BonusCategories:    []string{CategoryHats, CategoryJackets},
	},
	{
		ID:                 "cute",
		Label:              "Cute & Soft",
		Description:        "Soft colours, gentle shapes, cosy vibes.",
		RequiredCategories: []string{CategoryTops, CategoryBottoms},
		BonusCategories:    []string{CategoryAccessories},
	},
	{
		ID:                 "edgy",
		Label:              "Edgy",
		Description:        "Dark, sharp, bold outfit choices.",
		RequiredCategories: []string{CategoryTops, CategoryBottoms, CategoryShoes},
		BonusCategories:    []string{CategoryJackets, CategoryAccessories},
	},
	{
		ID:                 "artsy",
		Label:              "Artsy",
		Description:        "Creative, expressive, unique pieces.",
		RequiredCategories: []string{CategoryTops, CategoryBottoms},
		BonusCategories:    []string{CategoryAccessories},
	},
	{
		ID:                 "cute-grunge",
		Label:              "Cute Grunge",
		Description:        "Mix soft aesthetic with grunge textures.",
		RequiredCategories: []string{CategoryTops, CategoryBottoms},
		BonusCategories:    []string{CategoryJackets},
	},
	{
		ID:                 "mystery",
		Label:              "Mystery Outfit",
		Description:        "Choose items that feel dark, elegant, mysterious.",
		RequiredCategories: []string{CategoryTops, CategoryBottoms},
		BonusCategories:    []string{CategoryAccessories},
	},
	{
		ID:                 "character-core",
		Label:              "Character Core",
		Description:        "Dress like a character from your favourite show!",
		RequiredCategories: []string{CategoryTops, CategoryBottoms},
		BonusCategories:    []string{CategoryAccessories, CategoryHats},
	},
	{
		ID:                 "old-money",
		Label:              "Old Money",
		Description:        "Preppy, classic, wealthy aesthetics.",
		RequiredCategories: []string{CategoryTops, CategoryBottoms},
		BonusCategories:    []string{CategoryJackets},
	},
	{
		ID:                 "soft-girl",
		Label:              "Soft Girl",
		Description:        "Pastels, gentle silhouettes, sweet accessories.",
		RequiredCategories: []string{CategoryTops, CategoryBottoms},
		BonusCategories:    []string{CategoryAccessories},
	},
	{
		ID:                 "clean-girl",
		Label:              "Clean Girl",
		Description:        "Minimal, sleek, elegant neutrals.",
		RequiredCategories: []string{CategoryTops, CategoryBottoms},
		BonusCategories:    []string{CategoryAccessories},
	},
	{
		ID:                 "vintage-thrift",
		Label:              "Vintage Thrift",
		Description:        "Build an outfit using older-looking or thrift-style pieces.",
		RequiredCategories: []string{CategoryTops, CategoryBottoms},
		BonusCategories:    []string{CategoryAccessories},
	},
}
