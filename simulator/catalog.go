// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package simulator

// Category tags an impact item by the area of student life it touches
type Category string

const (
	CategoryGrants    Category = "grants"
	CategoryEvents    Category = "events"
	CategoryDSU       Category = "dsu"
	CategoryCulture   Category = "culture"
	CategoryResources Category = "resources"
	CategoryFinance   Category = "finance"
	CategoryClubs     Category = "clubs"
	CategoryPlanning  Category = "planning"
)

type ImpactItem struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
}

// Negative side, critical wording
var severeImpacts = [CatalogSize]ImpactItem{
	{"Significant Club Grant Reductions", "Discretionary grants for 300+ clubs reduced by 40-60%", CategoryGrants},
	{"Major Event Cancellations", "O-Week, Clubs Days, and cultural programming cancelled or severely scaled back", CategoryEvents},
	{"DSU Funding Eliminated", "Departmental Student Unions lose most programming support", CategoryDSU},
	{"Cultural Events Cut", "Student cultural celebrations and performances discontinued", CategoryCulture},
	{"Club Resources Limited", "Shared resources and equipment for clubs unavailable", CategoryResources},
	{"Severe Deficit", "Projected deficit exceeds $700,000 by 2028-2029", CategoryFinance},
}

// Negative side, at-risk wording
var moderateImpacts = [CatalogSize]ImpactItem{
	{"Moderate Club Grant Reductions", "Discretionary grants reduced by 20-30%", CategoryGrants},
	{"Reduced Events", "Some campus events scaled back or cancelled", CategoryEvents},
	{"DSU Funding Cuts", "DSU programming budgets reduced", CategoryDSU},
	{"Fewer Cultural Programs", "Cultural events reduced in frequency", CategoryCulture},
	{"Limited Resources", "Club resources and equipment less available", CategoryResources},
	{"Ongoing Deficit", "Deficit remains a concern, limiting future planning", CategoryFinance},
}

var benefits = [CatalogSize]ImpactItem{
	{"Full Club Funding", "Maintain grants for 300+ registered student clubs", CategoryClubs},
	{"Vibrant Programming", "O-Week, Clubs Days, and events continue at full capacity", CategoryEvents},
	{"DSU Support", "Departmental Student Unions receive stable funding", CategoryDSU},
	{"Cultural Celebrations", "Full calendar of cultural events and performances", CategoryCulture},
	{"Club Resources", "Equipment and shared resources available for all clubs", CategoryResources},
	{"Long-term Planning", "Financial stability enables multi-year initiatives", CategoryPlanning},
}

// Catalog returns a fresh copy of the six items shown for phase p, or nil
// for an unknown phase
func Catalog(p Phase) []ImpactItem {
	if !p.Valid() {
		return nil
	}
	var src [CatalogSize]ImpactItem
	switch p {
	case PhaseCritical:
		src = severeImpacts
	case PhaseAtRisk:
		src = moderateImpacts
	default:
		src = benefits
	}
	out := make([]ImpactItem, CatalogSize)
	copy(out, src[:])
	return out
}
