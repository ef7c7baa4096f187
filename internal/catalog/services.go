package catalog

// services is the full catalog. Order matters — it is the display order on
// the services page.
var services = []Service{
	{
		ID:          "1",
		Name:        "Drywall Installation & Repair",
		Description: "Professional drywall installation, patching, and repair services for walls and ceilings across Clay County and Duval County, Florida.",
		Category:    CategoryInterior,
		Icon:        IconHammer,
	},
	{
		ID:          "2",
		Name:        "Interior Painting",
		Description: "Complete interior painting services including prep work, priming, and professional finishing for homes in Clay County and Duval County, FL.",
		Category:    CategoryInterior,
		Icon:        IconPaintbrush,
	},
	{
		ID:          "3",
		Name:        "Exterior Painting",
		Description: "Exterior house painting with weather-resistant paints and proper surface preparation tailored to Northeast Florida properties.",
		Category:    CategoryExterior,
		Icon:        IconHome,
	},
	{
		ID:          "4",
		Name:        "Flooring Installation",
		Description: "Installation of laminate, vinyl, hardwood, and tile flooring with professional finishing for Jacksonville and Clay County homeowners.",
		Category:    CategoryInterior,
		Icon:        IconSquare,
	},
	{
		ID:          "5",
		Name:        "Kitchen Remodeling",
		Description: "Complete kitchen renovations including cabinets, countertops, and fixture installation for Clay County and Duval County residences.",
		Category:    CategoryInterior,
		Icon:        IconChefHat,
	},
	{
		ID:          "6",
		Name:        "Bathroom Remodeling",
		Description: "Full bathroom renovations including tile work, fixture installation, and vanity setup built for North Florida lifestyles.",
		Category:    CategoryInterior,
		Icon:        IconBath,
	},
	{
		ID:          "7",
		Name:        "Deck Building & Repair",
		Description: "Custom deck construction, repair, and maintenance including staining and sealing for the Clay County and Jacksonville climate.",
		Category:    CategoryExterior,
		Icon:        IconTrees,
	},
	{
		ID:          "8",
		Name:        "Fence Installation",
		Description: "Installation of wood, vinyl, and chain link fencing with proper post setting throughout Clay County and Duval County.",
		Category:    CategoryExterior,
		Icon:        IconGrid,
	},
	{
		ID:          "9",
		Name:        "Door Installation",
		Description: "Interior and exterior door installation including hardware and trim work for homes across Clay County and Duval County, FL.",
		Category:    CategoryInterior,
		Icon:        IconDoorOpen,
	},
	{
		ID:          "10",
		Name:        "Window Installation",
		Description: "Professional window installation and replacement with proper sealing and trim to keep out Florida heat and storms.",
		Category:    CategoryInterior,
		Icon:        IconSquare,
	},
	{
		ID:          "11",
		Name:        "Trim & Molding",
		Description: "Installation of baseboards, crown molding, and decorative trim for homes in Jacksonville, Orange Park, and surrounding communities.",
		Category:    CategoryInterior,
		Icon:        IconRuler,
	},
	{
		ID:          "12",
		Name:        "Pressure Washing",
		Description: "Professional pressure washing for driveways, sidewalks, decks, and exterior surfaces across Clay County and Duval County.",
		Category:    CategoryExterior,
		Icon:        IconDroplets,
	},
	{
		ID:          "13",
		Name:        "Gutter Installation",
		Description: "Seamless gutter installation and repair to protect First Coast homes from water damage and heavy summer storms.",
		Category:    CategoryExterior,
		Icon:        IconWaves,
	},
	{
		ID:          "14",
		Name:        "Minor Plumbing",
		Description: "Basic plumbing repairs including faucet replacement, toilet installation, and leak fixes for Clay County and Duval County homeowners.",
		Category:    CategoryInterior,
		Icon:        IconWrench,
	},
	{
		ID:          "15",
		Name:        "Minor Electrical",
		Description: "Basic electrical work including outlet installation, switch replacement, and fixture mounting with attention to Florida building codes.",
		Category:    CategoryInterior,
		Icon:        IconZap,
	},
	{
		ID:          "16",
		Name:        "Shelving & Storage",
		Description: "Custom shelving solutions and storage installations for closets and living spaces throughout Clay County and Duval County.",
		Category:    CategoryInterior,
		Icon:        IconArchive,
	},
}
