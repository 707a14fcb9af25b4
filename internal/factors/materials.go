package factors

// MaterialsTier is the volume of printed materials handed out.
type MaterialsTier string

// Recognized printed-materials tiers.
const (
	MaterialsNone      MaterialsTier = "none"
	MaterialsMinimal   MaterialsTier = "minimal"
	MaterialsStandard  MaterialsTier = "standard"
	MaterialsExtensive MaterialsTier = "extensive"
)

// MaterialsTiers lists every tier in declaration order.
func MaterialsTiers() []MaterialsTier {
	return []MaterialsTier{MaterialsNone, MaterialsMinimal, MaterialsStandard, MaterialsExtensive}
}

// MaterialsWaste returns kg of waste per attendee for a printed-materials tier.
func MaterialsWaste(t MaterialsTier) (float64, bool) {
	switch t {
	case MaterialsNone:
		return 0, true
	case MaterialsMinimal:
		return 0.1, true
	case MaterialsStandard:
		return 0.35, true
	case MaterialsExtensive:
		return 0.8, true
	default:
		return 0, false
	}
}

// DecorationLevel is how heavily the venue is decorated.
type DecorationLevel string

// Recognized decoration levels.
const (
	DecorationMinimal   DecorationLevel = "minimal"
	DecorationModerate  DecorationLevel = "moderate"
	DecorationExtensive DecorationLevel = "extensive"
)

// DecorationLevels lists every decoration level in declaration order.
func DecorationLevels() []DecorationLevel {
	return []DecorationLevel{DecorationMinimal, DecorationModerate, DecorationExtensive}
}

// DecorationMultiplier scales the materials waste mass.
func DecorationMultiplier(d DecorationLevel) (float64, bool) {
	switch d {
	case DecorationMinimal:
		return 1.0, true
	case DecorationModerate:
		return 1.2, true
	case DecorationExtensive:
		return 1.5, true
	default:
		return 0, false
	}
}

// WasteManagement is the on-site waste handling programme.
type WasteManagement string

// Recognized waste management tiers.
const (
	WasteNone       WasteManagement = "none"
	WasteRecycling  WasteManagement = "recycling"
	WasteComposting WasteManagement = "composting"
	WasteZeroWaste  WasteManagement = "zero-waste"
)

// WasteManagementTiers lists every tier in declaration order.
func WasteManagementTiers() []WasteManagement {
	return []WasteManagement{WasteNone, WasteRecycling, WasteComposting, WasteZeroWaste}
}

// WasteReduction returns the fraction of materials waste diverted by a tier.
func WasteReduction(w WasteManagement) (float64, bool) {
	switch w {
	case WasteNone:
		return 0, true
	case WasteRecycling:
		return 0.30, true
	case WasteComposting:
		return 0.50, true
	case WasteZeroWaste:
		return 0.90, true
	default:
		return 0, false
	}
}

// Materials increments and conversion.
const (
	SwagWastePerAttendee      = 0.5
	ExhibitorWastePerAttendee = 0.3
	DigitalPrintedFraction    = 0.5

	// WasteToCO2e is kg CO2e per kg of materials waste, covering production and disposal.
	WasteToCO2e = 2.5
)

// Linear water and waste models, per attendee per day.
const (
	VenueWaterPerAttendeeDay        = 20.0
	FoodBeverageWaterPerAttendeeDay = 35.0
	MaterialsWaterPerAttendeeDay    = 5.0

	VenueWastePerAttendeeDay        = 0.15
	FoodBeverageWastePerAttendeeDay = 0.45
)
