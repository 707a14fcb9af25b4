package engine

import "github.com/rshade/greenevent/internal/factors"

// MaterialsResult is the output of the materials calculator.
type MaterialsResult struct {
	WasteKg  float64 `json:"waste_kg"`
	CarbonKg float64 `json:"carbon_kg"`
}

// MaterialsEmissions returns the waste mass of printed materials, swag, exhibitor
// materials and decoration after waste management, and its carbon equivalent.
func MaterialsEmissions(p MaterialsProfile) (MaterialsResult, error) {
	printed, ok := factors.MaterialsWaste(p.Printed)
	if !ok {
		return MaterialsResult{}, unknownValue("materials.printed", p.Printed)
	}
	decoration, ok := factors.DecorationMultiplier(p.Decoration)
	if !ok {
		return MaterialsResult{}, unknownValue("materials.decoration", p.Decoration)
	}
	diverted, ok := factors.WasteReduction(p.WasteManagement)
	if !ok {
		return MaterialsResult{}, unknownValue("materials.waste_management", p.WasteManagement)
	}
	if err := checkCount("materials.attendees", p.Attendees); err != nil {
		return MaterialsResult{}, err
	}

	if p.DigitalAlternatives {
		printed *= factors.DigitalPrintedFraction
	}
	perAttendee := printed
	if p.Swag {
		perAttendee += factors.SwagWastePerAttendee
	}
	if p.ExhibitorMaterials {
		perAttendee += factors.ExhibitorWastePerAttendee
	}

	waste := float64(p.Attendees) * perAttendee * decoration * (1 - diverted)
	return MaterialsResult{WasteKg: waste, CarbonKg: waste * factors.WasteToCO2e}, nil
}
