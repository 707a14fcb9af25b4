package engine

import "github.com/rshade/greenevent/internal/factors"

// VenueEmissions returns the venue energy emissions in kg CO2e:
// area × intensity × hours × energy factor, reduced multiplicatively by each
// active certification.
func VenueEmissions(p VenueProfile) (float64, error) {
	intensity, ok := factors.EnergyIntensity(p.Type)
	if !ok {
		return 0, unknownValue("venue.type", p.Type)
	}
	factor, ok := factors.EmissionFactor(p.EnergySource)
	if !ok {
		return 0, unknownValue("venue.energy_source", p.EnergySource)
	}
	if err := firstError(
		checkNonNegative("venue.area_m2", p.AreaM2),
		checkNonNegative("venue.duration_hours", p.DurationHours),
		checkNonNegative("venue.distance_from_center_km", p.DistanceFromCenterKm),
	); err != nil {
		return 0, err
	}

	kg := p.AreaM2 * intensity * p.DurationHours * factor
	return applyCertifications(kg, p.Certifications), nil
}

// applyCertifications reduces kg in the fixed order green building, efficient HVAC,
// LED lighting, water conservation, waste program.
func applyCertifications(kg float64, c Certifications) float64 {
	steps := []struct {
		active    bool
		reduction float64
	}{
		{c.GreenBuilding, factors.GreenBuildingReduction},
		{c.EfficientHVAC, factors.EfficientHVACReduction},
		{c.LEDLighting, factors.LEDLightingReduction},
		{c.WaterConservation, factors.WaterConservationReduction},
		{c.WasteProgram, factors.WasteProgramReduction},
	}
	for _, s := range steps {
		if s.active {
			kg *= 1 - s.reduction
		}
	}
	return kg
}

func certificationPoints(c Certifications) float64 {
	var pts float64
	if c.GreenBuilding {
		pts += factors.GreenBuildingPoints
	}
	if c.EfficientHVAC {
		pts += factors.EfficientHVACPoints
	}
	if c.LEDLighting {
		pts += factors.LEDLightingPoints
	}
	if c.WaterConservation {
		pts += factors.WaterConservationPoints
	}
	if c.WasteProgram {
		pts += factors.WasteProgramPoints
	}
	return pts
}

// GreenScore rates a venue from 0 to 100. The score starts at a baseline of 50 and
// adds up to 20 points for a clean energy source, points for each certification,
// a tenth of the transit score and a bonus for outdoor or hybrid-space venues.
func GreenScore(p VenueProfile) (float64, error) {
	factor, ok := factors.EmissionFactor(p.EnergySource)
	if !ok {
		return 0, unknownValue("venue.energy_source", p.EnergySource)
	}
	transit, ok := factors.TransitScore(p.TransitAccess)
	if !ok {
		return 0, unknownValue("venue.transit_access", p.TransitAccess)
	}
	bonus, ok := factors.VenueBonusPoints(p.Type)
	if !ok {
		return 0, unknownValue("venue.type", p.Type)
	}

	score := factors.ScoreBaseline +
		factors.EnergyScoreMaxPoints*(1-factor/factors.WorstEnergyFactor) +
		certificationPoints(p.Certifications) +
		transit/factors.TransitScoreDivisor +
		bonus
	return clamp(score, factors.ScoreMin, factors.ScoreMax), nil
}

// GradeFor maps a green score onto a letter grade. Lower bounds are inclusive.
func GradeFor(score float64) Grade {
	switch {
	case score >= 90:
		return GradeAPlus
	case score >= 80:
		return GradeA
	case score >= 70:
		return GradeB
	case score >= 60:
		return GradeC
	case score >= 50:
		return GradeD
	default:
		return GradeF
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
