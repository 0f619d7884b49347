package pipeline

import (
	"fmt"

	"awareness_backend/internal/domain"
	"awareness_backend/internal/model"
)

// Recommend builds the advice list for a predicted awareness level. Confidence
// is a probability in [0,1] and is rendered as a percentage.
func Recommend(cat *domain.Catalog, awareness string, confidence float64, profile model.UserProfile) []string {
	profile = profile.WithDefaults()
	r := cat.Recommendations
	var out []string

	switch awareness {
	case model.AwarenessLow:
		out = append(out, r.LowBase)
		if profile.EducationLevel == model.EducationOL || profile.EducationLevel == model.EducationAL {
			out = append(out, r.LowSchool)
		} else {
			out = append(out, r.LowHigher)
		}
	case model.AwarenessModerate:
		out = append(out, fmt.Sprintf(r.ModerateBase, confidence*100), r.ModerateFollowUp)
	case model.AwarenessHigh:
		out = append(out, fmt.Sprintf(r.HighBase, confidence*100), r.HighFollowUp)
	}

	if NormalizeProficiency(profile.Proficiency) == model.ProficiencySchool {
		if r.ProficiencySchool != "" {
			out = append(out, r.ProficiencySchool)
		}
	} else if r.ProficiencyHigh != "" {
		out = append(out, r.ProficiencyHigh)
	}
	return out
}
