package dto

import "github.com/restoration-tracker/internal/domain"

// SpeciesSection is the raw "species" block of a create/update body.
// Focal species are numeric taxonomy identifiers; labels are resolved on
// the read path through the taxonomy service.
type SpeciesSection struct {
	FocalSpecies []int64 `json:"focal_species"`
}

type PostSpeciesData struct {
	FocalSpecies []int64
}

func NewPostSpeciesData(raw *SpeciesSection) PostSpeciesData {
	out := PostSpeciesData{FocalSpecies: []int64{}}
	if raw == nil {
		return out
	}
	out.FocalSpecies = append(out.FocalSpecies, raw.FocalSpecies...)
	return out
}

type GetSpeciesData struct {
	FocalSpecies      []int64  `json:"focal_species"`
	FocalSpeciesNames []string `json:"focal_species_names"`
}

func NewGetSpeciesData(rows []domain.Species, codes []domain.TaxonomyCode) GetSpeciesData {
	out := GetSpeciesData{
		FocalSpecies:      []int64{},
		FocalSpeciesNames: []string{},
	}

	for _, row := range rows {
		out.FocalSpecies = append(out.FocalSpecies, row.TSN)
	}

	labels := make(map[int64]string, len(codes))
	for _, code := range codes {
		labels[code.ID] = code.Label
	}
	for _, tsn := range out.FocalSpecies {
		if label, ok := labels[tsn]; ok {
			out.FocalSpeciesNames = append(out.FocalSpeciesNames, label)
		}
	}

	return out
}
