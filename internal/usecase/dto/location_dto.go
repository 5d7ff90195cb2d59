package dto

import (
	"encoding/json"

	"github.com/restoration-tracker/internal/domain"
)

// LocationSection is the raw "location" block of a create/update body.
// Geometry is a GeoJSON feature collection passed through untouched.
// The region code rides in the same section but lands in a separate table.
type LocationSection struct {
	Geometry            json.RawMessage    `json:"geometry"`
	Region              *int64             `json:"region"`
	NumberSites         int                `json:"number_sites"`
	SizeHa              *float64           `json:"size_ha"`
	IsWithinOverlapping *string            `json:"is_within_overlapping"`
	ConservationAreas   []ConservationArea `json:"conservationAreas"`
}

type ConservationArea struct {
	ConservationArea string `json:"conservationArea"`
}

type PostLocationData struct {
	Geometry            json.RawMessage
	Region              *int64
	NumberSites         int
	SizeHa              *float64
	IsWithinOverlapping *string
	ConservationAreas   []ConservationArea
}

func NewPostLocationData(raw *LocationSection) PostLocationData {
	out := PostLocationData{ConservationAreas: []ConservationArea{}}
	if raw == nil {
		return out
	}

	out.Geometry = raw.Geometry
	out.Region = raw.Region
	out.NumberSites = raw.NumberSites
	out.SizeHa = raw.SizeHa
	out.IsWithinOverlapping = raw.IsWithinOverlapping
	out.ConservationAreas = append(out.ConservationAreas, raw.ConservationAreas...)

	return out
}

// HasGeometry reports whether a spatial row should be written at all.
func (d PostLocationData) HasGeometry() bool {
	return len(d.Geometry) > 0 && string(d.Geometry) != "null"
}

type GetLocationData struct {
	Geometry            json.RawMessage    `json:"geometry"`
	Region              *int64             `json:"region"`
	NumberSites         int                `json:"number_sites"`
	SizeHa              *float64           `json:"size_ha"`
	IsWithinOverlapping *string            `json:"is_within_overlapping"`
	ConservationAreas   []ConservationArea `json:"conservationAreas"`
}

func NewGetLocationData(loc *domain.Location, region *domain.Region) GetLocationData {
	out := GetLocationData{ConservationAreas: []ConservationArea{}}

	if loc != nil {
		out.Geometry = loc.Geometry
		out.NumberSites = loc.NumberSites
		out.SizeHa = loc.SizeHa
		out.IsWithinOverlapping = loc.IsWithinOverlap
		if len(loc.ConservationAreas) > 0 {
			var areas []ConservationArea
			if err := json.Unmarshal(loc.ConservationAreas, &areas); err == nil {
				out.ConservationAreas = areas
			}
		}
	}
	if region != nil {
		objectID := region.ObjectID
		out.Region = &objectID
	}

	return out
}
