package dto

import "github.com/restoration-tracker/internal/domain"

// IUCNSection is the raw "iucn" block of a create/update body.
type IUCNSection struct {
	ClassificationDetails []IUCNItem `json:"classificationDetails"`
}

// IUCNItem is one three-level classification triple. Levels may arrive
// partially filled; only complete triples are ever persisted.
type IUCNItem struct {
	Classification     *int64 `json:"classification"`
	SubClassification1 *int64 `json:"subClassification1"`
	SubClassification2 *int64 `json:"subClassification2"`
}

// Complete reports whether all three levels are populated.
func (i IUCNItem) Complete() bool {
	return i.Classification != nil && i.SubClassification1 != nil && i.SubClassification2 != nil
}

type PostIUCNData struct {
	ClassificationDetails []IUCNItem
}

func NewPostIUCNData(raw *IUCNSection) PostIUCNData {
	out := PostIUCNData{ClassificationDetails: []IUCNItem{}}
	if raw == nil {
		return out
	}
	out.ClassificationDetails = append(out.ClassificationDetails, raw.ClassificationDetails...)
	return out
}

type GetIUCNData struct {
	ClassificationDetails []GetIUCNItem `json:"classificationDetails"`
}

type GetIUCNItem struct {
	Classification     int64 `json:"classification"`
	SubClassification1 int64 `json:"subClassification1"`
	SubClassification2 int64 `json:"subClassification2"`
}

func NewGetIUCNData(rows []domain.IUCNClassification) GetIUCNData {
	out := GetIUCNData{ClassificationDetails: []GetIUCNItem{}}

	for _, row := range rows {
		out.ClassificationDetails = append(out.ClassificationDetails, GetIUCNItem{
			Classification:     row.Classification,
			SubClassification1: row.SubClassification1,
			SubClassification2: row.SubClassification2,
		})
	}

	return out
}
