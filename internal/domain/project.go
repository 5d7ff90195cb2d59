package domain

import "encoding/json"

// Project is the root row of the project-or-plan aggregate. A plan is the
// same shape with IsProject=false.
type Project struct {
	ID                   int64   `db:"project_id" json:"project_id"`
	Name                 string  `db:"name" json:"project_name"`
	IsProject            bool    `db:"is_project" json:"is_project"`
	StateCode            int     `db:"state_code" json:"state_code"`
	StartDate            *string `db:"start_date" json:"start_date"`
	EndDate              *string `db:"end_date" json:"end_date"`
	ActualStartDate      *string `db:"actual_start_date" json:"actual_start_date"`
	ActualEndDate        *string `db:"actual_end_date" json:"actual_end_date"`
	IsHealingLand        bool    `db:"is_healing_land" json:"is_healing_land"`
	IsHealingPeople      bool    `db:"is_healing_people" json:"is_healing_people"`
	IsLandInitiative     bool    `db:"is_land_initiative" json:"is_land_initiative"`
	IsCulturalInitiative bool    `db:"is_cultural_initiative" json:"is_cultural_initiative"`
	PeopleInvolved       *int64  `db:"people_involved" json:"people_involved"`
	IsPartOfPublicPlan   bool    `db:"is_project_part_public_plan" json:"is_project_part_public_plan"`
	PublishTimestamp     *string `db:"publish_timestamp" json:"publish_date"`
	RevisionCount        int     `db:"revision_count" json:"revision_count"`
}

// Contact visibility flags are stored as 'Y'/'N' in project_contact.
type Contact struct {
	ID            int64   `db:"project_contact_id"`
	ProjectID     int64   `db:"project_id"`
	FirstName     string  `db:"first_name"`
	LastName      string  `db:"last_name"`
	EmailAddress  string  `db:"email_address"`
	Organization  string  `db:"organization"`
	IsPublic      string  `db:"is_public"`
	IsPrimary     string  `db:"is_primary"`
	IsFirstNation *bool   `db:"is_first_nation"`
	Phone         *string `db:"phone_number"`
}

type FundingSource struct {
	ID                  int64   `db:"project_funding_source_id"`
	ProjectID           int64   `db:"project_id"`
	OrganizationName    string  `db:"organization_name"`
	FundingProjectID    *string `db:"funding_project_id"`
	FundingAmount       float64 `db:"funding_amount"`
	StartDate           *string `db:"funding_start_date"`
	EndDate             *string `db:"funding_end_date"`
	IsPublic            string  `db:"is_public"`
	DescriptionComments *string `db:"description"`
}

// IUCNClassification is a fully-populated three-level action classification
// triple. Partially-filled triples are never persisted.
type IUCNClassification struct {
	ID                 int64 `db:"project_iucn_action_classification_id"`
	ProjectID          int64 `db:"project_id"`
	Classification     int64 `db:"iucn_conservation_action_level_1_classification_id"`
	SubClassification1 int64 `db:"iucn_conservation_action_level_2_subclassification_id"`
	SubClassification2 int64 `db:"iucn_conservation_action_level_3_subclassification_id"`
}

type Partnership struct {
	ID          int64  `db:"project_partnership_id"`
	ProjectID   int64  `db:"project_id"`
	Partnership string `db:"partnership"`
}

type Objective struct {
	ID        int64  `db:"project_objective_id"`
	ProjectID int64  `db:"project_id"`
	Objective string `db:"objective"`
}

// Location holds the spatial row of a project. Geometry is a GeoJSON
// feature collection stored as jsonb.
type Location struct {
	ID                int64           `db:"project_location_id"`
	ProjectID         int64           `db:"project_id"`
	Geometry          json.RawMessage `db:"geojson"`
	NumberSites       int             `db:"number_sites"`
	SizeHa            *float64        `db:"size_ha"`
	IsWithinOverlap   *string         `db:"is_within_overlapping"`
	ConservationAreas json.RawMessage `db:"conservation_areas"`
}

// Region rows live in nrm_region, separate from project_location. Both are
// replaced together when the location section of an update is present.
type Region struct {
	ID        int64 `db:"nrm_region_id"`
	ProjectID int64 `db:"project_id"`
	ObjectID  int64 `db:"objectid"`
}

type Species struct {
	ID        int64 `db:"project_species_id"`
	ProjectID int64 `db:"project_id"`
	TSN       int64 `db:"itis_tsn"`
}

type Permit struct {
	ID        int64  `db:"permit_id"`
	ProjectID int64  `db:"project_id"`
	Number    string `db:"number"`
	Type      string `db:"type"`
}

// ProjectFilter narrows ListProjects. Zero values mean no constraint.
type ProjectFilter struct {
	Keyword        string
	RegionObjectID int64
	StateCodes     []int
	IsProject      *bool
}
