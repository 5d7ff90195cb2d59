package dto

// PostProjectRequest is the full create aggregate. Every section other than
// the root project block is independently optional; absent sections simply
// produce empty child collections.
type PostProjectRequest struct {
	Project         *ProjectSection       `json:"project" validate:"required"`
	Focus           *FocusSection         `json:"focus"`
	Contact         *ContactSection       `json:"contact"`
	Species         *SpeciesSection       `json:"species"`
	IUCN            *IUCNSection          `json:"iucn"`
	Funding         *FundingSection       `json:"funding"`
	Partnership     *PartnershipSection   `json:"partnership"`
	Objective       *ObjectiveSection     `json:"objective"`
	Location        *LocationSection      `json:"location"`
	Authorization   *AuthorizationSection `json:"authorization"`
	RestorationPlan *RestPlanSection      `json:"restoration_plan"`
}

// PutProjectRequest is the sparse update aggregate. A nil section means
// "leave that section untouched"; a present section with an empty collection
// clears it.
type PutProjectRequest struct {
	Project         *ProjectSection       `json:"project"`
	Focus           *FocusSection         `json:"focus"`
	Contact         *ContactSection       `json:"contact"`
	Species         *SpeciesSection       `json:"species"`
	IUCN            *IUCNSection          `json:"iucn"`
	Funding         *FundingSection       `json:"funding"`
	Partnership     *PartnershipSection   `json:"partnership"`
	Objective       *ObjectiveSection     `json:"objective"`
	Location        *LocationSection      `json:"location"`
	Authorization   *AuthorizationSection `json:"authorization"`
	RestorationPlan *RestPlanSection      `json:"restoration_plan"`
}

// AddParticipantRequest adds a system user to a project with a role.
type AddParticipantRequest struct {
	SystemUserID  int64 `json:"system_user_id" validate:"required,min=1"`
	ProjectRoleID int64 `json:"project_role_id" validate:"required,oneof=1 2 3"`
}

// ListProjectsRequest carries the optional list filters. State codes arrive
// comma-separated in the query string and are parsed by the handler.
type ListProjectsRequest struct {
	Keyword    string
	Region     int64
	StateCodes []int
	IsProject  *bool
}
