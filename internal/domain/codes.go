package domain

// Workflow state codes for the project root row.
const (
	StatePlanning   = 1
	StateInProgress = 2
	StateCompleted  = 7
	StateArchived   = 8
)

// AllowedStateTransition reports whether code is a permitted target of the
// state endpoint. Only Planning and Archived may be set directly.
func AllowedStateTransition(code int) bool {
	return code == StatePlanning || code == StateArchived
}

// System roles carried by the identity gateway.
const (
	RoleSystemAdmin    = "System Administrator"
	RoleProjectCreator = "Creator"
	RoleDataAdmin      = "Data Administrator"
)

// Project role ids and names.
const (
	ProjectRoleLeadID   int64 = 1
	ProjectRoleEditorID int64 = 2
	ProjectRoleViewerID int64 = 3

	ProjectRoleLead   = "Project Lead"
	ProjectRoleEditor = "Project Editor"
	ProjectRoleViewer = "Project Viewer"
)
