package domain

// Participant links a system user to a project with a project-scoped role.
type Participant struct {
	ID              int64  `db:"project_participation_id"`
	ProjectID       int64  `db:"project_id"`
	SystemUserID    int64  `db:"system_user_id"`
	ProjectRoleID   int64  `db:"project_role_id"`
	ProjectRoleName string `db:"project_role_name"`
	UserIdentifier  string `db:"user_identifier"`
}
