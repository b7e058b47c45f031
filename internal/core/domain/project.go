package domain

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusOnHold    ProjectStatus = "on_hold"
)

// IsValid reports whether s is one of the known project states.
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusActive, ProjectStatusCompleted, ProjectStatusOnHold:
		return true
	default:
		return false
	}
}

// Project is the top level entity owned by a user. Notes and bills hang off it.
type Project struct {
	ProjectID   string        `json:"id" db:"id"`
	UserID      string        `json:"userID" db:"user_id"` // FK -> users.id
	Name        string        `json:"name" db:"name"`
	Description *string       `json:"description,omitempty" db:"description"`
	Status      ProjectStatus `json:"status" db:"status"`
	Timestamps
}
