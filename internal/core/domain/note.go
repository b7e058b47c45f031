package domain

// Note is a free-text entry attached to a project.
type Note struct {
	NoteID    string `json:"id" db:"id"`
	ProjectID string `json:"projectID" db:"project_id"` // FK -> projects.id, cascades on delete
	Content   string `json:"content" db:"content"`
	Timestamps
}
