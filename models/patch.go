package models

// ProjectPatch carries the owner-editable project fields; nil means
// "leave unchanged".
type ProjectPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
}

// TodoPatch carries the editable task fields plus the updater stamp.
type TodoPatch struct {
	Title          *string       `json:"title"`
	Description    *string       `json:"description"`
	Status         *TaskStatus   `json:"status"`
	Priority       *TaskPriority `json:"priority"`
	UpdatedBy      string        `json:"-"`
	UpdatedByName  string        `json:"-"`
	UpdatedByImage string        `json:"-"`
}
