package domain

import "time"

// Project is a single client engagement tracked on the dashboard.
type Project struct {
	ID         int64     `json:"id"`
	ClientName string    `json:"clientName"`
	ProjectNo  string    `json:"projectNo"`
	Media      string    `json:"media"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

// DefaultStatus is applied on create when no status is supplied.
const DefaultStatus = StatusInProgress

// Statuses the dashboard knows how to render. Any other value is stored as-is.
const (
	StatusCompleted  = "Completed"
	StatusInProgress = "In Progress"
	StatusOnHold     = "On Hold"
)

// Media types offered by the dashboard form.
const (
	MediaVideo  = "Video"
	MediaWeb    = "Web"
	MediaSocial = "Social"
	MediaPrint  = "Print"
	MediaOther  = "Other"
)

// NewProject is the validated create input.
type NewProject struct {
	ClientName string
	ProjectNo  string
	Media      string
	Status     string
}

// ProjectPatch is the validated partial update input. Nil fields are left untouched.
type ProjectPatch struct {
	ClientName *string
	ProjectNo  *string
	Media      *string
	Status     *string
}

// IsEmpty reports whether the patch changes nothing.
func (p ProjectPatch) IsEmpty() bool {
	return p.ClientName == nil && p.ProjectNo == nil && p.Media == nil && p.Status == nil
}

// Apply merges the patch onto a copy of project.
func (p ProjectPatch) Apply(project Project) Project {
	if p.ClientName != nil {
		project.ClientName = *p.ClientName
	}
	if p.ProjectNo != nil {
		project.ProjectNo = *p.ProjectNo
	}
	if p.Media != nil {
		project.Media = *p.Media
	}
	if p.Status != nil {
		project.Status = *p.Status
	}
	return project
}
