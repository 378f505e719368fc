package domain

import "time"

// ReportTargetType is what a report points at
type ReportTargetType string

const (
	ReportTargetUser     ReportTargetType = "user"
	ReportTargetFacility ReportTargetType = "facility"
)

// ReportPriority is set by the reporter and used for admin triage
type ReportPriority string

const (
	ReportPriorityLow    ReportPriority = "low"
	ReportPriorityMedium ReportPriority = "medium"
	ReportPriorityHigh   ReportPriority = "high"
)

// ReportStatus represents the moderation state of a report
type ReportStatus string

const (
	ReportStatusPending   ReportStatus = "pending"
	ReportStatusResolved  ReportStatus = "resolved"
	ReportStatusDismissed ReportStatus = "dismissed"
)

// Report is a user-filed complaint about a user or a facility
type Report struct {
	ID          string // uuid
	ReporterID  int64
	TargetType  ReportTargetType
	TargetID    int64
	TargetName  string
	Reason      string
	Description string
	Priority    ReportPriority
	Status      ReportStatus
	AdminNotes  *string
	ResolvedAt  *time.Time
	CreatedAt   time.Time
}

// IsOpen returns true while the report awaits moderation
func (r *Report) IsOpen() bool {
	return r.Status == ReportStatusPending
}

// ReportsFilter narrows admin report listings
type ReportsFilter struct {
	Status   *ReportStatus
	Priority *ReportPriority
	Page     int
	Limit    int
}
