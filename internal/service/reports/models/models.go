package models

import (
	"time"

	"github.com/quickcourt/quickcourt-backend/internal/domain"
)

// Request models

// CreateReportRequest files a complaint about a user or a facility
type CreateReportRequest struct {
	TargetType  string `json:"targetType"` // user or facility
	TargetID    int64  `json:"targetId"`
	Reason      string `json:"reason"`
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority,omitempty"` // low, medium, high; defaults to medium
}

// ListReportsRequest is the admin report queue query
type ListReportsRequest struct {
	Status   *string `json:"status,omitempty"`
	Priority *string `json:"priority,omitempty"`
	Page     int     `json:"page,omitempty"`
	Limit    int     `json:"limit,omitempty"`
}

// CloseReportRequest resolves or dismisses a report
type CloseReportRequest struct {
	AdminNotes *string `json:"adminNotes,omitempty"`
}

// Response models

// ReportResponse is one report on the wire
type ReportResponse struct {
	ID          string  `json:"id"`
	ReporterID  int64   `json:"reporterId"`
	TargetType  string  `json:"targetType"`
	TargetID    int64   `json:"targetId"`
	TargetName  string  `json:"targetName"`
	Reason      string  `json:"reason"`
	Description string  `json:"description,omitempty"`
	Priority    string  `json:"priority"`
	Status      string  `json:"status"`
	AdminNotes  *string `json:"adminNotes,omitempty"`

	ResolvedAt *time.Time `json:"resolvedAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// ReportListResponse is a page of reports
type ReportListResponse struct {
	Reports []*ReportResponse `json:"reports"`
	Page    int               `json:"page"`
	Limit   int               `json:"limit"`
	Total   int               `json:"total"`
}

// FromDomainReport converts a domain report to the wire model
func FromDomainReport(r *domain.Report) *ReportResponse {
	return &ReportResponse{
		ID:          r.ID,
		ReporterID:  r.ReporterID,
		TargetType:  string(r.TargetType),
		TargetID:    r.TargetID,
		TargetName:  r.TargetName,
		Reason:      r.Reason,
		Description: r.Description,
		Priority:    string(r.Priority),
		Status:      string(r.Status),
		AdminNotes:  r.AdminNotes,
		ResolvedAt:  r.ResolvedAt,
		CreatedAt:   r.CreatedAt,
	}
}

// FromDomainReports converts a report list
func FromDomainReports(reports []*domain.Report) []*ReportResponse {
	out := make([]*ReportResponse, 0, len(reports))
	for _, r := range reports {
		out = append(out, FromDomainReport(r))
	}
	return out
}
