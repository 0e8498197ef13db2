package events

import "time"

const LeaveLifecycleTopic = "hr.leave.lifecycle.v1"

const (
	LeaveSubmitted       = "leave.submitted"
	LeaveManagerApproved = "leave.manager_approved"
	LeaveApproved        = "leave.approved"
	LeaveRejected        = "leave.rejected"
	LeaveCancelled       = "leave.cancelled"
)

// LeaveLifecycleEvent is the export shape consumed by the notification
// and audit collaborators. It mirrors one action-log entry.
type LeaveLifecycleEvent struct {
	EventType   string    `json:"event_type"`
	LeaveID     string    `json:"leave_id"`
	CompanyID   string    `json:"company_id"`
	EmployeeID  string    `json:"employee_id"`
	Status      string    `json:"status"`
	PerformedBy string    `json:"performed_by"`
	Comment     *string   `json:"comment,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}
