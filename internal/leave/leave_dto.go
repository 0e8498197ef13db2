package leave

type SubmitLeaveRequest struct {
	LeaveType      string  `json:"leave_type" binding:"required,oneof=ANNUAL CASUAL SICK COMP_OFF UNPAID"`
	StartDate      string  `json:"start_date" binding:"required"`
	EndDate        string  `json:"end_date" binding:"required"`
	HalfDaySession string  `json:"half_day_session" binding:"omitempty,oneof=FULL_DAY FIRST_HALF SECOND_HALF"`
	Reason         string  `json:"reason" binding:"required"`
	AttachmentRef  *string `json:"attachment_ref"`
}

type DecisionRequest struct {
	Approve *bool   `json:"approve" binding:"required"`
	Reason  *string `json:"reason"`
}

type LeaveResponse struct {
	ID              string  `json:"id"`
	CompanyID       string  `json:"company_id"`
	EmployeeID      string  `json:"employee_id"`
	LeaveType       string  `json:"leave_type"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	HalfDaySession  string  `json:"half_day_session"`
	TotalDays       string  `json:"total_days"`
	Reason          string  `json:"reason"`
	AttachmentRef   *string `json:"attachment_ref,omitempty"`
	Status          string  `json:"status"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

type LeaveActionResponse struct {
	Action      string  `json:"action"`
	PerformedBy string  `json:"performed_by"`
	Comment     *string `json:"comment,omitempty"`
	Timestamp   string  `json:"timestamp"`
}
