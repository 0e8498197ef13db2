package ledger

type AllocateBalanceRequest struct {
	EmployeeID     string `json:"employee_id" binding:"required,uuid"`
	LeaveType      string `json:"leave_type" binding:"required,oneof=ANNUAL CASUAL SICK COMP_OFF UNPAID"`
	Year           int    `json:"year" binding:"required"`
	TotalAllocated string `json:"total_allocated" binding:"required"`
	CarriedForward string `json:"carried_forward"`
}

type BalanceSnapshotResponse struct {
	EmployeeID     string `json:"employee_id"`
	LeaveType      string `json:"leave_type"`
	Year           int    `json:"year"`
	TotalAllocated string `json:"total_allocated"`
	Used           string `json:"used"`
	Pending        string `json:"pending"`
	CarriedForward string `json:"carried_forward"`
	Available      string `json:"available"`
}
