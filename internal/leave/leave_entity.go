package leave

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type LeaveRequest struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID  uuid.UUID `gorm:"type:uuid;not null;index:idx_leave_requests_company_status"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_leave_requests_employee"`

	LeaveType      string          `gorm:"type:varchar(30);not null"`
	StartDate      time.Time       `gorm:"type:date;not null"`
	EndDate        time.Time       `gorm:"type:date;not null"`
	HalfDaySession string          `gorm:"type:varchar(20);not null;default:'FULL_DAY'"`
	TotalDays      decimal.Decimal `gorm:"type:numeric(5,1);not null"`
	Reason         string          `gorm:"type:text;not null"`
	AttachmentRef  *string         `gorm:"type:text"`

	Status          string  `gorm:"type:varchar(20);not null;default:'PENDING';index:idx_leave_requests_company_status"`
	RejectionReason *string `gorm:"type:text"`

	// Version guards concurrent decisions on the same request.
	Version int `gorm:"not null;default:1"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Actions []LeaveAction `gorm:"foreignKey:LeaveID;references:ID"`
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}

// LeaveAction is one entry of the append-only audit trail. Entries are
// never updated or deleted.
type LeaveAction struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	LeaveID     uuid.UUID `gorm:"type:uuid;not null;index:idx_leave_actions_leave"`
	Action      string    `gorm:"type:varchar(30);not null"`
	PerformedBy uuid.UUID `gorm:"type:uuid;not null"`
	Comment     *string   `gorm:"type:text"`
	CreatedAt   time.Time
}

func (LeaveAction) TableName() string {
	return "leave_actions"
}
