package ledger

import (
	"time"

	ledgererrors "go-leave/internal/ledger/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LeaveBalance is one ledger entry per (company, employee, leave type,
// year). Available is always derived, never stored.
type LeaveBalance struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_balances_entry_key"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_balances_entry_key"`
	LeaveType  string    `gorm:"type:varchar(30);not null;uniqueIndex:idx_balances_entry_key"`
	Year       int       `gorm:"not null;uniqueIndex:idx_balances_entry_key"`

	TotalAllocated decimal.Decimal `gorm:"type:numeric(6,1);not null;default:0"`
	Used           decimal.Decimal `gorm:"type:numeric(6,1);not null;default:0"`
	Pending        decimal.Decimal `gorm:"type:numeric(6,1);not null;default:0"`
	CarriedForward decimal.Decimal `gorm:"type:numeric(6,1);not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (LeaveBalance) TableName() string {
	return "leave_balances"
}

// Available = totalAllocated + carriedForward - used - pending.
func (b *LeaveBalance) Available() decimal.Decimal {
	return b.TotalAllocated.Add(b.CarriedForward).Sub(b.Used).Sub(b.Pending)
}

// PlaceHold reserves days as pending. The entry stays unchanged when
// the hold would drive Available negative.
func (b *LeaveBalance) PlaceHold(days decimal.Decimal) error {
	if b.Available().Sub(days).IsNegative() {
		return ledgererrors.ErrInsufficientBalance
	}
	b.Pending = b.Pending.Add(days)
	return nil
}

// ReleaseHold returns pending days, floored at zero.
func (b *LeaveBalance) ReleaseHold(days decimal.Decimal) {
	b.Pending = b.Pending.Sub(days)
	if b.Pending.IsNegative() {
		b.Pending = decimal.Zero
	}
}

// CommitHold converts a pending hold into a permanent deduction in one
// step.
func (b *LeaveBalance) CommitHold(days decimal.Decimal) {
	b.Pending = b.Pending.Sub(days)
	if b.Pending.IsNegative() {
		b.Pending = decimal.Zero
	}
	b.Used = b.Used.Add(days)
}

var halfDayStep = decimal.New(5, -1) // 0.5

// ValidDayAmount reports whether days is a positive multiple of half a
// day, the smallest unit the ledger tracks.
func ValidDayAmount(days decimal.Decimal) bool {
	return days.IsPositive() && days.Mod(halfDayStep).IsZero()
}
