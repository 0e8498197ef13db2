package ledger

import (
	"context"

	"go-leave/internal/shared/txmanager"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=ledger_repo.go -destination=mock/ledger_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, b *LeaveBalance) error
	FindEntry(ctx context.Context, companyID, employeeID, leaveType string, year int) (*LeaveBalance, error)
	FindEntryForUpdate(ctx context.Context, companyID, employeeID, leaveType string, year int) (*LeaveBalance, error)
	FindAllByEmployee(ctx context.Context, companyID, employeeID string, year int) ([]LeaveBalance, error)
	Update(ctx context.Context, b *LeaveBalance) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, b *LeaveBalance) error {
	return txmanager.GetDB(ctx, r.db).Create(b).Error
}

func (r *repository) FindEntry(ctx context.Context, companyID, employeeID, leaveType string, year int) (*LeaveBalance, error) {
	var b LeaveBalance
	err := txmanager.GetDB(ctx, r.db).
		Where("company_id = ?", companyID).
		Where("employee_id = ?", employeeID).
		Where("leave_type = ?", leaveType).
		Where("year = ?", year).
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// FindEntryForUpdate locks the entry row for the rest of the ambient
// transaction, serializing concurrent holds on the same key.
func (r *repository) FindEntryForUpdate(ctx context.Context, companyID, employeeID, leaveType string, year int) (*LeaveBalance, error) {
	var b LeaveBalance
	err := txmanager.GetDB(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("company_id = ?", companyID).
		Where("employee_id = ?", employeeID).
		Where("leave_type = ?", leaveType).
		Where("year = ?", year).
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) FindAllByEmployee(ctx context.Context, companyID, employeeID string, year int) ([]LeaveBalance, error) {
	var balances []LeaveBalance
	err := txmanager.GetDB(ctx, r.db).
		Where("company_id = ?", companyID).
		Where("employee_id = ?", employeeID).
		Where("year = ?", year).
		Order("leave_type ASC").
		Find(&balances).Error
	return balances, err
}

func (r *repository) Update(ctx context.Context, b *LeaveBalance) error {
	return txmanager.GetDB(ctx, r.db).Save(b).Error
}
