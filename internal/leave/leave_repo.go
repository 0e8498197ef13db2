package leave

import (
	"context"
	"time"

	"go-leave/internal/shared/txmanager"

	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, l *LeaveRequest) error
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*LeaveRequest, error)
	FindAllByCompany(ctx context.Context, companyID string) ([]LeaveRequest, error)
	FindAllByEmployee(ctx context.Context, companyID, employeeID string) ([]LeaveRequest, error)
	// UpdateDecision persists the status change iff the stored version
	// still matches; returns false when a concurrent decision won.
	UpdateDecision(ctx context.Context, l *LeaveRequest, expectedVersion int) (bool, error)
	AppendAction(ctx context.Context, a *LeaveAction) error
	FindActions(ctx context.Context, leaveID string) ([]LeaveAction, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, l *LeaveRequest) error {
	return txmanager.GetDB(ctx, r.db).Create(l).Error
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*LeaveRequest, error) {
	var l LeaveRequest
	err := txmanager.GetDB(ctx, r.db).
		Where("company_id = ?", companyID).
		First(&l, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]LeaveRequest, error) {
	var leaves []LeaveRequest
	err := txmanager.GetDB(ctx, r.db).
		Where("company_id = ?", companyID).
		Order("start_date DESC").
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindAllByEmployee(ctx context.Context, companyID, employeeID string) ([]LeaveRequest, error) {
	var leaves []LeaveRequest
	err := txmanager.GetDB(ctx, r.db).
		Where("company_id = ?", companyID).
		Where("employee_id = ?", employeeID).
		Order("start_date DESC").
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) UpdateDecision(ctx context.Context, l *LeaveRequest, expectedVersion int) (bool, error) {
	result := txmanager.GetDB(ctx, r.db).
		Model(&LeaveRequest{}).
		Where("id = ?", l.ID).
		Where("version = ?", expectedVersion).
		Updates(map[string]any{
			"status":           l.Status,
			"rejection_reason": l.RejectionReason,
			"version":          expectedVersion + 1,
			"updated_at":       time.Now().UTC(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		return false, nil
	}
	l.Version = expectedVersion + 1
	return true, nil
}

func (r *repository) AppendAction(ctx context.Context, a *LeaveAction) error {
	return txmanager.GetDB(ctx, r.db).Create(a).Error
}

func (r *repository) FindActions(ctx context.Context, leaveID string) ([]LeaveAction, error) {
	var actions []LeaveAction
	err := txmanager.GetDB(ctx, r.db).
		Where("leave_id = ?", leaveID).
		Order("created_at ASC").
		Find(&actions).Error
	return actions, err
}
