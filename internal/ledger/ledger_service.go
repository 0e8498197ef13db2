package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	ledgererrors "go-leave/internal/ledger/errors"
	"go-leave/internal/shared/txmanager"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	LeaveTypeAnnual  = "ANNUAL"
	LeaveTypeCasual  = "CASUAL"
	LeaveTypeSick    = "SICK"
	LeaveTypeCompOff = "COMP_OFF"
	LeaveTypeUnpaid  = "UNPAID"
)

// KnownLeaveType reports membership in the recognized leave type set.
func KnownLeaveType(leaveType string) bool {
	switch leaveType {
	case LeaveTypeAnnual, LeaveTypeCasual, LeaveTypeSick, LeaveTypeCompOff, LeaveTypeUnpaid:
		return true
	default:
		return false
	}
}

const snapshotCacheTTL = 5 * time.Minute

func snapshotCacheKey(companyID, employeeID, leaveType string, year int) string {
	return fmt.Sprintf("balances:snapshot:%s:%s:%s:%d", companyID, employeeID, leaveType, year)
}

//go:generate mockgen -source=ledger_service.go -destination=mock/ledger_service_mock.go -package=mock
type Service interface {
	PlaceHold(ctx context.Context, companyID, employeeID, leaveType string, year int, days decimal.Decimal) error
	ReleaseHold(ctx context.Context, companyID, employeeID, leaveType string, year int, days decimal.Decimal) error
	Commit(ctx context.Context, companyID, employeeID, leaveType string, year int, days decimal.Decimal) error
	GetSnapshot(ctx context.Context, companyID, employeeID, leaveType string, year int) (BalanceSnapshotResponse, error)
	GetAllForEmployee(ctx context.Context, companyID, employeeID string, year int) ([]BalanceSnapshotResponse, error)
	Allocate(ctx context.Context, companyID string, req AllocateBalanceRequest) (BalanceSnapshotResponse, error)
}

type service struct {
	txm    txmanager.TransactionManager
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(txm txmanager.TransactionManager, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("ledger.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("ledger.service")
	}
	return &service{txm: txm, repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func validateEntryKey(companyID, employeeID, leaveType string, year int) error {
	if _, err := uuid.Parse(companyID); err != nil {
		return ledgererrors.ErrInvalidCompanyID
	}
	if _, err := uuid.Parse(employeeID); err != nil {
		return ledgererrors.ErrInvalidEmployeeID
	}
	if !KnownLeaveType(leaveType) {
		return ledgererrors.ErrUnknownLeaveType
	}
	if year < 2000 || year > 2200 {
		return ledgererrors.ErrInvalidYear
	}
	return nil
}

func (s *service) PlaceHold(ctx context.Context, companyID, employeeID, leaveType string, year int, days decimal.Decimal) error {
	s.logger.Debug("place hold requested",
		zap.String("company_id", companyID),
		zap.String("employee_id", employeeID),
		zap.String("leave_type", leaveType),
		zap.Int("year", year),
		zap.String("days", days.String()),
	)

	if err := validateEntryKey(companyID, employeeID, leaveType, year); err != nil {
		return err
	}
	if !ValidDayAmount(days) {
		return ledgererrors.ErrInvalidDays
	}

	err := s.txm.RunInTx(ctx, func(txCtx context.Context) error {
		b, err := s.repo.FindEntryForUpdate(txCtx, companyID, employeeID, leaveType, year)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// No allocation means nothing is available.
				return ledgererrors.ErrInsufficientBalance
			}
			return err
		}
		if err := b.PlaceHold(days); err != nil {
			return err
		}
		if err := s.repo.Update(txCtx, b); err != nil {
			return err
		}
		// The cached snapshot only goes stale once the outermost
		// transaction commits; an ambient caller may still roll back.
		txmanager.AfterCommit(txCtx, func() {
			s.invalidateSnapshot(ctx, companyID, employeeID, leaveType, year)
		})
		return nil
	})
	if err != nil {
		if errors.Is(err, ledgererrors.ErrInsufficientBalance) {
			s.logger.Warn("place hold rejected",
				zap.String("employee_id", employeeID),
				zap.String("leave_type", leaveType),
				zap.String("days", days.String()),
			)
		} else {
			s.logger.Error("place hold failed", zap.Error(err))
		}
		return err
	}

	s.logger.Info("hold placed",
		zap.String("employee_id", employeeID),
		zap.String("leave_type", leaveType),
		zap.String("days", days.String()),
	)
	return nil
}

func (s *service) ReleaseHold(ctx context.Context, companyID, employeeID, leaveType string, year int, days decimal.Decimal) error {
	return s.mutateEntry(ctx, "release hold", companyID, employeeID, leaveType, year, days, func(b *LeaveBalance) {
		b.ReleaseHold(days)
	})
}

func (s *service) Commit(ctx context.Context, companyID, employeeID, leaveType string, year int, days decimal.Decimal) error {
	return s.mutateEntry(ctx, "commit hold", companyID, employeeID, leaveType, year, days, func(b *LeaveBalance) {
		b.CommitHold(days)
	})
}

func (s *service) mutateEntry(
	ctx context.Context,
	op string,
	companyID, employeeID, leaveType string,
	year int,
	days decimal.Decimal,
	apply func(b *LeaveBalance),
) error {
	if err := validateEntryKey(companyID, employeeID, leaveType, year); err != nil {
		return err
	}
	if !ValidDayAmount(days) {
		return ledgererrors.ErrInvalidDays
	}

	err := s.txm.RunInTx(ctx, func(txCtx context.Context) error {
		b, err := s.repo.FindEntryForUpdate(txCtx, companyID, employeeID, leaveType, year)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ledgererrors.ErrBalanceNotFound
			}
			return err
		}
		apply(b)
		if err := s.repo.Update(txCtx, b); err != nil {
			return err
		}
		txmanager.AfterCommit(txCtx, func() {
			s.invalidateSnapshot(ctx, companyID, employeeID, leaveType, year)
		})
		return nil
	})
	if err != nil {
		s.logger.Error(op+" failed",
			zap.String("employee_id", employeeID),
			zap.String("leave_type", leaveType),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info(op+" applied",
		zap.String("employee_id", employeeID),
		zap.String("leave_type", leaveType),
		zap.String("days", days.String()),
	)
	return nil
}

func (s *service) GetSnapshot(ctx context.Context, companyID, employeeID, leaveType string, year int) (BalanceSnapshotResponse, error) {
	if err := validateEntryKey(companyID, employeeID, leaveType, year); err != nil {
		return BalanceSnapshotResponse{}, err
	}

	cacheKey := snapshotCacheKey(companyID, employeeID, leaveType, year)
	if s.rdb != nil {
		if val, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var cached BalanceSnapshotResponse
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return cached, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		b, err := s.repo.FindEntry(ctx, companyID, employeeID, leaveType, year)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// An employee without an allocation simply has a zero
				// balance, not an error.
				return mapToSnapshot(&LeaveBalance{
					EmployeeID: uuid.MustParse(employeeID),
					LeaveType:  leaveType,
					Year:       year,
				}), nil
			}
			return BalanceSnapshotResponse{}, err
		}
		return mapToSnapshot(b), nil
	})
	if err != nil {
		return BalanceSnapshotResponse{}, err
	}

	snapshot := v.(BalanceSnapshotResponse)
	if s.rdb != nil {
		if payload, err := json.Marshal(snapshot); err == nil {
			s.rdb.Set(ctx, cacheKey, payload, snapshotCacheTTL)
		}
	}
	return snapshot, nil
}

func (s *service) GetAllForEmployee(ctx context.Context, companyID, employeeID string, year int) ([]BalanceSnapshotResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return nil, ledgererrors.ErrInvalidCompanyID
	}
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, ledgererrors.ErrInvalidEmployeeID
	}

	balances, err := s.repo.FindAllByEmployee(ctx, companyID, employeeID, year)
	if err != nil {
		return nil, err
	}

	resp := make([]BalanceSnapshotResponse, len(balances))
	for i := range balances {
		resp[i] = mapToSnapshot(&balances[i])
	}
	return resp, nil
}

// Allocate is the administrative override path. It may reshape an
// entry without the Available >= 0 guard the workflow operations have.
func (s *service) Allocate(ctx context.Context, companyID string, req AllocateBalanceRequest) (BalanceSnapshotResponse, error) {
	s.logger.Debug("allocate requested",
		zap.String("company_id", companyID),
		zap.String("employee_id", req.EmployeeID),
		zap.String("leave_type", req.LeaveType),
		zap.Int("year", req.Year),
	)

	if err := validateEntryKey(companyID, req.EmployeeID, req.LeaveType, req.Year); err != nil {
		return BalanceSnapshotResponse{}, err
	}

	totalAllocated, err := decimal.NewFromString(req.TotalAllocated)
	if err != nil || totalAllocated.IsNegative() || !totalAllocated.Mod(halfDayStep).IsZero() {
		return BalanceSnapshotResponse{}, ledgererrors.ErrInvalidAmount
	}
	carriedForward := decimal.Zero
	if req.CarriedForward != "" {
		carriedForward, err = decimal.NewFromString(req.CarriedForward)
		if err != nil || carriedForward.IsNegative() || !carriedForward.Mod(halfDayStep).IsZero() {
			return BalanceSnapshotResponse{}, ledgererrors.ErrInvalidAmount
		}
	}

	var result *LeaveBalance
	err = s.txm.RunInTx(ctx, func(txCtx context.Context) error {
		b, err := s.repo.FindEntryForUpdate(txCtx, companyID, req.EmployeeID, req.LeaveType, req.Year)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			b = &LeaveBalance{
				ID:             uuid.New(),
				CompanyID:      uuid.MustParse(companyID),
				EmployeeID:     uuid.MustParse(req.EmployeeID),
				LeaveType:      req.LeaveType,
				Year:           req.Year,
				TotalAllocated: totalAllocated,
				CarriedForward: carriedForward,
			}
			result = b
			if err := s.repo.Create(txCtx, b); err != nil {
				return err
			}
		} else {
			b.TotalAllocated = totalAllocated
			b.CarriedForward = carriedForward
			result = b
			if err := s.repo.Update(txCtx, b); err != nil {
				return err
			}
		}

		txmanager.AfterCommit(txCtx, func() {
			s.invalidateSnapshot(ctx, companyID, req.EmployeeID, req.LeaveType, req.Year)
		})
		return nil
	})
	if err != nil {
		s.logger.Error("allocate failed", zap.Error(err))
		return BalanceSnapshotResponse{}, err
	}

	s.logger.Info("allocation saved",
		zap.String("employee_id", req.EmployeeID),
		zap.String("leave_type", req.LeaveType),
		zap.Int("year", req.Year),
		zap.String("total_allocated", totalAllocated.String()),
	)
	return mapToSnapshot(result), nil
}

func (s *service) invalidateSnapshot(ctx context.Context, companyID, employeeID, leaveType string, year int) {
	if s.rdb == nil {
		return
	}
	s.rdb.Del(ctx, snapshotCacheKey(companyID, employeeID, leaveType, year))
}

func mapToSnapshot(b *LeaveBalance) BalanceSnapshotResponse {
	return BalanceSnapshotResponse{
		EmployeeID:     b.EmployeeID.String(),
		LeaveType:      b.LeaveType,
		Year:           b.Year,
		TotalAllocated: b.TotalAllocated.String(),
		Used:           b.Used.String(),
		Pending:        b.Pending.String(),
		CarriedForward: b.CarriedForward.String(),
		Available:      b.Available().String(),
	}
}
