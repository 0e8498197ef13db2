package leave_test

import (
	"context"
	"testing"
	"time"

	"go-leave/internal/domain"
	ledgererrors "go-leave/internal/ledger/errors"
	ledgerMock "go-leave/internal/ledger/mock"
	"go-leave/internal/leave"
	leaveerrors "go-leave/internal/leave/errors"
	leaveMock "go-leave/internal/leave/mock"
	kafkaMock "go-leave/internal/messaging/kafka/mock"
	"go-leave/internal/shared/txmanager"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type leaveServiceDeps struct {
	sqlMock sqlmock.Sqlmock
	repo    *leaveMock.MockRepository
	ledger  *ledgerMock.MockService
	outbox  *kafkaMock.MockOutboxRepository
	service leave.Service
}

func setupLeaveServiceTest(t *testing.T) *leaveServiceDeps {
	t.Helper()

	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)

	repo := leaveMock.NewMockRepository(ctrl)
	ledgerSvc := ledgerMock.NewMockService(ctrl)
	outbox := kafkaMock.NewMockOutboxRepository(ctrl)

	svc := leave.NewServiceWithOutbox(txmanager.NewTransactionManager(gormDB), repo, ledgerSvc, outbox)

	return &leaveServiceDeps{
		sqlMock: sqlMock,
		repo:    repo,
		ledger:  ledgerSvc,
		outbox:  outbox,
		service: svc,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func daysEqual(want string) gomock.Matcher {
	return gomock.Cond(func(x any) bool {
		days, ok := x.(decimal.Decimal)
		if !ok {
			return false
		}
		return days.Equal(decimal.RequireFromString(want))
	})
}

func TestLeaveService_Submit(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	employee := domain.Actor{ID: uuid.New().String(), Role: domain.RoleEmployee}

	t.Run("success - hold, entity, action and event on one commit", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		deps.ledger.EXPECT().
			PlaceHold(gomock.Any(), companyID, employee.ID, "ANNUAL", 2026, daysEqual("3")).
			Return(nil)
		deps.repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, l *leave.LeaveRequest) error {
				assert.Equal(t, leave.StatusPending, l.Status)
				assert.Equal(t, 1, l.Version)
				assert.True(t, l.TotalDays.Equal(decimal.NewFromInt(3)))
				return nil
			})
		deps.repo.EXPECT().
			AppendAction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a *leave.LeaveAction) error {
				assert.Equal(t, "submitted", a.Action)
				assert.Equal(t, employee.ID, a.PerformedBy.String())
				return nil
			})
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		resp, err := deps.service.Submit(ctx, companyID, employee, leave.SubmitLeaveRequest{
			LeaveType: "ANNUAL",
			StartDate: "2026-03-02",
			EndDate:   "2026-03-04",
			Reason:    "family trip",
		})

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusPending, resp.Status)
		assert.Equal(t, "3", resp.TotalDays)
		assert.Equal(t, employee.ID, resp.EmployeeID)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("half day - single date counts 0.5", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		deps.ledger.EXPECT().
			PlaceHold(gomock.Any(), companyID, employee.ID, "SICK", 2026, daysEqual("0.5")).
			Return(nil)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		deps.repo.EXPECT().AppendAction(gomock.Any(), gomock.Any()).Return(nil)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		resp, err := deps.service.Submit(ctx, companyID, employee, leave.SubmitLeaveRequest{
			LeaveType:      "SICK",
			StartDate:      "2026-03-02",
			EndDate:        "2026-03-02",
			HalfDaySession: leave.SessionFirstHalf,
			Reason:         "doctor appointment",
		})

		assert.NoError(t, err)
		assert.Equal(t, "0.5", resp.TotalDays)
	})

	t.Run("insufficient balance - nothing is persisted", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		deps.ledger.EXPECT().
			PlaceHold(gomock.Any(), companyID, employee.ID, "ANNUAL", 2026, gomock.Any()).
			Return(ledgererrors.ErrInsufficientBalance)

		_, err := deps.service.Submit(ctx, companyID, employee, leave.SubmitLeaveRequest{
			LeaveType: "ANNUAL",
			StartDate: "2026-03-02",
			EndDate:   "2026-03-20",
			Reason:    "long trip",
		})

		assert.ErrorIs(t, err, ledgererrors.ErrInsufficientBalance)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("validation failures never open a transaction", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)

		cases := []struct {
			name string
			req  leave.SubmitLeaveRequest
			want error
		}{
			{
				"end before start",
				leave.SubmitLeaveRequest{LeaveType: "ANNUAL", StartDate: "2026-03-04", EndDate: "2026-03-02", Reason: "x"},
				leaveerrors.ErrInvalidDateRange,
			},
			{
				"half day across a range",
				leave.SubmitLeaveRequest{LeaveType: "ANNUAL", StartDate: "2026-03-02", EndDate: "2026-03-03", HalfDaySession: leave.SessionSecondHalf, Reason: "x"},
				leaveerrors.ErrInvalidHalfDaySession,
			},
			{
				"unknown leave type",
				leave.SubmitLeaveRequest{LeaveType: "SABBATICAL", StartDate: "2026-03-02", EndDate: "2026-03-02", Reason: "x"},
				leaveerrors.ErrUnknownLeaveType,
			},
			{
				"blank reason",
				leave.SubmitLeaveRequest{LeaveType: "ANNUAL", StartDate: "2026-03-02", EndDate: "2026-03-02", Reason: "   "},
				leaveerrors.ErrEmptyReason,
			},
			{
				"malformed date",
				leave.SubmitLeaveRequest{LeaveType: "ANNUAL", StartDate: "02-03-2026", EndDate: "2026-03-02", Reason: "x"},
				leaveerrors.ErrInvalidDateFormat,
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := deps.service.Submit(ctx, companyID, employee, tc.req)
				assert.ErrorIs(t, err, tc.want)
			})
		}
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func pendingLeave(companyID string) *leave.LeaveRequest {
	start, _ := time.Parse("2006-01-02", "2026-03-02")
	end, _ := time.Parse("2006-01-02", "2026-03-04")
	return &leave.LeaveRequest{
		ID:         uuid.New(),
		CompanyID:  uuid.MustParse(companyID),
		EmployeeID: uuid.New(),
		LeaveType:  "ANNUAL",
		StartDate:  start,
		EndDate:    end,
		TotalDays:  decimal.NewFromInt(3),
		Reason:     "family trip",
		Status:     leave.StatusPending,
		Version:    1,
	}
}

func TestLeaveService_ManagerDecide(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	manager := domain.Actor{ID: uuid.New().String(), Role: domain.RoleManager}
	approve, reject := true, false

	t.Run("approve - no ledger effect yet", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		l := pendingLeave(companyID)
		deps.repo.EXPECT().FindByIDAndCompany(gomock.Any(), companyID, l.ID.String()).Return(l, nil)
		deps.repo.EXPECT().
			UpdateDecision(gomock.Any(), gomock.Any(), 1).
			DoAndReturn(func(_ context.Context, updated *leave.LeaveRequest, _ int) (bool, error) {
				assert.Equal(t, leave.StatusManagerApproved, updated.Status)
				assert.Nil(t, updated.RejectionReason)
				updated.Version = 2
				return true, nil
			})
		deps.repo.EXPECT().AppendAction(gomock.Any(), gomock.Any()).Return(nil)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		resp, err := deps.service.ManagerDecide(ctx, companyID, manager, l.ID.String(), leave.DecisionRequest{Approve: &approve})

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusManagerApproved, resp.Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("reject - requires a reason", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		l := pendingLeave(companyID)
		deps.repo.EXPECT().FindByIDAndCompany(gomock.Any(), companyID, l.ID.String()).Return(l, nil)

		_, err := deps.service.ManagerDecide(ctx, companyID, manager, l.ID.String(), leave.DecisionRequest{Approve: &reject})

		assert.ErrorIs(t, err, leaveerrors.ErrRejectionReasonRequired)
	})

	t.Run("reject with reason - releases the hold", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		l := pendingLeave(companyID)
		reason := "team is at capacity that week"
		deps.repo.EXPECT().FindByIDAndCompany(gomock.Any(), companyID, l.ID.String()).Return(l, nil)
		deps.repo.EXPECT().
			UpdateDecision(gomock.Any(), gomock.Any(), 1).
			DoAndReturn(func(_ context.Context, updated *leave.LeaveRequest, _ int) (bool, error) {
				assert.Equal(t, leave.StatusRejected, updated.Status)
				assert.Equal(t, reason, *updated.RejectionReason)
				return true, nil
			})
		deps.ledger.EXPECT().
			ReleaseHold(gomock.Any(), companyID, l.EmployeeID.String(), "ANNUAL", 2026, daysEqual("3")).
			Return(nil)
		deps.repo.EXPECT().AppendAction(gomock.Any(), gomock.Any()).Return(nil)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		resp, err := deps.service.ManagerDecide(ctx, companyID, manager, l.ID.String(), leave.DecisionRequest{Approve: &reject, Reason: &reason})

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusRejected, resp.Status)
	})

	t.Run("employee role is refused", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		l := pendingLeave(companyID)
		employee := domain.Actor{ID: l.EmployeeID.String(), Role: domain.RoleEmployee}
		deps.repo.EXPECT().FindByIDAndCompany(gomock.Any(), companyID, l.ID.String()).Return(l, nil)

		_, err := deps.service.ManagerDecide(ctx, companyID, employee, l.ID.String(), leave.DecisionRequest{Approve: &approve})

		assert.ErrorIs(t, err, leaveerrors.ErrUnauthorizedActor)
	})

	t.Run("version race - second decision loses without a ledger effect", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		l := pendingLeave(companyID)
		deps.repo.EXPECT().FindByIDAndCompany(gomock.Any(), companyID, l.ID.String()).Return(l, nil)
		deps.repo.EXPECT().UpdateDecision(gomock.Any(), gomock.Any(), 1).Return(false, nil)

		_, err := deps.service.ManagerDecide(ctx, companyID, manager, l.ID.String(), leave.DecisionRequest{Approve: &approve})

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidStatusTransition)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		id := uuid.New().String()
		deps.repo.EXPECT().FindByIDAndCompany(gomock.Any(), companyID, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.ManagerDecide(ctx, companyID, manager, id, leave.DecisionRequest{Approve: &approve})

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
	})
}

func TestLeaveService_HRDecide(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	hr := domain.Actor{ID: uuid.New().String(), Role: domain.RoleHR}
	approve := true

	t.Run("approve after manager - commits the hold", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		l := pendingLeave(companyID)
		l.Status = leave.StatusManagerApproved
		l.Version = 2

		deps.repo.EXPECT().FindByIDAndCompany(gomock.Any(), companyID, l.ID.String()).Return(l, nil)
		deps.repo.EXPECT().
			UpdateDecision(gomock.Any(), gomock.Any(), 2).
			DoAndReturn(func(_ context.Context, updated *leave.LeaveRequest, _ int) (bool, error) {
				assert.Equal(t, leave.StatusApproved, updated.Status)
				return true, nil
			})
		deps.ledger.EXPECT().
			Commit(gomock.Any(), companyID, l.EmployeeID.String(), "ANNUAL", 2026, daysEqual("3")).
			Return(nil)
		deps.repo.EXPECT().AppendAction(gomock.Any(), gomock.Any()).Return(nil)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		resp, err := deps.service.HRDecide(ctx, companyID, hr, l.ID.String(), leave.DecisionRequest{Approve: &approve})

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusApproved, resp.Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("approve before the manager step is illegal", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		l := pendingLeave(companyID)
		deps.repo.EXPECT().FindByIDAndCompany(gomock.Any(), companyID, l.ID.String()).Return(l, nil)

		_, err := deps.service.HRDecide(ctx, companyID, hr, l.ID.String(), leave.DecisionRequest{Approve: &approve})

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidStatusTransition)
	})

	t.Run("terminal request stays terminal", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		l := pendingLeave(companyID)
		l.Status = leave.StatusApproved
		deps.repo.EXPECT().FindByIDAndCompany(gomock.Any(), companyID, l.ID.String()).Return(l, nil)

		_, err := deps.service.HRDecide(ctx, companyID, hr, l.ID.String(), leave.DecisionRequest{Approve: &approve})

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidStatusTransition)
	})
}

func TestLeaveService_Cancel(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	t.Run("owner cancels a pending request and the hold returns", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		l := pendingLeave(companyID)
		owner := domain.Actor{ID: l.EmployeeID.String(), Role: domain.RoleEmployee}

		deps.repo.EXPECT().FindByIDAndCompany(gomock.Any(), companyID, l.ID.String()).Return(l, nil)
		deps.repo.EXPECT().
			UpdateDecision(gomock.Any(), gomock.Any(), 1).
			DoAndReturn(func(_ context.Context, updated *leave.LeaveRequest, _ int) (bool, error) {
				assert.Equal(t, leave.StatusCancelled, updated.Status)
				return true, nil
			})
		deps.ledger.EXPECT().
			ReleaseHold(gomock.Any(), companyID, l.EmployeeID.String(), "ANNUAL", 2026, daysEqual("3")).
			Return(nil)
		deps.repo.EXPECT().AppendAction(gomock.Any(), gomock.Any()).Return(nil)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		resp, err := deps.service.Cancel(ctx, companyID, owner, l.ID.String())

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusCancelled, resp.Status)
	})

	t.Run("another employee cannot cancel it", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		l := pendingLeave(companyID)
		stranger := domain.Actor{ID: uuid.New().String(), Role: domain.RoleEmployee}
		deps.repo.EXPECT().FindByIDAndCompany(gomock.Any(), companyID, l.ID.String()).Return(l, nil)

		_, err := deps.service.Cancel(ctx, companyID, stranger, l.ID.String())

		assert.ErrorIs(t, err, leaveerrors.ErrUnauthorizedActor)
	})

	t.Run("cancel after final approval is illegal", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		l := pendingLeave(companyID)
		l.Status = leave.StatusApproved
		owner := domain.Actor{ID: l.EmployeeID.String(), Role: domain.RoleEmployee}
		deps.repo.EXPECT().FindByIDAndCompany(gomock.Any(), companyID, l.ID.String()).Return(l, nil)

		_, err := deps.service.Cancel(ctx, companyID, owner, l.ID.String())

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidStatusTransition)
	})
}

func TestLeaveService_GetByID(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	t.Run("not found maps to the domain error", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)

		id := uuid.New().String()
		deps.repo.EXPECT().FindByIDAndCompany(gomock.Any(), companyID, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetByID(ctx, companyID, id)

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
	})

	t.Run("found", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)

		l := pendingLeave(companyID)
		deps.repo.EXPECT().FindByIDAndCompany(gomock.Any(), companyID, l.ID.String()).Return(l, nil)

		resp, err := deps.service.GetByID(ctx, companyID, l.ID.String())

		assert.NoError(t, err)
		assert.Equal(t, l.ID.String(), resp.ID)
		assert.Equal(t, "2026-03-02", resp.StartDate)
	})
}
