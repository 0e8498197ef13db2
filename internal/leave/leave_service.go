package leave

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go-leave/internal/domain"
	"go-leave/internal/events"
	"go-leave/internal/ledger"
	leaveerrors "go-leave/internal/leave/errors"
	"go-leave/internal/messaging/kafka"
	"go-leave/internal/shared/contextutil"
	"go-leave/internal/shared/txmanager"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, companyID string, actor domain.Actor, req SubmitLeaveRequest) (LeaveResponse, error)
	ManagerDecide(ctx context.Context, companyID string, actor domain.Actor, id string, req DecisionRequest) (LeaveResponse, error)
	HRDecide(ctx context.Context, companyID string, actor domain.Actor, id string, req DecisionRequest) (LeaveResponse, error)
	Cancel(ctx context.Context, companyID string, actor domain.Actor, id string) (LeaveResponse, error)
	GetByID(ctx context.Context, companyID, id string) (LeaveResponse, error)
	GetAllByCompany(ctx context.Context, companyID string) ([]LeaveResponse, error)
	GetAllByEmployee(ctx context.Context, companyID, employeeID string) ([]LeaveResponse, error)
	GetActions(ctx context.Context, companyID, id string) ([]LeaveActionResponse, error)
	GetBalanceSnapshot(ctx context.Context, companyID, employeeID, leaveType string, year int) (ledger.BalanceSnapshotResponse, error)
}

type service struct {
	txm    txmanager.TransactionManager
	repo   Repository
	ledger ledger.Service
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(txm txmanager.TransactionManager, repo Repository, ledgerService ledger.Service, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(txm, repo, ledgerService, nil, logger...)
}

func NewServiceWithOutbox(
	txm txmanager.TransactionManager,
	repo Repository,
	ledgerService ledger.Service,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{
		txm:    txm,
		repo:   repo,
		ledger: ledgerService,
		outbox: outboxRepo,
		logger: l,
	}
}

func (s *service) Submit(ctx context.Context, companyID string, actor domain.Actor, req SubmitLeaveRequest) (LeaveResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	md := contextutil.ExtractMetadata(ctx)
	log.Debug("submit leave requested",
		zap.String("request_id", md.RequestID),
		zap.String("actor_id", md.ActorID),
		zap.String("company_id", companyID),
		zap.String("employee_id", actor.ID),
		zap.String("leave_type", req.LeaveType),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidCompanyID
	}
	employeeUUID, err := uuid.Parse(actor.ID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidActorID
	}

	startDate, endDate, session, err := validateSubmitRequest(req)
	if err != nil {
		log.Warn("submit leave validation failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	totalDays := computeTotalDays(startDate, endDate, session)
	l := &LeaveRequest{
		ID:             uuid.New(),
		CompanyID:      companyUUID,
		EmployeeID:     employeeUUID,
		LeaveType:      req.LeaveType,
		StartDate:      startDate,
		EndDate:        endDate,
		HalfDaySession: session,
		TotalDays:      totalDays,
		Reason:         strings.TrimSpace(req.Reason),
		AttachmentRef:  req.AttachmentRef,
		Status:         StatusPending,
		Version:        1,
	}

	err = s.txm.RunInTx(ctx, func(txCtx context.Context) error {
		// The hold and the entity are created on the same commit
		// boundary: a failed hold leaves no request behind.
		if err := s.ledger.PlaceHold(txCtx, companyID, actor.ID, l.LeaveType, startDate.Year(), totalDays); err != nil {
			return err
		}
		if err := s.repo.Create(txCtx, l); err != nil {
			return err
		}
		if err := s.appendAction(txCtx, l, EventSubmitted, employeeUUID, nil); err != nil {
			return err
		}
		return s.enqueueEvent(txCtx, l, EventSubmitted, actor.ID, nil)
	})
	if err != nil {
		log.Warn("submit leave failed",
			zap.String("employee_id", actor.ID),
			zap.String("leave_type", req.LeaveType),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}

	log.Info("submit leave success",
		zap.String("leave_id", l.ID.String()),
		zap.String("employee_id", actor.ID),
		zap.String("total_days", totalDays.String()),
	)
	return mapToResponse(*l), nil
}

func (s *service) ManagerDecide(ctx context.Context, companyID string, actor domain.Actor, id string, req DecisionRequest) (LeaveResponse, error) {
	event := EventManagerReject
	if req.Approve != nil && *req.Approve {
		event = EventManagerApprove
	}
	return s.applyTransition(ctx, companyID, actor, id, event, req.Reason)
}

func (s *service) HRDecide(ctx context.Context, companyID string, actor domain.Actor, id string, req DecisionRequest) (LeaveResponse, error) {
	event := EventHRReject
	if req.Approve != nil && *req.Approve {
		event = EventHRApprove
	}
	return s.applyTransition(ctx, companyID, actor, id, event, req.Reason)
}

func (s *service) Cancel(ctx context.Context, companyID string, actor domain.Actor, id string) (LeaveResponse, error) {
	return s.applyTransition(ctx, companyID, actor, id, EventCancel, nil)
}

// applyTransition runs one workflow step: role gate, transition table
// lookup, version-guarded status write, ledger effect and audit entry,
// all on one commit boundary.
func (s *service) applyTransition(
	ctx context.Context,
	companyID string,
	actor domain.Actor,
	id string,
	event Event,
	reason *string,
) (LeaveResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("leave transition requested",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("leave_id", id),
		zap.String("company_id", companyID),
		zap.String("actor_id", actor.ID),
		zap.String("event", string(event)),
	)

	if _, err := uuid.Parse(companyID); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidCompanyID
	}
	actorUUID, err := uuid.Parse(actor.ID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidActorID
	}
	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}

	var result *LeaveRequest
	err = s.txm.RunInTx(ctx, func(txCtx context.Context) error {
		l, err := s.repo.FindByIDAndCompany(txCtx, companyID, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return leaveerrors.ErrLeaveNotFound
			}
			return err
		}

		// Role gate comes before state or input checks.
		if err := authorizeEvent(actor, event, l); err != nil {
			return err
		}

		rule, err := resolveTransition(l.Status, event)
		if err != nil {
			return err
		}

		if rule.RequiresReason && (reason == nil || strings.TrimSpace(*reason) == "") {
			return leaveerrors.ErrRejectionReasonRequired
		}

		expectedVersion := l.Version
		l.Status = rule.To
		if rule.RequiresReason {
			trimmed := strings.TrimSpace(*reason)
			l.RejectionReason = &trimmed
		} else {
			l.RejectionReason = nil
		}

		updated, err := s.repo.UpdateDecision(txCtx, l, expectedVersion)
		if err != nil {
			return err
		}
		if !updated {
			// A concurrent decision won the version race.
			return leaveerrors.ErrInvalidStatusTransition
		}

		switch rule.Effect {
		case EffectRelease:
			err = s.ledger.ReleaseHold(txCtx, companyID, l.EmployeeID.String(), l.LeaveType, l.StartDate.Year(), l.TotalDays)
		case EffectCommit:
			err = s.ledger.Commit(txCtx, companyID, l.EmployeeID.String(), l.LeaveType, l.StartDate.Year(), l.TotalDays)
		}
		if err != nil {
			return err
		}

		if err := s.appendAction(txCtx, l, event, actorUUID, l.RejectionReason); err != nil {
			return err
		}
		if err := s.enqueueEvent(txCtx, l, event, actor.ID, l.RejectionReason); err != nil {
			return err
		}

		result = l
		return nil
	})
	if err != nil {
		log.Warn("leave transition failed",
			zap.String("leave_id", id),
			zap.String("event", string(event)),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}

	log.Info("leave transition success",
		zap.String("leave_id", id),
		zap.String("event", string(event)),
		zap.String("status", result.Status),
	)
	return mapToResponse(*result), nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (LeaveResponse, error) {
	l, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}
	return mapToResponse(*l), nil
}

func (s *service) GetAllByCompany(ctx context.Context, companyID string) ([]LeaveResponse, error) {
	leaves, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

func (s *service) GetAllByEmployee(ctx context.Context, companyID, employeeID string) ([]LeaveResponse, error) {
	leaves, err := s.repo.FindAllByEmployee(ctx, companyID, employeeID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

func (s *service) GetActions(ctx context.Context, companyID, id string) ([]LeaveActionResponse, error) {
	if _, err := s.repo.FindByIDAndCompany(ctx, companyID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, leaveerrors.ErrLeaveNotFound
		}
		return nil, err
	}

	actions, err := s.repo.FindActions(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := make([]LeaveActionResponse, len(actions))
	for i, a := range actions {
		resp[i] = LeaveActionResponse{
			Action:      a.Action,
			PerformedBy: a.PerformedBy.String(),
			Comment:     a.Comment,
			Timestamp:   a.CreatedAt.UTC().Format(time.RFC3339),
		}
	}
	return resp, nil
}

func (s *service) GetBalanceSnapshot(ctx context.Context, companyID, employeeID, leaveType string, year int) (ledger.BalanceSnapshotResponse, error) {
	return s.ledger.GetSnapshot(ctx, companyID, employeeID, leaveType, year)
}

func (s *service) appendAction(ctx context.Context, l *LeaveRequest, event Event, performedBy uuid.UUID, comment *string) error {
	return s.repo.AppendAction(ctx, &LeaveAction{
		ID:          uuid.New(),
		LeaveID:     l.ID,
		Action:      string(event),
		PerformedBy: performedBy,
		Comment:     comment,
	})
}

var eventTypes = map[Event]string{
	EventSubmitted:      events.LeaveSubmitted,
	EventManagerApprove: events.LeaveManagerApproved,
	EventManagerReject:  events.LeaveRejected,
	EventHRApprove:      events.LeaveApproved,
	EventHRReject:       events.LeaveRejected,
	EventCancel:         events.LeaveCancelled,
}

// enqueueEvent records the lifecycle event for the notification/audit
// export. It shares the workflow transaction so the export stream never
// sees a transition that was rolled back.
func (s *service) enqueueEvent(ctx context.Context, l *LeaveRequest, event Event, actorID string, comment *string) error {
	if s.outbox == nil {
		return nil
	}

	payload, err := json.Marshal(events.LeaveLifecycleEvent{
		EventType:   eventTypes[event],
		LeaveID:     l.ID.String(),
		CompanyID:   l.CompanyID.String(),
		EmployeeID:  l.EmployeeID.String(),
		Status:      l.Status,
		PerformedBy: actorID,
		Comment:     comment,
		OccurredAt:  time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return s.outbox.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "leave_request",
		AggregateID:   l.ID.String(),
		EventType:     eventTypes[event],
		Topic:         events.LeaveLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func validateSubmitRequest(req SubmitLeaveRequest) (time.Time, time.Time, string, error) {
	if !ledger.KnownLeaveType(req.LeaveType) {
		return time.Time{}, time.Time{}, "", leaveerrors.ErrUnknownLeaveType
	}
	if strings.TrimSpace(req.Reason) == "" {
		return time.Time{}, time.Time{}, "", leaveerrors.ErrEmptyReason
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, "", err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, "", err
	}
	if startDate.After(endDate) {
		return time.Time{}, time.Time{}, "", leaveerrors.ErrInvalidDateRange
	}

	session := req.HalfDaySession
	if session == "" {
		session = SessionFullDay
	}
	if session != SessionFullDay && !startDate.Equal(endDate) {
		return time.Time{}, time.Time{}, "", leaveerrors.ErrInvalidHalfDaySession
	}

	return startDate, endDate, session, nil
}

var halfDay = decimal.New(5, -1) // 0.5

func computeTotalDays(startDate, endDate time.Time, session string) decimal.Decimal {
	if startDate.Equal(endDate) {
		if session != SessionFullDay {
			return halfDay
		}
		return decimal.NewFromInt(1)
	}
	days := int64(endDate.Sub(startDate).Hours()/24) + 1
	return decimal.NewFromInt(days)
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func mapToResponse(l LeaveRequest) LeaveResponse {
	return LeaveResponse{
		ID:              l.ID.String(),
		CompanyID:       l.CompanyID.String(),
		EmployeeID:      l.EmployeeID.String(),
		LeaveType:       l.LeaveType,
		StartDate:       l.StartDate.Format("2006-01-02"),
		EndDate:         l.EndDate.Format("2006-01-02"),
		HalfDaySession:  l.HalfDaySession,
		TotalDays:       l.TotalDays.String(),
		Reason:          l.Reason,
		AttachmentRef:   l.AttachmentRef,
		Status:          l.Status,
		RejectionReason: l.RejectionReason,
		CreatedAt:       l.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       l.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func mapToListResponse(leaves []LeaveRequest) []LeaveResponse {
	resp := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		resp[i] = mapToResponse(l)
	}
	return resp
}
