package leavehistory

import (
	"context"

	leavehistoryerrors "go-cuti/internal/leavehistory/errors"
	"go-cuti/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	GetHistory(ctx context.Context, q Query) (HistoryView, error)
}

type service struct {
	source    Source
	privilege Privilege
	logger    *zap.Logger
}

func NewService(source Source, privilege Privilege, logger ...*zap.Logger) Service {
	l := zap.L().Named("leavehistory.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leavehistory.service")
	}
	if privilege == nil {
		privilege = DefaultPrivilege
	}
	return &service{source: source, privilege: privilege, logger: l}
}

func (s *service) GetHistory(ctx context.Context, q Query) (HistoryView, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if q.CompanyID == "" {
		log.Debug("get leave history anonymous")
		return BuildView(nil, nil, Viewer{}, q.Filter), nil
	}
	if _, err := uuid.Parse(q.CompanyID); err != nil {
		return HistoryView{}, leavehistoryerrors.ErrInvalidCompanyID
	}

	snap, err := s.source.Load(ctx, q.CompanyID)
	if err != nil {
		log.Error("load leave history failed",
			zap.String("company_id", q.CompanyID),
			zap.Error(err),
		)
		return HistoryView{}, err
	}

	viewer := ResolveViewer(snap.FindEmployee(q.ActorEmployeeID), s.privilege)
	if viewer.User == nil && q.ActorEmployeeID != "" {
		log.Warn("leave history actor not in directory",
			zap.String("company_id", q.CompanyID),
			zap.String("employee_id", q.ActorEmployeeID),
		)
	}

	view := BuildView(snap.Employees, snap.Requests, viewer, q.Filter)
	log.Debug("get leave history success",
		zap.String("company_id", q.CompanyID),
		zap.String("employee_id", q.ActorEmployeeID),
		zap.Bool("elevated", viewer.Elevated),
		zap.String("filter_employee_id", q.Filter.EmployeeID),
		zap.String("filter_status", q.Filter.Status),
		zap.Int("rows", len(view.Rows)),
	)
	return view, nil
}
