package controllers

import (
	"context"
	"errors"
	"strings"

	"github.com/classboard/classboard-be/db"
	"github.com/classboard/classboard-be/model"
	"github.com/classboard/classboard-be/util"
)

type ReportController struct {
	db db.Database
}

func NewReportController(database db.Database) *ReportController {
	return &ReportController{db: database}
}

type CreateReportReq struct {
	TargetKind model.ReportTargetKind
	TargetId   string
	Reason     string
}

func (rc *ReportController) CreateReport(ctx context.Context, principal *model.Principal, req *CreateReportReq) (*model.Report, error) {
	if principal == nil {
		return nil, model.ErrAuthenticationRequired
	}
	reason := strings.TrimSpace(util.XSSSanitize(req.Reason))
	if reason == "" {
		return nil, model.NewValidationError(errors.New("invalid report"),
			model.FieldError{Field: "reason", Error: "must not be empty"})
	}

	switch req.TargetKind {
	case model.ReportTargetPost:
		post, err := rc.db.GetPostById(ctx, req.TargetId)
		if err != nil {
			return nil, err
		}
		if post == nil {
			return nil, model.ErrNotFound
		}
	case model.ReportTargetComment:
		comment, err := rc.db.GetCommentById(ctx, req.TargetId)
		if err != nil {
			return nil, err
		}
		if comment == nil {
			return nil, model.ErrNotFound
		}
	default:
		return nil, model.NewValidationError(errors.New("invalid report"),
			model.FieldError{Field: "targetKind", Error: "must be post or comment"})
	}

	return rc.db.CreateReport(ctx, &db.CreateReport{
		TargetKind: req.TargetKind,
		TargetId:   req.TargetId,
		Reason:     reason,
		Reporter:   principal,
	})
}

func (rc *ReportController) ListReports(ctx context.Context, principal *model.Principal) ([]*model.Report, error) {
	if principal == nil {
		return nil, model.ErrAuthenticationRequired
	}
	if !model.CanListReports(principal) {
		return nil, model.ErrPermissionDenied
	}
	return rc.db.GetReports(ctx)
}
