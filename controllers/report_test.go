package controllers

import (
	"context"
	"testing"

	"github.com/classboard/classboard-be/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReport(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	post := env.mustCreatePost(t, parentAsha, "Post")
	comment := env.mustCreateComment(t, parentBakari, post.Id, "", "hmm")

	report, err := env.reports.CreateReport(ctx, parentAsha, &CreateReportReq{
		TargetKind: model.ReportTargetComment,
		TargetId:   comment.Id,
		Reason:     "inappropriate",
	})
	require.NoError(t, err)
	assert.Equal(t, model.ReportTargetComment, report.TargetKind)
	assert.Equal(t, comment.Id, report.TargetId)
	assert.Equal(t, parentAsha.Id, report.ReporterId)

	_, err = env.reports.CreateReport(ctx, parentBakari, &CreateReportReq{
		TargetKind: model.ReportTargetPost,
		TargetId:   post.Id,
		Reason:     "off topic",
	})
	assert.NoError(t, err)
}

func TestCreateReport_Failures(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	post := env.mustCreatePost(t, parentAsha, "Post")

	_, err := env.reports.CreateReport(ctx, nil, &CreateReportReq{
		TargetKind: model.ReportTargetPost, TargetId: post.Id, Reason: "x",
	})
	assert.ErrorIs(t, err, model.ErrAuthenticationRequired)

	_, err = env.reports.CreateReport(ctx, parentAsha, &CreateReportReq{
		TargetKind: model.ReportTargetPost, TargetId: "missing", Reason: "x",
	})
	assert.ErrorIs(t, err, model.ErrNotFound)

	_, err = env.reports.CreateReport(ctx, parentAsha, &CreateReportReq{
		TargetKind: "thread", TargetId: post.Id, Reason: "x",
	})
	var validationErr *model.ValidationError
	assert.ErrorAs(t, err, &validationErr)

	_, err = env.reports.CreateReport(ctx, parentAsha, &CreateReportReq{
		TargetKind: model.ReportTargetPost, TargetId: post.Id, Reason: "  ",
	})
	assert.ErrorAs(t, err, &validationErr)
}

func TestListReports_ModeratorsOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	post := env.mustCreatePost(t, parentAsha, "Post")
	_, err := env.reports.CreateReport(ctx, parentBakari, &CreateReportReq{
		TargetKind: model.ReportTargetPost, TargetId: post.Id, Reason: "spam",
	})
	require.NoError(t, err)

	_, err = env.reports.ListReports(ctx, parentAsha)
	assert.ErrorIs(t, err, model.ErrPermissionDenied)

	reports, err := env.reports.ListReports(ctx, teacherNia)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "spam", reports[0].Reason)
}
