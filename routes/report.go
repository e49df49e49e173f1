package routes

import (
	"firebase.google.com/go/v4/auth"
	"github.com/classboard/classboard-be/controllers"
	"github.com/classboard/classboard-be/middleware"
	"github.com/classboard/classboard-be/model"
	"github.com/classboard/classboard-be/util"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type reportRoutes struct {
	reports *controllers.ReportController
}

func AddReportRoutes(group *gin.RouterGroup, reports *controllers.ReportController, authClient *auth.Client, log *zap.Logger) {
	routes := reportRoutes{reports}
	writeAuth := middleware.Auth(authClient, &middleware.AuthConfig{})

	r := group.Group("/reports")
	r.PUT("", writeAuth, util.HandlerWrapper(log, routes.createReport, &util.HandlerOpts{}))
	r.GET("", writeAuth, util.HandlerWrapper(log, routes.listReports, &util.HandlerOpts{}))
}

type createReportReq struct {
	TargetKind model.ReportTargetKind `json:"targetKind" binding:"required"`
	TargetId   string                 `json:"targetId" binding:"required"`
	Reason     string                 `json:"reason" binding:"required"`
}

func (rr *reportRoutes) createReport(c *gin.Context) (interface{}, *util.HTTPError) {
	var req createReportReq
	if err := c.BindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	report, err := rr.reports.CreateReport(c, middleware.GetPrincipalMaybe(c), &controllers.CreateReportReq{
		TargetKind: req.TargetKind,
		TargetId:   req.TargetId,
		Reason:     req.Reason,
	})
	if err != nil {
		return nil, util.BuildDomainHTTPErr(err)
	}
	return report, nil
}

func (rr *reportRoutes) listReports(c *gin.Context) (interface{}, *util.HTTPError) {
	reports, err := rr.reports.ListReports(c, middleware.GetPrincipalMaybe(c))
	if err != nil {
		return nil, util.BuildDomainHTTPErr(err)
	}
	return reports, nil
}
