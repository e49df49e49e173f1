package routes

import (
	"github.com/classboard/classboard-be/util"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func AddHealthCheckRoutes(group *gin.RouterGroup, log *zap.Logger) {
	health := group.Group("/health")
	health.GET("", util.HandlerWrapper(log, AliveCheck, &util.HandlerOpts{}))
}

func AliveCheck(c *gin.Context) (interface{}, *util.HTTPError) {
	return nil, nil
}
