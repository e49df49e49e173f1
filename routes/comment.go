package routes

import (
	"firebase.google.com/go/v4/auth"
	"github.com/classboard/classboard-be/controllers"
	"github.com/classboard/classboard-be/middleware"
	"github.com/classboard/classboard-be/util"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type commentRoutes struct {
	comments *controllers.CommentController
	votes    *controllers.VoteController
}

func AddCommentRoutes(
	group *gin.RouterGroup,
	comments *controllers.CommentController,
	votes *controllers.VoteController,
	authClient *auth.Client,
	log *zap.Logger,
) {
	routes := commentRoutes{comments, votes}
	writeAuth := middleware.Auth(authClient, &middleware.AuthConfig{})

	r := group.Group("/comments")
	r.DELETE("/:id", writeAuth, util.HandlerWrapper(log, routes.deleteComment, &util.HandlerOpts{}))
	r.POST("/:id/votes", writeAuth, util.HandlerWrapper(log, routes.voteComment, &util.HandlerOpts{}))
	r.POST("/:id/visibility", writeAuth, util.HandlerWrapper(log, routes.setHidden, &util.HandlerOpts{}))
}

func (cr *commentRoutes) deleteComment(c *gin.Context) (interface{}, *util.HTTPError) {
	if err := cr.comments.DeleteComment(c, middleware.GetPrincipalMaybe(c), c.Param("id")); err != nil {
		return nil, util.BuildDomainHTTPErr(err)
	}
	return nil, nil
}

func (cr *commentRoutes) voteComment(c *gin.Context) (interface{}, *util.HTTPError) {
	comment, err := cr.votes.ToggleCommentUpvote(c, middleware.GetPrincipalMaybe(c), c.Param("id"))
	if err != nil {
		return nil, util.BuildDomainHTTPErr(err)
	}
	return comment, nil
}

type setHiddenReq struct {
	Hidden *bool `json:"hidden" binding:"required"`
}

func (cr *commentRoutes) setHidden(c *gin.Context) (interface{}, *util.HTTPError) {
	var req setHiddenReq
	if err := c.BindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	comment, err := cr.comments.SetHidden(c, middleware.GetPrincipalMaybe(c), c.Param("id"), *req.Hidden)
	if err != nil {
		return nil, util.BuildDomainHTTPErr(err)
	}
	return comment, nil
}
