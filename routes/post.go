package routes

import (
	"firebase.google.com/go/v4/auth"
	"github.com/classboard/classboard-be/app"
	"github.com/classboard/classboard-be/controllers"
	"github.com/classboard/classboard-be/middleware"
	"github.com/classboard/classboard-be/model"
	"github.com/classboard/classboard-be/util"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type postRoutes struct {
	posts    *controllers.PostController
	comments *controllers.CommentController
	votes    *controllers.VoteController
}

func AddPostRoutes(
	group *gin.RouterGroup,
	posts *controllers.PostController,
	comments *controllers.CommentController,
	votes *controllers.VoteController,
	authClient *auth.Client,
	log *zap.Logger,
) {
	routes := postRoutes{posts, comments, votes}
	readAuth := middleware.Auth(authClient, &middleware.AuthConfig{SessionNotRequired: true})
	writeAuth := middleware.Auth(authClient, &middleware.AuthConfig{})

	r := group.Group("/posts")
	r.GET("", readAuth, util.HandlerWrapper(log, routes.listPosts, &util.HandlerOpts{}))
	r.GET("/:id", readAuth, util.HandlerWrapper(log, routes.getPostById, &util.HandlerOpts{}))
	r.PUT("", writeAuth, util.HandlerWrapper(log, routes.createPost, &util.HandlerOpts{}))
	r.POST("/:id", writeAuth, util.HandlerWrapper(log, routes.editPost, &util.HandlerOpts{}))
	r.DELETE("/:id", writeAuth, util.HandlerWrapper(log, routes.deletePost, &util.HandlerOpts{}))
	r.POST("/:id/pin", writeAuth, util.HandlerWrapper(log, routes.togglePin, &util.HandlerOpts{}))
	r.POST("/:id/votes", writeAuth, util.HandlerWrapper(log, routes.votePost, &util.HandlerOpts{}))
	r.PUT("/:id/comments", writeAuth, util.HandlerWrapper(log, routes.createComment, &util.HandlerOpts{}))
}

func (pr *postRoutes) listPosts(c *gin.Context) (interface{}, *util.HTTPError) {
	posts, err := pr.posts.ListPosts(c, middleware.GetPrincipalMaybe(c), &controllers.ListPostsQuery{
		Tag:     c.Query("tag"),
		Sort:    app.SortKey(c.Query("sort")),
		Query:   c.Query("q"),
		ClassId: c.Query("classId"),
	})
	if err != nil {
		return nil, util.BuildDomainHTTPErr(err)
	}
	return posts, nil
}

func (pr *postRoutes) getPostById(c *gin.Context) (interface{}, *util.HTTPError) {
	viewer := middleware.GetPrincipalMaybe(c)
	post, err := pr.posts.GetPostById(c, viewer, c.Param("id"))
	if err != nil {
		return nil, util.BuildDomainHTTPErr(err)
	}
	thread, err := pr.comments.GetThread(c, viewer, post.Id)
	if err != nil {
		return nil, util.BuildDomainHTTPErr(err)
	}
	return gin.H{
		"post":     post,
		"comments": thread,
	}, nil
}

type createPostReq struct {
	Title   string    `json:"title" binding:"required"`
	Body    string    `json:"body" binding:"required"`
	Tag     model.Tag `json:"tag" binding:"required,posttag"`
	ClassId string    `json:"classId"`
}

func (pr *postRoutes) createPost(c *gin.Context) (interface{}, *util.HTTPError) {
	var req createPostReq
	if err := c.BindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	post, err := pr.posts.CreatePost(c, middleware.GetPrincipalMaybe(c), &controllers.CreatePostReq{
		Title:   req.Title,
		Body:    req.Body,
		Tag:     req.Tag,
		ClassId: req.ClassId,
	})
	if err != nil {
		return nil, util.BuildDomainHTTPErr(err)
	}
	return post, nil
}

type editPostReq struct {
	Title   *string    `json:"title"`
	Body    *string    `json:"body"`
	Tag     *model.Tag `json:"tag"`
	ClassId *string    `json:"classId"`
}

func (pr *postRoutes) editPost(c *gin.Context) (interface{}, *util.HTTPError) {
	var req editPostReq
	if err := c.BindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	post, err := pr.posts.EditPost(c, middleware.GetPrincipalMaybe(c), c.Param("id"), &controllers.EditPostReq{
		Title:   req.Title,
		Body:    req.Body,
		Tag:     req.Tag,
		ClassId: req.ClassId,
	})
	if err != nil {
		return nil, util.BuildDomainHTTPErr(err)
	}
	return post, nil
}

func (pr *postRoutes) deletePost(c *gin.Context) (interface{}, *util.HTTPError) {
	if err := pr.posts.DeletePost(c, middleware.GetPrincipalMaybe(c), c.Param("id")); err != nil {
		return nil, util.BuildDomainHTTPErr(err)
	}
	return nil, nil
}

func (pr *postRoutes) togglePin(c *gin.Context) (interface{}, *util.HTTPError) {
	post, err := pr.posts.TogglePin(c, middleware.GetPrincipalMaybe(c), c.Param("id"))
	if err != nil {
		return nil, util.BuildDomainHTTPErr(err)
	}
	return post, nil
}

func (pr *postRoutes) votePost(c *gin.Context) (interface{}, *util.HTTPError) {
	post, err := pr.votes.TogglePostUpvote(c, middleware.GetPrincipalMaybe(c), c.Param("id"))
	if err != nil {
		return nil, util.BuildDomainHTTPErr(err)
	}
	return post, nil
}

type createCommentReq struct {
	ParentId string `json:"parentId"`
	Body     string `json:"body" binding:"required"`
}

func (pr *postRoutes) createComment(c *gin.Context) (interface{}, *util.HTTPError) {
	var req createCommentReq
	if err := c.BindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	comment, err := pr.comments.CreateComment(c, middleware.GetPrincipalMaybe(c), &controllers.CreateCommentReq{
		PostId:   c.Param("id"),
		ParentId: req.ParentId,
		Body:     req.Body,
	})
	if err != nil {
		return nil, util.BuildDomainHTTPErr(err)
	}
	return comment, nil
}
