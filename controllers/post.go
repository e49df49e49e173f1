package controllers

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/classboard/classboard-be/app"
	"github.com/classboard/classboard-be/db"
	"github.com/classboard/classboard-be/model"
	"github.com/classboard/classboard-be/util"
)

type PostController struct {
	db db.Database
}

func NewPostController(database db.Database) *PostController {
	return &PostController{db: database}
}

type CreatePostReq struct {
	Title   string
	Body    string
	Tag     model.Tag
	ClassId string
}

// EditPostReq carries the editable fields; nil means leave unchanged.
// Author, timestamps and vote state are not editable through this path.
type EditPostReq struct {
	Title   *string
	Body    *string
	Tag     *model.Tag
	ClassId *string
}

type ListPostsQuery struct {
	Tag     string
	Sort    app.SortKey
	Query   string
	ClassId string
}

func (pc *PostController) ListPosts(ctx context.Context, viewer *model.Principal, query *ListPostsQuery) ([]*model.Post, error) {
	sortKey := query.Sort
	if sortKey == "" {
		sortKey = app.SortHot
	}
	if !sortKey.Valid() {
		return nil, model.NewValidationError(errors.New("unknown sort key"),
			model.FieldError{Field: "sort", Error: "must be one of hot, new, top"})
	}

	posts, err := pc.db.GetPosts(ctx, &db.PostsQuery{ClassId: query.ClassId})
	if err != nil {
		return nil, err
	}
	posts = app.FilterPosts(posts, query.Tag, query.Query)
	app.SortPosts(posts, sortKey, time.Now())
	for i, post := range posts {
		posts[i] = post.MakeDisplayableFor(viewer)
	}
	return posts, nil
}

func (pc *PostController) GetPostById(ctx context.Context, viewer *model.Principal, id string) (*model.Post, error) {
	post, err := pc.db.GetPostById(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, model.ErrNotFound
	}
	return post.MakeDisplayableFor(viewer), nil
}

func (pc *PostController) CreatePost(ctx context.Context, principal *model.Principal, req *CreatePostReq) (*model.Post, error) {
	if principal == nil {
		return nil, model.ErrAuthenticationRequired
	}

	title := strings.TrimSpace(util.XSSSanitize(req.Title))
	body := strings.TrimSpace(util.XSSSanitize(req.Body))
	var fields []model.FieldError
	if title == "" {
		fields = append(fields, model.FieldError{Field: "title", Error: "must not be empty"})
	}
	if body == "" {
		fields = append(fields, model.FieldError{Field: "body", Error: "must not be empty"})
	}
	if !req.Tag.Valid() {
		fields = append(fields, model.FieldError{Field: "tag", Error: "unknown tag"})
	}
	if len(fields) > 0 {
		return nil, model.NewValidationError(errors.New("invalid post"), fields...)
	}

	post, err := pc.db.CreatePost(ctx, &db.CreatePost{
		Title:   title,
		Body:    body,
		Tag:     req.Tag,
		ClassId: req.ClassId,
		Author:  principal,
	})
	if err != nil {
		return nil, err
	}
	return post.MakeDisplayableFor(principal), nil
}

func (pc *PostController) EditPost(ctx context.Context, principal *model.Principal, postId string, req *EditPostReq) (*model.Post, error) {
	if principal == nil {
		return nil, model.ErrAuthenticationRequired
	}

	post, err := pc.db.MutatePost(ctx, postId, func(post *model.Post) error {
		if !model.CanEditPost(principal, post) {
			return model.ErrPermissionDenied
		}
		if req.Title != nil {
			title := strings.TrimSpace(util.XSSSanitize(*req.Title))
			if title == "" {
				return model.NewValidationError(errors.New("invalid post"),
					model.FieldError{Field: "title", Error: "must not be empty"})
			}
			post.Title = title
		}
		if req.Body != nil {
			body := strings.TrimSpace(util.XSSSanitize(*req.Body))
			if body == "" {
				return model.NewValidationError(errors.New("invalid post"),
					model.FieldError{Field: "body", Error: "must not be empty"})
			}
			post.Body = body
		}
		if req.Tag != nil {
			if !req.Tag.Valid() {
				return model.NewValidationError(errors.New("invalid post"),
					model.FieldError{Field: "tag", Error: "unknown tag"})
			}
			post.Tag = *req.Tag
		}
		if req.ClassId != nil {
			post.ClassId = *req.ClassId
		}
		post.UpdatedAt = time.Now().UTC()
		return nil
	})
	if err != nil {
		return nil, mapMissingDoc(err)
	}
	return post.MakeDisplayableFor(principal), nil
}

// DeletePost removes the post together with all of its comments. Comments go
// first so an interrupted delete can be re-run against the surviving post.
func (pc *PostController) DeletePost(ctx context.Context, principal *model.Principal, postId string) error {
	if principal == nil {
		return model.ErrAuthenticationRequired
	}
	post, err := pc.db.GetPostById(ctx, postId)
	if err != nil {
		return err
	}
	if post == nil {
		return model.ErrNotFound
	}
	if !model.CanDeletePost(principal, post) {
		return model.ErrPermissionDenied
	}

	for attempt := 0; attempt < maxCascadeSweeps; attempt++ {
		comments, err := pc.db.GetCommentsByPost(ctx, postId)
		if err != nil {
			return err
		}
		if len(comments) == 0 {
			break
		}
		ids := make([]string, len(comments))
		for i, comment := range comments {
			ids[i] = comment.Id
		}
		if err := pc.db.DeleteComments(ctx, ids); err != nil {
			return err
		}
	}
	return pc.db.DeletePost(ctx, postId)
}

func (pc *PostController) TogglePin(ctx context.Context, principal *model.Principal, postId string) (*model.Post, error) {
	if principal == nil {
		return nil, model.ErrAuthenticationRequired
	}
	if !model.CanPin(principal) {
		return nil, model.ErrPermissionDenied
	}
	post, err := pc.db.MutatePost(ctx, postId, func(post *model.Post) error {
		post.IsPinned = !post.IsPinned
		return nil
	})
	if err != nil {
		return nil, mapMissingDoc(err)
	}
	return post.MakeDisplayableFor(principal), nil
}

func mapMissingDoc(err error) error {
	if errors.Is(err, db.ErrNoSuchDocument) {
		return model.ErrNotFound
	}
	return err
}
