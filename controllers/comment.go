package controllers

import (
	"context"
	"errors"
	"strings"

	"github.com/classboard/classboard-be/app"
	"github.com/classboard/classboard-be/db"
	"github.com/classboard/classboard-be/model"
	"github.com/classboard/classboard-be/util"
)

// maxCascadeSweeps bounds the re-verification loop after a cascading delete.
// Each sweep only ever shrinks the comment set, so a handful of passes is
// plenty for the expected per-post comment counts.
const maxCascadeSweeps = 5

type CommentController struct {
	db db.Database
}

func NewCommentController(database db.Database) *CommentController {
	return &CommentController{db: database}
}

type CreateCommentReq struct {
	PostId   string
	ParentId string
	Body     string
}

func (cc *CommentController) CreateComment(ctx context.Context, principal *model.Principal, req *CreateCommentReq) (*model.Comment, error) {
	if principal == nil {
		return nil, model.ErrAuthenticationRequired
	}

	body := strings.TrimSpace(util.XSSSanitize(req.Body))
	if body == "" {
		return nil, model.NewValidationError(errors.New("invalid comment"),
			model.FieldError{Field: "body", Error: "must not be empty"})
	}

	post, err := cc.db.GetPostById(ctx, req.PostId)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, model.ErrNotFound
	}
	// a parent must already exist on the same post, so cross-post parenting
	// and cycles are ruled out structurally
	if req.ParentId != "" {
		parent, err := cc.db.GetCommentById(ctx, req.ParentId)
		if err != nil {
			return nil, err
		}
		if parent == nil || parent.PostId != req.PostId {
			return nil, model.ErrNotFound
		}
	}

	comment, err := cc.db.CreateComment(ctx, &db.CreateComment{
		PostId:   req.PostId,
		ParentId: req.ParentId,
		Body:     body,
		Author:   principal,
	})
	if err != nil {
		return nil, err
	}
	return comment.MakeDisplayableFor(principal), nil
}

// GetThread materializes the visible comment forest of a post for a viewer.
func (cc *CommentController) GetThread(ctx context.Context, viewer *model.Principal, postId string) ([]*model.CommentTree, error) {
	post, err := cc.db.GetPostById(ctx, postId)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, model.ErrNotFound
	}
	comments, err := cc.db.GetCommentsByPost(ctx, postId)
	if err != nil {
		return nil, err
	}
	forest := app.BuildForest(comments)
	// walk the whole forest once, projecting every node for the viewer;
	// hiding suppresses only the hidden node, its children stay visible
	walk := app.NewTraversal(forest)
	for node, ok := walk.Next(); ok; node, ok = walk.Next() {
		node.Comment = node.Comment.MakeDisplayableFor(viewer)
	}
	return forest, nil
}

// DeleteComment removes the comment and its whole reply subtree. The store
// has no cross-document transactions, so the descendant set is snapshotted,
// deleted, and the result re-verified: any comment left pointing at a gone
// parent is swept on the next pass.
func (cc *CommentController) DeleteComment(ctx context.Context, principal *model.Principal, commentId string) error {
	if principal == nil {
		return model.ErrAuthenticationRequired
	}
	comment, err := cc.db.GetCommentById(ctx, commentId)
	if err != nil {
		return err
	}
	if comment == nil {
		return model.ErrNotFound
	}
	if !model.CanDeleteComment(principal, comment) {
		return model.ErrPermissionDenied
	}

	comments, err := cc.db.GetCommentsByPost(ctx, comment.PostId)
	if err != nil {
		return err
	}
	ids := []string{comment.Id}
	for id := range app.Descendants(comment.Id, comments) {
		ids = append(ids, id)
	}
	if err := cc.db.DeleteComments(ctx, ids); err != nil {
		return err
	}

	for attempt := 0; attempt < maxCascadeSweeps; attempt++ {
		remaining, err := cc.db.GetCommentsByPost(ctx, comment.PostId)
		if err != nil {
			return err
		}
		dangling := app.Dangling(remaining)
		if len(dangling) == 0 {
			return nil
		}
		if err := cc.db.DeleteComments(ctx, dangling); err != nil {
			return err
		}
	}
	return nil
}

// SetHidden flips the moderation flag. Setting the current value again is a
// no-op success; data and descendants are untouched either way.
func (cc *CommentController) SetHidden(ctx context.Context, principal *model.Principal, commentId string, hidden bool) (*model.Comment, error) {
	if principal == nil {
		return nil, model.ErrAuthenticationRequired
	}
	if !model.CanModerate(principal) {
		return nil, model.ErrPermissionDenied
	}
	comment, err := cc.db.MutateComment(ctx, commentId, func(comment *model.Comment) error {
		comment.Hidden = hidden
		return nil
	})
	if err != nil {
		return nil, mapMissingDoc(err)
	}
	return comment.MakeDisplayableFor(principal), nil
}
