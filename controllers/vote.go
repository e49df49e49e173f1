package controllers

import (
	"context"

	"github.com/classboard/classboard-be/db"
	"github.com/classboard/classboard-be/model"
)

type VoteController struct {
	db db.Database
}

func NewVoteController(database db.Database) *VoteController {
	return &VoteController{db: database}
}

// TogglePostUpvote flips the principal's upvote on a post. The toggle runs
// inside the gateway's per-document atomic update so concurrent voters never
// lose updates; the count is re-derived from the membership set every time.
func (vc *VoteController) TogglePostUpvote(ctx context.Context, principal *model.Principal, postId string) (*model.Post, error) {
	if principal == nil {
		return nil, model.ErrAuthenticationRequired
	}
	post, err := vc.db.MutatePost(ctx, postId, func(post *model.Post) error {
		post.ToggleUpvote(principal.Id)
		return nil
	})
	if err != nil {
		return nil, mapMissingDoc(err)
	}
	return post.MakeDisplayableFor(principal), nil
}

func (vc *VoteController) ToggleCommentUpvote(ctx context.Context, principal *model.Principal, commentId string) (*model.Comment, error) {
	if principal == nil {
		return nil, model.ErrAuthenticationRequired
	}
	comment, err := vc.db.MutateComment(ctx, commentId, func(comment *model.Comment) error {
		comment.ToggleUpvote(principal.Id)
		return nil
	})
	if err != nil {
		return nil, mapMissingDoc(err)
	}
	return comment.MakeDisplayableFor(principal), nil
}
