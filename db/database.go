package db

import (
	"context"
	"errors"

	"github.com/classboard/classboard-be/model"
)

// ErrNoSuchDocument is returned by mutate calls targeting a missing document.
// Plain reads return (nil, nil) for a miss instead.
var ErrNoSuchDocument = errors.New("no such document")

type Database interface {
	PostDatabase
	CommentDatabase
	ReportDatabase
	Close() error
}

type CreatePost struct {
	Title   string
	Body    string
	Tag     model.Tag
	ClassId string
	Author  *model.Principal
}

type CreateComment struct {
	PostId   string
	ParentId string
	Body     string
	Author   *model.Principal
}

type CreateReport struct {
	TargetKind model.ReportTargetKind
	TargetId   string
	Reason     string
	Reporter   *model.Principal
}

// PostsQuery narrows the snapshot read; tag/text filtering and ordering are
// applied by the ranking module, not the store.
type PostsQuery struct {
	ClassId string
}

type PostDatabase interface {
	CreatePost(ctx context.Context, req *CreatePost) (*model.Post, error)
	GetPostById(ctx context.Context, id string) (*model.Post, error)
	GetPosts(ctx context.Context, query *PostsQuery) ([]*model.Post, error)
	// MutatePost applies mutate to the post under the store's per-document
	// atomic update primitive and returns the updated post
	MutatePost(ctx context.Context, id string, mutate func(post *model.Post) error) (*model.Post, error)
	DeletePost(ctx context.Context, id string) error
}

type CommentDatabase interface {
	CreateComment(ctx context.Context, req *CreateComment) (*model.Comment, error)
	GetCommentById(ctx context.Context, id string) (*model.Comment, error)
	// GetCommentsByPost returns all comments of a post ordered by creation time
	GetCommentsByPost(ctx context.Context, postId string) ([]*model.Comment, error)
	MutateComment(ctx context.Context, id string, mutate func(comment *model.Comment) error) (*model.Comment, error)
	// DeleteComments removes the given comments; missing ids are not an error,
	// so an interrupted cascade can be re-run
	DeleteComments(ctx context.Context, ids []string) error
}

type ReportDatabase interface {
	CreateReport(ctx context.Context, req *CreateReport) (*model.Report, error)
	GetReports(ctx context.Context) ([]*model.Report, error)
}
