package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	db2 "github.com/classboard/classboard-be/db"
	"github.com/classboard/classboard-be/model"
	"github.com/google/uuid"
)

// MemoryDB keeps the whole board in process memory behind a single lock.
// It backs local development and is the test double for the document store:
// every mutate call is atomic per document, reads hand out snapshots.
type MemoryDB struct {
	mu       sync.RWMutex
	posts    map[string]*model.Post
	comments map[string]*model.Comment
	reports  map[string]*model.Report
}

func GetDatabase() *MemoryDB {
	return &MemoryDB{
		posts:    make(map[string]*model.Post),
		comments: make(map[string]*model.Comment),
		reports:  make(map[string]*model.Report),
	}
}

func (mdb *MemoryDB) Close() error {
	return nil
}

func clonePost(p *model.Post) *model.Post {
	c := *p
	c.UpvotedBy = make(model.VoteSet, len(p.UpvotedBy))
	for id := range p.UpvotedBy {
		c.UpvotedBy[id] = true
	}
	return &c
}

func cloneComment(cm *model.Comment) *model.Comment {
	c := *cm
	c.UpvotedBy = make(model.VoteSet, len(cm.UpvotedBy))
	for id := range cm.UpvotedBy {
		c.UpvotedBy[id] = true
	}
	return &c
}

func (mdb *MemoryDB) CreatePost(ctx context.Context, req *db2.CreatePost) (*model.Post, error) {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()

	now := time.Now().UTC()
	post := &model.Post{
		Id:         uuid.NewString(),
		Title:      req.Title,
		Body:       req.Body,
		Tag:        req.Tag,
		ClassId:    req.ClassId,
		AuthorId:   req.Author.Id,
		AuthorRole: req.Author.Role,
		AuthorName: req.Author.DisplayName,
		UpvotedBy:  model.VoteSet{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	mdb.posts[post.Id] = post
	return clonePost(post), nil
}

func (mdb *MemoryDB) GetPostById(ctx context.Context, id string) (*model.Post, error) {
	mdb.mu.RLock()
	defer mdb.mu.RUnlock()

	post, ok := mdb.posts[id]
	if !ok {
		return nil, nil
	}
	return clonePost(post), nil
}

func (mdb *MemoryDB) GetPosts(ctx context.Context, query *db2.PostsQuery) ([]*model.Post, error) {
	mdb.mu.RLock()
	defer mdb.mu.RUnlock()

	posts := make([]*model.Post, 0, len(mdb.posts))
	for _, post := range mdb.posts {
		if query != nil && query.ClassId != "" && post.ClassId != query.ClassId {
			continue
		}
		posts = append(posts, clonePost(post))
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.Before(posts[j].CreatedAt)
	})
	return posts, nil
}

func (mdb *MemoryDB) MutatePost(ctx context.Context, id string, mutate func(post *model.Post) error) (*model.Post, error) {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()

	post, ok := mdb.posts[id]
	if !ok {
		return nil, db2.ErrNoSuchDocument
	}
	// mutate runs on a clone; the store only sees the result on success, so a
	// callback that errors after partial changes leaves the document untouched
	next := clonePost(post)
	if err := mutate(next); err != nil {
		return nil, err
	}
	mdb.posts[id] = next
	return clonePost(next), nil
}

func (mdb *MemoryDB) DeletePost(ctx context.Context, id string) error {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()

	delete(mdb.posts, id)
	return nil
}

func (mdb *MemoryDB) CreateComment(ctx context.Context, req *db2.CreateComment) (*model.Comment, error) {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()

	comment := &model.Comment{
		Id:         uuid.NewString(),
		PostId:     req.PostId,
		ParentId:   req.ParentId,
		Body:       req.Body,
		AuthorId:   req.Author.Id,
		AuthorRole: req.Author.Role,
		AuthorName: req.Author.DisplayName,
		UpvotedBy:  model.VoteSet{},
		CreatedAt:  time.Now().UTC(),
	}
	mdb.comments[comment.Id] = comment
	return cloneComment(comment), nil
}

func (mdb *MemoryDB) GetCommentById(ctx context.Context, id string) (*model.Comment, error) {
	mdb.mu.RLock()
	defer mdb.mu.RUnlock()

	comment, ok := mdb.comments[id]
	if !ok {
		return nil, nil
	}
	return cloneComment(comment), nil
}

func (mdb *MemoryDB) GetCommentsByPost(ctx context.Context, postId string) ([]*model.Comment, error) {
	mdb.mu.RLock()
	defer mdb.mu.RUnlock()

	var comments []*model.Comment
	for _, comment := range mdb.comments {
		if comment.PostId == postId {
			comments = append(comments, cloneComment(comment))
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		if comments[i].CreatedAt.Equal(comments[j].CreatedAt) {
			return comments[i].Id < comments[j].Id
		}
		return comments[i].CreatedAt.Before(comments[j].CreatedAt)
	})
	return comments, nil
}

func (mdb *MemoryDB) MutateComment(ctx context.Context, id string, mutate func(comment *model.Comment) error) (*model.Comment, error) {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()

	comment, ok := mdb.comments[id]
	if !ok {
		return nil, db2.ErrNoSuchDocument
	}
	next := cloneComment(comment)
	if err := mutate(next); err != nil {
		return nil, err
	}
	mdb.comments[id] = next
	return cloneComment(next), nil
}

func (mdb *MemoryDB) DeleteComments(ctx context.Context, ids []string) error {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()

	for _, id := range ids {
		delete(mdb.comments, id)
	}
	return nil
}

func (mdb *MemoryDB) CreateReport(ctx context.Context, req *db2.CreateReport) (*model.Report, error) {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()

	report := &model.Report{
		Id:           uuid.NewString(),
		TargetKind:   req.TargetKind,
		TargetId:     req.TargetId,
		Reason:       req.Reason,
		ReporterId:   req.Reporter.Id,
		ReporterName: req.Reporter.DisplayName,
		CreatedAt:    time.Now().UTC(),
	}
	mdb.reports[report.Id] = report
	rep := *report
	return &rep, nil
}

func (mdb *MemoryDB) GetReports(ctx context.Context) ([]*model.Report, error) {
	mdb.mu.RLock()
	defer mdb.mu.RUnlock()

	reports := make([]*model.Report, 0, len(mdb.reports))
	for _, report := range mdb.reports {
		rep := *report
		reports = append(reports, &rep)
	}
	sort.Slice(reports, func(i, j int) bool {
		return reports[i].CreatedAt.After(reports[j].CreatedAt)
	})
	return reports, nil
}
