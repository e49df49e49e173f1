package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	db2 "github.com/classboard/classboard-be/db"
	"github.com/classboard/classboard-be/model"
	"github.com/google/uuid"
)

func (fdb *FirestoreDB) CreatePost(ctx context.Context, req *db2.CreatePost) (*model.Post, error) {
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
	if _, err := fdb.client.Collection(postsCollection).Doc(post.Id).Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (fdb *FirestoreDB) GetPostById(ctx context.Context, id string) (*model.Post, error) {
	snap, err := fdb.client.Collection(postsCollection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	var post model.Post
	if err := snap.DataTo(&post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (fdb *FirestoreDB) GetPosts(ctx context.Context, query *db2.PostsQuery) ([]*model.Post, error) {
	q := fdb.client.Collection(postsCollection).Query
	if query != nil && query.ClassId != "" {
		q = q.Where("classId", "==", query.ClassId)
	}
	snaps, err := q.OrderBy("createdAt", firestore.Asc).Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	posts := make([]*model.Post, len(snaps))
	for i, snap := range snaps {
		var post model.Post
		if err := snap.DataTo(&post); err != nil {
			return nil, err
		}
		posts[i] = &post
	}
	return posts, nil
}

func (fdb *FirestoreDB) MutatePost(ctx context.Context, id string, mutate func(post *model.Post) error) (*model.Post, error) {
	ref := fdb.client.Collection(postsCollection).Doc(id)
	var updated model.Post
	err := fdb.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			if isNotFound(err) {
				return db2.ErrNoSuchDocument
			}
			return err
		}
		var post model.Post
		if err := snap.DataTo(&post); err != nil {
			return err
		}
		if err := mutate(&post); err != nil {
			return err
		}
		updated = post
		return tx.Set(ref, &post)
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (fdb *FirestoreDB) DeletePost(ctx context.Context, id string) error {
	_, err := fdb.client.Collection(postsCollection).Doc(id).Delete(ctx)
	return err
}
