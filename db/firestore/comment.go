package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	db2 "github.com/classboard/classboard-be/db"
	"github.com/classboard/classboard-be/model"
	"github.com/google/uuid"
)

func (fdb *FirestoreDB) CreateComment(ctx context.Context, req *db2.CreateComment) (*model.Comment, error) {
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
	if _, err := fdb.client.Collection(commentsCollection).Doc(comment.Id).Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (fdb *FirestoreDB) GetCommentById(ctx context.Context, id string) (*model.Comment, error) {
	snap, err := fdb.client.Collection(commentsCollection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	var comment model.Comment
	if err := snap.DataTo(&comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (fdb *FirestoreDB) GetCommentsByPost(ctx context.Context, postId string) ([]*model.Comment, error) {
	snaps, err := fdb.client.Collection(commentsCollection).
		Where("postId", "==", postId).
		OrderBy("createdAt", firestore.Asc).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, err
	}
	comments := make([]*model.Comment, len(snaps))
	for i, snap := range snaps {
		var comment model.Comment
		if err := snap.DataTo(&comment); err != nil {
			return nil, err
		}
		comments[i] = &comment
	}
	return comments, nil
}

func (fdb *FirestoreDB) MutateComment(ctx context.Context, id string, mutate func(comment *model.Comment) error) (*model.Comment, error) {
	ref := fdb.client.Collection(commentsCollection).Doc(id)
	var updated model.Comment
	err := fdb.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			if isNotFound(err) {
				return db2.ErrNoSuchDocument
			}
			return err
		}
		var comment model.Comment
		if err := snap.DataTo(&comment); err != nil {
			return err
		}
		if err := mutate(&comment); err != nil {
			return err
		}
		updated = comment
		return tx.Set(ref, &comment)
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (fdb *FirestoreDB) DeleteComments(ctx context.Context, ids []string) error {
	bw := fdb.client.BulkWriter(ctx)
	jobs := make([]*firestore.BulkWriterJob, 0, len(ids))
	for _, id := range ids {
		job, err := bw.Delete(fdb.client.Collection(commentsCollection).Doc(id))
		if err != nil {
			return err
		}
		jobs = append(jobs, job)
	}
	bw.End()
	for _, job := range jobs {
		if _, err := job.Results(); err != nil && !isNotFound(err) {
			return err
		}
	}
	return nil
}
