package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	db2 "github.com/classboard/classboard-be/db"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	postsCollection    = "posts"
	commentsCollection = "comments"
	reportsCollection  = "reports"
)

// FirestoreDB implements the persistence gateway on a hosted document store.
// Per-document atomicity comes from RunTransaction (read-check-write); there
// are no cross-document transactions, the cascade logic above compensates.
type FirestoreDB struct {
	client *firestore.Client
}

func GetDatabase(ctx context.Context, projectId string, opts ...option.ClientOption) (db2.Database, error) {
	client, err := firestore.NewClient(ctx, projectId, opts...)
	if err != nil {
		return nil, err
	}
	return &FirestoreDB{client: client}, nil
}

func (fdb *FirestoreDB) Close() error {
	return fdb.client.Close()
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}
