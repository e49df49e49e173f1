package controllers

import (
	"context"
	"testing"

	"github.com/classboard/classboard-be/db/memory"
	"github.com/classboard/classboard-be/model"
	"github.com/stretchr/testify/require"
)

var (
	parentAsha   = &model.Principal{Id: "parent-asha", Role: model.RoleParent, DisplayName: "Asha M."}
	parentBakari = &model.Principal{Id: "parent-bakari", Role: model.RoleParent, DisplayName: "Bakari O."}
	teacherNia   = &model.Principal{Id: "teacher-nia", Role: model.RoleTeacher, DisplayName: "Ms. Nia"}
	adminZuri    = &model.Principal{Id: "admin-zuri", Role: model.RoleAdmin, DisplayName: "Zuri K."}
)

type testEnv struct {
	posts    *PostController
	comments *CommentController
	votes    *VoteController
	reports  *ReportController
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := memory.GetDatabase()
	t.Cleanup(func() { _ = database.Close() })
	return &testEnv{
		posts:    NewPostController(database),
		comments: NewCommentController(database),
		votes:    NewVoteController(database),
		reports:  NewReportController(database),
	}
}

func (env *testEnv) mustCreatePost(t *testing.T, author *model.Principal, title string) *model.Post {
	t.Helper()
	post, err := env.posts.CreatePost(context.Background(), author, &CreatePostReq{
		Title: title,
		Body:  "body of " + title,
		Tag:   model.TagGeneral,
	})
	require.NoError(t, err)
	return post
}

func (env *testEnv) mustCreateComment(t *testing.T, author *model.Principal, postId, parentId, body string) *model.Comment {
	t.Helper()
	comment, err := env.comments.CreateComment(context.Background(), author, &CreateCommentReq{
		PostId:   postId,
		ParentId: parentId,
		Body:     body,
	})
	require.NoError(t, err)
	return comment
}
