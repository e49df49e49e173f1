package controllers

import (
	"context"
	"testing"

	"github.com/classboard/classboard-be/app"
	"github.com/classboard/classboard-be/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePost(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	post, err := env.posts.CreatePost(ctx, parentAsha, &CreatePostReq{
		Title: "Field trip?",
		Body:  "Is the permission slip due this week?",
		Tag:   model.TagQuestion,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, post.Id)
	assert.Equal(t, "Field trip?", post.Title)
	assert.Equal(t, model.TagQuestion, post.Tag)
	assert.Equal(t, parentAsha.Id, post.AuthorId)
	assert.Equal(t, model.RoleParent, post.AuthorRole)
	assert.Equal(t, "Asha M.", post.AuthorName)
	assert.Equal(t, 0, post.Upvotes)
	assert.False(t, post.IsPinned)
}

func TestCreatePost_Validation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	cases := []struct {
		name string
		req  *CreatePostReq
	}{
		{"empty title", &CreatePostReq{Title: "  ", Body: "body", Tag: model.TagGeneral}},
		{"empty body", &CreatePostReq{Title: "title", Body: "", Tag: model.TagGeneral}},
		{"unknown tag", &CreatePostReq{Title: "title", Body: "body", Tag: "memes"}},
		{"markup only body", &CreatePostReq{Title: "title", Body: "<script>alert(1)</script>", Tag: model.TagGeneral}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.posts.CreatePost(ctx, parentAsha, tc.req)
			var validationErr *model.ValidationError
			require.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestCreatePost_RequiresPrincipal(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.posts.CreatePost(context.Background(), nil, &CreatePostReq{
		Title: "title", Body: "body", Tag: model.TagGeneral,
	})
	assert.ErrorIs(t, err, model.ErrAuthenticationRequired)
}

func TestEditPost(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	post := env.mustCreatePost(t, parentAsha, "Original")

	title := "Updated"
	tag := model.TagEvent
	edited, err := env.posts.EditPost(ctx, parentAsha, post.Id, &EditPostReq{Title: &title, Tag: &tag})
	require.NoError(t, err)

	assert.Equal(t, "Updated", edited.Title)
	assert.Equal(t, model.TagEvent, edited.Tag)
	assert.Equal(t, post.Body, edited.Body)
	assert.Equal(t, post.AuthorId, edited.AuthorId)
	assert.True(t, edited.UpdatedAt.After(post.UpdatedAt) || edited.UpdatedAt.Equal(post.UpdatedAt))
}

func TestEditPost_Permissions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	post := env.mustCreatePost(t, parentAsha, "Asha's post")
	title := "hijacked"

	_, err := env.posts.EditPost(ctx, parentBakari, post.Id, &EditPostReq{Title: &title})
	assert.ErrorIs(t, err, model.ErrPermissionDenied)

	// teachers moderate but do not edit others' posts
	_, err = env.posts.EditPost(ctx, teacherNia, post.Id, &EditPostReq{Title: &title})
	assert.ErrorIs(t, err, model.ErrPermissionDenied)

	_, err = env.posts.EditPost(ctx, adminZuri, post.Id, &EditPostReq{Title: &title})
	assert.NoError(t, err)
}

func TestEditPost_NotFound(t *testing.T) {
	env := newTestEnv(t)
	title := "whatever"

	_, err := env.posts.EditPost(context.Background(), parentAsha, "missing", &EditPostReq{Title: &title})
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestEditPost_RejectsEmptyFields(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	post := env.mustCreatePost(t, parentAsha, "Original")
	empty := "   "

	_, err := env.posts.EditPost(ctx, parentAsha, post.Id, &EditPostReq{Body: &empty})
	var validationErr *model.ValidationError
	require.ErrorAs(t, err, &validationErr)

	unchanged, err := env.posts.GetPostById(ctx, parentAsha, post.Id)
	require.NoError(t, err)
	assert.Equal(t, post.Body, unchanged.Body)
}

func TestEditPost_FailedEditIsAllOrNothing(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	post := env.mustCreatePost(t, parentAsha, "Original")
	title := "Partially applied"
	empty := "   "

	// the title is valid but the body is not; neither field may land
	_, err := env.posts.EditPost(ctx, parentAsha, post.Id, &EditPostReq{Title: &title, Body: &empty})
	var validationErr *model.ValidationError
	require.ErrorAs(t, err, &validationErr)

	unchanged, err := env.posts.GetPostById(ctx, parentAsha, post.Id)
	require.NoError(t, err)
	assert.Equal(t, "Original", unchanged.Title)
	assert.Equal(t, post.Body, unchanged.Body)
}

func TestDeletePost_CascadesToComments(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	post := env.mustCreatePost(t, parentAsha, "Doomed")
	c1 := env.mustCreateComment(t, parentBakari, post.Id, "", "top-level")
	env.mustCreateComment(t, parentAsha, post.Id, c1.Id, "reply")

	require.NoError(t, env.posts.DeletePost(ctx, parentAsha, post.Id))

	_, err := env.posts.GetPostById(ctx, parentAsha, post.Id)
	assert.ErrorIs(t, err, model.ErrNotFound)
	_, err = env.comments.GetThread(ctx, parentAsha, post.Id)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestDeletePost_Permissions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	post := env.mustCreatePost(t, parentAsha, "Asha's post")

	err := env.posts.DeletePost(ctx, parentBakari, post.Id)
	assert.ErrorIs(t, err, model.ErrPermissionDenied)

	// teacher may delete any post
	assert.NoError(t, env.posts.DeletePost(ctx, teacherNia, post.Id))
}

func TestTogglePin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	post := env.mustCreatePost(t, parentAsha, "Announcement")

	pinned, err := env.posts.TogglePin(ctx, teacherNia, post.Id)
	require.NoError(t, err)
	assert.True(t, pinned.IsPinned)

	unpinned, err := env.posts.TogglePin(ctx, adminZuri, post.Id)
	require.NoError(t, err)
	assert.False(t, unpinned.IsPinned)
}

func TestTogglePin_ParentDenied(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	post := env.mustCreatePost(t, parentAsha, "Announcement")

	_, err := env.posts.TogglePin(ctx, teacherNia, post.Id)
	require.NoError(t, err)

	_, err = env.posts.TogglePin(ctx, parentAsha, post.Id)
	assert.ErrorIs(t, err, model.ErrPermissionDenied)

	// the pin state is untouched by the denied attempt
	current, err := env.posts.GetPostById(ctx, parentAsha, post.Id)
	require.NoError(t, err)
	assert.True(t, current.IsPinned)
}

func TestListPosts_SingleNewPost(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	post := env.mustCreatePost(t, parentAsha, "Field trip?")

	posts, err := env.posts.ListPosts(ctx, parentAsha, &ListPostsQuery{Sort: app.SortNew})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, post.Id, posts[0].Id)
}

func TestListPosts_PinnedFirst(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.mustCreatePost(t, parentAsha, "first")
	pinned := env.mustCreatePost(t, parentAsha, "second")
	env.mustCreatePost(t, parentAsha, "third")

	_, err := env.posts.TogglePin(ctx, teacherNia, pinned.Id)
	require.NoError(t, err)

	for _, key := range []app.SortKey{app.SortHot, app.SortNew, app.SortTop} {
		posts, err := env.posts.ListPosts(ctx, parentAsha, &ListPostsQuery{Sort: key})
		require.NoError(t, err)
		require.Len(t, posts, 3)
		assert.Equal(t, pinned.Id, posts[0].Id, "sort key %v", key)
	}
}

func TestListPosts_TopOrdersByVotes(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	quiet := env.mustCreatePost(t, parentAsha, "quiet")
	popular := env.mustCreatePost(t, parentAsha, "popular")

	_, err := env.votes.TogglePostUpvote(ctx, parentBakari, popular.Id)
	require.NoError(t, err)
	_, err = env.votes.TogglePostUpvote(ctx, teacherNia, popular.Id)
	require.NoError(t, err)

	posts, err := env.posts.ListPosts(ctx, parentAsha, &ListPostsQuery{Sort: app.SortTop})
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, popular.Id, posts[0].Id)
	assert.Equal(t, quiet.Id, posts[1].Id)
}

func TestListPosts_ClassScope(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	_, err := env.posts.CreatePost(ctx, parentAsha, &CreatePostReq{
		Title: "class only", Body: "body", Tag: model.TagGeneral, ClassId: "class-5b",
	})
	require.NoError(t, err)
	env.mustCreatePost(t, parentAsha, "community wide")

	scoped, err := env.posts.ListPosts(ctx, parentAsha, &ListPostsQuery{Sort: app.SortNew, ClassId: "class-5b"})
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	assert.Equal(t, "class only", scoped[0].Title)

	all, err := env.posts.ListPosts(ctx, parentAsha, &ListPostsQuery{Sort: app.SortNew})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestListPosts_InvalidSortKey(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.posts.ListPosts(context.Background(), parentAsha, &ListPostsQuery{Sort: "spiciest"})
	var validationErr *model.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestListPosts_ViewerVoteState(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	post := env.mustCreatePost(t, parentAsha, "voted")

	_, err := env.votes.TogglePostUpvote(ctx, parentBakari, post.Id)
	require.NoError(t, err)

	posts, err := env.posts.ListPosts(ctx, parentBakari, &ListPostsQuery{Sort: app.SortNew})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.True(t, posts[0].ViewerUpvoted)

	posts, err = env.posts.ListPosts(ctx, parentAsha, &ListPostsQuery{Sort: app.SortNew})
	require.NoError(t, err)
	assert.False(t, posts[0].ViewerUpvoted)
}
