package controllers

import (
	"context"
	"testing"

	"github.com/classboard/classboard-be/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTogglePostUpvote_PairCancelsOut(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	post := env.mustCreatePost(t, parentAsha, "Post")

	voted, err := env.votes.TogglePostUpvote(ctx, parentBakari, post.Id)
	require.NoError(t, err)
	assert.Equal(t, 1, voted.Upvotes)
	assert.True(t, voted.ViewerUpvoted)

	unvoted, err := env.votes.TogglePostUpvote(ctx, parentBakari, post.Id)
	require.NoError(t, err)
	assert.Equal(t, 0, unvoted.Upvotes)
	assert.False(t, unvoted.ViewerUpvoted)
	assert.False(t, unvoted.UpvotedBy.Has(parentBakari.Id))
}

func TestToggleUpvote_CountMatchesMembership(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	post := env.mustCreatePost(t, parentAsha, "Post")

	voters := []*model.Principal{parentAsha, parentBakari, teacherNia, adminZuri}
	sequence := []int{0, 1, 2, 1, 3, 0, 2, 2}

	var latest *model.Post
	for _, idx := range sequence {
		var err error
		latest, err = env.votes.TogglePostUpvote(ctx, voters[idx], post.Id)
		require.NoError(t, err)
		assert.Equal(t, len(latest.UpvotedBy), latest.Upvotes)
		assert.GreaterOrEqual(t, latest.Upvotes, 0)
	}
	// asha toggled twice, bakari twice, nia three times, zuri once
	assert.Equal(t, 2, latest.Upvotes)
	assert.True(t, latest.UpvotedBy.Has(teacherNia.Id))
	assert.True(t, latest.UpvotedBy.Has(adminZuri.Id))
}

func TestToggleCommentUpvote(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	post := env.mustCreatePost(t, parentAsha, "Post")
	comment := env.mustCreateComment(t, parentBakari, post.Id, "", "nice")

	voted, err := env.votes.ToggleCommentUpvote(ctx, parentAsha, comment.Id)
	require.NoError(t, err)
	assert.Equal(t, 1, voted.Upvotes)

	unvoted, err := env.votes.ToggleCommentUpvote(ctx, parentAsha, comment.Id)
	require.NoError(t, err)
	assert.Equal(t, 0, unvoted.Upvotes)
}

func TestToggleUpvote_Failures(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	post := env.mustCreatePost(t, parentAsha, "Post")

	_, err := env.votes.TogglePostUpvote(ctx, nil, post.Id)
	assert.ErrorIs(t, err, model.ErrAuthenticationRequired)

	_, err = env.votes.TogglePostUpvote(ctx, parentAsha, "missing")
	assert.ErrorIs(t, err, model.ErrNotFound)

	_, err = env.votes.ToggleCommentUpvote(ctx, parentAsha, "missing")
	assert.ErrorIs(t, err, model.ErrNotFound)
}
