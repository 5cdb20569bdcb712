package service

import (
	"context"
	"testing"

	"Lee_Blog/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePostRequiresText(t *testing.T) {
	db := newTestDB(t)
	svc := NewPostService(db)
	author := createTestUser(t, db, "author")

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := svc.Create(author.ID, text, nil, "")
		assert.ErrorIs(t, err, ErrTextRequired)
	}

	var n int64
	require.NoError(t, db.Model(&model.Post{}).Count(&n).Error)
	assert.EqualValues(t, 0, n)
}

func TestCreatePostWithGroup(t *testing.T) {
	db := newTestDB(t)
	svc := NewPostService(db)
	author := createTestUser(t, db, "author")
	group := createTestGroup(t, db, "test_group")

	post, err := svc.Create(author.ID, "Тестовый пост", &group.ID, "")
	require.NoError(t, err)
	require.NotNil(t, post.GroupID)
	assert.Equal(t, group.ID, *post.GroupID)
	assert.Equal(t, author.ID, post.AuthorID)
	assert.False(t, post.CreatedAt.IsZero())
}

func TestCreatePostUnknownGroup(t *testing.T) {
	db := newTestDB(t)
	svc := NewPostService(db)
	author := createTestUser(t, db, "author")

	missing := uint64(999)
	_, err := svc.Create(author.ID, "текст", &missing, "")
	assert.Error(t, err)
}

func TestEditByNonAuthorLeavesPostUntouched(t *testing.T) {
	db := newTestDB(t)
	svc := NewPostService(db)
	author := createTestUser(t, db, "author")
	other := createTestUser(t, db, "intruder")

	post, err := svc.Create(author.ID, "original text", nil, "")
	require.NoError(t, err)

	_, err = svc.Edit(other.ID, post.ID, "hacked", nil, "")
	assert.ErrorIs(t, err, ErrNotAuthor)

	stored, err := svc.FindByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "original text", stored.Text)
}

func TestEditByAuthor(t *testing.T) {
	db := newTestDB(t)
	svc := NewPostService(db)
	author := createTestUser(t, db, "author")
	group := createTestGroup(t, db, "test_group")

	post, err := svc.Create(author.ID, "original text", nil, "")
	require.NoError(t, err)

	updated, err := svc.Edit(author.ID, post.ID, "edited text", &group.ID, "")
	require.NoError(t, err)
	assert.Equal(t, "edited text", updated.Text)
	require.NotNil(t, updated.GroupID)
	assert.Equal(t, group.ID, *updated.GroupID)
	// 作者和创建时间不变
	assert.Equal(t, post.AuthorID, updated.AuthorID)
	assert.Equal(t, post.CreatedAt.Unix(), updated.CreatedAt.Unix())
}

func TestFeedForFollowedAuthorsOnly(t *testing.T) {
	db := newTestDB(t)
	postSvc := NewPostService(db)
	followSvc := NewFollowService(db)
	ctx := context.Background()

	a := createTestUser(t, db, "reader_a")
	b := createTestUser(t, db, "writer_b")
	c := createTestUser(t, db, "reader_c")

	// A 先关注 B，那时 B 还没发过帖子
	_, err := followSvc.Follow(ctx, a.ID, b.ID)
	require.NoError(t, err)

	feed, err := postSvc.FeedFor(ctx, a.ID, "1")
	require.NoError(t, err)
	assert.Empty(t, feed.Items)

	post, err := postSvc.Create(b.ID, "пост для ленты", nil, "")
	require.NoError(t, err)

	feed, err = postSvc.FeedFor(ctx, a.ID, "1")
	require.NoError(t, err)
	require.Len(t, feed.Items, 1)
	assert.Equal(t, post.ID, feed.Items[0].ID)

	// 没关注的人看不到
	feed, err = postSvc.FeedFor(ctx, c.ID, "1")
	require.NoError(t, err)
	assert.Empty(t, feed.Items)
}

func TestDetailCountsAndComments(t *testing.T) {
	db := newTestDB(t)
	postSvc := NewPostService(db)
	commentSvc := NewCommentService(db)
	author := createTestUser(t, db, "author")
	reader := createTestUser(t, db, "reader")

	post, err := postSvc.Create(author.ID, "первый", nil, "")
	require.NoError(t, err)
	_, err = postSvc.Create(author.ID, "второй", nil, "")
	require.NoError(t, err)

	_, err = commentSvc.Add(reader.ID, post.ID, "отличный пост")
	require.NoError(t, err)

	d, err := postSvc.Detail(post.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, d.PostsCount)
	require.Len(t, d.Comments, 1)
	assert.Equal(t, "отличный пост", d.Comments[0].Text)
	assert.Equal(t, author.ID, d.Author.ID)
}

func TestDeletePostCascadesComments(t *testing.T) {
	db := newTestDB(t)
	postSvc := NewPostService(db)
	commentSvc := NewCommentService(db)
	author := createTestUser(t, db, "author")
	reader := createTestUser(t, db, "reader")

	post, err := postSvc.Create(author.ID, "текст", nil, "")
	require.NoError(t, err)
	_, err = commentSvc.Add(reader.ID, post.ID, "коммент")
	require.NoError(t, err)

	// 非作者且非管理员删不掉
	err = postSvc.Delete(reader.ID, 0, post.ID)
	assert.ErrorIs(t, err, ErrNoPermission)

	require.NoError(t, postSvc.Delete(author.ID, 0, post.ID))

	var posts, comments int64
	require.NoError(t, db.Model(&model.Post{}).Count(&posts).Error)
	require.NoError(t, db.Model(&model.Comment{}).Count(&comments).Error)
	assert.EqualValues(t, 0, posts)
	assert.EqualValues(t, 0, comments)

	// 再删一次是幂等成功
	require.NoError(t, postSvc.Delete(author.ID, 0, post.ID))
}

func TestCommentRequiresText(t *testing.T) {
	db := newTestDB(t)
	postSvc := NewPostService(db)
	commentSvc := NewCommentService(db)
	author := createTestUser(t, db, "author")

	post, err := postSvc.Create(author.ID, "текст", nil, "")
	require.NoError(t, err)

	_, err = commentSvc.Add(author.ID, post.ID, "   ")
	assert.ErrorIs(t, err, ErrTextRequired)

	var n int64
	require.NoError(t, db.Model(&model.Comment{}).Count(&n).Error)
	assert.EqualValues(t, 0, n)
}

func TestGroupDeleteKeepsPosts(t *testing.T) {
	db := newTestDB(t)
	postSvc := NewPostService(db)
	groupSvc := NewGroupService(db)
	author := createTestUser(t, db, "author")
	group := createTestGroup(t, db, "doomed_group")

	post, err := postSvc.Create(author.ID, "текст", &group.ID, "")
	require.NoError(t, err)

	require.NoError(t, groupSvc.Delete(group.ID))

	// 帖子还在，分组引用被置空
	stored, err := postSvc.FindByID(post.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.GroupID)
}

func TestGroupCreateValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewGroupService(db)

	_, err := svc.Create("", "slug", "")
	assert.ErrorIs(t, err, ErrTitleRequired)

	_, err = svc.Create("Title", "Bad Slug!", "")
	assert.ErrorIs(t, err, ErrInvalidSlug)

	group, err := svc.Create("Тестовая группа", "test_group", "desc")
	require.NoError(t, err)
	assert.Equal(t, "test_group", group.Slug)

	// slug 唯一
	_, err = svc.Create("Другая", "test_group", "")
	assert.Error(t, err)
}
