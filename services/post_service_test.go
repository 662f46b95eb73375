package services

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/prefeitura-digital/cms-go/dto"
	"github.com/prefeitura-digital/cms-go/models"
	"github.com/prefeitura-digital/cms-go/repositories"
	"github.com/prefeitura-digital/cms-go/repositories/mock_repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupPostServiceMocks(t *testing.T) (*PostService, *mock_repositories.MockPostRepo, *mock_repositories.MockTaxonomyRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockPost := mock_repositories.NewMockPostRepo(ctrl)
	mockTaxonomy := mock_repositories.NewMockTaxonomyRepo(ctrl)
	repos := &repositories.Repos{
		Post:     mockPost,
		Taxonomy: mockTaxonomy,
	}
	svc := NewPostService(repos)
	return svc, mockPost, mockTaxonomy
}

// --------------------- CreatePost ---------------------
func TestCreatePost_SlugifiesTitle(t *testing.T) {
	svc, mockPost, _ := setupPostServiceMocks(t)

	mockPost.EXPECT().FindBySlug("inauguracao-da-nova-creche").Return(models.Post{}, gorm.ErrRecordNotFound)
	mockPost.EXPECT().Create(gomock.Any()).Return(nil)

	post, err := svc.CreatePost(1, dto.CreatePostDTO{Title: "Inauguração da Nova Creche"})
	require.NoError(t, err)
	assert.Equal(t, "inauguracao-da-nova-creche", post.Slug)
	assert.Equal(t, string(models.ContentStatusDraft), post.Status)
	assert.Nil(t, post.PublishedAt)
}

func TestCreatePost_PublishedGetsTimestamp(t *testing.T) {
	svc, mockPost, _ := setupPostServiceMocks(t)

	mockPost.EXPECT().FindBySlug(gomock.Any()).Return(models.Post{}, gorm.ErrRecordNotFound)
	mockPost.EXPECT().Create(gomock.Any()).Return(nil)

	input := dto.CreatePostDTO{Title: "Aviso", Status: string(models.ContentStatusPublished)}
	post, err := svc.CreatePost(1, input)
	require.NoError(t, err)
	assert.NotNil(t, post.PublishedAt)
}

func TestCreatePost_WithTags(t *testing.T) {
	svc, mockPost, mockTaxonomy := setupPostServiceMocks(t)

	tags := []models.Tag{{Name: "Saúde", Slug: "saude"}}
	mockPost.EXPECT().FindBySlug(gomock.Any()).Return(models.Post{}, gorm.ErrRecordNotFound)
	mockTaxonomy.EXPECT().FindTagsByIDs([]uint{3}).Return(tags, nil)
	mockPost.EXPECT().Create(gomock.Any()).Return(nil)

	post, err := svc.CreatePost(1, dto.CreatePostDTO{Title: "Campanha", TagIDs: []uint{3}})
	require.NoError(t, err)
	assert.Equal(t, tags, post.Tags)
}

func TestCreatePost_SlugTaken(t *testing.T) {
	svc, mockPost, _ := setupPostServiceMocks(t)

	mockPost.EXPECT().FindBySlug("aviso").Return(models.Post{Slug: "aviso"}, nil)

	_, err := svc.CreatePost(1, dto.CreatePostDTO{Title: "Aviso", Slug: "aviso"})
	assert.Equal(t, ErrPostSlugTaken, err)
}

// --------------------- ListPublished ---------------------
func TestListPublished_ForcesStatusFilter(t *testing.T) {
	svc, mockPost, _ := setupPostServiceMocks(t)

	mockPost.EXPECT().List(gomock.Any()).DoAndReturn(func(q dto.PostListQuery) ([]models.Post, int64, error) {
		assert.Equal(t, string(models.ContentStatusPublished), q.Status)
		return nil, 0, nil
	})

	// a caller-supplied draft filter must not leak drafts to the public feed
	_, _, err := svc.ListPublished(dto.PostListQuery{Status: string(models.ContentStatusDraft)})
	assert.NoError(t, err)
}

// --------------------- GetPublishedBySlug ---------------------
func TestGetPublishedBySlug_HidesDrafts(t *testing.T) {
	svc, mockPost, _ := setupPostServiceMocks(t)

	draft := models.Post{Slug: "rascunho", Status: string(models.ContentStatusDraft)}
	mockPost.EXPECT().FindBySlug("rascunho").Return(draft, nil)

	_, err := svc.GetPublishedBySlug("rascunho")
	assert.Equal(t, ErrPostNotFound, err)
}

// --------------------- UpdatePost ---------------------
func TestUpdatePost_PublishSetsTimestampOnce(t *testing.T) {
	svc, mockPost, _ := setupPostServiceMocks(t)

	existing := models.Post{Slug: "aviso", Status: string(models.ContentStatusDraft)}
	existing.ID = 5
	mockPost.EXPECT().FindByID(uint(5)).Return(existing, nil)
	mockPost.EXPECT().Save(gomock.Any()).Return(nil)

	status := string(models.ContentStatusPublished)
	post, err := svc.UpdatePost(5, dto.UpdatePostDTO{Status: &status})
	require.NoError(t, err)
	assert.NotNil(t, post.PublishedAt)

	// republishing keeps the original timestamp
	first := post.PublishedAt
	mockPost.EXPECT().FindByID(uint(5)).Return(*post, nil)
	mockPost.EXPECT().Save(gomock.Any()).Return(nil)
	post, err = svc.UpdatePost(5, dto.UpdatePostDTO{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, first, post.PublishedAt)
}

func TestUpdatePost_ReplacesTags(t *testing.T) {
	svc, mockPost, mockTaxonomy := setupPostServiceMocks(t)

	existing := models.Post{Slug: "aviso"}
	existing.ID = 5
	newTags := []models.Tag{{Name: "Obras", Slug: "obras"}}

	mockPost.EXPECT().FindByID(uint(5)).Return(existing, nil)
	mockTaxonomy.EXPECT().FindTagsByIDs([]uint{8}).Return(newTags, nil)
	mockPost.EXPECT().ReplaceTags(gomock.Any(), newTags).Return(nil)
	mockPost.EXPECT().Save(gomock.Any()).Return(nil)

	post, err := svc.UpdatePost(5, dto.UpdatePostDTO{TagIDs: []uint{8}})
	require.NoError(t, err)
	assert.Equal(t, newTags, post.Tags)
}
