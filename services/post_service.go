package services

import (
	"errors"
	"time"

	"github.com/prefeitura-digital/cms-go/dto"
	"github.com/prefeitura-digital/cms-go/models"
	"github.com/prefeitura-digital/cms-go/repositories"
	"github.com/prefeitura-digital/cms-go/utils"
	"gorm.io/gorm"
)

var (
	ErrPostNotFound  = errors.New("post not found")
	ErrPostSlugTaken = errors.New("post slug already taken")
)

type PostService struct {
	repo     repositories.PostRepo
	taxonomy repositories.TaxonomyRepo
}

func NewPostService(repos *repositories.Repos) *PostService {
	return &PostService{repo: repos.Post, taxonomy: repos.Taxonomy}
}

func (s *PostService) ListPosts(q dto.PostListQuery) ([]models.Post, int64, error) {
	return s.repo.List(q)
}

// ListPublished is the public site feed: only published posts.
func (s *PostService) ListPublished(q dto.PostListQuery) ([]models.Post, int64, error) {
	q.Status = string(models.ContentStatusPublished)
	return s.repo.List(q)
}

func (s *PostService) GetPost(id uint) (models.Post, error) {
	post, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return post, ErrPostNotFound
	}
	return post, err
}

func (s *PostService) GetPublishedBySlug(slug string) (models.Post, error) {
	post, err := s.repo.FindBySlug(slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return post, ErrPostNotFound
	}
	if err != nil {
		return post, err
	}
	if post.Status != string(models.ContentStatusPublished) {
		return models.Post{}, ErrPostNotFound
	}
	return post, nil
}

func (s *PostService) CreatePost(authorID uint, input dto.CreatePostDTO) (*models.Post, error) {
	slug := input.Slug
	if slug == "" {
		slug = utils.Slugify(input.Title)
	}
	if _, err := s.repo.FindBySlug(slug); err == nil {
		return nil, ErrPostSlugTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	post := &models.Post{
		Title:      input.Title,
		Slug:       slug,
		Summary:    input.Summary,
		Body:       input.Body,
		CoverImage: input.CoverImage,
		Status:     string(models.ContentStatusDraft),
		AuthorID:   authorID,
		CategoryID: input.CategoryID,
	}
	if input.Status != "" {
		post.Status = input.Status
	}
	if post.Status == string(models.ContentStatusPublished) {
		now := time.Now()
		post.PublishedAt = &now
	}

	if len(input.TagIDs) > 0 {
		tags, err := s.taxonomy.FindTagsByIDs(input.TagIDs)
		if err != nil {
			return nil, err
		}
		post.Tags = tags
	}

	return post, s.repo.Create(post)
}

func (s *PostService) UpdatePost(id uint, input dto.UpdatePostDTO) (*models.Post, error) {
	post, err := s.GetPost(id)
	if err != nil {
		return nil, err
	}

	if input.Slug != nil && *input.Slug != post.Slug {
		if _, err := s.repo.FindBySlug(*input.Slug); err == nil {
			return nil, ErrPostSlugTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		post.Slug = *input.Slug
	}
	if input.Title != nil {
		post.Title = *input.Title
	}
	if input.Summary != nil {
		post.Summary = *input.Summary
	}
	if input.Body != nil {
		post.Body = *input.Body
	}
	if input.CoverImage != nil {
		post.CoverImage = *input.CoverImage
	}
	if input.CategoryID != nil {
		post.CategoryID = input.CategoryID
	}
	if input.Status != nil {
		if *input.Status == string(models.ContentStatusPublished) && post.PublishedAt == nil {
			now := time.Now()
			post.PublishedAt = &now
		}
		post.Status = *input.Status
	}

	if input.TagIDs != nil {
		tags, err := s.taxonomy.FindTagsByIDs(input.TagIDs)
		if err != nil {
			return nil, err
		}
		if err := s.repo.ReplaceTags(&post, tags); err != nil {
			return nil, err
		}
		post.Tags = tags
	}

	return &post, s.repo.Save(&post)
}

func (s *PostService) DeletePost(id uint) error {
	if _, err := s.GetPost(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
