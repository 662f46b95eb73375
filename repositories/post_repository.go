package repositories

import (
	"github.com/prefeitura-digital/cms-go/db"
	"github.com/prefeitura-digital/cms-go/dto"
	"github.com/prefeitura-digital/cms-go/models"
)

type PostRepo interface {
	List(q dto.PostListQuery) ([]models.Post, int64, error)
	FindByID(id uint) (models.Post, error)
	FindBySlug(slug string) (models.Post, error)
	Create(post *models.Post) error
	Save(post *models.Post) error
	ReplaceTags(post *models.Post, tags []models.Tag) error
	Delete(id uint) error
}

type DBPostRepo struct{}

func (r *DBPostRepo) List(q dto.PostListQuery) ([]models.Post, int64, error) {
	var posts []models.Post
	var total int64

	tx := db.DB.Model(&models.Post{})
	if q.Search != "" {
		tx = tx.Where("title ILIKE ? OR summary ILIKE ?", "%"+q.Search+"%", "%"+q.Search+"%")
	}
	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}
	if q.CategoryID != 0 {
		tx = tx.Where("category_id = ?", q.CategoryID)
	}
	if q.Tag != "" {
		tx = tx.Joins("JOIN post_tags ON post_tags.post_id = posts.id").
			Joins("JOIN tags ON tags.id = post_tags.tag_id").
			Where("tags.slug = ?", q.Tag)
	}
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := tx.Preload("Author").Preload("Category").Preload("Tags").
		Order("created_at desc").Offset(q.Offset()).Limit(q.PageSize).Find(&posts).Error
	return posts, total, err
}

func (r *DBPostRepo) FindByID(id uint) (models.Post, error) {
	var post models.Post
	err := db.DB.Preload("Author").Preload("Category").Preload("Tags").First(&post, id).Error
	return post, err
}

func (r *DBPostRepo) FindBySlug(slug string) (models.Post, error) {
	var post models.Post
	err := db.DB.Preload("Author").Preload("Category").Preload("Tags").
		Where("slug = ?", slug).First(&post).Error
	return post, err
}

func (r *DBPostRepo) Create(post *models.Post) error {
	return db.DB.Create(post).Error
}

func (r *DBPostRepo) Save(post *models.Post) error {
	return db.DB.Save(post).Error
}

func (r *DBPostRepo) ReplaceTags(post *models.Post, tags []models.Tag) error {
	return db.DB.Model(post).Association("Tags").Replace(tags)
}

func (r *DBPostRepo) Delete(id uint) error {
	return db.DB.Delete(&models.Post{}, id).Error
}
