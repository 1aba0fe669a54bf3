package repository

import (
	"gorm.io/gorm"
)

// CatalogRepository is the shared persistence surface for every publishable
// content entity (courses, universities, destinations, blogs, scholarships,
// service pages, careers, events). Callers pass a typed model pointer or
// slice pointer; the published gate is applied uniformly so unpublished
// records can never leak through a public read path.
type CatalogRepository interface {
	List(dest any, publishedOnly bool, limit, offset int) error
	ListFeatured(dest any, limit int) error
	FindByID(dest any, id uint) error
	FindBySlug(dest any, slug string, publishedOnly bool) error
	Create(rec any) error
	Save(rec any) error
	Delete(model any, id uint) (int64, error)
	SetPublished(model any, id uint, published bool) (int64, error)
	SetFeatured(model any, id uint, featured bool) (int64, error)
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (c *catalogRepository) List(dest any, publishedOnly bool, limit, offset int) error {
	q := c.db.Order("created_at DESC").Limit(limit).Offset(offset)
	if publishedOnly {
		q = q.Where("is_published = ?", true)
	}
	return q.Find(dest).Error
}

func (c *catalogRepository) ListFeatured(dest any, limit int) error {
	return c.db.
		Where("is_published = ? AND is_featured = ?", true, true).
		Order("created_at DESC").Limit(limit).
		Find(dest).Error
}

func (c *catalogRepository) FindByID(dest any, id uint) error {
	return c.db.First(dest, id).Error
}

func (c *catalogRepository) FindBySlug(dest any, slug string, publishedOnly bool) error {
	q := c.db.Where("slug = ?", slug)
	if publishedOnly {
		q = q.Where("is_published = ?", true)
	}
	return q.First(dest).Error
}

func (c *catalogRepository) Create(rec any) error {
	return c.db.Create(rec).Error
}

func (c *catalogRepository) Save(rec any) error {
	return c.db.Save(rec).Error
}

func (c *catalogRepository) Delete(model any, id uint) (int64, error) {
	res := c.db.Delete(model, id)
	return res.RowsAffected, res.Error
}

func (c *catalogRepository) SetPublished(model any, id uint, published bool) (int64, error) {
	res := c.db.Model(model).Where("id = ?", id).Update("is_published", published)
	return res.RowsAffected, res.Error
}

func (c *catalogRepository) SetFeatured(model any, id uint, featured bool) (int64, error) {
	res := c.db.Model(model).Where("id = ?", id).Update("is_featured", featured)
	return res.RowsAffected, res.Error
}
