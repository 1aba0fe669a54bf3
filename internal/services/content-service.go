package services

import (
	"errors"
	"strconv"

	"github.com/GlobalPath/cms_service/internal/cache"
	"github.com/GlobalPath/cms_service/internal/domain"
	"github.com/GlobalPath/cms_service/internal/helper"
	"github.com/GlobalPath/cms_service/internal/helper/utils"
	"github.com/GlobalPath/cms_service/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Catalog entity names, used as route segments and cache key prefixes.
const (
	EntityCourses      = "courses"
	EntityUniversities = "universities"
	EntityDestinations = "destinations"
	EntityBlogs        = "blogs"
	EntityScholarships = "scholarships"
	EntityServices     = "services"
	EntityCareers      = "careers"
	EntityEvents       = "events"
)

var ErrUnknownEntity = errors.New("unknown catalog entity")
var ErrNotFound = errors.New("record not found")

type entityDef struct {
	newRecord func() any
	newSlice  func() any
}

var catalogEntities = map[string]entityDef{
	EntityCourses:      {func() any { return &domain.Course{} }, func() any { return &[]domain.Course{} }},
	EntityUniversities: {func() any { return &domain.University{} }, func() any { return &[]domain.University{} }},
	EntityDestinations: {func() any { return &domain.Destination{} }, func() any { return &[]domain.Destination{} }},
	EntityBlogs:        {func() any { return &domain.Blog{} }, func() any { return &[]domain.Blog{} }},
	EntityScholarships: {func() any { return &domain.Scholarship{} }, func() any { return &[]domain.Scholarship{} }},
	EntityServices:     {func() any { return &domain.ServicePage{} }, func() any { return &[]domain.ServicePage{} }},
	EntityCareers:      {func() any { return &domain.Career{} }, func() any { return &[]domain.Career{} }},
	EntityEvents:       {func() any { return &domain.Event{} }, func() any { return &[]domain.Event{} }},
}

func ValidEntity(entity string) bool {
	_, ok := catalogEntities[entity]
	return ok
}

// ContentService is the shared read/write surface of the publishable
// catalog. Public reads go through the query cache; every successful
// mutation invalidates the entity's keys so admin and public lists refetch.
type ContentService interface {
	PublicList(entity string, limit, offset int) (any, error)
	FeaturedList(entity string, limit int) (any, error)
	PublicBySlug(entity, slug string) (any, error)
	AdminList(entity string, limit, offset int) (any, error)
	GetByID(entity string, id uint) (any, error)
	Create(entity string, rec any) error
	Save(entity string, rec any) error
	Delete(entity string, id uint) error
	SetPublished(entity string, id uint, published bool) error
	SetFeatured(entity string, id uint, featured bool) error
}

type contentService struct {
	repo  repository.CatalogRepository
	cache *cache.QueryCache
}

func NewContentService(repo repository.CatalogRepository, qc *cache.QueryCache) ContentService {
	return &contentService{repo: repo, cache: qc}
}

func (c *contentService) def(entity string) (entityDef, error) {
	d, ok := catalogEntities[entity]
	if !ok {
		return entityDef{}, ErrUnknownEntity
	}
	return d, nil
}

func (c *contentService) PublicList(entity string, limit, offset int) (any, error) {
	d, err := c.def(entity)
	if err != nil {
		return nil, err
	}

	key := cache.Key(entity, "public", strconv.Itoa(limit), strconv.Itoa(offset))
	return c.cache.Query(key, func() (any, error) {
		dest := d.newSlice()
		if err := c.repo.List(dest, true, limit, offset); err != nil {
			return nil, err
		}
		return dest, nil
	})
}

func (c *contentService) FeaturedList(entity string, limit int) (any, error) {
	d, err := c.def(entity)
	if err != nil {
		return nil, err
	}

	key := cache.Key(entity, "featured", strconv.Itoa(limit))
	return c.cache.Query(key, func() (any, error) {
		dest := d.newSlice()
		if err := c.repo.ListFeatured(dest, limit); err != nil {
			return nil, err
		}
		return dest, nil
	})
}

// PublicBySlug never returns an unpublished record: the published gate is in
// the query itself, not in post-filtering.
func (c *contentService) PublicBySlug(entity, slug string) (any, error) {
	d, err := c.def(entity)
	if err != nil {
		return nil, err
	}

	key := cache.Key(entity, "slug", slug)
	return c.cache.Query(key, func() (any, error) {
		dest := d.newRecord()
		if err := c.repo.FindBySlug(dest, slug, true); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		return dest, nil
	})
}

func (c *contentService) AdminList(entity string, limit, offset int) (any, error) {
	d, err := c.def(entity)
	if err != nil {
		return nil, err
	}

	key := cache.Key(entity, "admin", strconv.Itoa(limit), strconv.Itoa(offset))
	return c.cache.Query(key, func() (any, error) {
		dest := d.newSlice()
		if err := c.repo.List(dest, false, limit, offset); err != nil {
			return nil, err
		}
		return dest, nil
	})
}

func (c *contentService) GetByID(entity string, id uint) (any, error) {
	d, err := c.def(entity)
	if err != nil {
		return nil, err
	}

	dest := d.newRecord()
	if err := c.repo.FindByID(dest, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return dest, nil
}

// Create inserts a new record, de-duplicating the slug with a short random
// suffix on collision.
func (c *contentService) Create(entity string, rec any) error {
	if _, err := c.def(entity); err != nil {
		return err
	}

	sl, ok := rec.(domain.Sluggable)
	if !ok || sl.GetSlug() == "" {
		return errors.New("record has no slug")
	}

	err := c.repo.Create(rec)
	if err != nil && helper.IsDuplicateKey(err) {
		sl.SetSlug(sl.GetSlug() + "-" + uuid.NewString()[:8])
		err = c.repo.Create(rec)
	}
	if err != nil {
		return err
	}

	c.cache.Invalidate(entity)
	return nil
}

func (c *contentService) Save(entity string, rec any) error {
	if _, err := c.def(entity); err != nil {
		return err
	}
	if err := c.repo.Save(rec); err != nil {
		return err
	}
	c.cache.Invalidate(entity)
	return nil
}

func (c *contentService) Delete(entity string, id uint) error {
	d, err := c.def(entity)
	if err != nil {
		return err
	}

	n, err := c.repo.Delete(d.newRecord(), id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	c.cache.Invalidate(entity)
	return nil
}

func (c *contentService) SetPublished(entity string, id uint, published bool) error {
	d, err := c.def(entity)
	if err != nil {
		return err
	}

	n, err := c.repo.SetPublished(d.newRecord(), id, published)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	c.cache.Invalidate(entity)
	return nil
}

func (c *contentService) SetFeatured(entity string, id uint, featured bool) error {
	d, err := c.def(entity)
	if err != nil {
		return err
	}

	n, err := c.repo.SetFeatured(d.newRecord(), id, featured)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	c.cache.Invalidate(entity)
	return nil
}

// NewRecord returns a zero value of the entity's record type, for binding
// request bodies in the admin handlers.
func NewRecord(entity string) (any, bool) {
	d, ok := catalogEntities[entity]
	if !ok {
		return nil, false
	}
	return d.newRecord(), true
}

// Slug builds the public route slug for a new record's display title.
func Slug(title string) string {
	return utils.Slugify(title)
}
