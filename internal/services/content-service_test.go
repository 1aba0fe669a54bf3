package services

import (
	"errors"
	"testing"
	"time"

	"github.com/GlobalPath/cms_service/internal/cache"
	"github.com/GlobalPath/cms_service/internal/domain"
	"github.com/GlobalPath/cms_service/internal/repository"
)

func newContentSvc(t *testing.T) ContentService {
	db := newTestDB(t)
	return NewContentService(repository.NewCatalogRepository(db), cache.NewQueryCache(time.Minute))
}

func TestUnknownEntityRejected(t *testing.T) {
	svc := newContentSvc(t)

	if _, err := svc.PublicList("payments", 20, 0); !errors.Is(err, ErrUnknownEntity) {
		t.Fatalf("err = %v, want ErrUnknownEntity", err)
	}
	if ValidEntity("payments") {
		t.Fatal("payments should not be a valid entity")
	}
}

func TestDraftsAreUnreachableFromPublicPaths(t *testing.T) {
	svc := newContentSvc(t)

	course := &domain.Course{Title: "MSc Data Science"}
	course.Slug = Slug(course.Title)
	if err := svc.Create(EntityCourses, course); err != nil {
		t.Fatal(err)
	}

	out, err := svc.PublicList(EntityCourses, 20, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := *out.(*[]domain.Course); len(got) != 0 {
		t.Fatalf("public list returned %d drafts", len(got))
	}
	if _, err := svc.PublicBySlug(EntityCourses, course.Slug); !errors.Is(err, ErrNotFound) {
		t.Fatalf("draft reachable by slug: %v", err)
	}

	admin, err := svc.AdminList(EntityCourses, 20, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := *admin.(*[]domain.Course); len(got) != 1 {
		t.Fatalf("admin list hides drafts: %d rows", len(got))
	}
}

func TestPublishInvalidatesCachedLists(t *testing.T) {
	svc := newContentSvc(t)

	course := &domain.Course{Title: "BSc Nursing"}
	course.Slug = Slug(course.Title)
	if err := svc.Create(EntityCourses, course); err != nil {
		t.Fatal(err)
	}

	// prime the cache with the empty public list
	out, _ := svc.PublicList(EntityCourses, 20, 0)
	if got := *out.(*[]domain.Course); len(got) != 0 {
		t.Fatalf("expected empty list, got %d", len(got))
	}

	if err := svc.SetPublished(EntityCourses, course.ID, true); err != nil {
		t.Fatal(err)
	}

	out, err := svc.PublicList(EntityCourses, 20, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := *out.(*[]domain.Course); len(got) != 1 {
		t.Fatalf("published record missing from public list after invalidation: %d rows", len(got))
	}

	byslug, err := svc.PublicBySlug(EntityCourses, course.Slug)
	if err != nil {
		t.Fatal(err)
	}
	if got := byslug.(*domain.Course); got.Title != "BSc Nursing" {
		t.Fatalf("slug lookup returned %q", got.Title)
	}
}

func TestSlugCollisionGetsSuffix(t *testing.T) {
	svc := newContentSvc(t)

	first := &domain.Blog{Title: "Visa Guide"}
	first.Slug = Slug(first.Title)
	if err := svc.Create(EntityBlogs, first); err != nil {
		t.Fatal(err)
	}

	second := &domain.Blog{Title: "Visa Guide"}
	second.Slug = Slug(second.Title)
	if err := svc.Create(EntityBlogs, second); err != nil {
		t.Fatal(err)
	}
	if second.Slug == first.Slug {
		t.Fatalf("duplicate slug not de-duplicated: %q", second.Slug)
	}
}

func TestFeatureFlagIsIndependentOfPublish(t *testing.T) {
	svc := newContentSvc(t)

	uni := &domain.University{Name: "University of Melbourne", Country: "Australia"}
	uni.Slug = Slug(uni.Name)
	if err := svc.Create(EntityUniversities, uni); err != nil {
		t.Fatal(err)
	}

	// featuring a draft is allowed; it simply stays off public paths
	if err := svc.SetFeatured(EntityUniversities, uni.ID, true); err != nil {
		t.Fatal(err)
	}

	got, err := svc.GetByID(EntityUniversities, uni.ID)
	if err != nil {
		t.Fatal(err)
	}
	stored := got.(*domain.University)
	if !stored.IsFeatured || stored.IsPublished {
		t.Fatalf("featured=%v published=%v, want true/false", stored.IsFeatured, stored.IsPublished)
	}
}

func TestDeleteMissingRecord(t *testing.T) {
	svc := newContentSvc(t)

	if err := svc.Delete(EntityScholarships, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
