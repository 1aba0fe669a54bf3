package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GlobalPath/cms_service/internal/api"
	"github.com/GlobalPath/cms_service/internal/api/rest/handlers"
	"github.com/GlobalPath/cms_service/internal/cache"
	"github.com/GlobalPath/cms_service/internal/domain"
	"github.com/GlobalPath/cms_service/internal/helper"
	"github.com/GlobalPath/cms_service/internal/repository"
	"github.com/GlobalPath/cms_service/internal/services"
	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := api.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	auth := helper.SetupAuth("test-secret")
	app := fiber.New()

	userSvc := services.NewUserService(repository.NewUserRepository(db), auth, nil)
	contentSvc := services.NewContentService(repository.NewCatalogRepository(db), cache.NewQueryCache(time.Minute))
	contactSvc := services.NewContactService(repository.NewContactRepository(db), nil, nil)

	handlers.NewUserHandler(userSvc, auth).SetupRoutes(app)
	handlers.NewContentHandler(contentSvc, auth).SetupRoutes(app)
	handlers.NewContactHandler(contactSvc, auth).SetupRoutes(app)
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any, token string) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func decodeData(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	var wrapper struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&wrapper); err != nil {
		t.Fatal(err)
	}
	if out != nil {
		if err := json.Unmarshal(wrapper.Data, out); err != nil {
			t.Fatal(err)
		}
	}
}

func TestRegisterLoginAndRoleGate(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/auth/register", map[string]string{
		"email":     "amina@example.com",
		"password":  "secret123",
		"full_name": "Amina Rahman",
	}, "")
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("register status = %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = doJSON(t, app, "POST", "/api/auth/login", map[string]string{
		"email":    "amina@example.com",
		"password": "secret123",
	}, "")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("login status = %d", resp.StatusCode)
	}
	var login struct {
		Token string `json:"token"`
		User  struct {
			Role string `json:"role"`
		} `json:"user"`
	}
	decodeData(t, resp, &login)
	if login.Token == "" || login.User.Role != "student" {
		t.Fatalf("login response = %+v", login)
	}

	resp = doJSON(t, app, "GET", "/api/auth/me", nil, login.Token)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("me status = %d", resp.StatusCode)
	}
	resp.Body.Close()

	// the role claim alone gates admin routes; a student gets 403
	resp = doJSON(t, app, "GET", "/api/admin/users/", nil, login.Token)
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("admin route for student = %d, want 403", resp.StatusCode)
	}
	resp.Body.Close()

	resp = doJSON(t, app, "GET", "/api/admin/users/", nil, "")
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("admin route without token = %d, want 401", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestWrongPasswordRejected(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/auth/register", map[string]string{
		"email":     "amina@example.com",
		"password":  "secret123",
		"full_name": "Amina Rahman",
	}, "")
	resp.Body.Close()

	resp = doJSON(t, app, "POST", "/api/auth/login", map[string]string{
		"email":    "amina@example.com",
		"password": "wrong",
	}, "")
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("login with wrong password = %d, want 401", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestPublicCatalogHidesDrafts(t *testing.T) {
	app, db := newTestApp(t)

	draft := &domain.Course{Title: "Draft Course"}
	draft.Slug = "draft-course"
	published := &domain.Course{Title: "Live Course"}
	published.Slug = "live-course"
	published.IsPublished = true
	if err := db.Create(draft).Error; err != nil {
		t.Fatal(err)
	}
	if err := db.Create(published).Error; err != nil {
		t.Fatal(err)
	}

	resp := doJSON(t, app, "GET", "/api/content/courses/", nil, "")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("public list status = %d", resp.StatusCode)
	}
	var courses []domain.Course
	decodeData(t, resp, &courses)
	if len(courses) != 1 || courses[0].Title != "Live Course" {
		t.Fatalf("public list = %+v", courses)
	}

	resp = doJSON(t, app, "GET", "/api/content/courses/slug/draft-course", nil, "")
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("draft by slug = %d, want 404", resp.StatusCode)
	}
	resp.Body.Close()

	resp = doJSON(t, app, "GET", "/api/content/payments/", nil, "")
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("unknown entity = %d, want 404", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestAdminCatalogRequiresStaffRole(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, "GET", "/api/admin/content/courses/", nil, "")
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("admin catalog without token = %d, want 401", resp.StatusCode)
	}
	resp.Body.Close()
}

func staffToken(t *testing.T, app *fiber.App, db *gorm.DB) string {
	t.Helper()

	resp := doJSON(t, app, "POST", "/api/auth/register", map[string]string{
		"email":     "editor@example.com",
		"password":  "secret123",
		"full_name": "Elif Demir",
	}, "")
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("register status = %d", resp.StatusCode)
	}
	resp.Body.Close()

	// promote before login so the token carries the staff role claim
	if err := db.Model(&domain.User{}).
		Where("email = ?", "editor@example.com").
		Update("role", domain.RoleEditor).Error; err != nil {
		t.Fatal(err)
	}

	resp = doJSON(t, app, "POST", "/api/auth/login", map[string]string{
		"email":    "editor@example.com",
		"password": "secret123",
	}, "")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("login status = %d", resp.StatusCode)
	}
	var login struct {
		Token string `json:"token"`
	}
	decodeData(t, resp, &login)
	return login.Token
}

func TestEventCreateRejectsMalformedTimestamp(t *testing.T) {
	app, db := newTestApp(t)
	token := staffToken(t, app, db)

	resp := doJSON(t, app, "POST", "/api/admin/content/events/", map[string]string{
		"title":     "Open Day Dhaka",
		"starts_at": "31-08-2026 10:00",
	}, token)
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("malformed starts_at status = %d, want 422", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if !bytes.Contains(body, []byte("starts_at")) {
		t.Fatalf("validation response does not name the field: %s", body)
	}

	var count int64
	db.Model(&domain.Event{}).Count(&count)
	if count != 0 {
		t.Fatal("rejected event was persisted")
	}

	resp = doJSON(t, app, "POST", "/api/admin/content/events/", map[string]string{
		"title":     "Open Day Dhaka",
		"starts_at": "2026-09-15T10:00:00Z",
	}, token)
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("valid event status = %d, want 201", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestContactFormValidation(t *testing.T) {
	app, db := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/contact", map[string]string{
		"name":    "K",
		"email":   "not-an-email",
		"message": "short",
	}, "")
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("invalid form status = %d, want 422", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if !bytes.Contains(body, []byte(`"fields"`)) {
		t.Fatalf("validation response carries no field map: %s", body)
	}

	var count int64
	db.Model(&domain.ContactMessage{}).Count(&count)
	if count != 0 {
		t.Fatal("rejected submission left a row")
	}

	resp = doJSON(t, app, "POST", "/api/contact", map[string]string{
		"name":    "Karim Ahmed",
		"email":   "karim@example.com",
		"message": "Do you have guidance on DAAD scholarships?",
	}, "")
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("valid form status = %d, want 201", resp.StatusCode)
	}
	resp.Body.Close()

	db.Model(&domain.ContactMessage{}).Count(&count)
	if count != 1 {
		t.Fatalf("rows = %d, want 1", count)
	}
}
