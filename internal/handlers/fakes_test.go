package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stadtwache/stadtwache-backend/internal/dto"
	"github.com/stadtwache/stadtwache-backend/internal/models"
	"github.com/stadtwache/stadtwache-backend/internal/store"
	"github.com/stretchr/testify/require"
)

// failingUserStore answers lookups with no record and rejects every
// write with the configured error. It stands in for a database that is
// reachable but refuses inserts.
type failingUserStore struct {
	err error
}

func (s *failingUserStore) Create(ctx context.Context, user *models.User) error { return s.err }

func (s *failingUserStore) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return nil, store.ErrNotFound
}

func (s *failingUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, store.ErrNotFound
}

func (s *failingUserStore) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return s.err
}

func (s *failingUserStore) List(ctx context.Context, limit int) ([]models.User, error) {
	return nil, s.err
}

// failingReportStore rejects every operation with the configured error.
type failingReportStore struct {
	err error
}

func (s *failingReportStore) Create(ctx context.Context, report *models.Report) error { return s.err }

func (s *failingReportStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Report, error) {
	return nil, s.err
}

func (s *failingReportStore) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return s.err
}

func (s *failingReportStore) ListAll(ctx context.Context, limit int) ([]models.Report, error) {
	return nil, s.err
}

func (s *failingReportStore) ListByAuthor(ctx context.Context, authorID uuid.UUID, limit int) ([]models.Report, error) {
	return nil, s.err
}

// asUser seeds the request context with an already-resolved caller,
// using the same locals key CurrentUser writes.
func asUser(user *models.User) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("current_user", user)
		return c.Next()
	}
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func readDetail(t *testing.T, resp *http.Response) string {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &body))
	return body.Detail
}
