package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stadtwache/stadtwache-backend/internal/dto"
	"github.com/stadtwache/stadtwache-backend/internal/models"
)

func reportAuthor() *models.User {
	return &models.User{ID: uuid.New(), Username: "anna", Role: models.RolePolice}
}

func TestReportCreate_StartsAsDraft(t *testing.T) {
	reports := &fakeReportStore{}
	svc := NewReportService(reports)
	author := reportAuthor()

	report, err := svc.Create(context.Background(), author, &dto.CreateReportRequest{
		Title:     "Nachtschicht",
		Content:   "Keine Vorkommnisse.",
		ShiftDate: "2026-08-29",
	})
	require.NoError(t, err)

	assert.Equal(t, models.ReportDraft, report.Status)
	assert.Equal(t, author.ID, report.AuthorID)
	assert.Equal(t, "anna", report.AuthorName)
	assert.JSONEq(t, "[]", string(report.Images))
	assert.JSONEq(t, "[]", string(report.EditHistory))
	require.Len(t, reports.reports, 1)
}

func TestReportCreate_RequiresFields(t *testing.T) {
	svc := NewReportService(&fakeReportStore{})

	var verr *ValidationError

	_, err := svc.Create(context.Background(), reportAuthor(), &dto.CreateReportRequest{
		Title: "  ", Content: "x", ShiftDate: "2026-08-29",
	})
	assert.ErrorAs(t, err, &verr)

	_, err = svc.Create(context.Background(), reportAuthor(), &dto.CreateReportRequest{
		Title: "x", Content: "x",
	})
	assert.ErrorAs(t, err, &verr)
}

func TestReportUpdate_DeniesNonAuthorNonAdmin(t *testing.T) {
	reports := &fakeReportStore{}
	svc := NewReportService(reports)
	author := reportAuthor()

	report, err := svc.Create(context.Background(), author, &dto.CreateReportRequest{
		Title: "Nachtschicht", Content: "x", ShiftDate: "2026-08-29",
	})
	require.NoError(t, err)

	stranger := &models.User{ID: uuid.New(), Username: "fremd", Role: models.RolePolice}
	_, err = svc.Update(context.Background(), report.ID, stranger, &dto.UpdateReportRequest{
		Title: "Gekapert", Content: "x", ShiftDate: "2026-08-29",
	})
	assert.ErrorIs(t, err, ErrPermissionDenied)

	// Denied before any store mutation.
	assert.Empty(t, reports.updates)
}

func TestReportUpdate_FullOverwriteByAuthor(t *testing.T) {
	reports := &fakeReportStore{}
	svc := NewReportService(reports)
	author := reportAuthor()

	report, err := svc.Create(context.Background(), author, &dto.CreateReportRequest{
		Title: "Nachtschicht", Content: "Entwurf", ShiftDate: "2026-08-29",
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), report.ID, author, &dto.UpdateReportRequest{
		Title:     "Nachtschicht (final)",
		Content:   "Keine Vorkommnisse.",
		ShiftDate: "2026-08-29",
		Status:    models.ReportSubmitted,
	})
	require.NoError(t, err)

	assert.Equal(t, "Nachtschicht (final)", updated.Title)
	assert.Equal(t, "Keine Vorkommnisse.", updated.Content)
	assert.Equal(t, models.ReportSubmitted, updated.Status)
	require.NotNil(t, updated.LastEditedBy)
	assert.Equal(t, author.ID, *updated.LastEditedBy)

	var edits []models.ReportEdit
	require.NoError(t, json.Unmarshal(updated.EditHistory, &edits))
	require.Len(t, edits, 1)
	assert.Equal(t, author.ID, edits[0].EditorID)
	assert.Equal(t, models.ReportDraft, edits[0].PreviousStatus)
}

func TestReportUpdate_AdminMayEditOthers(t *testing.T) {
	reports := &fakeReportStore{}
	svc := NewReportService(reports)
	author := reportAuthor()

	report, err := svc.Create(context.Background(), author, &dto.CreateReportRequest{
		Title: "Nachtschicht", Content: "x", ShiftDate: "2026-08-29",
	})
	require.NoError(t, err)

	admin := &models.User{ID: uuid.New(), Username: "chef", Role: models.RoleAdmin}
	updated, err := svc.Update(context.Background(), report.ID, admin, &dto.UpdateReportRequest{
		Title: "Nachtschicht", Content: "x", ShiftDate: "2026-08-29", Status: models.ReportReviewed,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ReportReviewed, updated.Status)
	// The author snapshot is untouched by later editors.
	assert.Equal(t, author.ID, updated.AuthorID)
	assert.Equal(t, "anna", updated.AuthorName)
}

func TestReportUpdate_KeepsStatusWhenOmitted(t *testing.T) {
	reports := &fakeReportStore{}
	svc := NewReportService(reports)
	author := reportAuthor()

	report, err := svc.Create(context.Background(), author, &dto.CreateReportRequest{
		Title: "Nachtschicht", Content: "x", ShiftDate: "2026-08-29",
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), report.ID, author, &dto.UpdateReportRequest{
		Title: "Nachtschicht", Content: "y", ShiftDate: "2026-08-29",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ReportDraft, updated.Status)
}

func TestReportUpdate_NotFound(t *testing.T) {
	svc := NewReportService(&fakeReportStore{})

	_, err := svc.Update(context.Background(), uuid.New(), reportAuthor(), &dto.UpdateReportRequest{
		Title: "x", Content: "x", ShiftDate: "2026-08-29",
	})
	assert.ErrorIs(t, err, ErrReportNotFound)
}

func TestReportList_FiltersByCaller(t *testing.T) {
	reports := &fakeReportStore{}
	svc := NewReportService(reports)
	ctx := context.Background()

	anna := reportAuthor()
	bert := &models.User{ID: uuid.New(), Username: "bert", Role: models.RolePolice}

	_, err := svc.Create(ctx, anna, &dto.CreateReportRequest{Title: "a", Content: "x", ShiftDate: "2026-08-28"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, bert, &dto.CreateReportRequest{Title: "b", Content: "x", ShiftDate: "2026-08-29"})
	require.NoError(t, err)

	own, err := svc.List(ctx, anna)
	require.NoError(t, err)
	require.Len(t, own, 1)
	for _, r := range own {
		assert.Equal(t, anna.ID, r.AuthorID)
	}

	admin := &models.User{ID: uuid.New(), Username: "chef", Role: models.RoleAdmin}
	all, err := svc.List(ctx, admin)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
