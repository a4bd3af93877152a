package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stadtwache/stadtwache-backend/internal/dto"
	"github.com/stadtwache/stadtwache-backend/internal/models"
	"github.com/stadtwache/stadtwache-backend/internal/store"
	"gorm.io/datatypes"
)

var (
	ErrReportNotFound   = errors.New("report not found")
	ErrPermissionDenied = errors.New("permission denied")
)

// reportListLimit caps list results; there is no pagination.
const reportListLimit = 100

type ReportService struct {
	reports store.ReportStore
}

func NewReportService(reports store.ReportStore) *ReportService {
	return &ReportService{reports: reports}
}

// Create starts every report in draft. Author identity and name are
// snapshotted from the caller and never re-resolved.
func (s *ReportService) Create(ctx context.Context, author *models.User, req *dto.CreateReportRequest) (*models.Report, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		return nil, invalidRequest("title and content are required")
	}
	if strings.TrimSpace(req.ShiftDate) == "" {
		return nil, invalidRequest("shift_date is required")
	}

	now := time.Now().UTC()
	report := models.Report{
		ID:          uuid.New(),
		Title:       req.Title,
		Content:     req.Content,
		AuthorID:    author.ID,
		AuthorName:  author.Username,
		ShiftDate:   req.ShiftDate,
		Status:      models.ReportDraft,
		Images:      marshalImages(req.Images),
		EditHistory: datatypes.JSON("[]"),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.reports.Create(ctx, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// Update overwrites all editable fields; callers must resend them. The
// permission check runs before any write: only the original author or
// an admin may update. Each update appends to the edit history.
func (s *ReportService) Update(ctx context.Context, reportID uuid.UUID, caller *models.User, req *dto.UpdateReportRequest) (*models.Report, error) {
	existing, err := s.reports.GetByID(ctx, reportID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}

	if existing.AuthorID != caller.ID && !caller.IsAdmin() {
		return nil, ErrPermissionDenied
	}

	status := req.Status
	if status == "" {
		status = existing.Status
	}

	now := time.Now().UTC()
	history := appendEdit(existing.EditHistory, models.ReportEdit{
		EditorID:       caller.ID,
		EditorName:     caller.Username,
		EditedAt:       now,
		PreviousStatus: existing.Status,
	})

	fields := map[string]interface{}{
		"title":               req.Title,
		"content":             req.Content,
		"shift_date":          req.ShiftDate,
		"status":              status,
		"images":              marshalImages(req.Images),
		"last_edited_by":      caller.ID,
		"last_edited_by_name": caller.Username,
		"edit_history":        history,
		"updated_at":          now,
	}

	if err := s.reports.Update(ctx, reportID, fields); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}

	return s.reports.GetByID(ctx, reportID)
}

// List returns every report for admins and only the caller's own for
// everyone else, most recent first, capped at 100.
func (s *ReportService) List(ctx context.Context, caller *models.User) ([]models.Report, error) {
	if caller.IsAdmin() {
		return s.reports.ListAll(ctx, reportListLimit)
	}
	return s.reports.ListByAuthor(ctx, caller.ID, reportListLimit)
}

func marshalImages(images []string) datatypes.JSON {
	if images == nil {
		images = []string{}
	}
	b, err := json.Marshal(images)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(b)
}

func appendEdit(history datatypes.JSON, edit models.ReportEdit) datatypes.JSON {
	var edits []models.ReportEdit
	if len(history) > 0 {
		_ = json.Unmarshal(history, &edits)
	}
	edits = append(edits, edit)
	b, err := json.Marshal(edits)
	if err != nil {
		return history
	}
	return datatypes.JSON(b)
}
