package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stadtwache/stadtwache-backend/internal/models"
	"github.com/stadtwache/stadtwache-backend/internal/store"
	"gorm.io/datatypes"
)

// --- fakes shared by the service tests ---

type recordedUpdate struct {
	id     uuid.UUID
	fields map[string]interface{}
}

type fakeUserStore struct {
	users     []*models.User
	createErr error
	updateErr error
	listErr   error
	updates   []recordedUpdate
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	cp := *user
	f.users = append(f.users, &cp)
	return nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUserStore) Update(_ context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	for _, u := range f.users {
		if u.ID != id {
			continue
		}
		f.updates = append(f.updates, recordedUpdate{id: id, fields: fields})
		applyUserFields(u, fields)
		return nil
	}
	return store.ErrNotFound
}

func (f *fakeUserStore) List(_ context.Context, limit int) ([]models.User, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.User, 0, len(f.users))
	for _, u := range f.users {
		if len(out) >= limit {
			break
		}
		out = append(out, *u)
	}
	return out, nil
}

func applyUserFields(u *models.User, fields map[string]interface{}) {
	for key, val := range fields {
		switch key {
		case "username":
			u.Username = val.(string)
		case "phone":
			s := val.(string)
			u.Phone = &s
		case "service_number":
			s := val.(string)
			u.ServiceNumber = &s
		case "rank":
			s := val.(string)
			u.Rank = &s
		case "department":
			s := val.(string)
			u.Department = &s
		case "status":
			u.Status = val.(string)
		case "photo":
			s := val.(string)
			u.Photo = &s
		case "password_hash":
			u.PasswordHash = val.(string)
		case "hashed_password":
			u.LegacyPasswordHash = val.(string)
		case "updated_at":
			u.UpdatedAt = val.(time.Time)
		case "last_activity":
			t := val.(time.Time)
			u.LastActivity = &t
		}
	}
}

type fakeReportStore struct {
	reports   []*models.Report
	createErr error
	updateErr error
	listErr   error
	updates   []recordedUpdate
}

func (f *fakeReportStore) Create(_ context.Context, report *models.Report) error {
	if f.createErr != nil {
		return f.createErr
	}
	cp := *report
	f.reports = append(f.reports, &cp)
	return nil
}

func (f *fakeReportStore) GetByID(_ context.Context, id uuid.UUID) (*models.Report, error) {
	for _, r := range f.reports {
		if r.ID == id {
			cp := *r
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeReportStore) Update(_ context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	for _, r := range f.reports {
		if r.ID != id {
			continue
		}
		f.updates = append(f.updates, recordedUpdate{id: id, fields: fields})
		applyReportFields(r, fields)
		return nil
	}
	return store.ErrNotFound
}

func (f *fakeReportStore) ListAll(_ context.Context, limit int) ([]models.Report, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Report, 0, len(f.reports))
	for _, r := range f.reports {
		if len(out) >= limit {
			break
		}
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeReportStore) ListByAuthor(_ context.Context, authorID uuid.UUID, limit int) ([]models.Report, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Report, 0, len(f.reports))
	for _, r := range f.reports {
		if r.AuthorID != authorID {
			continue
		}
		if len(out) >= limit {
			break
		}
		out = append(out, *r)
	}
	return out, nil
}

func applyReportFields(r *models.Report, fields map[string]interface{}) {
	for key, val := range fields {
		switch key {
		case "title":
			r.Title = val.(string)
		case "content":
			r.Content = val.(string)
		case "shift_date":
			r.ShiftDate = val.(string)
		case "status":
			r.Status = val.(string)
		case "images":
			r.Images = val.(datatypes.JSON)
		case "edit_history":
			r.EditHistory = val.(datatypes.JSON)
		case "last_edited_by":
			id := val.(uuid.UUID)
			r.LastEditedBy = &id
		case "last_edited_by_name":
			s := val.(string)
			r.LastEditedByName = &s
		case "updated_at":
			r.UpdatedAt = val.(time.Time)
		}
	}
}

type fakeBroadcastStore struct {
	broadcasts []*models.EmergencyBroadcast
	createErr  error
}

func (f *fakeBroadcastStore) Create(_ context.Context, broadcast *models.EmergencyBroadcast) error {
	if f.createErr != nil {
		return f.createErr
	}
	cp := *broadcast
	f.broadcasts = append(f.broadcasts, &cp)
	return nil
}
