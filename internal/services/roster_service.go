package services

import (
	"context"
	"time"

	"github.com/stadtwache/stadtwache-backend/internal/dto"
	"github.com/stadtwache/stadtwache-backend/internal/models"
	"github.com/stadtwache/stadtwache-backend/internal/store"
)

// onlineWindow is how recent last_activity must be for a user to count
// as online. Presence is derived from the stored timestamp only; there
// is no in-memory tracking.
const onlineWindow = 2 * time.Minute

const rosterLimit = 100

type RosterService struct {
	users store.UserStore
}

func NewRosterService(users store.UserStore) *RosterService {
	return &RosterService{users: users}
}

// ListByStatus groups all users by their operational status string.
// Any string is a valid bucket. Users with no recorded activity are
// offline.
func (s *RosterService) ListByStatus(ctx context.Context) (map[string][]dto.RosterEntry, error) {
	users, err := s.users.List(ctx, rosterLimit)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	grouped := make(map[string][]dto.RosterEntry)
	for i := range users {
		user := &users[i]
		status := user.Status
		if status == "" {
			status = models.DefaultStatus
		}

		online := user.LastActivity != nil && now.Sub(*user.LastActivity) < onlineWindow
		onlineStatus := "Offline"
		if online {
			onlineStatus = "Online"
		}

		var lastActivity *string
		if user.LastActivity != nil {
			formatted := user.LastActivity.Format(time.RFC3339)
			lastActivity = &formatted
		}

		grouped[status] = append(grouped[status], dto.RosterEntry{
			ID:            user.ID,
			Username:      user.Username,
			Phone:         user.Phone,
			ServiceNumber: user.ServiceNumber,
			Rank:          user.Rank,
			Department:    user.Department,
			Status:        status,
			IsOnline:      online,
			OnlineStatus:  onlineStatus,
			LastActivity:  lastActivity,
		})
	}
	return grouped, nil
}
