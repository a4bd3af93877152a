package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stadtwache/stadtwache-backend/internal/dto"
	"github.com/stadtwache/stadtwache-backend/internal/models"
	"github.com/stadtwache/stadtwache-backend/internal/store"
)

var (
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned for unknown email, missing
	// digest, and failed verification alike, so the message never
	// reveals which check failed.
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthService struct {
	users    store.UserStore
	tokens   *TokenService
	tokenTTL time.Duration
}

func NewAuthService(users store.UserStore, tokens *TokenService, tokenTTL time.Duration) *AuthService {
	return &AuthService{users: users, tokens: tokens, tokenTTL: tokenTTL}
}

func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	if req.Email == "" || req.Username == "" || req.Password == "" {
		return nil, invalidRequest("email, username and password are required")
	}

	if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	digest, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = models.RolePolice
	}

	now := time.Now().UTC()
	user := models.User{
		ID:            uuid.New(),
		Email:         req.Email,
		Username:      req.Username,
		PasswordHash:  digest,
		Role:          role,
		BadgeNumber:   req.BadgeNumber,
		Department:    req.Department,
		Phone:         req.Phone,
		ServiceNumber: req.ServiceNumber,
		Rank:          req.Rank,
		Photo:         req.Photo,
		Status:        models.DefaultStatus,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.users.Create(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login verifies credentials and issues a session token. A legacy
// digest that still verifies is migrated into the canonical column as
// part of the same login.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	digest, ok := StoredDigest(user)
	if !ok {
		return "", nil, ErrInvalidCredentials
	}
	if !VerifyPassword(req.Password, digest) {
		return "", nil, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	fields := map[string]interface{}{"last_activity": now}
	if user.PasswordHash == "" {
		fields["password_hash"] = digest
		fields["hashed_password"] = ""
	}
	if err := s.users.Update(ctx, user.ID, fields); err != nil {
		// Activity stamping and digest migration are best effort; a
		// verified login still succeeds.
		slog.Warn("failed to update user on login", "user_id", user.ID, "error", err)
	} else {
		user.LastActivity = &now
	}

	token, err := s.tokens.Issue(user, s.tokenTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// ResolveUser maps validated claims to a stored user. Tagged tokens go
// straight to the right lookup; untagged historical tokens fall back to
// the layered chain: id-shaped subject by id, then subject as email,
// then the separate user_id claim.
func (s *AuthService) ResolveUser(ctx context.Context, claims *Claims) (*models.User, error) {
	var user *models.User

	switch claims.SubjectKind {
	case SubjectKindUserID:
		user = s.lookupByID(ctx, claims.Subject)
	case SubjectKindEmail:
		user = s.lookupByEmail(ctx, claims.Subject)
	default:
		if looksLikeID(claims.Subject) {
			user = s.lookupByID(ctx, claims.Subject)
		}
		if user == nil && claims.Subject != "" {
			user = s.lookupByEmail(ctx, claims.Subject)
		}
	}

	if user == nil && claims.UserID != "" {
		user = s.lookupByID(ctx, claims.UserID)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile applies only the fields present in req; nil means leave
// unchanged. The update timestamp is always refreshed.
func (s *AuthService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*models.User, error) {
	fields := map[string]interface{}{"updated_at": time.Now().UTC()}
	if req.Username != nil {
		fields["username"] = *req.Username
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.ServiceNumber != nil {
		fields["service_number"] = *req.ServiceNumber
	}
	if req.Rank != nil {
		fields["rank"] = *req.Rank
	}
	if req.Department != nil {
		fields["department"] = *req.Department
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.Photo != nil {
		fields["photo"] = *req.Photo
	}

	if err := s.users.Update(ctx, userID, fields); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) lookupByID(ctx context.Context, raw string) *models.User {
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil
	}
	return user
}

func (s *AuthService) lookupByEmail(ctx context.Context, email string) *models.User {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil
	}
	return user
}

// looksLikeID is the legacy UUID heuristic, kept only for tokens issued
// before subjects were tagged.
func looksLikeID(s string) bool {
	return len(s) == 36 && strings.Contains(s, "-")
}
