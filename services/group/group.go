package group

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	groupRepo "smartcal/database/repository/group"
	"smartcal/models"

	"github.com/google/uuid"
)

// GroupService manages shared-calendar groups and their membership.
type GroupService interface {
	Create(ctx context.Context, ownerID, name string) (*models.Group, error)
	Get(ctx context.Context, groupID string) (*models.Group, error)
	ListForUser(ctx context.Context, userID string) ([]models.Group, error)
	Join(ctx context.Context, userID, inviteCode string) (*models.Group, error)
	Leave(ctx context.Context, userID, groupID string) error
	Delete(ctx context.Context, userID, groupID string) error
}

// DefaultGroupService is the production implementation.
type DefaultGroupService struct {
	repo groupRepo.GroupRepository
}

func NewDefaultGroupService(repo groupRepo.GroupRepository) *DefaultGroupService {
	return &DefaultGroupService{repo: repo}
}

// Create makes a new group with the owner as its first member and a fresh
// invite code.
func (s *DefaultGroupService) Create(ctx context.Context, ownerID, name string) (*models.Group, error) {
	if name == "" {
		return nil, fmt.Errorf("group name is required")
	}

	code, err := newInviteCode()
	if err != nil {
		return nil, fmt.Errorf("generating invite code: %w", err)
	}

	group := &models.Group{
		ID:         uuid.New().String(),
		Name:       name,
		OwnerID:    ownerID,
		InviteCode: code,
		MemberIDs:  []string{ownerID},
		CreatedAt:  time.Now(),
	}
	if err := s.repo.Create(ctx, group); err != nil {
		return nil, fmt.Errorf("creating group: %w", err)
	}
	return group, nil
}

func (s *DefaultGroupService) Get(ctx context.Context, groupID string) (*models.Group, error) {
	return s.repo.GetByID(ctx, groupID)
}

func (s *DefaultGroupService) ListForUser(ctx context.Context, userID string) ([]models.Group, error) {
	return s.repo.GetByMember(ctx, userID)
}

// Join adds the user to the group behind the invite code. Joining a group
// twice is a no-op.
func (s *DefaultGroupService) Join(ctx context.Context, userID, inviteCode string) (*models.Group, error) {
	group, err := s.repo.GetByInviteCode(ctx, inviteCode)
	if err != nil {
		return nil, fmt.Errorf("invalid invite code")
	}
	for _, id := range group.MemberIDs {
		if id == userID {
			return group, nil
		}
	}
	if err := s.repo.AddMember(ctx, group.ID, userID); err != nil {
		return nil, fmt.Errorf("joining group: %w", err)
	}
	group.MemberIDs = append(group.MemberIDs, userID)
	return group, nil
}

// Leave removes the user from the group. The owner cannot leave; they delete
// the group instead.
func (s *DefaultGroupService) Leave(ctx context.Context, userID, groupID string) error {
	group, err := s.repo.GetByID(ctx, groupID)
	if err != nil {
		return err
	}
	if group.OwnerID == userID {
		return fmt.Errorf("owner cannot leave their own group")
	}
	return s.repo.RemoveMember(ctx, groupID, userID)
}

// Delete removes the group entirely. Owner only.
func (s *DefaultGroupService) Delete(ctx context.Context, userID, groupID string) error {
	group, err := s.repo.GetByID(ctx, groupID)
	if err != nil {
		return err
	}
	if group.OwnerID != userID {
		return fmt.Errorf("only the owner can delete a group")
	}
	return s.repo.Delete(ctx, groupID)
}

// invite codes are 8 chars from an unambiguous alphabet.
const inviteAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func newInviteCode() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = inviteAlphabet[int(b)%len(inviteAlphabet)]
	}
	return string(buf), nil
}
