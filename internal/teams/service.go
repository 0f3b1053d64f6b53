package teams

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/socialai/socialai-backend/internal/activitylog"
	"github.com/socialai/socialai-backend/pkg/db/models"
	"github.com/socialai/socialai-backend/pkg/enums"
	pkgerrors "github.com/socialai/socialai-backend/pkg/errors"
)

// Service defines team and membership operations.
type Service interface {
	Create(ctx context.Context, createdBy uuid.UUID, dto CreateTeamDTO) (*TeamDTO, error)
	Get(ctx context.Context, id uuid.UUID) (*TeamDTO, error)
	List(ctx context.Context, filters ListFilters) ([]TeamDTO, error)
	Update(ctx context.Context, id uuid.UUID, dto UpdateTeamDTO) (*TeamDTO, error)
	Delete(ctx context.Context, actor, id uuid.UUID) error
	AddMember(ctx context.Context, actor, teamID uuid.UUID, dto AddMemberDTO) (*MemberDTO, error)
	ListMembers(ctx context.Context, teamID uuid.UUID) ([]MemberDTO, error)
	RemoveMember(ctx context.Context, actor, teamID, userID uuid.UUID) error
}

type teamRepository interface {
	Create(ctx context.Context, team *models.Team) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Team, error)
	List(ctx context.Context, filters ListFilters) ([]models.Team, error)
	Update(ctx context.Context, id uuid.UUID, dto UpdateTeamDTO) (*models.Team, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddMember(ctx context.Context, member *models.TeamMember) error
	ListMembers(ctx context.Context, teamID uuid.UUID) ([]models.TeamMember, error)
	RemoveMember(ctx context.Context, teamID, userID uuid.UUID) error
}

type service struct {
	repo     teamRepository
	activity activitylog.Recorder
}

// NewService wires the teams service.
func NewService(repo teamRepository, activity activitylog.Recorder) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "teams repository required")
	}
	if activity == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "activity recorder required")
	}
	return &service{repo: repo, activity: activity}, nil
}

func (s *service) Create(ctx context.Context, createdBy uuid.UUID, dto CreateTeamDTO) (*TeamDTO, error) {
	if createdBy == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "creator id required")
	}
	name := strings.TrimSpace(dto.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "team name required")
	}

	team := &models.Team{
		ID:          uuid.New(),
		Name:        name,
		Description: strings.TrimSpace(dto.Description),
		CompanyID:   strings.TrimSpace(dto.CompanyID),
		CreatedBy:   createdBy,
	}
	if err := s.repo.Create(ctx, team); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create team")
	}

	// The creator joins as team admin.
	member := &models.TeamMember{
		ID:     uuid.New(),
		TeamID: team.ID,
		UserID: createdBy,
		Role:   enums.TeamRoleAdmin,
	}
	if err := s.repo.AddMember(ctx, member); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "add creator membership")
	}

	s.activity.Record(ctx, activitylog.RecordParams{
		UserID:     createdBy,
		Action:     "team.created",
		EntityType: "team",
		EntityID:   &team.ID,
		Details:    map[string]any{"name": team.Name},
	})

	return teamFromModel(team), nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*TeamDTO, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "team id required")
	}
	team, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "team not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load team")
	}
	return teamFromModel(team), nil
}

func (s *service) List(ctx context.Context, filters ListFilters) ([]TeamDTO, error) {
	rows, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list teams")
	}
	out := make([]TeamDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *teamFromModel(&rows[i]))
	}
	return out, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, dto UpdateTeamDTO) (*TeamDTO, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "team id required")
	}
	if dto.Name != nil && strings.TrimSpace(*dto.Name) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "team name cannot be empty")
	}
	team, err := s.repo.Update(ctx, id, dto)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "team not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update team")
	}
	return teamFromModel(team), nil
}

func (s *service) Delete(ctx context.Context, actor, id uuid.UUID) error {
	if id == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "team id required")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "team not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete team")
	}

	s.activity.Record(ctx, activitylog.RecordParams{
		UserID:     actor,
		Action:     "team.deleted",
		EntityType: "team",
		EntityID:   &id,
	})
	return nil
}

func (s *service) AddMember(ctx context.Context, actor, teamID uuid.UUID, dto AddMemberDTO) (*MemberDTO, error) {
	if teamID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "team id required")
	}
	if dto.UserID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id required")
	}
	role := dto.Role
	if role == "" {
		role = enums.TeamRoleMember
	}
	if !role.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid team role")
	}

	if _, err := s.repo.FindByID(ctx, teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "team not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load team")
	}

	member := &models.TeamMember{
		ID:     uuid.New(),
		TeamID: teamID,
		UserID: dto.UserID,
		Role:   role,
	}
	if err := s.repo.AddMember(ctx, member); err != nil {
		if pkgerrors.IsUniqueViolation(err) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "user is already a member")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "add member")
	}

	s.activity.Record(ctx, activitylog.RecordParams{
		UserID:     actor,
		Action:     "team.member_added",
		EntityType: "team",
		EntityID:   &teamID,
		Details:    map[string]any{"user_id": dto.UserID.String(), "role": string(role)},
	})

	return memberFromModel(member), nil
}

func (s *service) ListMembers(ctx context.Context, teamID uuid.UUID) ([]MemberDTO, error) {
	if teamID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "team id required")
	}
	rows, err := s.repo.ListMembers(ctx, teamID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list members")
	}
	out := make([]MemberDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *memberFromModel(&rows[i]))
	}
	return out, nil
}

func (s *service) RemoveMember(ctx context.Context, actor, teamID, userID uuid.UUID) error {
	if teamID == uuid.Nil || userID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "team id and user id required")
	}
	if err := s.repo.RemoveMember(ctx, teamID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "membership not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "remove member")
	}

	s.activity.Record(ctx, activitylog.RecordParams{
		UserID:     actor,
		Action:     "team.member_removed",
		EntityType: "team",
		EntityID:   &teamID,
		Details:    map[string]any{"user_id": userID.String()},
	})
	return nil
}
