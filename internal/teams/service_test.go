package teams

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/socialai/socialai-backend/internal/activitylog"
	"github.com/socialai/socialai-backend/pkg/db/models"
	"github.com/socialai/socialai-backend/pkg/enums"
	pkgerrors "github.com/socialai/socialai-backend/pkg/errors"
)

type fakeTeamRepo struct {
	teams   map[uuid.UUID]*models.Team
	members []*models.TeamMember
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{teams: map[uuid.UUID]*models.Team{}}
}

func (f *fakeTeamRepo) Create(ctx context.Context, team *models.Team) error {
	f.teams[team.ID] = team
	return nil
}

func (f *fakeTeamRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	if team, ok := f.teams[id]; ok {
		return team, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTeamRepo) List(ctx context.Context, filters ListFilters) ([]models.Team, error) {
	var out []models.Team
	for _, team := range f.teams {
		if filters.CompanyID != "" && team.CompanyID != filters.CompanyID {
			continue
		}
		out = append(out, *team)
	}
	return out, nil
}

func (f *fakeTeamRepo) Update(ctx context.Context, id uuid.UUID, dto UpdateTeamDTO) (*models.Team, error) {
	team, ok := f.teams[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if dto.Name != nil {
		team.Name = *dto.Name
	}
	if dto.Description != nil {
		team.Description = *dto.Description
	}
	return team, nil
}

func (f *fakeTeamRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.teams[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.teams, id)
	return nil
}

func (f *fakeTeamRepo) AddMember(ctx context.Context, member *models.TeamMember) error {
	f.members = append(f.members, member)
	return nil
}

func (f *fakeTeamRepo) ListMembers(ctx context.Context, teamID uuid.UUID) ([]models.TeamMember, error) {
	var out []models.TeamMember
	for _, m := range f.members {
		if m.TeamID == teamID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (f *fakeTeamRepo) RemoveMember(ctx context.Context, teamID, userID uuid.UUID) error {
	for i, m := range f.members {
		if m.TeamID == teamID && m.UserID == userID {
			f.members = append(f.members[:i], f.members[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeRecorder struct {
	entries []activitylog.RecordParams
}

func (f *fakeRecorder) Record(ctx context.Context, params activitylog.RecordParams) {
	f.entries = append(f.entries, params)
}

func TestCreateTeamAddsCreatorAsAdmin(t *testing.T) {
	repo := newFakeTeamRepo()
	svc, err := NewService(repo, &fakeRecorder{})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	creator := uuid.New()
	team, err := svc.Create(context.Background(), creator, CreateTeamDTO{Name: "Marketing"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if team.CreatedBy != creator {
		t.Fatalf("created_by mismatch")
	}
	if len(repo.members) != 1 {
		t.Fatalf("expected creator membership, got %d", len(repo.members))
	}
	if repo.members[0].Role != enums.TeamRoleAdmin {
		t.Fatalf("creator should be admin, got %s", repo.members[0].Role)
	}
}

func TestCreateTeamRequiresName(t *testing.T) {
	svc, _ := NewService(newFakeTeamRepo(), &fakeRecorder{})
	_, err := svc.Create(context.Background(), uuid.New(), CreateTeamDTO{Name: "   "})
	if pkgerrors.CodeOf(err) != pkgerrors.CodeValidation {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}
}

func TestAddMemberDefaultsRole(t *testing.T) {
	repo := newFakeTeamRepo()
	svc, _ := NewService(repo, &fakeRecorder{})

	creator := uuid.New()
	team, err := svc.Create(context.Background(), creator, CreateTeamDTO{Name: "Marketing"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	member, err := svc.AddMember(context.Background(), creator, team.ID, AddMemberDTO{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("AddMember: %v", err)
	}
	if member.Role != enums.TeamRoleMember {
		t.Fatalf("expected default member role, got %s", member.Role)
	}
}

func TestAddMemberUnknownTeam(t *testing.T) {
	svc, _ := NewService(newFakeTeamRepo(), &fakeRecorder{})
	_, err := svc.AddMember(context.Background(), uuid.New(), uuid.New(), AddMemberDTO{UserID: uuid.New()})
	if pkgerrors.CodeOf(err) != pkgerrors.CodeNotFound {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestRemoveMemberNotFound(t *testing.T) {
	svc, _ := NewService(newFakeTeamRepo(), &fakeRecorder{})
	err := svc.RemoveMember(context.Background(), uuid.New(), uuid.New(), uuid.New())
	if pkgerrors.CodeOf(err) != pkgerrors.CodeNotFound {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}
