package entity

import (
	"context"

	"github.com/gofrs/uuid/v5"
)

// Project is a fundable project. StatusCode is free-form and owned by the
// project catalogue.
type Project struct {
	ID         uuid.UUID
	Code       string
	Name       string
	CampaignID uuid.NullUUID
	StatusCode string
}

// Challenge is a campaign challenge; it may feed one or more projects.
type Challenge struct {
	ID         uuid.UUID
	Code       string
	CampaignID uuid.NullUUID
	ProjectIDs []uuid.UUID
}

// SingleProject returns the project the challenge maps to when it maps to
// exactly one.
func (c *Challenge) SingleProject() (uuid.UUID, bool) {
	if len(c.ProjectIDs) != 1 {
		return uuid.Nil, false
	}
	return c.ProjectIDs[0], true
}

type Account struct {
	ID    uuid.UUID
	Code  string
	Email string
	Name  string
}

// ProjectMatch narrows a project search. Zero-valued fields do not constrain.
type ProjectMatch struct {
	CampaignID uuid.NullUUID
	StatusCode string
	ExcludeID  uuid.NullUUID
}

// IEntityLookup resolves parsed references into catalogue entities. Every
// Find method returns (nil, nil) when nothing matches.
//
//go:generate mockery --name IEntityLookup --inpackage --with-expecter
type IEntityLookup interface {
	FindProjectByCode(ctx context.Context, code string) (*Project, error)
	FindProjectByID(ctx context.Context, id uuid.UUID) (*Project, error)
	FindChallengeByCode(ctx context.Context, code string) (*Challenge, error)
	FindChallengeByID(ctx context.Context, id uuid.UUID) (*Challenge, error)
	FindAccountByCode(ctx context.Context, code string) (*Account, error)
	FindAccountByEmail(ctx context.Context, email string) (*Account, error)
	// MatchProject returns the lowest-id project satisfying the match.
	MatchProject(ctx context.Context, match ProjectMatch) (*Project, error)
}

type projectRow struct {
	ID         uuid.UUID     `db:"id"`
	Code       string        `db:"code"`
	Name       string        `db:"name"`
	CampaignID uuid.NullUUID `db:"campaign_id"`
	StatusCode string        `db:"status_code"`
}

type challengeRow struct {
	ID         uuid.UUID     `db:"id"`
	Code       string        `db:"code"`
	CampaignID uuid.NullUUID `db:"campaign_id"`
}

type accountRow struct {
	ID    uuid.UUID `db:"id"`
	Code  string    `db:"code"`
	Email string    `db:"email"`
	Name  string    `db:"name"`
}

var (
	projectColumns   = []any{"id", "code", "name", "campaign_id", "status_code"}
	challengeColumns = []any{"id", "code", "campaign_id"}
	accountColumns   = []any{"id", "code", "email", "name"}
)

func rowToProject(row projectRow) *Project {
	return &Project{
		ID:         row.ID,
		Code:       row.Code,
		Name:       row.Name,
		CampaignID: row.CampaignID,
		StatusCode: row.StatusCode,
	}
}

func rowToAccount(row accountRow) *Account {
	return &Account{
		ID:    row.ID,
		Code:  row.Code,
		Email: row.Email,
		Name:  row.Name,
	}
}
