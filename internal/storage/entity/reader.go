package entity

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

// Reader serves catalogue lookups. It never writes and can run against a
// read replica.
type Reader struct {
	exec bob.Executor
}

var _ IEntityLookup = (*Reader)(nil)

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// Codes are stored upper-case, so lookups normalise their input the same way.
func normaliseCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (r *Reader) findProject(ctx context.Context, where bob.Mod[*dialect.SelectQuery]) (*Project, error) {
	q := psql.Select(
		sm.Columns(projectColumns...),
		sm.From("projects"),
		where,
		sm.Limit(1),
	)
	row, err := bob.One(ctx, r.exec, q, scan.StructMapper[projectRow]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rowToProject(row), nil
}

func (r *Reader) FindProjectByCode(ctx context.Context, code string) (*Project, error) {
	code = normaliseCode(code)
	if code == "" {
		return nil, nil
	}
	return r.findProject(ctx, sm.Where(psql.Quote("code").EQ(psql.Arg(code))))
}

func (r *Reader) FindProjectByID(ctx context.Context, id uuid.UUID) (*Project, error) {
	return r.findProject(ctx, sm.Where(psql.Quote("id").EQ(psql.Arg(id))))
}

func (r *Reader) findChallenge(ctx context.Context, where bob.Mod[*dialect.SelectQuery]) (*Challenge, error) {
	q := psql.Select(
		sm.Columns(challengeColumns...),
		sm.From("challenges"),
		where,
		sm.Limit(1),
	)
	row, err := bob.One(ctx, r.exec, q, scan.StructMapper[challengeRow]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	projectsQuery := psql.Select(
		sm.Columns("project_id"),
		sm.From("challenge_projects"),
		sm.Where(psql.Quote("challenge_id").EQ(psql.Arg(row.ID))),
		sm.OrderBy("project_id").Asc(),
	)
	projectIDs, err := bob.All(ctx, r.exec, projectsQuery, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return nil, err
	}

	return &Challenge{
		ID:         row.ID,
		Code:       row.Code,
		CampaignID: row.CampaignID,
		ProjectIDs: projectIDs,
	}, nil
}

func (r *Reader) FindChallengeByCode(ctx context.Context, code string) (*Challenge, error) {
	code = normaliseCode(code)
	if code == "" {
		return nil, nil
	}
	return r.findChallenge(ctx, sm.Where(psql.Quote("code").EQ(psql.Arg(code))))
}

func (r *Reader) FindChallengeByID(ctx context.Context, id uuid.UUID) (*Challenge, error) {
	return r.findChallenge(ctx, sm.Where(psql.Quote("id").EQ(psql.Arg(id))))
}

func (r *Reader) findAccount(ctx context.Context, where bob.Mod[*dialect.SelectQuery]) (*Account, error) {
	q := psql.Select(
		sm.Columns(accountColumns...),
		sm.From("accounts"),
		where,
		sm.Limit(1),
	)
	row, err := bob.One(ctx, r.exec, q, scan.StructMapper[accountRow]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rowToAccount(row), nil
}

func (r *Reader) FindAccountByCode(ctx context.Context, code string) (*Account, error) {
	code = normaliseCode(code)
	if code == "" {
		return nil, nil
	}
	return r.findAccount(ctx, sm.Where(psql.Quote("code").EQ(psql.Arg(code))))
}

// FindAccountByEmail matches case-insensitively; e-mails are stored lower-case.
func (r *Reader) FindAccountByEmail(ctx context.Context, email string) (*Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, nil
	}
	return r.findAccount(ctx, sm.Where(psql.Quote("email").EQ(psql.Arg(email))))
}

func (r *Reader) MatchProject(ctx context.Context, match ProjectMatch) (*Project, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(projectColumns...),
		sm.From("projects"),
	}
	if match.CampaignID.Valid {
		queryMods = append(queryMods, sm.Where(psql.Quote("campaign_id").EQ(psql.Arg(match.CampaignID.UUID))))
	}
	if match.StatusCode != "" {
		queryMods = append(queryMods, sm.Where(psql.Quote("status_code").EQ(psql.Arg(match.StatusCode))))
	}
	if match.ExcludeID.Valid {
		queryMods = append(queryMods, sm.Where(psql.Quote("id").NE(psql.Arg(match.ExcludeID.UUID))))
	}
	queryMods = append(queryMods,
		sm.OrderBy("id").Asc(),
		sm.Limit(1),
	)

	row, err := bob.One(ctx, r.exec, psql.Select(queryMods...), scan.StructMapper[projectRow]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rowToProject(row), nil
}
