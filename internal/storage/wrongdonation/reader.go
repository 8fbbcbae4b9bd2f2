package wrongdonation

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var _ IWrongDonationReader = (*Reader)(nil)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

func (r *Reader) findOne(ctx context.Context, queryMods ...bob.Mod[*dialect.SelectQuery]) (*WrongDonation, error) {
	mods := append([]bob.Mod[*dialect.SelectQuery]{
		sm.Columns(wrongDonationColumns...),
		sm.From("wrong_donations"),
	}, queryMods...)

	row, err := bob.One(ctx, r.exec, psql.Select(mods...), scan.StructMapper[wrongDonationRow]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rowToWrongDonation(row), nil
}

func (r *Reader) FindByID(ctx context.Context, id uuid.UUID) (*WrongDonation, error) {
	return r.findOne(ctx, sm.Where(psql.Quote("id").EQ(psql.Arg(id))))
}

// List returns entries oldest first. Nil filter returns all.
func (r *Reader) List(ctx context.Context, filter *WrongDonationFilter) ([]*WrongDonation, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(wrongDonationColumns...),
		sm.From("wrong_donations"),
	}
	if filter != nil {
		if filter.Limit > 0 {
			queryMods = append(queryMods, sm.Limit(filter.Limit+1))
		}
		if filter.Offset > 0 {
			queryMods = append(queryMods, sm.Offset(filter.Offset))
		}
	}
	queryMods = append(queryMods,
		sm.OrderBy("created_at").Asc(),
		sm.OrderBy("id").Asc(),
	)

	rows, err := bob.All(ctx, r.exec, psql.Select(queryMods...), scan.StructMapper[wrongDonationRow]())
	if err != nil {
		return nil, err
	}
	result := make([]*WrongDonation, len(rows))
	for i, row := range rows {
		result[i] = rowToWrongDonation(row)
	}
	return result, nil
}
