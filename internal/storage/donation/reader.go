package donation

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

func (r *Reader) findOne(ctx context.Context, queryMods ...bob.Mod[*dialect.SelectQuery]) (*Donation, error) {
	mods := append([]bob.Mod[*dialect.SelectQuery]{
		sm.Columns(donationColumns...),
		sm.From("donations"),
	}, queryMods...)

	row, err := bob.One(ctx, r.exec, psql.Select(mods...), scan.StructMapper[donationRow]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rowToDonation(row), nil
}

func (r *Reader) FindByID(ctx context.Context, id uuid.UUID) (*Donation, error) {
	return r.findOne(ctx, sm.Where(psql.Quote("id").EQ(psql.Arg(id))))
}

func (r *Reader) FindByTID(ctx context.Context, tid string, direction Direction) (*Donation, error) {
	return r.findOne(ctx,
		sm.Where(psql.Quote("tid").EQ(psql.Arg(tid))),
		sm.Where(psql.Quote("direction").EQ(psql.Arg(string(direction)))),
	)
}

func (r *Reader) FindEarliestByTID(ctx context.Context, tid string) (*Donation, error) {
	return r.findOne(ctx,
		sm.Where(psql.Quote("tid").EQ(psql.Arg(tid))),
		sm.OrderBy("created_at").Asc(),
		sm.OrderBy("id").Asc(),
		sm.Limit(1),
	)
}

func (r *Reader) FindAttributedByTID(ctx context.Context, tid string, excludeID uuid.UUID) (*Donation, error) {
	return r.findOne(ctx,
		sm.Where(psql.Quote("tid").EQ(psql.Arg(tid))),
		sm.Where(psql.Quote("id").NE(psql.Arg(excludeID))),
		sm.Where(psql.Quote("value").GT(psql.Arg(decimal.Zero))),
		sm.Where(psql.Quote("project_id").IsNotNull()),
		sm.OrderBy("created_at").Asc(),
		sm.OrderBy("id").Asc(),
		sm.Limit(1),
	)
}
