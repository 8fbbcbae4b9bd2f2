package wrongdonation

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

type Writer struct {
	tx bob.Tx
	Reader
}

var _ IWrongDonationTable = (*Writer)(nil)

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

func (w *Writer) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*WrongDonation, error) {
	return w.findOne(ctx,
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.ForUpdate().SkipLocked(),
	)
}

func (w *Writer) Insert(ctx context.Context, donationID uuid.UUID) (*WrongDonation, error) {
	q := psql.Insert(
		im.Into("wrong_donations", "donation_id"),
		im.Values(psql.Arg(donationID)),
		im.Returning(wrongDonationColumns...),
	)
	row, err := bob.One(ctx, w.tx, q, scan.StructMapper[wrongDonationRow]())
	if err != nil {
		return nil, err
	}
	return rowToWrongDonation(row), nil
}

func (w *Writer) Delete(ctx context.Context, id uuid.UUID) error {
	q := psql.Delete(
		dm.From("wrong_donations"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, w.tx, q)
	return err
}

func (w *Writer) Flag(ctx context.Context, id uuid.UUID, reason string) error {
	q := psql.Update(
		um.Table("wrong_donations"),
		um.SetCol("flagged_reason").ToArg(reason),
		um.SetCol("flagged_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, w.tx, q)
	return err
}
