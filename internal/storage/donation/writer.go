package donation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

type Writer struct {
	tx bob.Tx
	Reader
}

var _ IDonationTable = (*Writer)(nil)

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

func (w *Writer) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Donation, error) {
	return w.findOne(ctx,
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.ForUpdate(),
	)
}

func (w *Writer) Insert(ctx context.Context, create *DonationCreate) (*Donation, bool, error) {
	bookedAt := create.BookedAt
	if bookedAt.IsZero() {
		bookedAt = time.Now()
	}

	q := psql.Insert(
		im.Into("donations",
			"tid", "direction", "value", "description",
			"counterparty_name", "counterparty_iban", "counterparty_bank_code",
			"project_id", "challenge_id", "referrer_account_id", "creator_account_id",
			"transferred_project_id", "booked_at",
		),
		im.Values(psql.Arg(
			create.TID, string(create.Direction), create.Value, create.Description,
			create.Counterparty.Name, create.Counterparty.IBAN, create.Counterparty.BankCode,
			create.Links.ProjectID, create.Links.ChallengeID, create.Links.ReferrerAccountID,
			create.Links.CreatorAccountID, create.Links.TransferredProjectID, bookedAt,
		)),
		im.OnConflict("tid", "direction").DoNothing(),
		im.Returning(donationColumns...),
	)

	row, err := bob.One(ctx, w.tx, q, scan.StructMapper[donationRow]())
	if errors.Is(err, sql.ErrNoRows) {
		// Lost the race against a concurrent delivery of the same transaction.
		existing, findErr := w.FindByTID(ctx, create.TID, create.Direction)
		if findErr != nil {
			return nil, false, findErr
		}
		if existing == nil {
			return nil, false, fmt.Errorf("donation %s/%s: conflict without existing row", create.TID, create.Direction)
		}
		return existing, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return rowToDonation(row), true, nil
}

func (w *Writer) UpdateLinks(ctx context.Context, id uuid.UUID, links Links) error {
	q := psql.Update(
		um.Table("donations"),
		um.SetCol("project_id").ToArg(links.ProjectID),
		um.SetCol("challenge_id").ToArg(links.ChallengeID),
		um.SetCol("referrer_account_id").ToArg(links.ReferrerAccountID),
		um.SetCol("creator_account_id").ToArg(links.CreatorAccountID),
		um.SetCol("transferred_project_id").ToArg(links.TransferredProjectID),
		um.SetCol("updated_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, w.tx, q)
	return err
}

func (w *Writer) SetWrongDonation(ctx context.Context, id uuid.UUID, wrongDonationID uuid.NullUUID) error {
	q := psql.Update(
		um.Table("donations"),
		um.SetCol("wrong_donation_id").ToArg(wrongDonationID),
		um.SetCol("updated_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, w.tx, q)
	return err
}
