package reconcile

import (
	"bytes"
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/donation-recon/internal/storage/donation"
	"github.com/carson-networks/donation-recon/internal/storage/entity"
	"github.com/carson-networks/donation-recon/internal/storage/wrongdonation"
)

// memStore is an in-memory stand-in for the donation, quarantine and
// catalogue tables. Rows are copied on the way in and out.
type memStore struct {
	mu         sync.Mutex
	seq        int
	donations  map[uuid.UUID]*memDonation
	entries    map[uuid.UUID]wrongdonation.WrongDonation
	locked     map[uuid.UUID]bool
	projects   []entity.Project
	challenges []entity.Challenge
	accounts   []entity.Account
	matchCalls int
}

type memDonation struct {
	donation.Donation
	seq int
}

func newMemStore() *memStore {
	return &memStore{
		donations: make(map[uuid.UUID]*memDonation),
		entries:   make(map[uuid.UUID]wrongdonation.WrongDonation),
		locked:    make(map[uuid.UUID]bool),
	}
}

func newID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}

func (m *memStore) Donations() *memDonations { return &memDonations{m} }
func (m *memStore) Entries() *memEntries     { return &memEntries{m} }
func (m *memStore) Entities() *memEntities   { return &memEntities{m} }

// -- fixtures --

func (m *memStore) addProject(code string, campaignID uuid.NullUUID, status string) entity.Project {
	p := entity.Project{ID: newID(), Code: code, Name: code, CampaignID: campaignID, StatusCode: status}
	m.projects = append(m.projects, p)
	return p
}

func (m *memStore) addChallenge(code string, campaignID uuid.NullUUID, projectIDs ...uuid.UUID) entity.Challenge {
	c := entity.Challenge{ID: newID(), Code: code, CampaignID: campaignID, ProjectIDs: projectIDs}
	m.challenges = append(m.challenges, c)
	return c
}

func (m *memStore) addAccount(code, email string) entity.Account {
	a := entity.Account{ID: newID(), Code: code, Email: email, Name: code}
	m.accounts = append(m.accounts, a)
	return a
}

func (m *memStore) addDonation(tid, value, description string, links donation.Links) donation.Donation {
	m.mu.Lock()
	defer m.mu.Unlock()
	direction := donation.DirectionIn
	amount := decimal.RequireFromString(value)
	if !amount.IsPositive() {
		direction = donation.DirectionOut
	}
	m.seq++
	d := donation.Donation{
		ID:          newID(),
		TID:         tid,
		Direction:   direction,
		Value:       amount,
		Description: description,
		Links:       links,
		CreatedAt:   time.Date(2025, 1, 1, 0, 0, m.seq, 0, time.UTC),
	}
	m.donations[d.ID] = &memDonation{Donation: d, seq: m.seq}
	return d
}

// addEntry quarantines a donation, optionally without the back-reference.
func (m *memStore) addEntry(donationID uuid.UUID, bidirectional bool) wrongdonation.WrongDonation {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry := wrongdonation.WrongDonation{ID: newID(), DonationID: donationID, CreatedAt: time.Now()}
	m.entries[entry.ID] = entry
	if bidirectional {
		m.donations[donationID].WrongDonationID = validID(entry.ID)
	}
	return entry
}

func (m *memStore) donation(id uuid.UUID) donation.Donation {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.donations[id].Donation
}

func (m *memStore) entry(id uuid.UUID) (wrongdonation.WrongDonation, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[id]
	return e, ok
}

func (m *memStore) donationCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.donations)
}

func (m *memStore) entryCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// -- donation table --

type memDonations struct{ m *memStore }

var _ donation.IDonationTable = (*memDonations)(nil)

func (t *memDonations) sorted() []*memDonation {
	rows := make([]*memDonation, 0, len(t.m.donations))
	for _, row := range t.m.donations {
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].seq < rows[j].seq })
	return rows
}

func (t *memDonations) FindByID(_ context.Context, id uuid.UUID) (*donation.Donation, error) {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()
	row, ok := t.m.donations[id]
	if !ok {
		return nil, nil
	}
	d := row.Donation
	return &d, nil
}

func (t *memDonations) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*donation.Donation, error) {
	return t.FindByID(ctx, id)
}

func (t *memDonations) FindByTID(_ context.Context, tid string, direction donation.Direction) (*donation.Donation, error) {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()
	for _, row := range t.sorted() {
		if row.TID == tid && row.Direction == direction {
			d := row.Donation
			return &d, nil
		}
	}
	return nil, nil
}

func (t *memDonations) FindEarliestByTID(_ context.Context, tid string) (*donation.Donation, error) {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()
	for _, row := range t.sorted() {
		if row.TID == tid {
			d := row.Donation
			return &d, nil
		}
	}
	return nil, nil
}

func (t *memDonations) FindAttributedByTID(_ context.Context, tid string, excludeID uuid.UUID) (*donation.Donation, error) {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()
	for _, row := range t.sorted() {
		if row.TID == tid && row.ID != excludeID && row.Value.IsPositive() && row.Links.ProjectID.Valid {
			d := row.Donation
			return &d, nil
		}
	}
	return nil, nil
}

func (t *memDonations) Insert(_ context.Context, create *donation.DonationCreate) (*donation.Donation, bool, error) {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()
	for _, row := range t.m.donations {
		if row.TID == create.TID && row.Direction == create.Direction {
			d := row.Donation
			return &d, false, nil
		}
	}
	t.m.seq++
	d := donation.Donation{
		ID:           newID(),
		TID:          create.TID,
		Direction:    create.Direction,
		Value:        create.Value,
		Description:  create.Description,
		Counterparty: create.Counterparty,
		Links:        create.Links,
		BookedAt:     create.BookedAt,
		CreatedAt:    time.Date(2025, 1, 1, 0, 0, t.m.seq, 0, time.UTC),
	}
	t.m.donations[d.ID] = &memDonation{Donation: d, seq: t.m.seq}
	return &d, true, nil
}

func (t *memDonations) UpdateLinks(_ context.Context, id uuid.UUID, links donation.Links) error {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()
	if row, ok := t.m.donations[id]; ok {
		row.Links = links
	}
	return nil
}

func (t *memDonations) SetWrongDonation(_ context.Context, id uuid.UUID, wrongDonationID uuid.NullUUID) error {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()
	if row, ok := t.m.donations[id]; ok {
		row.WrongDonationID = wrongDonationID
	}
	return nil
}

// -- quarantine table --

type memEntries struct{ m *memStore }

var _ wrongdonation.IWrongDonationTable = (*memEntries)(nil)

func (t *memEntries) FindByID(_ context.Context, id uuid.UUID) (*wrongdonation.WrongDonation, error) {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()
	entry, ok := t.m.entries[id]
	if !ok {
		return nil, nil
	}
	return &entry, nil
}

func (t *memEntries) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*wrongdonation.WrongDonation, error) {
	t.m.mu.Lock()
	locked := t.m.locked[id]
	t.m.mu.Unlock()
	if locked {
		return nil, nil
	}
	return t.FindByID(ctx, id)
}

func (t *memEntries) List(_ context.Context, filter *wrongdonation.WrongDonationFilter) ([]*wrongdonation.WrongDonation, error) {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()
	result := make([]*wrongdonation.WrongDonation, 0, len(t.m.entries))
	for _, entry := range t.m.entries {
		e := entry
		result = append(result, &e)
	}
	sort.Slice(result, func(i, j int) bool { return bytes.Compare(result[i].ID.Bytes(), result[j].ID.Bytes()) < 0 })
	return result, nil
}

func (t *memEntries) Insert(_ context.Context, donationID uuid.UUID) (*wrongdonation.WrongDonation, error) {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()
	entry := wrongdonation.WrongDonation{ID: newID(), DonationID: donationID, CreatedAt: time.Now()}
	t.m.entries[entry.ID] = entry
	return &entry, nil
}

func (t *memEntries) Delete(_ context.Context, id uuid.UUID) error {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()
	delete(t.m.entries, id)
	return nil
}

func (t *memEntries) Flag(_ context.Context, id uuid.UUID, reason string) error {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()
	if entry, ok := t.m.entries[id]; ok {
		now := time.Now()
		entry.FlaggedReason = reason
		entry.FlaggedAt = &now
		t.m.entries[id] = entry
	}
	return nil
}

// -- catalogue --

type memEntities struct{ m *memStore }

var _ entity.IEntityLookup = (*memEntities)(nil)

func (t *memEntities) FindProjectByCode(_ context.Context, code string) (*entity.Project, error) {
	for _, p := range t.m.projects {
		if strings.EqualFold(p.Code, code) {
			project := p
			return &project, nil
		}
	}
	return nil, nil
}

func (t *memEntities) FindProjectByID(_ context.Context, id uuid.UUID) (*entity.Project, error) {
	for _, p := range t.m.projects {
		if p.ID == id {
			project := p
			return &project, nil
		}
	}
	return nil, nil
}

func (t *memEntities) FindChallengeByCode(_ context.Context, code string) (*entity.Challenge, error) {
	for _, c := range t.m.challenges {
		if strings.EqualFold(c.Code, code) {
			challenge := c
			return &challenge, nil
		}
	}
	return nil, nil
}

func (t *memEntities) FindChallengeByID(_ context.Context, id uuid.UUID) (*entity.Challenge, error) {
	for _, c := range t.m.challenges {
		if c.ID == id {
			challenge := c
			return &challenge, nil
		}
	}
	return nil, nil
}

func (t *memEntities) FindAccountByCode(_ context.Context, code string) (*entity.Account, error) {
	for _, a := range t.m.accounts {
		if strings.EqualFold(a.Code, code) {
			account := a
			return &account, nil
		}
	}
	return nil, nil
}

func (t *memEntities) FindAccountByEmail(_ context.Context, email string) (*entity.Account, error) {
	for _, a := range t.m.accounts {
		if strings.EqualFold(a.Email, email) {
			account := a
			return &account, nil
		}
	}
	return nil, nil
}

func (t *memEntities) MatchProject(_ context.Context, match entity.ProjectMatch) (*entity.Project, error) {
	t.m.matchCalls++
	var found *entity.Project
	for _, p := range t.m.projects {
		if match.CampaignID.Valid && p.CampaignID != match.CampaignID {
			continue
		}
		if match.StatusCode != "" && p.StatusCode != match.StatusCode {
			continue
		}
		if match.ExcludeID.Valid && p.ID == match.ExcludeID.UUID {
			continue
		}
		if found == nil || bytes.Compare(p.ID.Bytes(), found.ID.Bytes()) < 0 {
			project := p
			found = &project
		}
	}
	return found, nil
}
