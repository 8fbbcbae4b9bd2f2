package reconcile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/donation-recon/internal/storage/donation"
)

func TestQuarantine_CreateSetsBothReferences(t *testing.T) {
	store := newMemStore()
	q := NewQuarantine(store.Donations(), store.Entries())
	d := store.addDonation("OUT-1", "-10", "IN-1", donation.Links{})

	entry, err := q.Create(context.Background(), &d)

	require.NoError(t, err)
	assert.Equal(t, d.ID, entry.DonationID)
	assert.Equal(t, validID(entry.ID), d.WrongDonationID)
	assert.Equal(t, validID(entry.ID), store.donation(d.ID).WrongDonationID)
	assert.True(t, IsBidirectional(entry, &d))
}

func TestQuarantine_ListAll(t *testing.T) {
	store := newMemStore()
	q := NewQuarantine(store.Donations(), store.Entries())
	first := store.addDonation("OUT-1", "-10", "", donation.Links{})
	second := store.addDonation("OUT-2", "-10", "", donation.Links{})
	store.addEntry(first.ID, true)
	store.addEntry(second.ID, false)

	entries, err := q.ListAll(context.Background())

	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestQuarantine_DeleteIfConsistent(t *testing.T) {
	t.Run("bidirectional entry is deleted", func(t *testing.T) {
		store := newMemStore()
		q := NewQuarantine(store.Donations(), store.Entries())
		d := store.addDonation("OUT-1", "-10", "", donation.Links{})
		entry := store.addEntry(d.ID, true)

		deleted, err := q.DeleteIfConsistent(context.Background(), &entry)

		require.NoError(t, err)
		assert.True(t, deleted)
		assert.Equal(t, 0, store.entryCount())
		assert.False(t, store.donation(d.ID).WrongDonationID.Valid)
	})

	t.Run("forward-only entry is kept", func(t *testing.T) {
		store := newMemStore()
		q := NewQuarantine(store.Donations(), store.Entries())
		d := store.addDonation("OUT-1", "-10", "", donation.Links{})
		entry := store.addEntry(d.ID, false)

		deleted, err := q.DeleteIfConsistent(context.Background(), &entry)

		require.NoError(t, err)
		assert.False(t, deleted)
		assert.Equal(t, 1, store.entryCount())
	})

	t.Run("back-reference to another entry is kept", func(t *testing.T) {
		store := newMemStore()
		q := NewQuarantine(store.Donations(), store.Entries())
		d := store.addDonation("OUT-1", "-10", "", donation.Links{})
		stale := store.addEntry(d.ID, false)
		store.addEntry(d.ID, true)

		deleted, err := q.DeleteIfConsistent(context.Background(), &stale)

		require.NoError(t, err)
		assert.False(t, deleted)
		assert.Equal(t, 2, store.entryCount())
	})
}

func TestIsBidirectional_NilSafe(t *testing.T) {
	assert.False(t, IsBidirectional(nil, nil))
}
