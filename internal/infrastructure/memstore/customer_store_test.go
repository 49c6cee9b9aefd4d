package memstore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csaassociates/ca-admin-api/internal/domain"
	"github.com/csaassociates/ca-admin-api/internal/domain/entity"
	"github.com/csaassociates/ca-admin-api/internal/infrastructure/memstore"
)

func newCustomer(id, name, email string) *entity.Customer {
	return &entity.Customer{
		ID:    id,
		Name:  name,
		Email: email,
		Phone: "+91 90000 00000",
		Type:  entity.CustomerTypeIndividual,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// CRUD basics
// ──────────────────────────────────────────────────────────────────────────────

func TestCustomerStore_CreateAndGet(t *testing.T) {
	st := memstore.NewCustomerStore()
	require.NoError(t, st.Create(newCustomer("c1", "Rajesh Kumar", "rajesh@example.com")))

	got, err := st.GetByID("c1")
	require.NoError(t, err)
	assert.Equal(t, "Rajesh Kumar", got.Name)
	assert.Equal(t, 1, got.Version, "a freshly created record starts at version 1")

	_, err = st.GetByID("missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCustomerStore_CreateDuplicateID(t *testing.T) {
	st := memstore.NewCustomerStore()
	require.NoError(t, st.Create(newCustomer("c1", "A", "a@x.com")))
	assert.ErrorIs(t, st.Create(newCustomer("c1", "B", "b@x.com")), domain.ErrDuplicate)
}

func TestCustomerStore_GetByEmailIsCaseInsensitive(t *testing.T) {
	st := memstore.NewCustomerStore()
	require.NoError(t, st.Create(newCustomer("c1", "A", "Rajesh@Example.com")))

	got, err := st.GetByEmail("rajesh@example.COM")
	require.NoError(t, err)
	assert.Equal(t, "c1", got.ID)
}

func TestCustomerStore_ListInsertionOrder(t *testing.T) {
	st := memstore.NewCustomerStore()
	for _, id := range []string{"c1", "c2", "c3"} {
		require.NoError(t, st.Create(newCustomer(id, "N-"+id, id+"@x.com")))
	}
	list, err := st.List()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"c1", "c2", "c3"},
		[]string{list[0].ID, list[1].ID, list[2].ID},
		"listing preserves insertion order")
}

// ──────────────────────────────────────────────────────────────────────────────
// Snapshot isolation: reads are copies
// ──────────────────────────────────────────────────────────────────────────────

func TestCustomerStore_ReadsAreCopies(t *testing.T) {
	st := memstore.NewCustomerStore()
	require.NoError(t, st.Create(newCustomer("c1", "Original", "a@x.com")))

	got, err := st.GetByID("c1")
	require.NoError(t, err)
	got.Name = "Mutated"

	again, err := st.GetByID("c1")
	require.NoError(t, err)
	assert.Equal(t, "Original", again.Name,
		"mutating a returned record must not touch the store")

	list, err := st.List()
	require.NoError(t, err)
	list[0].Name = "Mutated via list"

	again, err = st.GetByID("c1")
	require.NoError(t, err)
	assert.Equal(t, "Original", again.Name,
		"list snapshots are detached from the store")
}

// ──────────────────────────────────────────────────────────────────────────────
// Optimistic concurrency
// ──────────────────────────────────────────────────────────────────────────────

func TestCustomerStore_UpdateBumpsVersion(t *testing.T) {
	st := memstore.NewCustomerStore()
	require.NoError(t, st.Create(newCustomer("c1", "A", "a@x.com")))

	upd := newCustomer("c1", "A2", "a@x.com")
	upd.Version = 1
	require.NoError(t, st.Update(upd))

	got, err := st.GetByID("c1")
	require.NoError(t, err)
	assert.Equal(t, "A2", got.Name)
	assert.Equal(t, 2, got.Version)
}

func TestCustomerStore_UpdateStaleVersionConflicts(t *testing.T) {
	st := memstore.NewCustomerStore()
	require.NoError(t, st.Create(newCustomer("c1", "A", "a@x.com")))

	first := newCustomer("c1", "First", "a@x.com")
	first.Version = 1
	require.NoError(t, st.Update(first))

	stale := newCustomer("c1", "Second", "a@x.com")
	stale.Version = 1 // lost the race
	assert.ErrorIs(t, st.Update(stale), domain.ErrConflict)

	got, err := st.GetByID("c1")
	require.NoError(t, err)
	assert.Equal(t, "First", got.Name, "the losing write must not land")
}

func TestCustomerStore_UpdateZeroVersionSkipsCheck(t *testing.T) {
	st := memstore.NewCustomerStore()
	require.NoError(t, st.Create(newCustomer("c1", "A", "a@x.com")))

	upd := newCustomer("c1", "Forced", "a@x.com")
	upd.Version = 0
	require.NoError(t, st.Update(upd), "version 0 opts out of the concurrency check")
}

func TestCustomerStore_UpdateMissing(t *testing.T) {
	st := memstore.NewCustomerStore()
	assert.ErrorIs(t, st.Update(newCustomer("ghost", "A", "a@x.com")), domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestCustomerStore_DeleteReindexes(t *testing.T) {
	st := memstore.NewCustomerStore()
	for _, id := range []string{"c1", "c2", "c3"} {
		require.NoError(t, st.Create(newCustomer(id, "N-"+id, id+"@x.com")))
	}

	require.NoError(t, st.Delete("c2", 0))

	_, err := st.GetByID("c2")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// The records after the deleted one stay addressable.
	got, err := st.GetByID("c3")
	require.NoError(t, err)
	assert.Equal(t, "c3", got.ID)

	list, err := st.List()
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestCustomerStore_DeleteVersionChecked(t *testing.T) {
	st := memstore.NewCustomerStore()
	require.NoError(t, st.Create(newCustomer("c1", "A", "a@x.com")))

	assert.ErrorIs(t, st.Delete("c1", 7), domain.ErrConflict)
	assert.NoError(t, st.Delete("c1", 1))
	assert.ErrorIs(t, st.Delete("c1", 0), domain.ErrNotFound)
}
