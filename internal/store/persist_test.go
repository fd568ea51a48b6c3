package store

import (
	"database/sql"
	"os"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freshcart/pkg/models"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	// apply the real schema, not a test double of it
	schema, err := os.ReadFile("../../docs/schema.sql")
	require.NoError(t, err)
	_, err = db.Exec(string(schema))
	require.NoError(t, err)

	return db
}

func TestSQLitePersister_LoadWithoutSnapshot(t *testing.T) {
	p := NewSQLitePersister(openTestDB(t))

	st, err := p.Load()
	require.NoError(t, err)
	assert.Nil(t, st)
}

// TestSQLitePersister_RoundTrip: the full state, cart included, must
// survive serialize/deserialize losslessly.
func TestSQLitePersister_RoundTrip(t *testing.T) {
	p := NewSQLitePersister(openTestDB(t))

	st := models.ClientState{
		Page:      3,
		PageSize:  20,
		Search:    "onion",
		Category:  "Fruits & Vegetables",
		PriceSort: models.SortAsc,
		Cart: []models.CartItem{
			{
				Product: models.Product{
					ID: "1", Title: "Onion (Loose)", Price: 156, MRP: 230.26,
					Discount: 32, Brand: "Fresho", Weight: "5 kg", PricePerKg: 31.2,
					Category: "Fruits & Vegetables",
				},
				Quantity: 2,
			},
		},
	}
	require.NoError(t, p.Save(st))

	loaded, err := p.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, st, *loaded)
}

func TestSQLitePersister_SaveOverwrites(t *testing.T) {
	p := NewSQLitePersister(openTestDB(t))

	require.NoError(t, p.Save(models.ClientState{Search: "first"}))
	require.NoError(t, p.Save(models.ClientState{Search: "second"}))

	loaded, err := p.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "second", loaded.Search)
}

func TestSQLitePersister_Reset(t *testing.T) {
	p := NewSQLitePersister(openTestDB(t))

	require.NoError(t, p.Save(models.ClientState{Search: "onion"}))
	require.NoError(t, p.Reset())

	loaded, err := p.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)

	// resetting an empty store is fine too
	require.NoError(t, p.Reset())
}

// TestStore_LoadsOldSchemaSnapshotFromSQLite: an older blob whose cart
// entries carry no quantity field must come up with quantity 1.
func TestStore_LoadsOldSchemaSnapshotFromSQLite(t *testing.T) {
	db := openTestDB(t)

	oldBlob := `{
		"page": 1,
		"pageSize": 10,
		"search": "",
		"category": "",
		"priceSort": "",
		"cart": [
			{"id": "1", "title": "Onion (Loose)", "price": 156},
			{"id": "2", "title": "Fresho Potato, 2 kg", "price": 59}
		]
	}`
	_, err := db.Exec(`INSERT INTO app_state (name, data) VALUES (?, ?)`, "app-storage", oldBlob)
	require.NoError(t, err)

	s, err := New(NewSQLitePersister(db))
	require.NoError(t, err)

	cart := s.Cart()
	require.Len(t, cart, 2)
	assert.Equal(t, 1, cart[0].Quantity)
	assert.Equal(t, 1, cart[1].Quantity)
	assert.Equal(t, 2, s.TotalItems())
}

func TestSQLitePersister_LoadCorruptBlob(t *testing.T) {
	db := openTestDB(t)
	_, err := db.Exec(`INSERT INTO app_state (name, data) VALUES (?, ?)`, "app-storage", "{broken")
	require.NoError(t, err)

	_, err = NewSQLitePersister(db).Load()
	assert.Error(t, err)
}
