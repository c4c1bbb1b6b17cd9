package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"borequote/internal/core/id"
	"borequote/internal/core/types"
	"borequote/internal/infrastructure/storage"
	"borequote/internal/infrastructure/storage/memory"
)

func TestGet_DefaultsWhenUnset(t *testing.T) {
	svc := NewService(memory.New(), nil)

	stored, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Borwell Services", stored.BusinessCard.CompanyName)
	assert.Len(t, stored.DefaultItems, 6)
}

func TestGet_DefaultsWhenCorrupt(t *testing.T) {
	provider := memory.New()
	provider.SetRaw(storage.NamespaceSettings, []byte("###"))

	svc := NewService(provider, nil)
	stored, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Borwell Services", stored.BusinessCard.CompanyName)
}

func TestSave_OverwritesWholesale(t *testing.T) {
	svc := NewService(memory.New(), nil)
	ctx := context.Background()

	custom := Settings{
		BusinessCard: BusinessCard{
			CompanyName: "Shree Borewell Co",
			OwnerName:   "R. Patel",
			Phone:       "+91 90000 00000",
			Email:       "shree@example.com",
			Address:     "Anand, Gujarat",
		},
		DefaultItems: []ItemTemplate{
			{ID: id.New(), Name: "Casing ISO", PricePerUnit: types.NewMoney(450)},
		},
	}
	require.NoError(t, svc.Save(ctx, custom))

	stored, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Shree Borewell Co", stored.BusinessCard.CompanyName)
	require.Len(t, stored.DefaultItems, 1)

	// Saving again replaces the record entirely; no history, no merge.
	custom.DefaultItems = nil
	require.NoError(t, svc.Save(ctx, custom))
	stored, err = svc.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, stored.DefaultItems)
}

func TestPrefillItems(t *testing.T) {
	svc := NewService(memory.New(), nil)
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, Settings{
		DefaultItems: []ItemTemplate{
			{ID: id.New(), Name: `Boring 5"`, PricePerUnit: types.NewMoney(180)},
			{ID: id.New(), Name: "", PricePerUnit: types.NewMoney(100)}, // skipped: no name
			{ID: id.New(), Name: "Pata work", PricePerUnit: types.Zero()}, // skipped: zero price
			{ID: id.New(), Name: "Casing ISO", PricePerUnit: types.NewMoney(450)},
		},
	}))

	items, err := svc.PrefillItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, `Boring 5"`, items[0].Name)
	assert.Equal(t, "Casing ISO", items[1].Name)
	for _, it := range items {
		assert.False(t, id.IsNil(it.ID))
		assert.Equal(t, "1", it.Quantity.String())
	}
}
