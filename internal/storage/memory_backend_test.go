package storage

import (
	"context"
	"testing"
	"time"

	"github.com/grachmannico95/wallet-import/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBackend_References(t *testing.T) {
	backend := NewMemoryBackend()
	ctx := context.Background()

	food := backend.AddCategory("user-1", "Comida", domain.KindExpense)
	backend.AddCategory("user-2", "Salario", domain.KindIncome)
	cash := backend.AddWallet("user-1", "Efectivo")

	categories, err := backend.FetchCategories(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, []domain.Category{food}, categories)
	assert.Len(t, food.ID, 36)

	wallets, err := backend.FetchWallets(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, []domain.Wallet{cash}, wallets)

	wallets, err = backend.FetchWallets(ctx, "user-3")
	require.NoError(t, err)
	assert.Empty(t, wallets)
}

func TestMemoryBackend_CreateTransaction(t *testing.T) {
	backend := NewMemoryBackend()
	ctx := context.Background()

	food := backend.AddCategory("user-1", "Comida", domain.KindExpense)
	cash := backend.AddWallet("user-1", "Efectivo")

	candidate := domain.Candidate{
		RowNumber:  2,
		Date:       "2024-07-15",
		Amount:     decimal.RequireFromString("12.50"),
		Kind:       domain.KindExpense,
		CategoryID: food.ID,
		WalletID:   cash.ID,
	}

	id, err := backend.CreateTransaction(ctx, "user-1", candidate)
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	txs := backend.Transactions("user-1")
	require.Len(t, txs, 1)
	assert.Equal(t, id, txs[0].ID)
	assert.Equal(t, candidate, txs[0].Candidate)
}

func TestMemoryBackend_CreateTransaction_UnknownReference(t *testing.T) {
	backend := NewMemoryBackend()
	ctx := context.Background()

	food := backend.AddCategory("user-1", "Comida", domain.KindExpense)
	otherWallet := backend.AddWallet("user-2", "Efectivo")

	_, err := backend.CreateTransaction(ctx, "user-1", domain.Candidate{CategoryID: food.ID, WalletID: otherWallet.ID})

	assert.ErrorIs(t, err, ErrUnknownReference)
	assert.Empty(t, backend.Transactions("user-1"))
}

func TestMemoryBackend_Notifications(t *testing.T) {
	backend := NewMemoryBackend()
	ctx := context.Background()

	older := time.Now().Add(-time.Hour)
	require.NoError(t, backend.AddNotification(ctx, domain.Notification{UserID: "user-1", Title: "first", CreatedAt: older}))
	require.NoError(t, backend.AddNotification(ctx, domain.Notification{UserID: "user-1", Title: "second"}))
	require.NoError(t, backend.AddNotification(ctx, domain.Notification{UserID: "user-2", Title: "other"}))

	list, err := backend.ListNotifications(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "second", list[0].Title)
	assert.Equal(t, "first", list[1].Title)
	assert.NotEmpty(t, list[0].ID)
}
