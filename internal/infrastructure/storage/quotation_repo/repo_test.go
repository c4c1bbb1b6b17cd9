package quotation_repo

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"borequote/internal/core/apperror"
	"borequote/internal/core/id"
	"borequote/internal/core/types"
	"borequote/internal/domain/quotation"
	"borequote/internal/infrastructure/storage"
	"borequote/internal/infrastructure/storage/memory"
	"borequote/pkg/logger"
)

func record(number, customer string) *quotation.Quotation {
	return &quotation.Quotation{
		ID:              id.New(),
		QuotationNumber: number,
		CustomerName:    customer,
		Items: []quotation.Item{
			quotation.NewItem("Casing ISO", decimal.NewFromInt(1), types.NewMoney(450)),
		},
		Total: types.NewMoney(450),
	}
}

func TestUpsert_InsertAndReplace(t *testing.T) {
	repo := New(memory.New())
	ctx := context.Background()

	first := record("BQ260001", "UBHEL")
	second := record("BQ260002", "Patel Farm")
	require.NoError(t, repo.Upsert(ctx, first))
	require.NoError(t, repo.Upsert(ctx, second))

	// Replacing in place keeps position and leaves exactly one record per id.
	first.CustomerName = "UBHEL Village"
	require.NoError(t, repo.Upsert(ctx, first))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "UBHEL Village", list[0].CustomerName)
	assert.Equal(t, "Patel Farm", list[1].CustomerName)
}

func TestGet(t *testing.T) {
	repo := New(memory.New())
	ctx := context.Background()

	q := record("BQ260001", "UBHEL")
	require.NoError(t, repo.Upsert(ctx, q))

	got, err := repo.Get(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, q.QuotationNumber, got.QuotationNumber)
	assert.True(t, q.Total.Equal(got.Total))

	_, err = repo.Get(ctx, id.New())
	assert.True(t, apperror.IsNotFound(err))
}

func TestDelete(t *testing.T) {
	repo := New(memory.New())
	ctx := context.Background()

	q := record("BQ260001", "UBHEL")
	require.NoError(t, repo.Upsert(ctx, q))

	require.NoError(t, repo.Delete(ctx, q.ID))
	_, err := repo.Get(ctx, q.ID)
	assert.True(t, apperror.IsNotFound(err))

	// Deleting a nonexistent id is a no-op, not an error.
	require.NoError(t, repo.Delete(ctx, id.New()))
}

func TestList_EmptyStore(t *testing.T) {
	repo := New(memory.New())
	list, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestList_MalformedDataDegradesToEmpty(t *testing.T) {
	provider := memory.New()
	provider.SetRaw(storage.NamespaceQuotations, []byte("{not json"))

	repo := New(provider)
	list, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestList_MalformedDataWarnsThroughContextLogger(t *testing.T) {
	provider := memory.New()
	provider.SetRaw(storage.NamespaceQuotations, []byte("{not json"))

	core, observed := observer.New(zapcore.WarnLevel)
	ctx := logger.WithLogger(context.Background(),
		&logger.Logger{SugaredLogger: zap.New(core).Sugar()})

	list, err := New(provider).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Equal(t, 1, observed.FilterMessage("stored quotations unreadable, starting empty").Len())
}

func TestUpsert_PersistFailurePropagates(t *testing.T) {
	provider := memory.New()
	provider.StoreErr = assert.AnError

	repo := New(provider)
	err := repo.Upsert(context.Background(), record("BQ260001", "UBHEL"))
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeStorage, appErr.Code)
}

// Saving the same id twice keeps only the last version.
func TestUpsert_SameIdTwice(t *testing.T) {
	repo := New(memory.New())
	ctx := context.Background()

	q := record("BQ260001", "UBHEL")
	require.NoError(t, repo.Upsert(ctx, q))

	q.Items = []quotation.Item{
		quotation.NewItem(`Boring 5"`, decimal.NewFromInt(2), types.NewMoney(180)),
	}
	q.Total = quotation.GrandTotal(q.Items)
	require.NoError(t, repo.Upsert(ctx, q))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, `Boring 5"`, list[0].Items[0].Name)
	assert.Equal(t, "360.00", list[0].Total.StringFixed(2))
}
