package postgres

import (
	"context"
	"testing"
	"time"

	"licensing/internal/domain/entity"
	"licensing/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContractRepository_MarkContractPaid(t *testing.T) {
	paidAt := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	expiry := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{name: "first check stamps the contract", affected: 1, want: true},
		{name: "already paid is left untouched", affected: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewContractRepository(db)

			mock.ExpectExec(`UPDATE "contracts" SET .*"status"=.* WHERE id = \$\d+ AND status <> \$\d+`).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			updated, err := repo.MarkContractPaid(context.Background(), uuid.New(), paidAt, expiry)

			require.NoError(t, err)
			assert.Equal(t, tt.want, updated)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestContractRepository_SumPaidContracts(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContractRepository(db)

	mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\) FROM "contracts" WHERE status = \$1`).
		WithArgs(string(entity.ContractStatusPaid)).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow("125.50"))

	total, err := repo.SumPaidContracts(context.Background())

	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("125.5").Equal(total))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContractRepository_FindContractByReference(t *testing.T) {
	businessID := uuid.New()

	t.Run("empty reference never queries", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewContractRepository(db)

		_, err := repo.FindContractByReference(context.Background(), businessID, "")

		assert.ErrorIs(t, err, repository.ErrContractNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("matches either polling key", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewContractRepository(db)
		contractID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "contracts" WHERE business_id = \$1 AND \(order_reference = \$2 OR transaction_id = \$3\)`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "business_id", "status", "amount", "transaction_id", "payment_method"}).
				AddRow(contractID.String(), businessID.String(), "pending", "50.00", "TRANS123", "mobile"))

		contract, err := repo.FindContractByReference(context.Background(), businessID, "TRANS123")

		require.NoError(t, err)
		assert.Equal(t, contractID, contract.ID)
		assert.Equal(t, entity.PaymentMethodMobile, contract.PaymentMethod)
		assert.True(t, decimal.NewFromInt(50).Equal(contract.Amount))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no row", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewContractRepository(db)

		mock.ExpectQuery(`SELECT \* FROM "contracts"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.FindContractByReference(context.Background(), businessID, "ORD-1")

		assert.ErrorIs(t, err, repository.ErrContractNotFound)
	})
}

func TestContractRepository_SetContractReference(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContractRepository(db)

	mock.ExpectExec(`UPDATE "contracts" SET .*"order_reference"=.*"payment_method"=`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetContractReference(context.Background(), uuid.New(), repository.PaymentReference{
		Method:         entity.PaymentMethodCard,
		OrderReference: "ORD-1",
	})

	assert.ErrorIs(t, err, repository.ErrContractNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReferenceColumns(t *testing.T) {
	card := referenceColumns(repository.PaymentReference{Method: entity.PaymentMethodCard, OrderReference: "ORD-1"})
	assert.Equal(t, map[string]any{"payment_method": "card", "order_reference": "ORD-1"}, card)

	mobile := referenceColumns(repository.PaymentReference{Method: entity.PaymentMethodMobile, TransactionID: "TRANS1"})
	assert.Equal(t, map[string]any{"payment_method": "mobile", "transaction_id": "TRANS1"}, mobile)
}

func TestRentRepository_SumPaidRents(t *testing.T) {
	since := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	t.Run("all time", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewRentRepository(db)

		mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\) FROM "rents" WHERE status = \$1$`).
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow("10000"))

		total, err := repo.SumPaidRents(context.Background(), nil)

		require.NoError(t, err)
		assert.Equal(t, "10000", total.String())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("since a date", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewRentRepository(db)

		mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\) FROM "rents" WHERE status = \$1 AND payment_date >= \$2`).
			WithArgs(string(entity.RentStatusPaid), since).
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow("5000"))

		total, err := repo.SumPaidRents(context.Background(), &since)

		require.NoError(t, err)
		assert.Equal(t, "5000", total.String())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRentRepository_ListRentsBetween(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRentRepository(db)
	businessID := uuid.New()
	from := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "rents" WHERE business_id = \$1 AND month >= \$2 AND month < \$3 ORDER BY month ASC`).
		WithArgs(businessID, from, to).
		WillReturnRows(sqlmock.NewRows([]string{"id", "business_id", "amount", "month", "status"}).
			AddRow(uuid.NewString(), businessID.String(), "5000.00", from, "paid").
			AddRow(uuid.NewString(), businessID.String(), "5000.00", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), "overdue"))

	rents, err := repo.ListRentsBetween(context.Background(), businessID, from, to)

	require.NoError(t, err)
	require.Len(t, rents, 2)
	assert.Equal(t, "2025-11", rents[0].Period())
	assert.Equal(t, entity.RentStatusOverdue, rents[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentRepository_MarkRentOverdue_OnlyTouchesPending(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRentRepository(db)

	mock.ExpectExec(`UPDATE "rents" SET .* WHERE id = \$\d+ AND status = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.MarkRentOverdue(context.Background(), uuid.New()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentRepository_MarkRentPaid(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRentRepository(db)

	mock.ExpectExec(`UPDATE "rents" SET .*"payment_date"=`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	updated, err := repo.MarkRentPaid(context.Background(), uuid.New(), time.Now())

	require.NoError(t, err)
	assert.False(t, updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContractRepository_FindOrCreateContract(t *testing.T) {
	businessID := uuid.New()

	t.Run("new contract is inserted", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewContractRepository(db)
		contractID := uuid.New()

		mock.ExpectQuery(`INSERT INTO "contracts" .* ON CONFLICT DO NOTHING RETURNING "id"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(contractID.String()))

		contract, err := repo.FindOrCreateContract(context.Background(), &entity.Contract{
			ID:         contractID,
			BusinessID: businessID,
			Status:     entity.ContractStatusPending,
			Amount:     decimal.NewFromInt(50),
		})

		require.NoError(t, err)
		assert.Equal(t, contractID, contract.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("conflict rereads the live contract", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewContractRepository(db)
		existingID := uuid.New()

		mock.ExpectQuery(`INSERT INTO "contracts" .* ON CONFLICT DO NOTHING RETURNING "id"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectQuery(`SELECT \* FROM "contracts" WHERE business_id = \$1 AND status <> \$2 ORDER BY created_at DESC`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "business_id", "status", "amount", "order_reference", "payment_method"}).
				AddRow(existingID.String(), businessID.String(), "pending", "50.00", "ORD-1", "card"))

		contract, err := repo.FindOrCreateContract(context.Background(), &entity.Contract{
			BusinessID: businessID,
			Status:     entity.ContractStatusPending,
			Amount:     decimal.NewFromInt(50),
		})

		require.NoError(t, err)
		assert.Equal(t, existingID, contract.ID)
		assert.Equal(t, "ORD-1", contract.OrderReference)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("conflict with no live row", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewContractRepository(db)

		mock.ExpectQuery(`INSERT INTO "contracts"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectQuery(`SELECT \* FROM "contracts"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.FindOrCreateContract(context.Background(), &entity.Contract{BusinessID: businessID})

		assert.ErrorIs(t, err, repository.ErrContractNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRentRepository_FindOrCreateRent(t *testing.T) {
	businessID := uuid.New()
	month := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("new month is inserted", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewRentRepository(db)
		rentID := uuid.New()

		mock.ExpectQuery(`INSERT INTO "rents" .* ON CONFLICT \("business_id","month"\) DO NOTHING RETURNING "id"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(rentID.String()))

		rent, err := repo.FindOrCreateRent(context.Background(), &entity.Rent{
			ID:         rentID,
			BusinessID: businessID,
			Month:      month,
			Amount:     decimal.NewFromInt(5000),
			Status:     entity.RentStatusPending,
		})

		require.NoError(t, err)
		assert.Equal(t, rentID, rent.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("conflict rereads the stored month", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewRentRepository(db)
		existingID := uuid.New()

		mock.ExpectQuery(`INSERT INTO "rents" .* ON CONFLICT \("business_id","month"\) DO NOTHING RETURNING "id"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectQuery(`SELECT \* FROM "rents" WHERE business_id = \$1 AND month = \$2`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "business_id", "amount", "month", "status", "transaction_id"}).
				AddRow(existingID.String(), businessID.String(), "5000.00", month, "pending", "TRANS9"))

		rent, err := repo.FindOrCreateRent(context.Background(), &entity.Rent{
			BusinessID: businessID,
			Month:      month,
			Amount:     decimal.NewFromInt(5000),
			Status:     entity.RentStatusPending,
		})

		require.NoError(t, err)
		assert.Equal(t, existingID, rent.ID)
		assert.Equal(t, "TRANS9", rent.TransactionID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
