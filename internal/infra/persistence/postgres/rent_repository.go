package postgres

import (
	"context"
	"time"

	"licensing/internal/domain/entity"
	domainerrors "licensing/internal/domain/errors"
	"licensing/internal/domain/repository"
	"licensing/internal/errors"
	"licensing/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// rentRepository implements the repository.RentRepository interface.
type rentRepository struct {
	db *gorm.DB
}

// NewRentRepository is the constructor for rentRepository.
func NewRentRepository(db *gorm.DB) repository.RentRepository {
	return &rentRepository{
		db: db,
	}
}

// FindOrCreateRent inserts rent unless (business, month) exists, and returns the stored row.
func (repo *rentRepository) FindOrCreateRent(ctx context.Context, rent *entity.Rent) (*entity.Rent, error) {
	if rent.ID == uuid.Nil {
		rent.ID = uuid.New()
	}
	rentM := fromRentDomain(rent)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "business_id"}, {Name: "month"}},
			DoNothing: true,
		}).
		Create(rentM)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to create rent")
	}

	if result.RowsAffected == 1 {
		return toRentDomain(rentM), nil
	}

	return repo.FindRent(ctx, rent.BusinessID, rent.Month)
}

// FindRent returns the rent for a business month.
func (repo *rentRepository) FindRent(ctx context.Context, businessID uuid.UUID, month time.Time) (*entity.Rent, error) {
	return findRent(repo.db.WithContext(ctx).
		Where("business_id = ? AND month = ?", businessID, month))
}

// FindLatestRent returns the rent with the latest month for a business.
func (repo *rentRepository) FindLatestRent(ctx context.Context, businessID uuid.UUID) (*entity.Rent, error) {
	return findRent(repo.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("month DESC"))
}

// FindRentByReference finds the rent whose order reference or transaction id equals reference.
func (repo *rentRepository) FindRentByReference(ctx context.Context, businessID uuid.UUID, reference string) (*entity.Rent, error) {
	if reference == "" {
		return nil, repository.ErrRentNotFound
	}

	return findRent(repo.db.WithContext(ctx).
		Where("business_id = ? AND (order_reference = ? OR transaction_id = ?)", businessID, reference, reference).
		Order("month DESC"))
}

func findRent(query *gorm.DB) (*entity.Rent, error) {
	var rentM model.RentModel

	if err := query.First(&rentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRentNotFound
		}

		return nil, errors.Wrap(err, "failed to find rent")
	}

	return toRentDomain(&rentM), nil
}

// ListRents returns up to limit rents of a business, month descending.
func (repo *rentRepository) ListRents(ctx context.Context, businessID uuid.UUID, limit int) ([]*entity.Rent, error) {
	return listRents(repo.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("month DESC").
		Limit(limit))
}

// ListRentsBetween returns rents of a business with month in [from, to).
func (repo *rentRepository) ListRentsBetween(ctx context.Context, businessID uuid.UUID, from, to time.Time) ([]*entity.Rent, error) {
	return listRents(repo.db.WithContext(ctx).
		Where("business_id = ? AND month >= ? AND month < ?", businessID, from, to).
		Order("month ASC"))
}

func listRents(query *gorm.DB) ([]*entity.Rent, error) {
	var rentModels []*model.RentModel

	if err := query.Find(&rentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list rents")
	}

	rents := make([]*entity.Rent, 0, len(rentModels))
	for _, rentM := range rentModels {
		rents = append(rents, toRentDomain(rentM))
	}

	return rents, nil
}

// SetRentReference stores the polling key while the rent is unpaid.
func (repo *rentRepository) SetRentReference(ctx context.Context, id uuid.UUID, ref repository.PaymentReference) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RentModel{}).
		Where("id = ? AND status <> ?", id, string(entity.RentStatusPaid)).
		Updates(referenceColumns(ref))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set rent reference")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRentNotFound
	}

	return nil
}

// ClearRentTransaction removes a failed mobile transaction id.
func (repo *rentRepository) ClearRentTransaction(ctx context.Context, id uuid.UUID, transactionID string) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.RentModel{}).
		Where("id = ? AND transaction_id = ? AND status <> ?", id, transactionID, string(entity.RentStatusPaid)).
		Update("transaction_id", "").Error; err != nil {
		return errors.Wrap(err, "failed to clear rent transaction")
	}

	return nil
}

// MarkRentPaid sets status and payment date if the rent is not already paid.
func (repo *rentRepository) MarkRentPaid(ctx context.Context, id uuid.UUID, paidAt time.Time) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.RentModel{}).
		Where("id = ? AND status <> ?", id, string(entity.RentStatusPaid)).
		Updates(map[string]any{
			"status":       string(entity.RentStatusPaid),
			"payment_date": paidAt,
		})

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to mark rent paid")
	}

	return result.RowsAffected == 1, nil
}

// MarkRentOverdue moves a pending rent to overdue. Rows already settled are left alone.
func (repo *rentRepository) MarkRentOverdue(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.RentModel{}).
		Where("id = ? AND status = ?", id, string(entity.RentStatusPending)).
		Update("status", string(entity.RentStatusOverdue)).Error; err != nil {
		return errors.Wrap(err, "failed to mark rent overdue")
	}

	return nil
}

// SumPaidRents totals amount over paid rents, restricted to payment_date >= since when non-nil.
func (repo *rentRepository) SumPaidRents(ctx context.Context, since *time.Time) (decimal.Decimal, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.RentModel{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("status = ?", string(entity.RentStatusPaid))
	if since != nil {
		query = query.Where("payment_date >= ?", *since)
	}

	var total decimal.Decimal
	if err := query.Row().Scan(&total); err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to sum paid rents")
	}

	return total, nil
}

// --- Mapper Functions ---

func toRentDomain(data *model.RentModel) *entity.Rent {
	if data == nil {
		return nil
	}

	return &entity.Rent{
		ID:             data.ID,
		BusinessID:     data.BusinessID,
		OwnerID:        data.OwnerID,
		Amount:         data.Amount,
		Month:          data.Month.UTC(),
		Status:         entity.RentStatus(data.Status),
		PaymentDate:    data.PaymentDate,
		OrderReference: data.OrderReference,
		TransactionID:  data.TransactionID,
		PaymentMethod:  entity.PaymentMethod(data.PaymentMethod),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromRentDomain(data *entity.Rent) *model.RentModel {
	if data == nil {
		return nil
	}

	return &model.RentModel{
		ID:             data.ID,
		BusinessID:     data.BusinessID,
		OwnerID:        data.OwnerID,
		Amount:         data.Amount,
		Month:          data.Month,
		Status:         string(data.Status),
		PaymentDate:    data.PaymentDate,
		OrderReference: data.OrderReference,
		TransactionID:  data.TransactionID,
		PaymentMethod:  string(data.PaymentMethod),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
