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

// contractRepository implements the repository.ContractRepository interface.
type contractRepository struct {
	db *gorm.DB
}

// NewContractRepository is the constructor for contractRepository.
func NewContractRepository(db *gorm.DB) repository.ContractRepository {
	return &contractRepository{
		db: db,
	}
}

// FindOrCreateContract inserts contract unless the business already has a live one.
// The partial unique index on contracts(business_id) keeps concurrent callers on one row.
func (repo *contractRepository) FindOrCreateContract(ctx context.Context, contract *entity.Contract) (*entity.Contract, error) {
	if contract.ID == uuid.Nil {
		contract.ID = uuid.New()
	}
	contractM := fromContractDomain(contract)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(contractM)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to create contract")
	}

	if result.RowsAffected == 1 {
		return toContractDomain(contractM), nil
	}

	var stored model.ContractModel
	if err := repo.db.WithContext(ctx).
		Where("business_id = ? AND status <> ?", contract.BusinessID, string(entity.ContractStatusExpired)).
		Order("created_at DESC").
		First(&stored).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContractNotFound
		}

		return nil, errors.Wrap(err, "failed to reload contract")
	}

	return toContractDomain(&stored), nil
}

// FindLatestContract returns the most recently created contract of a business.
func (repo *contractRepository) FindLatestContract(ctx context.Context, businessID uuid.UUID) (*entity.Contract, error) {
	return findContract(repo.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("created_at DESC"))
}

// FindPaidContract returns the paid contract of a business.
func (repo *contractRepository) FindPaidContract(ctx context.Context, businessID uuid.UUID) (*entity.Contract, error) {
	return findContract(repo.db.WithContext(ctx).
		Where("business_id = ? AND status = ?", businessID, string(entity.ContractStatusPaid)).
		Order("payment_date DESC"))
}

// FindContractByReference finds the contract whose order reference or transaction id equals reference.
func (repo *contractRepository) FindContractByReference(ctx context.Context, businessID uuid.UUID, reference string) (*entity.Contract, error) {
	if reference == "" {
		return nil, repository.ErrContractNotFound
	}

	return findContract(repo.db.WithContext(ctx).
		Where("business_id = ? AND (order_reference = ? OR transaction_id = ?)", businessID, reference, reference).
		Order("created_at DESC"))
}

func findContract(query *gorm.DB) (*entity.Contract, error) {
	var contractM model.ContractModel

	if err := query.First(&contractM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContractNotFound
		}

		return nil, errors.Wrap(err, "failed to find contract")
	}

	return toContractDomain(&contractM), nil
}

// SetContractReference stores the polling key while the contract is unpaid.
func (repo *contractRepository) SetContractReference(ctx context.Context, id uuid.UUID, ref repository.PaymentReference) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ContractModel{}).
		Where("id = ? AND status <> ?", id, string(entity.ContractStatusPaid)).
		Updates(referenceColumns(ref))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set contract reference")
	}

	if result.RowsAffected == 0 {
		return repository.ErrContractNotFound
	}

	return nil
}

// ClearContractTransaction removes a failed mobile transaction id.
func (repo *contractRepository) ClearContractTransaction(ctx context.Context, id uuid.UUID, transactionID string) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.ContractModel{}).
		Where("id = ? AND transaction_id = ? AND status <> ?", id, transactionID, string(entity.ContractStatusPaid)).
		Update("transaction_id", "").Error; err != nil {
		return errors.Wrap(err, "failed to clear contract transaction")
	}

	return nil
}

// MarkContractPaid stamps status, payment date and expiry exactly once.
func (repo *contractRepository) MarkContractPaid(ctx context.Context, id uuid.UUID, paidAt, expiry time.Time) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ContractModel{}).
		Where("id = ? AND status <> ?", id, string(entity.ContractStatusPaid)).
		Updates(map[string]any{
			"status":       string(entity.ContractStatusPaid),
			"payment_date": paidAt,
			"expiry":       expiry,
		})

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to mark contract paid")
	}

	return result.RowsAffected == 1, nil
}

// ListContractsExpiringBetween returns paid contracts with expiry in (from, to].
func (repo *contractRepository) ListContractsExpiringBetween(ctx context.Context, from, to time.Time) ([]*entity.Contract, error) {
	var contractModels []*model.ContractModel

	if err := repo.db.WithContext(ctx).
		Where("status = ? AND expiry > ? AND expiry <= ?", string(entity.ContractStatusPaid), from, to).
		Order("expiry ASC").
		Find(&contractModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list expiring contracts")
	}

	contracts := make([]*entity.Contract, 0, len(contractModels))
	for _, contractM := range contractModels {
		contracts = append(contracts, toContractDomain(contractM))
	}

	return contracts, nil
}

// SumPaidContracts totals amount over paid contracts.
func (repo *contractRepository) SumPaidContracts(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal

	row := repo.db.WithContext(ctx).
		Model(&model.ContractModel{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("status = ?", string(entity.ContractStatusPaid)).
		Row()
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to sum paid contracts")
	}

	return total, nil
}

// referenceColumns writes only the polling key of the chosen rail.
func referenceColumns(ref repository.PaymentReference) map[string]any {
	values := map[string]any{"payment_method": string(ref.Method)}
	if ref.OrderReference != "" {
		values["order_reference"] = ref.OrderReference
	}
	if ref.TransactionID != "" {
		values["transaction_id"] = ref.TransactionID
	}

	return values
}

// --- Mapper Functions ---

func toContractDomain(data *model.ContractModel) *entity.Contract {
	if data == nil {
		return nil
	}

	return &entity.Contract{
		ID:             data.ID,
		BusinessID:     data.BusinessID,
		OwnerID:        data.OwnerID,
		Status:         entity.ContractStatus(data.Status),
		Amount:         data.Amount,
		PaymentDate:    data.PaymentDate,
		Expiry:         data.Expiry,
		OrderReference: data.OrderReference,
		TransactionID:  data.TransactionID,
		PaymentMethod:  entity.PaymentMethod(data.PaymentMethod),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromContractDomain(data *entity.Contract) *model.ContractModel {
	if data == nil {
		return nil
	}

	return &model.ContractModel{
		ID:             data.ID,
		BusinessID:     data.BusinessID,
		OwnerID:        data.OwnerID,
		Status:         string(data.Status),
		Amount:         data.Amount,
		PaymentDate:    data.PaymentDate,
		Expiry:         data.Expiry,
		OrderReference: data.OrderReference,
		TransactionID:  data.TransactionID,
		PaymentMethod:  string(data.PaymentMethod),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
