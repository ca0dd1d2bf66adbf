package postgres

import (
	"context"

	"licensing/internal/domain/entity"
	domainerrors "licensing/internal/domain/errors"
	"licensing/internal/domain/repository"
	"licensing/internal/errors"
	"licensing/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const businessLocationConstraint = "businesses_location_key"

// businessRepository implements the repository.BusinessRepository interface.
type businessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository is the constructor for businessRepository.
func NewBusinessRepository(db *gorm.DB) repository.BusinessRepository {
	return &businessRepository{
		db: db,
	}
}

// CreateBusiness persists a new application.
func (repo *businessRepository) CreateBusiness(ctx context.Context, business *entity.Business) error {
	if business.ID == uuid.Nil {
		business.ID = uuid.New()
	}
	businessM := fromBusinessDomain(business)

	if err := repo.db.WithContext(ctx).Omit("Owner").Create(businessM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateApplication
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create business")
	}

	business.CreatedAt = businessM.CreatedAt
	business.UpdatedAt = businessM.UpdatedAt

	return nil
}

// FindBusinessByID retrieves an application by ID with its owner summary.
func (repo *businessRepository) FindBusinessByID(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	return repo.findBusiness(ctx, "businesses.id = ?", id)
}

// FindBusinessByOwner retrieves the single application of an owner.
func (repo *businessRepository) FindBusinessByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Business, error) {
	return repo.findBusiness(ctx, "businesses.owner_id = ?", ownerID)
}

func (repo *businessRepository) findBusiness(ctx context.Context, condition string, arg uuid.UUID) (*entity.Business, error) {
	var businessM model.BusinessModel

	if err := repo.db.WithContext(ctx).
		Preload("Owner").
		Where(condition, arg).
		First(&businessM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business")
	}

	return toBusinessDomain(&businessM), nil
}

// ListBusinesses returns applications with their owner summary, newest first.
func (repo *businessRepository) ListBusinesses(ctx context.Context, filter repository.BusinessFilter) ([]*entity.Business, error) {
	query := repo.db.WithContext(ctx).Preload("Owner")
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}

	var businessModels []*model.BusinessModel
	if err := query.Order("created_at DESC").Find(&businessModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list businesses")
	}

	businesses := make([]*entity.Business, 0, len(businessModels))
	for _, businessM := range businessModels {
		businesses = append(businesses, toBusinessDomain(businessM))
	}

	return businesses, nil
}

// UpdateApplication writes owner-editable fields and status.
func (repo *businessRepository) UpdateApplication(ctx context.Context, business *entity.Business) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BusinessModel{}).
		Where("id = ?", business.ID).
		Updates(map[string]any{
			"name":               business.Name,
			"justification_text": business.JustificationText,
			"status":             string(business.Status),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update business application")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBusinessNotFound
	}

	return nil
}

// UpdateStatus applies an admin decision. The rent fee column is only written when provided.
func (repo *businessRepository) UpdateStatus(ctx context.Context, update repository.BusinessStatusUpdate) error {
	values := map[string]any{
		"status":         string(update.Status),
		"admin_feedback": update.AdminFeedback,
	}
	if update.RentFee != nil {
		values["rent_fee"] = *update.RentFee
	}

	result := repo.db.WithContext(ctx).
		Model(&model.BusinessModel{}).
		Where("id = ?", update.ID).
		Updates(values)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update business status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBusinessNotFound
	}

	return nil
}

// AssignLocation sets the location name only if the business is approved and has none.
func (repo *businessRepository) AssignLocation(ctx context.Context, businessID uuid.UUID, locationName string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BusinessModel{}).
		Where("id = ? AND status = ? AND location IS NULL", businessID, string(entity.BusinessStatusApproved)).
		Update("location", locationName)

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) && violatesConstraint(result.Error, businessLocationConstraint) {
			return repository.ErrLocationUnavailable
		}

		return errors.Wrap(result.Error, "failed to assign location")
	}

	if result.RowsAffected == 0 {
		return repository.ErrLocationAlreadyAssigned
	}

	return nil
}

// --- Mapper Functions ---

func toBusinessDomain(data *model.BusinessModel) *entity.Business {
	if data == nil {
		return nil
	}

	return &entity.Business{
		ID:                data.ID,
		OwnerID:           data.OwnerID,
		Name:              data.Name,
		Location:          data.Location,
		JustificationText: data.JustificationText,
		Status:            entity.BusinessStatus(data.Status),
		AdminFeedback:     data.AdminFeedback,
		ContractFee:       data.ContractFee,
		RentFee:           data.RentFee,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
		Owner:             toUserSummary(data.Owner),
	}
}

func fromBusinessDomain(data *entity.Business) *model.BusinessModel {
	if data == nil {
		return nil
	}

	return &model.BusinessModel{
		ID:                data.ID,
		OwnerID:           data.OwnerID,
		Name:              data.Name,
		Location:          data.Location,
		JustificationText: data.JustificationText,
		Status:            string(data.Status),
		AdminFeedback:     data.AdminFeedback,
		ContractFee:       data.ContractFee,
		RentFee:           data.RentFee,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
