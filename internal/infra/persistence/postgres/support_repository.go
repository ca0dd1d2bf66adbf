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
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ticketRepository implements the repository.TicketRepository interface.
type ticketRepository struct {
	db *gorm.DB
}

// NewTicketRepository is the constructor for ticketRepository.
func NewTicketRepository(db *gorm.DB) repository.TicketRepository {
	return &ticketRepository{
		db: db,
	}
}

// CreateTicket persists a new ticket.
func (repo *ticketRepository) CreateTicket(ctx context.Context, ticket *entity.Ticket) error {
	if ticket.ID == uuid.Nil {
		ticket.ID = uuid.New()
	}
	ticketM := fromTicketDomain(ticket)

	if err := repo.db.WithContext(ctx).Omit("User").Create(ticketM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create ticket")
	}

	ticket.CreatedAt = ticketM.CreatedAt
	ticket.UpdatedAt = ticketM.UpdatedAt

	return nil
}

// FindTicketByID retrieves a ticket by ID.
func (repo *ticketRepository) FindTicketByID(ctx context.Context, id uuid.UUID) (*entity.Ticket, error) {
	var ticketM model.TicketModel

	if err := repo.db.WithContext(ctx).
		Preload("User").
		Where("id = ?", id).
		First(&ticketM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTicketNotFound
		}

		return nil, errors.Wrap(err, "failed to find ticket")
	}

	return toTicketDomain(&ticketM), nil
}

// ListTickets returns tickets with their author, newest first, optionally filtered by status.
func (repo *ticketRepository) ListTickets(ctx context.Context, status *entity.TicketStatus) ([]*entity.Ticket, error) {
	query := repo.db.WithContext(ctx).Preload("User")
	if status != nil {
		query = query.Where("status = ?", string(*status))
	}

	return listTickets(query)
}

// ListTicketsByUser returns the tickets raised by a user, newest first.
func (repo *ticketRepository) ListTicketsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Ticket, error) {
	return listTickets(repo.db.WithContext(ctx).Where("user_id = ?", userID))
}

func listTickets(query *gorm.DB) ([]*entity.Ticket, error) {
	var ticketModels []*model.TicketModel

	if err := query.Order("created_at DESC").Find(&ticketModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tickets")
	}

	tickets := make([]*entity.Ticket, 0, len(ticketModels))
	for _, ticketM := range ticketModels {
		tickets = append(tickets, toTicketDomain(ticketM))
	}

	return tickets, nil
}

// UpdateTicketStatus writes status and resolution.
func (repo *ticketRepository) UpdateTicketStatus(ctx context.Context, ticket *entity.Ticket) error {
	values := resolutionColumns(ticket.Resolution)
	values["status"] = string(ticket.Status)

	result := repo.db.WithContext(ctx).
		Model(&model.TicketModel{}).
		Where("id = ?", ticket.ID).
		Updates(values)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update ticket status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTicketNotFound
	}

	return nil
}

// AssignTicket sets assigned_to once. Pending tickets move to in-progress;
// later statuses are kept so progression never goes backwards.
func (repo *ticketRepository) AssignTicket(ctx context.Context, id, assignee uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TicketModel{}).
		Where("id = ? AND (assigned_to IS NULL OR assigned_to = ?)", id, assignee).
		Updates(map[string]any{
			"assigned_to": assignee,
			"status": gorm.Expr("CASE WHEN status = ? THEN ? ELSE status END",
				string(entity.TicketStatusPending), string(entity.TicketStatusInProgress)),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to assign ticket")
	}

	if result.RowsAffected > 0 {
		return nil
	}

	if _, err := repo.FindTicketByID(ctx, id); err != nil {
		return err
	}

	return repository.ErrTicketAlreadyAssigned
}

// CountTicketsByStatus counts tickets in a status.
func (repo *ticketRepository) CountTicketsByStatus(ctx context.Context, status entity.TicketStatus) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.TicketModel{}).
		Where("status = ?", string(status)).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count tickets")
	}

	return count, nil
}

// userReportRepository implements the repository.UserReportRepository interface.
type userReportRepository struct {
	db *gorm.DB
}

// NewUserReportRepository is the constructor for userReportRepository.
func NewUserReportRepository(db *gorm.DB) repository.UserReportRepository {
	return &userReportRepository{
		db: db,
	}
}

// CreateReport persists a new report.
func (repo *userReportRepository) CreateReport(ctx context.Context, report *entity.UserReport) error {
	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	reportM := fromReportDomain(report)

	if err := repo.db.WithContext(ctx).Omit("Reporter", "ReportedUser").Create(reportM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create report")
	}

	report.CreatedAt = reportM.CreatedAt
	report.UpdatedAt = reportM.UpdatedAt

	return nil
}

// FindReportByID retrieves a report by ID.
func (repo *userReportRepository) FindReportByID(ctx context.Context, id uuid.UUID) (*entity.UserReport, error) {
	var reportM model.UserReportModel

	if err := repo.db.WithContext(ctx).
		Preload("Reporter").
		Preload("ReportedUser").
		Where("id = ?", id).
		First(&reportM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReportNotFound
		}

		return nil, errors.Wrap(err, "failed to find report")
	}

	return toReportDomain(&reportM), nil
}

// ListReports returns reports with reporter and reported user, newest first.
func (repo *userReportRepository) ListReports(ctx context.Context) ([]*entity.UserReport, error) {
	return listReports(repo.db.WithContext(ctx).Preload("Reporter").Preload("ReportedUser"))
}

// ListReportsByReporter returns reports filed by a user, newest first.
func (repo *userReportRepository) ListReportsByReporter(ctx context.Context, reporterID uuid.UUID) ([]*entity.UserReport, error) {
	return listReports(repo.db.WithContext(ctx).Preload("ReportedUser").Where("reporter_id = ?", reporterID))
}

func listReports(query *gorm.DB) ([]*entity.UserReport, error) {
	var reportModels []*model.UserReportModel

	if err := query.Order("created_at DESC").Find(&reportModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reports")
	}

	reports := make([]*entity.UserReport, 0, len(reportModels))
	for _, reportM := range reportModels {
		reports = append(reports, toReportDomain(reportM))
	}

	return reports, nil
}

// UpdateReportStatus writes status and resolution.
func (repo *userReportRepository) UpdateReportStatus(ctx context.Context, report *entity.UserReport) error {
	values := resolutionColumns(report.Resolution)
	values["status"] = string(report.Status)

	result := repo.db.WithContext(ctx).
		Model(&model.UserReportModel{}).
		Where("id = ?", report.ID).
		Updates(values)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update report status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReportNotFound
	}

	return nil
}

// resolutionColumns flattens a resolution; nil clears all three columns.
func resolutionColumns(resolution *entity.Resolution) map[string]any {
	if resolution == nil {
		return map[string]any{
			"resolution_comment": nil,
			"resolved_at":        nil,
			"resolved_by":        nil,
		}
	}

	return map[string]any{
		"resolution_comment": resolution.Comment,
		"resolved_at":        resolution.ResolvedAt,
		"resolved_by":        resolution.ResolvedBy,
	}
}

// --- Mapper Functions ---

func toAttachments(values datatypes.JSONSlice[model.AttachmentValue]) []entity.Attachment {
	attachments := make([]entity.Attachment, 0, len(values))
	for _, value := range values {
		attachments = append(attachments, entity.Attachment(value))
	}

	return attachments
}

func fromAttachments(attachments []entity.Attachment) datatypes.JSONSlice[model.AttachmentValue] {
	values := make(datatypes.JSONSlice[model.AttachmentValue], 0, len(attachments))
	for _, attachment := range attachments {
		values = append(values, model.AttachmentValue(attachment))
	}

	return values
}

func toResolution(comment *string, resolvedAt *time.Time, resolvedBy *uuid.UUID) *entity.Resolution {
	if resolvedAt == nil || resolvedBy == nil {
		return nil
	}

	resolution := &entity.Resolution{
		ResolvedAt: *resolvedAt,
		ResolvedBy: *resolvedBy,
	}
	if comment != nil {
		resolution.Comment = *comment
	}

	return resolution
}

func fromResolution(resolution *entity.Resolution) (comment *string, resolvedAt *time.Time, resolvedBy *uuid.UUID) {
	if resolution == nil {
		return nil, nil, nil
	}

	return &resolution.Comment, timePtr(resolution.ResolvedAt), &resolution.ResolvedBy
}

func toTicketDomain(data *model.TicketModel) *entity.Ticket {
	if data == nil {
		return nil
	}

	return &entity.Ticket{
		ID:          data.ID,
		UserID:      data.UserID,
		Subject:     data.Subject,
		Description: data.Description,
		Attachments: toAttachments(data.Attachments),
		Status:      entity.TicketStatus(data.Status),
		AssignedTo:  data.AssignedTo,
		Resolution:  toResolution(data.ResolutionComment, data.ResolvedAt, data.ResolvedBy),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
		User:        toUserSummary(data.User),
	}
}

func fromTicketDomain(data *entity.Ticket) *model.TicketModel {
	if data == nil {
		return nil
	}

	comment, resolvedAt, resolvedBy := fromResolution(data.Resolution)

	return &model.TicketModel{
		ID:                data.ID,
		UserID:            data.UserID,
		Subject:           data.Subject,
		Description:       data.Description,
		Attachments:       fromAttachments(data.Attachments),
		Status:            string(data.Status),
		AssignedTo:        data.AssignedTo,
		ResolutionComment: comment,
		ResolvedAt:        resolvedAt,
		ResolvedBy:        resolvedBy,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func toReportDomain(data *model.UserReportModel) *entity.UserReport {
	if data == nil {
		return nil
	}

	return &entity.UserReport{
		ID:             data.ID,
		ReporterID:     data.ReporterID,
		ReportedUserID: data.ReportedUserID,
		Subject:        data.Subject,
		Description:    data.Description,
		Attachments:    toAttachments(data.Attachments),
		Status:         entity.ReportStatus(data.Status),
		Resolution:     toResolution(data.ResolutionComment, data.ResolvedAt, data.ResolvedBy),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
		Reporter:       toUserSummary(data.Reporter),
		ReportedUser:   toUserSummary(data.ReportedUser),
	}
}

func fromReportDomain(data *entity.UserReport) *model.UserReportModel {
	if data == nil {
		return nil
	}

	comment, resolvedAt, resolvedBy := fromResolution(data.Resolution)

	return &model.UserReportModel{
		ID:                data.ID,
		ReporterID:        data.ReporterID,
		ReportedUserID:    data.ReportedUserID,
		Subject:           data.Subject,
		Description:       data.Description,
		Attachments:       fromAttachments(data.Attachments),
		Status:            string(data.Status),
		ResolutionComment: comment,
		ResolvedAt:        resolvedAt,
		ResolvedBy:        resolvedBy,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
