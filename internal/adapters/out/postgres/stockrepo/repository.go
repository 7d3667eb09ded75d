package stockrepo

import (
	"context"
	"errors"

	"effdel/internal/core/domain/model/stock"
	"effdel/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRequestRepository implements RequestRepository using GORM.
type GormRequestRepository struct {
	db *gorm.DB
}

// NewGormRequestRepository creates a new GORM product-request repository.
func NewGormRequestRepository(db *gorm.DB) *GormRequestRepository {
	return &GormRequestRepository{db: db}
}

// Add saves a new product request to the database.
func (r *GormRequestRepository) Add(ctx context.Context, request *stock.Request) error {
	if err := request.Validate(); err != nil {
		return err
	}

	dto := requestFromDomain(request)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing product request, matched by its request
// identifier.
func (r *GormRequestRepository) Update(ctx context.Context, request *stock.Request) error {
	if err := request.Validate(); err != nil {
		return err
	}

	dto := requestFromDomain(request)
	result := r.db.WithContext(ctx).
		Model(&RequestDTO{}).
		Where("request_id = ?", dto.RequestID).
		Select("ProductID", "RequestedUnits", "Status", "FulfilledUnits").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("request id", dto.RequestID)
	}

	return nil
}

// GetByRequestID retrieves a product request by its request identifier.
func (r *GormRequestRepository) GetByRequestID(ctx context.Context, requestID string) (*stock.Request, error) {
	if requestID == "" {
		return nil, errs.NewValueIsRequiredError("request ID")
	}

	var dto RequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "request_id = ?", requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("request id", requestID)
		}
		return nil, err
	}

	return requestToDomain(dto)
}

// GetAllByStatus retrieves all product requests in the given reconciliation
// status.
func (r *GormRequestRepository) GetAllByStatus(ctx context.Context, status stock.RequestStatus) ([]*stock.Request, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dtos []RequestDTO
	if err := r.db.WithContext(ctx).
		Order("request_id").
		Find(&dtos, "status = ?", int(status)).Error; err != nil {
		return nil, err
	}

	requests := make([]*stock.Request, 0, len(dtos))
	for _, dto := range dtos {
		request, err := requestToDomain(dto)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}

	return requests, nil
}

// GormAdditionLog implements AdditionLog using GORM.
// The log is append-only: the adapter exposes no update or delete.
type GormAdditionLog struct {
	db *gorm.DB
}

// NewGormAdditionLog creates a new GORM stock-addition log.
func NewGormAdditionLog(db *gorm.DB) *GormAdditionLog {
	return &GormAdditionLog{db: db}
}

// Append persists a new audit record.
func (l *GormAdditionLog) Append(ctx context.Context, addition stock.Addition) error {
	if err := addition.Validate(); err != nil {
		return err
	}

	dto := additionFromDomain(addition)
	return l.db.WithContext(ctx).Create(&dto).Error
}

// GetAllByProduct retrieves all audit records for a product, oldest first.
func (l *GormAdditionLog) GetAllByProduct(ctx context.Context, productID string) ([]stock.Addition, error) {
	if productID == "" {
		return nil, errs.NewValueIsRequiredError("product ID")
	}

	var dtos []AdditionDTO
	if err := l.db.WithContext(ctx).
		Order("id").
		Find(&dtos, "product_id = ?", productID).Error; err != nil {
		return nil, err
	}

	additions := make([]stock.Addition, 0, len(dtos))
	for _, dto := range dtos {
		addition, err := additionToDomain(dto)
		if err != nil {
			return nil, err
		}
		additions = append(additions, addition)
	}

	return additions, nil
}
