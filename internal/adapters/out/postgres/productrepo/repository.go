package productrepo

import (
	"context"
	"errors"

	"effdel/internal/core/domain/model/product"
	"effdel/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Add saves a new product to the database.
func (r *GormProductRepository) Add(ctx context.Context, p *product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := fromDomain(p)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a product by ID.
func (r *GormProductRepository) Get(ctx context.Context, id string) (*product.Product, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("product ID")
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product id", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves the entire product catalog.
func (r *GormProductRepository) GetAll(ctx context.Context) ([]*product.Product, error) {
	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllBySubCategory retrieves all products in the given sub-category.
func (r *GormProductRepository) GetAllBySubCategory(ctx context.Context, subCategoryID string) ([]*product.Product, error) {
	if subCategoryID == "" {
		return nil, errs.NewValueIsRequiredError("sub-category ID")
	}

	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).
		Order("id").
		Find(&dtos, "sub_category_id = ?", subCategoryID).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// IncrementInventory atomically adds units to a product's inventory counter
// and returns the resulting count.
//
// The increment is a single upsert: the addition happens inside the database
// on the stored value, so concurrent arrivals for the same product serialize
// on the row and none of them can overwrite another's update. A product
// unseen so far is created with the arrived units as its inventory.
func (r *GormProductRepository) IncrementInventory(ctx context.Context, id string, units int) (int, error) {
	if id == "" {
		return 0, errs.NewValueIsRequiredError("product ID")
	}
	if units <= 0 {
		return 0, errs.NewValueIsInvalidError("units")
	}

	dto := ProductDTO{ID: id, CurrentInventory: units}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"current_inventory": gorm.Expr("products.current_inventory + ?", units),
			}),
		}).
		Create(&dto)
	if result.Error != nil {
		return 0, result.Error
	}

	var updated ProductDTO
	if err := r.db.WithContext(ctx).First(&updated, "id = ?", id).Error; err != nil {
		return 0, err
	}

	return updated.CurrentInventory, nil
}

func toDomainSlice(dtos []ProductDTO) ([]*product.Product, error) {
	products := make([]*product.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, nil
}
