package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/inventario-api/internal/application/dto"
	"github.com/tu-usuario/inventario-api/internal/domain"
	"github.com/tu-usuario/inventario-api/internal/domain/entity"
	"github.com/tu-usuario/inventario-api/internal/domain/repository"
)

// ProductUseCase casos de uso de productos. Valida las referencias cruzadas de
// tenant (la categoría debe pertenecer a la misma empresa) antes de persistir,
// sin tomar bloqueos. La cantidad en inventario no se toca desde aquí.
type ProductUseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, categoryRepo: categoryRepo}
}

// Create registra un producto; el nombre es único dentro de la empresa y la
// categoría debe pertenecer a la misma empresa (falla rápido con ErrTenantMismatch).
func (uc *ProductUseCase) Create(companyID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := uc.checkCategory(companyID, in.CategoryID); err != nil {
		return nil, err
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		CategoryID:  in.CategoryID,
		Name:        in.Name,
		UnitMeasure: in.UnitMeasure,
		MinStock:    in.MinStock,
		Cost:        in.Cost,
		SalePrice:   in.SalePrice,
		Discount:    in.Discount,
		Supplier:    in.Supplier,
		Batch:       in.Batch,
		ExpiresAt:   in.ExpiresAt,
		ExtraFields: in.ExtraFields,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID devuelve un producto de la empresa; cross-tenant responde not found.
func (uc *ProductUseCase) GetByID(companyID, id string) (*dto.ProductResponse, error) {
	product, err := uc.getOwned(companyID, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update actualiza campos del producto. Si cambia la categoría se revalida la
// pertenencia a la empresa.
func (uc *ProductUseCase) Update(companyID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.getOwned(companyID, id)
	if err != nil {
		return nil, err
	}
	if in.CategoryID != nil && *in.CategoryID != product.CategoryID {
		if err := uc.checkCategory(companyID, *in.CategoryID); err != nil {
			return nil, err
		}
		product.CategoryID = *in.CategoryID
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.UnitMeasure != nil {
		product.UnitMeasure = *in.UnitMeasure
	}
	if in.MinStock != nil {
		product.MinStock = *in.MinStock
	}
	if in.Cost != nil {
		product.Cost = *in.Cost
	}
	if in.SalePrice != nil {
		product.SalePrice = *in.SalePrice
	}
	if in.Discount != nil {
		product.Discount = *in.Discount
	}
	if in.Supplier != nil {
		product.Supplier = *in.Supplier
	}
	if in.Batch != nil {
		product.Batch = *in.Batch
	}
	if in.ExpiresAt != nil {
		product.ExpiresAt = in.ExpiresAt
	}
	if in.ExtraFields != nil {
		product.ExtraFields = in.ExtraFields
	}
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// SetActive activa o desactiva un producto.
func (uc *ProductUseCase) SetActive(companyID, id string, active bool) (*dto.ProductResponse, error) {
	product, err := uc.getOwned(companyID, id)
	if err != nil {
		return nil, err
	}
	if err := uc.productRepo.SetActive(id, active); err != nil {
		return nil, err
	}
	product.IsActive = active
	return toProductResponse(product), nil
}

// List lista productos de la empresa.
func (uc *ProductUseCase) List(companyID string, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	products, err := uc.productRepo.ListByCompany(companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina un producto de la empresa.
func (uc *ProductUseCase) Delete(companyID, id string) error {
	if _, err := uc.getOwned(companyID, id); err != nil {
		return err
	}
	return uc.productRepo.Delete(id)
}

func (uc *ProductUseCase) getOwned(companyID, id string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

func (uc *ProductUseCase) checkCategory(companyID, categoryID string) error {
	category, err := uc.categoryRepo.GetByID(categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	if category.CompanyID != companyID {
		return domain.ErrTenantMismatch
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		CompanyID:   p.CompanyID,
		CategoryID:  p.CategoryID,
		Name:        p.Name,
		UnitMeasure: p.UnitMeasure,
		MinStock:    p.MinStock,
		Cost:        p.Cost,
		SalePrice:   p.SalePrice,
		Discount:    p.Discount,
		Supplier:    p.Supplier,
		Batch:       p.Batch,
		ExpiresAt:   p.ExpiresAt,
		ExtraFields: p.ExtraFields,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
