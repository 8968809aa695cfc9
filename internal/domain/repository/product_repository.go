package repository

import "github.com/tu-usuario/inventario-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// La cantidad en inventario no vive aquí: ver StockRepository.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByCompanyAndName(companyID, name string) (*entity.Product, error)
	Update(product *entity.Product) error
	SetActive(id string, active bool) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
}
