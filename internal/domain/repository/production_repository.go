package repository

import "github.com/laabuela/areperia-api/internal/domain/entity"

// ProductionRepository define el puerto de persistencia para Production.
type ProductionRepository interface {
	Create(production *entity.Production) error
	GetByID(id string) (*entity.Production, error)
	List(limit int) ([]*entity.Production, error)
	Delete(id string) error
}

// SaleRepository define el puerto de persistencia para Sale.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	List(limit int) ([]*entity.Sale, error)
	Delete(id string) error
}
