package usecase

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jdrojas/plomeria-pos/internal/application/dto"
	"github.com/jdrojas/plomeria-pos/internal/domain"
	"github.com/jdrojas/plomeria-pos/internal/domain/entity"
	"github.com/jdrojas/plomeria-pos/internal/domain/repository"
)

// SupplierUseCase gestiona los proveedores. Entidad independiente: no hay
// integridad referencial con compras.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create da de alta un proveedor. Si el request no trae id se genera un UUID.
func (uc *SupplierUseCase) Create(in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	id := in.SupplierID
	if id == "" {
		id = uuid.New().String()
	} else if existing, err := uc.repo.GetByID(id); err == nil && existing != nil {
		return nil, domain.ErrDuplicate
	}

	supplier := &entity.Supplier{
		SupplierID: id,
		Name:       in.Name,
		Address:    in.Address,
		Phone:      in.Phone,
		Email:      in.Email,
	}
	if err := uc.repo.Create(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// List devuelve todos los proveedores (vacío + ErrMissingFile en degradado).
func (uc *SupplierUseCase) List() ([]dto.SupplierResponse, error) {
	suppliers, err := uc.repo.List()
	if err != nil && !errors.Is(err, domain.ErrMissingFile) {
		return nil, fmt.Errorf("cargar proveedores: %w", err)
	}
	out := make([]dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, *toSupplierResponse(s))
	}
	return out, err
}

// GetByID obtiene un proveedor.
func (uc *SupplierUseCase) GetByID(id string) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// Update modifica los datos de contacto de un proveedor existente.
func (uc *SupplierUseCase) Update(id string, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	supplier.Name = in.Name
	supplier.Address = in.Address
	supplier.Phone = in.Phone
	supplier.Email = in.Email
	if err := uc.repo.Update(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		SupplierID: s.SupplierID,
		Name:       s.Name,
		Address:    s.Address,
		Phone:      s.Phone,
		Email:      s.Email,
	}
}
