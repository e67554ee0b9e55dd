package manager

import (
	"context"

	"user-management-api/internal/http/api"
	"user-management-api/internal/models"
	"user-management-api/internal/service"

	"github.com/google/uuid"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=ManagerLister
type ManagerLister interface {
	List(ctx context.Context) ([]*models.Manager, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=ManagerSeeder
type ManagerSeeder interface {
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, manager *models.Manager) error
}

// defaultManagers are inserted into an empty managers table on startup.
var defaultManagers = []models.Manager{
	{Name: "Aarav Sharma", IsActive: true},
	{Name: "Priya Nair", IsActive: true},
	{Name: "Vikram Rao", IsActive: false},
}

type ManagerService struct {
	trm           service.TransactionManager
	managerLister ManagerLister
	managerSeeder ManagerSeeder
}

func NewManagerService(
	trm service.TransactionManager,
	managerLister ManagerLister,
	managerSeeder ManagerSeeder,
) *ManagerService {
	return &ManagerService{
		trm:           trm,
		managerLister: managerLister,
		managerSeeder: managerSeeder,
	}
}

// List returns every manager, active or not.
func (s *ManagerService) List(ctx context.Context) ([]api.ManagerSchema, error) {
	managers, err := s.managerLister.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]api.ManagerSchema, 0, len(managers))
	for _, m := range managers {
		resp = append(resp, api.ManagerSchema{
			ManagerID: m.ID,
			Name:      m.Name,
			IsActive:  m.IsActive,
		})
	}

	return resp, nil
}

// SeedDefaults fills an empty managers table and reports how many rows it wrote.
func (s *ManagerService) SeedDefaults(ctx context.Context) (int, error) {
	seeded := 0

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		n, err := s.managerSeeder.Count(ctx)
		if err != nil {
			return err
		}
		if n > 0 {
			return nil
		}

		for _, m := range defaultManagers {
			manager := &models.Manager{
				ID:       uuid.NewString(),
				Name:     m.Name,
				IsActive: m.IsActive,
			}
			if err := s.managerSeeder.Create(ctx, manager); err != nil {
				return err
			}
			seeded++
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return seeded, nil
}
