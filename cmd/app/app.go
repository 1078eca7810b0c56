package app

import (
	"fmt"

	"blogCPT/internal/config"
	"blogCPT/internal/database"
	"blogCPT/internal/repository"
	"blogCPT/internal/service"
)

// App connects the store, applies migrations and wires the service layer.
func App(cfg *config.Config) (database.MethodsDB, *repository.Repository, *service.Service, error) {
	db, err := database.ConnectDB(cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	repo := repository.NewRepository(db.DB)
	services := service.NewService(repo, cfg)

	return db, repo, services, nil
}
