package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	types "github.com/bloomhaus/floristry-backend/internal/domain"
	"github.com/bloomhaus/floristry-backend/internal/pkg/logger"
	"github.com/bloomhaus/floristry-backend/internal/utils"
)

type PostgresService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
	serviceLog := log.With("service", "PostgresService")

	postgresHost := utils.GetEnv("POSTGRES_HOST", "localhost", log)
	postgresPort := utils.GetEnv("POSTGRES_PORT", "5432", log)
	postgresUser := utils.GetEnv("POSTGRES_USER", "postgres", log)
	postgresPassword := utils.GetEnv("POSTGRES_PASSWORD", "", log)
	postgresName := utils.GetEnv("POSTGRES_NAME", "floristry", log)

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", postgresUser, postgresPassword, postgresHost, postgresPort, postgresName)

	serviceLog.Info("Connecting to Postgres...")
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		serviceLog.Error("Failed to connect to Postgres", "error", err)
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	if err := gdb.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
		serviceLog.Error("Failed to enable uuid-ossp extension", "error", err)
		return nil, fmt.Errorf("enable uuid-ossp extension: %w", err)
	}

	return &PostgresService{db: gdb, log: serviceLog}, nil
}

func (s *PostgresService) DB() *gorm.DB { return s.db }

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating postgres tables...")
	err := s.db.AutoMigrate(
		&types.Store{},
		&types.Admin{},
		&types.AdminToken{},
		&types.Product{},
		&types.CompositionEdge{},
	)
	if err != nil {
		s.log.Error("Auto migration failed for postgres tables", "error", err)
		return err
	}

	s.log.Info("Configuring foreign key relationships for postgres tables...")
	constraints := []struct {
		name string
		stmt string
	}{
		{
			name: "fk_admin_store_id",
			stmt: `ALTER TABLE "admin" ADD CONSTRAINT "fk_admin_store_id" FOREIGN KEY ("store_id") REFERENCES "store"("id") ON DELETE SET NULL`,
		},
		{
			name: "fk_admin_token_admin_id",
			stmt: `ALTER TABLE "admin_token" ADD CONSTRAINT "fk_admin_token_admin_id" FOREIGN KEY ("admin_id") REFERENCES "admin"("id") ON DELETE CASCADE`,
		},
		{
			name: "fk_product_store_id",
			stmt: `ALTER TABLE "product" ADD CONSTRAINT "fk_product_store_id" FOREIGN KEY ("store_id") REFERENCES "store"("id") ON DELETE CASCADE`,
		},
		{
			name: "fk_composition_edge_parent_id",
			stmt: `ALTER TABLE "composition_edge" ADD CONSTRAINT "fk_composition_edge_parent_id" FOREIGN KEY ("parent_id") REFERENCES "product"("id") ON DELETE CASCADE`,
		},
		{
			name: "fk_composition_edge_child_id",
			stmt: `ALTER TABLE "composition_edge" ADD CONSTRAINT "fk_composition_edge_child_id" FOREIGN KEY ("child_id") REFERENCES "product"("id") ON DELETE CASCADE`,
		},
	}
	for _, c := range constraints {
		var count int64
		if err := s.db.Raw(
			`SELECT COUNT(*) FROM information_schema.table_constraints WHERE constraint_name = ?`, c.name,
		).Scan(&count).Error; err != nil {
			s.log.Warn("Constraint check failed", "constraint", c.name, "error", err)
			continue
		}
		if count > 0 {
			continue
		}
		if err := s.db.Exec(c.stmt).Error; err != nil {
			s.log.Warn("Constraint creation failed", "constraint", c.name, "error", err)
		}
	}
	return nil
}
