// Package main provides a CLI tool for seeding the database with initial data.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"festa/internal/core/id"
	"festa/internal/infrastructure/storage/postgres"
	"festa/pkg/logger"
)

func main() {
	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	if os.Getenv("AUTO_MIGRATE") != "false" {
		if err := postgres.RunMigrations(dbURL); err != nil {
			log.Fatalw("failed to run migrations", "error", err)
		}
	}

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(dbURL))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	if err := seedAdminUser(ctx, pool, log); err != nil {
		log.Fatalw("failed to seed admin user", "error", err)
	}

	if err := seedSettings(ctx, pool, log); err != nil {
		log.Warnw("failed to seed settings", "error", err)
	}

	if os.Getenv("SEED_DEMO_DATA") == "true" {
		if err := seedDemoData(ctx, pool, log); err != nil {
			log.Fatalw("failed to seed demo data", "error", err)
		}
	}

	log.Info("seeding completed successfully")
}

func seedAdminUser(ctx context.Context, pool *postgres.Pool, log *logger.Logger) error {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@festa.local"
	}

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "Admin123!"
	}

	var existingID id.ID
	err := pool.Pool.QueryRow(ctx,
		`SELECT id FROM sys_users WHERE lower(email) = lower($1) AND deleted_at IS NULL`,
		adminEmail,
	).Scan(&existingID)
	if err == nil {
		log.Infow("admin user already exists", "email", adminEmail, "user_id", existingID)
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("check admin exists: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	userID := id.New()
	_, err = pool.Pool.Exec(ctx, `
		INSERT INTO sys_users (id, email, password_hash, display_name, role, is_active, version)
		VALUES ($1, $2, $3, 'Administrador', 'admin', true, 1)
	`, userID, adminEmail, string(passwordHash))
	if err != nil {
		return fmt.Errorf("insert admin user: %w", err)
	}

	log.Infow("admin user created", "email", adminEmail, "user_id", userID)
	return nil
}

func seedSettings(ctx context.Context, pool *postgres.Pool, log *logger.Logger) error {
	settings := map[string]string{
		"company_name":    "Festa Eventos Ltda",
		"company_tax_id":  "12.345.678/0001-90",
		"contract_footer": "Documento gerado eletronicamente.",
	}

	for key, value := range settings {
		_, err := pool.Pool.Exec(ctx, `
			INSERT INTO sys_settings (key, value, updated_by)
			VALUES ($1, $2, 'seed')
			ON CONFLICT (key) DO NOTHING
		`, key, value)
		if err != nil {
			log.Warnw("failed to seed setting", "key", key, "error", err)
		}
	}
	return nil
}

func seedDemoData(ctx context.Context, pool *postgres.Pool, log *logger.Logger) error {
	log.Info("seeding demo data...")

	// 1. Reference values (event categories, employee roles, skills)
	references := []struct {
		code     string
		name     string
		kind     string
		position int
	}{
		{"CAT-001", "Aniversário Infantil", "event_category", 1},
		{"CAT-002", "Casamento", "event_category", 2},
		{"CAT-003", "Festa Corporativa", "event_category", 3},
		{"ROLE-001", "Animador", "employee_role", 1},
		{"ROLE-002", "Recepcionista", "employee_role", 2},
		{"ROLE-003", "Motorista", "employee_role", 3},
		{"SKILL-001", "Pintura Facial", "skill", 1},
		{"SKILL-002", "Escultura de Balões", "skill", 2},
	}

	referenceIDs := make(map[string]id.ID)

	for _, r := range references {
		refID := id.New()
		commandTag, err := pool.Pool.Exec(ctx, `
			INSERT INTO cat_reference_values (id, code, name, kind, position, version, deletion_mark, attributes)
			VALUES ($1, $2, $3, $4, $5, 1, false, '{}')
			ON CONFLICT (code) WHERE deletion_mark = FALSE DO NOTHING
		`, refID, r.code, r.name, r.kind, r.position)
		if err != nil {
			log.Warnw("failed to seed reference value", "name", r.name, "error", err)
			continue
		}

		if commandTag.RowsAffected() == 0 {
			err = pool.Pool.QueryRow(ctx, `
				SELECT id FROM cat_reference_values WHERE code = $1 AND deletion_mark = FALSE
			`, r.code).Scan(&refID)
			if err != nil {
				log.Warnw("failed to fetch existing reference value", "code", r.code, "error", err)
				continue
			}
		}

		referenceIDs[r.code] = refID
	}

	// 2. Clients
	clients := []struct {
		code          string
		name          string
		kind          string
		taxID         string
		companyName   string
		contactPerson string
		phone         string
		city          string
	}{
		{"CLI-001", "Maria Souza", "individual", "123.456.789-09", "", "", "(11) 98765-4321", "São Paulo"},
		{"CLI-002", "Tech Brasil Ltda", "corporate", "11.222.333/0001-81", "Tech Brasil Tecnologia Ltda", "Carlos Lima", "(11) 3333-4444", "São Paulo"},
		{"CLI-003", "João Pereira", "individual", "987.654.321-00", "", "", "(21) 99876-5432", "Rio de Janeiro"},
	}

	for _, c := range clients {
		cliID := id.New()
		_, err := pool.Pool.Exec(ctx, `
			INSERT INTO cat_clients (
				id, code, name, kind, tax_id, company_name, contact_person,
				phone, city, state, version, deletion_mark, attributes
			)
			VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''), $8, $9, 'SP', 1, false, '{}')
			ON CONFLICT (code) WHERE deletion_mark = FALSE DO NOTHING
		`, cliID, c.code, c.name, c.kind, c.taxID, c.companyName, c.contactPerson, c.phone, c.city)
		if err != nil {
			log.Warnw("failed to seed client", "name", c.name, "error", err)
		}
	}

	// 3. Employees
	employees := []struct {
		code       string
		name       string
		roleCode   string
		phone      string
		hourlyRate string
	}{
		{"EMP-001", "Ana Clara Santos", "ROLE-001", "(11) 91111-2222", "45.00"},
		{"EMP-002", "Bruno Oliveira", "ROLE-001", "(11) 92222-3333", "40.00"},
		{"EMP-003", "Fernanda Costa", "ROLE-002", "(11) 93333-4444", "30.00"},
	}

	for _, e := range employees {
		empID := id.New()
		var roleIDValue any
		if roleID, ok := referenceIDs[e.roleCode]; ok {
			roleIDValue = roleID
		}
		_, err := pool.Pool.Exec(ctx, `
			INSERT INTO cat_employees (
				id, code, name, role_id, phone, hourly_rate, active,
				version, deletion_mark, attributes, skills
			)
			VALUES ($1, $2, $3, $4, $5, $6, true, 1, false, '{}', '{}')
			ON CONFLICT (code) WHERE deletion_mark = FALSE DO NOTHING
		`, empID, e.code, e.name, roleIDValue, e.phone, e.hourlyRate)
		if err != nil {
			log.Warnw("failed to seed employee", "name", e.name, "error", err)
		}
	}

	// 4. Inventory
	items := []struct {
		code          string
		name          string
		kind          string
		characterName string
		size          string
		quantity      int
		condition     string
	}{
		{"INV-001", "Fantasia Palhaço Alegre", "costume", "Palhaço Alegre", "M", 2, "good"},
		{"INV-002", "Fantasia Princesa Estrela", "costume", "Princesa Estrela", "P", 1, "new"},
		{"INV-003", "Cabeça de Mascote Urso", "part", "Urso Feliz", "", 1, "worn"},
		{"INV-004", "Máquina de Bolhas", "prop", "", "", 3, "good"},
	}

	for _, it := range items {
		itemID := id.New()
		_, err := pool.Pool.Exec(ctx, `
			INSERT INTO cat_inventory_items (
				id, code, name, kind, character_name, size, quantity, condition,
				version, deletion_mark, attributes
			)
			VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), $7, $8, 1, false, '{}')
			ON CONFLICT (code) WHERE deletion_mark = FALSE DO NOTHING
		`, itemID, it.code, it.name, it.kind, it.characterName, it.size, it.quantity, it.condition)
		if err != nil {
			log.Warnw("failed to seed inventory item", "name", it.name, "error", err)
		}
	}

	log.Info("demo data seeded successfully")
	return nil
}
