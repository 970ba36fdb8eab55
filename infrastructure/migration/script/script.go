package main

import (
	"database/sql"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"github.com/vfg2006/salon-manager-api/internal/config"
	"github.com/vfg2006/salon-manager-api/internal/usecases/authenticating"
)

const (
	adminPasswordLength = 16
	adminRoleID         = 1
)

var schemaStatements = []struct {
	name  string
	query string
}{
	{
		name: "roles",
		query: `CREATE TABLE IF NOT EXISTS roles (
			id INTEGER PRIMARY KEY,
			name VARCHAR(50) NOT NULL UNIQUE
		)`,
	},
	{
		name: "roles_seed",
		query: `INSERT INTO roles (id, name) VALUES
			(1, 'admin'),
			(2, 'manager'),
			(3, 'reception')
		ON CONFLICT (id) DO NOTHING`,
	},
	{
		name: "users",
		query: `CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			lastname VARCHAR(100) NOT NULL DEFAULT '',
			email VARCHAR(255) NOT NULL UNIQUE,
			password_hash VARCHAR(255) NOT NULL,
			active BOOLEAN NOT NULL DEFAULT TRUE,
			role_id INTEGER NOT NULL REFERENCES roles(id),
			avatar_url TEXT,
			last_login_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		name: "crm_clients",
		query: `CREATE TABLE IF NOT EXISTS crm_clients (
			id BIGINT PRIMARY KEY,
			name VARCHAR(255) NOT NULL DEFAULT '',
			phone VARCHAR(32) NOT NULL DEFAULT '',
			email VARCHAR(255) NOT NULL DEFAULT '',
			first_visit_date TIMESTAMPTZ,
			last_visit_date TIMESTAMPTZ,
			visit_count INTEGER,
			spent NUMERIC(14, 2),
			sold_amount NUMERIC(14, 2),
			avg_sum NUMERIC(14, 2),
			synced_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		name: "crm_records",
		query: `CREATE TABLE IF NOT EXISTS crm_records (
			id BIGINT PRIMARY KEY,
			client_id BIGINT,
			client_name VARCHAR(255) NOT NULL DEFAULT '',
			client_phone VARCHAR(32) NOT NULL DEFAULT '',
			staff_id BIGINT NOT NULL DEFAULT 0,
			staff_name VARCHAR(255) NOT NULL DEFAULT '',
			datetime TIMESTAMPTZ NOT NULL,
			attendance SMALLINT NOT NULL DEFAULT 0,
			confirmed BOOLEAN NOT NULL DEFAULT FALSE,
			deleted BOOLEAN NOT NULL DEFAULT FALSE,
			services JSONB NOT NULL DEFAULT '[]',
			synced_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		name:  "crm_records_datetime_idx",
		query: `CREATE INDEX IF NOT EXISTS crm_records_datetime_idx ON crm_records (datetime)`,
	},
	{
		name:  "crm_records_client_idx",
		query: `CREATE INDEX IF NOT EXISTS crm_records_client_idx ON crm_records (client_id)`,
	},
}

func setupLogger() {
	// Configura o logger para incluir data, hora e arquivo
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Iniciando script de migração...")
}

func createSchema(tx *sql.Tx) {
	log.Printf("Aplicando %d instruções de schema...", len(schemaStatements))
	startTime := time.Now()

	for i, stmt := range schemaStatements {
		if _, err := tx.Exec(stmt.query); err != nil {
			log.Fatalf("ERRO ao aplicar %s [%d/%d]: %v", stmt.name, i+1, len(schemaStatements), err)
		}
		log.Printf("Schema %s aplicado", stmt.name)
	}

	log.Printf("Schema aplicado em %v", time.Since(startTime))
}

// seedAdmin cria o primeiro administrador se ninguém ainda tiver esse papel.
// A senha gerada aparece só uma vez no log.
func seedAdmin(tx *sql.Tx, email string) {
	var count int
	if err := tx.QueryRow(`SELECT COUNT(*) FROM users WHERE role_id = $1`, adminRoleID).Scan(&count); err != nil {
		log.Fatalf("ERRO ao verificar administradores existentes: %v", err)
	}

	if count > 0 {
		log.Printf("Já existem %d administradores, seed ignorado", count)
		return
	}

	password, err := authenticating.GenerateStrongPassword(adminPasswordLength)
	if err != nil {
		log.Fatalf("ERRO ao gerar senha do administrador: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("ERRO ao gerar hash da senha: %v", err)
	}

	_, err = tx.Exec(
		`INSERT INTO users (name, lastname, email, password_hash, active, role_id) VALUES ($1, $2, $3, $4, TRUE, $5)`,
		"Admin", "", authenticating.NormalizeEmail(email), string(hash), adminRoleID,
	)
	if err != nil {
		log.Fatalf("ERRO ao inserir administrador: %v", err)
	}

	log.Printf("Administrador %s criado com a senha: %s", email, password)
}

func main() {
	setupLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("ERRO ao carregar configuração: %v", err)
	}

	log.Println("Conectando ao banco de dados...")

	db, err := sql.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		log.Fatalf("ERRO ao conectar ao banco de dados: %v", err)
	}
	defer db.Close()

	// Verificar conexão
	err = db.Ping()
	if err != nil {
		log.Fatalf("ERRO ao verificar conexão com o banco: %v", err)
	}
	log.Println("Conexão com o banco de dados estabelecida com sucesso")

	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@salon.local"
	}

	tx, err := db.Begin()
	if err != nil {
		log.Fatalf("ERRO ao iniciar transação: %v", err)
	}
	defer tx.Rollback()

	createSchema(tx)
	seedAdmin(tx, adminEmail)

	if err := tx.Commit(); err != nil {
		log.Fatalf("ERRO ao finalizar transação: %v", err)
	}

	log.Println("Migração concluída com sucesso")
}
