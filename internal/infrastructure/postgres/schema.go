package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schemaDDL crea las tablas si no existen. Los saldos viven en materials y
// product_stock; el historial en los dos logs de movimientos.
var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS materials (
		id              UUID PRIMARY KEY,
		name            TEXT NOT NULL UNIQUE,
		unit            TEXT NOT NULL,
		price           NUMERIC(14,2) NOT NULL DEFAULT 0,
		stock_quantity  NUMERIC(14,3) NOT NULL DEFAULT 0,
		min_stock_level NUMERIC(14,3) NOT NULL DEFAULT 0,
		updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS stock_movements (
		id             UUID PRIMARY KEY,
		material_id    UUID NOT NULL REFERENCES materials(id),
		movement_type  TEXT NOT NULL,
		quantity       NUMERIC(14,3) NOT NULL,
		reference_type TEXT,
		reference_id   UUID,
		notes          TEXT,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_stock_movements_reference
		ON stock_movements (reference_type, reference_id)`,
	`CREATE TABLE IF NOT EXISTS product_stock (
		product_type    TEXT PRIMARY KEY,
		name            TEXT NOT NULL,
		unit            TEXT NOT NULL,
		price           NUMERIC(14,2) NOT NULL DEFAULT 0,
		stock_quantity  NUMERIC(14,3) NOT NULL DEFAULT 0,
		min_stock_level NUMERIC(14,3) NOT NULL DEFAULT 0,
		produced        BOOLEAN NOT NULL DEFAULT TRUE,
		updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS product_stock_movements (
		id             UUID PRIMARY KEY,
		product_type   TEXT NOT NULL REFERENCES product_stock(product_type),
		movement_type  TEXT NOT NULL,
		quantity       NUMERIC(14,3) NOT NULL,
		reference_type TEXT,
		reference_id   UUID,
		notes          TEXT,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_product_stock_movements_reference
		ON product_stock_movements (reference_type, reference_id)`,
	`CREATE TABLE IF NOT EXISTS production (
		id             UUID PRIMARY KEY,
		date           DATE NOT NULL,
		product_type   TEXT NOT NULL,
		quantity       NUMERIC(14,3) NOT NULL,
		materials_used JSONB,
		notes          TEXT,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS sales (
		id            UUID PRIMARY KEY,
		date          DATE NOT NULL,
		product_type  TEXT NOT NULL,
		quantity      NUMERIC(14,3) NOT NULL,
		unit_price    NUMERIC(14,2) NOT NULL,
		total_price   NUMERIC(14,2) NOT NULL,
		customer_name TEXT,
		notes         TEXT,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id             UUID PRIMARY KEY,
		order_date     DATE NOT NULL,
		delivery_date  DATE NOT NULL,
		delivery_type  TEXT NOT NULL,
		customer_name  TEXT NOT NULL,
		customer_phone TEXT NOT NULL,
		address        TEXT,
		items          JSONB NOT NULL,
		total_amount   NUMERIC(14,2) NOT NULL,
		payment_method TEXT NOT NULL,
		status         TEXT NOT NULL DEFAULT 'activa',
		notes          TEXT,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id            UUID PRIMARY KEY,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		name          TEXT NOT NULL,
		role          TEXT NOT NULL,
		status        TEXT NOT NULL DEFAULT 'active',
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// seedCatalog inserta el catálogo por defecto si las tablas están vacías:
// materias primas base de la arepería y los cuatro productos del negocio.
var seedCatalog = []string{
	`INSERT INTO materials (id, name, unit, price) VALUES
		(gen_random_uuid(), 'Harina de maíz', 'kg', 0),
		(gen_random_uuid(), 'Agua', 'lt', 0),
		(gen_random_uuid(), 'Sal', 'kg', 0),
		(gen_random_uuid(), 'Aceite', 'lt', 0),
		(gen_random_uuid(), 'Queso', 'kg', 0)
	ON CONFLICT (name) DO NOTHING`,
	`INSERT INTO product_stock (product_type, name, unit, price, produced) VALUES
		('arepa',      'Arepa',      'und', 0, TRUE),
		('empanada',   'Empanada',   'und', 0, TRUE),
		('bunuelo',    'Buñuelo',    'und', 0, FALSE),
		('almojabana', 'Almojábana', 'und', 0, FALSE)
	ON CONFLICT (product_type) DO NOTHING`,
}

// InitSchema crea tablas e índices si no existen y siembra el catálogo base.
// Se ejecuta al arrancar, igual que el esquema embebido del sistema original.
func InitSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, ddl := range schemaDDL {
		if _, err := pool.Exec(ctx, ddl); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	for _, seed := range seedCatalog {
		if _, err := pool.Exec(ctx, seed); err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
	}
	return nil
}
