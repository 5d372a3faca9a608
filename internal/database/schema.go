package database

import (
	"context"
	"database/sql"
)

// schema holds the idempotent DDL for the travel tables.  Foreign keys
// encode the ownership rules: deleting a customer cascades to its tickets,
// reservations and tours, while deleting a tour only clears the tour
// reference on its children (they survive as standalone records).
var schema = []string{
	`CREATE TABLE IF NOT EXISTS customers (
		dni             VARCHAR(20)  NOT NULL,
		username        VARCHAR(50)  NOT NULL,
		email           VARCHAR(120) NOT NULL,
		password_hash   VARCHAR(100) NOT NULL,
		credit_card     VARCHAR(20),
		phone_number    VARCHAR(12),
		total_flights   INT UNSIGNED NOT NULL DEFAULT 0,
		total_lodgings  INT UNSIGNED NOT NULL DEFAULT 0,
		total_tours     INT UNSIGNED NOT NULL DEFAULT 0,
		enabled         TINYINT(1)   NOT NULL DEFAULT 1,
		created_at      TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at      TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (dni),
		UNIQUE KEY uq_customers_username (username),
		UNIQUE KEY uq_customers_email (email)
	) ENGINE=InnoDB`,

	`CREATE TABLE IF NOT EXISTS roles (
		id   TINYINT UNSIGNED NOT NULL AUTO_INCREMENT,
		name VARCHAR(20) NOT NULL,
		PRIMARY KEY (id),
		UNIQUE KEY uq_roles_name (name)
	) ENGINE=InnoDB`,

	`CREATE TABLE IF NOT EXISTS customer_roles (
		customer_dni VARCHAR(20) NOT NULL,
		role_id      TINYINT UNSIGNED NOT NULL,
		PRIMARY KEY (customer_dni, role_id),
		CONSTRAINT fk_cr_customer FOREIGN KEY (customer_dni) REFERENCES customers(dni) ON DELETE CASCADE,
		CONSTRAINT fk_cr_role FOREIGN KEY (role_id) REFERENCES roles(id)
	) ENGINE=InnoDB`,

	`CREATE TABLE IF NOT EXISTS flights (
		id           BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		origin_name  VARCHAR(20) NOT NULL,
		destiny_name VARCHAR(20) NOT NULL,
		origin_lat   DOUBLE NOT NULL,
		origin_lng   DOUBLE NOT NULL,
		destiny_lat  DOUBLE NOT NULL,
		destiny_lng  DOUBLE NOT NULL,
		aero_line    VARCHAR(20) NOT NULL,
		price        DECIMAL(10,2) NOT NULL,
		PRIMARY KEY (id)
	) ENGINE=InnoDB`,

	`CREATE TABLE IF NOT EXISTS hotels (
		id      BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		name    VARCHAR(50) NOT NULL,
		address VARCHAR(50) NOT NULL,
		rating  INT NOT NULL,
		price   DECIMAL(10,2) NOT NULL,
		PRIMARY KEY (id)
	) ENGINE=InnoDB`,

	`CREATE TABLE IF NOT EXISTS tours (
		id           BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		customer_dni VARCHAR(20) NOT NULL,
		created_at   TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		CONSTRAINT fk_tours_customer FOREIGN KEY (customer_dni) REFERENCES customers(dni) ON DELETE CASCADE
	) ENGINE=InnoDB`,

	`CREATE TABLE IF NOT EXISTS tickets (
		id             CHAR(36) NOT NULL,
		customer_dni   VARCHAR(20) NOT NULL,
		fly_id         BIGINT UNSIGNED NOT NULL,
		tour_id        BIGINT UNSIGNED,
		price          DECIMAL(10,2) NOT NULL,
		purchase_date  DATE NOT NULL,
		departure_date DATE NOT NULL,
		arrival_date   DATE NOT NULL,
		PRIMARY KEY (id),
		CONSTRAINT fk_tickets_customer FOREIGN KEY (customer_dni) REFERENCES customers(dni) ON DELETE CASCADE,
		CONSTRAINT fk_tickets_fly FOREIGN KEY (fly_id) REFERENCES flights(id),
		CONSTRAINT fk_tickets_tour FOREIGN KEY (tour_id) REFERENCES tours(id) ON DELETE SET NULL
	) ENGINE=InnoDB`,

	`CREATE TABLE IF NOT EXISTS reservations (
		id           CHAR(36) NOT NULL,
		customer_dni VARCHAR(20) NOT NULL,
		hotel_id     BIGINT UNSIGNED NOT NULL,
		tour_id      BIGINT UNSIGNED,
		price        DECIMAL(10,2) NOT NULL,
		total_days   INT NOT NULL,
		reserved_at  DATETIME NOT NULL,
		date_start   DATE NOT NULL,
		date_end     DATE NOT NULL,
		PRIMARY KEY (id),
		CONSTRAINT fk_reservations_customer FOREIGN KEY (customer_dni) REFERENCES customers(dni) ON DELETE CASCADE,
		CONSTRAINT fk_reservations_hotel FOREIGN KEY (hotel_id) REFERENCES hotels(id),
		CONSTRAINT fk_reservations_tour FOREIGN KEY (tour_id) REFERENCES tours(id) ON DELETE SET NULL
	) ENGINE=InnoDB`,

	`INSERT IGNORE INTO roles (name) VALUES ('CUSTOMER'), ('ADMIN')`,
}

// EnsureSchema creates the travel tables when they do not exist and seeds
// the two known roles.  Statements run in order because of the foreign key
// dependencies.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
