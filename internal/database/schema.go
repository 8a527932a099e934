package database

import (
	"context"
	"database/sql"
	"time"
)

// migrations lists CREATE TABLE statements in foreign-key order.  Each
// statement is idempotent so Migrate can run on every startup.  The
// UNIQUE KEY on bookings (slot_id, venue_id, start_datetime) is the
// safety net behind the application-level overlap scan: when two
// identical reservations race past the scan, the second insert fails
// with a duplicate-key error and is reported as a conflict.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		user_id INT AUTO_INCREMENT PRIMARY KEY,
		user_email VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		first_name VARCHAR(100) NOT NULL,
		last_name VARCHAR(100) NULL,
		role VARCHAR(20) NOT NULL DEFAULT 'PLAYER',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS sports (
		sport_id INT AUTO_INCREMENT PRIMARY KEY,
		sport_name VARCHAR(100) NOT NULL UNIQUE,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		INDEX idx_sport_name (sport_name)
	)`,
	`CREATE TABLE IF NOT EXISTS venues (
		venue_id INT AUTO_INCREMENT PRIMARY KEY,
		owner_user_id INT NOT NULL,
		venue_name VARCHAR(255) NOT NULL,
		address VARCHAR(500) NOT NULL,
		contact_email VARCHAR(255) NULL,
		contact_phone VARCHAR(30) NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		CONSTRAINT fk_venue_owner FOREIGN KEY (owner_user_id)
			REFERENCES users(user_id)
			ON DELETE CASCADE ON UPDATE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS venue_sports (
		venue_sport_id INT AUTO_INCREMENT PRIMARY KEY,
		venue_id INT NOT NULL,
		sport_id INT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		CONSTRAINT fk_vs_venue FOREIGN KEY (venue_id)
			REFERENCES venues(venue_id)
			ON DELETE CASCADE ON UPDATE CASCADE,
		CONSTRAINT fk_vs_sport FOREIGN KEY (sport_id)
			REFERENCES sports(sport_id)
			ON DELETE CASCADE ON UPDATE CASCADE,
		UNIQUE KEY unique_venue_sport (venue_id, sport_id),
		INDEX idx_venue_id (venue_id),
		INDEX idx_sport_id (sport_id)
	)`,
	`CREATE TABLE IF NOT EXISTS slots (
		slot_id INT AUTO_INCREMENT PRIMARY KEY,
		venue_sport_id INT NOT NULL,
		start_time TIME NOT NULL,
		end_time TIME NOT NULL,
		price_per_slot DECIMAL(10,2) CHECK (price_per_slot >= 0),
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		CONSTRAINT fk_slot_vs FOREIGN KEY (venue_sport_id)
			REFERENCES venue_sports(venue_sport_id)
			ON DELETE CASCADE ON UPDATE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS games (
		game_id INT AUTO_INCREMENT PRIMARY KEY,
		sport_id INT NOT NULL,
		venue_id INT NOT NULL,
		start_datetime DATETIME NOT NULL,
		end_datetime DATETIME NOT NULL,
		host_user_id INT NOT NULL,
		price_per_hour DECIMAL(10,2) NOT NULL,
		status VARCHAR(45) DEFAULT 'active',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		CONSTRAINT fk_game_sport FOREIGN KEY (sport_id)
			REFERENCES sports(sport_id)
			ON DELETE CASCADE ON UPDATE CASCADE,
		CONSTRAINT fk_game_venue FOREIGN KEY (venue_id)
			REFERENCES venues(venue_id)
			ON DELETE CASCADE ON UPDATE CASCADE,
		CONSTRAINT fk_game_host FOREIGN KEY (host_user_id)
			REFERENCES users(user_id)
			ON DELETE CASCADE ON UPDATE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		booking_id INT AUTO_INCREMENT PRIMARY KEY,
		slot_id INT NULL,
		venue_id INT NOT NULL,
		venue_sport_id INT NOT NULL,
		user_id INT NOT NULL,
		game_id INT NOT NULL,
		start_datetime DATETIME NOT NULL,
		end_datetime DATETIME NOT NULL,
		total_price DECIMAL(10,2) CHECK (total_price >= 0),
		payment ENUM('unpaid', 'paid') DEFAULT 'unpaid',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		INDEX idx_booking_venue (venue_id),
		INDEX idx_booking_user (user_id),
		INDEX idx_booking_game (game_id),
		UNIQUE KEY unique_slot_venue_start (slot_id, venue_id, start_datetime),
		CONSTRAINT fk_booking_slot FOREIGN KEY (slot_id)
			REFERENCES slots(slot_id)
			ON DELETE SET NULL ON UPDATE CASCADE,
		CONSTRAINT fk_booking_venue FOREIGN KEY (venue_id)
			REFERENCES venues(venue_id)
			ON DELETE CASCADE ON UPDATE CASCADE,
		CONSTRAINT fk_booking_vs FOREIGN KEY (venue_sport_id)
			REFERENCES venue_sports(venue_sport_id)
			ON DELETE CASCADE ON UPDATE CASCADE,
		CONSTRAINT fk_booking_user FOREIGN KEY (user_id)
			REFERENCES users(user_id)
			ON DELETE CASCADE ON UPDATE CASCADE,
		CONSTRAINT fk_booking_game FOREIGN KEY (game_id)
			REFERENCES games(game_id)
			ON DELETE CASCADE ON UPDATE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS game_players (
		game_player_id INT AUTO_INCREMENT PRIMARY KEY,
		game_id INT NOT NULL,
		user_id INT NOT NULL,
		status ENUM('Pending','Approved','Rejected') DEFAULT 'Pending',
		joined_at TIMESTAMP NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE KEY unique_game_user (game_id, user_id),
		CONSTRAINT fk_gp_game FOREIGN KEY (game_id)
			REFERENCES games(game_id)
			ON DELETE CASCADE ON UPDATE CASCADE,
		CONSTRAINT fk_gp_user FOREIGN KEY (user_id)
			REFERENCES users(user_id)
			ON DELETE CASCADE ON UPDATE CASCADE
	)`,
}

// Migrate ensures all tables exist.  Statements run one at a time in
// dependency order; the first failure aborts and is returned to the
// caller so startup can fail loudly.
func Migrate(db *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	for _, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
