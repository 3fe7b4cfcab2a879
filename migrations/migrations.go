package migrations

import (
	"database/sql"
	"time"
)

// AutoMigrateUsers creates the users table if it does not exist.
func AutoMigrateUsers(retries int, db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS users (
			id INT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			email VARCHAR(150) UNIQUE NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		) ENGINE=InnoDB;
	`
	return execWithRetry(retries, db, query)
}

// AutoMigratePosts creates the posts table if it does not exist.
// Deleting a user cascades to its posts through the foreign key.
func AutoMigratePosts(retries int, db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS posts (
			id INT AUTO_INCREMENT PRIMARY KEY,
			user_id INT NOT NULL,
			title VARCHAR(200) NOT NULL,
			content TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
		) ENGINE=InnoDB;
	`
	return execWithRetry(retries, db, query)
}

func execWithRetry(retries int, db *sql.DB, query string) error {
	_, err := db.Exec(query)
	if err == nil {
		return nil
	}
	for i := 0; i < retries; i++ {
		time.Sleep(1 * time.Second)
		_, err = db.Exec(query)
		if err == nil {
			return nil
		}
	}
	return err
}
