package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Purges soft-deleted candidate results. Rows deleted by an admin keep
// their (exam_id, roll_no) slot occupied until this runs, which blocks
// the candidate from resubmitting under the same roll number.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		host := os.Getenv("DB_HOST")
		port := os.Getenv("DB_PORT")
		user := os.Getenv("DB_USER")
		password := os.Getenv("DB_PASSWORD")
		dbname := os.Getenv("DB_NAME")
		dsn = "host=" + host + " port=" + port + " user=" + user + " password=" + password + " dbname=" + dbname + " sslmode=disable"
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	res := db.Exec("DELETE FROM candidate_results WHERE deleted_at IS NOT NULL")
	if res.Error != nil {
		log.Fatal("Error purging soft-deleted results:", res.Error)
	}

	log.Printf("Database cleanup completed - purged %d soft-deleted results", res.RowsAffected)
}
