// Bootstrap script to create (or reset) the super admin account
// cmd/create-admin/main.go
package main

import (
	"log"
	"os"
	"time"

	"admissions-api/config"
	"admissions-api/models"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}

	// Initialize database
	config.InitDB()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	now := time.Now()

	var user models.User
	err = config.DB.Where("email = ?", email).First(&user).Error
	if err == nil {
		user.Password = string(hashed)
		user.RoleID = models.RoleSuperAdmin
		user.UpdateAt = &now
		if err := config.DB.Save(&user).Error; err != nil {
			log.Fatal("Failed to update admin user:", err)
		}
		log.Printf("Reset password for existing admin %s\n", email)
		return
	}

	user = models.User{
		UserFname: os.Getenv("ADMIN_FNAME"),
		UserLname: os.Getenv("ADMIN_LNAME"),
		Email:     email,
		Password:  string(hashed),
		RoleID:    models.RoleSuperAdmin,
		CreateAt:  &now,
		UpdateAt:  &now,
	}
	if user.UserFname == "" {
		user.UserFname = "Super"
	}
	if user.UserLname == "" {
		user.UserLname = "Admin"
	}

	if err := config.DB.Create(&user).Error; err != nil {
		log.Fatal("Failed to create admin user:", err)
	}

	log.Printf("Created super admin %s\n", email)
}
