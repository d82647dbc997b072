package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ocl-logistics/ocl-backend/app/models"
	"github.com/ocl-logistics/ocl-backend/app/repository"
	"github.com/ocl-logistics/ocl-backend/internal/pkg/database"
	"github.com/ocl-logistics/ocl-backend/internal/pkg/env"
)

// Bootstraps a back-office account. Meant for the first admin after a fresh
// deployment; later accounts can be created the same way.
func main() {
	if len(os.Args) < 4 {
		fmt.Println("Usage: go run cmd/createadmin/main.go <name> <email> <password> [role]")
		fmt.Printf("Roles: %s (default), %s\n", models.ROLE_ADMIN, models.ROLE_OFFICE_ADMIN)
		os.Exit(1)
	}

	role := models.ROLE_ADMIN
	if len(os.Args) > 4 {
		role = os.Args[4]
	}

	env.SetupEnvFile()
	database.SetupDatabase()
	repository.InitializeFactory(database.GetDB())

	admin, err := models.CreateAdmin(os.Args[1], os.Args[2], os.Args[3], role)
	if err != nil {
		log.Fatalf("Invalid admin data: %v", err)
	}

	repo := repository.GetGlobalFactory().GetAdminRepository()
	if err := repo.Create(admin); err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}

	log.Printf("Admin %s (%s) created with role %s", admin.Name, admin.Email, admin.Role)
}
