package models

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	ROLE_ADMIN        = "admin"
	ROLE_OFFICE_ADMIN = "office-admin"
)

// Admin is a back-office actor. Write access to the API is granted through
// a bearer token whose SHA-256 hash is stored alongside the account.
type Admin struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Name         string         `gorm:"type:varchar(150)" json:"name" validate:"required,min=3,max=150"`
	Email        string         `gorm:"uniqueIndex;type:varchar(200)" json:"email" validate:"required,email,min=5,max=200"`
	Password     string         `gorm:"type:text" json:"-" validate:"required,min=6"`
	Role         string         `gorm:"type:varchar(50);default:'admin'" json:"role" validate:"oneof=admin office-admin"`
	APITokenHash string         `gorm:"type:varchar(64);index" json:"-"`
	LastLoginAt  *time.Time     `gorm:"type:timestamp;default:null" json:"lastLoginAt"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Admin model
func (Admin) TableName() string {
	return "admins"
}

func (a *Admin) Validate() error {
	v := validator.New()

	return v.Struct(a)
}

func CreateAdmin(name string, email string, password string, role string) (*Admin, error) {
	pw, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	a := &Admin{
		Name:     name,
		Email:    email,
		Password: pw,
		Role:     role,
	}

	if err := a.Validate(); err != nil {
		return nil, err
	}

	return a, nil
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	return string(bytes), err
}

// CheckPassword verifies the provided password against the stored bcrypt hash.
func (a *Admin) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(password)) == nil
}

// HashAPIToken returns the SHA-256 hash for the provided bearer token.
func HashAPIToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// GenerateAPIToken creates a fresh random token, stores its hash on the
// admin and returns the raw token. The raw value is only available here;
// the database keeps the hash.
func (a *Admin) GenerateAPIToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	raw := hex.EncodeToString(b)
	a.APITokenHash = HashAPIToken(raw)
	return raw, nil
}

// CanManageColdCalls reports whether the role may access the cold-call sheets.
func (a *Admin) CanManageColdCalls() bool {
	return a.Role == ROLE_ADMIN || a.Role == ROLE_OFFICE_ADMIN
}
