package identity

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ivoirestore/backend/internal/domain/shared"
)

// AdminNameMaxLength caps the display name.
const AdminNameMaxLength = 100

// PasswordMinLength is the minimum length of a clear-text password.
const PasswordMinLength = 8

var emailPattern = regexp.MustCompile(`^\w+([.+-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,})+$`)

// ErrEmailTaken is returned when an admin with the same email already exists.
var ErrEmailTaken = shared.NewDomainError(shared.CodeAlreadyExists, "Un administrateur avec cet email existe déjà.")

// Admin is a back-office account. PasswordHash never leaves the service.
type Admin struct {
	shared.BaseEntity
	Name         string `gorm:"type:varchar(100);not null"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string `gorm:"column:password;type:varchar(255);not null"`
	Role         Role   `gorm:"type:varchar(20);not null"`
}

// TableName returns the table name for GORM
func (Admin) TableName() string {
	return "admins"
}

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail checks the email syntax.
func ValidateEmail(email string) error {
	if email == "" || !emailPattern.MatchString(email) {
		return shared.NewValidationError("Email invalide", shared.FieldError{Field: "email", Message: "Email invalide"})
	}
	return nil
}

// ValidatePassword checks a clear-text password before it is hashed.
func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < PasswordMinLength {
		msg := "Le mot de passe doit contenir au moins 8 caractères"
		return shared.NewValidationError(msg, shared.FieldError{Field: "password", Message: msg})
	}
	return nil
}

// NewAdmin creates an account from an already hashed password. An empty role defaults
// to RoleAdmin.
func NewAdmin(name, email, passwordHash string, role Role) (*Admin, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewValidationError("Le nom est obligatoire", shared.FieldError{Field: "name", Message: "Le nom est obligatoire"})
	}
	if utf8.RuneCountInString(name) > AdminNameMaxLength {
		msg := "Le nom ne peut pas dépasser 100 caractères"
		return nil, shared.NewValidationError(msg, shared.FieldError{Field: "name", Message: msg})
	}
	email = NormalizeEmail(email)
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	if passwordHash == "" {
		return nil, shared.NewValidationError("Le mot de passe est obligatoire", shared.FieldError{Field: "password", Message: "Le mot de passe est obligatoire"})
	}
	if role == "" {
		role = RoleAdmin
	}
	if !role.IsValid() {
		return nil, shared.NewValidationError("Rôle invalide", shared.FieldError{Field: "role", Message: "Rôle invalide. Valeurs: admin, super_admin"})
	}

	return &Admin{
		BaseEntity:   shared.NewBaseEntity(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
	}, nil
}

// ChangeEmail replaces the login email.
func (a *Admin) ChangeEmail(email string) error {
	email = NormalizeEmail(email)
	if err := ValidateEmail(email); err != nil {
		return err
	}
	a.Email = email
	a.Touch()
	return nil
}

// ChangePasswordHash replaces the stored hash.
func (a *Admin) ChangePasswordHash(hash string) {
	a.PasswordHash = hash
	a.Touch()
}
