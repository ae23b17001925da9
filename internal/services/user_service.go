package services

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/isdelr/paperdeck-be/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	GetUserByID(id string) (models.User, error)
	CreateUser(email, password, name string) (models.User, error)
	AuthenticateUser(email, password string) (models.User, error)
	DeleteUser(id string) error
	ExpirePremium(now time.Time) (int64, error)
}

// UserService provides business logic for user management.
type UserService struct {
	db           *sql.DB
	eventService EventServiceProvider
}

// NewUserService creates a new UserService.
func NewUserService(db *sql.DB, eventService EventServiceProvider) *UserService {
	return &UserService{db: db, eventService: eventService}
}

// GetUserByID retrieves a single user by their ID.
func (s *UserService) GetUserByID(id string) (models.User, error) {
	var user models.User
	row := s.db.QueryRow("SELECT id, email, name, is_premium, premium_until, stripe_customer_id, created_at FROM users WHERE id = ?", id)
	err := row.Scan(&user.ID, &user.Email, &user.Name, &user.IsPremium, &user.PremiumUntil, &user.StripeCustomerID, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, fmt.Errorf("user %s: %w", id, ErrNotFound)
		}
		return models.User{}, err
	}
	return user, nil
}

// GetUserByEmail retrieves a single user by their email, including the password hash.
func (s *UserService) GetUserByEmail(email string) (models.User, error) {
	var user models.User
	row := s.db.QueryRow("SELECT id, email, name, password_hash, is_premium, premium_until, stripe_customer_id, created_at FROM users WHERE email = ?", email)
	err := row.Scan(&user.ID, &user.Email, &user.Name, &user.PasswordHash, &user.IsPremium, &user.PremiumUntil, &user.StripeCustomerID, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, fmt.Errorf("user with email %s: %w", email, ErrNotFound)
		}
		return models.User{}, err
	}
	return user, nil
}

// CreateUser creates a new user, hashing their password. A duplicate email
// returns ErrEmailTaken and leaves the store untouched.
func (s *UserService) CreateUser(email, password, name string) (models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now().UTC(),
	}

	stmt, err := s.db.Prepare("INSERT INTO users(id, email, name, password_hash, created_at) VALUES(?, ?, ?, ?, ?)")
	if err != nil {
		return models.User{}, err
	}
	defer stmt.Close()

	_, err = stmt.Exec(user.ID, user.Email, user.Name, user.PasswordHash, user.CreatedAt)
	if err != nil {
		// The users.email UNIQUE constraint is the authority on duplicates.
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return models.User{}, ErrEmailTaken
		}
		return models.User{}, err
	}

	s.eventService.CreateEvent("user.signup", "info", fmt.Sprintf("User '%s' signed up.", user.Email), &user.ID)

	// Return user without password hash
	user.PasswordHash = ""
	return user, nil
}

// AuthenticateUser verifies a user's credentials. Both an unknown email and a
// wrong password yield the same ErrInvalidCredentials.
func (s *UserService) AuthenticateUser(email, password string) (models.User, error) {
	user, err := s.GetUserByEmail(email)
	if err != nil {
		return models.User{}, ErrInvalidCredentials
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return models.User{}, ErrInvalidCredentials
	}

	// Don't send the password hash to the client
	user.PasswordHash = ""
	return user, nil
}

// DeleteUser removes a user from the database. Owned papers are removed by
// the foreign-key cascade.
func (s *UserService) DeleteUser(id string) error {
	_, err := s.db.Exec("DELETE FROM users WHERE id = ?", id)
	return err
}

// ExpirePremium clears the premium flag for every user whose subscription
// window has passed. Returns the number of downgraded users.
func (s *UserService) ExpirePremium(now time.Time) (int64, error) {
	res, err := s.db.Exec("UPDATE users SET is_premium = 0 WHERE is_premium = 1 AND premium_until IS NOT NULL AND premium_until < ?", now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
