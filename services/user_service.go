package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Abdul-Mateen-1/Railway-Management-System/models"
	"github.com/Abdul-Mateen-1/Railway-Management-System/repository"
	"gorm.io/gorm"
)

type UserService struct {
	repo repository.Repository
}

func NewUserService(repo repository.Repository) *UserService {
	return &UserService{repo: repo}
}

// Authenticate checks email (case-insensitive), password (exact match, plain
// text by design) and role (case-insensitive). All failure modes collapse
// into ErrInvalidCredentials.
func (s *UserService) Authenticate(email, password, role string) (*models.User, error) {
	user, err := s.repo.FindUserByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if user.Password != password {
		return nil, ErrInvalidCredentials
	}
	if !strings.EqualFold(user.Role, role) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// Register persists a new user. The email must be unused, compared
// case-insensitively against existing accounts.
func (s *UserService) Register(user *models.User) (*models.User, error) {
	if strings.TrimSpace(user.Name) == "" || strings.TrimSpace(user.Email) == "" || user.Password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", ErrValidation)
	}

	_, err := s.repo.FindUserByEmail(user.Email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if user.Role == "" {
		user.Role = "passenger"
	}
	if err := s.repo.AddUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) EmailExists(email string) (bool, error) {
	_, err := s.repo.FindUserByEmail(email)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, err
}

func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	user, err := s.repo.FindUserByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) ListUsers() ([]models.User, error) {
	return s.repo.GetUsers()
}

// UpdateUser saves profile changes. Changing the email is allowed as long as
// no other account holds it.
func (s *UserService) UpdateUser(user *models.User) (*models.User, error) {
	if _, err := s.repo.FindUserByID(user.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	taken, err := s.repo.EmailExists(user.Email, user.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	if err := s.repo.UpdateUser(user); err != nil {
		return nil, err
	}
	return user, nil
}
