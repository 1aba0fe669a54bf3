package services

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/GlobalPath/cms_service/internal/domain"
	"github.com/GlobalPath/cms_service/internal/dto"
	"github.com/GlobalPath/cms_service/internal/helper"
	"github.com/GlobalPath/cms_service/internal/interfaces"
	"github.com/GlobalPath/cms_service/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	Register(input dto.RegisterRequest) (*domain.User, error)
	Login(input dto.UserLogin) (string, *domain.User, error)
	GetProfile(userID uint) (*domain.User, error)
	UpdateProfile(userID uint, fullName string, phone *string) (*domain.User, error)

	// admin
	ListUsers(limit, offset int) ([]domain.User, error)
	SetStatus(userID uint, status string) error
	SetRole(userID uint, role domain.Role) error
}

type userService struct {
	repo     repository.UserRepository
	auth     helper.Auth
	producer interfaces.ProducerHandler
}

func NewUserService(repo repository.UserRepository, auth helper.Auth, producer interfaces.ProducerHandler) UserService {
	return &userService{
		repo:     repo,
		auth:     auth,
		producer: producer,
	}
}

func (u *userService) Register(input dto.RegisterRequest) (*domain.User, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))
	fullName := strings.TrimSpace(input.FullName)

	// public sign-up only grants student or agent; staff roles are assigned
	// by an admin afterwards
	role := domain.RoleStudent
	if r := domain.Role(strings.TrimSpace(strings.ToLower(input.Role))); r == domain.RoleAgent {
		role = domain.RoleAgent
	}

	if existing, err := u.repo.FindUserByEmail(email); err == nil && existing != nil && existing.ID != 0 {
		return nil, errors.New("email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("failed to hash password")
	}

	newUser := &domain.User{
		Email:        email,
		PasswordHash: string(hashedPassword),
		FullName:     fullName,
		Phone:        input.Phone,
		Role:         role,
		Status:       "active",
	}

	usr, err := u.repo.CreateUser(newUser)
	if err != nil {
		if helper.IsDuplicateKey(err) {
			return nil, errors.New("email already exists")
		}
		return nil, errors.New("failed to create user")
	}

	if u.producer != nil {
		payload, _ := json.Marshal(dto.UserRegisteredEvent{
			UserID: usr.ID,
			Email:  usr.Email,
			Role:   string(usr.Role),
		})
		_ = u.producer.PublishMessage([]byte(dto.EventUserRegistered), payload)
	}

	return usr, nil
}

func (u *userService) Login(input dto.UserLogin) (string, *domain.User, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))
	password := strings.TrimSpace(input.Password)

	if email == "" || password == "" {
		return "", nil, errors.New("invalid email or password")
	}

	user, err := u.repo.FindUserByEmail(email)
	if err != nil || user == nil || user.ID == 0 {
		return "", nil, errors.New("invalid email or password")
	}

	if user.Status != "" && user.Status != "active" {
		return "", nil, errors.New("account is not active")
	}

	if err := u.auth.VerifyPassword(password, user.PasswordHash); err != nil {
		return "", nil, errors.New("invalid email or password")
	}

	// the token carries the role claim; nothing downstream re-queries it
	token, err := u.auth.GenerateToken(int(user.ID), user.Email, string(user.Role))
	if err != nil {
		return "", nil, errors.New("could not generate token")
	}

	return token, user, nil
}

func (u *userService) GetProfile(userID uint) (*domain.User, error) {
	if userID == 0 {
		return nil, errors.New("invalid user id")
	}
	return u.repo.FindUserById(userID)
}

func (u *userService) UpdateProfile(userID uint, fullName string, phone *string) (*domain.User, error) {
	if userID == 0 {
		return nil, errors.New("invalid user_id")
	}

	user, err := u.repo.FindUserById(userID)
	if err != nil || user == nil {
		return nil, errors.New("user not found")
	}

	if fn := strings.TrimSpace(fullName); fn != "" {
		user.FullName = fn
	}
	if phone != nil {
		p := strings.TrimSpace(*phone)
		if p == "" {
			return nil, errors.New("phone cannot be empty")
		}
		user.Phone = &p
	}

	if err := u.repo.SaveUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *userService) ListUsers(limit, offset int) ([]domain.User, error) {
	return u.repo.ListUsers(limit, offset)
}

func (u *userService) SetStatus(userID uint, status string) error {
	if userID == 0 {
		return errors.New("invalid user_id")
	}

	status = strings.TrimSpace(strings.ToLower(status))
	switch status {
	case "active", "suspended", "deleted":
	default:
		return errors.New("invalid status")
	}

	user, err := u.repo.FindUserById(userID)
	if err != nil || user == nil {
		return errors.New("user not found")
	}

	user.Status = status
	return u.repo.SaveUser(user)
}

func (u *userService) SetRole(userID uint, role domain.Role) error {
	if userID == 0 {
		return errors.New("invalid user_id")
	}
	if !domain.ValidRole(role) {
		return errors.New("invalid role")
	}

	user, err := u.repo.FindUserById(userID)
	if err != nil || user == nil {
		return errors.New("user not found")
	}

	user.Role = role
	return u.repo.SaveUser(user)
}
