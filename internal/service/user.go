package service

import (
	"smartedybot/internal/domain"
	"smartedybot/internal/repository"
)

// UserService keeps track of the people talking to the bot
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service; userRepo may be nil
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Enabled reports whether users are persisted
func (s *UserService) Enabled() bool {
	return s.userRepo != nil
}

// Track records the user's current name and language
func (s *UserService) Track(user domain.User) error {
	if s.userRepo == nil {
		return nil
	}
	return s.userRepo.UpsertUser(user)
}
