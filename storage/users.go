package storage

import (
	"time"

	"github.com/habiutomo/ERP-klub-bar/models"
)

func (s *MemStorage) GetUser(id int) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return user, nil
}

func (s *MemStorage) GetUserByUsername(username string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			return user, nil
		}
	}
	return models.User{}, ErrNotFound
}

func (s *MemStorage) CreateUser(in models.InsertUser) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := models.User{
		ID:        nextID(&s.ids.user),
		Username:  in.Username,
		Password:  in.Password,
		FullName:  in.FullName,
		Role:      in.Role,
		Email:     in.Email,
		Phone:     in.Phone,
		Avatar:    in.Avatar,
		CreatedAt: time.Now(),
	}
	s.users[user.ID] = user
	return user, nil
}
