package service

import (
	"context"
	"manhaj_backend/internal/model"
	"manhaj_backend/internal/repository"
	"manhaj_backend/internal/util"
	"mime/multipart"
)

type UserService struct {
	UserRepo *repository.UserRepository
	Storage  *StorageService
}

func NewUserService(userRepo *repository.UserRepository, storage *StorageService) *UserService {
	return &UserService{
		UserRepo: userRepo,
		Storage:  storage,
	}
}

func (s *UserService) GetByID(id uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if err != nil {
		return nil, util.ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) UpdateProfile(id uint, updates map[string]interface{}) error {
	// Role and school changes go through the admin path, never self-service.
	delete(updates, "role")
	delete(updates, "school_id")
	return s.UserRepo.UpdateFields(id, updates)
}

func (s *UserService) UploadAvatar(ctx context.Context, userID uint, file *multipart.FileHeader) (string, error) {
	if !util.HasAllowedExtension(file.Filename, util.AllowedImageExtensions) {
		return "", util.ErrInvalidDocumentUpload
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	key := util.BuildStorageKey("avatars", file.Filename)
	url, err := s.Storage.Upload(ctx, key, src, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		return "", err
	}

	if err := s.UserRepo.UpdateFields(userID, map[string]interface{}{"avatar": url}); err != nil {
		return "", err
	}
	return url, nil
}

func (s *UserService) List(schoolID *uint, role model.UserRole, page, limit int) ([]model.User, int64, error) {
	return s.UserRepo.List(schoolID, role, page, limit)
}

func (s *UserService) SetRole(id uint, role model.UserRole) error {
	switch role {
	case model.Student, model.Teacher, model.SchoolAdmin, model.Superadmin:
	default:
		return util.ErrInvalidStatus
	}
	return s.UserRepo.UpdateFields(id, map[string]interface{}{"role": role})
}

func (s *UserService) SetDisabled(id uint, disabled bool) error {
	return s.UserRepo.UpdateFields(id, map[string]interface{}{"disabled": disabled})
}

func (s *UserService) Delete(id uint) error {
	if _, err := s.UserRepo.FindByID(id); err != nil {
		return util.ErrUserNotFound
	}
	return s.UserRepo.Delete(id)
}
