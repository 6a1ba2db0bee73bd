package repository

import (
	"github.com/Abdul-Mateen-1/Railway-Management-System/models"
)

func (r *gormRepository) FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("LOWER(email) = LOWER(?)", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *gormRepository) FindUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *gormRepository) GetUsers() ([]models.User, error) {
	var users []models.User
	if err := r.db.Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *gormRepository) AddUser(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *gormRepository) UpdateUser(user *models.User) error {
	return r.db.Save(user).Error
}

func (r *gormRepository) EmailExists(email string, excludeUserID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).
		Where("LOWER(email) = LOWER(?) AND id <> ?", email, excludeUserID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
