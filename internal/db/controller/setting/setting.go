// Package setting stores the global site settings, such as the clinic phone
// number or address. Settings are plain key/value pairs and are not translated.
package setting

import (
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/DoctorPortal/DoctorPortal/internal/db/models"
)

const maxKeyLength = 128

var (
	ErrSettingNotFound   = errors.New("setting not found")
	ErrSettingKeyEmpty   = errors.New("setting key cannot be empty")
	ErrSettingKeyTooLong = errors.New("setting key is too long")
	// ErrSettingAlreadyExists is returned when a concurrent Set inserted the key first.
	ErrSettingAlreadyExists = errors.New("setting already exists")
	ErrDBNil                = errors.New("database connection is nil")
)

func checkKey(key string) error {
	switch {
	case strings.TrimSpace(key) == "":
		return ErrSettingKeyEmpty
	case len(key) > maxKeyLength:
		return ErrSettingKeyTooLong
	}

	return nil
}

// KEY is reserved in MySQL, clause.Column lets the dialect quote it.
func byKey(db *gorm.DB, key string) *gorm.DB {
	return db.Where(clause.Eq{Column: clause.Column{Name: "key"}, Value: key})
}

func translate(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrSettingNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrSettingAlreadyExists
	}

	return err
}

// Get retrieves a setting by its key.
func Get(db *gorm.DB, key string) (*models.Setting, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if err := checkKey(key); err != nil {
		return nil, err
	}

	var s models.Setting
	if err := byKey(db, key).First(&s).Error; err != nil {
		return nil, translate(err)
	}

	return &s, nil
}

// GetAll returns every setting in insertion order, never nil.
func GetAll(db *gorm.DB) ([]models.Setting, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	settings := []models.Setting{}
	if err := db.Order("id").Find(&settings).Error; err != nil {
		return nil, err
	}

	return settings, nil
}

// Set stores value under key, creating the setting when it does not exist.
// An empty description keeps the stored one.
func Set(db *gorm.DB, key, value, description string) (*models.Setting, error) {
	s, err := Get(db, key)

	switch {
	case errors.Is(err, ErrSettingNotFound):
		s = &models.Setting{Key: key, Value: value, Description: description}
		if err = db.Create(s).Error; err != nil {
			return nil, translate(err)
		}

		return s, nil
	case err != nil:
		return nil, err
	}

	s.Value = value
	if description != "" {
		s.Description = description
	}

	if err = db.Save(s).Error; err != nil {
		return nil, translate(err)
	}

	return s, nil
}

// DeleteByKey removes a setting.
func DeleteByKey(db *gorm.DB, key string) error {
	if db == nil {
		return ErrDBNil
	}

	if err := checkKey(key); err != nil {
		return err
	}

	result := byKey(db, key).Delete(&models.Setting{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrSettingNotFound
	}

	return nil
}
