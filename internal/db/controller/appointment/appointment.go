// Package appointment stores visit requests submitted from the public site.
package appointment

import (
	"errors"

	"gorm.io/gorm"

	"github.com/DoctorPortal/DoctorPortal/internal/db/models"
)

var (
	// ErrAppointmentNotFound is returned when an appointment is not found.
	ErrAppointmentNotFound = errors.New("appointment not found")
	// ErrDoctorNotFound is returned when the referenced doctor does not exist.
	ErrDoctorNotFound = errors.New("referenced doctor not found")
	// ErrServiceNotFound is returned when the referenced service does not exist.
	ErrServiceNotFound = errors.New("referenced service not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Create stores a new appointment request after checking that the
// referenced doctor and service exist.
func Create(db *gorm.DB, appointment *models.Appointment) error {
	if db == nil {
		return ErrDBNil
	}

	if appointment.DoctorID != nil {
		if err := exists(db, &models.Doctor{}, *appointment.DoctorID, ErrDoctorNotFound); err != nil {
			return err
		}
	}

	if appointment.ServiceID != nil {
		if err := exists(db, &models.Service{}, *appointment.ServiceID, ErrServiceNotFound); err != nil {
			return err
		}
	}

	return db.Create(appointment).Error
}

func exists(db *gorm.DB, model any, id uint64, notFound error) error {
	var count int64
	if err := db.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		return notFound
	}

	return nil
}

// Get retrieves an appointment by its ID.
func Get(db *gorm.DB, id uint64) (*models.Appointment, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var appointment models.Appointment
	result := db.First(&appointment, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, result.Error
	}

	return &appointment, nil
}

// List returns one page of appointments, newest first, and the total count.
func List(db *gorm.DB, offset, limit int) ([]models.Appointment, int64, error) {
	if db == nil {
		return nil, 0, ErrDBNil
	}

	var total int64
	if err := db.Model(&models.Appointment{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	appointments := []models.Appointment{}
	err := db.Order("created_at DESC, id DESC").Offset(offset).Limit(limit).Find(&appointments).Error
	if err != nil {
		return nil, 0, err
	}

	return appointments, total, nil
}

// Delete deletes an appointment by ID.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.Appointment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}
