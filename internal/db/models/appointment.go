package models

import "time"

// Appointment is a visit request submitted from the public site.
type Appointment struct {
	ID            uint64     `gorm:"primaryKey" json:"id"`
	FullName      string     `gorm:"size:160;not null" json:"fullName"`
	Phone         string     `gorm:"size:64;not null" json:"phone"`
	Email         string     `gorm:"size:255" json:"email"`
	DoctorID      *uint64    `json:"doctorId"`
	ServiceID     *uint64    `json:"serviceId"`
	PreferredDate *time.Time `json:"preferredDate"`
	Message       string     `gorm:"type:text" json:"message"`
	// Language is the locale the visitor used when submitting.
	Language  Language  `gorm:"size:8" json:"language"`
	CreatedAt time.Time `json:"createdAt"`
}
