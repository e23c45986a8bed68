package models

// Setting is a global key/value pair such as the clinic phone or address.
// Settings are not translated.
type Setting struct {
	ID          uint64 `gorm:"primaryKey" json:"id"`
	Key         string `gorm:"uniqueIndex;size:128;not null" json:"key"`
	Value       string `gorm:"type:text" json:"value"`
	Description string `gorm:"size:255" json:"description"`
}
