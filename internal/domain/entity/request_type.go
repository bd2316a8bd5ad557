package entity

// RequestType describes a category of request. Length is the expected
// duration in minutes.
type RequestType struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"type:varchar(100);not null;uniqueIndex" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Length      int    `gorm:"not null;default:0" json:"length"`
}

func (RequestType) TableName() string {
	return "request_types"
}
