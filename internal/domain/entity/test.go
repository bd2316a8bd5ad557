package entity

import "time"

type TestState string

const (
	TestStateOrdered    TestState = "ordered"
	TestStateInProgress TestState = "in_progress"
	TestStateCompleted  TestState = "completed"
	TestStateCancelled  TestState = "cancelled"
)

var TestStates = []TestState{
	TestStateOrdered,
	TestStateInProgress,
	TestStateCompleted,
	TestStateCancelled,
}

func (s TestState) IsValid() bool {
	for _, state := range TestStates {
		if s == state {
			return true
		}
	}
	return false
}

type TestType struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"type:varchar(100);not null;uniqueIndex" json:"name"`
	Description string `gorm:"type:text" json:"description"`
}

func (TestType) TableName() string {
	return "test_types"
}

// Test is a lab test ordered under a request. Its lifecycle is independent of
// the request beyond the foreign key.
type Test struct {
	ID         int       `gorm:"primaryKey;autoIncrement" json:"id"`
	TestDate   time.Time `gorm:"not null" json:"test_date"`
	Results    string    `gorm:"type:varchar(512)" json:"results"`
	State      TestState `gorm:"type:varchar(20);not null;default:'ordered'" json:"state"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	TestTypeID int       `gorm:"not null;index" json:"test_type_id"`
	RequestID  int       `gorm:"not null;index" json:"request_id"`

	// Relationships
	TestType *TestType `gorm:"foreignKey:TestTypeID" json:"test_type,omitempty"`
}

func (Test) TableName() string {
	return "tests"
}
