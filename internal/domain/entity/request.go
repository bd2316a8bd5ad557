package entity

import "time"

// RequestState is validated against a fixed whitelist at the API boundary.
// Any whitelisted state may follow any other.
type RequestState string

const (
	RequestStatePending   RequestState = "pending"
	RequestStateApproved  RequestState = "approved"
	RequestStateDeclined  RequestState = "declined"
	RequestStateCompleted RequestState = "completed"
)

// RequestStates lists every accepted state, initial state first.
var RequestStates = []RequestState{
	RequestStatePending,
	RequestStateApproved,
	RequestStateDeclined,
	RequestStateCompleted,
}

func (s RequestState) IsValid() bool {
	for _, state := range RequestStates {
		if s == state {
			return true
		}
	}
	return false
}

// Request links a patient to an appointment, doctor, nurse and request type.
// The (patient, appointment, doctor) triple is unique.
type Request struct {
	ID            int          `gorm:"primaryKey;autoIncrement" json:"id"`
	State         RequestState `gorm:"type:varchar(20);not null;default:'pending';index" json:"state"`
	Description   string       `gorm:"type:text" json:"description"`
	CreatedAt     time.Time    `gorm:"not null" json:"created_at"`
	PatientID     int          `gorm:"not null;uniqueIndex:idx_requests_patient_appointment_doctor,priority:1" json:"patient_id"`
	AppointmentID *int         `gorm:"uniqueIndex:idx_requests_patient_appointment_doctor,priority:2" json:"appointment_id,omitempty"`
	DoctorID      int          `gorm:"not null;uniqueIndex:idx_requests_patient_appointment_doctor,priority:3" json:"doctor_id"`
	NurseID       *int         `gorm:"index" json:"nurse_id,omitempty"`
	RequestTypeID int          `gorm:"not null;index" json:"request_type_id"`

	// Relationships
	Patient     *Patient     `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Appointment *Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
	Doctor      *Doctor      `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Nurse       *Nurse       `gorm:"foreignKey:NurseID" json:"nurse,omitempty"`
	RequestType *RequestType `gorm:"foreignKey:RequestTypeID" json:"request_type,omitempty"`
	Tests       []Test       `gorm:"foreignKey:RequestID" json:"tests,omitempty"`
}

func (Request) TableName() string {
	return "requests"
}

// IsPending checks if the request still waits for a decision
func (r *Request) IsPending() bool {
	return r.State == RequestStatePending
}
