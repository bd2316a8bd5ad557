package entity

// PatientHistory is the aggregated view of a patient's requests together with
// the distinct appointments and tests reachable from them.
type PatientHistory struct {
	Requests     []Request
	Appointments []Appointment
	Tests        []Test
}

// BuildPatientHistory projects requests (with Appointment and Tests loaded)
// into a history. Appointments and tests are deduplicated by ID, the last
// occurrence wins and the order of first appearance is kept.
func BuildPatientHistory(requests []Request) *PatientHistory {
	history := &PatientHistory{
		Requests:     requests,
		Appointments: []Appointment{},
		Tests:        []Test{},
	}

	appointmentIdx := make(map[int]int)
	testIdx := make(map[int]int)

	for _, request := range requests {
		if request.Appointment != nil {
			if i, ok := appointmentIdx[request.Appointment.ID]; ok {
				history.Appointments[i] = *request.Appointment
			} else {
				appointmentIdx[request.Appointment.ID] = len(history.Appointments)
				history.Appointments = append(history.Appointments, *request.Appointment)
			}
		}

		for _, test := range request.Tests {
			if i, ok := testIdx[test.ID]; ok {
				history.Tests[i] = test
				continue
			}
			testIdx[test.ID] = len(history.Tests)
			history.Tests = append(history.Tests, test)
		}
	}

	if history.Requests == nil {
		history.Requests = []Request{}
	}

	return history
}
