package fixtures

import (
	"fmt"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
)

type Doctor struct {
	Name           string
	ProfessionalID string
	Specialty      string
}

type Patient struct {
	Name       string
	Surname    string
	NationalID string
	Age        int
	Gender     string
}

func (p Patient) FullName() string {
	return fmt.Sprintf("%s %s", p.Name, p.Surname)
}

// Record is a medical record entry. The visit date is derived from DaysAgo at
// submission time.
type Record struct {
	Patient   Patient
	Doctor    Doctor
	Reason    string
	Diagnosis string
	Treatment string
	DaysAgo   int
}

// VisitDate returns the calendar date DaysAgo days before now as YYYY-MM-DD
func (r Record) VisitDate(now time.Time) string {
	return now.AddDate(0, 0, -r.DaysAgo).Format(time.DateOnly)
}

type Dataset struct {
	Doctors  []Doctor
	Patients []Patient
	Records  []Record
}

// Validate checks that every record references one of the declared patients and doctors
func (d *Dataset) Validate() error {
	patients := mapset.NewThreadUnsafeSet[string]()
	for _, patient := range d.Patients {
		patients.Add(patient.NationalID)
	}
	doctors := mapset.NewThreadUnsafeSet[string]()
	for _, doctor := range d.Doctors {
		doctors.Add(doctor.ProfessionalID)
	}

	for i, record := range d.Records {
		if !patients.Contains(record.Patient.NationalID) {
			return fmt.Errorf("record %d references undeclared patient %s", i+1, record.Patient.NationalID)
		}
		if !doctors.Contains(record.Doctor.ProfessionalID) {
			return fmt.Errorf("record %d references undeclared doctor %s", i+1, record.Doctor.ProfessionalID)
		}
	}

	return nil
}
