package records

import (
	"context"

	"github.com/historias-clinicas/seed/fixtures"
)

type Patient struct {
	ID         string `mapstructure:"id"`
	Name       string `mapstructure:"nombre"`
	Surname    string `mapstructure:"apellido"`
	NationalID string `mapstructure:"cedula"`
	Age        int    `mapstructure:"edad"`
	Gender     string `mapstructure:"genero"`
}

func (p Patient) FullName() string {
	return p.Name + " " + p.Surname
}

type Doctor struct {
	ID             string `mapstructure:"id"`
	Name           string `mapstructure:"nombre"`
	ProfessionalID string `mapstructure:"cedulaProfesional"`
	Specialty      string `mapstructure:"especialidad"`
}

// MedicalRecord is the record as echoed back by the server
type MedicalRecord struct {
	ID        string  `mapstructure:"id"`
	Reason    string  `mapstructure:"motivoConsulta"`
	Diagnosis string  `mapstructure:"diagnostico"`
	Treatment string  `mapstructure:"tratamiento"`
	Date      string  `mapstructure:"fecha"`
	Patient   Patient `mapstructure:"paciente"`
	Doctor    Doctor  `mapstructure:"doctor"`
}

type PatientInput struct {
	Name       string `structs:"nombre"`
	Surname    string `structs:"apellido"`
	NationalID string `structs:"cedula"`
	Age        int    `structs:"edad"`
	Gender     string `structs:"genero"`
}

type DoctorInput struct {
	Name           string `structs:"nombre"`
	ProfessionalID string `structs:"cedulaProfesional"`
	Specialty      string `structs:"especialidad"`
}

// Input mirrors the MedicalRecordInput type of the backend schema
type Input struct {
	Patient   PatientInput `structs:"paciente"`
	Doctor    DoctorInput  `structs:"doctor"`
	Reason    string       `structs:"motivoConsulta"`
	Diagnosis string       `structs:"diagnostico"`
	Treatment string       `structs:"tratamiento"`
	Date      string       `structs:"fecha"`
}

func NewInput(record fixtures.Record, date string) Input {
	return Input{
		Patient: PatientInput{
			Name:       record.Patient.Name,
			Surname:    record.Patient.Surname,
			NationalID: record.Patient.NationalID,
			Age:        record.Patient.Age,
			Gender:     record.Patient.Gender,
		},
		Doctor: DoctorInput{
			Name:           record.Doctor.Name,
			ProfessionalID: record.Doctor.ProfessionalID,
			Specialty:      record.Doctor.Specialty,
		},
		Reason:    record.Reason,
		Diagnosis: record.Diagnosis,
		Treatment: record.Treatment,
		Date:      date,
	}
}

//go:generate mockgen --build_flags=--mod=mod -source=./records.go -destination=./test/mock_service.go -package test MockService
type Service interface {
	Create(ctx context.Context, input Input) (*MedicalRecord, error)
	FindByCedula(ctx context.Context, cedula string) ([]MedicalRecord, error)
}
