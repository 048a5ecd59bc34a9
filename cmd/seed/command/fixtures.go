package command

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/historias-clinicas/seed/fixtures"
)

var fixturesCmd = &cobra.Command{
	Use:   "fixtures",
	Short: "List fixture data",
	Long:  "The fixtures command prints the doctors, patients and medical records that will be submitted",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(listFixtures) },
}

func listFixtures(dataset *fixtures.Dataset) error {
	if err := dataset.Validate(); err != nil {
		return err
	}

	fmt.Printf("Doctores (%d):\n", len(dataset.Doctors))
	for _, doctor := range dataset.Doctors {
		fmt.Printf("   - %s [%s] %s\n", doctor.Name, doctor.ProfessionalID, doctor.Specialty)
	}

	fmt.Printf("Pacientes (%d):\n", len(dataset.Patients))
	for _, patient := range dataset.Patients {
		fmt.Printf("   - %s [%s] %d años, %s\n", patient.FullName(), patient.NationalID, patient.Age, patient.Gender)
	}

	now := time.Now()
	fmt.Printf("Historias clínicas (%d):\n", len(dataset.Records))
	for i, record := range dataset.Records {
		fmt.Printf("   %2d. %s %s - %s / %s\n", i+1, record.VisitDate(now), record.Patient.FullName(), record.Doctor.Name, record.Diagnosis)
	}

	return nil
}

func init() {
	rootCmd.AddCommand(fixturesCmd)
}
