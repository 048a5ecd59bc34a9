package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/historias-clinicas/seed/records"
)

var lookupParams = struct {
	Cedula string
}{}

var lookupCmd = &cobra.Command{
	Use:   "lookup {cedula}",
	Args:  cobra.ExactArgs(1),
	Short: "Find medical records by patient cedula",
	Long:  "The lookup command retrieves the medical records of a patient from the GraphQL backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		lookupParams.Cedula = args[0]
		return Run(lookup)
	},
}

func lookup(service records.Service) error {
	list, err := service.FindByCedula(context.Background(), lookupParams.Cedula)
	if err != nil {
		return err
	}

	for _, record := range list {
		fmt.Printf("%s %s - %s (%s)\n", record.Date, record.Patient.FullName(), record.Diagnosis, record.Doctor.Name)
	}
	fmt.Printf("Found %v medical records\n", len(list))

	return nil
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}
