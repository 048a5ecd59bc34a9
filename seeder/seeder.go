package seeder

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/historias-clinicas/seed/config"
	errs "github.com/historias-clinicas/seed/errors"
	"github.com/historias-clinicas/seed/fixtures"
	"github.com/historias-clinicas/seed/graphql"
	"github.com/historias-clinicas/seed/records"
)

const ruleWidth = 70

// Tally is the outcome of a seeding run. Succeeded + Failed equals the number of
// records whenever the endpoint was reachable.
type Tally struct {
	Reachable bool
	Succeeded int
	Failed    int
}

// Loader submits the fixture dataset to the backend one record at a time
type Loader struct {
	Client  graphql.Client
	Records records.Service
	Dataset *fixtures.Dataset
	Config  *config.Config
	Logger  *zap.SugaredLogger

	Out    io.Writer
	Now    func() time.Time
	DryRun bool
}

func NewLoader(client graphql.Client, service records.Service, dataset *fixtures.Dataset, cfg *config.Config, logger *zap.SugaredLogger) *Loader {
	return &Loader{
		Client:  client,
		Records: service,
		Dataset: dataset,
		Config:  cfg,
		Logger:  logger,
		Out:     os.Stdout,
		Now:     time.Now,
	}
}

// CheckEndpointLive reports whether the endpoint answered the probe with HTTP 200.
// The cause of a failure is only logged.
func (l *Loader) CheckEndpointLive(ctx context.Context) bool {
	if err := l.Client.Ping(ctx); err != nil {
		l.Logger.Debugw("liveness probe failed", "url", l.Config.GraphQLURL, "error", err)
		return false
	}
	return true
}

// SubmitRecord creates a single medical record and prints the outcome. The
// returned error is a SubmissionError of kind errors.Transport or errors.Remote.
func (l *Loader) SubmitRecord(ctx context.Context, record fixtures.Record) (*records.MedicalRecord, error) {
	input := records.NewInput(record, record.VisitDate(l.Now()))

	created, err := l.Records.Create(ctx, input)
	if err != nil {
		l.Logger.Debugw("unable to create medical record", "cedula", record.Patient.NationalID, "error", err)
		if errors.Is(err, errs.Remote) {
			l.printf("❌ Error: %v\n", errs.Cause(err))
		} else {
			l.printf("❌ Error de conexión: %v\n", errs.Cause(err))
		}
		return nil, err
	}

	l.printf("✅ Historia clínica creada:\n")
	l.printf("   Paciente: %s %s (CC: %s)\n", created.Patient.Name, created.Patient.Surname, created.Patient.NationalID)
	l.printf("   Doctor: %s - %s\n", created.Doctor.Name, created.Doctor.Specialty)
	l.printf("   Diagnóstico: %s\n", created.Diagnosis)
	l.printf("   Fecha: %s\n", created.Date)
	l.printf("\n")
	return created, nil
}

// Run probes the endpoint and, if it is live, submits every record in declaration order
func (l *Loader) Run(ctx context.Context) Tally {
	tally := Tally{}

	l.printBanner()

	l.printf("🔍 Verificando conexión con el servidor GraphQL...\n")
	if !l.CheckEndpointLive(ctx) {
		l.printUnreachable()
		return tally
	}
	tally.Reachable = true

	l.printf("✅ Conexión exitosa con %s\n", l.Config.GraphQLURL)
	l.printf("\n")
	l.printSummary()

	total := len(l.Dataset.Records)
	for i, record := range l.Dataset.Records {
		if l.DryRun {
			l.printDryRun(i+1, total, record)
			continue
		}

		l.printf("[%d/%d] Creando historia clínica...\n", i+1, total)
		if _, err := l.SubmitRecord(ctx, record); err != nil {
			tally.Failed++
		} else {
			tally.Succeeded++
		}
	}

	l.printResult(tally)
	return tally
}

func (l *Loader) printBanner() {
	l.rule("=")
	l.printf("SEED - POBLACIÓN DE BASE DE DATOS\n")
	l.printf("Sistema de Gestión de Historias Clínicas\n")
	l.rule("=")
	l.printf("\n")
}

func (l *Loader) printUnreachable() {
	l.printf("❌ No se puede conectar a %s\n", l.Config.GraphQLURL)
	l.printf("   Asegúrate de que el backend esté corriendo:\n")
	l.printf("   - Con Docker: docker-compose up -d\n")
	l.printf("   - Local: cd backend && npm start\n")
	l.printf("\n")
	l.printf("⚠️  No se pudo crear ninguna historia clínica\n")
}

func (l *Loader) printSummary() {
	l.printf("📊 RESUMEN DEL SEED:\n")
	l.printf("   - %d doctores\n", len(l.Dataset.Doctors))
	l.printf("   - %d pacientes\n", len(l.Dataset.Patients))
	l.printf("   - %d historias clínicas\n", len(l.Dataset.Records))
	l.printf("\n")
	l.rule("-")
	l.printf("\n")
}

func (l *Loader) printDryRun(position, total int, record fixtures.Record) {
	l.printf("[%d/%d] (dry-run) %s -> %s\n", position, total, record.Patient.FullName(), record.Doctor.Name)
	l.printf("   Motivo: %s\n", record.Reason)
	l.printf("   Diagnóstico: %s\n", record.Diagnosis)
	l.printf("   Fecha: %s\n", record.VisitDate(l.Now()))
	l.printf("\n")
}

func (l *Loader) printResult(tally Tally) {
	l.rule("-")
	l.printf("\n")
	l.printf("📈 RESULTADO FINAL:\n")
	l.printf("   ✅ Exitosos: %d\n", tally.Succeeded)
	l.printf("   ❌ Fallidos: %d\n", tally.Failed)
	l.printf("\n")

	if tally.Succeeded > 0 {
		l.printf("🎉 Base de datos poblada exitosamente!\n")
		l.printf("\n")
		l.printf("💡 Puedes consultar los datos en:\n")
		l.printf("   - GraphQL Playground: %s\n", l.Config.GraphQLURL)
		l.printf("   - Frontend: %s\n", l.Config.FrontendURL)
		l.printf("\n")
		l.printf("🔍 Cédulas de pacientes para buscar:\n")
		for _, patient := range l.Dataset.Patients {
			l.printf("   - %s: %s\n", patient.FullName(), patient.NationalID)
		}
	} else if !l.DryRun {
		l.printf("⚠️  No se pudo crear ninguna historia clínica\n")
	}

	l.printf("\n")
	l.rule("=")
}

func (l *Loader) rule(char string) {
	l.printf("%s\n", strings.Repeat(char, ruleWidth))
}

func (l *Loader) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(l.Out, format, args...)
}
