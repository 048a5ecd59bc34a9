package records

import (
	"context"

	"github.com/fatih/structs"
	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	errs "github.com/historias-clinicas/seed/errors"
	"github.com/historias-clinicas/seed/graphql"
)

const (
	createMedicalRecordField      = "createMedicalRecord"
	getMedicalRecordByCedulaField = "getMedicalRecordByCedula"
)

const CreateMedicalRecordMutation = `
	mutation CreateMedicalRecord($input: MedicalRecordInput!) {
		createMedicalRecord(input: $input) {
			id
			motivoConsulta
			diagnostico
			tratamiento
			fecha
			paciente {
				nombre
				apellido
				cedula
			}
			doctor {
				nombre
				cedulaProfesional
				especialidad
			}
		}
	}
`

const GetMedicalRecordByCedulaQuery = `
	query GetMedicalRecordByCedula($cedula: String!) {
		getMedicalRecordByCedula(cedula: $cedula) {
			id
			motivoConsulta
			diagnostico
			tratamiento
			fecha
			paciente {
				id
				nombre
				apellido
				cedula
				edad
				genero
			}
			doctor {
				id
				nombre
				cedulaProfesional
				especialidad
			}
		}
	}
`

type service struct {
	client graphql.Client
	logger *zap.SugaredLogger
}

func NewService(client graphql.Client, logger *zap.SugaredLogger) Service {
	return &service{
		client: client,
		logger: logger,
	}
}

func (s *service) Create(ctx context.Context, input Input) (*MedicalRecord, error) {
	request := &graphql.Request{
		Query: CreateMedicalRecordMutation,
		Variables: map[string]interface{}{
			"input": structs.Map(input),
		},
	}

	response, err := s.client.Do(ctx, request)
	if err != nil {
		return nil, err
	}

	data, ok := response.Data[createMedicalRecordField]
	if !ok || data == nil {
		return nil, errs.NewRemoteError("malformed response: missing " + createMedicalRecordField)
	}

	var record MedicalRecord
	if err := mapstructure.Decode(data, &record); err != nil {
		s.logger.Debugw("unable to decode created record", "error", err)
		return nil, errs.NewRemoteError("malformed response: " + err.Error())
	}

	s.logger.Debugw("medical record created", "id", record.ID, "cedula", record.Patient.NationalID)
	return &record, nil
}

func (s *service) FindByCedula(ctx context.Context, cedula string) ([]MedicalRecord, error) {
	request := &graphql.Request{
		Query: GetMedicalRecordByCedulaQuery,
		Variables: map[string]interface{}{
			"cedula": cedula,
		},
	}

	response, err := s.client.Do(ctx, request)
	if err != nil {
		return nil, err
	}

	var result []MedicalRecord
	if err := mapstructure.Decode(response.Data[getMedicalRecordByCedulaField], &result); err != nil {
		return nil, errs.NewRemoteError("malformed response: " + err.Error())
	}

	return result, nil
}
