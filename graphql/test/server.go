package test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/brpaz/echozap"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/historias-clinicas/seed/graphql"
)

const Endpoint = "/graphql"

// GraphQLServer is a stand-in for the medical records backend. Created records
// are echoed back with a generated id and kept for cedula lookups.
type GraphQLServer struct {
	*httptest.Server

	mu         sync.Mutex
	records    []map[string]interface{}
	requests   []graphql.Request
	errors     []string
	status     int
	failOnCall map[int]string
	mutations  int
}

func ServerStub() *GraphQLServer {
	stub := &GraphQLServer{failOnCall: map[int]string{}}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(echozap.ZapLogger(zap.NewNop()))
	e.POST(Endpoint, stub.handle)

	stub.Server = httptest.NewServer(e)
	return stub
}

func (s *GraphQLServer) GraphQLURL() string {
	return s.Server.URL + Endpoint
}

// RespondWithErrors makes every following operation return the given error list
// alongside whatever data would have been returned
func (s *GraphQLServer) RespondWithErrors(messages ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errors = messages
}

// RespondWithStatus makes every following request fail with the given HTTP status
func (s *GraphQLServer) RespondWithStatus(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
}

// FailMutation makes the n-th (1-based) createMedicalRecord call fail with message
func (s *GraphQLServer) FailMutation(n int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failOnCall[n] = message
}

func (s *GraphQLServer) Mutations() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mutations
}

func (s *GraphQLServer) Requests() []graphql.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]graphql.Request(nil), s.requests...)
}

func (s *GraphQLServer) handle(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != 0 {
		return c.NoContent(s.status)
	}

	var request graphql.Request
	if err := json.NewDecoder(c.Request().Body).Decode(&request); err != nil {
		return c.NoContent(http.StatusBadRequest)
	}
	s.requests = append(s.requests, request)

	var response graphql.Response
	switch {
	case strings.Contains(request.Query, "createMedicalRecord"):
		s.mutations++
		if message, ok := s.failOnCall[s.mutations]; ok {
			response.Errors = []graphql.Error{{Message: message}}
			break
		}
		response.Data = map[string]interface{}{"createMedicalRecord": s.create(request.Variables)}
	case strings.Contains(request.Query, "getMedicalRecordByCedula"):
		cedula, _ := request.Variables["cedula"].(string)
		response.Data = map[string]interface{}{"getMedicalRecordByCedula": s.findByCedula(cedula)}
	case strings.Contains(request.Query, "__typename"):
		response.Data = map[string]interface{}{"__typename": "Query"}
	default:
		response.Errors = []graphql.Error{{Message: "unsupported operation"}}
	}

	for _, message := range s.errors {
		response.Errors = append(response.Errors, graphql.Error{Message: message})
	}

	body, err := json.Marshal(response)
	if err != nil {
		return err
	}
	return c.JSONBlob(http.StatusOK, body)
}

func (s *GraphQLServer) create(variables map[string]interface{}) map[string]interface{} {
	record := map[string]interface{}{}
	if input, ok := variables["input"].(map[string]interface{}); ok {
		for key, value := range input {
			record[key] = value
		}
	}
	record["id"] = uuid.NewString()
	s.records = append(s.records, record)
	return record
}

func (s *GraphQLServer) findByCedula(cedula string) []map[string]interface{} {
	result := make([]map[string]interface{}, 0)
	for _, record := range s.records {
		patient, _ := record["paciente"].(map[string]interface{})
		if patient["cedula"] == cedula {
			result = append(result, record)
		}
	}
	return result
}
