package graphql_test

import (
	"context"
	stdErrors "errors"
	"net/http"
	"net/http/httptest"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/historias-clinicas/seed/config"
	errs "github.com/historias-clinicas/seed/errors"
	"github.com/historias-clinicas/seed/graphql"
	graphqlTest "github.com/historias-clinicas/seed/graphql/test"
)

var _ = Describe("Client", func() {
	var server *graphqlTest.GraphQLServer
	var cfg *config.Config
	var client graphql.Client

	BeforeEach(func() {
		server = graphqlTest.ServerStub()
		cfg = &config.Config{
			GraphQLURL:   server.GraphQLURL(),
			ProbeTimeout: time.Second,
		}
		client = graphql.NewClient(cfg, zap.NewNop().Sugar())
	})

	AfterEach(func() {
		server.Close()
	})

	Describe("Ping", func() {
		It("succeeds when the endpoint answers with 200", func() {
			Expect(client.Ping(context.Background())).To(Succeed())
			requests := server.Requests()
			Expect(requests).To(HaveLen(1))
			Expect(requests[0].Query).To(Equal(graphql.TypenameQuery))
		})

		It("fails when the endpoint answers with a different status", func() {
			server.RespondWithStatus(http.StatusServiceUnavailable)
			err := client.Ping(context.Background())
			Expect(err).To(HaveOccurred())
			Expect(stdErrors.Is(err, errs.EndpointUnreachable)).To(BeTrue())
		})

		It("fails when the endpoint is down", func() {
			server.Close()
			err := client.Ping(context.Background())
			Expect(stdErrors.Is(err, errs.EndpointUnreachable)).To(BeTrue())
		})

		It("fails when the endpoint does not answer within the probe timeout", func() {
			slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				time.Sleep(500 * time.Millisecond)
				w.WriteHeader(http.StatusOK)
			}))
			defer slow.Close()

			cfg.GraphQLURL = slow.URL
			cfg.ProbeTimeout = 50 * time.Millisecond
			client = graphql.NewClient(cfg, zap.NewNop().Sugar())

			err := client.Ping(context.Background())
			Expect(stdErrors.Is(err, errs.EndpointUnreachable)).To(BeTrue())
		})
	})

	Describe("Do", func() {
		var request *graphql.Request

		BeforeEach(func() {
			request = &graphql.Request{
				Query: "mutation CreateMedicalRecord($input: MedicalRecordInput!) { createMedicalRecord(input: $input) { id } }",
				Variables: map[string]interface{}{
					"input": map[string]interface{}{"motivoConsulta": "Control de rutina"},
				},
			}
		})

		It("returns the response data", func() {
			response, err := client.Do(context.Background(), request)
			Expect(err).ToNot(HaveOccurred())
			Expect(response.Data).To(HaveKey("createMedicalRecord"))
			record := response.Data["createMedicalRecord"].(map[string]interface{})
			Expect(record).To(HaveKeyWithValue("motivoConsulta", "Control de rutina"))
			Expect(record).To(HaveKey("id"))
		})

		It("returns a remote error with the first message when the response has errors", func() {
			server.RespondWithErrors("first failure", "second failure")
			response, err := client.Do(context.Background(), request)
			Expect(err).To(MatchError("first failure"))
			Expect(stdErrors.Is(err, errs.Remote)).To(BeTrue())
			Expect(stdErrors.Is(err, errs.Transport)).To(BeFalse())
			Expect(response.Data).To(HaveKey("createMedicalRecord"))
		})

		It("returns a transport error for a non 2xx status", func() {
			server.RespondWithStatus(http.StatusInternalServerError)
			_, err := client.Do(context.Background(), request)
			Expect(stdErrors.Is(err, errs.Transport)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("500"))
		})

		It("returns a transport error when the server is down", func() {
			server.Close()
			_, err := client.Do(context.Background(), request)
			Expect(stdErrors.Is(err, errs.Transport)).To(BeTrue())
		})

		It("returns a transport error when the body is not a graphql envelope", func() {
			broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "text/html")
				_, _ = w.Write([]byte("<html>oops</html>"))
			}))
			defer broken.Close()

			cfg.GraphQLURL = broken.URL
			client = graphql.NewClient(cfg, zap.NewNop().Sugar())

			_, err := client.Do(context.Background(), request)
			Expect(stdErrors.Is(err, errs.Transport)).To(BeTrue())
		})
	})
})
