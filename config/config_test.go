package config_test

import (
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/historias-clinicas/seed/config"
)

var _ = Describe("Config", func() {
	BeforeEach(func() {
		for _, key := range []string{"SEED_GRAPHQL_URL", "SEED_FRONTEND_URL", "SEED_PROBE_TIMEOUT", "LOG_LEVEL"} {
			if value, ok := os.LookupEnv(key); ok {
				Expect(os.Unsetenv(key)).To(Succeed())
				DeferCleanup(os.Setenv, key, value)
			}
		}
	})

	It("uses the defaults", func() {
		cfg, err := config.Load()
		Expect(err).ToNot(HaveOccurred())
		Expect(cfg.GraphQLURL).To(Equal("http://localhost:3000/graphql"))
		Expect(cfg.FrontendURL).To(Equal("http://localhost:3001"))
		Expect(cfg.ProbeTimeout).To(Equal(5 * time.Second))
		Expect(cfg.LogLevel).To(Equal("error"))
	})

	It("reads the environment", func() {
		GinkgoT().Setenv("SEED_GRAPHQL_URL", "http://backend:4000/graphql")
		GinkgoT().Setenv("SEED_PROBE_TIMEOUT", "250ms")
		GinkgoT().Setenv("LOG_LEVEL", "debug")

		cfg, err := config.Load()
		Expect(err).ToNot(HaveOccurred())
		Expect(cfg.GraphQLURL).To(Equal("http://backend:4000/graphql"))
		Expect(cfg.ProbeTimeout).To(Equal(250 * time.Millisecond))
		Expect(cfg.LogLevel).To(Equal("debug"))
	})

	It("rejects an invalid timeout", func() {
		GinkgoT().Setenv("SEED_PROBE_TIMEOUT", "soon")

		_, err := config.Load()
		Expect(err).To(HaveOccurred())
	})
})
