package errors_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	errs "github.com/historias-clinicas/seed/errors"
)

var _ = Describe("Errors", func() {
	It("classifies transport errors and keeps the cause", func() {
		cause := errors.New("connection refused")
		err := errs.NewTransportError(cause)
		Expect(errors.Is(err, errs.Transport)).To(BeTrue())
		Expect(errors.Is(err, errs.Remote)).To(BeFalse())
		Expect(errors.Is(err, cause)).To(BeTrue())
		Expect(err).To(MatchError("connection refused"))
		Expect(errs.Cause(err)).To(Equal(cause))
	})

	It("classifies remote errors by their message", func() {
		err := errs.NewRemoteError("Paciente no encontrado")
		Expect(errors.Is(err, errs.Remote)).To(BeTrue())
		Expect(errors.Is(err, errs.Transport)).To(BeFalse())
		Expect(errs.Cause(err)).To(MatchError("Paciente no encontrado"))
	})

	It("wraps unreachable endpoint errors", func() {
		err := errs.NewUnreachableError(errors.New("timeout"))
		Expect(errors.Is(err, errs.EndpointUnreachable)).To(BeTrue())
		Expect(err).To(MatchError("endpoint unreachable: timeout"))
		Expect(errs.Cause(err)).To(Equal(err))
	})
})
