package test

import (
	"math/rand"

	"github.com/jaswdr/faker"
	"github.com/onsi/ginkgo/v2"

	"github.com/historias-clinicas/seed/fixtures"
)

var (
	Faker  = faker.NewWithSeed(Source)
	Rand   = rand.New(Source)
	Source = rand.NewSource(ginkgo.GinkgoRandomSeed())
)

func RandomDoctor() fixtures.Doctor {
	return fixtures.Doctor{
		Name:           "Dr. " + Faker.Person().Name(),
		ProfessionalID: Faker.Bothify("MED-####-###"),
		Specialty:      Faker.RandomStringElement([]string{"Medicina General", "Pediatría", "Cardiología", "Dermatología"}),
	}
}

func RandomPatient() fixtures.Patient {
	return fixtures.Patient{
		Name:       Faker.Person().FirstName(),
		Surname:    Faker.Person().LastName(),
		NationalID: Faker.Numerify("##########"),
		Age:        Faker.IntBetween(1, 99),
		Gender:     Faker.RandomStringElement([]string{"Masculino", "Femenino"}),
	}
}

func RandomRecord() fixtures.Record {
	return fixtures.Record{
		Patient:   RandomPatient(),
		Doctor:    RandomDoctor(),
		Reason:    Faker.Lorem().Sentence(4),
		Diagnosis: Faker.Lorem().Sentence(3),
		Treatment: Faker.Lorem().Sentence(8),
		DaysAgo:   Faker.IntBetween(0, 365),
	}
}
