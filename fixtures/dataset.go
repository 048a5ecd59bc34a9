package fixtures

// New returns the seeding dataset: 3 doctors, 4 patients and 10 medical records.
// Records are submitted in the order they are declared here.
func New() *Dataset {
	carlos := Doctor{Name: "Dr. Carlos Rodríguez", ProfessionalID: "MED-2018-001", Specialty: "Medicina General"}
	maria := Doctor{Name: "Dra. María González", ProfessionalID: "MED-2019-002", Specialty: "Pediatría"}
	jose := Doctor{Name: "Dr. José Martínez", ProfessionalID: "MED-2020-003", Specialty: "Cardiología"}

	juan := Patient{Name: "Juan", Surname: "Pérez", NationalID: "1234567890", Age: 45, Gender: "Masculino"}
	ana := Patient{Name: "Ana", Surname: "López", NationalID: "0987654321", Age: 32, Gender: "Femenino"}
	pedro := Patient{Name: "Pedro", Surname: "Ramírez", NationalID: "1122334455", Age: 28, Gender: "Masculino"}
	laura := Patient{Name: "Laura", Surname: "Torres", NationalID: "5544332211", Age: 52, Gender: "Femenino"}

	return &Dataset{
		Doctors:  []Doctor{carlos, maria, jose},
		Patients: []Patient{juan, ana, pedro, laura},
		Records: []Record{
			{
				Patient:   juan,
				Doctor:    carlos,
				Reason:    "Dolor abdominal intenso",
				Diagnosis: "Gastritis aguda",
				Treatment: "Omeprazol 20mg cada 12 horas por 14 días, dieta blanda",
				DaysAgo:   30,
			},
			{
				Patient:   juan,
				Doctor:    jose,
				Reason:    "Presión arterial elevada",
				Diagnosis: "Hipertensión arterial grado 1",
				Treatment: "Enalapril 10mg diario, reducir sal en dieta, ejercicio moderado",
				DaysAgo:   15,
			},
			{
				Patient:   ana,
				Doctor:    maria,
				Reason:    "Fiebre y tos persistente",
				Diagnosis: "Bronquitis aguda",
				Treatment: "Amoxicilina 500mg cada 8 horas por 7 días, jarabe expectorante",
				DaysAgo:   20,
			},
			{
				Patient:   ana,
				Doctor:    carlos,
				Reason:    "Dolor de cabeza frecuente",
				Diagnosis: "Migraña tensional",
				Treatment: "Paracetamol 500mg cuando sea necesario, técnicas de relajación",
				DaysAgo:   45,
			},
			{
				Patient:   pedro,
				Doctor:    carlos,
				Reason:    "Dolor en rodilla derecha",
				Diagnosis: "Esguince de ligamentos grado 1",
				Treatment: "Reposo relativo, hielo local, ibuprofeno 400mg cada 8 horas",
				DaysAgo:   10,
			},
			{
				Patient:   pedro,
				Doctor:    maria,
				Reason:    "Control de rutina",
				Diagnosis: "Estado de salud normal",
				Treatment: "Continuar con hábitos saludables, control anual",
				DaysAgo:   60,
			},
			{
				Patient:   laura,
				Doctor:    jose,
				Reason:    "Dolor torácico al esfuerzo",
				Diagnosis: "Angina de pecho estable",
				Treatment: "Atorvastatina 20mg nocturno, AAS 100mg diario, nitroglicerina sublingual PRN",
				DaysAgo:   5,
			},
			{
				Patient:   laura,
				Doctor:    carlos,
				Reason:    "Dolor lumbar crónico",
				Diagnosis: "Lumbalgia mecánica",
				Treatment: "Fisioterapia, ejercicios de estiramiento, paracetamol PRN",
				DaysAgo:   25,
			},
			{
				Patient:   laura,
				Doctor:    jose,
				Reason:    "Control cardiovascular",
				Diagnosis: "Cardiopatía isquémica controlada",
				Treatment: "Continuar medicación actual, dieta cardiosaludable, ejercicio moderado",
				DaysAgo:   35,
			},
			{
				Patient:   ana,
				Doctor:    maria,
				Reason:    "Resfriado común",
				Diagnosis: "Rinofaringitis viral",
				Treatment: "Hidratación abundante, reposo, paracetamol 500mg si fiebre",
				DaysAgo:   3,
			},
		},
	}
}
