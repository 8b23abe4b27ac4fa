package dashboard

// Upcoming is the trimmed appointment shape shown on the dashboard.
type Upcoming struct {
	ID          string  `json:"id"`
	PatientName string  `json:"paciente_nome"`
	Date        string  `json:"data"`
	Time        string  `json:"hora"`
	Procedure   *string `json:"procedimento,omitempty"`
	Status      string  `json:"status"`
}

// Summary aggregates the numbers the clinic sees first thing in the morning.
type Summary struct {
	ActivePatients    int         `json:"pacientes_ativos"`
	AppointmentsToday int         `json:"agendamentos_hoje"`
	AppointmentsMonth int         `json:"agendamentos_mes"`
	RevenueMonth      float64     `json:"receita_mes"`
	NextAppointments  []*Upcoming `json:"proximos_agendamentos"`
}
