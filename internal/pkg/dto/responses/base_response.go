package responses

type Health struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
