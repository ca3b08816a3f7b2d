package dto

type TariffResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type ListTariffsResponse struct {
	Tariffs []TariffResponse `json:"tariffs"`
}
