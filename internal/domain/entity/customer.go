package entity

import "time"

// CustomerType tipo de cliente según el servicio Customer.
type CustomerType string

const (
	CustomerTypePersonal CustomerType = "PERSONAL"
	CustomerTypeBusiness CustomerType = "BUSINESS"
)

// Customer espejo de solo lectura del cliente que es propiedad del servicio
// Customer remoto. Se serializa a JSON tanto para el cache Redis como para la
// respuesta del servicio remoto, por eso lleva tags.
type Customer struct {
	ID             string       `json:"id"`
	FullName       string       `json:"fullName"`
	DocumentNumber string       `json:"documentNumber"`
	CustomerType   CustomerType `json:"customerType"`
	Email          string       `json:"email"`
	Phone          string       `json:"phone"`
	Status         string       `json:"status"`
	CreatedAt      *time.Time   `json:"createdAt,omitempty"`
	ModifiedAt     *time.Time   `json:"modifiedAt,omitempty"`
}
