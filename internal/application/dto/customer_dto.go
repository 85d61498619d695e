package dto

// DocumentRequest documento dentro de la creación de cliente.
type DocumentRequest struct {
	TipoDocumento   string `json:"tipoDocumento"`
	NumeroDocumento string `json:"numeroDocumento"`
}

// CreateCustomerRequest cuerpo de POST /api/v1/clientes.
// Las llaves JSON siguen el contrato del frontend (camelCase en español).
type CreateCustomerRequest struct {
	Nombre            string          `json:"nombre"`
	Apellido          string          `json:"apellido"`
	CorreoElectronico string          `json:"correoElectronico"`
	TelefonoCelular   string          `json:"telefonoCelular"`
	FechaNacimiento   string          `json:"fechaNacimiento"` // opcional, YYYY-MM-DD
	Documento         DocumentRequest `json:"documento"`
}

// LookupCustomerRequest parámetros de búsqueda/exportación por documento.
// Acepta query params (GET) y cuerpo JSON (POST).
type LookupCustomerRequest struct {
	TipoDocumento   string `json:"tipoDocumento"   query:"tipo_documento"`
	NumeroDocumento string `json:"numeroDocumento" query:"numero_documento"`
	Formato         string `json:"formato"         query:"formato"` // solo exportación: CSV, TXT, EXCEL
}

// DocumentResponse documento en respuestas.
type DocumentResponse struct {
	TipoDocumento   string `json:"tipoDocumento"`
	NumeroDocumento string `json:"numeroDocumento"`
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID                string            `json:"id"`
	Nombre            string            `json:"nombre"`
	Apellido          string            `json:"apellido"`
	CorreoElectronico string            `json:"correoElectronico"`
	TelefonoCelular   string            `json:"telefonoCelular"`
	FechaNacimiento   *string           `json:"fechaNacimiento"`
	Documento         *DocumentResponse `json:"documento,omitempty"`
}
