package models

// BackendRole описывает, какой из настроенных серверов выбран активным.
type BackendRole string

const (
	RolePrimary   BackendRole = "primary"
	RoleSecondary BackendRole = "secondary"
	RoleCustom    BackendRole = "custom"
	RoleNone      BackendRole = "none"
)

// BackendState - согласованный снимок состояния выбора backend-сервера.
// Читается мостом событий для построения исходящих URL.
type BackendState struct {
	Available bool        `json:"backend_server_available"`
	Role      BackendRole `json:"backend_server_role"`
	Address   string      `json:"backend_server_ip"`
}

// EventPayload - тело исходящего PUT-запроса на backend при действии
// пользователя на панели.
type EventPayload struct {
	Name   string `json:"name"`
	Action string `json:"action"`
	Value  string `json:"value"`
}
