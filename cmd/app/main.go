// @title AV Gateway API
// @version 1.0.0
// @description API шлюза управления AV-оборудованием: RPC-команды, интроспекция реестров и выбор backend-сервера.
// @host localhost:8082
// @BasePath /api/v1
package main

import "github.com/iwtcode/avGateway/internal/app"

func main() {
	// Создаем и запускаем новый экземпляр приложения fx
	app.New().Run()
}
