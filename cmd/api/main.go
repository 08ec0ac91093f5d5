package main

import (
	_ "imagine_hub/docs"
	"imagine_hub/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Imagine Hub Quote API
// @version         1.0
// @description     Order-quote editing service: one in-memory order per session, rendered into a printable "orçamento de pedido" document.

// @contact.name   Imagine Hub
// @contact.email  imaginehub.oficial@gmail.com

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
