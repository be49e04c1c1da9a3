package main

import (
	"os"

	"github.com/sirupsen/logrus"

	_ "pickup-sports-backend/docs" // This is needed for swag
)

//	@title			Pickup Sports Backend API
//	@version		1.0
//	@description	Backend API for organizing pickup and team games: players, teams with roles, locations, games and rsvps.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.url	http://www.example.com/support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:8000
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.WithError(err).Error("Command failed")
		os.Exit(1)
	}
}
