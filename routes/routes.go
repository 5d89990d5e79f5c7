package routes

import (
	"HealisPortal/config/authorization"
	"HealisPortal/controllers"

	"github.com/gin-gonic/gin"
)

func Routes(r *gin.Engine) {

	//public
	controllers.Auth(r)
	controllers.Pharmacy(r)
	controllers.Inventory(r)
	controllers.Billing(r)

	//privateroutes
	r.Use(authorization.JWTAuth())
	controllers.AuthProtected(r)
	controllers.Admin(r)
	controllers.PharmacyProtected(r)
	controllers.Prescription(r)
}
