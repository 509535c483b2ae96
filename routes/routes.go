package routes

import (
	"net/http"

	"nutritrack/controllers"
	"nutritrack/middlewares"

	"github.com/gin-gonic/gin"
)

// Handlers bundles every controller the router mounts.
type Handlers struct {
	Profile   *controllers.ProfileController
	Food      *controllers.FoodController
	Water     *controllers.WaterController
	Report    *controllers.ReportController
	Token     *controllers.TokenController
	Assistant *controllers.AssistantController
	Realtime  *controllers.RealtimeController
}

func SetupRouter(h Handlers) *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.CORS())

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "API server is running")
	})

	api := r.Group("/api")
	{
		api.POST("/createProfile", h.Profile.CreateProfile)
		api.GET("/profile/:userId", h.Profile.GetProfile)
		api.PUT("/editProfile/:userId", h.Profile.EditProfile)

		api.POST("/addFood", h.Food.AddFood)
		api.GET("/listFood/:userId", h.Food.ListFood)
		api.POST("/getCustomDateData", h.Food.GetCustomDateData)
		api.GET("/dataHomepage/:userId", h.Food.DataHomepage)

		api.POST("/waterTracker", h.Water.AddIntake)
		api.GET("/waterTracker/:userId", h.Water.GetIntake)

		api.GET("/report/:userId", h.Report.GetReport)

		api.POST("/updateFcmToken", h.Token.UpdateFcmToken)
		api.POST("/logout", h.Token.Logout)

		api.POST("/talkToAI", h.Assistant.TalkToAI)
	}

	r.GET("/ws/progress/:userId", h.Realtime.ProgressWS)

	return r
}
