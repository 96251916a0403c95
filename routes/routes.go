package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	config "github.com/phillip/medcamp-server-go/config"
	controllers "github.com/phillip/medcamp-server-go/controllers"
	middleware "github.com/phillip/medcamp-server-go/middleware"
)

// SetupRoutes wires the REST surface. Paths mirror what the frontend already
// calls, so some of them are irregular; auth is applied per route.
func SetupRoutes(r *gin.Engine, cfg *config.Config) {
	auth := middleware.VerifyToken(cfg)

	// health
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Medical camp server is running")
	})

	// auth
	r.POST("/jwt", controllers.CreateToken(cfg))
	r.GET("/jwt/logout", controllers.Logout(cfg))
	r.POST("/jwt/logout", controllers.Logout(cfg))

	// users
	r.POST("/users", controllers.CreateUser(cfg))
	r.GET("/user/:email", auth, controllers.GetUser(cfg))
	r.PATCH("/users/:email", controllers.UpdateUser(cfg))

	// camps
	r.GET("/camps", controllers.ListCamps(cfg))
	r.GET("/camps/popular", controllers.PopularCamps(cfg))
	r.GET("/camps/:id", controllers.GetCamp(cfg))
	r.GET("/camps/myCamps/:email", auth, controllers.MyCamps(cfg))
	r.POST("/camps", auth, controllers.CreateCamp(cfg))
	r.PATCH("/camps/:id", auth, controllers.IncrementParticipant(cfg))
	r.PATCH("/camps/decrement/:id", auth, controllers.DecrementParticipant(cfg))
	r.PUT("/update-camp/:id", auth, controllers.UpdateCamp(cfg))
	r.DELETE("/delete-camp/:id", auth, controllers.DeleteCamp(cfg))

	// participation
	r.GET("/participation/:email", auth, controllers.ParticipationByOrganizer(cfg))
	r.GET("/participation/participant/:email", auth, controllers.ParticipationByParticipant(cfg))
	r.GET("/participation/confirmed/:email", auth, controllers.ConfirmedParticipation(cfg))
	r.POST("/participation", auth, controllers.RegisterParticipation(cfg))
	r.PATCH("/participation/confirm/:id", auth, controllers.ConfirmParticipation(cfg))
	r.DELETE("/participation/delete/:id", auth, controllers.DeleteParticipation(cfg))

	// reviews
	r.GET("/testimonials", controllers.Testimonials(cfg))
	r.POST("/review", auth, controllers.CreateReview(cfg))

	// payments
	r.POST("/create-payment-intent", auth, controllers.CreatePaymentIntent(cfg))
	r.PUT("/payment/:id", auth, controllers.RecordPayment(cfg))
	r.GET("/paid-camp/:email", auth, controllers.PaidParticipation(cfg))

	// upcoming camps
	r.GET("/upcoming-camp", controllers.ListUpcomingCamps(cfg))
	r.GET("/upcoming-camps/myCamps/:email", auth, controllers.MyUpcomingCamps(cfg))
	r.GET("/upcoming-camp/:id", controllers.GetUpcomingCamp(cfg))
	r.POST("/upcoming-camp", auth, controllers.CreateUpcomingCamp(cfg))
	r.PUT("/update/upcoming-camp/:id", auth, controllers.UpdateUpcomingCamp(cfg))
	r.GET("/upcoming/professional/:email", auth, controllers.ProfessionalJoins(cfg))
	r.PUT("/upcoming/interested", auth, controllers.JoinInterestProfessional(cfg))
	r.PUT("/upcoming/interested/participant", auth, controllers.JoinInterestParticipant(cfg))
	r.DELETE("/upcoming-camp/delete/:id", auth, controllers.DeleteUpcomingCamp(cfg))

	// mail + uploads
	r.POST("/send-mail", controllers.SendMail(cfg))
	r.POST("/upload-image", auth, controllers.UploadImage(cfg))
}
