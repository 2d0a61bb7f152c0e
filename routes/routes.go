package routes

import (
	"log"
	"market-api/controllers"
	"market-api/models"
	"market-api/repositories"
	"market-api/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine) {
	cartRepo := repositories.NewCartRepository(models.RedisClient)
	customerRepo := repositories.NewCustomerRepository(models.DB)
	sellerRepo := repositories.NewSellerRepository(models.DB)

	emailService, err := models.NewEmailService()
	if err != nil {
		log.Fatalf("Failed to initialize email service: %v", err)
	}

	cartCtrl := controllers.NewCartController(services.NewCartService(cartRepo))
	signUpCtrl := controllers.NewSignUpController(
		services.NewSignUpService(customerRepo, sellerRepo, emailService),
	)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/signup/customer", signUpCtrl.CustomerSignUp)
	router.GET("/signup/customer/verify", signUpCtrl.CustomerVerify)
	router.POST("/signup/seller", signUpCtrl.SellerSignUp)
	router.GET("/signup/seller/verify", signUpCtrl.SellerVerify)

	router.GET("/carts/:customerId", cartCtrl.GetCart)
	router.PUT("/carts/:customerId", cartCtrl.ReplaceCart)
	router.POST("/carts/:customerId/items", cartCtrl.AddToCart)
}
