package routes

import (
	"net/http"

	"aliccedress/controllers"
	"aliccedress/libs"
	"aliccedress/middleware"
	"aliccedress/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies are the services the routes dispatch to.
type Dependencies struct {
	Catalog   *services.CatalogService
	Navigator *services.Navigator
	Uploader  libs.AvatarUploader
	UploadDir string
}

func SetupRoutes(router *gin.Engine, deps Dependencies) {
	productCtrl := controllers.NewProductController(deps.Catalog)
	navCtrl := controllers.NewNavigationController(deps.Navigator)
	cartCtrl := controllers.NewCartController(deps.Navigator)
	authCtrl := controllers.NewAuthController(deps.Navigator)
	profileCtrl := controllers.NewProfileController(deps.Navigator, deps.Uploader)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	router.GET("/products", productCtrl.GetAllProducts)
	router.GET("/products/:id", productCtrl.GetProductByID)

	nav := router.Group("/navigation")
	{
		nav.GET("", navCtrl.GetState)
		nav.POST("/home", navCtrl.Home)
		nav.POST("/catalog", navCtrl.Catalog)
		nav.POST("/cart", navCtrl.Cart)
		nav.POST("/profile", navCtrl.Profile)
		nav.POST("/back", navCtrl.Back)
		nav.POST("/products/:id", navCtrl.SelectProduct)
	}

	cart := router.Group("/cart")
	{
		cart.GET("", cartCtrl.GetCart)
		cart.DELETE("", cartCtrl.Clear)
		cart.POST("/items", cartCtrl.AddItem)
		cart.PATCH("/items/:id", cartCtrl.UpdateQuantity)
		cart.DELETE("/items/:id", cartCtrl.RemoveItem)
		cart.POST("/checkout", cartCtrl.Checkout)
	}
	router.GET("/checkout/receipts/:token", cartCtrl.VerifyReceipt)

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)
	router.POST("/auth/logout", authCtrl.RequestLogout)
	router.POST("/auth/logout/confirm", authCtrl.ConfirmLogout)
	router.POST("/auth/logout/cancel", authCtrl.CancelLogout)

	profile := router.Group("/profile")
	profile.Use(middleware.SessionRequired(deps.Navigator))
	{
		profile.GET("", profileCtrl.GetProfile)
		profile.PUT("", profileCtrl.SaveProfile)
		profile.POST("/edit", profileCtrl.StartEditing)
		profile.POST("/cancel", profileCtrl.CancelEditing)
		profile.PATCH("/draft", profileCtrl.UpdateDraft)
		profile.POST("/avatar", profileCtrl.UploadAvatar)
	}

	if deps.UploadDir != "" {
		router.Static("/uploads", deps.UploadDir)
	}
}
