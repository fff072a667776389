package routes

import (
	"backend/configs"
	"backend/controllers"
	"backend/entity"
	"backend/middlewares"
	"backend/repository"
	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	catRepo := repository.NewCategoryRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(db, userRepo, restRepo, cfg.JWTSecret, cfg.JWTTTL)
	userSvc := services.NewUserService(userRepo)
	restSvc := services.NewRestaurantService(db, restRepo, userRepo)
	catSvc := services.NewCategoryService(db, catRepo, menuRepo)
	menuSvc := services.NewMenuService(menuRepo, catRepo)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo)
	adminSvc := services.NewAdminService(db, userRepo, restRepo, menuRepo, orderRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	userCtrl := controllers.NewUserController(userSvc, cfg.UploadDir)
	restCtrl := controllers.NewRestaurantController(restSvc, cfg.UploadDir)
	catCtrl := controllers.NewCategoryController(catSvc, menuSvc, cfg.UploadDir)
	menuCtrl := controllers.NewMenuController(menuSvc, cfg.UploadDir)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	adminCtrl := controllers.NewAdminController(adminSvc)

	auth := func(roles ...string) gin.HandlerFunc {
		return middlewares.AuthMiddleware(cfg.JWTSecret, roles...)
	}

	api := r.Group("/api")

	// Auth (public)
	a := api.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Profile
	user := api.Group("/user", auth(entity.RoleUser))
	{
		user.GET("", userCtrl.Get)
		user.PUT("", userCtrl.Update)
		user.POST("/image", userCtrl.UploadImage)
	}

	// Restaurants
	api.GET("/restaurants", restCtrl.List)
	api.GET("/restaurants/search", restCtrl.Search)
	api.GET("/restaurants/:id", restCtrl.Get)
	api.PUT("/restaurants/update", auth(entity.RoleRestaurant), restCtrl.Update)
	api.DELETE("/restaurants", auth(entity.RoleRestaurant), restCtrl.Delete)

	// Categories
	api.POST("/categories", auth(entity.RoleAdmin, entity.RoleRestaurant), catCtrl.Create)
	api.GET("/categories", catCtrl.List)
	api.GET("/categories/names", catCtrl.ListNames)
	api.GET("/categories/:name/menus", catCtrl.MenusByCategory)
	api.DELETE("/categories/:name", auth(entity.RoleAdmin, entity.RoleRestaurant), catCtrl.Delete)

	// Menus
	api.POST("/menus", auth(entity.RoleAdmin, entity.RoleRestaurant), menuCtrl.Create)
	api.POST("/menus/update/:id", auth(entity.RoleAdmin, entity.RoleRestaurant), menuCtrl.Update)
	api.DELETE("/menus/by-name/:name", auth(entity.RoleAdmin, entity.RoleRestaurant), menuCtrl.DeleteByName)
	api.GET("/menus", menuCtrl.List)
	api.GET("/menus/search", menuCtrl.Search)
	api.GET("/menus/dietary", menuCtrl.FilterByDietary)
	api.GET("/menus/by-restaurant/:id", menuCtrl.ListByRestaurant)

	// Cart (customers only)
	cart := api.Group("/cart", auth(entity.RoleUser))
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("", cartCtrl.Add)
		cart.PUT("/:itemId", cartCtrl.UpdateQuantity)
		cart.DELETE("/:itemId", cartCtrl.Remove)
		cart.DELETE("", cartCtrl.Clear)
	}

	// Orders
	orders := api.Group("/orders")
	{
		orders.POST("/place", auth(entity.RoleUser), orderCtrl.Place)
		orders.GET("/myorders", auth(entity.RoleUser), orderCtrl.ListMine)
		orders.GET("/restaurant/:id", auth(entity.RoleRestaurant, entity.RoleAdmin), orderCtrl.ListByRestaurant)
		orders.PATCH("/status/:id", auth(entity.RoleRestaurant, entity.RoleAdmin), orderCtrl.UpdateStatus)
		orders.DELETE("/:id", auth(entity.RoleRestaurant, entity.RoleAdmin), orderCtrl.Delete)
	}

	// Admin
	admin := api.Group("/admin", auth(entity.RoleAdmin))
	{
		admin.GET("/users", adminCtrl.ListUsers)
		admin.GET("/restaurants", adminCtrl.ListRestaurants)
		admin.DELETE("/restaurants/:id", adminCtrl.DeleteRestaurant)
		admin.GET("/menus", adminCtrl.ListMenus)
		admin.GET("/orders", adminCtrl.ListOrders)
	}
}
