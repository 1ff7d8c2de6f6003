package handler

import "github.com/gin-gonic/gin"

// RegisterRoutes wires the REST surface onto the engine, including the
// order and item specializations alongside the uniform CRUD routes.
func RegisterRoutes(
	r *gin.Engine,
	users *UserHandler,
	films *FilmHandler,
	menuItems *MenuItemHandler,
	orders *OrderHandler,
	items *ItemHandler,
) {
	api := r.Group("/api")

	userGroup := api.Group("/users")
	{
		userGroup.GET("", users.List)
		userGroup.POST("", users.Create)
		userGroup.GET("/:id", users.Get)
		userGroup.PUT("/:id", users.Update)
		userGroup.DELETE("/:id", users.Delete)
	}

	filmGroup := api.Group("/films")
	{
		filmGroup.GET("", films.List)
		filmGroup.POST("", films.Create)
		filmGroup.GET("/:id", films.Get)
		filmGroup.PUT("/:id", films.Update)
		filmGroup.DELETE("/:id", films.Delete)
	}

	menuGroup := api.Group("/menuitems")
	{
		menuGroup.GET("", menuItems.List)
		menuGroup.POST("", menuItems.Create)
		menuGroup.GET("/:id", menuItems.Get)
		menuGroup.PUT("/:id", menuItems.Update)
		menuGroup.DELETE("/:id", menuItems.Delete)
	}

	orderGroup := api.Group("/orders")
	{
		orderGroup.GET("", orders.List)
		orderGroup.POST("", orders.Create)
		orderGroup.GET("/user/:userid", orders.ListByUser)
		orderGroup.GET("/:id", orders.Get)
		orderGroup.PUT("/:id", orders.Update)
		orderGroup.DELETE("/:id", orders.Delete)
	}

	itemGroup := api.Group("/items")
	{
		itemGroup.GET("", items.List)
		itemGroup.GET("/order/:orderid", items.ListByOrder)
		itemGroup.POST("/order/:orderid", items.BulkCreate)
		itemGroup.DELETE("/order/:orderid", items.DeleteByOrder)
		itemGroup.GET("/:id", items.Get)
		itemGroup.PUT("/:id", items.Update)
		itemGroup.DELETE("/:id", items.Delete)
	}
}
