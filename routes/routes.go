package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant-api/controllers"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "API up and running."})
	})

	restaurants := r.Group("/restaurants")
	{
		restaurants.GET("/top-rated", controllers.TopRatedRestaurants)
		restaurants.GET("/distinct-categories", controllers.DistinctCategories)

		restaurants.GET("", controllers.ListRestaurants)
		restaurants.POST("", controllers.CreateRestaurant)
		restaurants.GET("/:id", controllers.GetRestaurant)
		restaurants.PUT("/:id", controllers.UpdateRestaurant)
		restaurants.DELETE("/:id", controllers.DeleteRestaurant)

		restaurants.POST("/:id/upload-image", controllers.UploadRestaurantImage)
		restaurants.GET("/:id/image/:fileId", controllers.DownloadRestaurantImage)
	}

	users := r.Group("/users")
	{
		users.POST("/batch-create", controllers.BatchCreateUsers)
		users.DELETE("/batch-delete", controllers.BatchDeleteUsers)

		users.GET("", controllers.ListUsers)
		users.POST("", controllers.CreateUser)
		users.GET("/:id", controllers.GetUser)
		users.PUT("/:id", controllers.UpdateUser)
		users.DELETE("/:id", controllers.DeleteUser)
	}

	menuItems := r.Group("/menu-items")
	{
		menuItems.GET("/most-ordered", controllers.MostOrderedMenuItems)

		menuItems.GET("", controllers.ListMenuItems)
		menuItems.POST("", controllers.CreateMenuItem)
		menuItems.GET("/:id", controllers.GetMenuItem)
		menuItems.PUT("/:id", controllers.UpdateMenuItem)
		menuItems.DELETE("/:id", controllers.DeleteMenuItem)
	}

	orders := r.Group("/orders")
	{
		orders.PATCH("/batch-update", controllers.BatchUpdateOrders)

		orders.GET("", controllers.ListOrders)
		orders.POST("", controllers.CreateOrder)
		orders.GET("/:id", controllers.GetOrder)
		orders.PUT("/:id", controllers.UpdateOrder)
		orders.DELETE("/:id", controllers.DeleteOrder)

		orders.PATCH("/:id/add-item", controllers.AddOrderItem)
		orders.PATCH("/:id/remove-item/:itemId", controllers.RemoveOrderItem)
	}

	reviews := r.Group("/reviews")
	{
		reviews.GET("/count", controllers.CountReviews)

		reviews.GET("", controllers.ListReviews)
		reviews.POST("", controllers.CreateReview)
		reviews.GET("/:id", controllers.GetReview)
		reviews.PUT("/:id", controllers.UpdateReview)
		reviews.DELETE("/:id", controllers.DeleteReview)
	}
}
