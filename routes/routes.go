package routes

import (
	"github.com/agusyquia/csci42-group4/controllers"
	"github.com/agusyquia/csci42-group4/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// Public routes
	r.POST("/users/register", controllers.Register)
	r.POST("/auth/login", controllers.Login)

	users := r.Group("/users")
	users.Use(middlewares.AuthMiddleware())
	{
		users.GET("", controllers.ListUsers)
		users.GET("/:id", controllers.GetUser)
		users.PUT("/:id", controllers.UpdateUser)
		users.DELETE("/:id", controllers.DeleteUser)
	}

	entries := r.Group("/journal-entries")
	entries.Use(middlewares.AuthMiddleware())
	{
		entries.GET("", controllers.ListJournalEntries)
		entries.POST("", controllers.CreateJournalEntry)
		entries.GET("/by-date", controllers.GetJournalEntryByDate)
		entries.GET("/:id", controllers.GetJournalEntry)
		entries.PUT("/:id", controllers.UpdateJournalEntry)
		entries.DELETE("/:id", controllers.DeleteJournalEntry)
		entries.POST("/:id/add_activity", controllers.AddActivityToEntry)
	}

	categories := r.Group("/categories")
	categories.Use(middlewares.AuthMiddleware())
	{
		categories.GET("", controllers.ListCategories)
		categories.POST("", controllers.CreateCategory)
		categories.GET("/:id", controllers.GetCategory)
		categories.PUT("/:id", controllers.UpdateCategory)
		categories.DELETE("/:id", controllers.DeleteCategory)
	}

	activityTypes := r.Group("/activity-types")
	activityTypes.Use(middlewares.AuthMiddleware())
	{
		activityTypes.GET("", controllers.ListActivityTypes)
		activityTypes.POST("", controllers.CreateActivityType)
		activityTypes.GET("/:id", controllers.GetActivityType)
		activityTypes.PUT("/:id", controllers.UpdateActivityType)
		activityTypes.DELETE("/:id", controllers.DeleteActivityType)
	}

	metricTypes := r.Group("/metric-types")
	metricTypes.Use(middlewares.AuthMiddleware())
	{
		metricTypes.GET("", controllers.ListMetricTypes)
		metricTypes.POST("", controllers.CreateMetricType)
		metricTypes.GET("/:id", controllers.GetMetricType)
		metricTypes.PUT("/:id", controllers.UpdateMetricType)
		metricTypes.DELETE("/:id", controllers.DeleteMetricType)
	}

	activities := r.Group("/activities")
	activities.Use(middlewares.AuthMiddleware())
	{
		activities.GET("", controllers.ListActivities)
		activities.POST("", controllers.CreateActivity)
		activities.GET("/by-type", controllers.ListActivitiesByType)
		activities.POST("/add_to_journal", controllers.CreateActivity)
		activities.GET("/:id", controllers.GetActivity)
		activities.PUT("/:id", controllers.UpdateActivity)
		activities.DELETE("/:id", controllers.DeleteActivity)
		activities.GET("/:id/metrics", controllers.ListActivityMetrics)
	}

	metrics := r.Group("/metrics")
	metrics.Use(middlewares.AuthMiddleware())
	{
		metrics.GET("", controllers.ListMetrics)
		metrics.POST("", controllers.CreateMetric)
		metrics.GET("/:id", controllers.GetMetric)
		metrics.PUT("/:id", controllers.UpdateMetric)
		metrics.DELETE("/:id", controllers.DeleteMetric)
	}

	return r
}
