package dashboard

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"planora/middleware"
	"planora/store"
)

// Dashboard endpoints expose the store's derived views for the home and
// projects screens.
func DashboardController(router *gin.Engine, root *store.RootStore) {
	routes := router.Group("/dashboard", middleware.AccessTokenMiddleware())
	{
		routes.GET("/today", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"tasks": root.Tasks.TodayTasks(time.Now())})
		})
		routes.GET("/today/recent", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"tasks": root.Tasks.TodaysRecentTasks(time.Now())})
		})
		routes.GET("/todo", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"tasks": root.Tasks.TodoTasks()})
		})
		routes.GET("/due", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"tasks": root.Tasks.DueTasks(time.Now())})
		})
	}
}
