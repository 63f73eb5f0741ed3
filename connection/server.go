package connection

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authcontroller "planora/controller/auth"
	"planora/controller/category"
	"planora/controller/dashboard"
	"planora/controller/task"
	"planora/controller/user"
	"planora/services"
	"planora/store"
)

func StartServer() {
	router := gin.Default()

	firestoreClient, authClient, err := FBConnection()
	if err != nil {
		log.Fatalf("Failed to initialize Firebase clients: %v", err)
	}

	db, err := OpenDatabase()
	if err != nil {
		log.Fatalf("Failed to open snapshot database: %v", err)
	}

	provider := services.NewFirebaseAuthService(firestoreClient, authClient)
	root := store.NewRootStore(provider, services.NewSnapshotService(db))

	// Reminder mail only runs when a relay is configured.
	if os.Getenv("SMTP_HOST") != "" {
		reminders := services.NewReminderService(root.Tasks)
		go reminders.Run(time.Hour, make(chan struct{}))
	}

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Api is running!"})
	})

	router.Use(cors.Default())

	authcontroller.SignInController(router, root, firestoreClient)
	authcontroller.SignUpController(router, root, firestoreClient)
	authcontroller.GoogleSignInController(router, root, firestoreClient)
	authcontroller.AnonymousSignInController(router, root, firestoreClient)
	authcontroller.SignOutController(router, root)
	authcontroller.RefreshTokenController(router, firestoreClient)
	authcontroller.CaptchaController(router)
	category.CategoryController(router, root)
	task.TaskController(router, root)
	dashboard.DashboardController(router, root)
	user.UserController(router, root, firestoreClient)

	router.Run()
}
