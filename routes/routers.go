package routes

import (
	"context"
	"net/http"

	"hostelhub/controllers"
	middlewares "hostelhub/middleware"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody) {

	authController := controllers.NewAuthController(db)
	hostelController := controllers.NewHostelController(db)
	roomController := controllers.NewRoomController(db, redisCli)
	reservationController := controllers.NewReservationController(db, redisCli, m)
	memberController := controllers.NewMemberController(db)

	v1 := router.Group("/api/v1")
	v1.Use(middlewares.SessionMiddleware())
	v1.Use(middlewares.ErrorHandler())

	v1.POST("/auth/register", authController.Register)
	v1.POST("/auth/login", authController.Login)
	v1.POST("/auth/google", authController.AuthGoogle)
	v1.GET("/profile", middlewares.AuthMiddleware(), authController.GetProfile)

	v1.POST("/hostels", middlewares.AuthMiddleware(), hostelController.CreateHostel)
	v1.GET("/hostels/:slug", hostelController.GetHostel)
	v1.PUT("/hostelUpdate", middlewares.AuthMiddleware(), hostelController.UpdateHostel)
	v1.GET("/hostelSearch", hostelController.SearchHostels)

	v1.GET("/hostels/:slug/rooms", roomController.GetRooms)
	v1.GET("/hostels/:slug/rooms/:id", roomController.GetRoomDetail)
	v1.POST("/room", middlewares.AuthMiddleware(), roomController.CreateRoom)
	v1.PUT("/roomUpdate", middlewares.AuthMiddleware(), roomController.UpdateRoom)
	v1.DELETE("/room/:id", middlewares.AuthMiddleware(), roomController.DeleteRoom)

	v1.GET("/checkRoom", reservationController.CheckRoom)
	v1.POST("/reservation", reservationController.CreateReservation)
	v1.GET("/reservations", middlewares.AuthMiddleware(), reservationController.GetReservations)
	v1.GET("/reservation/:id", middlewares.AuthMiddleware(), reservationController.GetReservationDetail)
	v1.PUT("/reservationStatus", middlewares.AuthMiddleware(), reservationController.ChangeReservationStatus)
	v1.PUT("/reservationCancel", middlewares.AuthMiddleware(), reservationController.CancelReservation)

	v1.POST("/members/invite", middlewares.AuthMiddleware(), memberController.InviteMember)
	v1.GET("/members", middlewares.AuthMiddleware(), memberController.GetMembers)

	v1.POST("/img/multi-upload", middlewares.AuthMiddleware(), func(c *gin.Context) {
		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No files uploaded"})
			return
		}
		files := form.File["files"]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No files uploaded"})
			return
		}

		var urls []string
		for _, file := range files {
			src, err := file.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Could not open file"})
				return
			}
			defer src.Close()

			ctx := context.Background()
			resp, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "rooms"})
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
				return
			}
			urls = append(urls, resp.SecureURL)
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload successful",
			"urls":    urls,
		})
	})

	v1.POST("/img/upload", middlewares.AuthMiddleware(), func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Could not open file"})
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "rooms"})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload successful",
			"url":     resp.SecureURL,
		})
	})
}
