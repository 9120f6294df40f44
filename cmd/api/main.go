package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"notenest/internal/auth"
	"notenest/internal/config"
	"notenest/internal/domain/primary"
	"notenest/internal/domain/primary/repository"
	"notenest/internal/http/handler"
	"notenest/internal/http/middleware"
	"notenest/internal/infrastructure/storage"
	"notenest/internal/mirror"
	"notenest/internal/service"
	"notenest/internal/utils/validators"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	validate := validators.New()

	// Init the relational primary store
	db, err := primary.Init(cfg.DBDriver, cfg.DSN())
	if err != nil {
		panic(err)
	}

	// Init the document mirror and its async writer
	store, err := mirror.NewSurrealStore(cfg.SurrealURL, cfg.SurrealUser, cfg.SurrealPass, cfg.SurrealNS, cfg.SurrealDB)
	if err != nil {
		panic(err)
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	writer := mirror.NewWriter(store, cfg.MirrorBuffer)
	go writer.Start(ctx)

	// Init S3 client
	s3Client, err := storage.NewStorageClient(cfg.S3Region, cfg.S3Bucket)
	if err != nil {
		panic(err)
	}

	// Getting repos
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	// Getting services
	sessionService := service.NewSessionService(sessionRepo, writer, validate)
	userService := service.NewUserService(userRepo, sessionService, auth.NewPasswordHasher(), writer, validate)
	noteService := service.NewNoteService(noteRepo, userRepo, writer, store, validate)
	commentService := service.NewCommentService(commentRepo, writer, validate)

	// Getting handlers
	userRoutes := handler.NewUserDefault(userService)
	sessionRoutes := handler.NewSessionDefault(sessionService)
	noteRoutes := handler.NewNoteDefault(noteService)
	commentRoutes := handler.NewCommentDefault(commentService)
	utilRoutes := handler.NewUtilRoute(s3Client)

	authRequired := middleware.NewAuthMiddleware(&middleware.AuthMiddlewareConfig{
		Sessions: sessionService,
		UserRepo: userRepo,
	})

	e := echo.New()
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.BodyLimit("30M"))

	// Users
	e.GET("/api/users", userRoutes.GetUsers)
	e.GET("/api/user/:id", userRoutes.GetUser)
	e.POST("/api/register", userRoutes.Register)
	e.POST("/api/login", userRoutes.Login)
	e.POST("/api/logout", userRoutes.Logout)
	e.PUT("/api/updateUser/:id", userRoutes.UpdateUser)

	// Sessions
	e.GET("/api/sessions", sessionRoutes.GetSessions)
	e.GET("/api/session/:userId", sessionRoutes.GetSession)
	e.POST("/api/createSession", sessionRoutes.CreateSession)
	e.POST("/api/validateSession", sessionRoutes.ValidateSession)
	e.DELETE("/api/deleteSession/:userId", sessionRoutes.DeleteSession)

	// Notes
	e.GET("/api/notes", noteRoutes.GetNotes)
	e.POST("/api/notes", noteRoutes.SyncNotes)
	e.GET("/api/note/:id", noteRoutes.GetNote)
	e.POST("/api/addNote", noteRoutes.AddNote)
	e.PUT("/api/updateNote/:id", noteRoutes.UpdateNote)
	e.DELETE("/api/deleteNote/:id", noteRoutes.DeleteNote)
	e.GET("/api/notesByUser/:userId", noteRoutes.GetNotesByUser)
	e.GET("/api/publicNotes", noteRoutes.GetPublicNotes)
	e.GET("/api/searchNotes", noteRoutes.SearchNotes)
	e.PUT("/api/likeNote/:id", noteRoutes.LikeNote)
	e.PUT("/api/unlikeNote/:id", noteRoutes.UnlikeNote)

	// Note files
	e.GET("/api/noteFiles/:noteId", noteRoutes.GetNoteFiles)
	e.POST("/api/addNoteFile", noteRoutes.AddNoteFile)
	e.DELETE("/api/deleteNoteFile/:id", noteRoutes.DeleteNoteFile)

	// Comments
	e.GET("/api/comments", commentRoutes.GetComments)
	e.GET("/api/comment/:id", commentRoutes.GetComment)
	e.GET("/api/commentsByNote/:noteId", commentRoutes.GetCommentsByNote)
	e.GET("/api/commentsByUser/:userId", commentRoutes.GetCommentsByUser)
	e.GET("/api/commentReplies/:id", commentRoutes.GetCommentReplies)
	e.POST("/api/addComment", commentRoutes.AddComment)
	e.POST("/api/replyComment", commentRoutes.ReplyComment)
	e.PUT("/api/updateComment/:id", commentRoutes.UpdateComment)
	e.DELETE("/api/deleteComment/:id", commentRoutes.DeleteComment)

	// Uploads
	e.POST("/api/uploads", utilRoutes.Upload)

	// Authenticated
	e.GET("/api/me", utilRoutes.Me, authRequired)

	// Docker Compose healthcheck
	e.GET("/health", handler.HealthCheck)

	if err := e.Start(cfg.HTTPAddr); err != nil {
		panic(err)
	}
}
