package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"dreamjournal/internal/app/di"
	"dreamjournal/internal/app/router"
	authadapters "dreamjournal/internal/feature/auth/adapters"
	authhandler "dreamjournal/internal/feature/auth/transport/handler"
	authusecase "dreamjournal/internal/feature/auth/usecase"
	dreamhandler "dreamjournal/internal/feature/dreams/transport/handler"
	dreamsusecase "dreamjournal/internal/feature/dreams/usecase"
	insightshandler "dreamjournal/internal/feature/insights/transport/handler"
	insightsusecase "dreamjournal/internal/feature/insights/usecase"
	verificationadapters "dreamjournal/internal/feature/verification/adapters"
	verificationhandler "dreamjournal/internal/feature/verification/transport/handler"
	verificationusecase "dreamjournal/internal/feature/verification/usecase"
	infradb "dreamjournal/internal/platform/db"
	infraredis "dreamjournal/internal/platform/redis"
	jwtmw "dreamjournal/internal/platform/jwt"
)

func main() {
	// Local development reads configuration from .env; absence is fine.
	_ = godotenv.Load()

	db := infradb.OpenDB()

	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserGorm(db)
	dreamStore := di.NewDreamStore(rdb, db)
	codeRepo := verificationadapters.NewVerificationGorm(db)
	userDirectory := verificationadapters.NewUserDirectoryGorm(db)

	mailTransport, err := di.NewMailer()
	if err != nil {
		log.Fatalf("failed to configure mail transport: %v", err)
	}

	// Usecase
	jwtGen := jwtmw.NewGenerator(os.Getenv("JWT_SECRET"), 24*time.Hour)
	authUC := authusecase.NewAuthUsecase(userRepo, jwtGen)
	linkUC := authusecase.NewLinkUsecase(userRepo, dreamStore)
	dreamsUC := dreamsusecase.NewDreamsUsecase(dreamStore, authUC)
	verificationUC := verificationusecase.NewVerificationUsecase(codeRepo, userDirectory, mailTransport)
	insightsUC := insightsusecase.NewInsightsUsecase(dreamStore, di.NewInterpreter(context.Background()))

	// Handler
	authH := authhandler.NewAuthHandler(authUC, linkUC)
	dreamsH := dreamhandler.NewDreamHandler(dreamsUC)
	verificationH := verificationhandler.NewVerificationHandler(verificationUC)
	insightsH := insightshandler.NewInsightsHandler(insightsUC)

	r := router.NewRouter(authH, dreamsH, verificationH, insightsH)

	if os.Getenv("JWT_SECRET") == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
