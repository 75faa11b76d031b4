package router

import (
	"github.com/mahendrairawan/sociable/internal/application"
	"github.com/mahendrairawan/sociable/internal/container"
	pginfra "github.com/mahendrairawan/sociable/internal/infrastructure/postgres"
	handlers "github.com/mahendrairawan/sociable/internal/interface/http"
	"github.com/mahendrairawan/sociable/internal/router/modules"
	"github.com/mahendrairawan/sociable/pkg/helpers"
)

// emailPublisher adapts the optional RabbitMQ publisher; a nil publisher
// means email delivery is disabled.
func emailPublisher() application.EmailPublisher {
	if pub := container.GetRabbitPub(); pub != nil {
		return pub
	}
	return nil
}

func imageStore() application.ImageStore {
	return &helpers.GCSImageHost{
		Client: container.GetGCS(),
		Bucket: container.GetConfig().GCSBucket,
	}
}

// InitModules builds the repositories, services and handlers from the
// container singletons and adds one module per feature area to the registry.
// Called once from cmd/api after the container is populated.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	users := pginfra.NewUserRepository(pool)
	posts := pginfra.NewPostRepository(pool)
	notifs := pginfra.NewNotificationRepository(pool)

	index := application.NewUserIndex(container.GetES(), cfg.ESUsersIndex, logger)
	images := imageStore()
	mail := emailPublisher()

	authSvc := application.NewAuthService(users, index, mail, logger)
	userSvc := application.NewUserService(users, notifs, images, index, mail, logger)
	postSvc := application.NewPostService(posts, users, notifs, images, logger)
	notifSvc := application.NewNotificationService(notifs)

	authH := handlers.NewAuthHandler(authSvc, container.GetJWT(), container.GetCookies(), logger)
	userH := handlers.NewUserHandler(userSvc, logger)
	postH := handlers.NewPostHandler(postSvc, logger)
	notifH := handlers.NewNotificationHandler(notifSvc, logger)

	r.Add(modules.NewAuthModule(authH, users))
	r.Add(modules.NewUserModule(userH, users))
	r.Add(modules.NewPostModule(postH, users))
	r.Add(modules.NewNotificationModule(notifH, users))
}
