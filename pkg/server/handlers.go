package server

import (
	"Immob/handler"
)

type Handlers struct {
	Auth         *handler.Auth
	User         *handler.User
	Property     *handler.Property
	Favorite     *handler.Favorite
	Review       *handler.Review
	Feedback     *handler.Feedback
	Notification *handler.Notification
	Web          *handler.Web
}
