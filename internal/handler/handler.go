package handlers

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/FedeLo13/ceramic-affair-web/internal/config"
	"github.com/FedeLo13/ceramic-affair-web/internal/service"
)

type Handlers struct {
	ProductService    service.ProductService
	CategoryService   service.CategoryService
	ImageService      service.ImageService
	FindMePostService service.FindMePostService
	SubscriberService service.SubscriberService
	NewsletterService service.NewsletterService
	ContactService    service.ContactService
	AuthService       service.AuthService
	Cfg               *config.Config
	Validate          *validator.Validate
}

func NewHandlers(services *service.Service, cfg *config.Config) *Handlers {
	validate := validator.New()

	// report validation errors under the wire (json) field names
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Handlers{
		ProductService:    services.Product,
		CategoryService:   services.Category,
		ImageService:      services.Image,
		FindMePostService: services.FindMePost,
		SubscriberService: services.Subscriber,
		NewsletterService: services.Newsletter,
		ContactService:    services.Contact,
		AuthService:       services.Auth,
		Cfg:               cfg,
		Validate:          validate,
	}
}
