package config

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nyayasathi/nyayasathi-be/internal/delivery/http/handler"
	"github.com/nyayasathi/nyayasathi-be/internal/delivery/http/middleware"
	"github.com/nyayasathi/nyayasathi-be/internal/delivery/http/repository"
	"github.com/nyayasathi/nyayasathi-be/internal/delivery/http/route"
	"github.com/nyayasathi/nyayasathi-be/internal/delivery/http/usecase"
	"github.com/nyayasathi/nyayasathi-be/internal/pkg/catalog"
	"github.com/nyayasathi/nyayasathi-be/internal/pkg/llm"
	"github.com/nyayasathi/nyayasathi-be/internal/pkg/validate"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

type BootstrapConfig struct {
	Api       *fiber.App
	Config    *viper.Viper
	DB        *gorm.DB
	Log       *logrus.Logger
	Validator *validate.Validator
}

func Bootstrap(config *BootstrapConfig) {

	mid := middleware.NewMiddleware(&middleware.MiddlewareConfig{
		Log:    config.Log,
		Config: config.Config,
	})

	apiKey := ""
	model := ""
	baseURL := ""
	if config.Config != nil {
		apiKey = config.Config.GetString("llm.coach.api_key")
		model = config.Config.GetString("llm.coach.model")
		baseURL = config.Config.GetString("llm.coach.base_url")
	}
	coach := llm.NewCoachClient(apiKey, model, baseURL)

	storageRepo := repository.NewStorageRepository(config.DB)
	accountRepo := repository.NewAccountRepository(config.DB)

	sessionUsecase := usecase.NewSessionUsecase(usecase.SessionConfig{
		DB:       config.DB,
		Log:      config.Log,
		Storage:  storageRepo,
		Accounts: accountRepo,
	})
	preferenceUsecase := usecase.NewPreferenceUsecase(usecase.PreferenceConfig{
		DB:      config.DB,
		Log:     config.Log,
		Storage: storageRepo,
	})
	quizUsecase := usecase.NewQuizUsecase(usecase.QuizConfig{
		DB:      config.DB,
		Log:     config.Log,
		Storage: storageRepo,
		Pool:    catalog.QuestionBank,
		Coach:   coach,
	})
	contentUsecase := usecase.NewContentUsecase()

	authHandler := handler.NewAuthHandler(config.Validator, config.Log, sessionUsecase)
	preferenceHandler := handler.NewPreferenceHandler(config.Validator, config.Log, preferenceUsecase)
	quizHandler := handler.NewQuizHandler(config.Validator, config.Log, quizUsecase)
	contentHandler := handler.NewContentHandler(config.Log, contentUsecase)

	route.Setup(&route.RouteConfig{
		Api:               config.Api,
		Middleware:        mid,
		Sessions:          sessionUsecase,
		AuthHandler:       authHandler,
		PreferenceHandler: preferenceHandler,
		QuizHandler:       quizHandler,
		ContentHandler:    contentHandler,
	})

}
