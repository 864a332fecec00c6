package setup

import (
	"github.com/LavaJover/shvark-attribution-service/internal/parser"
	"github.com/LavaJover/shvark-attribution-service/internal/usecase"
)

type Usecases struct {
	Click       usecase.ClickUsecase
	Binding     usecase.BindingUsecase
	Attribution usecase.AttributionUsecase
}

func InitializeUsecases(deps *Dependencies) *Usecases {
	clickUsecase := usecase.NewDefaultClickUsecase(deps.Repositories.ClickRepo)
	bindingUsecase := usecase.NewDefaultBindingUsecase(deps.Repositories.BindingRepo)
	resolver := usecase.NewDefaultAttributionResolver(deps.Repositories.ClickRepo)

	attributionUsecase := usecase.NewDefaultAttributionUsecase(
		resolver,
		deps.Repositories.OrderRepo,
		deps.Forwarder,
		bindingUsecase,
		deps.Publisher,
		deps.Repositories.DiscardRepo,
		deps.Config.KafkaService.EventsTopic,
		parseAdapter,
	)

	return &Usecases{
		Click:       clickUsecase,
		Binding:     bindingUsecase,
		Attribution: attributionUsecase,
	}
}

func parseAdapter(raw string) usecase.ParseResult {
	result := parser.Parse(raw)
	return usecase.ParseResult{
		Notification: result.Notification,
		Binding:      result.Binding,
	}
}
