package mappers

import (
	"github.com/LavaJover/shvark-attribution-service/internal/domain"
	"github.com/LavaJover/shvark-attribution-service/internal/infrastructure/postgres/models"
)

func ToDomainClick(model *models.FrontendUTMModel) *domain.ClickRecord {
	return &domain.ClickRecord{
		ClickID:      model.UniqueClickID,
		ObservedAtMs: model.TimestampMs,
		Amount:       model.Valor,
		FBCLID:       model.FBCLID,
		Tags: domain.TrackingTags{
			Source:   model.UTMSource,
			Medium:   model.UTMMedium,
			Campaign: model.UTMCampaign,
			Content:  model.UTMContent,
			Term:     model.UTMTerm,
		},
		ClientIP: model.IP,
	}
}

func ToGORMClick(click *domain.ClickRecord) *models.FrontendUTMModel {
	return &models.FrontendUTMModel{
		UniqueClickID: click.ClickID,
		TimestampMs:   click.ObservedAtMs,
		Valor:         click.Amount,
		FBCLID:        click.FBCLID,
		UTMSource:     click.Tags.Source,
		UTMMedium:     click.Tags.Medium,
		UTMCampaign:   click.Tags.Campaign,
		UTMContent:    click.Tags.Content,
		UTMTerm:       click.Tags.Term,
		IP:            click.ClientIP,
	}
}
