package mappers

import (
	"github.com/LavaJover/shvark-attribution-service/internal/domain"
	"github.com/LavaJover/shvark-attribution-service/internal/infrastructure/postgres/models"
)

func ToGORMVenda(order *domain.OrderRecord) *models.VendaModel {
	model := &models.VendaModel{
		Chave:         order.ContentKey,
		Hash:          order.ContentHash,
		Valor:         order.Amount,
		OrderID:       order.OrderID,
		TransactionID: order.TransactionID,
		IP:            order.ClientIP,
		UserAgent:     order.Origin,
	}
	if order.Tags != nil {
		model.UTMSource = order.Tags.Source
		model.UTMMedium = order.Tags.Medium
		model.UTMCampaign = order.Tags.Campaign
		model.UTMContent = order.Tags.Content
		model.UTMTerm = order.Tags.Term
	}
	return model
}

func ToDomainVenda(model *models.VendaModel) *domain.OrderRecord {
	return &domain.OrderRecord{
		ContentKey:  model.Chave,
		ContentHash: model.Hash,
		Amount:      model.Valor,
		Tags: &domain.PayloadTags{
			Source:   model.UTMSource,
			Medium:   model.UTMMedium,
			Campaign: model.UTMCampaign,
			Content:  model.UTMContent,
			Term:     model.UTMTerm,
		},
		OrderID:       model.OrderID,
		TransactionID: model.TransactionID,
		ClientIP:      model.IP,
		Origin:        model.UserAgent,
	}
}
