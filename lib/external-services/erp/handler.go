package erphandler

import (
	"context"

	log "github.com/sirupsen/logrus"
	"portal-backend/lib/external-services/erp/client"
	"portal-backend/models"
	erpapimodels "portal-backend/models/api/erp"
)

type Provider interface {
	ListDrafts(ctx context.Context) ([]erpapimodels.Draft, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		client: client.Instance,
	}
}

type impl struct {
	client client.Provider
}

// ListDrafts logs in per call; the ERP session is not reused across requests.
func (i impl) ListDrafts(ctx context.Context) ([]erpapimodels.Draft, error) {
	sessionID, err := i.client.Login(ctx)
	if err != nil {
		log.WithError(err).Error("erp login failed")
		return nil, models.NewUpstreamError("purchase system unavailable", err)
	}
	drafts, err := i.client.ListDrafts(ctx, sessionID)
	if err != nil {
		log.WithError(err).Error("erp draft listing failed")
		return nil, models.NewUpstreamError("could not load purchase drafts", err)
	}
	return drafts, nil
}
