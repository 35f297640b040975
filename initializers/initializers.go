package initializers

import (
	"context"

	"portal-backend/config"
	"portal-backend/db"
	"portal-backend/fiberlog"
	accesshandler "portal-backend/lib/access"
	authhandler "portal-backend/lib/auth"
	cataloghandler "portal-backend/lib/catalog"
	companieshandler "portal-backend/lib/companies"
	erphandler "portal-backend/lib/external-services/erp"
	erpclient "portal-backend/lib/external-services/erp/client"
	requesthandler "portal-backend/lib/request"
	taskexechandler "portal-backend/lib/taskexec"
	usershandler "portal-backend/lib/users"
	workflowhandler "portal-backend/lib/workflow"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	accesshandler.NewHandler(db.DB)
	accesshandler.InitRules()
	erpclient.NewProvider(config.Conf.Erp.Host, config.Conf.Erp.User, config.Conf.Erp.Password, config.Conf.Erp.Company)
	erphandler.NewHandler()
	cataloghandler.NewHandler()
	workflowhandler.NewHandler()
	requesthandler.NewHandler()
	taskexechandler.NewHandler()
	usershandler.NewHandler()
	companieshandler.NewHandler()
	authhandler.NewHandler()
}
