package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dbmodels "portal-backend/models/db"
)

func AutoMigrateDB() error {
	log.Info("running migrations")
	migrations := []struct {
		name  string
		model interface{}
	}{
		{"PortalUser", &dbmodels.PortalUser{}},
		{"Company", &dbmodels.Company{}},
		{"CompanyUser", &dbmodels.CompanyUser{}},
		{"SubprocessUserCompany", &dbmodels.SubprocessUserCompany{}},
		{"CategoryRequest", &dbmodels.CategoryRequest{}},
		{"CategoryCompany", &dbmodels.CategoryCompany{}},
		{"CategoryLeader", &dbmodels.CategoryLeader{}},
		{"ProcessCategory", &dbmodels.ProcessCategory{}},
		{"ProcessAssignment", &dbmodels.ProcessAssignment{}},
		{"TaskProcessCategory", &dbmodels.TaskProcessCategory{}},
		{"TaskAssignment", &dbmodels.TaskAssignment{}},
		{"RequestGeneral", &dbmodels.RequestGeneral{}},
		{"RequestProcess", &dbmodels.RequestProcess{}},
		{"TaskRequestGeneral", &dbmodels.TaskRequestGeneral{}},
	}
	for _, m := range migrations {
		if err := DB.AutoMigrate(m.model); err != nil {
			return errors.Wrapf(err, "migration failed for %s", m.name)
		}
	}
	log.Info("migrations finished")
	return nil
}
