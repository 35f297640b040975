package requesthandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	"portal-backend/models"
	requestapimodels "portal-backend/models/api/request"
)

var exportHeaders = []string{"ID", "Asunto", "Categoría", "Estado", "Solicitante", "Compañía", "Asignado", "Resolución", "Fecha"}

// ExportXLS renders the filtered request listing as an xlsx workbook.
func (i impl) ExportXLS(filter requestapimodels.RequestFilter) ([]byte, error) {
	list, err := i.List(filter)
	if err != nil {
		return nil, err
	}
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("xlsx close failed")
		}
	}()
	sheet := "Sheet1"
	style, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Font:      &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return nil, models.NewPersistenceError("xlsx build failed", err)
	}
	if err = writeRow(f, sheet, 1, headerValues()); err != nil {
		return nil, models.NewPersistenceError("xlsx build failed", err)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(exportHeaders))
	if err = f.SetCellStyle(sheet, "A1", lastCol+"1", style); err != nil {
		return nil, models.NewPersistenceError("xlsx build failed", err)
	}
	if err = f.SetColWidth(sheet, "A", lastCol, 25); err != nil {
		return nil, models.NewPersistenceError("xlsx build failed", err)
	}
	for idx, item := range list {
		values := []interface{}{
			item.ID,
			item.Subject,
			item.Category,
			item.Status,
			item.RequesterName,
			item.CompanyName,
			item.AssigneeName,
			item.Resolution,
			item.CreatedAt.Format("2006-01-02 15:04"),
		}
		if err = writeRow(f, sheet, idx+2, values); err != nil {
			return nil, models.NewPersistenceError("xlsx build failed", err)
		}
	}
	f.SetSheetName(sheet, "Solicitudes")
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, models.NewPersistenceError("xlsx build failed", errors.Wrap(err, "write buffer"))
	}
	return buf.Bytes(), nil
}

func headerValues() []interface{} {
	values := make([]interface{}, len(exportHeaders))
	for idx, h := range exportHeaders {
		values[idx] = h
	}
	return values
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for idx, value := range values {
		cell, err := excelize.CoordinatesToCellName(idx+1, row)
		if err != nil {
			return err
		}
		if err = f.SetCellValue(sheet, cell, value); err != nil {
			return err
		}
	}
	return nil
}
