package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lagotita/inventario-api/internal/domain"
	"github.com/lagotita/inventario-api/internal/domain/entity"
	domledger "github.com/lagotita/inventario-api/internal/domain/ledger"
)

// Cabecera del export mensual (la app móvil lo abre en Excel).
const csvHeader = "Fecha,Tipo,Cantidad,Descripción,Usuario,Fuente"

const csvDateLayout = "02/01/2006 15:04"

// ExportMonthlyCSV genera el CSV con los movimientos de un mes (0-11) y año,
// en orden cronológico ascendente. Los anulados se incluyen con su cantidad
// original: el export es vista de detalle, no agregado.
func (uc *MovementLedger) ExportMonthlyCSV(ctx context.Context, productID string, month, year int) (string, error) {
	if month < 0 || month > 11 {
		return "", domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return "", err
	}
	if product == nil {
		return "", domain.ErrNotFound
	}
	from, to := domledger.MonthRange(month, year, time.Local)
	movs, err := uc.movRepo.ListByProductAndRange(productID, from, to)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(csvHeader)
	sb.WriteByte('\n')
	for _, m := range movs {
		sb.WriteString(fmt.Sprintf("%s,%s,%d,\"%s\",%s,%s\n",
			m.Timestamp.Format(csvDateLayout),
			KindLabel(m.Kind),
			m.Quantity,
			escapeDescription(m.Description),
			m.UserName,
			SourceLabel(m.Source),
		))
	}
	return sb.String(), nil
}

// KindLabel etiqueta legible del tipo de movimiento.
func KindLabel(kind string) string {
	if kind == entity.MovementKindSalida {
		return "Salida"
	}
	return "Entrada"
}

// SourceLabel etiqueta legible del origen del movimiento.
func SourceLabel(source string) string {
	if source == entity.MovementSourceVenta {
		return "Venta"
	}
	return "Manual"
}

// escapeDescription reemplaza comillas dobles por comillas simples dobles
// (el campo va entre comillas en la fila).
func escapeDescription(s string) string {
	return strings.ReplaceAll(s, `"`, "''")
}
