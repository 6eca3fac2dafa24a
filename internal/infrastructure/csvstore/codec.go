package csvstore

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jdrojas/plomeria-pos/internal/domain/entity"
)

// dateLayout formato de fecha persistido (ISO, solo día).
const dateLayout = "2006-01-02"

func parseInt(field, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("campo %s: %w", field, err)
	}
	return n, nil
}

func parseDecimal(field, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("campo %s: %w", field, err)
	}
	return d, nil
}

func parseDate(field, s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("campo %s: %w", field, err)
	}
	return t, nil
}

// encodeSaleLines serializa las líneas de venta como "id:cantidad" unidas por ";".
func encodeSaleLines(lines []entity.SaleLine) string {
	parts := make([]string, 0, len(lines))
	for _, l := range lines {
		parts = append(parts, fmt.Sprintf("%s:%d", l.ProductID, l.Quantity))
	}
	return strings.Join(parts, ";")
}

func decodeSaleLines(s string) ([]entity.SaleLine, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ";")
	lines := make([]entity.SaleLine, 0, len(parts))
	for _, p := range parts {
		id, qtyStr, ok := strings.Cut(p, ":")
		if !ok {
			return nil, fmt.Errorf("línea de venta malformada: %q", p)
		}
		qty, err := parseInt("products", qtyStr)
		if err != nil {
			return nil, err
		}
		lines = append(lines, entity.SaleLine{ProductID: id, Quantity: qty})
	}
	return lines, nil
}

// encodePurchaseLines serializa las líneas de compra como "id:cantidad:costo".
func encodePurchaseLines(lines []entity.PurchaseLine) string {
	parts := make([]string, 0, len(lines))
	for _, l := range lines {
		parts = append(parts, fmt.Sprintf("%s:%d:%s", l.ProductID, l.Quantity, l.UnitCost.String()))
	}
	return strings.Join(parts, ";")
}

func decodePurchaseLines(s string) ([]entity.PurchaseLine, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ";")
	lines := make([]entity.PurchaseLine, 0, len(parts))
	for _, p := range parts {
		fields := strings.Split(p, ":")
		if len(fields) != 3 {
			return nil, fmt.Errorf("línea de compra malformada: %q", p)
		}
		qty, err := parseInt("products", fields[1])
		if err != nil {
			return nil, err
		}
		cost, err := parseDecimal("products", fields[2])
		if err != nil {
			return nil, err
		}
		lines = append(lines, entity.PurchaseLine{ProductID: fields[0], Quantity: qty, UnitCost: cost})
	}
	return lines, nil
}
