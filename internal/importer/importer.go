package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"rocketshoes-cart/internal/domain"
)

type ProductWriter interface {
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
}

type StockWriter interface {
	Set(ctx context.Context, stock domain.Stock) error
}

// CSVImporter reads catalog rows (id,title,price,image,stock) and upserts
// products together with their stock level. Column order is taken from the
// header; stock is optional.
type CSVImporter struct {
	reader   *csv.Reader
	products ProductWriter
	stock    StockWriter
}

func NewCSVImporter(r io.Reader, products ProductWriter, stock StockWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	csvr.TrimLeadingSpace = true
	return &CSVImporter{
		reader:   csvr,
		products: products,
		stock:    stock,
	}
}

type csvRow struct {
	product  domain.Product
	stock    int
	hasStock bool
}

// Run imports every row and returns how many products were written.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	for _, col := range []string{"id", "title", "price"} {
		if _, ok := index[col]; !ok {
			return 0, fmt.Errorf("missing column %q", col)
		}
	}

	imported := 0
	line := 1
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return imported, fmt.Errorf("read row %d: %w", line, err)
		}

		row, err := parseRow(record, index)
		if err != nil {
			return imported, fmt.Errorf("row %d: %w", line, err)
		}
		if row == nil {
			continue
		}
		if _, err := i.products.Upsert(ctx, row.product); err != nil {
			return imported, fmt.Errorf("upsert product %d: %w", row.product.ID, err)
		}
		if row.hasStock {
			if err := i.stock.Set(ctx, domain.Stock{ID: row.product.ID, Amount: row.stock}); err != nil {
				return imported, fmt.Errorf("set stock %d: %w", row.product.ID, err)
			}
		}
		imported++
	}
	return imported, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return idx
}

func field(record []string, index map[string]int, name string) string {
	i, ok := index[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// parseRow returns nil for blank lines.
func parseRow(record []string, index map[string]int) (*csvRow, error) {
	rawID := field(record, index, "id")
	if rawID == "" && field(record, index, "title") == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || id <= 0 {
		return nil, fmt.Errorf("invalid id %q", rawID)
	}
	price, err := strconv.ParseFloat(field(record, index, "price"), 64)
	if err != nil || price < 0 {
		return nil, fmt.Errorf("invalid price for product %d", id)
	}
	row := &csvRow{product: domain.Product{
		ID:    id,
		Title: field(record, index, "title"),
		Price: price,
		Image: field(record, index, "image"),
	}}
	if raw := field(record, index, "stock"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid stock %q for product %d", raw, id)
		}
		row.stock = n
		row.hasStock = true
	}
	return row, nil
}
