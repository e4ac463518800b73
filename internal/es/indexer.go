package es

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/avdeyev/order_crm/internal/models"
)

// ProductIndexer mirrors product writes into the search index. A zero value
// indexer is a no-op, which keeps handler tests free of an Elasticsearch node.
type ProductIndexer struct {
	ES    *elasticsearch.Client
	Index string
}

func NewProductIndexer(client *elasticsearch.Client, index string) *ProductIndexer {
	return &ProductIndexer{ES: client, Index: index}
}

func (i *ProductIndexer) IndexProduct(ctx context.Context, product *models.Product) error {
	if i == nil || i.ES == nil {
		return nil
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(product); err != nil {
		return fmt.Errorf("es: encode product: %w", err)
	}

	res, err := i.ES.Index(
		i.Index,
		&buf,
		i.ES.Index.WithContext(ctx),
		i.ES.Index.WithDocumentID(product.ID.String()),
		i.ES.Index.WithRefresh("false"),
	)
	if err != nil {
		return fmt.Errorf("es: index product: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("es: index product: %s", res.Status())
	}
	return nil
}

func (i *ProductIndexer) DeleteProduct(ctx context.Context, id string) error {
	if i == nil || i.ES == nil {
		return nil
	}

	res, err := i.ES.Delete(
		i.Index,
		id,
		i.ES.Delete.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("es: delete product: %w", err)
	}
	defer res.Body.Close()

	// 404 from the index just means the document was never indexed.
	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("es: delete product: %s", res.Status())
	}
	return nil
}
