package crmclient

import (
	"context"

	"github.com/sirupsen/logrus"
	crmdomain "github.com/vfg2006/crm-dashboard-api/infrastructure/integrator/crm/domain"
	"github.com/vfg2006/crm-dashboard-api/internal/telemetry"
	"golang.org/x/sync/errgroup"
)

func (c *CRMClient) FetchByIDs(
	ctx context.Context,
	collection crmdomain.Collection,
	ids []string,
) ([]crmdomain.Record, error) {
	batches := Partition(uniqueIDs(ids), c.batchSize)
	if len(batches) == 0 {
		return []crmdomain.Record{}, nil
	}

	results := make([][]crmdomain.Record, len(batches))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.batchConcurrency)

	for i, batch := range batches {
		g.Go(func() error {
			constraints := []crmdomain.Constraint{{
				Key:            crmdomain.FieldID,
				ConstraintType: crmdomain.ConstraintIn,
				Value:          batch,
			}}

			records, err := c.FetchAll(gctx, collection, constraints)
			if err != nil {
				// Lote ignorado: quem chama trata join ausente como "sem correspondência"
				telemetry.CRMBatchFailuresTotal.WithLabelValues(collection.String()).Inc()
				logrus.WithError(err).WithFields(logrus.Fields{
					"collection": collection,
					"batch":      i,
					"batch_size": len(batch),
				}).Warn("crm: lote de IDs ignorado por falha")
				return nil
			}

			results[i] = records
			return nil
		})
	}

	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	records := make([]crmdomain.Record, 0, len(ids))
	for _, batch := range results {
		records = append(records, batch...)
	}

	logrus.WithFields(logrus.Fields{
		"collection": collection,
		"requested":  len(ids),
		"found":      len(records),
		"batches":    len(batches),
	}).Debug("crm: busca por IDs concluída")

	return records, nil
}

// Partition divide ids em lotes de no máximo size elementos
func Partition(ids []string, size int) [][]string {
	if size <= 0 {
		size = 50
	}

	batches := make([][]string, 0, (len(ids)+size-1)/size)
	for start := 0; start < len(ids); start += size {
		end := min(start+size, len(ids))
		batches = append(batches, ids[start:end])
	}
	return batches
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
