package crmclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	crmdomain "github.com/vfg2006/crm-dashboard-api/infrastructure/integrator/crm/domain"
	"github.com/vfg2006/crm-dashboard-api/internal/domain"
	"github.com/vfg2006/crm-dashboard-api/internal/telemetry"
)

func (c *CRMClient) FetchAll(
	ctx context.Context,
	collection crmdomain.Collection,
	constraints []crmdomain.Constraint,
) ([]crmdomain.Record, error) {
	records := make([]crmdomain.Record, 0)
	cursor := 0

	for {
		page, err := c.fetchPage(ctx, collection, constraints, cursor)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"collection": collection,
				"cursor":     cursor,
				"fetched":    len(records),
			}).Error("crm: falha ao buscar página, descartando resultado parcial")
			return nil, err
		}

		records = append(records, page.Results...)

		logrus.WithFields(logrus.Fields{
			"collection": collection,
			"cursor":     page.Cursor,
			"count":      len(page.Results),
			"remaining":  page.Remaining,
		}).Debug("crm: página recebida")

		if page.Remaining <= 0 || len(page.Results) == 0 {
			break
		}

		cursor = page.Cursor + len(page.Results)
	}

	logrus.WithFields(logrus.Fields{
		"collection":  collection,
		"total":       len(records),
		"constraints": len(constraints),
	}).Info("crm: coleção carregada")

	return records, nil
}

func (c *CRMClient) fetchPage(
	ctx context.Context,
	collection crmdomain.Collection,
	constraints []crmdomain.Constraint,
	cursor int,
) (*crmdomain.Page, error) {
	endpoint, err := c.pageURL(collection, constraints, cursor)
	if err != nil {
		return nil, domain.NewNetworkError(collection.String(), 0, err)
	}

	start := time.Now()
	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.doRequest(ctx, collection, endpoint)
	})
	telemetry.CRMRequestLatency.WithLabelValues(collection.String()).Observe(time.Since(start).Seconds())

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			telemetry.CRMRequestsTotal.WithLabelValues(collection.String(), "breaker_open").Inc()
			return nil, domain.NewNetworkError(collection.String(), 0, err)
		}
		telemetry.CRMRequestsTotal.WithLabelValues(collection.String(), "error").Inc()
		return nil, err
	}

	telemetry.CRMRequestsTotal.WithLabelValues(collection.String(), "ok").Inc()
	return result.(*crmdomain.Page), nil
}

func (c *CRMClient) doRequest(ctx context.Context, collection crmdomain.Collection, endpoint string) (*crmdomain.Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, domain.NewNetworkError(collection.String(), 0, errors.Wrap(err, "erro ao criar a requisição"))
	}

	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.NewNetworkError(collection.String(), 0, errors.Wrap(err, "erro ao executar a requisição"))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, domain.NewNetworkError(
			collection.String(),
			resp.StatusCode,
			fmt.Errorf("requisição falhou com status: %s: %s", resp.Status, body),
		)
	}

	var envelope crmdomain.Response
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, domain.NewParseError(collection.String(), errors.Wrap(err, "erro ao decodificar a resposta"))
	}

	return &envelope.Response, nil
}

func (c *CRMClient) pageURL(collection crmdomain.Collection, constraints []crmdomain.Constraint, cursor int) (string, error) {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return "", errors.Wrap(err, "erro ao analisar a URL base")
	}
	endpoint.Path = path.Join(endpoint.Path, "obj", collection.String())

	query := endpoint.Query()
	query.Set("cursor", strconv.Itoa(cursor))
	query.Set("limit", strconv.Itoa(c.pageSize))

	if len(constraints) > 0 {
		encoded, err := json.Marshal(constraints)
		if err != nil {
			return "", errors.Wrap(err, "erro ao serializar constraints")
		}
		query.Set("constraints", string(encoded))
	}

	endpoint.RawQuery = query.Encode()
	return endpoint.String(), nil
}
