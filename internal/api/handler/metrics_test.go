package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	crmdomain "github.com/vfg2006/crm-dashboard-api/infrastructure/integrator/crm/domain"
	"github.com/vfg2006/crm-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/crm-dashboard-api/internal/domain"
	"github.com/vfg2006/crm-dashboard-api/internal/usecases/analytics/mocks"
	"github.com/vfg2006/crm-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func newMetricsRouter(service *mocks.MockAnalyzer) http.Handler {
	return router.New(
		router.WithRoutes(Metrics(service, time.UTC)...),
		router.WithRoutes(References(service)...),
	)
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestGetFunnel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalyzer := mocks.NewMockAnalyzer(ctrl)

	expectedFilter := domain.Filter{
		DateRange: domain.DateRange{
			Start: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		},
		Nucleo:         "Marcenaria",
		Status:         domain.StageApproved,
		IncludeRemoved: true,
		ForceRefresh:   true,
	}

	mockAnalyzer.EXPECT().
		Funnel(gomock.Any(), expectedFilter, domain.FunnelOpen, "sessao-1").
		Return(&domain.FunnelResult{
			Mode:  domain.FunnelOpen,
			Total: 10,
			Sent:  domain.StageMetric{Count: 10, Percentage: domain.NewPercentage(10, 10)},
		}, nil)

	req := httptest.NewRequest(http.MethodGet,
		"/v1/metrics/funnel?mode=open&start_date=2024-03-01&end_date=2024-03-31&nucleo=Marcenaria&status=approved&include_removed=true&refresh=1",
		nil)
	req.Header.Set(SessionHeader, "sessao-1")
	rec := httptest.NewRecorder()

	newMetricsRouter(mockAnalyzer).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "sessao-1", rec.Header().Get(SessionHeader))
	var body domain.FunnelResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 10, body.Sent.Count)
	assert.Equal(t, "100.0%", body.Sent.Percentage.Label)
}

func TestMetrics_InvalidQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// nenhuma chamada ao serviço com query inválida
	mockAnalyzer := mocks.NewMockAnalyzer(ctrl)

	paths := []string{
		"/v1/metrics/margin?start_date=01/03/2024&end_date=2024-03-31",
		"/v1/metrics/performance?start_date=2024-03-01&end_date=2024-03-31&include_removed=talvez",
		"/v1/metrics/top-clients?start_date=2024-03-01&end_date=ontem",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newMetricsRouter(mockAnalyzer).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, apiErrors.ErrInvalidFormat, decodeAPIError(t, rec).Code)
		})
	}
}

func TestMetrics_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{
			name:   "filtro rejeitado pelo serviço",
			err:    fmt.Errorf("%w: agrupamento desconhecido: vendedor", domain.ErrInvalidFilter),
			status: http.StatusBadRequest,
			code:   apiErrors.ErrInvalidRequest,
		},
		{
			name:   "sem dados nem cache",
			err:    fmt.Errorf("%w: margin: %w", domain.ErrNoData, domain.NewNetworkError("orcamento", 500, errors.New("boom"))),
			status: http.StatusServiceUnavailable,
			code:   apiErrors.ErrNoData,
		},
		{
			name:   "resposta superada",
			err:    domain.ErrSuperseded,
			status: http.StatusConflict,
			code:   apiErrors.ErrSuperseded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockAnalyzer := mocks.NewMockAnalyzer(ctrl)
			mockAnalyzer.EXPECT().
				Margin(gomock.Any(), gomock.Any(), domain.MarginGroupBy("loja"), "").
				Return(nil, tt.err)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/v1/metrics/margin?group_by=loja&start_date=2024-03-01&end_date=2024-03-31", nil)
			newMetricsRouter(mockAnalyzer).ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.code, decodeAPIError(t, rec).Code)
		})
	}
}

func TestMetrics_OtherFamilies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalyzer := mocks.NewMockAnalyzer(ctrl)
	mockAnalyzer.EXPECT().Performance(gomock.Any(), gomock.Any(), "").
		Return(&domain.PerformanceResult{Sellers: []domain.PersonPerformance{{ID: "v1", Position: 1}}}, nil)
	mockAnalyzer.EXPECT().TopClients(gomock.Any(), gomock.Any(), "").
		Return(&domain.TopClientsResult{Meta: domain.ResultMeta{Stale: true}}, nil)
	mockAnalyzer.EXPECT().TopProducts(gomock.Any(), gomock.Any(), "").
		Return(&domain.TopProductsResult{Meta: domain.ResultMeta{Degraded: true}}, nil)

	expectations := map[string]string{
		"/v1/metrics/performance":  `"id":"v1"`,
		"/v1/metrics/top-clients":  `"stale":true`,
		"/v1/metrics/top-products": `"degraded":true`,
	}

	for path, fragment := range expectations {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path+"?start_date=2024-03-01&end_date=2024-03-31", nil)
		newMetricsRouter(mockAnalyzer).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Contains(t, rec.Body.String(), fragment, path)
	}
}

func TestGetReference(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalyzer := mocks.NewMockAnalyzer(ctrl)
	mockAnalyzer.EXPECT().
		Reference(gomock.Any(), crmdomain.CollectionSeller, true).
		Return([]domain.ReferenceItem{{ID: "v1", Name: "Ana"}}, nil)
	mockAnalyzer.EXPECT().
		Reference(gomock.Any(), crmdomain.Collection("orcamento"), false).
		Return(nil, fmt.Errorf("%w: coleção sem lista de referência: orcamento", domain.ErrInvalidFilter))

	rec := httptest.NewRecorder()
	newMetricsRouter(mockAnalyzer).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/reference/vendedor?refresh=true", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"collection":"vendedor","items":[{"id":"v1","name":"Ana"}]}`, rec.Body.String())

	rec = httptest.NewRecorder()
	newMetricsRouter(mockAnalyzer).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/reference/orcamento", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
