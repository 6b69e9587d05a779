package apiErrors

import (
	"context"
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/crm-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrRouteNotFound       = "VAL_004" // Rota inexistente
	ErrMethodNotAllowed    = "VAL_005" // Método não suportado pela rota

	// Erros de dados do dashboard (3000-3999)
	ErrNoData     = "DATA_001" // CRM indisponível e nenhum cache para fallback
	ErrSuperseded = "DATA_002" // Um filtro mais recente substituiu a requisição
	ErrCanceled   = "DATA_003" // Requisição cancelada pelo cliente

	// Erros do servidor (5000-5999)
	ErrInternalServer  = "SRV_001" // Erro interno do servidor
	ErrCacheOperation  = "SRV_002" // Erro de operação no cache
	ErrExternalService = "SRV_003" // Erro em serviço externo
	ErrCommunication   = "SRV_004" // Erro de comunicação
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrRouteNotFound:       http.StatusNotFound,
	ErrMethodNotAllowed:    http.StatusMethodNotAllowed,
	ErrNoData:              http.StatusServiceUnavailable,
	ErrSuperseded:          http.StatusConflict,
	ErrCanceled:            499,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrCacheOperation:      http.StatusInternalServerError,
	ErrExternalService:     http.StatusBadGateway,
	ErrCommunication:       http.StatusServiceUnavailable,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor retorna o status HTTP de um código de erro
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}

// CodeFor classifica um erro do domínio em um código de API
func CodeFor(err error) string {
	switch {
	case err == nil:
		return ErrInternalServer
	case errors.Is(err, domain.ErrInvalidFilter):
		return ErrInvalidRequest
	case errors.Is(err, domain.ErrSuperseded):
		return ErrSuperseded
	case errors.Is(err, context.Canceled):
		return ErrCanceled
	case errors.Is(err, domain.ErrNoData):
		return ErrNoData
	case errors.Is(err, domain.ErrNetwork), errors.Is(err, domain.ErrParse):
		return ErrExternalService
	case errors.Is(err, context.DeadlineExceeded):
		return ErrCommunication
	default:
		return ErrInternalServer
	}
}

// WriteDomainError escreve o erro classificado por CodeFor. Quando a falha vem
// do CRM, a coleção e o status entram nos detalhes.
func WriteDomainError(w http.ResponseWriter, err error) {
	var details any
	var crmErr *domain.CRMError
	if errors.As(err, &crmErr) {
		details = map[string]any{
			"collection":  crmErr.Collection,
			"status_code": crmErr.StatusCode,
		}
	}

	WriteError(w, CodeFor(err), err.Error(), details)
}
