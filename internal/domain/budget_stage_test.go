package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected BudgetStage
	}{
		{"vazio", "", StageNotSent},
		{"em elaboração", "Em elaboração", StageNotSent},
		{"não enviado com acento", "Não enviado", StageNotSent},
		{"não enviado sem acento", "nao enviado", StageNotSent},
		{"rascunho", "Rascunho do vendedor", StageNotSent},
		{"enviado", "Enviado ao cliente", StageInApproval},
		{"em aprovação", "Em aprovação", StageInApproval},
		{"aprovado", "APROVADO", StageApproved},
		{"reprovado", "Reprovado", StageRejected},
		{"desaprovado", "desaprovado", StageRejected},
		{"não aprovado", "Não aprovado pelo cliente", StageRejected},
		{"liberado", "Liberado para produção", StageReleased},
		{"desconhecido", "aguardando medição", StageNotSent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeStatus(tt.raw))
		})
	}
}

func TestBudgetStage_SentAndWon(t *testing.T) {
	assert.False(t, StageNotSent.Sent())
	assert.True(t, StageInApproval.Sent())
	assert.True(t, StageReleased.Won())
	assert.True(t, StageApproved.Won())
	assert.False(t, StageRejected.Won())
}
