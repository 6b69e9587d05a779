package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// BudgetStage é o estado normalizado de um orçamento no funil de vendas
type BudgetStage string

const (
	StageNotSent    BudgetStage = "not_sent"
	StageInApproval BudgetStage = "in_approval"
	StageApproved   BudgetStage = "approved"
	StageRejected   BudgetStage = "rejected"
	StageReleased   BudgetStage = "released"
)

// stageVocabulary segue a ordem de prioridade: o primeiro estágio que casar vence.
// Rótulos negados ("não enviado") e rascunhos vêm primeiro porque contêm os termos
// dos estágios seguintes. "reprovado" contém "aprovado", por isso rejected vem antes de approved.
var stageVocabulary = []struct {
	stage BudgetStage
	terms []string
}{
	{StageNotSent, []string{"nao enviado", "nao enviada", "em elaboracao", "rascunho", "not sent", "draft"}},
	{StageReleased, []string{"liberado", "liberada", "released"}},
	{StageRejected, []string{"reprovado", "desaprovado", "nao aprovado", "recusado", "rejeitado", "perdido", "cancelado", "rejected"}},
	{StageApproved, []string{"aprovado", "fechado", "approved"}},
	{StageInApproval, []string{"aprovacao", "enviado", "negociacao", "approval", "sent"}},
}

var AllStages = []BudgetStage{
	StageNotSent,
	StageInApproval,
	StageApproved,
	StageRejected,
	StageReleased,
}

func (s BudgetStage) Valid() bool {
	for _, stage := range AllStages {
		if s == stage {
			return true
		}
	}
	return false
}

// Sent indica se o orçamento já saiu da fase de elaboração
func (s BudgetStage) Sent() bool {
	return s != StageNotSent && s != ""
}

// Won indica um orçamento convertido em venda
func (s BudgetStage) Won() bool {
	return s == StageApproved || s == StageReleased
}

// NormalizeStatus converte o status livre do CRM no estágio do funil
func NormalizeStatus(raw string) BudgetStage {
	folded := foldText(raw)
	if folded == "" {
		return StageNotSent
	}

	for _, entry := range stageVocabulary {
		for _, term := range entry.terms {
			if strings.Contains(folded, term) {
				return entry.stage
			}
		}
	}

	return StageNotSent
}

// foldText remove acentos e caixa para comparação por substring
func foldText(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}
