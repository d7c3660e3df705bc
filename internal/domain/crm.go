package domain

// CRM status keys. The keys are the stable identifiers used throughout
// the pipeline; the display names are what the CRM board is configured
// with, so both sides are contractual.
const (
	StatusOpportunityIdentified = "oportunidade_identificada"
	StatusContactMade           = "contato_realizado"
	StatusAwaitingFutureContact = "aguardando_futuro_contato"
	StatusMeetingScheduled      = "reuniao_agendada"
	StatusMeetingHeld           = "reuniao_realizada"
	StatusProposalSent          = "proposta_enviada"
	StatusAwaitingResponse      = "aguardando_resposta"
	StatusProposalAccepted      = "proposta_aceita"
	StatusSaleClosed            = "venda_realizada"
	StatusProjectInProgress     = "projeto_em_andamento"
	StatusProjectCompleted      = "projeto_concluido"
	StatusDone                  = "concluida"
)

// CRMStatusNames maps status keys to the board column names.
var CRMStatusNames = map[string]string{
	StatusOpportunityIdentified: "Oportunidade Identificada",
	StatusContactMade:           "Contato Realizado",
	StatusAwaitingFutureContact: "Aguardando Futuro Contato",
	StatusMeetingScheduled:      "Reunião Agendada",
	StatusMeetingHeld:           "Reunião Realizada",
	StatusProposalSent:          "Proposta Enviada",
	StatusAwaitingResponse:      "Aguardando Resposta",
	StatusProposalAccepted:      "Proposta Aceita",
	StatusSaleClosed:            "Venda Realizada",
	StatusProjectInProgress:     "Projeto em Andamento",
	StatusProjectCompleted:      "Projeto Concluído",
	StatusDone:                  "Concluída",
}

// CRMStatusName resolves a status key to its display name.
func CRMStatusName(key string) (string, bool) {
	name, ok := CRMStatusNames[key]
	return name, ok
}

// CRMTask is a task as seen by the CRM port.
type CRMTask struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
	AssigneeID  int    `json:"assignee_id,omitempty"`
}
