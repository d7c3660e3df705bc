package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/felipeOliveira-1/fstech-agency/internal/domain"
	"github.com/felipeOliveira-1/fstech-agency/internal/port"
)

// NewProjectCoordinator builds the delivery-management agent. Task
// assignments are repository-backed; project status changes go through
// the CRM port.
func NewProjectCoordinator(crm port.CRM, tasks port.TaskRepository) *Agent {
	return &Agent{
		id:          "coordenador-de-projetos",
		name:        "Coordenador de Projetos",
		role:        "Gestão de entregas",
		description: "Mantém cronogramas, atribui tarefas, acompanha progresso e informa o cliente.",
		routes: []Route{
			{
				Keywords: []string{"atualizar status projeto crm", "marcar projeto como"},
				Tool:     "update_crm_project_status",
				Run:      crmProjectStatusTool(crm),
			},
			{
				Keywords: []string{"cronograma", "linha do tempo", "marco"},
				Tool:     "manage_project_timeline",
				Run:      runProjectTimeline,
			},
			{
				Keywords: []string{"atribuir", "criar task"},
				Tool:     "manage_task_assignment",
				Run:      taskAssignmentTool(tasks),
			},
			{
				Keywords: []string{"progresso", "status da tarefa"},
				Tool:     "track_task_progress",
				Run:      progressTrackerTool(tasks),
			},
			{
				Keywords: []string{"atualização", "update", "informar cliente"},
				Tool:     "send_client_update",
				Run:      runClientUpdate,
			},
		},
	}
}

func crmProjectStatusTool(crm port.CRM) Tool {
	return func(ctx context.Context, _ string, tc TaskContext) (string, any, error) {
		if crm == nil {
			return "", nil, &domain.ErrExternalService{
				Service: "clickup",
				Err:     fmt.Errorf("CRM port is not configured"),
			}
		}
		taskID := tc.String("crm_task_id", "")
		statusKey := tc.String("status_key", "")
		if taskID == "" || statusKey == "" {
			return "", nil, validationErr("crm_task_id", "crm_task_id and status_key are required")
		}
		if err := crm.UpdateStatus(ctx, taskID, statusKey); err != nil {
			return "", nil, err
		}
		name, _ := domain.CRMStatusName(statusKey)
		return fmt.Sprintf("Projeto %s movido para %q no CRM.", taskID, name), nil, nil
	}
}

func runProjectTimeline(_ context.Context, _ string, tc TaskContext) (string, any, error) {
	projectID := tc.String("project_id", "")
	if projectID == "" {
		return "", nil, validationErr("project_id", "project_id is required")
	}
	action := tc.String("action", "view_timeline")

	switch action {
	case "view_timeline":
		var b strings.Builder
		fmt.Fprintf(&b, "# Cronograma do Projeto %s\n\n", projectID)
		b.WriteString("| Marco | Prazo | Status |\n|---|---|---|\n")
		b.WriteString("| Kickoff e validação de requisitos | Semana 1 | Concluído |\n")
		b.WriteString("| Desenho da solução | Semana 2-3 | Em Andamento |\n")
		b.WriteString("| Implementação | Semana 4-7 | Pendente |\n")
		b.WriteString("| Homologação e go-live | Semana 8 | Pendente |\n")
		return b.String(), nil, nil
	case "add_milestone", "update_milestone":
		milestone := tc.String("milestone_name", "")
		if milestone == "" {
			return "", nil, validationErr("milestone_name", "milestone_name is required for this action")
		}
		return fmt.Sprintf("Marco %q registrado no cronograma do projeto %s.", milestone, projectID), nil, nil
	}
	return "", nil, validationErr("action", fmt.Sprintf("invalid timeline action %q", action))
}

func taskAssignmentTool(tasks port.TaskRepository) Tool {
	return func(ctx context.Context, _ string, tc TaskContext) (string, any, error) {
		if tasks == nil {
			return "", nil, validationErr("tasks", "task repository is not configured")
		}
		action := tc.String("action", "view_project_tasks")

		switch action {
		case "create_task":
			task := domain.ProjectTask{
				ProjectID:   tc.String("project_id", ""),
				Description: tc.String("description", ""),
			}
			if task.ProjectID == "" || task.Description == "" {
				return "", nil, validationErr("project_id", "project_id and description are required to create a task")
			}
			id, err := tasks.Create(ctx, task)
			if err != nil {
				return "", nil, err
			}
			return fmt.Sprintf("Tarefa %s criada no projeto %s.", id, task.ProjectID), nil, nil

		case "assign_task":
			taskID := tc.String("task_id", "")
			assignee := tc.String("assignee_email", "")
			if taskID == "" || assignee == "" {
				return "", nil, validationErr("task_id", "task_id and assignee_email are required to assign a task")
			}
			if err := tasks.Assign(ctx, taskID, assignee, tc.String("due_date", "")); err != nil {
				return "", nil, err
			}
			return fmt.Sprintf("Tarefa %s atribuída a %s.", taskID, assignee), nil, nil

		case "view_project_tasks":
			projectID := tc.String("project_id", "")
			if projectID == "" {
				return "", nil, validationErr("project_id", "project_id is required to list tasks")
			}
			list, err := tasks.ListByProject(ctx, projectID)
			if err != nil {
				return "", nil, err
			}
			if len(list) == 0 {
				return fmt.Sprintf("Nenhuma tarefa registrada para o projeto %s.", projectID), list, nil
			}
			var b strings.Builder
			fmt.Fprintf(&b, "Tarefas do projeto %s:\n", projectID)
			for _, t := range list {
				assignee := t.Assignee
				if assignee == "" {
					assignee = "não atribuída"
				}
				fmt.Fprintf(&b, "- [%s] %s — %s (%s)\n", t.ID, t.Description, t.Status, assignee)
			}
			return b.String(), list, nil
		}
		return "", nil, validationErr("action", fmt.Sprintf("invalid assignment action %q", action))
	}
}

func progressTrackerTool(tasks port.TaskRepository) Tool {
	return func(ctx context.Context, _ string, tc TaskContext) (string, any, error) {
		if tasks == nil {
			return "", nil, validationErr("tasks", "task repository is not configured")
		}
		taskID := tc.String("task_id", "")
		if taskID == "" {
			return "", nil, validationErr("task_id", "task_id is required")
		}
		task, err := tasks.Get(ctx, taskID)
		if err != nil {
			return "", nil, err
		}
		return fmt.Sprintf("Tarefa %s: %s — status atual %q.", task.ID, task.Description, task.Status), task, nil
	}
}

func runClientUpdate(_ context.Context, _ string, tc TaskContext) (string, any, error) {
	clientID := tc.String("client_id", "")
	projectID := tc.String("project_id", "")
	if clientID == "" || projectID == "" {
		return "", nil, validationErr("client_id", "client_id and project_id are required")
	}
	summary := tc.String("summary", "Atualização padrão.")
	channel := tc.String("channel", "Email")

	message := fmt.Sprintf(
		"Olá! Aqui é a equipe FSTech com uma atualização do projeto %s:\n\n%s\n\nQualquer dúvida, estamos à disposição.",
		projectID, summary,
	)
	return fmt.Sprintf("Atualização enviada ao cliente %s via %s:\n\n%s", clientID, channel, message), nil, nil
}
