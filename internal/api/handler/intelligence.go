package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/business-pulse-api/infrastructure/repository"
	"github.com/vfg2006/business-pulse-api/internal/usecases/intelligence"
	"github.com/vfg2006/business-pulse-api/pkg/apiErrors"
	"github.com/vfg2006/business-pulse-api/pkg/log"
)

// GetWorkspaceInsights retorna a lista ranqueada de insights do workspace
func GetWorkspaceInsights(service intelligence.Insighter, workspaceRepo repository.WorkspaceRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("workspace_id", id).Info("intelligence: fetching workspace insights")

		if !workspaceExists(w, workspaceRepo, id) {
			return
		}

		insights, err := service.GetInsights(id)
		if err != nil {
			logger.WithFields(log.Fields{
				"workspace_id": id,
				"error":        err.Error(),
			}).Error("intelligence: failed to get insights for workspace")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao buscar os insights do workspace", nil)
			return
		}

		logger.WithFields(log.Fields{
			"workspace_id": id,
			"insights":     len(insights.Insights),
		}).Info("intelligence: successfully retrieved workspace insights")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(insights); err != nil {
			logger.WithError(err).Error("intelligence: failed to encode insights response")
		}
	})
}

// GetWorkspaceIntelligence retorna o resultado completo: sinais, correlações
// e escore de saúde do workspace.
func GetWorkspaceIntelligence(service intelligence.Insighter, workspaceRepo repository.WorkspaceRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("workspace_id", id).Info("intelligence: fetching workspace intelligence")

		if !workspaceExists(w, workspaceRepo, id) {
			return
		}

		result, err := service.GetBusinessIntelligence(id)
		if err != nil {
			logger.WithFields(log.Fields{
				"workspace_id": id,
				"error":        err.Error(),
			}).Error("intelligence: failed to compute workspace intelligence")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao computar a inteligência do workspace", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithError(err).Error("intelligence: failed to encode intelligence response")
		}
	})
}

// RefreshWorkspaceIntelligence invalida a entrada do workspace no cache e
// recomputa na hora. Usado pelo painel após eventos de mutação relevantes.
func RefreshWorkspaceIntelligence(service intelligence.Insighter, workspaceRepo repository.WorkspaceRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("workspace_id", id).Info("intelligence: forcing workspace intelligence refresh")

		if !workspaceExists(w, workspaceRepo, id) {
			return
		}

		service.Invalidate(id)

		result, err := service.GetBusinessIntelligence(id)
		if err != nil {
			logger.WithFields(log.Fields{
				"workspace_id": id,
				"error":        err.Error(),
			}).Error("intelligence: failed to refresh workspace intelligence")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao recomputar a inteligência do workspace", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithError(err).Error("intelligence: failed to encode refresh response")
		}
	})
}

// workspaceExists valida o workspace da rota e escreve o erro apropriado
// quando ausente. Retorna false quando a resposta já foi escrita.
func workspaceExists(w http.ResponseWriter, workspaceRepo repository.WorkspaceRepository, id string) bool {
	if id == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador do workspace não informado", nil)
		return false
	}

	workspace, err := workspaceRepo.GetByID(id)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar o workspace", nil)
		return false
	}

	if workspace == nil {
		apiErrors.WriteError(w, apiErrors.ErrWorkspaceNotFound, "Workspace não encontrado", nil)
		return false
	}

	return true
}
