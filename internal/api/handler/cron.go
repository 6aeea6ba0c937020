package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/nuellacreatives/ledger-api/internal/scheduler"
	"github.com/nuellacreatives/ledger-api/pkg/apiErrors"
	"github.com/nuellacreatives/ledger-api/pkg/log"
)

// CronJob é o contrato mínimo de um job agendado que pode ser disparado manualmente
type CronJob interface {
	TriggerManualRun()
	GetStatus() map[string]any
}

// CronJobServices mapeia o tipo informado na URL para o job correspondente
type CronJobServices map[string]CronJob

func NewCronJobServices(dataQuality *scheduler.DataQualityAuditService) CronJobServices {
	services := CronJobServices{}
	if dataQuality != nil {
		services[scheduler.DataQualityJob] = dataQuality
	}
	return services
}

// RunCronJob executa manualmente um job específico
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		job, ok := services[cronType]
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: "+scheduler.DataQualityJob, nil)
			return
		}

		log.ForContext(r.Context()).WithField("type", cronType).Info("Disparando cron job manualmente")
		job.TriggerManualRun()

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status de todos os jobs registrados
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any, len(services))
		for name, job := range services {
			status[name] = job.GetStatus()
		}
		writeJSON(w, r, http.StatusOK, status)
	}
}
