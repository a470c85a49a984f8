package server

import (
	"net/http"

	"social_sync/logic"
	"social_sync/shared"
)

// cronHandlerGroup lets an external scheduler drive aggregation ticks when
// the built-in ticker is disabled. Auth is a shared key in the query string
// so plain curl-style cron jobs can call it.
type cronHandlerGroup struct {
	cfg        *shared.Config
	logger     shared.ILogger
	aggregator logic.IAggregator
	dispatcher logic.IDispatcher
	metrics    logic.IMetrics
}

func NewCronHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	aggregator logic.IAggregator,
	dispatcher logic.IDispatcher,
	metrics logic.IMetrics,
) IHandlerGroup {
	res := cronHandlerGroup{
		cfg:        cfg,
		logger:     logger,
		aggregator: aggregator,
		dispatcher: dispatcher,
		metrics:    metrics,
	}
	return &res
}

func (hg *cronHandlerGroup) Prefix() string {
	return "/cron"
}

func (hg *cronHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"POST", "/tick", func(w http.ResponseWriter, r *http.Request) { hg.postTick(w, r) }},
	}
}

func (hg *cronHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return hg.authMW(next)
	}
}

func (hg *cronHandlerGroup) authMW(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.URL.Query().Get(cronKeyParam)
		if key == "" || key != hg.cfg.Secrets.CronApiKey {
			hg.logger.Warnf("Cron request with missing or invalid key: %s", r.URL.Path)
			writeErrorResponse(w, badApiKeyStr, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// postTick returns right away; the actual polling work happens on the
// dispatcher's workers.
func (hg *cronHandlerGroup) postTick(w http.ResponseWriter, r *http.Request) {
	hg.logger.Infof("Handling cron tick POST: %s", r.URL.Path)
	obs := hg.metrics.StartApiRequestIn("cron/tick")
	defer obs.Finish()

	if !hg.dispatcher.Submit("cron-tick", hg.aggregator.RunTick) {
		writeErrorResponse(w, serverBusyStr, http.StatusServiceUnavailable)
		return
	}
	writeAcceptedResponse(hg.logger, w)
}
