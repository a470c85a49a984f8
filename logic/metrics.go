package logic

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"social_sync/shared"
)

type IMetrics interface {
	StartApiRequestIn(label string) IRequestObserver
	StartServiceRequestOut(service string) IRequestObserver
	ServiceStarted()
	BroadcastSent(service string)
	BroadcastFailed(service string, reason string)
	ReplySaved(service string)
	NoticeRaised(kind string)
	AggQueueLength(length int)
	JobSubmitted(name string)
}

type IRequestObserver interface {
	Finish()
}

type metrics struct {
	cfg                *shared.Config
	apiRequestsIn      *prometheus.HistogramVec
	serviceRequestsOut *prometheus.HistogramVec
	serviceStarted     prometheus.Counter
	broadcastsSent     *prometheus.CounterVec
	broadcastsFailed   *prometheus.CounterVec
	repliesSaved       *prometheus.CounterVec
	noticesRaised      *prometheus.CounterVec
	jobsSubmitted      *prometheus.CounterVec
	aggQueueLength     prometheus.Gauge
}

func NewMetrics(cfg *shared.Config) IMetrics {

	res := metrics{}
	res.cfg = cfg

	res.apiRequestsIn = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "api_requests_in_duration",
		Help: "Duration in seconds of API requests served.",
	}, []string{"label"})
	prometheus.Register(res.apiRequestsIn)

	res.serviceRequestsOut = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "service_requests_out_duration",
		Help: "Duration in seconds of requests made to social networks.",
	}, []string{"service"})
	prometheus.Register(res.serviceRequestsOut)

	res.serviceStarted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "service_started",
		Help: "Service has started up",
	})
	prometheus.Register(res.serviceStarted)

	res.broadcastsSent = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "broadcasts_sent",
		Help: "Number of posts broadcast to a social network account",
	}, []string{"service"})
	prometheus.Register(res.broadcastsSent)

	res.broadcastsFailed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "broadcasts_failed",
		Help: "Number of failed broadcast deliveries",
	}, []string{"service", "reason"})
	prometheus.Register(res.broadcastsFailed)

	res.repliesSaved = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "replies_saved",
		Help: "Number of new replies stored as comments",
	}, []string{"service"})
	prometheus.Register(res.repliesSaved)

	res.noticesRaised = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "notices_raised",
		Help: "Number of notices raised for site admins",
	}, []string{"kind"})
	prometheus.Register(res.noticesRaised)

	res.jobsSubmitted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "jobs_submitted",
		Help: "Number of jobs submitted to the background dispatcher",
	}, []string{"name"})
	prometheus.Register(res.jobsSubmitted)

	res.aggQueueLength = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "agg_queue_length",
		Help: "Posts scheduled for reply polling",
	})
	prometheus.Register(res.aggQueueLength)

	return &res
}

type requestObserver struct {
	label string
	start time.Time
	hgvec *prometheus.HistogramVec
}

func (ro *requestObserver) Finish() {
	now := time.Now()
	elapsed := float64(now.UnixMilli()-ro.start.UnixMilli()) / 1000.0
	ro.hgvec.WithLabelValues(ro.label).Observe(elapsed)
}

func (m *metrics) StartApiRequestIn(label string) IRequestObserver {
	return &requestObserver{label, time.Now(), m.apiRequestsIn}
}

func (m *metrics) StartServiceRequestOut(service string) IRequestObserver {
	return &requestObserver{service, time.Now(), m.serviceRequestsOut}
}

func (m *metrics) ServiceStarted() {
	m.serviceStarted.Add(1)
}

func (m *metrics) BroadcastSent(service string) {
	m.broadcastsSent.WithLabelValues(service).Add(1)
}

func (m *metrics) BroadcastFailed(service string, reason string) {
	m.broadcastsFailed.WithLabelValues(service, reason).Add(1)
}

func (m *metrics) ReplySaved(service string) {
	m.repliesSaved.WithLabelValues(service).Add(1)
}

func (m *metrics) NoticeRaised(kind string) {
	m.noticesRaised.WithLabelValues(kind).Add(1)
}

func (m *metrics) AggQueueLength(length int) {
	m.aggQueueLength.Set(float64(length))
}

func (m *metrics) JobSubmitted(name string) {
	m.jobsSubmitted.WithLabelValues(name).Add(1)
}
