package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// OrderMetrics counts order aggregate operations by outcome.
type OrderMetrics struct {
	created         prometheus.Counter
	updated         prometheus.Counter
	removed         prometheus.Counter
	productsAdded   prometheus.Counter
	productsRemoved prometheus.Counter
	failed          *prometheus.CounterVec
}

func NewOrderMetrics() *OrderMetrics {
	return newOrderMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

func newOrderMetricsWithRegisterer(registerer prometheus.Registerer) *OrderMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &OrderMetrics{
		created: registerCounter(registerer, prometheus.CounterOpts{
			Name: "crm_orders_created_total",
			Help: "Total number of orders created",
		}),
		updated: registerCounter(registerer, prometheus.CounterOpts{
			Name: "crm_orders_updated_total",
			Help: "Total number of orders updated",
		}),
		removed: registerCounter(registerer, prometheus.CounterOpts{
			Name: "crm_orders_removed_total",
			Help: "Total number of orders removed",
		}),
		productsAdded: registerCounter(registerer, prometheus.CounterOpts{
			Name: "crm_order_products_added_total",
			Help: "Total number of products added to orders",
		}),
		productsRemoved: registerCounter(registerer, prometheus.CounterOpts{
			Name: "crm_order_products_removed_total",
			Help: "Total number of products removed from orders",
		}),
		failed: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "crm_order_operations_failed_total",
			Help: "Total number of failed order operations by operation name",
		}, []string{"operation"}),
	}
}

func (m *OrderMetrics) OrderCreated()   { m.created.Inc() }
func (m *OrderMetrics) OrderUpdated()   { m.updated.Inc() }
func (m *OrderMetrics) OrderRemoved()   { m.removed.Inc() }
func (m *OrderMetrics) ProductAdded()   { m.productsAdded.Inc() }
func (m *OrderMetrics) ProductRemoved() { m.productsRemoved.Inc() }

func (m *OrderMetrics) OperationFailed(operation string) {
	m.failed.WithLabelValues(operation).Inc()
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	c := prometheus.NewCounter(opts)
	if err := registerer.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(prometheus.Counter)
		}
	}
	return c
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	c := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(*prometheus.CounterVec)
		}
	}
	return c
}
