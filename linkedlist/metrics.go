package linkedlist

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	opPushFront         = "push_front"
	opPushBack          = "push_back"
	opInsertAfterFirst  = "insert_after_first"
	opInsertBeforeFirst = "insert_before_first"
	opInsertAfterLast   = "insert_after_last"
	opInsertBeforeLast  = "insert_before_last"
	opRemoveFirst       = "remove_first"
	opRemoveLast        = "remove_last"
	opRemoveAll         = "remove_all"
	opExtractFirst      = "extract_first"
	opExtractLast       = "extract_last"
	opConcat            = "concat"
	opDestroy           = "destroy"
)

const (
	resultOK          = "ok"
	resultNotFound    = "not_found"
	resultAllocFailed = "alloc_failed"
	resultInvalid     = "invalid"
)

var operationsCounter = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "linkedlist_operations_total",
		Help: "linked list mutating operations by outcome",
	},
	[]string{"list", "op", "result"},
)

var liveNodesGauge = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "linkedlist_live_nodes",
		Help: "nodes handed out by an allocator and not yet released",
	},
	[]string{"allocator"},
)

func init() {
	prometheus.MustRegister(operationsCounter, liveNodesGauge)
}

func (l *List) observe(op, result string) {
	operationsCounter.WithLabelValues(l.config.Name, op, result).Inc()
}
