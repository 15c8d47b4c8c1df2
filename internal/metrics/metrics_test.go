package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordUpstreamRequest(t *testing.T) {
	before := testutil.ToFloat64(UpstreamRequestsTotal.WithLabelValues("venues", "200"))
	RecordUpstreamRequest("venues", 200, 15*time.Millisecond)
	after := testutil.ToFloat64(UpstreamRequestsTotal.WithLabelValues("venues", "200"))

	assert.Equal(t, before+1, after)
}

func TestRecordUpstreamRequest_NoStatus(t *testing.T) {
	before := testutil.ToFloat64(UpstreamRequestsTotal.WithLabelValues("events", "error"))
	RecordUpstreamRequest("events", 0, time.Millisecond)
	after := testutil.ToFloat64(UpstreamRequestsTotal.WithLabelValues("events", "error"))

	assert.Equal(t, before+1, after)
}
