package metrics

import (
	"database/sql"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordEntityOperation(t *testing.T) {
	before := testutil.ToFloat64(EntityOperationsTotal.WithLabelValues("article", "create"))
	RecordEntityOperation("article", "create")
	RecordEntityOperation("article", "create")
	after := testutil.ToFloat64(EntityOperationsTotal.WithLabelValues("article", "create"))
	assert.Equal(t, before+2, after)
}

func TestRecordDuplicateRejection(t *testing.T) {
	before := testutil.ToFloat64(DuplicateRejectionsTotal.WithLabelValues("email"))
	RecordDuplicateRejection("email")
	assert.Equal(t, before+1, testutil.ToFloat64(DuplicateRejectionsTotal.WithLabelValues("email")))
}

func TestRecordAuthorization(t *testing.T) {
	allowed := testutil.ToFloat64(AuthorizationDecisionsTotal.WithLabelValues("review", "allowed"))
	denied := testutil.ToFloat64(AuthorizationDecisionsTotal.WithLabelValues("review", "denied"))

	RecordAuthorization("review", true)
	RecordAuthorization("review", false)
	RecordAuthorization("review", false)

	assert.Equal(t, allowed+1, testutil.ToFloat64(AuthorizationDecisionsTotal.WithLabelValues("review", "allowed")))
	assert.Equal(t, denied+2, testutil.ToFloat64(AuthorizationDecisionsTotal.WithLabelValues("review", "denied")))
}

func TestRecordOperationDuration(t *testing.T) {
	RecordOperationDuration("query", 3*time.Millisecond)
	assert.GreaterOrEqual(t, testutil.CollectAndCount(DBQueryDuration), 1)
}

func TestUpdateDBStats(t *testing.T) {
	UpdateDBStats(sql.DBStats{InUse: 4, Idle: 6})
	assert.Equal(t, float64(4), testutil.ToFloat64(DBConnectionsInUse))
	assert.Equal(t, float64(6), testutil.ToFloat64(DBConnectionsIdle))
}

func TestSetCircuitBreakerState(t *testing.T) {
	SetCircuitBreakerState("database", 2)
	assert.Equal(t, float64(2), testutil.ToFloat64(CircuitBreakerState.WithLabelValues("database")))
}
