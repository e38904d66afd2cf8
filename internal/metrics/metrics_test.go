package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorder(t *testing.T) {
	rec := NewRecorder()
	Register()

	before := testutil.ToFloat64(queriesTotal.WithLabelValues("fuzzy"))
	beforeEmpty := testutil.ToFloat64(emptyResults.WithLabelValues("fuzzy"))

	rec.ObserveQuery("fuzzy", 3, time.Millisecond)
	rec.ObserveQuery("fuzzy", 0, time.Millisecond)
	rec.SetVocabularySize(42)
	IncRequestError("http")

	assert.Equal(t, before+2, testutil.ToFloat64(queriesTotal.WithLabelValues("fuzzy")))
	assert.Equal(t, beforeEmpty+1, testutil.ToFloat64(emptyResults.WithLabelValues("fuzzy")))
	assert.Equal(t, 42.0, testutil.ToFloat64(vocabularyWords))
	assert.GreaterOrEqual(t, testutil.ToFloat64(requestErrors.WithLabelValues("http")), 1.0)
}
