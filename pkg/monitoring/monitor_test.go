package monitoring

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveAssessment(t *testing.T) {
	Init()
	Init()

	before := testutil.ToFloat64(PersistFailures.WithLabelValues("phishing-detection"))
	ObserveAssessment("phishing-detection", "Basic", "Unknown", true)
	ObserveAssessment("phishing-detection", "Basic", "Low Awareness", false)

	if got := testutil.ToFloat64(AssessmentsTotal.WithLabelValues("phishing-detection", "Basic")); got < 2 {
		t.Fatalf("assessments_total: want>=2 got=%v", got)
	}
	if got := testutil.ToFloat64(PersistFailures.WithLabelValues("phishing-detection")); got != before+1 {
		t.Fatalf("persist failures: want=%v got=%v", before+1, got)
	}
	if got := testutil.ToFloat64(PredictionsTotal.WithLabelValues("phishing-detection", "Unknown")); got < 1 {
		t.Fatalf("predictions_total: want>=1 got=%v", got)
	}
}
