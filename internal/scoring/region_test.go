package scoring

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/shenikar/safety_scoring_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafetyScore_NoIncidents(t *testing.T) {
	engine := newTestEngine(t)

	score, riskSum, err := engine.SafetyScore(nil, 1.0)

	require.NoError(t, err)
	assert.Equal(t, 10.0, score)
	assert.Equal(t, 0.0, riskSum)
}

func TestSafetyScore_OrderIndependent(t *testing.T) {
	engine := newTestEngine(t)
	contributions := []float64{0.1, 2.0, 0.30000000000000004, 7.7, 1e-3, 3.3333333333, 0.2, 4.1}

	expected, expectedRisk, err := engine.SafetyScore(contributions, 1.0)
	require.NoError(t, err)

	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 50; i++ {
		shuffled := make([]float64, len(contributions))
		copy(shuffled, contributions)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		score, riskSum, err := engine.SafetyScore(shuffled, 1.0)

		require.NoError(t, err)
		assert.Equal(t, math.Float64bits(expected), math.Float64bits(score))
		assert.Equal(t, math.Float64bits(expectedRisk), math.Float64bits(riskSum))
	}
}

func TestSafetyScore_MonotonicAndBounded(t *testing.T) {
	engine := newTestEngine(t)

	prev := 10.0
	contributions := []float64{}
	for i := 0; i < 100; i++ {
		contributions = append(contributions, 2.5)

		score, _, err := engine.SafetyScore(contributions, 1.0)

		require.NoError(t, err)
		assert.LessOrEqual(t, score, prev)
		assert.GreaterOrEqual(t, score, 0.0)
		prev = score
	}
}

func TestSafetyScore_ClusterFactor(t *testing.T) {
	engine := newTestEngine(t)

	_, single, err := engine.SafetyScore([]float64{2.0}, 1.0)
	require.NoError(t, err)
	_, doubled, err := engine.SafetyScore([]float64{2.0}, 2.0)
	require.NoError(t, err)
	assert.Equal(t, 2*single, doubled)

	_, _, err = engine.SafetyScore([]float64{2.0}, -1)
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestSafetyScore_NegativeContribution(t *testing.T) {
	engine := newTestEngine(t)

	_, _, err := engine.SafetyScore([]float64{1.0, -0.5}, 1.0)

	assert.ErrorIs(t, err, models.ErrInconsistentState)
}

func TestAggregateRegion_SingleMediumIncident(t *testing.T) {
	engine := newTestEngine(t)
	inc := newIncident(models.SeverityMedium, evalTime)

	agg, err := engine.AggregateRegion([]*models.Incident{inc}, 1.0, evalTime)

	require.NoError(t, err)
	assert.InDelta(t, 2.0, agg.Score.RiskSum, 1e-12)
	assert.InDelta(t, 10*math.Exp(-0.5), agg.Score.SafetyScore, 1e-12)
	assert.InDelta(t, 6.0653065971, agg.Score.SafetyScore, 1e-9)
	assert.Equal(t, 6.1, RoundScore(agg.Score.SafetyScore))
	assert.Equal(t, 1, agg.Score.IncidentCount)
	assert.Equal(t, models.SeverityMedium, agg.Score.AverageSeverity)
	require.Len(t, agg.Incidents, 1)
	assert.Equal(t, inc.ID, agg.Incidents[0].IncidentID)
	assert.True(t, agg.Incidents[0].Counted)
}

func TestAggregateRegion_AdminValidationLowersScore(t *testing.T) {
	engine := newTestEngine(t)
	inc := newIncident(models.SeverityMedium, evalTime)

	before, err := engine.AggregateRegion([]*models.Incident{inc}, 1.0, evalTime)
	require.NoError(t, err)

	inc.AdminValidation.Validated = true
	after, err := engine.AggregateRegion([]*models.Incident{inc}, 1.0, evalTime)
	require.NoError(t, err)

	assert.Equal(t, 5.0, after.Incidents[0].Derived.EffectiveMultiplier)
	assert.Equal(t, 10.0, after.Incidents[0].Derived.ContributionScore)
	assert.InDelta(t, 10*math.Exp(-2.5), after.Score.SafetyScore, 1e-12)
	assert.Less(t, after.Score.SafetyScore, before.Score.SafetyScore)
}

func TestAggregateRegion_RiskyAuditDoublesContribution(t *testing.T) {
	engine := newTestEngine(t)
	inc := newIncident(models.SeverityMedium, evalTime)

	before, err := engine.AggregateRegion([]*models.Incident{inc}, 1.0, evalTime)
	require.NoError(t, err)

	sEnv, err := ComputeSEnv(uniformParams(1))
	require.NoError(t, err)
	inc.Audits = []models.Audit{auditWithSEnv(sEnv)}
	after, err := engine.AggregateRegion([]*models.Incident{inc}, 1.0, evalTime)
	require.NoError(t, err)

	assert.Equal(t, 2.0, after.Incidents[0].Derived.EffectiveMultiplier)
	assert.Equal(t, 2*before.Incidents[0].Derived.ContributionScore, after.Incidents[0].Derived.ContributionScore)
	assert.Less(t, after.Score.SafetyScore, before.Score.SafetyScore)
}

func TestAggregateRegion_ExcludesResolvedAndInvalid(t *testing.T) {
	engine := newTestEngine(t)
	resolved := newIncident(models.SeverityCritical, evalTime)
	resolved.Status = models.StatusResolved
	invalid := newIncident(models.SeverityHigh, evalTime)
	invalid.Status = models.StatusInvalid

	agg, err := engine.AggregateRegion([]*models.Incident{resolved, invalid}, 1.0, evalTime)

	require.NoError(t, err)
	assert.Equal(t, 10.0, agg.Score.SafetyScore)
	assert.Equal(t, 2, agg.Score.IncidentCount)
	assert.Equal(t, 2, agg.Score.HighSeverityCount)
	assert.False(t, agg.Incidents[0].Counted)
	assert.False(t, agg.Incidents[1].Counted)
}

func TestAggregateRegion_Statistics(t *testing.T) {
	engine := newTestEngine(t)
	low := newIncident(models.SeverityLow, evalTime)
	low.IncidentType = models.IncidentTypeNoLights
	high := newIncident(models.SeverityHigh, evalTime)
	high.IncidentType = models.IncidentTypeGBV
	other := newIncident(models.SeverityHigh, evalTime)
	other.IncidentType = models.IncidentTypeNoLights

	agg, err := engine.AggregateRegion([]*models.Incident{low, high, other}, 1.0, evalTime)

	require.NoError(t, err)
	assert.Equal(t, 3, agg.Score.IncidentCount)
	assert.Equal(t, 2, agg.Score.HighSeverityCount)
	assert.Equal(t, models.SeverityMedium, agg.Score.AverageSeverity)
	assert.Equal(t, map[models.IncidentType]int{
		models.IncidentTypeNoLights: 2,
		models.IncidentTypeGBV:      1,
	}, agg.Score.IncidentTypes)
}

func TestAggregateRegion_Empty(t *testing.T) {
	engine := newTestEngine(t)

	agg, err := engine.AggregateRegion(nil, 1.0, evalTime)

	require.NoError(t, err)
	assert.Equal(t, 10.0, agg.Score.SafetyScore)
	assert.Equal(t, 0, agg.Score.IncidentCount)
	assert.Empty(t, agg.Score.AverageSeverity)
	assert.Empty(t, agg.Incidents)
}

func TestAverageSeverity(t *testing.T) {
	assert.Equal(t, models.SeverityLow, averageSeverity(1.5))
	assert.Equal(t, models.SeverityMedium, averageSeverity(2.5))
	assert.Equal(t, models.SeverityHigh, averageSeverity(3.5))
	assert.Equal(t, models.SeverityCritical, averageSeverity(3.6))
}

func TestRoundScore(t *testing.T) {
	assert.Equal(t, 6.1, RoundScore(6.0653065971))
	assert.Equal(t, 0.8, RoundScore(0.8208499862))
	assert.Equal(t, 10.0, RoundScore(10))
}
