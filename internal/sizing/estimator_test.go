package sizing_test

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/yusufkecer/unshakn-backend/internal/domain"
	"github.com/yusufkecer/unshakn-backend/internal/sizing"
)

const tipsYAML = `
fit_tips:
  Slim: slim tip
  Athletic: athletic tip
  Bulky: bulky tip
`

func mustTable(t *testing.T, rules string) sizing.Table {
	t.Helper()
	table, err := sizing.LoadTable([]byte(rules + tipsYAML))
	require.NoError(t, err)
	return table
}

func TestEstimateDefaultTable(t *testing.T) {
	est := sizing.NewEstimator(sizing.DefaultTable())
	athleticTip := est.FitTip(domain.BodyTypeAthletic)

	testCases := []struct {
		name   string
		height float64
		weight float64
		want   domain.SizeRecommendation
	}{
		{
			name:   "medium athletic",
			height: 175, weight: 80,
			want: domain.SizeRecommendation{Size: domain.SizeM, BodyType: domain.BodyTypeAthletic, FitTip: athleticTip, Matched: true},
		},
		{
			name:   "lower corner of first rule",
			height: 150, weight: 45,
			want: domain.SizeRecommendation{Size: domain.SizeXS, BodyType: domain.BodyTypeSlim, FitTip: est.FitTip(domain.BodyTypeSlim), Matched: true},
		},
		{
			name:   "upper corner of xxl athletic",
			height: 200, weight: 120,
			want: domain.SizeRecommendation{Size: domain.SizeXXL, BodyType: domain.BodyTypeAthletic, FitTip: athleticTip, Matched: true},
		},
		{
			name:   "upper corner of xxl bulky",
			height: 195, weight: 130,
			want: domain.SizeRecommendation{Size: domain.SizeXXL, BodyType: domain.BodyTypeBulky, FitTip: est.FitTip(domain.BodyTypeBulky), Matched: true},
		},
		{
			name:   "overlap resolves to earlier band",
			height: 172, weight: 72,
			want: domain.SizeRecommendation{Size: domain.SizeM, BodyType: domain.BodyTypeSlim, FitTip: est.FitTip(domain.BodyTypeSlim), Matched: true},
		},
		{
			name:   "fallback tall and heavy",
			height: 200, weight: 150,
			want: domain.SizeRecommendation{Size: domain.SizeXXL, BodyType: domain.BodyTypeBulky, FitTip: sizing.FallbackFitTip},
		},
		{
			name:   "fallback short and light",
			height: 140, weight: 40,
			want: domain.SizeRecommendation{Size: domain.SizeL, BodyType: domain.BodyTypeAthletic, FitTip: sizing.FallbackFitTip},
		},
		{
			name:   "fallback tall only",
			height: 210, weight: 60,
			want: domain.SizeRecommendation{Size: domain.SizeXXL, BodyType: domain.BodyTypeAthletic, FitTip: sizing.FallbackFitTip},
		},
		{
			name:   "fallback heavy only",
			height: 150, weight: 101,
			want: domain.SizeRecommendation{Size: domain.SizeXXL, BodyType: domain.BodyTypeBulky, FitTip: sizing.FallbackFitTip},
		},
		{
			name:   "fallback weight threshold is strict",
			height: 140, weight: 100,
			want: domain.SizeRecommendation{Size: domain.SizeL, BodyType: domain.BodyTypeBulky, FitTip: sizing.FallbackFitTip},
		},
		{
			name:   "fallback bmi of exactly 25 is athletic",
			height: 100, weight: 25,
			want: domain.SizeRecommendation{Size: domain.SizeL, BodyType: domain.BodyTypeAthletic, FitTip: sizing.FallbackFitTip},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := est.Estimate(tc.height, tc.weight)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Estimate(%v, %v) mismatch (-want +got):\n%s", tc.height, tc.weight, diff)
			}
		})
	}
}

func TestEstimateInclusiveBounds(t *testing.T) {
	est := sizing.NewEstimator(mustTable(t, `
rules:
  - {priority: 1, min_height: 160, max_height: 170, min_weight: 60, max_weight: 70, recommended_size: S, body_type: Slim}
`))

	corners := [][2]float64{{160, 60}, {160, 70}, {170, 60}, {170, 70}}
	for _, c := range corners {
		got := est.Estimate(c[0], c[1])
		require.True(t, got.Matched, "corner %v", c)
		require.Equal(t, domain.SizeS, got.Size)
		require.Equal(t, domain.BodyTypeSlim, got.BodyType)
		require.Equal(t, "slim tip", got.FitTip)
	}

	require.False(t, est.Estimate(170.01, 65).Matched)
	require.False(t, est.Estimate(165, 59.99).Matched)
}

func TestEstimateFirstMatchWins(t *testing.T) {
	// Declared out of order: priority decides, not position in the file.
	est := sizing.NewEstimator(mustTable(t, `
rules:
  - {priority: 2, min_height: 150, max_height: 200, min_weight: 50, max_weight: 100, recommended_size: XL, body_type: Bulky}
  - {priority: 1, min_height: 170, max_height: 180, min_weight: 70, max_weight: 80, recommended_size: M, body_type: Athletic}
`))

	got := est.Estimate(175, 75)
	require.Equal(t, domain.SizeM, got.Size)
	require.Equal(t, domain.BodyTypeAthletic, got.BodyType)
	require.Equal(t, "athletic tip", got.FitTip)

	got = est.Estimate(160, 90)
	require.Equal(t, domain.SizeXL, got.Size)
	require.Equal(t, domain.BodyTypeBulky, got.BodyType)

	rules := est.Rules()
	require.Len(t, rules, 2)
	require.Equal(t, 1, rules[0].Priority)
	require.Equal(t, 2, rules[1].Priority)
}

func TestEstimateDeterministic(t *testing.T) {
	est := sizing.NewEstimator(sizing.DefaultTable())

	inputs := [][2]float64{{175, 80}, {200, 150}, {140, 40}, {182.5, 97.3}}
	for _, in := range inputs {
		require.Equal(t, est.Estimate(in[0], in[1]), est.Estimate(in[0], in[1]))
	}

	want := est.Estimate(175, 80)
	var wg sync.WaitGroup
	results := make([]domain.SizeRecommendation, 64)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = est.Estimate(175, 80)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		require.Equal(t, want, got)
	}
}

func TestRulesReturnsCopy(t *testing.T) {
	est := sizing.NewEstimator(sizing.DefaultTable())

	rules := est.Rules()
	require.Len(t, rules, 16)
	rules[0].RecommendedSize = domain.SizeXXL

	require.Equal(t, domain.SizeXS, est.Rules()[0].RecommendedSize)
	require.Equal(t, domain.SizeXS, est.Estimate(150, 45).Size)
}

func TestBMI(t *testing.T) {
	require.InDelta(t, 37.5, sizing.BMI(200, 150), 1e-9)
	require.InDelta(t, 20.408, sizing.BMI(140, 40), 1e-3)
}
