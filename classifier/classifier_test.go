package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyIPODefault(t *testing.T) {
	want := IPOVerdict{Sentiment: IPONeutral, Tags: []string{}, Insight: "General IPO news update."}
	for _, in := range []string{"", "Quarterly results announced", "   "} {
		assert.Equal(t, want, ClassifyIPO(in), in)
	}
}

func TestClassifyIPO(t *testing.T) {
	tests := []struct {
		title string
		want  IPOVerdict
	}{
		{
			title: "IPO GMP jumps ahead of listing",
			want: IPOVerdict{IPOHot, []string{"GMP", "Listing"},
				"Grey Market Premium is rising. Listing gain expected."},
		},
		{
			title: "XYZ IPO subscribed full on day 3",
			want: IPOVerdict{IPOHot, []string{"Subscription"},
				"Strong demand from investors. Likely oversubscribed."},
		},
		{
			title: "IPO GMP today",
			want:  IPOVerdict{IPONeutral, []string{"GMP"}, "Check latest GMP rates before applying."},
		},
		{
			title: "GMP drops to discount",
			want:  IPOVerdict{IPOCold, []string{"GMP"}, "GMP is falling. Listing might be flat or negative."},
		},
		{
			title: "Bidding slow on day 1",
			want:  IPOVerdict{IPOCold, []string{"Subscription"}, "Investor interest seems low so far."},
		},
		{
			// topic matched, no branch fired: tag only
			title: "Anchor book bidding opens",
			want:  IPOVerdict{IPONeutral, []string{"Subscription"}, "General IPO news update."},
		},
		{
			title: "Shares debut strong on NSE",
			want:  IPOVerdict{IPOHot, []string{"Listing"}, "Stock likely to list at a profit."},
		},
		{
			title: "Company files DRHP with SEBI",
			want:  IPOVerdict{IPONeutral, []string{"Regulatory"}, "Company moving towards IPO launch."},
		},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyIPO(tt.title))
		})
	}
}

func TestClassifyIPOLastWriteWins(t *testing.T) {
	got := ClassifyIPO("GMP falls but IPO subscribed 10 times")
	assert.Equal(t, IPOHot, got.Sentiment)
	assert.Equal(t, []string{"GMP", "Subscription"}, got.Tags)
	assert.Equal(t, "Strong demand from investors. Likely oversubscribed.", got.Insight)

	got = ClassifyIPO("GMP jumps as IPO subscribed 50 times ahead of listing at premium")
	assert.Equal(t, []string{"GMP", "Subscription", "Listing"}, got.Tags)
	assert.Equal(t, IPOHot, got.Sentiment)
	assert.Equal(t, "Stock likely to list at a profit.", got.Insight)
}

func TestClassifyIPORegulatoryKeepsSentiment(t *testing.T) {
	got := ClassifyIPO("Grey market premium surges as SEBI approval arrives")
	assert.Equal(t, IPOHot, got.Sentiment)
	assert.Equal(t, []string{"GMP", "Regulatory"}, got.Tags)
	assert.Equal(t, "Company moving towards IPO launch.", got.Insight)
}

func TestClassifyIPOCaseInsensitive(t *testing.T) {
	assert.Equal(t, ClassifyIPO("gmp jumps"), ClassifyIPO("GMP JUMPS"))
}

func TestClassifyImpact(t *testing.T) {
	tests := []struct {
		title string
		want  ImpactVerdict
	}{
		{
			title: "Fed hikes rates, markets worry",
			want: ImpactVerdict{ImpactNegative, "USA",
				"Higher US rates pull money out of India (FII Outflow).", []string{"Bank Nifty", "IT"}},
		},
		{
			title: "Powell signals rate cuts",
			want: ImpactVerdict{ImpactPositive, "USA",
				"Rate cuts usually bring foreign money (FII) into India.", []string{"All Sectors"}},
		},
		{
			title: "Crude oil prices surge",
			want: ImpactVerdict{ImpactNegative, "Global",
				"India imports 80% oil. High prices increase costs & deficit.", []string{"Paints", "Tyres", "Aviation"}},
		},
		{
			title: "Brent crude slips",
			want: ImpactVerdict{ImpactPositive, "Global",
				"Lower oil prices reduce costs for Indian companies.", []string{"Paints", "Asian Paints"}},
		},
		{
			title: "Nasdaq rally lifts Nvidia",
			want: ImpactVerdict{ImpactPositive, "US Tech",
				"Indian IT stocks (TCS, Infy) often mirror US Tech rallies.", []string{"IT Sector", "TCS", "Infy"}},
		},
		{
			title: "Apple shares slide",
			want: ImpactVerdict{ImpactNegative, "US Tech",
				"US Tech sell-off usually drags down Indian IT stocks.", []string{"IT Sector"}},
		},
		{
			title: "China announces stimulus",
			want: ImpactVerdict{ImpactPositive, "China",
				"China growth boosts global metal demand (Good for Tata Steel).", []string{"Metals", "Tata Steel"}},
		},
		{
			title: "China factory output weak",
			want: ImpactVerdict{ImpactNegative, "China",
				"China slowdown hurts global demand for metals.", []string{"Metals"}},
		},
		{
			title: "Gold prices steady today",
			want: ImpactVerdict{ImpactNeutral, "Commodities",
				"Gold is a safe haven. High gold often means market fear.", []string{"Titan", "Muthoot Finance"}},
		},
		{
			title: "Random unrelated headline about weather",
			want: ImpactVerdict{ImpactNeutral, "Global Market",
				"Global sentiment affects market opening gap up/down.", []string{"Nifty 50"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyImpact(tt.title))
		})
	}
}

func TestClassifyImpactChinaFallsThrough(t *testing.T) {
	assert.Equal(t, "Global Market", ClassifyImpact("China trade talks resume").Region)
	assert.Equal(t, "Commodities", ClassifyImpact("China gold buying").Region)
}

func TestClassifyImpactFirstTopicWins(t *testing.T) {
	got := ClassifyImpact("Fed worry hits oil and gold")
	assert.Equal(t, ImpactNegative, got.Sentiment)
	assert.Equal(t, "USA", got.Region)
}

func TestClassifyImpactDoesNotAliasDictionary(t *testing.T) {
	first := ClassifyImpact("")
	require.NotEmpty(t, first.Sectors)
	first.Sectors[0] = "mutated"

	again := ClassifyImpact("")
	assert.Equal(t, []string{"Nifty 50"}, again.Sectors)
}

func TestClassifiersAreIdempotent(t *testing.T) {
	for _, title := range []string{"", "GMP jumps, IPO subscribed 3 times", "Oil jumps as Fed worry grows"} {
		assert.Equal(t, ClassifyIPO(title), ClassifyIPO(title))
		assert.Equal(t, ClassifyImpact(title), ClassifyImpact(title))
		assert.Equal(t, ClassifyTheme(title), ClassifyTheme(title))
	}
}

func TestClassifyTheme(t *testing.T) {
	tests := []struct {
		title string
		want  ThemeName
	}{
		{"Sensex crashes 800 points", ThemeBearish},
		{"Nifty hits record high", ThemeBullish},
		{"RBI keeps repo rate unchanged", ThemeBanking},
		{"Infosys shares in focus", ThemeTech},
		{"Silver prices firm", ThemeCommodities},
		{"Tata Motors sales update", ThemeAuto},
		{"Markets open flat", ThemeGeneral},
		{"", ThemeGeneral},
		// plain substring matching: "said" carries "ai"
		{"Analyst said nothing", ThemeTech},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyTheme(tt.title).Name)
		})
	}
}

func TestClassifyThemeCarriesEmoji(t *testing.T) {
	assert.Equal(t, Theme{Name: ThemeBearish, Emoji: "📉"}, ClassifyTheme("Sensex crashes"))
	assert.Equal(t, Theme{Name: ThemeGeneral, Emoji: "📰"}, ClassifyTheme("Markets open flat"))
}
