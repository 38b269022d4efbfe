package classifier

import "market-pulse/rules"

// Keyword dictionary. Table order is evaluation order; within a topic the
// branches are tried top to bottom and a branch with no When terms is the
// else case.

type ipoBranch struct {
	When      rules.Terms
	Sentiment IPOSentiment // empty keeps the current sentiment
	Insight   string
}

type ipoTopic struct {
	Tag      string
	Triggers rules.Terms
	Branches []ipoBranch
}

var ipoDictionary = []ipoTopic{
	{
		Tag:      "GMP",
		Triggers: rules.Terms{"gmp", "grey market", "premium"},
		Branches: []ipoBranch{
			{When: rules.Terms{"jump", "rise", "high", "surge"}, Sentiment: IPOHot, Insight: "Grey Market Premium is rising. Listing gain expected."},
			{When: rules.Terms{"fall", "drop", "discount", "weak"}, Sentiment: IPOCold, Insight: "GMP is falling. Listing might be flat or negative."},
			{Insight: "Check latest GMP rates before applying."},
		},
	},
	{
		Tag:      "Subscription",
		Triggers: rules.Terms{"subscribe", "booked", "bidding"},
		Branches: []ipoBranch{
			{When: rules.Terms{"full", "over", "high demand", "times"}, Sentiment: IPOHot, Insight: "Strong demand from investors. Likely oversubscribed."},
			{When: rules.Terms{"low", "mute", "slow"}, Sentiment: IPOCold, Insight: "Investor interest seems low so far."},
		},
	},
	{
		Tag:      "Listing",
		Triggers: rules.Terms{"list", "debut"},
		Branches: []ipoBranch{
			{When: rules.Terms{"premium", "gain", "strong"}, Sentiment: IPOHot, Insight: "Stock likely to list at a profit."},
		},
	},
	{
		Tag:      "Regulatory",
		Triggers: rules.Terms{"sebi", "files", "drhp", "approval"},
		Branches: []ipoBranch{
			{Insight: "Company moving towards IPO launch."},
		},
	},
}

const defaultIPOInsight = "General IPO news update."

type impactBranch struct {
	When    rules.Terms
	Verdict ImpactVerdict
}

type impactTopic struct {
	Topic    string
	Triggers rules.Terms
	Branches []impactBranch
}

var impactDictionary = []impactTopic{
	{
		Topic:    "Fed/rates",
		Triggers: rules.Terms{"fed", "powell", "rate hike", "inflation"},
		Branches: []impactBranch{
			{When: rules.Terms{"hike", "high", "worry"}, Verdict: ImpactVerdict{
				Sentiment: ImpactNegative,
				Region:    "USA",
				Reason:    "Higher US rates pull money out of India (FII Outflow).",
				Sectors:   []string{"Bank Nifty", "IT"},
			}},
			{Verdict: ImpactVerdict{
				Sentiment: ImpactPositive,
				Region:    "USA",
				Reason:    "Rate cuts usually bring foreign money (FII) into India.",
				Sectors:   []string{"All Sectors"},
			}},
		},
	},
	{
		Topic:    "Oil",
		Triggers: rules.Terms{"oil", "crude", "brent"},
		Branches: []impactBranch{
			{When: rules.Terms{"surge", "high", "jump"}, Verdict: ImpactVerdict{
				Sentiment: ImpactNegative,
				Region:    "Global",
				Reason:    "India imports 80% oil. High prices increase costs & deficit.",
				Sectors:   []string{"Paints", "Tyres", "Aviation"},
			}},
			{Verdict: ImpactVerdict{
				Sentiment: ImpactPositive,
				Region:    "Global",
				Reason:    "Lower oil prices reduce costs for Indian companies.",
				Sectors:   []string{"Paints", "Asian Paints"},
			}},
		},
	},
	{
		Topic:    "US Tech",
		Triggers: rules.Terms{"nasdaq", "apple", "microsoft", "nvidia", "tech"},
		Branches: []impactBranch{
			{When: rules.Terms{"soar", "jump", "rally"}, Verdict: ImpactVerdict{
				Sentiment: ImpactPositive,
				Region:    "US Tech",
				Reason:    "Indian IT stocks (TCS, Infy) often mirror US Tech rallies.",
				Sectors:   []string{"IT Sector", "TCS", "Infy"},
			}},
			{Verdict: ImpactVerdict{
				Sentiment: ImpactNegative,
				Region:    "US Tech",
				Reason:    "US Tech sell-off usually drags down Indian IT stocks.",
				Sectors:   []string{"IT Sector"},
			}},
		},
	},
	{
		// No else branch: an unmatched China headline falls through.
		Topic:    "China",
		Triggers: rules.Terms{"china"},
		Branches: []impactBranch{
			{When: rules.Terms{"stimulus", "growth"}, Verdict: ImpactVerdict{
				Sentiment: ImpactPositive,
				Region:    "China",
				Reason:    "China growth boosts global metal demand (Good for Tata Steel).",
				Sectors:   []string{"Metals", "Tata Steel"},
			}},
			{When: rules.Terms{"slow", "lockdown", "weak"}, Verdict: ImpactVerdict{
				Sentiment: ImpactNegative,
				Region:    "China",
				Reason:    "China slowdown hurts global demand for metals.",
				Sectors:   []string{"Metals"},
			}},
		},
	},
	{
		Topic:    "Gold",
		Triggers: rules.Terms{"gold"},
		Branches: []impactBranch{
			{Verdict: ImpactVerdict{
				Sentiment: ImpactNeutral,
				Region:    "Commodities",
				Reason:    "Gold is a safe haven. High gold often means market fear.",
				Sectors:   []string{"Titan", "Muthoot Finance"},
			}},
		},
	},
}

var defaultImpact = ImpactVerdict{
	Sentiment: ImpactNeutral,
	Region:    "Global Market",
	Reason:    "Global sentiment affects market opening gap up/down.",
	Sectors:   []string{"Nifty 50"},
}

type themeEntry struct {
	Theme    Theme
	Triggers rules.Terms
}

var themeDictionary = []themeEntry{
	{Theme: Theme{Name: ThemeBearish, Emoji: "📉"}, Triggers: rules.Terms{"crash", "fall", "loss", "bear", "low", "down"}},
	{Theme: Theme{Name: ThemeBullish, Emoji: "🚀"}, Triggers: rules.Terms{"surge", "high", "jump", "bull", "profit", "gain", "record"}},
	{Theme: Theme{Name: ThemeBanking, Emoji: "🏦"}, Triggers: rules.Terms{"bank", "rbi", "loan", "hdfc", "sbi", "rupee"}},
	{Theme: Theme{Name: ThemeTech, Emoji: "🤖"}, Triggers: rules.Terms{"tech", "ai", "tcs", "infosys", "wipro", "startup"}},
	{Theme: Theme{Name: ThemeCommodities, Emoji: "💎"}, Triggers: rules.Terms{"gold", "silver", "oil"}},
	{Theme: Theme{Name: ThemeAuto, Emoji: "🏎️"}, Triggers: rules.Terms{"auto", "car", "motors", "ev"}},
}

var defaultTheme = Theme{Name: ThemeGeneral, Emoji: "📰"}
